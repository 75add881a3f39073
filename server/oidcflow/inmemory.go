package oidcflow

import (
	"fmt"
	"sync"
	"time"
)

// flowTTL bounds how long a login attempt may sit between redirect and callback.
const flowTTL = 10 * time.Minute

type InMemoryRepo struct {
	lock  sync.RWMutex
	flows map[string]LoginFlow
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{flows: make(map[string]LoginFlow)}
}

func (r *InMemoryRepo) Upsert(state string, flow *LoginFlow) error {
	if flow == nil {
		return fmt.Errorf("[InMemoryRepo.Upsert] nil flow")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.flows[state] = *flow
	return nil
}

func (r *InMemoryRepo) Get(state string) (*LoginFlow, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	flow, found := r.flows[state]
	if !found {
		return nil, fmt.Errorf("[InMemoryRepo.Get] unknown state")
	}
	if time.Since(flow.CreatedAt) > flowTTL {
		return nil, fmt.Errorf("[InMemoryRepo.Get] login flow expired")
	}
	flowCopy := flow
	return &flowCopy, nil
}

func (r *InMemoryRepo) Delete(state string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.flows, state)
	return nil
}
