package oidcflow

import "time"

// LoginFlow holds the transient state of a social login attempt between the
// redirect out to the identity provider and the callback.
type LoginFlow struct {
	Nonce     string
	ReturnURL string
	CreatedAt time.Time
}

// Repo stores in-flight login flows keyed by the opaque state parameter.
type Repo interface {
	Upsert(state string, flow *LoginFlow) error
	Get(state string) (*LoginFlow, error)
	Delete(state string) error
}
