package gateway

import (
	"context"
	"encoding/json"
	"net/http"
)

type Gym struct {
	ID           string          `json:"ID"`
	Name         string          `json:"Name"`
	Address      string          `json:"Address"`
	Phone        string          `json:"Phone"`
	Timezone     string          `json:"Timezone"`
	OpeningHours string          `json:"OpeningHours"`
	Settings     json.RawMessage `json:"Settings,omitempty"` // opaque backend blob, passed through untouched
	CreatedAt    string          `json:"CreatedAt"`
	UpdatedAt    string          `json:"UpdatedAt"`
}

type CreateGymRequest struct {
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Phone        string          `json:"phone"`
	Timezone     string          `json:"timezone"`
	OpeningHours string          `json:"opening_hours"`
	Settings     json.RawMessage `json:"settings,omitempty"`
}

type CreateGymResult struct {
	Success bool `json:"success"`
	Gym     *Gym `json:"gym,omitempty"`
}

func (c *Client) ListGyms(ctx context.Context, accessToken string) ([]Gym, error) {
	return list[Gym](ctx, c, "gymx", accessToken)
}

func (c *Client) CreateGym(ctx context.Context, accessToken string, req CreateGymRequest) (*CreateGymResult, error) {
	var result CreateGymResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"gymx", accessToken, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
