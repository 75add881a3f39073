package gateway

import (
	"context"
	"net/http"
)

type Class struct {
	ID              string   `json:"ID"`
	GymID           string   `json:"GymID"`
	TrainerID       string   `json:"TrainerID"`
	Title           string   `json:"Title"`
	Description     string   `json:"Description"`
	Capacity        int      `json:"Capacity"`
	DurationMinutes int      `json:"DurationMinutes"`
	CreatedAt       string   `json:"CreatedAt"`
	UpdatedAt       string   `json:"UpdatedAt"`
	Trainer         *Trainer `json:"Trainer,omitempty"`
	Gym             *Gym     `json:"Gym,omitempty"`
}

type CreateClassRequest struct {
	GymID           string `json:"gym_id"`
	TrainerID       string `json:"trainer_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Capacity        int    `json:"capacity"`
	DurationMinutes int    `json:"duration_minutes"`
}

type CreateClassResult struct {
	Success bool   `json:"success"`
	Class   *Class `json:"class,omitempty"`
}

func (c *Client) ListClasses(ctx context.Context, accessToken string) ([]Class, error) {
	return list[Class](ctx, c, "class", accessToken)
}

func (c *Client) CreateClass(ctx context.Context, accessToken string, req CreateClassRequest) (*CreateClassResult, error) {
	var result CreateClassResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"class", accessToken, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
