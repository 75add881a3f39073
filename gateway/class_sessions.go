package gateway

import (
	"context"
	"net/http"
)

type ClassSession struct {
	ID        string `json:"ID"`
	ClassID   string `json:"ClassID"`
	StartsAt  string `json:"StartsAt"`
	EndsAt    string `json:"EndsAt"`
	Capacity  int    `json:"Capacity"`
	Status    string `json:"Status"`
	CreatedAt string `json:"CreatedAt"`
	UpdatedAt string `json:"UpdatedAt"`
	Class     *Class `json:"Class,omitempty"`
}

type CreateClassSessionRequest struct {
	ClassID  string `json:"class_id"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

type CreateClassSessionResult struct {
	Success bool          `json:"success"`
	Session *ClassSession `json:"session,omitempty"`
}

// ListClassSessions fetches all scheduled sessions. The backend serves the
// collection under "classsession/" (trailing slash) but takes creates at
// "classsession"; both spellings are the backend's, not ours to fix.
func (c *Client) ListClassSessions(ctx context.Context, accessToken string) ([]ClassSession, error) {
	return list[ClassSession](ctx, c, "classsession/", accessToken)
}

func (c *Client) CreateClassSession(ctx context.Context, accessToken string, req CreateClassSessionRequest) (*CreateClassSessionResult, error) {
	var result CreateClassSessionResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"classsession", accessToken, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
