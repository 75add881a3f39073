package gateway

import "context"

type Trainer struct {
	ID             string         `json:"ID"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	UserID         string         `json:"UserID"`
	Specialization string         `json:"Specialization"`
	Bio            string         `json:"Bio"`
	CreatedAt      string         `json:"CreatedAt"`
	UpdatedAt      string         `json:"UpdatedAt"`
	User           *MemberAccount `json:"User,omitempty"`
}

func (t Trainer) FullName() string {
	return t.FirstName + " " + t.LastName
}

func (c *Client) ListTrainers(ctx context.Context, accessToken string) ([]Trainer, error) {
	return list[Trainer](ctx, c, "auth/trainer", accessToken)
}
