package gateway

import (
	"context"
	"net/http"
)

type Payment struct {
	ID          string  `json:"ID"`
	MemberID    string  `json:"MemberID"`
	AmountCents int64   `json:"AmountCents"`
	Currency    string  `json:"Currency"`
	Method      string  `json:"Method"`
	Status      string  `json:"Status"`
	Reference   string  `json:"Reference"`
	CreatedAt   string  `json:"CreatedAt"`
	Member      *Member `json:"Member,omitempty"`
}

type CreatePaymentRequest struct {
	MemberID    string `json:"member_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Method      string `json:"method"`
	Status      string `json:"status"`
	Reference   string `json:"reference"`
}

type CreatePaymentResult struct {
	Success bool     `json:"success"`
	Payment *Payment `json:"payment,omitempty"`
}

// Plan is a membership plan; NumSessions is nil for unlimited plans.
type Plan struct {
	ID           string `json:"ID"`
	Title        string `json:"Title"`
	Description  string `json:"Description"`
	PriceCents   int64  `json:"PriceCents"`
	BillingCycle string `json:"BillingCycle"`
	NumSessions  *int   `json:"NumSessions"`
	Access       string `json:"Access"`
}

func (c *Client) ListPayments(ctx context.Context, accessToken string) ([]Payment, error) {
	return list[Payment](ctx, c, "api/payments", accessToken)
}

func (c *Client) ListPlans(ctx context.Context, accessToken string) ([]Plan, error) {
	return list[Plan](ctx, c, "api/plans", accessToken)
}

func (c *Client) CreatePayment(ctx context.Context, accessToken string, req CreatePaymentRequest) (*CreatePaymentResult, error) {
	var result CreatePaymentResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"api/payments", accessToken, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
