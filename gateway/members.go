package gateway

import (
	"context"
	"strings"
	"time"
)

// EmergencyContact is embedded in a member record.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// MemberAccount is the account record nested in a member. The backend exposes
// a mix of snake_case and exported-field keys; the tags follow the wire.
type MemberAccount struct {
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
	Status      string `json:"status"`
	UserType    string `json:"user_type"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Membership links a member to a plan.
type Membership struct {
	ID        string `json:"ID"`
	MemberID  string `json:"MemberID"`
	PlanID    string `json:"PlanID"`
	StartDate string `json:"StartDate"`
	EndDate   string `json:"EndDate"`
	Status    string `json:"Status"`
	AutoRenew bool   `json:"AutoRenew"`
	Plan      *Plan  `json:"Plan,omitempty"`
}

type Member struct {
	ID               string           `json:"ID"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	UserID           string           `json:"UserID"`
	Dob              string           `json:"Dob"`
	Gender           string           `json:"Gender"`
	EmergencyContact EmergencyContact `json:"EmergencyContact"`
	Notes            string           `json:"Notes"`
	CreatedAt        string           `json:"CreatedAt"`
	UpdatedAt        string           `json:"UpdatedAt"`
	User             *MemberAccount   `json:"User,omitempty"`
	Memberships      []Membership     `json:"Memberships"`
}

// FullName joins the member's names for display and search.
func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// HasMembershipStatus reports whether any membership carries the given
// status. The backend is not consistent about casing, so the match ignores it.
func (m Member) HasMembershipStatus(status string) bool {
	for _, ms := range m.Memberships {
		if strings.EqualFold(ms.Status, status) {
			return true
		}
	}
	return false
}

// HasActiveMembership reports whether any membership is currently active.
func (m Member) HasActiveMembership() bool {
	return m.HasMembershipStatus("active")
}

// HasExpiredMembership reports whether any membership has lapsed, either by
// status or by an end date in the past.
func (m Member) HasExpiredMembership() bool {
	for _, ms := range m.Memberships {
		if strings.EqualFold(ms.Status, "expired") {
			return true
		}
		if end, err := time.Parse(time.RFC3339, ms.EndDate); err == nil && end.Before(time.Now()) {
			return true
		}
	}
	return false
}

func (c *Client) ListMembers(ctx context.Context, accessToken string) ([]Member, error) {
	return list[Member](ctx, c, "members", accessToken)
}
