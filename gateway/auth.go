package gateway

import (
	"context"
	"net/http"
)

// AccountUser is the user record the backend returns with a login response.
type AccountUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the credential pair plus the profile from a successful
// credential exchange. The caller must store the tokens before the profile.
type LoginResult struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         AccountUser `json:"user"`
}

// Login exchanges credentials for a token pair and profile. On failure no
// store is mutated anywhere; the caller just renders the error.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"auth/login", "", loginRequest{Email: email, Password: password}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterRequest creates a new account. Membership fields apply only when
// UserType is "Member"; the console's own register page always sends "Admin".
type RegisterRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Status      string `json:"status"`
	UserType    string `json:"user_type"`

	MembershipType        string `json:"membership_type,omitempty"`
	MembershipStart       string `json:"membership_start,omitempty"`
	MembershipEnd         string `json:"membership_end,omitempty"`
	FitnessGoals          string `json:"fitness_goals,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
}

type RegisterResult struct {
	Success bool     `json:"success"`
	Member  *Member  `json:"member,omitempty"`
	Trainer *Trainer `json:"trainer,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	var result RegisterResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"auth/register", "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout invalidates the credential pair server-side. The caller treats this
// as best-effort: local session state clears whether or not this succeeds.
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, c.baseURL+"auth/logout", accessToken, nil, nil)
}
