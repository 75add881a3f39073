package gateway

import (
	"context"
	"net/http"
)

type Attendance struct {
	ID          string        `json:"ID"`
	MemberID    string        `json:"MemberID"`
	SessionID   string        `json:"SessionID"`
	Method      string        `json:"Method"`
	CheckinTime string        `json:"CheckinTime"`
	CreatedAt   string        `json:"CreatedAt"`
	Member      *Member       `json:"Member,omitempty"`
	Session     *ClassSession `json:"Session,omitempty"`
}

type CreateAttendanceRequest struct {
	MemberID  string `json:"member_id"`
	SessionID string `json:"session_id"`
	Method    string `json:"method"`
}

type CreateAttendanceResult struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Attendance *Attendance `json:"attendance,omitempty"`
}

func (c *Client) ListAttendance(ctx context.Context, accessToken string) ([]Attendance, error) {
	return list[Attendance](ctx, c, "attendance/all", accessToken)
}

func (c *Client) CreateAttendance(ctx context.Context, accessToken string, req CreateAttendanceRequest) (*CreateAttendanceResult, error) {
	var result CreateAttendanceResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"api/attendance", accessToken, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
