package server_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gymstack/gym-admin/gateway"
	"github.com/gymstack/gym-admin/gateway/gatewaytest"
	"github.com/gymstack/gym-admin/internal/utils"
	"github.com/gymstack/gym-admin/server"
	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, srv *server.Server, target string, fields url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(fields.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(&http.Cookie{Name: "access_token", Value: gatewaytest.MintAccessToken("u-1", 15*time.Minute)})
	r.AddCookie(&http.Cookie{Name: "user", Value: encodeProfileCookie(t, "u-1", "owner@gym.test", "Sam Owner")})
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}

func TestPaymentForm(t *testing.T) {
	fake := gatewaytest.NewFakeBackend()
	fake.Members = []gateway.Member{{ID: "m-1", FirstName: "Ada", LastName: "Lovelace"}}
	fake.Plans = []gateway.Plan{{ID: "plan-1", Title: "Monthly", PriceCents: 4900, NumSessions: utils.Ptr(12)}}
	srv := newTestServer(t, fake)

	t.Run("add page lists members and plans", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, authenticatedRequest(t, http.MethodGet, server.RoutePaymentAdd))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Ada Lovelace")
	})

	t.Run("submit records the payment and generates a reference", func(t *testing.T) {
		w := postForm(t, srv, server.RoutePaymentAdd, url.Values{
			"member_id":    {"m-1"},
			"amount_cents": {"4900"},
			"method":       {"card"},
		})

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, server.RoutePayments, w.Header().Get("Location"))
		require.Len(t, fake.Payments, 1)
		require.NotEmpty(t, fake.Payments[0].Reference)
		require.Equal(t, "USD", fake.Payments[0].Currency)
	})

	t.Run("non-positive amount is rejected locally", func(t *testing.T) {
		w := postForm(t, srv, server.RoutePaymentAdd, url.Values{
			"member_id":    {"m-1"},
			"amount_cents": {"0"},
		})

		require.Equal(t, http.StatusSeeOther, w.Code)
		location, err := url.Parse(w.Header().Get("Location"))
		require.NoError(t, err)
		require.Equal(t, server.RoutePaymentAdd, location.Path)
		require.Len(t, fake.Payments, 1) // unchanged from the previous subtest
	})
}

func TestAttendanceForm(t *testing.T) {
	fake := gatewaytest.NewFakeBackend()
	fake.Members = []gateway.Member{{ID: "m-1", FirstName: "Ada", LastName: "Lovelace"}}
	fake.Sessions = []gateway.ClassSession{{ID: "s-1", StartsAt: "2026-09-01T18:00:00Z"}}
	srv := newTestServer(t, fake)

	t.Run("submit records the check-in", func(t *testing.T) {
		w := postForm(t, srv, server.RouteAttendanceAdd, url.Values{
			"member_id":  {"m-1"},
			"session_id": {"s-1"},
		})

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, server.RouteAttendance, w.Header().Get("Location"))
		require.Len(t, fake.Attendance, 1)
		require.Equal(t, "manual", fake.Attendance[0].Method)
	})

	t.Run("missing member bounces back with an error", func(t *testing.T) {
		w := postForm(t, srv, server.RouteAttendanceAdd, url.Values{
			"session_id": {"s-1"},
		})

		require.Equal(t, http.StatusSeeOther, w.Code)
		location, err := url.Parse(w.Header().Get("Location"))
		require.NoError(t, err)
		require.Equal(t, server.RouteAttendanceAdd, location.Path)
		require.NotEmpty(t, location.Query().Get("error"))
	})
}

func TestClassForm(t *testing.T) {
	fake := gatewaytest.NewFakeBackend()
	fake.Gyms = []gateway.Gym{{ID: "g-1", Name: "Downtown"}}
	fake.Trainers = []gateway.Trainer{{ID: "t-1", FirstName: "Jo", LastName: "Coach"}}
	srv := newTestServer(t, fake)

	w := postForm(t, srv, server.RouteClassAdd, url.Values{
		"title":            {"Spin"},
		"gym_id":           {"g-1"},
		"trainer_id":       {"t-1"},
		"capacity":         {"25"},
		"duration_minutes": {"45"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, server.RouteClasses, w.Header().Get("Location"))
	require.Len(t, fake.Classes, 1)
	require.Equal(t, "Spin", fake.Classes[0].Title)
	require.Equal(t, 25, fake.Classes[0].Capacity)
}
