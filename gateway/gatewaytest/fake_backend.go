// Package gatewaytest provides a fake gym-management backend for tests. It
// honors the same wire contract as the real service: bcrypt-checked
// credentials, a JWT access/refresh pair, and {success, ...} create replies.
package gatewaytest

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gymstack/gym-admin/gateway"
	"golang.org/x/crypto/bcrypt"
)

var signingKey = []byte("gatewaytest-signing-key")

type fakeAccount struct {
	user         gateway.AccountUser
	passwordHash []byte
}

// FakeBackend is an http.Handler imitating the gym backend. Zero value is
// usable; seed accounts and fixtures before serving.
type FakeBackend struct {
	mu       sync.Mutex
	accounts map[string]fakeAccount

	Members      []gateway.Member
	Trainers     []gateway.Trainer
	Classes      []gateway.Class
	Sessions     []gateway.ClassSession
	Gyms         []gateway.Gym
	Attendance   []gateway.Attendance
	Payments     []gateway.Payment
	Plans        []gateway.Plan
	Answer       string

	// FailLogout makes POST /auth/logout return a 500, for asserting that
	// local session clearing survives backend failure.
	FailLogout bool

	LoginCalls    int
	LogoutCalls   int
	RegisterCalls int
}

func NewFakeBackend() *FakeBackend {
	return &FakeBackend{accounts: make(map[string]fakeAccount)}
}

// AddAccount seeds a login-able account with a bcrypt-hashed password.
func (f *FakeBackend) AddAccount(password string, user gateway.AccountUser) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[user.Email] = fakeAccount{user: user, passwordHash: hash}
	return nil
}

// MintAccessToken issues a token with the given lifetime, signed the way the
// backend signs them. Negative lifetimes produce already-expired tokens.
func MintAccessToken(subject string, lifetime time.Duration) string {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	})
	signed, err := token.SignedString(signingKey)
	if err != nil {
		panic("gatewaytest: sign token: " + err.Error())
	}
	return signed
}

func (f *FakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method + " " + r.URL.Path {
	case "POST /auth/login":
		f.handleLogin(w, r)
	case "POST /auth/logout":
		f.handleLogout(w, r)
	case "POST /auth/register":
		f.handleRegister(w, r)
	case "GET /members":
		writeJSON(w, http.StatusOK, f.snapshotMembers())
	case "GET /auth/trainer":
		writeJSON(w, http.StatusOK, f.Trainers)
	case "GET /class":
		writeJSON(w, http.StatusOK, f.Classes)
	case "GET /classsession/":
		writeJSON(w, http.StatusOK, f.Sessions)
	case "GET /gymx":
		writeJSON(w, http.StatusOK, f.Gyms)
	case "GET /attendance/all":
		writeJSON(w, http.StatusOK, f.Attendance)
	case "GET /api/payments":
		// Envelope shape on purpose: the real backend is inconsistent and the
		// client must cope with both.
		writeJSON(w, http.StatusOK, map[string]any{"count": len(f.Payments), "items": f.Payments})
	case "GET /api/plans":
		writeJSON(w, http.StatusOK, f.Plans)
	case "POST /api/attendance":
		decodeAndRespond(w, r, func(req gateway.CreateAttendanceRequest) any {
			f.mu.Lock()
			defer f.mu.Unlock()
			att := gateway.Attendance{ID: "att-new", MemberID: req.MemberID, SessionID: req.SessionID, Method: req.Method}
			f.Attendance = append(f.Attendance, att)
			return gateway.CreateAttendanceResult{Success: true, Attendance: &att}
		})
	case "POST /api/payments":
		decodeAndRespond(w, r, func(req gateway.CreatePaymentRequest) any {
			f.mu.Lock()
			defer f.mu.Unlock()
			p := gateway.Payment{ID: "pay-new", MemberID: req.MemberID, AmountCents: req.AmountCents, Currency: req.Currency, Method: req.Method, Status: req.Status, Reference: req.Reference}
			f.Payments = append(f.Payments, p)
			return gateway.CreatePaymentResult{Success: true, Payment: &p}
		})
	case "POST /classsession":
		decodeAndRespond(w, r, func(req gateway.CreateClassSessionRequest) any {
			f.mu.Lock()
			defer f.mu.Unlock()
			s := gateway.ClassSession{ID: "sess-new", ClassID: req.ClassID, StartsAt: req.StartsAt, EndsAt: req.EndsAt, Capacity: req.Capacity, Status: req.Status}
			f.Sessions = append(f.Sessions, s)
			return gateway.CreateClassSessionResult{Success: true, Session: &s}
		})
	case "POST /class":
		decodeAndRespond(w, r, func(req gateway.CreateClassRequest) any {
			f.mu.Lock()
			defer f.mu.Unlock()
			cl := gateway.Class{ID: "class-new", GymID: req.GymID, TrainerID: req.TrainerID, Title: req.Title, Description: req.Description, Capacity: req.Capacity, DurationMinutes: req.DurationMinutes}
			f.Classes = append(f.Classes, cl)
			return gateway.CreateClassResult{Success: true, Class: &cl}
		})
	case "POST /gymx":
		decodeAndRespond(w, r, func(req gateway.CreateGymRequest) any {
			f.mu.Lock()
			defer f.mu.Unlock()
			g := gateway.Gym{ID: "gym-new", Name: req.Name, Address: req.Address, Phone: req.Phone, Timezone: req.Timezone, OpeningHours: req.OpeningHours}
			f.Gyms = append(f.Gyms, g)
			return gateway.CreateGymResult{Success: true, Gym: &g}
		})
	case "POST /api/ask":
		var req struct {
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
			writeJSON(w, http.StatusOK, gateway.AskResult{Success: false, Error: "question is required"})
			return
		}
		writeJSON(w, http.StatusOK, gateway.AskResult{Success: true, Answer: f.Answer, Contexts: []string{"handbook"}})
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	}
}

func (f *FakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.LoginCalls++
	f.mu.Unlock()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	f.mu.Lock()
	account, ok := f.accounts[req.Email]
	f.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(account.passwordHash, []byte(req.Password)) != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	writeJSON(w, http.StatusOK, gateway.LoginResult{
		AccessToken:  MintAccessToken(account.user.ID, 15*time.Minute),
		RefreshToken: MintAccessToken(account.user.ID, 7*24*time.Hour),
		User:         account.user,
	})
}

func (f *FakeBackend) handleLogout(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.LogoutCalls++
	failLogout := f.FailLogout
	f.mu.Unlock()

	if failLogout {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "logout failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

func (f *FakeBackend) handleRegister(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.RegisterCalls++
	f.mu.Unlock()

	var req gateway.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email and password are required"})
		return
	}
	writeJSON(w, http.StatusOK, gateway.RegisterResult{Success: true})
}

func (f *FakeBackend) snapshotMembers() []gateway.Member {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]gateway.Member(nil), f.Members...)
}

func decodeAndRespond[T any](w http.ResponseWriter, r *http.Request, create func(T) any) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, create(req))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
