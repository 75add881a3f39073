package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gymstack/gym-admin/gateway"
	"github.com/gymstack/gym-admin/tokens"
	"github.com/rs/zerolog/log"
)

type AttendanceAddPageData struct {
	PageBase
	Members  []gateway.Member
	Sessions []gateway.ClassSession
}

// AttendanceAddPageHandler renders the check-in form. Members and sessions
// populate the form's selects; a failed fetch leaves its select empty and
// surfaces the error on the page.
func (s *Server) AttendanceAddPageHandler() http.HandlerFunc {
	tmpl := mustParsePage("attendance_add.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := AttendanceAddPageData{PageBase: s.pageBase(r, "attendance")}
		data.Error = r.URL.Query().Get("error")

		var err error
		if data.Members, err = s.backend.ListMembers(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("attendance form: listing members failed")
			data.Error = backendErrorMessage(err)
		}
		if data.Sessions, err = s.backend.ListClassSessions(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("attendance form: listing sessions failed")
			data.Error = backendErrorMessage(err)
		}

		s.renderPage(w, tmpl, data)
	}
}

func (s *Server) AttendanceSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithError(w, r, RouteAttendanceAdd, "Invalid form submission")
			return
		}
		memberID := r.FormValue("member_id")
		sessionID := r.FormValue("session_id")
		method := r.FormValue("method")
		if memberID == "" || sessionID == "" {
			redirectWithError(w, r, RouteAttendanceAdd, "Member and session are required")
			return
		}
		if method == "" {
			method = "manual"
		}

		accessToken := tokens.NewStore(w, r).AccessToken()
		_, err := s.backend.CreateAttendance(r.Context(), accessToken, gateway.CreateAttendanceRequest{
			MemberID:  memberID,
			SessionID: sessionID,
			Method:    method,
		})
		if err != nil {
			log.Err(err).Msg("recording attendance failed")
			redirectWithError(w, r, RouteAttendanceAdd, backendErrorMessage(err))
			return
		}

		redirectSuccess(w, r, RouteAttendance)
	}
}

type PaymentAddPageData struct {
	PageBase
	Members []gateway.Member
	Plans   []gateway.Plan
}

func (s *Server) PaymentAddPageHandler() http.HandlerFunc {
	tmpl := mustParsePage("payment_add.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := PaymentAddPageData{PageBase: s.pageBase(r, "payments")}
		data.Error = r.URL.Query().Get("error")

		var err error
		if data.Members, err = s.backend.ListMembers(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("payment form: listing members failed")
			data.Error = backendErrorMessage(err)
		}
		if data.Plans, err = s.backend.ListPlans(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("payment form: listing plans failed")
			data.Error = backendErrorMessage(err)
		}

		s.renderPage(w, tmpl, data)
	}
}

// PaymentSubmitHandler records a manual payment. A blank reference gets a
// generated one so every payment stays traceable.
func (s *Server) PaymentSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithError(w, r, RoutePaymentAdd, "Invalid form submission")
			return
		}
		memberID := r.FormValue("member_id")
		if memberID == "" {
			redirectWithError(w, r, RoutePaymentAdd, "Member is required")
			return
		}
		amountCents, err := strconv.ParseInt(r.FormValue("amount_cents"), 10, 64)
		if err != nil || amountCents <= 0 {
			redirectWithError(w, r, RoutePaymentAdd, "Amount must be a positive number of cents")
			return
		}
		reference := r.FormValue("reference")
		if reference == "" {
			reference = uuid.New().String()
		}
		currency := r.FormValue("currency")
		if currency == "" {
			currency = "USD"
		}
		status := r.FormValue("status")
		if status == "" {
			status = "Paid"
		}

		accessToken := tokens.NewStore(w, r).AccessToken()
		_, err = s.backend.CreatePayment(r.Context(), accessToken, gateway.CreatePaymentRequest{
			MemberID:    memberID,
			AmountCents: amountCents,
			Currency:    currency,
			Method:      r.FormValue("method"),
			Status:      status,
			Reference:   reference,
		})
		if err != nil {
			log.Err(err).Msg("recording payment failed")
			redirectWithError(w, r, RoutePaymentAdd, backendErrorMessage(err))
			return
		}

		redirectSuccess(w, r, RoutePayments)
	}
}

type ClassAddPageData struct {
	PageBase
	Gyms     []gateway.Gym
	Trainers []gateway.Trainer
}

func (s *Server) ClassAddPageHandler() http.HandlerFunc {
	tmpl := mustParsePage("class_add.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := ClassAddPageData{PageBase: s.pageBase(r, "classes")}
		data.Error = r.URL.Query().Get("error")

		var err error
		if data.Gyms, err = s.backend.ListGyms(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("class form: listing gyms failed")
			data.Error = backendErrorMessage(err)
		}
		if data.Trainers, err = s.backend.ListTrainers(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("class form: listing trainers failed")
			data.Error = backendErrorMessage(err)
		}

		s.renderPage(w, tmpl, data)
	}
}

func (s *Server) ClassSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithError(w, r, RouteClassAdd, "Invalid form submission")
			return
		}
		title := r.FormValue("title")
		gymID := r.FormValue("gym_id")
		trainerID := r.FormValue("trainer_id")
		if title == "" || gymID == "" || trainerID == "" {
			redirectWithError(w, r, RouteClassAdd, "Title, gym and trainer are required")
			return
		}
		capacity, _ := strconv.Atoi(r.FormValue("capacity"))
		duration, _ := strconv.Atoi(r.FormValue("duration_minutes"))

		accessToken := tokens.NewStore(w, r).AccessToken()
		_, err := s.backend.CreateClass(r.Context(), accessToken, gateway.CreateClassRequest{
			GymID:           gymID,
			TrainerID:       trainerID,
			Title:           title,
			Description:     r.FormValue("description"),
			Capacity:        capacity,
			DurationMinutes: duration,
		})
		if err != nil {
			log.Err(err).Msg("creating class failed")
			redirectWithError(w, r, RouteClassAdd, backendErrorMessage(err))
			return
		}

		redirectSuccess(w, r, RouteClasses)
	}
}

type ClassSessionAddPageData struct {
	PageBase
	Classes []gateway.Class
}

func (s *Server) ClassSessionAddPageHandler() http.HandlerFunc {
	tmpl := mustParsePage("class_session_add.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := ClassSessionAddPageData{PageBase: s.pageBase(r, "class-sessions")}
		data.Error = r.URL.Query().Get("error")

		var err error
		if data.Classes, err = s.backend.ListClasses(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("session form: listing classes failed")
			data.Error = backendErrorMessage(err)
		}

		s.renderPage(w, tmpl, data)
	}
}

func (s *Server) ClassSessionSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithError(w, r, RouteClassSessionAdd, "Invalid form submission")
			return
		}
		classID := r.FormValue("class_id")
		startsAt := r.FormValue("starts_at")
		endsAt := r.FormValue("ends_at")
		if classID == "" || startsAt == "" || endsAt == "" {
			redirectWithError(w, r, RouteClassSessionAdd, "Class, start and end times are required")
			return
		}
		capacity, _ := strconv.Atoi(r.FormValue("capacity"))
		status := r.FormValue("status")
		if status == "" {
			status = "Scheduled"
		}

		accessToken := tokens.NewStore(w, r).AccessToken()
		_, err := s.backend.CreateClassSession(r.Context(), accessToken, gateway.CreateClassSessionRequest{
			ClassID:  classID,
			StartsAt: startsAt,
			EndsAt:   endsAt,
			Capacity: capacity,
			Status:   status,
		})
		if err != nil {
			log.Err(err).Msg("creating class session failed")
			redirectWithError(w, r, RouteClassSessionAdd, backendErrorMessage(err))
			return
		}

		redirectSuccess(w, r, RouteClassSessions)
	}
}

type GymAddPageData struct {
	PageBase
}

func (s *Server) GymAddPageHandler() http.HandlerFunc {
	tmpl := mustParsePage("gym_add.html")
	return func(w http.ResponseWriter, r *http.Request) {
		data := GymAddPageData{PageBase: s.pageBase(r, "gyms")}
		data.Error = r.URL.Query().Get("error")
		s.renderPage(w, tmpl, data)
	}
}

func (s *Server) GymSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithError(w, r, RouteGymAdd, "Invalid form submission")
			return
		}
		name := r.FormValue("name")
		if name == "" {
			redirectWithError(w, r, RouteGymAdd, "Name is required")
			return
		}

		accessToken := tokens.NewStore(w, r).AccessToken()
		_, err := s.backend.CreateGym(r.Context(), accessToken, gateway.CreateGymRequest{
			Name:         name,
			Address:      r.FormValue("address"),
			Phone:        r.FormValue("phone"),
			Timezone:     r.FormValue("timezone"),
			OpeningHours: r.FormValue("opening_hours"),
		})
		if err != nil {
			log.Err(err).Msg("creating gym failed")
			redirectWithError(w, r, RouteGymAdd, backendErrorMessage(err))
			return
		}

		redirectSuccess(w, r, RouteGyms)
	}
}
