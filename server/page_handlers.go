package server

import (
	"html/template"
	"net/http"

	"github.com/gymstack/gym-admin/gateway"
	"github.com/gymstack/gym-admin/tokens"
	"github.com/rs/zerolog/log"
)

// PageBase carries the fields every shell-rendered page needs.
type PageBase struct {
	AppName  string
	UserName string
	Active   string // highlighted sidebar entry
	Error    string
}

func (s *Server) pageBase(r *http.Request, active string) PageBase {
	base := PageBase{AppName: s.config.GetAppName(), Active: active}
	if sc := SessionFromContext(r.Context()); sc != nil && sc.User() != nil {
		base.UserName = sc.User().DisplayName
	}
	return base
}

func (s *Server) renderPage(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		log.Err(err).Str("template", tmpl.Name()).Msg("template execution failed")
	}
}

type DashboardPageData struct {
	PageBase
	MemberCount  int
	TrainerCount int
	ClassCount   int
	SessionCount int
	PaymentTotal int64 // cents, across all listed payments
}

// DashboardHandler renders the home page stat cards. Each count fetch is
// independent; one failing backend call zeroes its card and sets the page
// error rather than blanking the whole dashboard.
func (s *Server) DashboardHandler() http.HandlerFunc {
	tmpl := mustParsePage("dashboard.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := DashboardPageData{PageBase: s.pageBase(r, "dashboard")}

		if members, err := s.backend.ListMembers(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("dashboard: listing members failed")
			data.Error = backendErrorMessage(err)
		} else {
			data.MemberCount = len(members)
		}

		if trainers, err := s.backend.ListTrainers(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("dashboard: listing trainers failed")
			data.Error = backendErrorMessage(err)
		} else {
			data.TrainerCount = len(trainers)
		}

		if classes, err := s.backend.ListClasses(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("dashboard: listing classes failed")
			data.Error = backendErrorMessage(err)
		} else {
			data.ClassCount = len(classes)
		}

		if sessions, err := s.backend.ListClassSessions(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("dashboard: listing sessions failed")
			data.Error = backendErrorMessage(err)
		} else {
			data.SessionCount = len(sessions)
		}

		if payments, err := s.backend.ListPayments(r.Context(), accessToken); err != nil {
			log.Err(err).Msg("dashboard: listing payments failed")
			data.Error = backendErrorMessage(err)
		} else {
			for _, p := range payments {
				data.PaymentTotal += p.AmountCents
			}
		}

		s.renderPage(w, tmpl, data)
	}
}

type MembersPageData struct {
	PageBase
	Search  string
	Tab     string
	Members []gateway.Member
}

func (s *Server) MembersPageHandler() http.HandlerFunc {
	tmpl := mustParsePage("members.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := MembersPageData{
			PageBase: s.pageBase(r, "members"),
			Search:   r.URL.Query().Get("q"),
			Tab:      membersTab(r.URL.Query().Get("tab")),
		}

		members, err := s.backend.ListMembers(r.Context(), accessToken)
		if err != nil {
			log.Err(err).Msg("listing members failed")
			data.Error = backendErrorMessage(err)
		}
		data.Members = filterMembers(members, data.Search, data.Tab)

		s.renderPage(w, tmpl, data)
	}
}

type TrainersPageData struct {
	PageBase
	Search   string
	Trainers []gateway.Trainer
}

func (s *Server) TrainersPageHandler() http.HandlerFunc {
	tmpl := mustParsePage("trainers.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := TrainersPageData{
			PageBase: s.pageBase(r, "trainers"),
			Search:   r.URL.Query().Get("q"),
		}

		trainers, err := s.backend.ListTrainers(r.Context(), accessToken)
		if err != nil {
			log.Err(err).Msg("listing trainers failed")
			data.Error = backendErrorMessage(err)
		}
		data.Trainers = filterTrainers(trainers, data.Search)

		s.renderPage(w, tmpl, data)
	}
}

type ClassesPageData struct {
	PageBase
	Search  string
	Classes []gateway.Class
}

func (s *Server) ClassesPageHandler() http.HandlerFunc {
	tmpl := mustParsePage("classes.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := ClassesPageData{
			PageBase: s.pageBase(r, "classes"),
			Search:   r.URL.Query().Get("q"),
		}

		classes, err := s.backend.ListClasses(r.Context(), accessToken)
		if err != nil {
			log.Err(err).Msg("listing classes failed")
			data.Error = backendErrorMessage(err)
		}
		data.Classes = filterClasses(classes, data.Search)

		s.renderPage(w, tmpl, data)
	}
}

type ClassSessionsPageData struct {
	PageBase
	Sessions []gateway.ClassSession
}

func (s *Server) ClassSessionsPageHandler() http.HandlerFunc {
	tmpl := mustParsePage("class_sessions.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := ClassSessionsPageData{PageBase: s.pageBase(r, "class-sessions")}

		sessions, err := s.backend.ListClassSessions(r.Context(), accessToken)
		if err != nil {
			log.Err(err).Msg("listing class sessions failed")
			data.Error = backendErrorMessage(err)
		}
		data.Sessions = sessions

		s.renderPage(w, tmpl, data)
	}
}

type AttendancePageData struct {
	PageBase
	Records []gateway.Attendance
}

func (s *Server) AttendancePageHandler() http.HandlerFunc {
	tmpl := mustParsePage("attendance.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := AttendancePageData{PageBase: s.pageBase(r, "attendance")}

		records, err := s.backend.ListAttendance(r.Context(), accessToken)
		if err != nil {
			log.Err(err).Msg("listing attendance failed")
			data.Error = backendErrorMessage(err)
		}
		data.Records = records

		s.renderPage(w, tmpl, data)
	}
}

type PaymentsPageData struct {
	PageBase
	Tab      string
	Payments []gateway.Payment
}

func (s *Server) PaymentsPageHandler() http.HandlerFunc {
	tmpl := mustParsePage("payments.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := PaymentsPageData{
			PageBase: s.pageBase(r, "payments"),
			Tab:      paymentsTab(r.URL.Query().Get("tab")),
		}

		payments, err := s.backend.ListPayments(r.Context(), accessToken)
		if err != nil {
			log.Err(err).Msg("listing payments failed")
			data.Error = backendErrorMessage(err)
		}
		data.Payments = filterPayments(payments, data.Tab)

		s.renderPage(w, tmpl, data)
	}
}

type GymsPageData struct {
	PageBase
	Search string
	Gyms   []gateway.Gym
}

func (s *Server) GymsPageHandler() http.HandlerFunc {
	tmpl := mustParsePage("gyms.html")
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := tokens.NewStore(w, r).AccessToken()
		data := GymsPageData{
			PageBase: s.pageBase(r, "gyms"),
			Search:   r.URL.Query().Get("q"),
		}

		gyms, err := s.backend.ListGyms(r.Context(), accessToken)
		if err != nil {
			log.Err(err).Msg("listing gyms failed")
			data.Error = backendErrorMessage(err)
		}
		data.Gyms = filterGyms(gyms, data.Search)

		s.renderPage(w, tmpl, data)
	}
}
