package server

import (
	"net/http"
	"net/url"

	"github.com/gymstack/gym-admin/account"
	"github.com/gymstack/gym-admin/gateway"
	apperrors "github.com/gymstack/gym-admin/internal/errors"
	"github.com/gymstack/gym-admin/profile"
	"github.com/gymstack/gym-admin/tokens"
	"github.com/rs/zerolog/log"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName     string
	Error       string
	Message     string
	Email       string // Preserve email on error
	OidcEnabled bool
}

func (s *Server) LoginPageHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("login.html")
	return func(w http.ResponseWriter, r *http.Request) {
		data := LoginPageData{
			AppName:     s.config.GetAppName(),
			Error:       r.URL.Query().Get("error"),
			Message:     r.URL.Query().Get("message"),
			Email:       r.URL.Query().Get("email"),
			OidcEnabled: s.config.OidcEnabled(),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	}
}

// LoginSubmissionHandler exchanges the posted credentials with the backend.
// On success the token cookies are written first, then the profile cookie,
// so a half-failed login can never leave a profile without credentials.
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithError(w, r, RouteLogin, "Invalid form submission")
			return
		}
		email := r.FormValue("email")
		password := r.FormValue("password")
		if email == "" || password == "" {
			s.redirectLoginError(w, r, email, "Email and password are required")
			return
		}

		result, err := s.backend.Login(r.Context(), email, password)
		if err != nil {
			log.Err(err).Str("email", email).Msg("login failed")
			s.redirectLoginError(w, r, email, backendErrorMessage(err))
			return
		}

		creds := tokens.NewStore(w, r)
		creds.SetAuthTokens(result.AccessToken, result.RefreshToken)

		sc := s.newSessionContext(w, r)
		sc.Login(profile.User{
			ID:          result.User.ID,
			Email:       result.User.Email,
			DisplayName: result.User.Name,
		})

		redirectSuccess(w, r, RouteHome)
	}
}

// redirectLoginError sends the user back to the login form with the error
// and their email preserved.
func (s *Server) redirectLoginError(w http.ResponseWriter, r *http.Request, email, errorMsg string) {
	fullPath := RouteLogin + "?error=" + url.QueryEscape(errorMsg)
	if email != "" {
		fullPath += "&email=" + url.QueryEscape(email)
	}
	if isHTMXRequest(r) {
		w.Header().Set("HX-Redirect", fullPath)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, fullPath, http.StatusSeeOther)
}

// backendErrorMessage surfaces the backend's own error text when there is
// one. Transport failures already carry a user-facing message.
func backendErrorMessage(err error) string {
	var apiErr *gateway.APIError
	if apperrors.As(err, &apiErr) {
		return apiErr.Message
	}
	return gateway.TransportErrorMessage
}

// LogoutHandler revokes the session with the backend on a best-effort basis
// and always clears the local cookies, even when revocation fails.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc := s.newSessionContext(w, r)
		sc.Hydrate()
		sc.Logout(r.Context())

		tokens.NewStore(w, r).ClearAuthTokens()

		redirectSuccess(w, r, RouteLogin)
	}
}

func (s *Server) RegisterPageHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("register.html")
	return func(w http.ResponseWriter, r *http.Request) {
		data := LoginPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
			Email:   r.URL.Query().Get("email"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	}
}

// RegisterSubmissionHandler validates the form locally, then creates an
// admin account via the backend. Validation failures never reach the network.
func (s *Server) RegisterSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithError(w, r, RouteRegister, "Invalid form submission")
			return
		}

		form := account.RegisterForm{
			FirstName:   r.FormValue("first_name"),
			LastName:    r.FormValue("last_name"),
			Email:       r.FormValue("email"),
			Password:    r.FormValue("password"),
			PhoneNumber: r.FormValue("phone_number"),
			DateOfBirth: r.FormValue("date_of_birth"),
		}
		if err := form.Validate(); err != nil {
			redirectWithError(w, r, RouteRegister, err.Error())
			return
		}

		_, err := s.backend.Register(r.Context(), gateway.RegisterRequest{
			FirstName:   form.FirstName,
			LastName:    form.LastName,
			Email:       form.Email,
			Password:    form.Password,
			PhoneNumber: form.PhoneNumber,
			DateOfBirth: form.DateOfBirth,
			Status:      "Active",
			UserType:    "Admin",
		})
		if err != nil {
			log.Err(err).Str("email", form.Email).Msg("registration failed")
			redirectWithError(w, r, RouteRegister, backendErrorMessage(err))
			return
		}

		redirectSuccess(w, r, RouteLogin+"?message="+url.QueryEscape("Account created. Please sign in."))
	}
}
