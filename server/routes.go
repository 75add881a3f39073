package server

func (s *Server) initRoutes() {
	// Public pages (on the shell allow-list)
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleWare(s.RequireAnonymous())...))
	s.RegisterRouteHandler("GET "+RouteAuthPage, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleWare(s.RequireAnonymous())...))
	s.RegisterRouteHandler("GET "+RouteRegister, ChainMiddleware(s.RegisterPageHandler(), s.HTMLMiddleWare(s.RequireAnonymous())...))
	s.RegisterRouteHandler("GET "+RouteChat, ChainMiddleware(s.ChatPageHandler(), s.HTMLMiddleWare()...))

	// Auth actions
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteAuthRegister, ChainMiddleware(s.RegisterSubmissionHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare()...))

	// Social login
	s.RegisterRouteHandler("GET "+RouteAuthOidc, ChainMiddleware(s.OidcLoginHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteCallback, ChainMiddleware(s.OAuthCallbackHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteCallback, ChainMiddleware(s.OAuthCallbackHandler(), s.HTMLMiddleWare()...)) // For form_post response mode

	// Protected pages (shell gate plus per-page gate)
	s.RegisterRouteHandler("GET "+RouteHome, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteMembers, ChainMiddleware(s.MembersPageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteTrainers, ChainMiddleware(s.TrainersPageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteClasses, ChainMiddleware(s.ClassesPageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteClassAdd, ChainMiddleware(s.ClassAddPageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("POST "+RouteClassAdd, ChainMiddleware(s.ClassSubmitHandler(), s.HTMLMiddleWare(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteClassSessions, ChainMiddleware(s.ClassSessionsPageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteClassSessionAdd, ChainMiddleware(s.ClassSessionAddPageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("POST "+RouteClassSessionAdd, ChainMiddleware(s.ClassSessionSubmitHandler(), s.HTMLMiddleWare(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteAttendance, ChainMiddleware(s.AttendancePageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteAttendanceAdd, ChainMiddleware(s.AttendanceAddPageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("POST "+RouteAttendanceAdd, ChainMiddleware(s.AttendanceSubmitHandler(), s.HTMLMiddleWare(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RoutePayments, ChainMiddleware(s.PaymentsPageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RoutePaymentAdd, ChainMiddleware(s.PaymentAddPageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("POST "+RoutePaymentAdd, ChainMiddleware(s.PaymentSubmitHandler(), s.HTMLMiddleWare(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteGyms, ChainMiddleware(s.GymsPageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteGymAdd, ChainMiddleware(s.GymAddPageHandler(), s.HTMLMiddleWare(s.ShellGateMiddleware(), s.RequireSession())...))
	s.RegisterRouteHandler("POST "+RouteGymAdd, ChainMiddleware(s.GymSubmitHandler(), s.HTMLMiddleWare(s.RequireSession())...))

	// API routes
	s.RegisterRouteHandler("POST "+RouteAPIAsk, ChainMiddleware(s.AskHandler(), s.APIMiddleware()...))
}
