package server

// Page routes.
const (
	RouteHome            = "/"
	RouteLogin           = "/login"
	RouteAuthPage        = "/auth"
	RouteRegister        = "/register"
	RouteChat            = "/chat"
	RouteMembers         = "/members"
	RouteTrainers        = "/trainers"
	RouteClasses         = "/classes"
	RouteClassAdd        = "/classes/add"
	RouteClassSessions   = "/class-sessions"
	RouteClassSessionAdd = "/class-sessions/add"
	RouteAttendance      = "/attendance"
	RouteAttendanceAdd   = "/attendance/add"
	RoutePayments        = "/payments"
	RoutePaymentAdd      = "/payments/add"
	RouteGyms            = "/gyms"
	RouteGymAdd          = "/gyms/add"
)

// Action and API routes.
const (
	RouteAuthLogin    = "/auth/login"
	RouteAuthLogout   = "/auth/logout"
	RouteAuthRegister = "/auth/register"
	RouteAuthOidc     = "/auth/oidc"
	RouteCallback     = "/callback"
	RouteAPIAsk       = "/api/ask"
)
