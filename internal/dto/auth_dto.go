package dto

// SessionRequest is the identity claim submitted to POST /jwt. The claim is
// caller-supplied; only the embedded email is relied on downstream, and every
// ownership check compares against it.
type SessionRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photoURL,omitempty"`
}

// SessionResponse carries the bearer credential. Clients replay it as
// "Authorization: Bearer <token>" on guarded routes.
type SessionResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type VerifyUserResponse struct {
	VerifyUser bool `json:"verifyUser"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type AgentCheckResponse struct {
	Agent bool `json:"agent"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// UpdateRoleRequest is the admin-only role patch. Role must parse into the
// closed enum; free-text values are rejected.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}
