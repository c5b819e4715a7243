// File: internal/api/login_response.go
package api

// UserProfile is the minimal public profile returned on login.
// swagger:model api.UserProfile
type UserProfile struct {
	Name  string `json:"nome" example:"Alice Souza"`
	Email string `json:"email" example:"alice@example.com"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"usuario"`
}
