// File: internal/api/user_response.go
package api

import "cadastro-api/internal/model"

// UserResponse is the outward shape of a user; the password hash never
// appears here.
// swagger:model api.UserResponse
type UserResponse struct {
	ID     int    `json:"id_usuario" example:"1"`
	Name   string `json:"nome" example:"Alice Souza"`
	Email  string `json:"email" example:"alice@example.com"`
	CPF    string `json:"cpf" example:"39053344705"`
	Active bool   `json:"chk_ativo" example:"true"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		CPF:    u.CPF,
		Active: u.Active,
	}
}
