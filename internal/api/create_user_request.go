// File: internal/api/create_user_request.go
package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name         string  `json:"nome" validate:"required,min=3" example:"Alice Souza"`
	Email        string  `json:"email" validate:"required,email" example:"alice@example.com"`
	CPF          string  `json:"cpf" validate:"required" example:"39053344705"`
	Password     string  `json:"senha" validate:"required,min=8" example:"Secret123!"`
	Address      *string `json:"endereco,omitempty" example:"Rua das Flores, 123"`
	State        *string `json:"estado,omitempty" example:"PE"`
	City         *string `json:"cidade,omitempty" example:"Recife"`
	Neighborhood *string `json:"bairro,omitempty" example:"Boa Viagem"`
	PostalCode   *string `json:"cep,omitempty" example:"51020-000"`
	Phone        *string `json:"telefone,omitempty" example:"+55 81 99999-0000"`
}
