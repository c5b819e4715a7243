// File: internal/model/user.go
package model

import "time"

// User mirrors one row of the usuario relation. PasswordHash is read only for
// credential verification and never serialized.
type User struct {
	ID           int       `db:"id_usuario" json:"id_usuario"`
	Name         string    `db:"nome" json:"nome"`
	Email        string    `db:"email" json:"email"`
	CPF          string    `db:"cpf" json:"cpf"`
	PasswordHash string    `db:"senha_hash" json:"-"`
	Active       bool      `db:"chk_ativo" json:"chk_ativo"`
	Address      *string   `db:"endereco" json:"endereco,omitempty"`
	State        *string   `db:"estado" json:"estado,omitempty"`
	City         *string   `db:"cidade" json:"cidade,omitempty"`
	Neighborhood *string   `db:"bairro" json:"bairro,omitempty"`
	PostalCode   *string   `db:"cep" json:"cep,omitempty"`
	Phone        *string   `db:"telefone" json:"telefone,omitempty"`
	CreatedAt    time.Time `db:"criado_em" json:"criado_em"`
}
