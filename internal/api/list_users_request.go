// File: internal/api/list_users_request.go
package api

// ListUsersRequest binds the paging query string. Pointers distinguish an
// absent parameter (defaulted) from an explicit out-of-range one (rejected).
// swagger:model api.ListUsersRequest
type ListUsersRequest struct {
	Page  *int `query:"page" validate:"omitempty,min=1" example:"1"`
	Limit *int `query:"limit" validate:"omitempty,min=1,max=100" example:"10"`
}
