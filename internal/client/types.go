package client

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/crm-api/internal/dto"
	"github.com/BruksfildServices01/crm-api/internal/pagination"
)

// Page is the list envelope every list endpoint returns.
type Page[T any] struct {
	Data       []T             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

type item[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type ListParams struct {
	Search string
	// Status filters projects.
	Status int
	// All lists every owner's contacts.
	All     bool
	Page    int
	PerPage int
}

type AuthResult struct {
	Message string       `json:"message"`
	User    *dto.UserDTO `json:"user"`
	Token   string       `json:"token"`
}

type RegisterInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type ResetPasswordInput struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type UserInput struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ContactInput leaves out nil fields, so an update only touches what is set.
type ContactInput struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Company     *string `json:"company,omitempty"`
	UserID      *uint   `json:"user_id,omitempty"`
}

// ProjectInput is sent whole; a nil Description or ContactID clears it.
type ProjectInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      int     `json:"status"`
	ContactID   *uint   `json:"contact_id"`
}

type Stats struct {
	TotalUsers       int64            `json:"total_users"`
	TotalContacts    int64            `json:"total_contacts"`
	TotalProjects    int64            `json:"total_projects"`
	ProjectsByStatus map[string]int64 `json:"projects_by_status"`
}

// APIError is a non-2xx answer decoded from the error envelope.
type APIError struct {
	Status  int
	Code    string              `json:"error_code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s: %s", e.Status, e.Code, e.Message)
	for field, msgs := range e.Errors {
		fmt.Fprintf(&b, "\n  %s: %s", field, strings.Join(msgs, "; "))
	}
	return b.String()
}
