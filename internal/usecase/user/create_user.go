package user

import (
	"context"

	"github.com/BruksfildServices01/crm-api/internal/auth"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/models"
	"github.com/BruksfildServices01/crm-api/internal/validators"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// CreateUser adds a user on behalf of an authenticated principal. Register
// in the auth use cases shares it.
type CreateUser struct {
	repo        domainUser.Repository
	emailDomain validators.DomainChecker
}

func NewCreateUser(repo domainUser.Repository, check validators.DomainChecker) *CreateUser {
	if check == nil {
		check = validators.AcceptAll
	}
	return &CreateUser{repo: repo, emailDomain: check}
}

func (uc *CreateUser) Execute(ctx context.Context, in CreateUserInput) (*models.User, error) {
	email := validators.NormalizeEmail(in.Email)
	if !uc.emailDomain(email) {
		return nil, errEmailDomain
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, translate(err)
	}

	return u, nil
}
