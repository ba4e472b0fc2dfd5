package auth

import (
	"context"

	authn "github.com/BruksfildServices01/crm-api/internal/auth"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/models"
	ucUser "github.com/BruksfildServices01/crm-api/internal/usecase/user"
)

// Result is what register and login hand back to the caller.
type Result struct {
	User  *models.User
	Token string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type Register struct {
	create  *ucUser.CreateUser
	issuer  *authn.TokenIssuer
	metrics *metrics.Metrics
}

func NewRegister(
	create *ucUser.CreateUser,
	issuer *authn.TokenIssuer,
	m *metrics.Metrics,
) *Register {
	return &Register{create: create, issuer: issuer, metrics: m}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Result, error) {
	u, err := uc.create.Execute(ctx, ucUser.CreateUserInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		uc.metrics.AuthEvent("register", false)
		return nil, err
	}

	token, _, err := uc.issuer.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	uc.metrics.AuthEvent("register", true)
	return &Result{User: u, Token: token}, nil
}
