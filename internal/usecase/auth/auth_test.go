package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"

	authn "github.com/BruksfildServices01/crm-api/internal/auth"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/infra/memstore"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	ucUser "github.com/BruksfildServices01/crm-api/internal/usecase/user"
)

func TestMain(m *testing.M) {
	authn.Cost = bcrypt.MinCost
	os.Exit(m.Run())
}

type fixture struct {
	store    *memstore.Store
	issuer   *authn.TokenIssuer
	register *Register
	login    *Login
	logout   *Logout
}

func newFixture() *fixture {
	store := memstore.New()
	issuer := authn.NewTokenIssuer("test-secret", time.Hour)
	m := metrics.New(prometheus.NewRegistry(), "test")

	return &fixture{
		store:    store,
		issuer:   issuer,
		register: NewRegister(ucUser.NewCreateUser(store.Users(), nil), issuer, m),
		login:    NewLogin(store.Users(), issuer, m),
		logout:   NewLogout(store.Revocations(), m),
	}
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	res, err := f.register.Execute(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	claims, err := f.issuer.Parse(res.Token)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id)

	_, err = f.register.Execute(ctx, RegisterInput{Name: "Again", Email: "alice@example.com", Password: "secret123"})
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	got, err := f.login.Execute(ctx, "ALICE@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, got.User.ID)
	assert.NotEqual(t, res.Token, got.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.register.Execute(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, wrongPass := f.login.Execute(ctx, "alice@example.com", "nope-nope")
	_, unknown := f.login.Execute(ctx, "ghost@example.com", "secret123")

	assert.Equal(t, wrongPass, unknown)
	assert.True(t, httperr.IsBusiness(wrongPass, "invalid_credentials"))
}

func TestLogoutRevokesOnlyThatToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	first, err := f.register.Execute(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	second, err := f.login.Execute(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)

	claims, err := f.issuer.Parse(first.Token)
	require.NoError(t, err)
	require.NoError(t, f.logout.Execute(ctx, claims))

	revoked, err := f.store.Revocations().IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	other, err := f.issuer.Parse(second.Token)
	require.NoError(t, err)
	revoked, err = f.store.Revocations().IsRevoked(ctx, other.ID)
	require.NoError(t, err)
	assert.False(t, revoked)

	assert.ErrorIs(t, f.logout.Execute(ctx, &authn.Claims{}), authn.ErrInvalidToken)
}

func TestForgotPasswordIsGeneric(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.register.Execute(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	uc := NewForgotPassword(f.store.Users(), nil)
	known, err := uc.Execute(ctx, "alice@example.com")
	require.NoError(t, err)
	unknown, err := uc.Execute(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Equal(t, known, unknown)
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("enabled resets and warns", func(t *testing.T) {
		f := newFixture()
		_, err := f.register.Execute(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
		require.NoError(t, err)

		core, logs := observer.New(zapcore.WarnLevel)
		uc := NewResetPassword(f.store.Users(), true, nil, zap.New(core))

		require.NoError(t, uc.Execute(ctx, ResetPasswordInput{Email: "alice@example.com", Password: "brand-new-pass"}))
		_, err = f.login.Execute(ctx, "alice@example.com", "brand-new-pass")
		require.NoError(t, err)
		assert.Equal(t, 1, logs.Len())

		err = uc.Execute(ctx, ResetPasswordInput{Email: "ghost@example.com", Password: "brand-new-pass"})
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})

	t.Run("disabled refuses", func(t *testing.T) {
		f := newFixture()
		_, err := f.register.Execute(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
		require.NoError(t, err)

		uc := NewResetPassword(f.store.Users(), false, nil, nil)
		err = uc.Execute(ctx, ResetPasswordInput{Email: "alice@example.com", Password: "brand-new-pass"})
		assert.True(t, httperr.IsBusiness(err, "password_reset_disabled"))

		_, err = f.login.Execute(ctx, "alice@example.com", "secret123")
		assert.NoError(t, err)
	})
}
