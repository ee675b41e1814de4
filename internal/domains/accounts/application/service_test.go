package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	accmemory "github.com/pawhaven/pawhaven/internal/domains/accounts/adapters/memory"
	"github.com/pawhaven/pawhaven/internal/domains/accounts/ports"
)

func newTestService(t *testing.T, opts ...Option) (*Service, *accmemory.SessionStore) {
	t.Helper()
	sessions := accmemory.NewSessionStore()
	svc := NewService(accmemory.NewRepository(), sessions, opts...)
	return svc, sessions
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.Register(context.Background(), "admin", "hunter22")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "hunter22", user.PasswordHash)
	require.True(t, user.CheckPassword("hunter22"))
	require.False(t, user.CheckPassword("wrong"))
}

func TestRegister_ShortUsername(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "abc", "hunter22")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_IssuesSessionToken(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Register(context.Background(), "admin", "hunter22")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "admin", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, "admin", result.User.Username)

	user, err := svc.Authenticate(context.Background(), result.Token)
	require.NoError(t, err)
	require.Equal(t, result.User.ID, user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Register(context.Background(), "admin", "hunter22")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "admin", "nope")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogin_UnknownUserLooksLikeBadCredentials(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "ghost", "hunter22")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogout_DropsSession(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Register(context.Background(), "admin", "hunter22")
	require.NoError(t, err)
	result, err := svc.Login(context.Background(), "admin", "hunter22")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.Token))
	_, err = svc.Authenticate(context.Background(), result.Token)
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestAuthenticate_ExpiredSession(t *testing.T) {
	current := time.Now()
	svc, _ := newTestService(t,
		WithSessionTTL(time.Minute),
		WithClock(func() time.Time { return current }),
	)
	_, err := svc.Register(context.Background(), "admin", "hunter22")
	require.NoError(t, err)
	result, err := svc.Login(context.Background(), "admin", "hunter22")
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = svc.Authenticate(context.Background(), result.Token)
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}
