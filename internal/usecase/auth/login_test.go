package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeFinder struct {
	user    *User
	err     error
	lookups int
}

func (f *fakeFinder) FindByEmail(_ context.Context, _ string) (*User, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin_OK(t *testing.T) {
	finder := &fakeFinder{user: &User{
		ID:           "u1",
		Name:         "User",
		Email:        "user@nextmail.com",
		PasswordHash: mustHash(t, "123456"),
	}}
	uc := NewLoginUsecase(finder, BcryptComparer{}, "test-secret", 60)

	res, err := uc.Execute(context.Background(), "user@nextmail.com", "123456")
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.Equal(t, 3600, res.ExpiresIn)
	require.Equal(t, "user@nextmail.com", res.Email)
}

// A short password fails before any store lookup is issued.
func TestLogin_ShortPassword_NoLookup(t *testing.T) {
	finder := &fakeFinder{}
	uc := NewLoginUsecase(finder, BcryptComparer{}, "test-secret", 60)

	_, err := uc.Execute(context.Background(), "a@b.com", "short")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Zero(t, finder.lookups)
}

func TestLogin_BadEmail_NoLookup(t *testing.T) {
	finder := &fakeFinder{}
	uc := NewLoginUsecase(finder, BcryptComparer{}, "test-secret", 60)

	_, err := uc.Execute(context.Background(), "not-an-email", "123456")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Zero(t, finder.lookups)
}

// Wrong password, unknown user, and a failing store are indistinguishable.
func TestLogin_FailuresCollapse(t *testing.T) {
	hash := mustHash(t, "123456")

	wrongPassword := &fakeFinder{user: &User{ID: "u1", Email: "a@b.com", PasswordHash: hash}}
	noSuchUser := &fakeFinder{err: errors.New("no rows in result set")}
	storeDown := &fakeFinder{err: errors.New("connection refused")}

	for name, finder := range map[string]*fakeFinder{
		"wrong password": wrongPassword,
		"no such user":   noSuchUser,
		"store down":     storeDown,
	} {
		t.Run(name, func(t *testing.T) {
			uc := NewLoginUsecase(finder, BcryptComparer{}, "test-secret", 60)

			password := "123456"
			if name == "wrong password" {
				password = "654321"
			}

			res, err := uc.Execute(context.Background(), "a@b.com", password)
			require.Nil(t, res)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}
