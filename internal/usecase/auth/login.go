package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers every failure mode: malformed input, unknown
// email, store error, wrong password. Callers can never tell them apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// HashComparer is the capability boundary around the hashing algorithm.
type HashComparer interface {
	Compare(hashedPassword, plain string) bool
}

type BcryptComparer struct{}

func (BcryptComparer) Compare(hashedPassword, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plain)) == nil
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

type LoginResult struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"` // seconds
	Name        string `json:"name"`
	Email       string `json:"email"`
}

type LoginUsecase struct {
	finder    UserFinder
	hasher    HashComparer
	jwtSecret []byte
	expMin    int
}

func NewLoginUsecase(finder UserFinder, hasher HashComparer, jwtSecret string, expiresMinutes int) *LoginUsecase {
	if expiresMinutes <= 0 {
		expiresMinutes = 60
	}
	return &LoginUsecase{
		finder:    finder,
		hasher:    hasher,
		jwtSecret: []byte(jwtSecret),
		expMin:    expiresMinutes,
	}
}

var validate = validator.New()

func (u *LoginUsecase) Execute(ctx context.Context, email, password string) (*LoginResult, error) {
	// Structural checks run before any store lookup.
	if len(password) < 6 {
		return nil, ErrInvalidCredentials
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := u.finder.FindByEmail(ctx, email)
	if err != nil {
		// Hide whether the email exists
		return nil, ErrInvalidCredentials
	}

	if !u.hasher.Compare(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	exp := now.Add(time.Duration(u.expMin) * time.Minute)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"typ":   "user",
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: signed,
		ExpiresIn:   u.expMin * 60,
		Name:        user.Name,
		Email:       user.Email,
	}, nil
}
