package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"vet-recetas/internal/platform/password"
	"vet-recetas/internal/ports/auth"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrFieldTooLong       = fmt.Errorf("%w: field too long", ErrInvalidInput)
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	repo   Repository
	tokens auth.TokenIssuer // puede ser nil: login sin token
	now    func() time.Time

	hash   func(string) (string, error)
	verify func(plain, encoded string) (bool, error)

	// dummyHash se verifica cuando el email no existe, para que el login
	// tarde lo mismo con o sin usuario.
	dummyOnce sync.Once
	dummyHash string
}

func NewService(repo Repository, tokens auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		now:    time.Now,
		hash:   password.Hash,
		verify: password.Verify,
	}
}

type SignupInput struct {
	OwnerName string
	Email     string
	Password  string
}

// Signup no hace pre-chequeo de existencia: la unique constraint del
// storage decide y su violación se traduce a ErrEmailTaken.
func (s *Service) Signup(ctx context.Context, in SignupInput) (User, error) {
	name := strings.TrimSpace(in.OwnerName)
	email := NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}
	if utf8.RuneCountInString(name) > MaxOwnerNameLen || utf8.RuneCountInString(email) > MaxEmailLen {
		return User{}, ErrFieldTooLong
	}

	hashed, err := s.hash(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("signup: hash password: %w", err)
	}

	u := &User{
		OwnerName:    name,
		Email:        email,
		PasswordHash: hashed,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return *u, nil
}

type LoginInput struct {
	Email    string
	Password string
}

type Session struct {
	User        User
	AccessToken string
	ExpiresAt   time.Time
}

func (s *Service) Login(ctx context.Context, in LoginInput) (Session, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return Session{}, ErrInvalidInput
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			_, _ = s.verify(in.Password, s.dummy())
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	ok, err := s.verify(in.Password, u.PasswordHash)
	if err != nil {
		return Session{}, fmt.Errorf("login: verify password: %w", err)
	}
	if !ok || !u.IsActive {
		return Session{}, ErrInvalidCredentials
	}

	out := Session{User: u}
	if s.tokens != nil {
		tok, exp, err := s.tokens.Issue(u.ID, u.Email)
		if err != nil {
			return Session{}, err
		}
		out.AccessToken = tok
		out.ExpiresAt = exp
	}
	return out, nil
}

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.hash("vet-recetas-dummy-password")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Exists permite a recetas validar el owner sin importar este paquete.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
