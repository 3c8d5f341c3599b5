package usecase

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"stadium-admin/internal/domain"
)

type UserRepo interface {
	PutUser(*domain.User) error
	GetUser(id string) (*domain.User, bool)
	GetUserByEmail(email string) (*domain.User, bool)
}

// IdentityGateway is the hosted identity provider boundary. It owns
// credentials; the portal only stores profile rows.
type IdentityGateway interface {
	SignUp(email, password string) (subjectID string, err error)
	SignIn(email, password string) (subjectID string, err error)
}

type AuthService struct {
	Repo             UserRepo
	Identity         IdentityGateway
	JWTSecret        string
	RegistrationCode string
}

func (s *AuthService) Register(name, email, password string, role domain.Role, code string) (string, *domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return "", nil, ErrValidation("name, email and password required")
	}
	if !role.Valid() {
		return "", nil, ErrValidation("unknown role")
	}
	if code != s.RegistrationCode {
		return "", nil, ErrAuth("invalid registration code")
	}
	if _, ok := s.Repo.GetUserByEmail(email); ok {
		return "", nil, ErrConflict("email already registered")
	}
	subject, err := s.Identity.SignUp(email, password)
	if err != nil {
		// A previous attempt may have created the identity account and then
		// failed before the profile row was stored. If the credentials sign
		// in, adopt that account instead of leaving the email unusable.
		subject, err = s.Identity.SignIn(email, password)
		if err != nil {
			return "", nil, ErrAuth("identity provider rejected signup")
		}
	}
	now := time.Now().UTC()
	u := &domain.User{
		ID:        subject,
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if err := s.Repo.PutUser(u); err != nil {
		return "", nil, &StoreError{Op: "put user", Err: err}
	}
	token, err := s.sign(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	subject, err := s.Identity.SignIn(email, password)
	if err != nil {
		return "", nil, ErrAuth("invalid credentials")
	}
	u, ok := s.Repo.GetUser(subject)
	if !ok {
		// Identity row without a profile: fall back to the email index.
		u, ok = s.Repo.GetUserByEmail(email)
		if !ok {
			return "", nil, ErrNotFound("user")
		}
	}
	token, err := s.sign(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) sign(u *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role":    string(u.Role),
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.JWTSecret))
	if err != nil {
		return "", ErrAuth("cannot sign token")
	}
	return signed, nil
}

// Verify parses a bearer token and returns the subject user id and role.
func (s *AuthService) Verify(token string) (string, domain.Role, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(s.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return "", "", ErrAuth("invalid or expired token")
	}
	m, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrAuth("malformed claims")
	}
	uid, _ := m["user_id"].(string)
	role, _ := m["role"].(string)
	if uid == "" {
		return "", "", ErrAuth("token missing subject")
	}
	return uid, domain.Role(role), nil
}
