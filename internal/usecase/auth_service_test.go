package usecase

import (
	"errors"
	"testing"

	"stadium-admin/internal/domain"
	"stadium-admin/internal/infrastructure/identity"
	"stadium-admin/internal/infrastructure/repo"
)

func newAuthService() *AuthService {
	return &AuthService{
		Repo:             repo.NewMemoryUserRepo(),
		Identity:         identity.NewLocal(),
		JWTSecret:        "test-secret",
		RegistrationCode: "VENUE-2025",
	}
}

func TestRegisterRejectsBadCode(t *testing.T) {
	svc := newAuthService()
	_, _, err := svc.Register("Ann", "ann@example.com", "pw", domain.RoleShopOwner, "WRONG")
	var authErr ErrAuth
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want ErrAuth", err)
	}
}

func TestRegisterLoginVerify(t *testing.T) {
	svc := newAuthService()
	token, u, err := svc.Register("Ann", "Ann@Example.com", "pw", domain.RoleStadiumOwner, "VENUE-2025")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "ann@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.Role != domain.RoleStadiumOwner {
		t.Fatalf("role = %q", u.Role)
	}

	uid, role, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if uid != u.ID || role != domain.RoleStadiumOwner {
		t.Fatalf("claims = %q/%q, want %q/%q", uid, role, u.ID, u.Role)
	}

	token2, u2, err := svc.Login("ann@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u2.ID != u.ID || token2 == "" {
		t.Fatalf("login returned %+v", u2)
	}

	if _, _, err := svc.Login("ann@example.com", "nope"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	if _, _, err := svc.Register("Ann", "ann@example.com", "pw", domain.RoleShopOwner, "VENUE-2025"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register("Ann Again", "ann@example.com", "pw2", domain.RoleShopOwner, "VENUE-2025")
	var conflict ErrConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

type flakyUserRepo struct {
	*repo.MemoryUserRepo
	failPuts int
}

func (r *flakyUserRepo) PutUser(u *domain.User) error {
	if r.failPuts > 0 {
		r.failPuts--
		return errors.New("store unavailable")
	}
	return r.MemoryUserRepo.PutUser(u)
}

func TestRegisterRetriesAfterProfileWriteFailure(t *testing.T) {
	users := &flakyUserRepo{MemoryUserRepo: repo.NewMemoryUserRepo(), failPuts: 1}
	svc := newAuthService()
	svc.Repo = users

	// First attempt creates the identity account but loses the profile row.
	_, _, err := svc.Register("Ann", "ann@example.com", "pw", domain.RoleShopOwner, "VENUE-2025")
	var storeFail *StoreError
	if !errors.As(err, &storeFail) {
		t.Fatalf("first register err = %v, want StoreError", err)
	}

	// Retrying with the same credentials must adopt the existing identity
	// account rather than failing forever on "account exists".
	token, u, err := svc.Register("Ann", "ann@example.com", "pw", domain.RoleShopOwner, "VENUE-2025")
	if err != nil {
		t.Fatalf("retry register: %v", err)
	}
	if token == "" || u.ID == "" {
		t.Fatalf("retry returned %+v", u)
	}

	if _, u2, err := svc.Login("ann@example.com", "pw"); err != nil || u2.ID != u.ID {
		t.Fatalf("login after retry: %v, user %+v", err, u2)
	}
}

func TestVerifyRejectsForgedToken(t *testing.T) {
	svc := newAuthService()
	other := newAuthService()
	other.JWTSecret = "different"
	token, _, err := other.Register("Eve", "eve@example.com", "pw", domain.RoleShopOwner, "VENUE-2025")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := svc.Verify(token); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}
