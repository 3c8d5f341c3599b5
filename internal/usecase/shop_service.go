package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"stadium-admin/internal/domain"
)

type ShopRepo interface {
	PutShop(*domain.Shop) error
	GetShop(id string) (*domain.Shop, bool)
	ListShops(stadiumID string) ([]domain.Shop, error)
	DeleteShop(id string) error
}

// ObjectDeleter removes an uploaded object by its public URL.
type ObjectDeleter interface {
	Delete(url string) error
}

type ShopService struct {
	Repo     ShopRepo
	Stadiums StadiumRepo
	Objects  ObjectDeleter
}

func (s *ShopService) Create(userID, stadiumID string, sh *domain.Shop) (string, error) {
	if strings.TrimSpace(sh.Name) == "" {
		return "", ErrValidation("shop name required")
	}
	if _, ok := s.Stadiums.GetStadium(stadiumID); !ok {
		return "", ErrNotFound("stadium")
	}
	now := time.Now().UTC()
	sh.ID = uuid.NewString()
	sh.StadiumID = stadiumID
	if !sh.HasAdmin(userID) {
		sh.Admins = append(sh.Admins, userID)
	}
	sh.CreatedAt = now
	sh.UpdatedAt = now
	if err := s.Repo.PutShop(sh); err != nil {
		return "", &StoreError{Op: "put shop", Err: err}
	}
	return sh.ID, nil
}

func (s *ShopService) Get(id string) (*domain.Shop, error) {
	sh, ok := s.Repo.GetShop(id)
	if !ok {
		return nil, ErrNotFound("shop")
	}
	return sh, nil
}

func (s *ShopService) ListByStadium(stadiumID string) ([]domain.Shop, error) {
	out, err := s.Repo.ListShops(stadiumID)
	if err != nil {
		return nil, &StoreError{Op: "list shops", Err: err}
	}
	return out, nil
}

func (s *ShopService) Update(userID string, sh *domain.Shop) error {
	cur, ok := s.Repo.GetShop(sh.ID)
	if !ok {
		return ErrNotFound("shop")
	}
	if !cur.HasAdmin(userID) {
		return ErrAuth("not a shop admin")
	}
	if strings.TrimSpace(sh.Name) == "" {
		return ErrValidation("shop name required")
	}
	sh.StadiumID = cur.StadiumID
	if len(sh.Admins) == 0 {
		sh.Admins = cur.Admins
	}
	sh.CreatedAt = cur.CreatedAt
	sh.UpdatedAt = time.Now().UTC()
	if err := s.Repo.PutShop(sh); err != nil {
		return &StoreError{Op: "put shop", Err: err}
	}
	return nil
}

// Delete removes the shop row for good and cleans up its uploaded image.
// Unlike stadiums there is no soft-delete flag for shops.
func (s *ShopService) Delete(userID, id string) error {
	cur, ok := s.Repo.GetShop(id)
	if !ok {
		return ErrNotFound("shop")
	}
	if !cur.HasAdmin(userID) {
		return ErrAuth("not a shop admin")
	}
	if err := s.Repo.DeleteShop(id); err != nil {
		return &StoreError{Op: "delete shop", Err: err}
	}
	if cur.ImageURL != "" && s.Objects != nil {
		// Image cleanup is best-effort; the row is already gone.
		_ = s.Objects.Delete(cur.ImageURL)
	}
	return nil
}
