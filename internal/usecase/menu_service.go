package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"stadium-admin/internal/domain"
)

type MenuRepo interface {
	PutMenuItem(*domain.MenuItem) error
	GetMenuItem(id string) (*domain.MenuItem, bool)
	ListMenuItems(shopID string) ([]domain.MenuItem, error)
	DeleteMenuItem(id string) error
}

type MenuService struct {
	Repo  MenuRepo
	Shops ShopRepo
}

func (s *MenuService) validate(m *domain.MenuItem) error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrValidation("item name required")
	}
	if m.Price.IsNegative() {
		return ErrValidation("price must not be negative")
	}
	if m.PreparationTime <= 0 {
		return ErrValidation("preparation time must be positive")
	}
	return nil
}

func (s *MenuService) Create(userID, shopID string, m *domain.MenuItem) (string, error) {
	sh, ok := s.Shops.GetShop(shopID)
	if !ok {
		return "", ErrNotFound("shop")
	}
	if !sh.HasAdmin(userID) {
		return "", ErrAuth("not a shop admin")
	}
	if err := s.validate(m); err != nil {
		return "", err
	}
	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.ShopID = shopID
	m.StadiumID = sh.StadiumID
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := s.Repo.PutMenuItem(m); err != nil {
		return "", &StoreError{Op: "put menu item", Err: err}
	}
	return m.ID, nil
}

func (s *MenuService) Get(id string) (*domain.MenuItem, error) {
	m, ok := s.Repo.GetMenuItem(id)
	if !ok {
		return nil, ErrNotFound("menu item")
	}
	return m, nil
}

func (s *MenuService) ListByShop(shopID string) ([]domain.MenuItem, error) {
	out, err := s.Repo.ListMenuItems(shopID)
	if err != nil {
		return nil, &StoreError{Op: "list menu items", Err: err}
	}
	return out, nil
}

func (s *MenuService) Update(userID string, m *domain.MenuItem) error {
	cur, ok := s.Repo.GetMenuItem(m.ID)
	if !ok {
		return ErrNotFound("menu item")
	}
	sh, ok := s.Shops.GetShop(cur.ShopID)
	if !ok {
		return ErrNotFound("shop")
	}
	if !sh.HasAdmin(userID) {
		return ErrAuth("not a shop admin")
	}
	if err := s.validate(m); err != nil {
		return err
	}
	m.ShopID = cur.ShopID
	m.StadiumID = cur.StadiumID
	m.CreatedAt = cur.CreatedAt
	m.UpdatedAt = time.Now().UTC()
	if err := s.Repo.PutMenuItem(m); err != nil {
		return &StoreError{Op: "put menu item", Err: err}
	}
	return nil
}

func (s *MenuService) Delete(userID, id string) error {
	cur, ok := s.Repo.GetMenuItem(id)
	if !ok {
		return ErrNotFound("menu item")
	}
	sh, ok := s.Shops.GetShop(cur.ShopID)
	if !ok {
		return ErrNotFound("shop")
	}
	if !sh.HasAdmin(userID) {
		return ErrAuth("not a shop admin")
	}
	if err := s.Repo.DeleteMenuItem(id); err != nil {
		return &StoreError{Op: "delete menu item", Err: err}
	}
	return nil
}
