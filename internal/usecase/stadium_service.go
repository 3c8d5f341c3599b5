package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"stadium-admin/internal/domain"
)

type StadiumRepo interface {
	PutStadium(*domain.Stadium) error
	GetStadium(id string) (*domain.Stadium, bool)
	ListStadiums(ownerID string, activeOnly bool) ([]domain.Stadium, error)
}

type StadiumService struct {
	Repo StadiumRepo
}

func (s *StadiumService) Create(ownerID string, st *domain.Stadium) (string, error) {
	if strings.TrimSpace(st.Name) == "" {
		return "", ErrValidation("stadium name required")
	}
	if st.Capacity <= 0 {
		return "", ErrValidation("capacity must be positive")
	}
	now := time.Now().UTC()
	st.ID = uuid.NewString()
	st.OwnerID = ownerID
	st.Active = true
	st.CreatedAt = now
	st.UpdatedAt = now
	if err := s.Repo.PutStadium(st); err != nil {
		return "", &StoreError{Op: "put stadium", Err: err}
	}
	return st.ID, nil
}

func (s *StadiumService) Get(id string) (*domain.Stadium, error) {
	st, ok := s.Repo.GetStadium(id)
	if !ok {
		return nil, ErrNotFound("stadium")
	}
	return st, nil
}

func (s *StadiumService) List(ownerID string, activeOnly bool) ([]domain.Stadium, error) {
	out, err := s.Repo.ListStadiums(ownerID, activeOnly)
	if err != nil {
		return nil, &StoreError{Op: "list stadiums", Err: err}
	}
	return out, nil
}

func (s *StadiumService) Update(userID string, st *domain.Stadium) error {
	cur, ok := s.Repo.GetStadium(st.ID)
	if !ok {
		return ErrNotFound("stadium")
	}
	if cur.OwnerID != userID {
		return ErrAuth("not the stadium owner")
	}
	if st.Capacity <= 0 {
		return ErrValidation("capacity must be positive")
	}
	st.OwnerID = cur.OwnerID
	st.Active = cur.Active
	st.CreatedAt = cur.CreatedAt
	st.UpdatedAt = time.Now().UTC()
	if err := s.Repo.PutStadium(st); err != nil {
		return &StoreError{Op: "put stadium", Err: err}
	}
	return nil
}

// Deactivate is the soft delete: the row stays, Active flips to false.
func (s *StadiumService) Deactivate(userID, id string) error {
	cur, ok := s.Repo.GetStadium(id)
	if !ok {
		return ErrNotFound("stadium")
	}
	if cur.OwnerID != userID {
		return ErrAuth("not the stadium owner")
	}
	cur.Active = false
	cur.UpdatedAt = time.Now().UTC()
	if err := s.Repo.PutStadium(cur); err != nil {
		return &StoreError{Op: "put stadium", Err: err}
	}
	return nil
}
