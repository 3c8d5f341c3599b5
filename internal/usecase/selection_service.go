package usecase

import "stadium-admin/internal/domain"

// SelectionStore persists per-session venue selections. Load returns
// (zero, false) for an absent or unreadable entry; it never errors on
// malformed data.
type SelectionStore interface {
	Load(sessionID string) (domain.Selection, bool)
	Save(sessionID string, sel domain.Selection) error
	Clear(sessionID string) error
}

// SelectionService tracks which stadium and shop a session has active.
// The two fields are independent: nothing checks that the shop belongs to
// the selected stadium.
type SelectionService struct {
	Store SelectionStore
}

func (s *SelectionService) Selection(sessionID string) domain.Selection {
	sel, _ := s.Store.Load(sessionID)
	return sel
}

func (s *SelectionService) SetSelectedStadium(sessionID string, st *domain.Stadium) error {
	sel, _ := s.Store.Load(sessionID)
	sel.Stadium = st
	return s.put(sessionID, sel)
}

func (s *SelectionService) SetSelectedShop(sessionID string, sh *domain.Shop) error {
	sel, _ := s.Store.Load(sessionID)
	sel.Shop = sh
	return s.put(sessionID, sel)
}

// Clear drops the whole selection, used at logout.
func (s *SelectionService) Clear(sessionID string) error {
	if err := s.Store.Clear(sessionID); err != nil {
		return &StoreError{Op: "clear selection", Err: err}
	}
	return nil
}

func (s *SelectionService) put(sessionID string, sel domain.Selection) error {
	if sel.Empty() {
		return s.Clear(sessionID)
	}
	if err := s.Store.Save(sessionID, sel); err != nil {
		return &StoreError{Op: "save selection", Err: err}
	}
	return nil
}
