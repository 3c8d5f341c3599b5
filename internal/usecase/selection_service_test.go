package usecase

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"stadium-admin/internal/domain"
	"stadium-admin/internal/infrastructure/selection"
)

func TestSelectionSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	svc := &SelectionService{Store: selection.NewFSStore(dir)}

	st := &domain.Stadium{ID: "st1", Name: "North Arena", Capacity: 40000, Active: true}
	sh := &domain.Shop{ID: "sh1", StadiumID: "st1", Name: "Halftime Grill", Admins: []string{"u1"}}

	if err := svc.SetSelectedStadium("sess1", st); err != nil {
		t.Fatalf("SetSelectedStadium: %v", err)
	}
	if err := svc.SetSelectedShop("sess1", sh); err != nil {
		t.Fatalf("SetSelectedShop: %v", err)
	}

	// A fresh service over the same directory plays the part of a reload.
	reloaded := &SelectionService{Store: selection.NewFSStore(dir)}
	sel := reloaded.Selection("sess1")
	if !reflect.DeepEqual(sel.Stadium, st) {
		t.Fatalf("stadium after reload = %+v, want %+v", sel.Stadium, st)
	}
	if !reflect.DeepEqual(sel.Shop, sh) {
		t.Fatalf("shop after reload = %+v, want %+v", sel.Shop, sh)
	}
}

func TestSelectionClearRemovesEntry(t *testing.T) {
	dir := t.TempDir()
	svc := &SelectionService{Store: selection.NewFSStore(dir)}

	st := &domain.Stadium{ID: "st1", Name: "North Arena", Capacity: 40000}
	if err := svc.SetSelectedStadium("sess1", st); err != nil {
		t.Fatalf("SetSelectedStadium: %v", err)
	}
	if err := svc.SetSelectedStadium("sess1", nil); err != nil {
		t.Fatalf("clear stadium: %v", err)
	}

	reloaded := &SelectionService{Store: selection.NewFSStore(dir)}
	if sel := reloaded.Selection("sess1"); !sel.Empty() {
		t.Fatalf("selection after clear = %+v", sel)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("leftover storage entries: %v", entries)
	}
}

func TestSelectionFieldsIndependent(t *testing.T) {
	dir := t.TempDir()
	svc := &SelectionService{Store: selection.NewFSStore(dir)}

	if err := svc.SetSelectedStadium("sess1", &domain.Stadium{ID: "st1"}); err != nil {
		t.Fatalf("SetSelectedStadium: %v", err)
	}
	if err := svc.SetSelectedShop("sess1", &domain.Shop{ID: "sh9", StadiumID: "other"}); err != nil {
		t.Fatalf("SetSelectedShop: %v", err)
	}
	sel := svc.Selection("sess1")
	if sel.Stadium == nil || sel.Stadium.ID != "st1" {
		t.Fatalf("stadium clobbered: %+v", sel)
	}
	if sel.Shop == nil || sel.Shop.StadiumID != "other" {
		t.Fatalf("shop not stored as given: %+v", sel)
	}
}

func TestSelectionMalformedStorage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "selection_sess1.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	svc := &SelectionService{Store: selection.NewFSStore(dir)}
	if sel := svc.Selection("sess1"); !sel.Empty() {
		t.Fatalf("malformed entry produced %+v", sel)
	}
}
