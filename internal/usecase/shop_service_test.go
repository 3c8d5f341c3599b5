package usecase

import (
	"errors"
	"testing"

	"stadium-admin/internal/domain"
	"stadium-admin/internal/infrastructure/repo"
)

type recordingDeleter struct {
	urls []string
}

func (d *recordingDeleter) Delete(url string) error {
	d.urls = append(d.urls, url)
	return nil
}

func newShopService(t *testing.T) (*ShopService, string) {
	t.Helper()
	stadiums := repo.NewMemoryStadiumRepo()
	svc := &ShopService{
		Repo:     repo.NewMemoryShopRepo(),
		Stadiums: stadiums,
		Objects:  &recordingDeleter{},
	}
	sts := &StadiumService{Repo: stadiums}
	stadiumID, err := sts.Create("owner-1", &domain.Stadium{Name: "North Arena", Capacity: 40000})
	if err != nil {
		t.Fatalf("create stadium: %v", err)
	}
	return svc, stadiumID
}

func TestShopDeleteIsHardAndCleansImage(t *testing.T) {
	svc, stadiumID := newShopService(t)
	deleter := svc.Objects.(*recordingDeleter)

	id, err := svc.Create("u1", stadiumID, &domain.Shop{
		Name:     "Halftime Grill",
		ImageURL: "/assets/shops/u1/1700000000_logo.png",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete("u1", id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(id); err == nil {
		t.Fatal("shop row survived hard delete")
	}
	if len(deleter.urls) != 1 || deleter.urls[0] != "/assets/shops/u1/1700000000_logo.png" {
		t.Fatalf("image cleanup calls = %v", deleter.urls)
	}
}

func TestShopDeleteRequiresAdmin(t *testing.T) {
	svc, stadiumID := newShopService(t)
	deleter := svc.Objects.(*recordingDeleter)

	id, err := svc.Create("u1", stadiumID, &domain.Shop{
		Name:     "Halftime Grill",
		ImageURL: "/assets/shops/u1/1700000000_logo.png",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Delete("intruder", id)
	var authErr ErrAuth
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want ErrAuth", err)
	}
	if _, err := svc.Get(id); err != nil {
		t.Fatalf("shop removed by non-admin: %v", err)
	}
	if len(deleter.urls) != 0 {
		t.Fatalf("image deleted on refused delete: %v", deleter.urls)
	}
}

func TestShopDeleteWithoutImage(t *testing.T) {
	svc, stadiumID := newShopService(t)
	deleter := svc.Objects.(*recordingDeleter)

	id, err := svc.Create("u1", stadiumID, &domain.Shop{Name: "Corner Stand"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete("u1", id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(deleter.urls) != 0 {
		t.Fatalf("cleanup called with no image: %v", deleter.urls)
	}
}
