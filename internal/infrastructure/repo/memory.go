package repo

import (
	"sync"

	"stadium-admin/internal/domain"
)

type MemoryOrderRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.Order
}

func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{m: make(map[string]*domain.Order)}
}

func (r *MemoryOrderRepo) Put(o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.m[o.ID] = &cp
	return nil
}

func (r *MemoryOrderRepo) Get(id string) (*domain.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.m[id]
	if !ok {
		return nil, false
	}
	cp := *o
	return &cp, true
}

func (r *MemoryOrderRepo) List(stadiumID string, status *domain.OrderStatus) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, 0, len(r.m))
	for _, o := range r.m {
		if stadiumID != "" && o.StadiumID != stadiumID {
			continue
		}
		if status != nil && o.Status != *status {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

type MemoryStadiumRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.Stadium
}

func NewMemoryStadiumRepo() *MemoryStadiumRepo {
	return &MemoryStadiumRepo{m: make(map[string]*domain.Stadium)}
}

func (r *MemoryStadiumRepo) PutStadium(st *domain.Stadium) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *st
	r.m[st.ID] = &cp
	return nil
}

func (r *MemoryStadiumRepo) GetStadium(id string) (*domain.Stadium, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.m[id]
	if !ok {
		return nil, false
	}
	cp := *st
	return &cp, true
}

func (r *MemoryStadiumRepo) ListStadiums(ownerID string, activeOnly bool) ([]domain.Stadium, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Stadium, 0, len(r.m))
	for _, st := range r.m {
		if ownerID != "" && st.OwnerID != ownerID {
			continue
		}
		if activeOnly && !st.Active {
			continue
		}
		out = append(out, *st)
	}
	return out, nil
}

type MemoryShopRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.Shop
}

func NewMemoryShopRepo() *MemoryShopRepo {
	return &MemoryShopRepo{m: make(map[string]*domain.Shop)}
}

func (r *MemoryShopRepo) PutShop(sh *domain.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *sh
	r.m[sh.ID] = &cp
	return nil
}

func (r *MemoryShopRepo) GetShop(id string) (*domain.Shop, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sh, ok := r.m[id]
	if !ok {
		return nil, false
	}
	cp := *sh
	return &cp, true
}

func (r *MemoryShopRepo) ListShops(stadiumID string) ([]domain.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Shop, 0, len(r.m))
	for _, sh := range r.m {
		if stadiumID != "" && sh.StadiumID != stadiumID {
			continue
		}
		out = append(out, *sh)
	}
	return out, nil
}

func (r *MemoryShopRepo) DeleteShop(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, id)
	return nil
}

type MemoryMenuRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.MenuItem
}

func NewMemoryMenuRepo() *MemoryMenuRepo {
	return &MemoryMenuRepo{m: make(map[string]*domain.MenuItem)}
}

func (r *MemoryMenuRepo) PutMenuItem(m *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.m[m.ID] = &cp
	return nil
}

func (r *MemoryMenuRepo) GetMenuItem(id string) (*domain.MenuItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.m[id]
	if !ok {
		return nil, false
	}
	cp := *m
	return &cp, true
}

func (r *MemoryMenuRepo) ListMenuItems(shopID string) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.MenuItem, 0, len(r.m))
	for _, m := range r.m {
		if shopID != "" && m.ShopID != shopID {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *MemoryMenuRepo) DeleteMenuItem(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, id)
	return nil
}

type MemoryUserRepo struct {
	mu sync.RWMutex
	m  map[string]*domain.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{m: make(map[string]*domain.User)}
}

func (r *MemoryUserRepo) PutUser(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.m[u.ID] = &cp
	return nil
}

func (r *MemoryUserRepo) GetUser(id string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.m[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

func (r *MemoryUserRepo) GetUserByEmail(email string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.m {
		if u.Email == email {
			cp := *u
			return &cp, true
		}
	}
	return nil, false
}
