package usecase

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shopspring/decimal"

	"stadium-admin/internal/domain"
)

type OrderRepo interface {
	Put(*domain.Order) error
	Get(id string) (*domain.Order, bool)
	List(stadiumID string, status *domain.OrderStatus) ([]domain.Order, error)
}

type ShopLookup interface {
	GetShop(id string) (*domain.Shop, bool)
}

type OrderSort int

const (
	SortCreatedDesc OrderSort = iota
	SortTotalDesc
	SortCartSizeDesc
)

type OrderFilter struct {
	StadiumID string
	Status    *domain.OrderStatus
	Sort      OrderSort
}

func (f OrderFilter) matches(o *domain.Order) bool {
	if f.StadiumID != "" && o.StadiumID != f.StadiumID {
		return false
	}
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	return true
}

const nameCacheSize = 256

type OrderService struct {
	Repo  OrderRepo
	Shops ShopLookup

	names *lru.Cache[string, string]

	mu   sync.Mutex
	subs map[*OrderFeed]struct{}
}

func NewOrderService(repo OrderRepo, shops ShopLookup) *OrderService {
	c, _ := lru.New[string, string](nameCacheSize)
	return &OrderService{
		Repo:  repo,
		Shops: shops,
		names: c,
		subs:  map[*OrderFeed]struct{}{},
	}
}

// Create assigns an id and timestamps and stores the order at Pending.
// The total/subtotal relation is deliberately not validated; the store
// accepts whatever the checkout flow computed.
func (s *OrderService) Create(o *domain.Order) (string, error) {
	if len(o.Cart) == 0 {
		return "", ErrValidation("cart is empty")
	}
	if o.ShopID == "" || o.StadiumID == "" {
		return "", ErrValidation("shopId and stadiumId required")
	}
	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.Status = domain.StatusPending
	if o.Restaurant == "" {
		o.Restaurant = domain.ShopRef(o.StadiumID, o.ShopID)
	}
	o.CreatedAt = now
	o.UpdatedAt = now
	if err := s.Repo.Put(o); err != nil {
		return "", &StoreError{Op: "put order", Err: err}
	}
	s.publish(OrderEvent{Kind: EventAdded, Order: *o})
	return o.ID, nil
}

// SetStatus writes the new status code and refreshes UpdatedAt. Any code in
// the closed set is accepted from any current status; re-setting the same
// code is not an error.
func (s *OrderService) SetStatus(id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus(status)
	}
	o, ok := s.Repo.Get(id)
	if !ok {
		return nil, ErrNotFound("order")
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Put(o); err != nil {
		return nil, &StoreError{Op: "put order", Err: err}
	}
	s.publish(OrderEvent{Kind: EventStatusChanged, Order: *o})
	return o, nil
}

func (s *OrderService) Get(id string) (*domain.Order, error) {
	o, ok := s.Repo.Get(id)
	if !ok {
		return nil, ErrNotFound("order")
	}
	return o, nil
}

func (s *OrderService) List(f OrderFilter) ([]domain.Order, error) {
	out, err := s.Repo.List(f.StadiumID, f.Status)
	if err != nil {
		return nil, &StoreError{Op: "list orders", Err: err}
	}
	switch f.Sort {
	case SortTotalDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Total.GreaterThan(out[j].Total)
		})
	case SortCartSizeDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CartSize() > out[j].CartSize()
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out, nil
}

// VenueStats does a full scan over the stadium's orders on every call.
// Nothing is cached between calls.
func (s *OrderService) VenueStats(stadiumID string) (domain.VenueStats, error) {
	orders, err := s.Repo.List(stadiumID, nil)
	if err != nil {
		return domain.VenueStats{}, &StoreError{Op: "list orders", Err: err}
	}
	st := domain.VenueStats{StadiumID: stadiumID, Revenue: decimal.Zero}
	customers := map[string]struct{}{}
	for i := range orders {
		o := &orders[i]
		st.TotalOrders++
		switch {
		case o.Status == domain.StatusDelivered:
			st.CompletedOrders++
			st.Revenue = st.Revenue.Add(o.Total)
		case o.Status == domain.StatusCancelled:
			st.CancelledOrders++
		default:
			st.ActiveOrders++
		}
		if o.CustomerID != "" {
			customers[o.CustomerID] = struct{}{}
		}
	}
	st.UniqueCustomers = len(customers)
	return st, nil
}

// RestaurantName resolves the display name behind a stored shop reference
// path. Results go through a bounded LRU so rendering a page of orders from
// the same shop hits the store once.
func (s *OrderService) RestaurantName(ref string) (string, error) {
	if name, ok := s.names.Get(ref); ok {
		return name, nil
	}
	_, shopID, ok := domain.ParseShopRef(ref)
	if !ok {
		return "", ErrValidation("malformed restaurant reference")
	}
	shop, ok := s.Shops.GetShop(shopID)
	if !ok {
		return "", ErrNotFound("shop")
	}
	s.names.Add(ref, shop.Name)
	return shop.Name, nil
}
