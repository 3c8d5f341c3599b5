package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/lib/pq"

	"stadium-admin/internal/domain"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(dsn string) (*PostgresRepo, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	r := &PostgresRepo{db: db}
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostgresRepo) init() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			stadium_id TEXT,
			shop_id TEXT,
			restaurant TEXT,
			customer_id TEXT,
			customer_name TEXT,
			status INT,
			total NUMERIC,
			subtotal NUMERIC,
			delivery_fee NUMERIC,
			discount NUMERIC,
			payment_method INT,
			cart TEXT,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS stadiums (
			id TEXT PRIMARY KEY,
			name TEXT,
			location TEXT,
			capacity INT,
			image_url TEXT,
			about TEXT,
			owner_id TEXT,
			active BOOLEAN,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS shops (
			id TEXT PRIMARY KEY,
			stadium_id TEXT,
			name TEXT,
			location TEXT,
			floor TEXT,
			gate TEXT,
			description TEXT,
			image_url TEXT,
			admins TEXT,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			shop_id TEXT,
			stadium_id TEXT,
			name TEXT,
			description TEXT,
			price NUMERIC,
			category TEXT,
			images TEXT,
			is_available BOOLEAN,
			preparation_time INT,
			customization TEXT,
			allergens TEXT,
			nutritional_info TEXT,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT,
			email TEXT UNIQUE,
			role TEXT,
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		);`,
	}
	for _, q := range stmts {
		if _, err := r.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepo) Put(o *domain.Order) error {
	cart, _ := json.Marshal(o.Cart)
	_, err := r.db.Exec(`INSERT INTO orders (id,stadium_id,shop_id,restaurant,customer_id,customer_name,status,total,subtotal,delivery_fee,discount,payment_method,cart,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO UPDATE SET stadium_id=$2,shop_id=$3,restaurant=$4,customer_id=$5,customer_name=$6,status=$7,total=$8,subtotal=$9,delivery_fee=$10,discount=$11,payment_method=$12,cart=$13,updated_at=$15`,
		o.ID, o.StadiumID, o.ShopID, o.Restaurant, o.CustomerID, o.CustomerName, int(o.Status),
		o.Total.String(), o.Subtotal.String(), o.DeliveryFee.String(), o.Discount.String(),
		int(o.PaymentMethod), string(cart), o.CreatedAt, o.UpdatedAt)
	return err
}

func (r *PostgresRepo) Get(id string) (*domain.Order, bool) {
	row := r.db.QueryRow(`SELECT id,stadium_id,shop_id,restaurant,customer_id,customer_name,status,total,subtotal,delivery_fee,discount,payment_method,cart,created_at,updated_at FROM orders WHERE id=$1`, id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, false
	}
	return o, true
}

func (r *PostgresRepo) List(stadiumID string, status *domain.OrderStatus) ([]domain.Order, error) {
	q := `SELECT id,stadium_id,shop_id,restaurant,customer_id,customer_name,status,total,subtotal,delivery_fee,discount,payment_method,cart,created_at,updated_at FROM orders WHERE 1=1`
	args := []any{}
	if stadiumID != "" {
		args = append(args, stadiumID)
		q += ` AND stadium_id=$1`
	}
	if status != nil {
		args = append(args, int(*status))
		if len(args) == 2 {
			q += ` AND status=$2`
		} else {
			q += ` AND status=$1`
		}
	}
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrder maps a stored order row back to the domain value. Absent
// timestamps fall back to the current time so a loaded order never carries
// a zero date.
func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	var status, payment int
	var total, subtotal, fee, discount, cart string
	var created, updated sql.NullTime
	err := row.Scan(&o.ID, &o.StadiumID, &o.ShopID, &o.Restaurant, &o.CustomerID, &o.CustomerName,
		&status, &total, &subtotal, &fee, &discount, &payment, &cart, &created, &updated)
	if err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	o.PaymentMethod = domain.PaymentMethod(payment)
	o.Total = mustDecimal(total)
	o.Subtotal = mustDecimal(subtotal)
	o.DeliveryFee = mustDecimal(fee)
	o.Discount = mustDecimal(discount)
	_ = json.Unmarshal([]byte(cart), &o.Cart)
	o.CreatedAt = timeOrNow(created)
	o.UpdatedAt = timeOrNow(updated)
	return &o, nil
}

func timeOrNow(t sql.NullTime) time.Time {
	if t.Valid && !t.Time.IsZero() {
		return t.Time
	}
	return time.Now().UTC()
}

func (r *PostgresRepo) PutStadium(st *domain.Stadium) error {
	_, err := r.db.Exec(`INSERT INTO stadiums (id,name,location,capacity,image_url,about,owner_id,active,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET name=$2,location=$3,capacity=$4,image_url=$5,about=$6,owner_id=$7,active=$8,updated_at=$10`,
		st.ID, st.Name, st.Location, st.Capacity, st.ImageURL, st.About, st.OwnerID, st.Active, st.CreatedAt, st.UpdatedAt)
	return err
}

func (r *PostgresRepo) GetStadium(id string) (*domain.Stadium, bool) {
	var st domain.Stadium
	var created, updated sql.NullTime
	err := r.db.QueryRow(`SELECT id,name,location,capacity,image_url,about,owner_id,active,created_at,updated_at FROM stadiums WHERE id=$1`, id).
		Scan(&st.ID, &st.Name, &st.Location, &st.Capacity, &st.ImageURL, &st.About, &st.OwnerID, &st.Active, &created, &updated)
	if err != nil {
		return nil, false
	}
	st.CreatedAt = timeOrNow(created)
	st.UpdatedAt = timeOrNow(updated)
	return &st, true
}

func (r *PostgresRepo) ListStadiums(ownerID string, activeOnly bool) ([]domain.Stadium, error) {
	q := `SELECT id,name,location,capacity,image_url,about,owner_id,active,created_at,updated_at FROM stadiums WHERE 1=1`
	args := []any{}
	if ownerID != "" {
		args = append(args, ownerID)
		q += ` AND owner_id=$1`
	}
	if activeOnly {
		q += ` AND active=TRUE`
	}
	q += ` ORDER BY created_at DESC`
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Stadium
	for rows.Next() {
		var st domain.Stadium
		var created, updated sql.NullTime
		if err := rows.Scan(&st.ID, &st.Name, &st.Location, &st.Capacity, &st.ImageURL, &st.About, &st.OwnerID, &st.Active, &created, &updated); err != nil {
			return nil, err
		}
		st.CreatedAt = timeOrNow(created)
		st.UpdatedAt = timeOrNow(updated)
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) PutShop(sh *domain.Shop) error {
	admins, _ := json.Marshal(sh.Admins)
	_, err := r.db.Exec(`INSERT INTO shops (id,stadium_id,name,location,floor,gate,description,image_url,admins,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET stadium_id=$2,name=$3,location=$4,floor=$5,gate=$6,description=$7,image_url=$8,admins=$9,updated_at=$11`,
		sh.ID, sh.StadiumID, sh.Name, sh.Location, sh.Floor, sh.Gate, sh.Description, sh.ImageURL, string(admins), sh.CreatedAt, sh.UpdatedAt)
	return err
}

func (r *PostgresRepo) GetShop(id string) (*domain.Shop, bool) {
	var sh domain.Shop
	var admins string
	var created, updated sql.NullTime
	err := r.db.QueryRow(`SELECT id,stadium_id,name,location,floor,gate,description,image_url,admins,created_at,updated_at FROM shops WHERE id=$1`, id).
		Scan(&sh.ID, &sh.StadiumID, &sh.Name, &sh.Location, &sh.Floor, &sh.Gate, &sh.Description, &sh.ImageURL, &admins, &created, &updated)
	if err != nil {
		return nil, false
	}
	_ = json.Unmarshal([]byte(admins), &sh.Admins)
	sh.CreatedAt = timeOrNow(created)
	sh.UpdatedAt = timeOrNow(updated)
	return &sh, true
}

func (r *PostgresRepo) ListShops(stadiumID string) ([]domain.Shop, error) {
	q := `SELECT id,stadium_id,name,location,floor,gate,description,image_url,admins,created_at,updated_at FROM shops`
	args := []any{}
	if stadiumID != "" {
		q += ` WHERE stadium_id=$1`
		args = append(args, stadiumID)
	}
	q += ` ORDER BY name ASC`
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Shop
	for rows.Next() {
		var sh domain.Shop
		var admins string
		var created, updated sql.NullTime
		if err := rows.Scan(&sh.ID, &sh.StadiumID, &sh.Name, &sh.Location, &sh.Floor, &sh.Gate, &sh.Description, &sh.ImageURL, &admins, &created, &updated); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(admins), &sh.Admins)
		sh.CreatedAt = timeOrNow(created)
		sh.UpdatedAt = timeOrNow(updated)
		out = append(out, sh)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) DeleteShop(id string) error {
	_, err := r.db.Exec(`DELETE FROM shops WHERE id=$1`, id)
	return err
}

func (r *PostgresRepo) PutMenuItem(m *domain.MenuItem) error {
	images, _ := json.Marshal(m.Images)
	custom, _ := json.Marshal(m.Customization)
	allergens, _ := json.Marshal(m.Allergens)
	nutrition, _ := json.Marshal(m.NutritionalInfo)
	_, err := r.db.Exec(`INSERT INTO menu_items (id,shop_id,stadium_id,name,description,price,category,images,is_available,preparation_time,customization,allergens,nutritional_info,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO UPDATE SET shop_id=$2,stadium_id=$3,name=$4,description=$5,price=$6,category=$7,images=$8,is_available=$9,preparation_time=$10,customization=$11,allergens=$12,nutritional_info=$13,updated_at=$15`,
		m.ID, m.ShopID, m.StadiumID, m.Name, m.Description, m.Price.String(), m.Category, string(images),
		m.IsAvailable, m.PreparationTime, string(custom), string(allergens), string(nutrition), m.CreatedAt, m.UpdatedAt)
	return err
}

func (r *PostgresRepo) GetMenuItem(id string) (*domain.MenuItem, bool) {
	var m domain.MenuItem
	var price, images, custom, allergens, nutrition string
	var created, updated sql.NullTime
	err := r.db.QueryRow(`SELECT id,shop_id,stadium_id,name,description,price,category,images,is_available,preparation_time,customization,allergens,nutritional_info,created_at,updated_at FROM menu_items WHERE id=$1`, id).
		Scan(&m.ID, &m.ShopID, &m.StadiumID, &m.Name, &m.Description, &price, &m.Category, &images,
			&m.IsAvailable, &m.PreparationTime, &custom, &allergens, &nutrition, &created, &updated)
	if err != nil {
		return nil, false
	}
	m.Price = mustDecimal(price)
	_ = json.Unmarshal([]byte(images), &m.Images)
	_ = json.Unmarshal([]byte(custom), &m.Customization)
	_ = json.Unmarshal([]byte(allergens), &m.Allergens)
	_ = json.Unmarshal([]byte(nutrition), &m.NutritionalInfo)
	m.CreatedAt = timeOrNow(created)
	m.UpdatedAt = timeOrNow(updated)
	return &m, true
}

func (r *PostgresRepo) ListMenuItems(shopID string) ([]domain.MenuItem, error) {
	q := `SELECT id FROM menu_items`
	args := []any{}
	if shopID != "" {
		q += ` WHERE shop_id=$1`
		args = append(args, shopID)
	}
	q += ` ORDER BY name ASC`
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.MenuItem, 0, len(ids))
	for _, id := range ids {
		if m, ok := r.GetMenuItem(id); ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *PostgresRepo) DeleteMenuItem(id string) error {
	_, err := r.db.Exec(`DELETE FROM menu_items WHERE id=$1`, id)
	return err
}

func (r *PostgresRepo) PutUser(u *domain.User) error {
	_, err := r.db.Exec(`INSERT INTO users (id,name,email,role,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET name=$2,email=$3,updated_at=$6`,
		u.ID, u.Name, u.Email, string(u.Role), u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *PostgresRepo) GetUser(id string) (*domain.User, bool) {
	return r.getUser(`SELECT id,name,email,role,created_at,updated_at FROM users WHERE id=$1`, id)
}

func (r *PostgresRepo) GetUserByEmail(email string) (*domain.User, bool) {
	return r.getUser(`SELECT id,name,email,role,created_at,updated_at FROM users WHERE email=$1`, email)
}

func (r *PostgresRepo) getUser(q, arg string) (*domain.User, bool) {
	var u domain.User
	var role string
	var created, updated sql.NullTime
	err := r.db.QueryRow(q, arg).Scan(&u.ID, &u.Name, &u.Email, &role, &created, &updated)
	if err != nil {
		return nil, false
	}
	u.Role = domain.Role(role)
	u.CreatedAt = timeOrNow(created)
	u.UpdatedAt = timeOrNow(updated)
	return &u, true
}
