package domain

import "time"

type Role string

const (
	RoleStadiumOwner Role = "stadium_owner"
	RoleShopOwner    Role = "shop_owner"
	RoleAdmin        Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStadiumOwner || r == RoleShopOwner || r == RoleAdmin
}

// User is the portal profile row. Credentials live with the identity
// gateway, not here. Role is fixed at signup.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
