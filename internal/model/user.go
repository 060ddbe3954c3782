package model

import "time"

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleCashier       Role = "cashier"
)

// Valid reports whether r is a known role. Roles are informational only.
func (r Role) Valid() bool {
	return r == RoleAdministrator || r == RoleCashier
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"notblank"`
	Email     string    `json:"email" validate:"required,email"`
	Role      Role      `json:"role" validate:"oneof=administrator cashier"`
	CreatedAt time.Time `json:"createdAt"`
}
