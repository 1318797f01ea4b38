package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// ValidRole indica si el rol es conocido.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User representa un usuario de la tienda (cliente o administrador).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, customer
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
