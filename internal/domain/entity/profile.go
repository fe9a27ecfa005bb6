package entity

import "time"

// Role rol de un perfil.
type Role string

// Roles válidos. Admin satisface cualquier comprobación de rol.
const (
	RoleAdmin   Role = "admin"
	RoleOwner   Role = "eigenaar"
	RoleVisitor Role = "bezoeker"
)

// Valid informa si r es un rol conocido.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleVisitor:
		return true
	}
	return false
}

// Satisfies informa si r cumple alguno de los roles pedidos.
func (r Role) Satisfies(allowed ...Role) bool {
	if r == RoleAdmin {
		return true
	}
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// Profile perfil de un usuario autenticado (uno por usuario).
type Profile struct {
	ID        string
	Role      Role
	Email     string
	FullName  *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
