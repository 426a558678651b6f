package entity

import "github.com/google/uuid"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type Permission string

const (
	PermissionAdmin        Permission = "admin"
	PermissionGetMovies    Permission = "getMovies"
	PermissionManageMovies Permission = "manageMovies"
	PermissionGetUsers     Permission = "getUsers"
	PermissionManageUsers  Permission = "manageUsers"
)

// rolePermissions is the fixed role registry. Roles and their rights are
// compile-time data, not runtime-mutable state.
var rolePermissions = map[UserRole][]Permission{
	RoleUser:  {PermissionGetUsers, PermissionGetMovies, PermissionManageMovies},
	RoleAdmin: {PermissionAdmin, PermissionGetUsers, PermissionManageUsers, PermissionGetMovies, PermissionManageMovies},
}

func (r UserRole) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Can reports whether the role grants the permission.
func (r UserRole) Can(p Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}

// Actor is the authenticated caller identity a request carries. It is built
// by the auth middleware and consumed by the movie service.
type Actor struct {
	ID   uuid.UUID
	Role UserRole
}

func (a *Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
