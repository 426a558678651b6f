package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRole_Can(t *testing.T) {
	tests := []struct {
		role UserRole
		perm Permission
		want bool
	}{
		{RoleUser, PermissionGetMovies, true},
		{RoleUser, PermissionManageMovies, true},
		{RoleUser, PermissionGetUsers, true},
		{RoleUser, PermissionAdmin, false},
		{RoleUser, PermissionManageUsers, false},
		{RoleAdmin, PermissionAdmin, true},
		{RoleAdmin, PermissionManageMovies, true},
		{RoleAdmin, PermissionManageUsers, true},
		{UserRole("ghost"), PermissionGetMovies, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.perm), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Can(tt.perm))
		})
	}
}

func TestUserRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, UserRole("superuser").Valid())
}
