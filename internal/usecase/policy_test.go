package usecase

import (
	"testing"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name  string
		actor *entity.Actor
		want  bool
	}{
		{
			name:  "owner with user role",
			actor: &entity.Actor{ID: ownerID, Role: entity.RoleUser},
			want:  true,
		},
		{
			name:  "non-owner with user role",
			actor: &entity.Actor{ID: otherID, Role: entity.RoleUser},
			want:  false,
		},
		{
			name:  "non-owner admin",
			actor: &entity.Actor{ID: otherID, Role: entity.RoleAdmin},
			want:  true,
		},
		{
			name:  "owner admin",
			actor: &entity.Actor{ID: ownerID, Role: entity.RoleAdmin},
			want:  true,
		},
		{
			name:  "nil actor",
			actor: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.actor, ownerID))
		})
	}
}
