package usecase

import (
	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
)

// CanAccess decides whether the actor may read, update or delete a record
// owned by ownerID. The same rule applies to all three actions: admins may
// touch anything, everyone else only their own records. Pure function, no
// I/O.
func CanAccess(actor *entity.Actor, ownerID uuid.UUID) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.ID == ownerID
}
