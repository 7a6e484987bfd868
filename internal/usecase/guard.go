package usecase

import (
	"vidtube/internal/entity"

	"github.com/google/uuid"
)

// validateID rejects anything that is not a well-formed identifier before it
// reaches the store.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return entity.ErrInvalidReference
	}
	return nil
}

// authorizeOwner is the ownership guard applied to every mutation of an
// owned entity. It fails closed: a missing actor never passes.
func authorizeOwner(actorID, ownerID string) error {
	if actorID == "" || ownerID == "" || actorID != ownerID {
		return entity.ErrForbidden
	}
	return nil
}
