package persistence

import (
	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
)

// UserStore persists the user collection as a whole. Load on an absent
// or empty backing file returns an empty slice, never an error.
//
// Possible errors:
// - StorageError (wrapping ErrStorage): file could not be read or written
type UserStore interface {
	// Load reads every user from the backing store.
	Load() ([]*entity.User, error)

	// Save overwrites the backing store with the full collection.
	Save(users []*entity.User) error
}
