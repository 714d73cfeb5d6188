package persistence

import (
	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
)

// BeverageStore persists the inventory collection as a whole. Load on an
// absent or empty backing file returns an empty slice, never an error.
//
// Possible errors:
// - StorageError (wrapping ErrStorage): file could not be read or written
type BeverageStore interface {
	// Load reads every beverage from the backing store.
	Load() ([]*entity.Beverage, error)

	// Save overwrites the backing store with the full collection.
	Save(beverages []*entity.Beverage) error
}
