package persistence

import (
	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
)

// SystemStore persists the singleton system account. Load on an absent
// or empty backing file returns nil, nil; the caller seeds defaults.
//
// Possible errors:
// - StorageError (wrapping ErrStorage): file could not be read or written
type SystemStore interface {
	// Load reads the system account, nil if the store is uninitialized.
	Load() (*entity.SystemAccount, error)

	// Save overwrites the backing store with the account.
	Save(account *entity.SystemAccount) error
}
