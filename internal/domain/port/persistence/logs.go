package persistence

import (
	"time"

	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
)

// TransactionLog is the append-only record of every balance-affecting
// operation: purchases and deposits.
//
// Possible errors:
// - StorageError (wrapping ErrStorage): file could not be opened or written
type TransactionLog interface {
	// Append writes one record to the end of the log.
	Append(record entity.TransactionRecord) error

	// Lines returns the raw log lines in order, oldest first. An absent
	// log yields an empty slice.
	Lines() ([]string, error)
}

// DepositLog is the append-only record of deposits against the till,
// kept separate from the transaction log for cash audits.
//
// Possible errors:
// - StorageError (wrapping ErrStorage): file could not be opened or written
type DepositLog interface {
	// Append writes one record to the end of the log.
	Append(record entity.DepositRecord) error

	// Lines returns the raw log lines in order, oldest first. An absent
	// log yields an empty slice.
	Lines() ([]string, error)

	// Reset truncates the log, leaving a single marker line carrying the
	// till balance at the time of the audit.
	Reset(cashBalance int64, at time.Time) error
}
