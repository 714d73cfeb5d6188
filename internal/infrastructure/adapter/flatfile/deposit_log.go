package flatfile

import (
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	"github.com/agskasse/kiosk-ledger/internal/domain/port/persistence"
)

// DepositLog appends pipe-delimited deposit entries:
//
//	txid | user\t| +amount\t| cash
//
// Reset replaces the whole log with a single audit marker.
type DepositLog struct {
	fs   afero.Fs
	path string
}

// NewDepositLog creates the log backed by the given file.
func NewDepositLog(fs afero.Fs, path string) persistence.DepositLog {
	return &DepositLog{fs: fs, path: path}
}

// Append writes one record to the end of the log.
func (l *DepositLog) Append(record entity.DepositRecord) error {
	line := fmt.Sprintf("%s | %s\t| %s\t| %s",
		record.TransactionID,
		record.UserName,
		entity.FormatCentsSigned(record.AmountCents),
		entity.FormatCents(record.CashBalance),
	)
	return appendLine(l.fs, l.path, line)
}

// Lines returns the raw log, oldest first.
func (l *DepositLog) Lines() ([]string, error) {
	return readLines(l.fs, l.path)
}

// Reset truncates the log to a marker line carrying the till balance at
// audit time. The marker is not validated against prior entries.
func (l *DepositLog) Reset(cashBalance int64, at time.Time) error {
	marker := fmt.Sprintf("00%s | Cleared by admin; new cash balance [EUR]: %s",
		at.Format("0601021504"),
		entity.FormatCents(cashBalance),
	)
	return writeLines(l.fs, l.path, []string{marker, "---"})
}
