package flatfile

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	"github.com/agskasse/kiosk-ledger/internal/domain/port/persistence"
)

// transactionTimeLayout is the timestamp format of the log lines.
const transactionTimeLayout = "20060102-15:04:05"

// TransactionLog appends pipe-delimited purchase and deposit entries:
//
//	timestamp | id | amount\t| balance\t| label
type TransactionLog struct {
	fs   afero.Fs
	path string
}

// NewTransactionLog creates the log backed by the given file.
func NewTransactionLog(fs afero.Fs, path string) persistence.TransactionLog {
	return &TransactionLog{fs: fs, path: path}
}

// Append writes one record to the end of the log.
func (l *TransactionLog) Append(record entity.TransactionRecord) error {
	line := fmt.Sprintf("%s | %02d | %s\t| %s\t| %s",
		record.Timestamp.Format(transactionTimeLayout),
		record.UserID,
		entity.FormatCentsSigned(record.AmountCents),
		entity.FormatCents(record.ResultBalance),
		record.Label,
	)
	return appendLine(l.fs, l.path, line)
}

// Lines returns the raw log, oldest first.
func (l *TransactionLog) Lines() ([]string, error) {
	return readLines(l.fs, l.path)
}
