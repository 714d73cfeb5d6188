package flatfile

import (
	"github.com/spf13/afero"

	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	coreport "github.com/agskasse/kiosk-ledger/internal/domain/port/core"
	"github.com/agskasse/kiosk-ledger/internal/domain/port/persistence"
)

// SystemStore reads and writes the two-line systemDB file: the
// passphrase on the first line, the till balance on the second.
type SystemStore struct {
	fs     afero.Fs
	path   string
	logger coreport.Logger
}

// NewSystemStore creates a system store backed by the given file.
func NewSystemStore(fs afero.Fs, path string, logger coreport.Logger) persistence.SystemStore {
	return &SystemStore{fs: fs, path: path, logger: logger}
}

// Load reads the account; an absent or incomplete file yields nil so the
// caller can seed defaults.
func (s *SystemStore) Load() (*entity.SystemAccount, error) {
	lines, err := readLines(s.fs, s.path)
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, nil
	}

	cash, err := entity.ParseSignedAmount(lines[1])
	if err != nil {
		s.logger.Warn("Unreadable cash balance, treating store as uninitialized", map[string]any{
			"path": s.path,
		})
		return nil, nil
	}

	account := entity.NewSystemAccount(lines[0])
	account.SetCashBalance(cash)
	return account, nil
}

// Save overwrites the file with the account.
func (s *SystemStore) Save(account *entity.SystemAccount) error {
	return writeLines(s.fs, s.path, []string{
		account.Passphrase(),
		account.CashBalanceString(),
	})
}
