package flatfile

import (
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	coreport "github.com/agskasse/kiosk-ledger/internal/domain/port/core"
	"github.com/agskasse/kiosk-ledger/internal/domain/port/persistence"
)

// UserStore reads and writes userDB lines of the form
//
//	name;balance;role
//
// with the balance stored as the plain signed two-decimal value.
type UserStore struct {
	fs     afero.Fs
	path   string
	logger coreport.Logger
}

// NewUserStore creates a user store backed by the given file.
func NewUserStore(fs afero.Fs, path string, logger coreport.Logger) persistence.UserStore {
	return &UserStore{fs: fs, path: path, logger: logger}
}

// Load reads every user; an absent or empty file yields an empty slice.
// Malformed lines are skipped with a warning rather than aborting the
// load.
func (s *UserStore) Load() ([]*entity.User, error) {
	lines, err := readLines(s.fs, s.path)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, fieldSep)
		if len(fields) != 3 {
			s.logger.Warn("Skipping malformed user line", map[string]any{
				"path": s.path, "line": line,
			})
			continue
		}
		balance, balErr := entity.ParseSignedAmount(fields[1])
		role, roleErr := strconv.Atoi(fields[2])
		if balErr != nil || roleErr != nil {
			s.logger.Warn("Skipping malformed user line", map[string]any{
				"path": s.path, "line": line,
			})
			continue
		}

		user := &entity.User{}
		user.SetName(fields[0])
		user.RestoreBalance(balance)
		user.SetRole(entity.Role(role))
		users = append(users, user)
	}
	return users, nil
}

// Save overwrites the file with the full collection.
func (s *UserStore) Save(users []*entity.User) error {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, strings.Join([]string{
			u.Name(),
			u.BalanceString(),
			strconv.Itoa(int(u.Role())),
		}, fieldSep))
	}
	return writeLines(s.fs, s.path, lines)
}
