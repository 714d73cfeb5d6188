package ledger

import (
	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	coreport "github.com/agskasse/kiosk-ledger/internal/domain/port/core"
	"github.com/agskasse/kiosk-ledger/internal/domain/port/persistence"
)

// Ledger owns the in-memory user and beverage collections and the system
// account for the lifetime of the process, and enforces the balance,
// stock and cash invariants on every mutation. Identity is the positional
// index into a collection; deleting an entry renumbers everything behind
// it, which callers must tolerate.
type Ledger struct {
	users     []*entity.User
	beverages []*entity.Beverage
	system    *entity.SystemAccount

	userStore     persistence.UserStore
	beverageStore persistence.BeverageStore
	systemStore   persistence.SystemStore
	txLog         persistence.TransactionLog
	depositLog    persistence.DepositLog

	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	defaultPassphrase string
	firstRun          bool
}

// NewLedger wires the engine to its stores. Call Load before use.
func NewLedger(
	userStore persistence.UserStore,
	beverageStore persistence.BeverageStore,
	systemStore persistence.SystemStore,
	txLog persistence.TransactionLog,
	depositLog persistence.DepositLog,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaultPassphrase string,
) *Ledger {
	return &Ledger{
		userStore:         userStore,
		beverageStore:     beverageStore,
		systemStore:       systemStore,
		txLog:             txLog,
		depositLog:        depositLog,
		timeProvider:      timeProvider,
		logger:            logger,
		defaultPassphrase: defaultPassphrase,
	}
}

// Load reads all collections from the stores. Zero users means the kiosk
// is uninitialized: the system account is seeded with the configured
// default passphrase and an empty till, and FirstRun reports true until
// setup is completed.
func (l *Ledger) Load() error {
	users, err := l.userStore.Load()
	if err != nil {
		return err
	}
	beverages, err := l.beverageStore.Load()
	if err != nil {
		return err
	}
	system, err := l.systemStore.Load()
	if err != nil {
		return err
	}

	l.users = users
	l.beverages = beverages
	l.system = system

	if len(l.users) == 0 {
		l.firstRun = true
		l.system = entity.NewSystemAccount(l.defaultPassphrase)
		l.logger.Warn("No users found, entering first-time setup", map[string]any{
			"default_passphrase_set": true,
		})
	} else if l.system == nil {
		l.system = entity.NewSystemAccount(l.defaultPassphrase)
	}

	l.logger.Info("Ledger loaded", map[string]any{
		"users":     len(l.users),
		"beverages": len(l.beverages),
		"first_run": l.firstRun,
	})
	return nil
}

// FirstRun reports whether the last Load found an uninitialized kiosk.
func (l *Ledger) FirstRun() bool {
	return l.firstRun
}

// SetupComplete reports whether first-time setup is finished: at least
// one user exists and the passphrase no longer equals the default.
func (l *Ledger) SetupComplete() bool {
	return len(l.users) > 0 && l.system.Passphrase() != l.defaultPassphrase
}

// Users returns the live user collection. Positional index is the
// external id.
func (l *Ledger) Users() []*entity.User {
	return l.users
}

// Beverages returns the live inventory collection.
func (l *Ledger) Beverages() []*entity.Beverage {
	return l.beverages
}

// System returns the system account singleton.
func (l *Ledger) System() *entity.SystemAccount {
	return l.system
}

// UserAt resolves a positional user id.
func (l *Ledger) UserAt(id int) (*entity.User, error) {
	if id < 0 || id >= len(l.users) {
		return nil, errs.ErrUnknownUser
	}
	return l.users[id], nil
}

// BeverageAt resolves a positional beverage id.
func (l *Ledger) BeverageAt(id int) (*entity.Beverage, error) {
	if id < 0 || id >= len(l.beverages) {
		return nil, errs.ErrUnknownBeverage
	}
	return l.beverages[id], nil
}

// Authenticate checks an input line against the stored passphrase.
func (l *Ledger) Authenticate(input string) bool {
	return input == l.system.Passphrase()
}

// Flush writes every collection to its store, attempting all three even
// if one fails, and returns the first failure.
func (l *Ledger) Flush() error {
	var first error
	if err := l.userStore.Save(l.users); err != nil {
		first = err
	}
	if err := l.beverageStore.Save(l.beverages); err != nil && first == nil {
		first = err
	}
	if err := l.systemStore.Save(l.system); err != nil && first == nil {
		first = err
	}
	if first != nil {
		l.logger.Error("Flush failed", map[string]any{"error": first.Error()})
	}
	return first
}

func (l *Ledger) saveUsers() error {
	if err := l.userStore.Save(l.users); err != nil {
		l.logger.Error("Failed to save users", map[string]any{"error": err.Error()})
		return err
	}
	return nil
}

func (l *Ledger) saveBeverages() error {
	if err := l.beverageStore.Save(l.beverages); err != nil {
		l.logger.Error("Failed to save beverages", map[string]any{"error": err.Error()})
		return err
	}
	return nil
}

func (l *Ledger) saveSystem() error {
	if err := l.systemStore.Save(l.system); err != nil {
		l.logger.Error("Failed to save system account", map[string]any{"error": err.Error()})
		return err
	}
	return nil
}
