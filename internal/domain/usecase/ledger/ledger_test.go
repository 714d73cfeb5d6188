package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
	"github.com/agskasse/kiosk-ledger/internal/infrastructure/adapter/flatfile"
	appLogger "github.com/agskasse/kiosk-ledger/internal/infrastructure/adapter/logger"
)

const testPassphrase = "changeme"

// fixedClock pins log timestamps for assertions.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

// newTestLedger builds a loaded engine on an in-memory filesystem so
// every test exercises the real flat file codec.
func newTestLedger(t *testing.T) (*Ledger, afero.Fs, *fixedClock) {
	t.Helper()
	fs := afero.NewMemMapFs()
	clock := &fixedClock{now: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)}
	l := newLedgerOn(fs, clock)
	require.NoError(t, l.Load())
	return l, fs, clock
}

func newLedgerOn(fs afero.Fs, clock *fixedClock) *Ledger {
	log := appLogger.NewNoopLogger()
	return NewLedger(
		flatfile.NewUserStore(fs, "userDB.txt", log),
		flatfile.NewBeverageStore(fs, "beverageDB.txt", log),
		flatfile.NewSystemStore(fs, "systemDB.txt", log),
		flatfile.NewTransactionLog(fs, "transactionlog.txt"),
		flatfile.NewDepositLog(fs, "depositlog.txt"),
		clock,
		log,
		testPassphrase,
	)
}

func TestAddUser(t *testing.T) {
	t.Run("Valid user creation", func(t *testing.T) {
		l, _, _ := newTestLedger(t)

		user, err := l.AddUser("Alice", entity.RoleStandard)
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name())
		assert.Equal(t, int64(0), user.Balance())
		assert.Len(t, l.Users(), 1)
	})

	t.Run("Duplicate name is rejected", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.AddUser("Alice", entity.RoleStandard)
		require.NoError(t, err)

		_, err = l.AddUser("Alice", entity.RoleAdmin)
		assert.ErrorIs(t, err, errs.ErrNameTaken)
		assert.Len(t, l.Users(), 1)
	})

	t.Run("Disabled role cannot be created", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.AddUser("Alice", entity.RoleDisabled)
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})

	t.Run("Too short name is rejected", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.AddUser("Al", entity.RoleStandard)
		assert.ErrorIs(t, err, errs.ErrInvalidName)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Ids shift down after deletion", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		for _, name := range []string{"Alice", "Bob", "Carol"} {
			_, err := l.AddUser(name, entity.RoleStandard)
			require.NoError(t, err)
		}

		require.NoError(t, l.DeleteUser(1))

		require.Len(t, l.Users(), 2)
		assert.Equal(t, "Alice", l.Users()[0].Name())
		assert.Equal(t, "Carol", l.Users()[1].Name())
	})

	t.Run("Unknown id", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		err := l.DeleteUser(0)
		assert.ErrorIs(t, err, errs.ErrUnknownUser)
	})
}

func TestSetRole(t *testing.T) {
	l, _, _ := newTestLedger(t)
	_, err := l.AddUser("Alice", entity.RoleStandard)
	require.NoError(t, err)

	t.Run("Disable a user", func(t *testing.T) {
		user, err := l.SetRole(0, entity.RoleDisabled)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleDisabled, user.Role())
	})

	t.Run("Undefined role", func(t *testing.T) {
		_, err := l.SetRole(0, entity.Role(5))
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})
}

func TestAddBeverage(t *testing.T) {
	t.Run("Valid beverage starts empty", func(t *testing.T) {
		l, _, _ := newTestLedger(t)

		beverage, err := l.AddBeverage("Cola", "1.50", 40112345)
		require.NoError(t, err)
		assert.Equal(t, int64(150), beverage.Price())
		assert.Equal(t, 0, beverage.Stock())
	})

	t.Run("Duplicate name", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.AddBeverage("Cola", "1.50", 1)
		require.NoError(t, err)

		_, err = l.AddBeverage("Cola", "2.00", 2)
		assert.ErrorIs(t, err, errs.ErrNameTaken)
	})

	t.Run("Duplicate barcode", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.AddBeverage("Cola", "1.50", 1)
		require.NoError(t, err)

		_, err = l.AddBeverage("Mate", "2.00", 1)
		assert.ErrorIs(t, err, errs.ErrBarcodeTaken)
	})

	t.Run("Invalid price", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.AddBeverage("Cola", "1.5x", 1)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestRestock(t *testing.T) {
	t.Run("Restock raises stock and the reference level", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.AddBeverage("Cola", "1.50", 1)
		require.NoError(t, err)

		beverage, err := l.Restock(0, 10)
		require.NoError(t, err)
		assert.Equal(t, 10, beverage.Stock())
		assert.Equal(t, 10, beverage.LastRestock())

		// A second restock on top of remaining stock moves the
		// reference to the new total.
		beverage, err = l.Restock(0, 5)
		require.NoError(t, err)
		assert.Equal(t, 15, beverage.Stock())
		assert.Equal(t, 15, beverage.LastRestock())
	})

	t.Run("Non-positive count is rejected", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.AddBeverage("Cola", "1.50", 1)
		require.NoError(t, err)

		_, err = l.Restock(0, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidRestockCount)
		_, err = l.Restock(0, -3)
		assert.ErrorIs(t, err, errs.ErrInvalidRestockCount)
	})
}

func TestDeleteBeverage(t *testing.T) {
	t.Run("Remaining stock blocks deletion", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.AddBeverage("Cola", "1.50", 1)
		require.NoError(t, err)
		_, err = l.Restock(0, 3)
		require.NoError(t, err)

		err = l.DeleteBeverage(0)
		assert.ErrorIs(t, err, errs.ErrStockNotEmpty)
		assert.Len(t, l.Beverages(), 1)
	})

	t.Run("Empty beverage can be deleted", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.AddBeverage("Cola", "1.50", 1)
		require.NoError(t, err)

		require.NoError(t, l.DeleteBeverage(0))
		assert.Empty(t, l.Beverages())
	})
}

func TestPurchase(t *testing.T) {
	setup := func(t *testing.T) (*Ledger, afero.Fs) {
		l, fs, _ := newTestLedger(t)
		_, err := l.AddUser("Alice", entity.RoleStandard)
		require.NoError(t, err)
		_, err = l.AddBeverage("Cola", "1.50", 1)
		require.NoError(t, err)
		return l, fs
	}

	t.Run("Successful purchase moves money and stock together", func(t *testing.T) {
		l, _ := setup(t)
		require.NoError(t, l.Deposit(0, "10.00"))
		_, err := l.Restock(0, 10)
		require.NoError(t, err)

		require.NoError(t, l.Purchase(0, 0))

		assert.Equal(t, int64(850), l.Users()[0].Balance())
		assert.Equal(t, 9, l.Beverages()[0].Stock())

		lines, err := l.History(0)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, "20260314-10:30:00 | 00 | -1.50\t| 8.50\t| Cola", lines[1])
	})

	t.Run("Empty stock wins over empty balance", func(t *testing.T) {
		l, _ := setup(t)

		err := l.Purchase(0, 0)
		assert.ErrorIs(t, err, errs.ErrOutOfStock)
	})

	t.Run("Insufficient balance changes nothing", func(t *testing.T) {
		l, _ := setup(t)
		_, err := l.Restock(0, 10)
		require.NoError(t, err)

		err = l.Purchase(0, 0)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(0), l.Users()[0].Balance())
		assert.Equal(t, 10, l.Beverages()[0].Stock())

		lines, err := l.History(0)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("Unknown ids", func(t *testing.T) {
		l, _ := setup(t)
		assert.ErrorIs(t, l.Purchase(9, 0), errs.ErrUnknownUser)
		assert.ErrorIs(t, l.Purchase(0, 9), errs.ErrUnknownBeverage)
	})
}

func TestDeposit(t *testing.T) {
	setup := func(t *testing.T) *Ledger {
		l, _, _ := newTestLedger(t)
		_, err := l.AddUser("Alice", entity.RoleStandard)
		require.NoError(t, err)
		return l
	}

	t.Run("Deposit credits user and till equally", func(t *testing.T) {
		l := setup(t)

		require.NoError(t, l.Deposit(0, "10.00"))

		assert.Equal(t, int64(1000), l.Users()[0].Balance())
		assert.Equal(t, int64(1000), l.System().CashBalance())
	})

	t.Run("Deposit log line carries the transaction id", func(t *testing.T) {
		l := setup(t)

		require.NoError(t, l.Deposit(0, "10.00"))

		lines, err := l.DepositLines()
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "002603141030 | Alice\t| +10.00\t| 10.00", lines[0])
	})

	t.Run("Transaction log gets a topup entry", func(t *testing.T) {
		l := setup(t)

		require.NoError(t, l.Deposit(0, "7,35"))

		lines, err := l.History(0)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "20260314-10:30:00 | 00 | +7.35\t| 7.35\t| TOPUP", lines[0])
	})

	t.Run("Zero and negative amounts are rejected", func(t *testing.T) {
		l := setup(t)
		assert.ErrorIs(t, l.Deposit(0, "0"), errs.ErrNegativeAmount)
		assert.ErrorIs(t, l.Deposit(0, "-5"), errs.ErrNegativeAmount)
		assert.Equal(t, int64(0), l.System().CashBalance())
	})

	t.Run("Unknown user", func(t *testing.T) {
		l := setup(t)
		assert.ErrorIs(t, l.Deposit(3, "5.00"), errs.ErrUnknownUser)
	})
}

func TestWithdrawCash(t *testing.T) {
	setup := func(t *testing.T) *Ledger {
		l, _, _ := newTestLedger(t)
		_, err := l.AddUser("Alice", entity.RoleStandard)
		require.NoError(t, err)
		require.NoError(t, l.Deposit(0, "20.00"))
		return l
	}

	t.Run("Withdrawal reduces the till", func(t *testing.T) {
		l := setup(t)

		cents, err := l.WithdrawCash("12.50")
		require.NoError(t, err)
		assert.Equal(t, int64(1250), cents)
		assert.Equal(t, int64(750), l.System().CashBalance())
	})

	t.Run("Till can be emptied exactly", func(t *testing.T) {
		l := setup(t)
		_, err := l.WithdrawCash("20.00")
		require.NoError(t, err)
		assert.Equal(t, int64(0), l.System().CashBalance())
	})

	t.Run("Overdraft of the till is rejected", func(t *testing.T) {
		l := setup(t)
		_, err := l.WithdrawCash("20.01")
		assert.ErrorIs(t, err, errs.ErrInsufficientCash)
		assert.Equal(t, int64(2000), l.System().CashBalance())
	})

	t.Run("User balances are not touched", func(t *testing.T) {
		l := setup(t)
		_, err := l.WithdrawCash("20.00")
		require.NoError(t, err)
		assert.Equal(t, int64(2000), l.Users()[0].Balance())
	})
}

func TestClearDepositLog(t *testing.T) {
	l, _, _ := newTestLedger(t)
	_, err := l.AddUser("Alice", entity.RoleStandard)
	require.NoError(t, err)
	require.NoError(t, l.Deposit(0, "10.00"))
	require.NoError(t, l.Deposit(0, "5.00"))

	require.NoError(t, l.ClearDepositLog())

	lines, err := l.DepositLines()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "002603141030 | Cleared by admin; new cash balance [EUR]: 15.00", lines[0])
	assert.Equal(t, "---", lines[1])
}

func TestHistory(t *testing.T) {
	l, _, _ := newTestLedger(t)
	_, err := l.AddUser("Alice", entity.RoleStandard)
	require.NoError(t, err)
	_, err = l.AddUser("Bob", entity.RoleStandard)
	require.NoError(t, err)
	require.NoError(t, l.Deposit(0, "10.00"))
	require.NoError(t, l.Deposit(1, "5.00"))
	require.NoError(t, l.Deposit(0, "2.00"))

	t.Run("Only the user's own lines are returned", func(t *testing.T) {
		lines, err := l.History(0)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		for _, line := range lines {
			assert.Contains(t, line, " | 00 | ")
		}
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := l.History(5)
		assert.ErrorIs(t, err, errs.ErrUnknownUser)
	})
}

func TestChangePassphrase(t *testing.T) {
	t.Run("Valid change takes effect immediately", func(t *testing.T) {
		l, _, _ := newTestLedger(t)

		require.NoError(t, l.ChangePassphrase("secret"))

		assert.True(t, l.Authenticate("secret"))
		assert.False(t, l.Authenticate(testPassphrase))
	})

	t.Run("Too short passphrase keeps the old one", func(t *testing.T) {
		l, _, _ := newTestLedger(t)

		err := l.ChangePassphrase("abc")
		assert.ErrorIs(t, err, errs.ErrPassphraseTooShort)
		assert.True(t, l.Authenticate(testPassphrase))
	})
}

func TestFirstRun(t *testing.T) {
	t.Run("Empty stores enter setup mode", func(t *testing.T) {
		l, _, _ := newTestLedger(t)

		assert.True(t, l.FirstRun())
		assert.False(t, l.SetupComplete())
		assert.True(t, l.Authenticate(testPassphrase))
	})

	t.Run("Setup completes with a user and a new passphrase", func(t *testing.T) {
		l, _, _ := newTestLedger(t)

		_, err := l.AddUser("Alice", entity.RoleAdmin)
		require.NoError(t, err)
		assert.False(t, l.SetupComplete())

		require.NoError(t, l.ChangePassphrase("secret"))
		assert.True(t, l.SetupComplete())
	})

	t.Run("Existing users skip setup mode", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		clock := &fixedClock{now: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)}

		first := newLedgerOn(fs, clock)
		require.NoError(t, first.Load())
		_, err := first.AddUser("Alice", entity.RoleAdmin)
		require.NoError(t, err)
		require.NoError(t, first.ChangePassphrase("secret"))

		second := newLedgerOn(fs, clock)
		require.NoError(t, second.Load())
		assert.False(t, second.FirstRun())
		assert.True(t, second.Authenticate("secret"))
	})
}

func TestStateSurvivesReload(t *testing.T) {
	fs := afero.NewMemMapFs()
	clock := &fixedClock{now: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)}

	l := newLedgerOn(fs, clock)
	require.NoError(t, l.Load())

	_, err := l.AddUser("Alice", entity.RoleAdmin)
	require.NoError(t, err)
	_, err = l.AddUser("Bob", entity.RoleStandard)
	require.NoError(t, err)
	_, err = l.AddBeverage("Cola", "1.50", 40112345)
	require.NoError(t, err)
	_, err = l.Restock(0, 10)
	require.NoError(t, err)
	require.NoError(t, l.Deposit(0, "10.00"))
	require.NoError(t, l.Purchase(0, 0))
	require.NoError(t, l.ChangePassphrase("secret"))
	require.NoError(t, l.Flush())

	reloaded := newLedgerOn(fs, clock)
	require.NoError(t, reloaded.Load())

	require.Len(t, reloaded.Users(), 2)
	assert.Equal(t, "Alice", reloaded.Users()[0].Name())
	assert.Equal(t, int64(850), reloaded.Users()[0].Balance())
	assert.Equal(t, entity.RoleAdmin, reloaded.Users()[0].Role())

	require.Len(t, reloaded.Beverages(), 1)
	cola := reloaded.Beverages()[0]
	assert.Equal(t, 9, cola.Stock())
	assert.Equal(t, 10, cola.LastRestock())
	assert.Equal(t, 40112345, cola.Barcode())

	assert.Equal(t, int64(1000), reloaded.System().CashBalance())
	assert.True(t, reloaded.Authenticate("secret"))

	// Logs are append-only and survive as raw lines.
	lines, err := reloaded.History(0)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestTransactionIDFormat(t *testing.T) {
	at := time.Date(2026, 8, 29, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "032608291405", entity.DepositTransactionID(3, at))
	assert.Equal(t, fmt.Sprintf("%02d2608291405", 12), entity.DepositTransactionID(12, at))
}
