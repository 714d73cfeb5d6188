package ledger

import (
	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
)

// WithdrawCash removes money from the till after the operator has taken
// the physical cash out, e.g. to pay a beverage order. The amount must
// be positive and must not exceed the till balance.
func (l *Ledger) WithdrawCash(amount string) (int64, error) {
	cents, err := entity.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, errs.ErrNegativeAmount
	}
	if cents > l.system.CashBalance() {
		return 0, errs.ErrInsufficientCash
	}

	l.system.SetCashBalance(l.system.CashBalance() - cents)
	if err := l.saveSystem(); err != nil {
		return 0, err
	}

	l.logger.Info("Cash withdrawn", map[string]any{
		"amount": entity.FormatCents(cents),
		"cash":   l.system.CashBalanceString(),
	})
	return cents, nil
}

// ClearDepositLog truncates the deposit log after a cash audit, leaving
// a marker line with the current till balance.
func (l *Ledger) ClearDepositLog() error {
	if err := l.depositLog.Reset(l.system.CashBalance(), l.timeProvider.Now()); err != nil {
		return err
	}
	l.logger.Info("Deposit log cleared", map[string]any{
		"cash": l.system.CashBalanceString(),
	})
	return nil
}

// DepositLines returns the raw deposit log for verbatim display.
func (l *Ledger) DepositLines() ([]string, error) {
	return l.depositLog.Lines()
}
