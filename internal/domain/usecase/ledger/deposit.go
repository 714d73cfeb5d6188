package ledger

import (
	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
)

// Deposit credits a pre-payment to the user's balance and the same
// amount to the till. The amount accepts either decimal separator and
// must be positive with at most two decimal places; there is no upper
// bound. One transaction record and one deposit record are appended.
func (l *Ledger) Deposit(userID int, amount string) error {
	user, err := l.UserAt(userID)
	if err != nil {
		return err
	}
	cents, err := entity.ParseAmount(amount)
	if err != nil {
		return err
	}
	if cents == 0 {
		return errs.ErrNegativeAmount
	}

	user.Credit(cents)
	l.system.SetCashBalance(l.system.CashBalance() + cents)

	now := l.timeProvider.Now()
	deposit := entity.DepositRecord{
		TransactionID: entity.DepositTransactionID(userID, now),
		UserName:      user.Name(),
		AmountCents:   cents,
		CashBalance:   l.system.CashBalance(),
	}
	if err := l.depositLog.Append(deposit); err != nil {
		return err
	}

	record := entity.TransactionRecord{
		Timestamp:     now,
		UserID:        userID,
		AmountCents:   cents,
		ResultBalance: user.Balance(),
		Label:         entity.TopupLabel,
	}
	if err := l.txLog.Append(record); err != nil {
		return err
	}

	if err := l.saveUsers(); err != nil {
		return err
	}
	if err := l.saveSystem(); err != nil {
		return err
	}

	l.logger.Info("Deposit completed", map[string]any{
		"user":    user.Name(),
		"amount":  entity.FormatCents(cents),
		"balance": user.BalanceString(),
		"cash":    l.system.CashBalanceString(),
	})
	return nil
}
