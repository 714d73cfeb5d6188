package ledger

import (
	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
)

// Purchase debits one bottle's price from the user and decrements the
// item's stock. It succeeds only if stock is available and the debit
// keeps the balance non-negative; on failure nothing changes and nothing
// is logged. Stock is checked first, so an empty item reports
// out-of-stock even when the balance would not suffice either.
func (l *Ledger) Purchase(userID, beverageID int) error {
	user, err := l.UserAt(userID)
	if err != nil {
		return err
	}
	beverage, err := l.BeverageAt(beverageID)
	if err != nil {
		return err
	}

	if beverage.Stock() == 0 {
		return errs.ErrOutOfStock
	}
	if err := user.Debit(beverage.Price()); err != nil {
		return errs.NewBalanceError(user.Name(), beverage.PriceString(), user.BalanceString(), err)
	}
	beverage.SetStock(beverage.Stock() - 1)

	if err := l.saveUsers(); err != nil {
		return err
	}
	if err := l.saveBeverages(); err != nil {
		return err
	}

	record := entity.TransactionRecord{
		Timestamp:     l.timeProvider.Now(),
		UserID:        userID,
		AmountCents:   -beverage.Price(),
		ResultBalance: user.Balance(),
		Label:         beverage.Name(),
	}
	if err := l.txLog.Append(record); err != nil {
		return err
	}

	l.logger.Info("Purchase completed", map[string]any{
		"user":     user.Name(),
		"beverage": beverage.Name(),
		"price":    beverage.PriceString(),
		"balance":  user.BalanceString(),
		"stock":    beverage.Stock(),
	})
	return nil
}
