package ledger

import (
	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
)

// AddBeverage creates an inventory item with zero stock. Name and
// barcode must both be unique across the collection.
func (l *Ledger) AddBeverage(name string, amount string, barcode int) (*entity.Beverage, error) {
	price, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	for _, b := range l.beverages {
		if b.Name() == name {
			return nil, errs.ErrNameTaken
		}
		if b.Barcode() == barcode {
			return nil, errs.ErrBarcodeTaken
		}
	}

	beverage, out := entity.NewBeverage(name, price, barcode)
	if !out.IsApplied() {
		return nil, errs.ErrInvalidName
	}

	l.beverages = append(l.beverages, beverage)
	if err := l.saveBeverages(); err != nil {
		return nil, err
	}

	l.logger.Info("Beverage created", map[string]any{
		"name":    name,
		"price":   beverage.PriceString(),
		"barcode": barcode,
	})
	return beverage, nil
}

// DeleteBeverage removes the item at the given positional id, allowed
// only once its stock is empty. Subsequent ids shift down by one.
func (l *Ledger) DeleteBeverage(id int) error {
	beverage, err := l.BeverageAt(id)
	if err != nil {
		return err
	}
	if beverage.Stock() > 0 {
		return errs.ErrStockNotEmpty
	}

	name := beverage.Name()
	l.beverages = append(l.beverages[:id], l.beverages[id+1:]...)
	if err := l.saveBeverages(); err != nil {
		return err
	}

	l.logger.Info("Beverage deleted", map[string]any{"id": id, "name": name})
	return nil
}

// SetPrice edits an item's price.
func (l *Ledger) SetPrice(id int, amount string) (*entity.Beverage, error) {
	beverage, err := l.BeverageAt(id)
	if err != nil {
		return nil, err
	}
	price, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	if !beverage.SetPrice(price).IsApplied() {
		return nil, errs.ErrInvalidAmount
	}
	if err := l.saveBeverages(); err != nil {
		return nil, err
	}

	l.logger.Info("Beverage price changed", map[string]any{
		"id":    id,
		"name":  beverage.Name(),
		"price": beverage.PriceString(),
	})
	return beverage, nil
}

// Restock books count new bottles onto the item and records the
// resulting level as the new consumption reference.
func (l *Ledger) Restock(id int, count int) (*entity.Beverage, error) {
	beverage, err := l.BeverageAt(id)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, errs.ErrInvalidRestockCount
	}

	beverage.SetLastRestock(beverage.Stock() + count)
	beverage.SetStock(beverage.Stock() + count)
	if err := l.saveBeverages(); err != nil {
		return nil, err
	}

	l.logger.Info("Beverage restocked", map[string]any{
		"id":    id,
		"name":  beverage.Name(),
		"stock": beverage.Stock(),
	})
	return beverage, nil
}
