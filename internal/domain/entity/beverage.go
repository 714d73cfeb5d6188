package entity

// LowStockThreshold marks items the presentation layer should warn about.
const LowStockThreshold = 5

// Beverage is a tracked inventory item. Price is cents, stock a bottle
// count. lastRestock records the stock level set by the most recent
// restock and serves only as the denominator of the consumption report.
// Name and barcode uniqueness is the caller's job.
type Beverage struct {
	name        string
	price       int64
	barcode     int
	stock       int
	lastRestock int
}

// NewBeverage creates an item with the given attributes and zero stock.
// The outcome is Applied only if every field passed validation.
func NewBeverage(name string, price int64, barcode int) (*Beverage, Outcome) {
	b := &Beverage{}
	out := b.SetName(name).And(b.SetPrice(price)).And(b.SetBarcode(barcode))
	b.stock = 0
	return b, out
}

// Name returns the item name.
func (b *Beverage) Name() string {
	return b.name
}

// Price returns the price in cents.
func (b *Beverage) Price() int64 {
	return b.price
}

// PriceString returns the price as a two-decimal string.
func (b *Beverage) PriceString() string {
	return FormatCents(b.price)
}

// Barcode returns the barcode.
func (b *Beverage) Barcode() int {
	return b.barcode
}

// Stock returns the current bottle count.
func (b *Beverage) Stock() int {
	return b.stock
}

// LastRestock returns the stock level set by the most recent restock, 0
// if the item was never restocked.
func (b *Beverage) LastRestock() int {
	return b.lastRestock
}

// LowStock reports whether the item is at or below the warning threshold.
func (b *Beverage) LowStock() bool {
	return b.stock <= LowStockThreshold
}

// SetName changes the name if it is non-empty, otherwise keeps the old
// one.
func (b *Beverage) SetName(name string) Outcome {
	if name == "" {
		return Unchanged
	}
	b.name = name
	return Applied
}

// SetPrice changes the price if it is not negative.
func (b *Beverage) SetPrice(price int64) Outcome {
	if price < 0 {
		return Unchanged
	}
	b.price = price
	return Applied
}

// SetBarcode changes the barcode if it is not negative.
func (b *Beverage) SetBarcode(barcode int) Outcome {
	if barcode < 0 {
		return Unchanged
	}
	b.barcode = barcode
	return Applied
}

// SetStock changes the stock if it is not negative.
func (b *Beverage) SetStock(stock int) Outcome {
	if stock < 0 {
		return Unchanged
	}
	b.stock = stock
	return Applied
}

// SetLastRestock changes the restock marker if it is not negative; only
// the restock operation and the persistence codec use it.
func (b *Beverage) SetLastRestock(level int) Outcome {
	if level < 0 {
		return Unchanged
	}
	b.lastRestock = level
	return Applied
}
