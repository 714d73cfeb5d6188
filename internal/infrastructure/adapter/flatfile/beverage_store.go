package flatfile

import (
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	coreport "github.com/agskasse/kiosk-ledger/internal/domain/port/core"
	"github.com/agskasse/kiosk-ledger/internal/domain/port/persistence"
)

// BeverageStore reads and writes beverageDB lines of the form
//
//	name;price;barcode;stock;lastRestockTarget
type BeverageStore struct {
	fs     afero.Fs
	path   string
	logger coreport.Logger
}

// NewBeverageStore creates a beverage store backed by the given file.
func NewBeverageStore(fs afero.Fs, path string, logger coreport.Logger) persistence.BeverageStore {
	return &BeverageStore{fs: fs, path: path, logger: logger}
}

// Load reads every beverage; an absent or empty file yields an empty
// slice. Malformed lines are skipped with a warning.
func (s *BeverageStore) Load() ([]*entity.Beverage, error) {
	lines, err := readLines(s.fs, s.path)
	if err != nil {
		return nil, err
	}

	beverages := make([]*entity.Beverage, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, fieldSep)
		if len(fields) != 5 {
			s.logger.Warn("Skipping malformed beverage line", map[string]any{
				"path": s.path, "line": line,
			})
			continue
		}
		price, priceErr := entity.ParseAmount(fields[1])
		barcode, barcodeErr := strconv.Atoi(fields[2])
		stock, stockErr := strconv.Atoi(fields[3])
		lastRestock, lastErr := strconv.Atoi(fields[4])
		if priceErr != nil || barcodeErr != nil || stockErr != nil || lastErr != nil {
			s.logger.Warn("Skipping malformed beverage line", map[string]any{
				"path": s.path, "line": line,
			})
			continue
		}

		beverage := &entity.Beverage{}
		beverage.SetName(fields[0])
		beverage.SetPrice(price)
		beverage.SetBarcode(barcode)
		beverage.SetStock(stock)
		beverage.SetLastRestock(lastRestock)
		beverages = append(beverages, beverage)
	}
	return beverages, nil
}

// Save overwrites the file with the full collection.
func (s *BeverageStore) Save(beverages []*entity.Beverage) error {
	lines := make([]string, 0, len(beverages))
	for _, b := range beverages {
		lines = append(lines, strings.Join([]string{
			b.Name(),
			b.PriceString(),
			strconv.Itoa(b.Barcode()),
			strconv.Itoa(b.Stock()),
			strconv.Itoa(b.LastRestock()),
		}, fieldSep))
	}
	return writeLines(s.fs, s.path, lines)
}
