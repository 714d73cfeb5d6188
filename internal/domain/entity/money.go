package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
)

// Currency amounts are held as int64 cents everywhere in the domain.
// Parsing and formatting go through shopspring/decimal so that "12,5",
// "12.5" and "12.50" all mean the same 1250 cents and no float ever
// touches a balance.

// MaxDecimalPlaces is the precision of the currency; anything finer is
// rejected rather than rounded.
const MaxDecimalPlaces = 2

// ParseAmount converts a user-supplied amount to cents. The decimal
// separator may be either a point or a comma. Negative amounts are
// rejected; where a signed value is needed the caller negates.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(strings.ReplaceAll(amount, ",", "."))
	if amount == "" {
		return 0, errs.ErrInvalidAmount
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, errs.ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, errs.ErrNegativeAmount
	}
	if d.Exponent() < -MaxDecimalPlaces {
		// More than two decimal places cannot round-trip the file format.
		return 0, errs.ErrInvalidAmount
	}

	return d.Shift(MaxDecimalPlaces).IntPart(), nil
}

// ParseSignedAmount is ParseAmount without the sign restriction; used by
// the codec when reloading stored balances.
func ParseSignedAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(strings.ReplaceAll(amount, ",", "."))
	if amount == "" {
		return 0, errs.ErrInvalidAmount
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, errs.ErrInvalidAmount
	}
	if d.Exponent() < -MaxDecimalPlaces {
		return 0, errs.ErrInvalidAmount
	}

	return d.Shift(MaxDecimalPlaces).IntPart(), nil
}

// FormatCents renders cents as a plain two-decimal string, e.g. 1250 ->
// "12.50", -150 -> "-1.50".
func FormatCents(cents int64) string {
	return decimal.New(cents, -MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
}

// FormatCentsSigned renders cents with an explicit leading sign, the form
// the transaction and deposit logs use: 1250 -> "+12.50".
func FormatCentsSigned(cents int64) string {
	s := FormatCents(cents)
	if cents >= 0 {
		return "+" + s
	}
	return s
}
