package entity

// MinPassphraseLength is the shortest accepted admin passphrase.
const MinPassphraseLength = 4

// SystemAccount is the process-wide singleton holding the admin
// passphrase and the till's cash balance in cents. The cash balance
// mirrors the physical money expected in the till from deposits.
type SystemAccount struct {
	passphrase string
	cash       int64
}

// NewSystemAccount creates the account with the given passphrase and an
// empty till. An invalid passphrase leaves it empty; first-run seeding
// always passes a valid default.
func NewSystemAccount(passphrase string) *SystemAccount {
	s := &SystemAccount{}
	s.SetPassphrase(passphrase)
	return s
}

// Passphrase returns the current admin passphrase.
func (s *SystemAccount) Passphrase() string {
	return s.passphrase
}

// CashBalance returns the till balance in cents.
func (s *SystemAccount) CashBalance() int64 {
	return s.cash
}

// CashBalanceString returns the till balance as a two-decimal string.
func (s *SystemAccount) CashBalanceString() string {
	return FormatCents(s.cash)
}

// SetPassphrase changes the passphrase if it meets the minimum length,
// otherwise silently keeps the old one.
func (s *SystemAccount) SetPassphrase(passphrase string) Outcome {
	if len(passphrase) < MinPassphraseLength {
		return Unchanged
	}
	s.passphrase = passphrase
	return Applied
}

// SetCashBalance changes the till balance if it is not negative.
func (s *SystemAccount) SetCashBalance(cents int64) Outcome {
	if cents < 0 {
		return Unchanged
	}
	s.cash = cents
	return Applied
}
