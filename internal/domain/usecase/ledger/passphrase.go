package ledger

import (
	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
)

// ChangePassphrase replaces the admin passphrase. Too-short values keep
// the old passphrase and are reported so the caller can render a
// "not changed" reply.
func (l *Ledger) ChangePassphrase(passphrase string) error {
	if !l.system.SetPassphrase(passphrase).IsApplied() {
		return errs.ErrPassphraseTooShort
	}
	if err := l.saveSystem(); err != nil {
		return err
	}

	l.logger.Info("Passphrase changed", nil)
	return nil
}
