package entity

import (
	"fmt"
	"time"
)

// TopupLabel marks deposits in the transaction log in place of a
// beverage name.
const TopupLabel = "TOPUP"

// TransactionRecord is one append-only entry in the transaction log,
// covering both purchases (negative amount) and deposits (positive).
type TransactionRecord struct {
	Timestamp     time.Time
	UserID        int   // positional id, zero-padded to two digits on disk
	AmountCents   int64 // signed: negative = purchase, positive = deposit
	ResultBalance int64 // user balance after the operation
	Label         string
}

// DepositRecord is one append-only entry in the deposit log.
type DepositRecord struct {
	TransactionID string // zero-padded user id + timestamp
	UserName      string
	AmountCents   int64 // always positive
	CashBalance   int64 // till balance after the deposit
}

// DepositTransactionID builds the deposit id: the positional user id
// padded to two digits followed by a yyMMddhhmm timestamp.
func DepositTransactionID(userID int, at time.Time) string {
	return fmt.Sprintf("%02d%s", userID, at.Format("0601021504"))
}
