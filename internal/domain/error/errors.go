package error

import (
	"errors"
	"fmt"
)

// Kind groups errors into the three failure classes the interpreter
// reports: bad input, would-break-an-invariant, and storage trouble.
type Kind int

const (
	// KindValidation covers malformed arguments: wrong count, wrong type,
	// out-of-range ids, amounts that do not parse.
	KindValidation Kind = iota
	// KindInvariant covers operations rejected because they would drive a
	// balance, stock count, or the till negative, or break uniqueness.
	KindInvariant
	// KindStorage covers failures to read or write the backing files.
	KindStorage
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a purchase would drive the
	// user's balance negative
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrOutOfStock is returned when a purchase is attempted on an item
	// with zero stock
	ErrOutOfStock = errors.New("insufficient stock")

	// ErrInvalidAmount is returned when an amount string does not parse to
	// a two-decimal currency value
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is negative or zero
	// where a positive value is required
	ErrNegativeAmount = errors.New("amount must be positive")

	// ErrInsufficientCash is returned when a withdrawal exceeds the till
	ErrInsufficientCash = errors.New("not enough cash in the till")

	// ErrUnknownUser is returned when a positional user id is out of range
	ErrUnknownUser = errors.New("unknown user")

	// ErrUnknownBeverage is returned when a positional beverage id is out
	// of range
	ErrUnknownBeverage = errors.New("unknown beverage")

	// ErrNameTaken is returned when a user or beverage name already exists
	ErrNameTaken = errors.New("name already exists")

	// ErrBarcodeTaken is returned when a barcode already exists
	ErrBarcodeTaken = errors.New("barcode already exists")

	// ErrInvalidName is returned when a name fails entity validation
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidRole is returned when a role is outside the allowed set
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidRestockCount is returned when a restock count is not > 0
	ErrInvalidRestockCount = errors.New("restock count must be positive")

	// ErrStockNotEmpty is returned when deleting a beverage that still has
	// stock
	ErrStockNotEmpty = errors.New("beverage still has stock")

	// ErrPassphraseTooShort is returned when a new passphrase fails the
	// minimum length check; the old value is kept
	ErrPassphraseTooShort = errors.New("passphrase too short")

	// ErrNoActiveUser is returned when a purchase is attempted without a
	// selected user
	ErrNoActiveUser = errors.New("no active user selected")

	// ErrWrongArgCount is returned when a command receives the wrong
	// number of arguments
	ErrWrongArgCount = errors.New("wrong argument count")

	// ErrUnknownCommand is returned for an unrecognized command verb
	ErrUnknownCommand = errors.New("command not recognized")

	// ErrStorage is returned when a backing file cannot be read or written
	ErrStorage = errors.New("storage failure")
)

// KindOf classifies an error into one of the three failure classes.
// Unrecognized errors are treated as storage failures, the most
// conservative class: the interpreter reports them without assuming the
// in-memory state still matches the files.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrUnknownUser),
		errors.Is(err, ErrUnknownBeverage),
		errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidRestockCount),
		errors.Is(err, ErrNoActiveUser),
		errors.Is(err, ErrWrongArgCount),
		errors.Is(err, ErrUnknownCommand):
		return KindValidation
	case errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrOutOfStock),
		errors.Is(err, ErrInsufficientCash),
		errors.Is(err, ErrNameTaken),
		errors.Is(err, ErrBarcodeTaken),
		errors.Is(err, ErrStockNotEmpty),
		errors.Is(err, ErrPassphraseTooShort):
		return KindInvariant
	default:
		return KindStorage
	}
}

// BalanceError carries the context of a rejected balance operation.
type BalanceError struct {
	UserName       string
	Amount         string
	CurrentBalance string
	Err            error
}

// Error implements the error interface for BalanceError
func (e *BalanceError) Error() string {
	return fmt.Sprintf("balance operation failed for %s (current balance: %s, amount: %s): %v",
		e.UserName, e.CurrentBalance, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "balance_error",
		"user":            e.UserName,
		"amount":          e.Amount,
		"current_balance": e.CurrentBalance,
		"error":           e.Err.Error(),
	}
}

// NewBalanceError creates a balance error wrapping the given cause.
func NewBalanceError(userName, amount, currentBalance string, err error) error {
	return &BalanceError{
		UserName:       userName,
		Amount:         amount,
		CurrentBalance: currentBalance,
		Err:            err,
	}
}

// StorageError carries the file and operation of a failed read or write.
type StorageError struct {
	Path string
	Op   string
	Err  error
}

// Error implements the error interface for StorageError
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports ErrStorage so callers can classify without type assertions
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_error",
		"path":       e.Path,
		"op":         e.Op,
		"error":      e.Err.Error(),
	}
}

// NewStorageError wraps a file system failure with its path and operation.
func NewStorageError(op, path string, err error) error {
	return &StorageError{Path: path, Op: op, Err: err}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsStorageError checks if the error is a storage failure
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
