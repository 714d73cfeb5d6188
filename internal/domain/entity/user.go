package entity

import (
	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
)

// Role controls what a user may do at the kiosk.
type Role int

// Roles. Disabled users keep their balance but cannot interact; only a
// later role edit can reach Disabled, never account creation.
const (
	RoleDisabled Role = 0
	RoleStandard Role = 1
	RoleAdmin    Role = 2
)

// Valid reports whether r is one of the three defined roles.
func (r Role) Valid() bool {
	return r >= RoleDisabled && r <= RoleAdmin
}

func (r Role) String() string {
	switch r {
	case RoleDisabled:
		return "disabled"
	case RoleStandard:
		return "standard"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// MinNameLength is the shortest accepted user name; anything shorter is
// silently ignored by SetName.
const MinNameLength = 3

// User is an account at the kiosk. The balance is stored in cents and is
// never negative. Uniqueness of the name is the caller's job: the entity
// only validates its own fields.
type User struct {
	name    string
	balance int64
	role    Role
}

// NewUser creates a user with zero balance. The outcome is Applied only
// if every field passed validation; creation never produces a Disabled
// user.
func NewUser(name string, role Role) (*User, Outcome) {
	u := &User{}
	if role != RoleStandard && role != RoleAdmin {
		return u, Unchanged
	}
	out := u.SetName(name)
	if out.IsApplied() {
		u.role = role
	}
	return u, out
}

// Name returns the user's name.
func (u *User) Name() string {
	return u.name
}

// Balance returns the balance in cents.
func (u *User) Balance() int64 {
	return u.balance
}

// BalanceString returns the balance as a two-decimal string.
func (u *User) BalanceString() string {
	return FormatCents(u.balance)
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// SetName changes the name if it is long enough, otherwise keeps the old
// one. Callers must pre-check uniqueness across the collection.
func (u *User) SetName(name string) Outcome {
	if len(name) < MinNameLength {
		return Unchanged
	}
	u.name = name
	return Applied
}

// SetRole changes the role if it is one of the defined values.
func (u *User) SetRole(role Role) Outcome {
	if !role.Valid() {
		return Unchanged
	}
	u.role = role
	return Applied
}

// Credit adds cents to the balance.
func (u *User) Credit(cents int64) {
	u.balance += cents
}

// Debit subtracts cents from the balance, failing if the result would be
// negative. On failure the balance is untouched.
func (u *User) Debit(cents int64) error {
	if cents > u.balance {
		return errs.ErrInsufficientBalance
	}
	u.balance -= cents
	return nil
}

// RestoreBalance sets the balance directly; only the persistence codec
// uses it when reloading.
func (u *User) RestoreBalance(cents int64) {
	u.balance = cents
}
