package ledger

import (
	"github.com/agskasse/kiosk-ledger/internal/domain/entity"
	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
)

// AddUser creates an account with zero balance. The name must be unique
// across the collection and the role must be Standard or Admin; Disabled
// is only reachable through SetRole later.
func (l *Ledger) AddUser(name string, role entity.Role) (*entity.User, error) {
	if role != entity.RoleStandard && role != entity.RoleAdmin {
		return nil, errs.ErrInvalidRole
	}
	for _, u := range l.users {
		if u.Name() == name {
			return nil, errs.ErrNameTaken
		}
	}

	user, out := entity.NewUser(name, role)
	if !out.IsApplied() {
		return nil, errs.ErrInvalidName
	}

	l.users = append(l.users, user)
	if err := l.saveUsers(); err != nil {
		return nil, err
	}

	l.logger.Info("User created", map[string]any{
		"name": name,
		"role": role.String(),
	})
	return user, nil
}

// DeleteUser removes the user at the given positional id. Subsequent ids
// shift down by one.
func (l *Ledger) DeleteUser(id int) error {
	if _, err := l.UserAt(id); err != nil {
		return err
	}
	name := l.users[id].Name()
	l.users = append(l.users[:id], l.users[id+1:]...)
	if err := l.saveUsers(); err != nil {
		return err
	}

	l.logger.Info("User deleted", map[string]any{"id": id, "name": name})
	return nil
}

// SetRole edits a user's role; all three roles are reachable here.
func (l *Ledger) SetRole(id int, role entity.Role) (*entity.User, error) {
	user, err := l.UserAt(id)
	if err != nil {
		return nil, err
	}
	if !user.SetRole(role).IsApplied() {
		return nil, errs.ErrInvalidRole
	}
	if err := l.saveUsers(); err != nil {
		return nil, err
	}

	l.logger.Info("User role changed", map[string]any{
		"id":   id,
		"name": user.Name(),
		"role": role.String(),
	})
	return user, nil
}
