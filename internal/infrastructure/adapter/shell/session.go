package shell

// SessionState is the interpreter's gate: Locked accepts only the
// passphrase, Authenticated the full command set.
type SessionState int

const (
	// Locked is the default state; every input is a login attempt.
	Locked SessionState = iota
	// Authenticated grants the full command set until logout.
	Authenticated
)

// Session carries the interpreter's mutable state: the gate, the
// first-time-setup flag and the currently selected user for the purchase
// flow. No sentinel ids: activeUser is nil when nobody is selected.
type Session struct {
	state        SessionState
	setupPending bool
	activeUser   *int
}

// State returns the current gate state.
func (s *Session) State() SessionState {
	return s.state
}

// IsAuthenticated reports whether admin commands are available.
func (s *Session) IsAuthenticated() bool {
	return s.state == Authenticated
}

// SetupPending reports whether the first-time-setup gate is still
// holding the session open.
func (s *Session) SetupPending() bool {
	return s.setupPending
}

// SelectUser marks the user the purchase flow operates on.
func (s *Session) SelectUser(id int) {
	s.activeUser = &id
}

// ActiveUser returns the selected user id, ok false when none is
// selected.
func (s *Session) ActiveUser() (int, bool) {
	if s.activeUser == nil {
		return 0, false
	}
	return *s.activeUser, true
}

// Deselect clears the selected user.
func (s *Session) Deselect() {
	s.activeUser = nil
}

func (s *Session) authenticate() {
	s.state = Authenticated
}

func (s *Session) lock() {
	s.state = Locked
	s.setupPending = false
}
