// Package shell implements the admin command interpreter: a two-state
// session gate and a whitespace-tokenized verb language dispatched
// through a lookup table. Every failure, malformed input included,
// becomes a reply line; nothing panics or terminates the process from
// here.
package shell

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
	coreport "github.com/agskasse/kiosk-ledger/internal/domain/port/core"
	"github.com/agskasse/kiosk-ledger/internal/domain/usecase/ledger"
)

// Action tells the hosting process what to do after a command; the
// interpreter itself never exits.
type Action int

const (
	// ActionNone continues the session.
	ActionNone Action = iota
	// ActionShutdown asks the host to terminate.
	ActionShutdown
	// ActionRestart asks the host to terminate and start a new instance.
	ActionRestart
)

// Response is the interpreter's reply to one input line.
type Response struct {
	Lines  []string
	Action Action
}

// Interpreter drives the ledger engine from raw input lines.
type Interpreter struct {
	ledger  *ledger.Ledger
	session Session
	logger  coreport.Logger
}

// NewInterpreter creates the interpreter. On a first run the session
// starts Authenticated with setup pending, so the operator can create
// the initial user and change the default passphrase immediately.
func NewInterpreter(l *ledger.Ledger, logger coreport.Logger) *Interpreter {
	i := &Interpreter{ledger: l, logger: logger}
	if l.FirstRun() {
		i.session.authenticate()
		i.session.setupPending = true
	}
	return i
}

// Session exposes the session state to the hosting layer.
func (i *Interpreter) Session() *Session {
	return &i.session
}

// Execute processes one raw input line and returns the reply lines. In
// the Locked state the entire line is compared against the passphrase;
// authenticated input is tokenized on whitespace and dispatched on the
// first token.
func (i *Interpreter) Execute(input string) Response {
	input = strings.TrimRight(input, "\r\n")

	if !i.session.IsAuthenticated() {
		return i.login(input)
	}

	tokens := strings.Fields(input)
	verb := ""
	if len(tokens) > 0 {
		verb = tokens[0]
	}

	var lines []string
	if verb == "setpw" {
		lines = append(lines, "~$ setpw *****")
	} else {
		lines = append(lines, "~$ "+input)
	}

	cmd, ok := commandIndex[verb]
	if !ok {
		lines = append(lines, "Command not recognized.")
		return Response{Lines: lines}
	}

	args := tokens[1:]
	if len(args) != cmd.argc {
		lines = append(lines, fmt.Sprintf("Not enough or too many arguments for '%s'...", verb))
		return Response{Lines: lines}
	}

	out, action, err := cmd.run(i, args)
	lines = append(lines, out...)
	if err != nil {
		lines = append(lines, i.renderError(verb, err)...)
	}
	return Response{Lines: lines, Action: action}
}

// login handles input while Locked: an exact passphrase match opens the
// session, anything else is a failed attempt.
func (i *Interpreter) login(input string) Response {
	if i.ledger.Authenticate(input) {
		i.session.authenticate()
		i.logger.Info("Admin session opened", nil)
		return Response{Lines: []string{
			"Login successful.",
			"Available commands can be listed with 'help'.",
		}}
	}
	i.logger.Warn("Failed login attempt", nil)
	return Response{Lines: []string{
		"Wrong password. Please try again.",
	}}
}

// renderError converts an engine error into reply lines. Storage
// failures additionally go to the log; everything else is purely a user
// concern.
func (i *Interpreter) renderError(verb string, err error) []string {
	switch {
	case errors.Is(err, errs.ErrUnknownUser):
		return []string{"Unknown user"}
	case errors.Is(err, errs.ErrUnknownBeverage):
		return []string{"Unknown beverage"}
	case errors.Is(err, errs.ErrInsufficientBalance):
		return []string{"Not enough money left on the account!"}
	case errors.Is(err, errs.ErrOutOfStock):
		return []string{"Not enough stock left!"}
	case errors.Is(err, errs.ErrInsufficientCash):
		return []string{"Not enough money in the till..."}
	case errors.Is(err, errs.ErrInvalidAmount), errors.Is(err, errs.ErrNegativeAmount):
		return []string{"Error: invalid amount!"}
	case errors.Is(err, errs.ErrInvalidRole):
		return []string{"The given role is not valid!"}
	case errors.Is(err, errs.ErrNameTaken):
		return []string{"The name is already taken!"}
	case errors.Is(err, errs.ErrBarcodeTaken):
		return []string{"The barcode is already taken!"}
	case errors.Is(err, errs.ErrInvalidName):
		return []string{"The name is not valid. Is it long enough?"}
	case errors.Is(err, errs.ErrInvalidRestockCount):
		return []string{"The number of bottles to add must be greater than 0"}
	case errors.Is(err, errs.ErrStockNotEmpty):
		return []string{"The beverage still has stock and cannot be deleted."}
	case errors.Is(err, errs.ErrPassphraseTooShort):
		return []string{"The password was not changed. Was it long enough?"}
	case errors.Is(err, errs.ErrNoActiveUser):
		return []string{"No user selected. Use 'select <ID>' first."}
	case errs.KindOf(err) == errs.KindStorage:
		i.logger.Error("Command failed on storage", map[string]any{
			"command": verb,
			"error":   err.Error(),
		})
		return []string{"Problems accessing the database..."}
	default:
		return []string{"Error: " + err.Error()}
	}
}
