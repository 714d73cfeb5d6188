package ledger

import (
	"fmt"
	"strings"
)

// History returns the transaction log lines belonging to one user,
// matched on the zero-padded id column.
func (l *Ledger) History(userID int) ([]string, error) {
	if _, err := l.UserAt(userID); err != nil {
		return nil, err
	}

	lines, err := l.txLog.Lines()
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("%02d", userID)
	var matched []string
	for _, line := range lines {
		fields := strings.Split(line, " | ")
		if len(fields) > 1 && fields[1] == id {
			matched = append(matched, line)
		}
	}
	return matched, nil
}
