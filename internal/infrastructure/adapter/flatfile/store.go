// Package flatfile persists the kiosk collections as delimited text
// files: one entity per line, fields separated by ";", plus two
// pipe-delimited append-only logs. The format supports no escaping; a
// name containing the delimiter corrupts its file.
package flatfile

import (
	"os"
	"strings"

	"github.com/spf13/afero"

	errs "github.com/agskasse/kiosk-ledger/internal/domain/error"
)

const fieldSep = ";"

// readLines returns the file's lines, oldest first, tolerating CRLF and
// an absent file. Trailing empty lines are dropped.
func readLines(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.NewStorageError("read", path, err)
	}

	raw := strings.Split(string(data), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// writeLines overwrites the file with the given lines. No atomic rename:
// a crash mid-write can truncate the file.
func writeLines(fs afero.Fs, path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := afero.WriteFile(fs, path, []byte(b.String()), 0o644); err != nil {
		return errs.NewStorageError("write", path, err)
	}
	return nil
}

// appendLine adds one line to the end of the file, creating it if
// needed.
func appendLine(fs afero.Fs, path string, line string) error {
	f, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.NewStorageError("open", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return errs.NewStorageError("append", path, err)
	}
	return nil
}
