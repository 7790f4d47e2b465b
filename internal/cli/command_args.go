package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/domain"
)

// splitShellArgs tokenizes a command line, honouring single and double
// quotes and backslash escapes, so `rename 2 "New Title"` has three parts.
func splitShellArgs(input string) ([]string, error) {
	var parts []string
	var cur strings.Builder
	inSingle, inDouble, escaped, started := false, false, false, false

	flush := func() {
		parts = append(parts, cur.String())
		cur.Reset()
		started = false
	}

	for _, r := range input {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case inSingle:
			if r == '\'' {
				inSingle = false
			} else {
				cur.WriteRune(r)
			}
		case inDouble:
			switch r {
			case '"':
				inDouble = false
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped = true
			started = true
		case r == '\'':
			inSingle = true
			started = true
		case r == '"':
			inDouble = true
			started = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if started {
				flush()
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if escaped {
		return nil, fmt.Errorf("unterminated escape sequence")
	}
	if inSingle || inDouble {
		return nil, fmt.Errorf("unterminated quoted string")
	}
	if started {
		flush()
	}
	return parts, nil
}

// shellError renders err for the output area, with a hint for the error
// kinds a user can fix.
func shellError(err error) string {
	msg := formatter.StyleRed.Render("Error: " + err.Error())
	switch {
	case errors.Is(err, domain.ErrUnknownRoute):
		msg += "\n" + formatter.Dim("Try: go /, go /gallery, go /domain/domain1/overview, go /dashboard")
	case errors.Is(err, domain.ErrUnknownRole):
		msg += "\n" + formatter.Dim("Type 'role' to pick one from a list.")
	}
	return msg
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}
