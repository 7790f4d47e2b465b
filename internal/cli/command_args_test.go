package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/slotboard/internal/domain"
)

func TestSplitShellArgs(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"go /gallery", []string{"go", "/gallery"}},
		{`rename 2 "New Title"`, []string{"rename", "2", "New Title"}},
		{`rename 2 'It''s'`, []string{"rename", "2", "Its"}},
		{`rename 2 Say\ \"hi\"`, []string{"rename", "2", `Say "hi"`}},
		{"  role   Developer  ", []string{"role", "Developer"}},
		{`rename 2 ""`, []string{"rename", "2", ""}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := splitShellArgs(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitShellArgs_Unterminated(t *testing.T) {
	_, err := splitShellArgs(`rename 2 "open`)
	assert.Error(t, err)

	_, err = splitShellArgs(`rename 2 trailing\`)
	assert.Error(t, err)
}

func TestShellError_Hints(t *testing.T) {
	msg := ansi.Strip(shellError(fmt.Errorf("navigating: %w", domain.ErrUnknownRoute)))
	assert.True(t, strings.HasPrefix(msg, "Error: navigating"))
	assert.Contains(t, msg, "Try: go /")

	msg = ansi.Strip(shellError(domain.ErrUnknownRole))
	assert.Contains(t, msg, "Type 'role'")

	msg = ansi.Strip(shellError(errors.New("boom")))
	assert.Equal(t, "Error: boom", msg)
}

func TestFilterSuggestions(t *testing.T) {
	pool := []string{"/gallery", "/dashboard", "/domain/domain1/overview"}
	assert.Equal(t, pool, filterSuggestions(pool, ""))
	assert.Equal(t, []string{"/dashboard", "/domain/domain1/overview"}, filterSuggestions(pool, "/D"))
	assert.Nil(t, filterSuggestions(pool, "/x"))
}

func TestComposeOverlay(t *testing.T) {
	base := "l0\nl1\nl2\nl3\nl4"
	got := composeOverlay(base, "A\nB")
	assert.Equal(t, "l0\nl1\n    A\n    B\nl4", got)

	got = composeOverlay("only", "A")
	assert.Equal(t, "only\n\n    A", got)
}
