package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGridCommand(t *testing.T, args ...string) string {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"grid"}, args...))

	require.NoError(t, root.Execute())
	return buf.String()
}

func TestGridCommandPrintsMonth(t *testing.T) {
	output := runGridCommand(t, "--month", "2025-01")

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	// Title, weekday header, six weeks.
	require.Len(t, lines, 8)
	assert.Equal(t, "January 2025", lines[0])
	assert.Equal(t, "Su Mo Tu We Th Fr Sa", lines[1])

	// January 2025 starts on a Wednesday; the first row begins with two
	// blanked outside columns and ends with Jan 4.
	assert.Contains(t, lines[2], " 1")
	assert.Contains(t, lines[2], " 4")
	// Final inside day appears in the last populated week.
	assert.Contains(t, output, "31")
}

func TestGridCommandMarksDisabledDays(t *testing.T) {
	output := runGridCommand(t, "--month", "2025-01", "--min", "2025-01-10", "--max", "2025-01-20")

	assert.Contains(t, output, " .")
	assert.Contains(t, output, "10")
	assert.Contains(t, output, "20")
}

func TestGridCommandRejectsBadInput(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	root.SetArgs([]string{"grid", "--month", "January"})
	assert.Error(t, root.Execute())

	root = newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"grid", "--month", "2025-01", "--min", "garbage"})
	assert.Error(t, root.Execute())
}
