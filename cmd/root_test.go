package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/regrep/regrep"
	"github.com/regrep/regrep/syntax"
)

func newTestApp() (*app, *observer.ObservedLogs) {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	core, logs := observer.New(level)
	return &app{
		level:  level,
		logger: zap.New(core),
		status: StatusError,
	}, logs
}

func runCLI(t *testing.T, input string, args ...string) (int, *observer.ObservedLogs) {
	t.Helper()
	a, logs := newTestApp()
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return execute(a, cmd), logs
}

func TestExecute_ExitStatus(t *testing.T) {
	tests := map[string]struct {
		input string
		args  []string
		want  int
	}{
		"match":               {input: "hello world\n", args: []string{"-E", "wor"}, want: StatusMatch},
		"no-match":            {input: "hello world\n", args: []string{"-E", "xyz"}, want: StatusNoMatch},
		"long-flag":           {input: "cat and cat\n", args: []string{"--extended-regexp", `(\w+) and \1`}, want: StatusMatch},
		"end-anchor-newline":  {input: "log\n", args: []string{"-E", "log$"}, want: StatusMatch},
		"crlf":                {input: "log\r\n", args: []string{"-E", "^log$"}, want: StatusMatch},
		"no-trailing-newline": {input: "logs", args: []string{"-E", "log$"}, want: StatusNoMatch},
		"only-first-line":     {input: "dog\ncat\n", args: []string{"-E", "cat"}, want: StatusNoMatch},
		"empty-input":         {input: "", args: []string{"-E", "^$"}, want: StatusMatch},
		"empty-pattern":       {input: "abc\n", args: []string{"-E", ""}, want: StatusMatch},
		"invalid-pattern":     {input: "abc\n", args: []string{"-E", "(abc"}, want: StatusError},
		"missing-pattern":     {input: "abc\n", args: []string{}, want: StatusError},
		"extra-args":          {input: "abc\n", args: []string{"-E", "a", "file.txt"}, want: StatusError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, _ := runCLI(t, tc.input, tc.args...)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExecute_InvalidPatternIsLogged(t *testing.T) {
	status, logs := runCLI(t, "abc\n", "-E", `\1(a)`)
	require.Equal(t, StatusError, status)

	entries := logs.FilterMessage("regrep failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, `\1(a)`, fields["pattern"])
	assert.Contains(t, fields["error"], "reference to undefined group number 1")

	// matching never started
	assert.Zero(t, logs.FilterMessage("match finished").Len())
}

func TestExecute_DebugLogsTree(t *testing.T) {
	status, logs := runCLI(t, "dog and dog\n", "--debug", "-E", `^(cat|dog) and \1$`)
	require.Equal(t, StatusMatch, status)

	compiled := logs.FilterMessage("compiled pattern").All()
	require.Len(t, compiled, 1)
	fields := compiled[0].ContextMap()
	assert.Equal(t, int64(1), fields["captures"])
	assert.Contains(t, fields["tree"], "Alternate(index = 1)")

	finished := logs.FilterMessage("match finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, "dog and dog", finished[0].ContextMap()["line"])
	assert.Equal(t, true, finished[0].ContextMap()["matched"])
}

func TestExecute_QuietByDefault(t *testing.T) {
	status, logs := runCLI(t, "abc\n", "-E", "b")
	require.Equal(t, StatusMatch, status)
	assert.Zero(t, logs.Len())
}

func TestRun_ReturnsPatternError(t *testing.T) {
	a, _ := newTestApp()
	a.pattern = "[abc"

	err := a.run(strings.NewReader("abc"))
	require.Error(t, err)

	var perr *regrep.PatternError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, syntax.ErrUnterminatedBracket, perr.Code)
	assert.Equal(t, StatusError, a.status)
}

func TestReadLine(t *testing.T) {
	line, err := readLine(strings.NewReader("first\nsecond\n"))
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = readLine(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", line)
}

func TestNewLogger_WritesConsole(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(zap.NewAtomicLevelAt(zap.WarnLevel), buf)

	logger.Info("hidden")
	logger.Warn("shown", zap.String("pattern", "a+"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"pattern": "a+"`)
}
