package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/regrep/regrep"
)

// Exit statuses, following grep.
const (
	StatusMatch   = 0
	StatusNoMatch = 1
	StatusError   = 2
)

type app struct {
	pattern string
	debug   bool

	level  zap.AtomicLevel
	logger *zap.Logger

	status int
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "regrep -E <pattern>",
		Short:         "regrep - match one line of stdin against a pattern",
		Example:       "  echo 'cat and cat' | regrep -E '(\\w+) and \\1'",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.debug {
				a.level.SetLevel(zap.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVarP(&a.pattern, "extended-regexp", "E", "", "pattern to match against the input line")
	cmd.Flags().BoolVar(&a.debug, "debug", false, "log the compiled pattern and the match result")
	_ = cmd.MarkFlagRequired("extended-regexp")

	return cmd
}

func (a *app) run(in io.Reader) error {
	a.logger.Debug("compiling pattern", zap.String("pattern", a.pattern))

	re, err := regrep.Compile(a.pattern)
	if err != nil {
		return err
	}
	a.logger.Debug("compiled pattern",
		zap.Int("captures", re.NumCaptures()),
		zap.String("tree", re.Dump()))

	line, err := readLine(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	matched := re.MatchString(line)
	a.logger.Debug("match finished", zap.String("line", line), zap.Bool("matched", matched))

	if matched {
		a.status = StatusMatch
	} else {
		a.status = StatusNoMatch
	}
	return nil
}

// readLine returns the first line of r without its terminator. Empty
// input reads as an empty line.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func newLogger(level zap.AtomicLevel, w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	a := &app{
		level:  level,
		logger: newLogger(level, os.Stderr),
		status: StatusError,
	}
	defer func() { _ = a.logger.Sync() }()

	return execute(a, newRootCmd(a))
}

func execute(a *app, cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		a.logger.Error("regrep failed", zap.String("pattern", a.pattern), zap.Error(err))
		return StatusError
	}
	return a.status
}
