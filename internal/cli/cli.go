// Package cli implements the boundfmt command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bjaus/boundfmt"
	"github.com/bjaus/boundfmt/internal/document"
)

// Action is what render does with a rendered message.
type Action string

const (
	ActionPrint Action = "print"
	ActionLog   Action = "log"
	ActionError Action = "error"
	ActionPanic Action = "panic"
)

var actions = []Action{ActionPrint, ActionLog, ActionError, ActionPanic}

// ErrUnknownAction is returned for an --action value that is not supported.
var ErrUnknownAction = errors.New("unknown action")

// ParseAction parses an --action flag value.
func ParseAction(s string) (Action, error) {
	for _, a := range actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

type renderOptions struct {
	action  string
	fill    int
	verbose bool
}

// NewRootCmd returns the boundfmt root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "boundfmt",
		Short:        "Render value descriptors into bounded diagnostic messages",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render descriptor documents",
		Long: `Render descriptor documents (.yaml, .yml or .toml).

Each file is rendered as one message. Messages longer than the hard cap are
truncated, never rejected.

Examples:
  boundfmt render msg.yaml                 # Print the message
  boundfmt render msg.toml --action log    # Log it with zap
  boundfmt render msg.yaml --fill 64       # Fail unless it fits 64 bytes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.action, "action", "a", string(ActionPrint), "What to do with the message ("+Actions()+")")
	cmd.Flags().IntVar(&opts.fill, "fill", 0, "Render into a buffer of this many bytes instead of escalating")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Use a development logger")
	return cmd
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	level := zapcore.InfoLevel
	if verbose {
		cfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func runRender(cmd *cobra.Command, opts *renderOptions, files []string) error {
	action, err := ParseAction(opts.action)
	if err != nil {
		return err
	}
	if opts.fill < 0 {
		return fmt.Errorf("--fill must not be negative, got %d", opts.fill)
	}
	log := newLogger(opts.verbose, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	for _, path := range files {
		groups, err := document.Load(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Debug("loaded document", zap.String("path", path), zap.Int("groups", len(groups)))

		if opts.fill > 0 {
			buf := make([]byte, opts.fill)
			n, err := boundfmt.Fill(buf, groups...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := emitFilled(cmd, log, action, buf[:n], opts.fill); err != nil {
				return err
			}
			continue
		}
		if err := emit(cmd, log, action, groups); err != nil {
			return err
		}
	}
	return nil
}

// emit renders groups and performs action on the message.
func emit(cmd *cobra.Command, log *zap.Logger, action Action, groups [][]boundfmt.Value) error {
	switch action {
	case ActionLog:
		boundfmt.Log(log, zapcore.InfoLevel, groups...)
		return nil
	case ActionError:
		return boundfmt.NewError(groups...)
	case ActionPanic:
		boundfmt.Panic(groups...)
		return nil
	default:
		if _, err := boundfmt.Write(cmd.OutOrStdout(), groups...); err != nil {
			return err
		}
		_, err := io.WriteString(cmd.OutOrStdout(), "\n")
		return err
	}
}

// emitFilled performs action on a message Fill already rendered into a
// buffer of capacity bytes.
func emitFilled(cmd *cobra.Command, log *zap.Logger, action Action, msg []byte, capacity int) error {
	switch action {
	case ActionLog:
		log.Info(string(msg),
			zap.Int("capacity", capacity),
			zap.Int("attempts", 1),
			zap.Bool("truncated", false),
		)
		return nil
	case ActionError:
		return &boundfmt.Error{Msg: string(msg)}
	case ActionPanic:
		panic(string(msg))
	default:
		if _, err := cmd.OutOrStdout().Write(msg); err != nil {
			return err
		}
		_, err := io.WriteString(cmd.OutOrStdout(), "\n")
		return err
	}
}

// Actions returns the supported action names.
func Actions() string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
