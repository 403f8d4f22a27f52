package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fi "github.com/Pure-Company/funcidioms"
)

// BindResult is the JSON form of a bind chain's outcome.
type BindResult struct {
	Present bool    `json:"present"`
	Value   *uint64 `json:"value,omitempty"`
}

// NewBindCommand creates the bind command.
func NewBindCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bind <n> [step...]",
		Short: "Chain checked arithmetic steps through an Option",
		Long: `Start from Some(n) and bind each step in order.

Steps are add:N, sub:N, mul:N and div:N on unsigned 64-bit integers.
Overflow, underflow and division by zero produce None, and no later
step runs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBind(rootOpts, cmd, args[0], args[1:])
		},
	}

	return cmd
}

func runBind(opts *RootOptions, cmd *cobra.Command, start string, specs []string) error {
	logger := opts.logger()

	n, err := strconv.ParseUint(start, 10, 64)
	if err != nil {
		return fmt.Errorf("bad start value %q: %w", start, err)
	}

	steps := make([]func(uint64) fi.Option[uint64], 0, len(specs))
	for _, spec := range specs {
		step, err := lookupStep(spec)
		if err != nil {
			return err
		}
		steps = append(steps, traceStep(logger, spec, step))
	}

	result := fi.Chain(fi.Some(n), steps...)

	if opts.Format == FormatJSON {
		out := BindResult{Present: result.IsSome()}
		if v, ok := result.Get(); ok {
			out.Value = &v
		}
		return writeValue(opts, cmd.OutOrStdout(), out)
	}
	return writeValue(opts, cmd.OutOrStdout(), result)
}

func traceStep(logger *zap.Logger, spec string, step func(uint64) fi.Option[uint64]) func(uint64) fi.Option[uint64] {
	return func(v uint64) fi.Option[uint64] {
		out := step(v)
		logger.Debug("bind step", zap.String("step", spec), zap.Uint64("in", v), zap.Stringer("out", out))
		return out
	}
}
