package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	fi "github.com/Pure-Company/funcidioms"
)

// addRunner parses both operands as one number type and adds them.
type addRunner func(stored, arg string) (any, error)

// adders lists every type the generic Adder is exercised with.
var adders = map[string]addRunner{
	"int":     addAs(parseSigned[int](0)),
	"int8":    addAs(parseSigned[int8](8)),
	"int16":   addAs(parseSigned[int16](16)),
	"int32":   addAs(parseSigned[int32](32)),
	"int64":   addAs(parseSigned[int64](64)),
	"uint":    addAs(parseUnsigned[uint](0)),
	"uint8":   addAs(parseUnsigned[uint8](8)),
	"uint16":  addAs(parseUnsigned[uint16](16)),
	"uint32":  addAs(parseUnsigned[uint32](32)),
	"uint64":  addAs(parseUnsigned[uint64](64)),
	"float32": addAs(parseFloat[float32](32)),
	"float64": addAs(parseFloat[float64](64)),
}

func addAs[N fi.Number](parse func(string) (N, error)) addRunner {
	return func(stored, arg string) (any, error) {
		s, err := parse(stored)
		if err != nil {
			return nil, fmt.Errorf("stored value %q: %w", stored, err)
		}
		a, err := parse(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg, err)
		}
		return fi.NewAdder(s).Add(a), nil
	}
}

func parseSigned[N constraints.Signed](bitSize int) func(string) (N, error) {
	return func(s string) (N, error) {
		v, err := strconv.ParseInt(s, 10, bitSize)
		return N(v), err
	}
}

func parseUnsigned[N constraints.Unsigned](bitSize int) func(string) (N, error) {
	return func(s string) (N, error) {
		v, err := strconv.ParseUint(s, 10, bitSize)
		return N(v), err
	}
}

func parseFloat[N constraints.Float](bitSize int) func(string) (N, error) {
	return func(s string) (N, error) {
		v, err := strconv.ParseFloat(s, bitSize)
		return N(v), err
	}
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "add <stored> <arg>",
		Short: "Add two numbers with the generic Adder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, ok := adders[typeName]
			if !ok {
				return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownType, typeName, supportedTypes())
			}

			sum, err := run(args[0], args[1])
			if err != nil {
				return err
			}
			rootOpts.logger().Debug("added",
				zap.String("type", typeName),
				zap.String("stored", args[0]),
				zap.String("arg", args[1]),
				zap.Any("sum", sum))
			return writeValue(rootOpts, cmd.OutOrStdout(), sum)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "int", "number type")

	return cmd
}

func supportedTypes() []string {
	names := lo.Keys(adders)
	slices.Sort(names)
	return names
}
