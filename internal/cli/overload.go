package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fi "github.com/Pure-Company/funcidioms"
)

// NewOverloadCommand creates the overload command.
func NewOverloadCommand(rootOpts *RootOptions) *cobra.Command {
	var text bool

	cmd := &cobra.Command{
		Use:   "overload <value>",
		Short: "Call Foo with an unsigned integer or a string",
		Long: `Call the overloaded Foo.

An argument that parses as an unsigned integer is multiplied by 10.
Anything else, or any argument with --text, gets an exclamation mark.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := rootOpts.logger()
			if !text {
				if n, err := strconv.ParseUint(args[0], 10, 0); err == nil {
					logger.Debug("dispatching unsigned overload", zap.Uint64("arg", n))
					return writeValue(rootOpts, cmd.OutOrStdout(), fi.Foo(uint(n)))
				}
			}
			logger.Debug("dispatching text overload", zap.String("arg", args[0]))
			return writeValue(rootOpts, cmd.OutOrStdout(), fi.Foo(args[0]))
		},
	}

	cmd.Flags().BoolVar(&text, "text", false, "treat the argument as text even if it is numeric")

	return cmd
}
