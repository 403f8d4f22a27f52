package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type queryOptions struct {
	configPath string
	name       string
	list       bool
	limit      int
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query [expression]",
		Short: "Run a from/where/select query",
		Long: `Run a lazy from/where/select query over integers.

  idioms query "from i in 1..10; where even; select add:10;"
  idioms query --config queries.yaml --name evens-plus-ten

Sources: lo..hi (inclusive) or [a, b, c].
Predicates: even, odd, positive, negative, gt:N, lt:N, div:N.
Projections: id, neg, square, add:N, mul:N.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, opts, cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML file of named queries")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "run the named query from --config")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list the queries in --config")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "stop after this many results (0 = all)")

	return cmd
}

func runQuery(rootOpts *RootOptions, opts *queryOptions, cmd *cobra.Command, args []string) error {
	logger := rootOpts.logger()

	var cfg *Config
	if opts.configPath != "" {
		loaded, err := LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("loaded config", zap.String("path", opts.configPath), zap.Int("queries", len(cfg.Queries)))
	}

	if opts.list {
		if cfg == nil {
			return errors.New("--list needs --config")
		}
		return writeValues(rootOpts, cmd.OutOrStdout(), cfg.Names())
	}

	text, err := queryText(cfg, opts.name, args)
	if err != nil {
		return err
	}

	expr, err := ParseQuery(text)
	if err != nil {
		return err
	}
	logger.Debug("parsed query",
		zap.String("var", expr.Var),
		zap.Strings("where", expr.Where),
		zap.String("select", expr.Select))

	q, err := expr.Build()
	if err != nil {
		return err
	}
	if opts.limit > 0 {
		q = q.Take(opts.limit)
	}
	q = q.Tap(func(v int64) {
		logger.Debug("emit", zap.Int64("value", v))
	})

	return writeValues(rootOpts, cmd.OutOrStdout(), q.Collect())
}

// queryText picks the expression from the argument or the named config entry.
func queryText(cfg *Config, name string, args []string) (string, error) {
	switch {
	case len(args) == 1 && name != "":
		return "", errors.New("give either an expression or --name, not both")
	case len(args) == 1:
		return args[0], nil
	case name == "":
		return "", errors.New("missing query: pass an expression or --config with --name")
	case cfg == nil:
		return "", fmt.Errorf("--name %q needs --config", name)
	}
	return cfg.Query(name)
}
