package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/tablecheck/internal/cli/output"
	"github.com/leapstack-labs/tablecheck/internal/source"
	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
	_ "github.com/leapstack-labs/tablecheck/pkg/profile/checks" // register checks
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Name   string // Table name used in the report header
	Table  string // Table to read when profiling a SQLite database
	Format string // Output format override: text, json
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Profile a table and print the data-quality report",
		Long: `Run every registered data-quality check against a table and print the
report: numbered findings followed by consolidated action items.

The table is read from a CSV file, or from a SQLite database when
--database and --table are given. Date columns (PURCHASE_DATE, SCAN_DATE,
CREATED_DATE, BIRTH_DATE) are normalized to UTC timestamps before the
checks run; an unparseable date aborts the report.`,
		Example: `  # Profile a CSV file
  tablecheck check users.csv

  # Profile with an explicit table name for the report header
  tablecheck check users.csv --name users

  # Profile a table in a SQLite database
  tablecheck check --database warehouse.db --table transactions

  # Machine-readable output
  tablecheck check users.csv --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runCheck(cmd, path, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Table name for the report header (default: file or table name)")
	cmd.Flags().StringVar(&opts.Table, "table", "", "Table to read from the SQLite database")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, opts *CheckOptions) error {
	conf := currentConfig()

	r := renderer
	if r == nil || opts.Format != "" {
		mode := output.Mode(conf.Output)
		if opts.Format != "" {
			mode = output.Mode(opts.Format)
		}
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	}

	tbl, err := loadTable(cmd, path, opts, conf.Database, conf.DelimiterRune())
	if err != nil {
		return err
	}
	if opts.Name != "" {
		tbl.Name = opts.Name
	}

	logger.Debug("profiling table", "name", tbl.Name, "rows", tbl.NumRows(), "columns", tbl.NumCols())

	report, err := profile.NewRunner(logger).Run(tbl)
	if err != nil {
		return fmt.Errorf("profiling table %s: %w", tbl.Name, err)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(report)
	}
	r.Println(report.Render())
	return nil
}

func loadTable(cmd *cobra.Command, path string, opts *CheckOptions, database string, delimiter rune) (*dataset.Table, error) {
	if opts.Table != "" {
		if database == "" {
			return nil, fmt.Errorf("--table requires --database")
		}
		return source.SQLite(cmd.Context(), database, opts.Table)
	}
	if path == "" {
		return nil, fmt.Errorf("a CSV file argument or --database/--table is required")
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return source.CSV(path, name, delimiter)
}
