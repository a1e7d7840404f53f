package commands

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/tablecheck/internal/cli/output"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
	_ "github.com/leapstack-labs/tablecheck/pkg/profile/checks" // register checks
	"github.com/spf13/cobra"
)

// ChecksOptions holds options for the checks command.
type ChecksOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewChecksCommand creates the checks command.
func NewChecksCommand() *cobra.Command {
	opts := &ChecksOptions{}
	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List available data-quality checks",
		Long: `List every registered check with its ID, report section, group and
description, in the order the report runs them.`,
		Example: `  # List all checks
  tablecheck checks

  # List checks in the dates group
  tablecheck checks --group dates

  # Output as JSON
  tablecheck checks --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listChecks(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

// checkInfo is the JSON shape for one check descriptor.
type checkInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Section     int    `json:"section"`
	Description string `json:"description"`
}

func listChecks(cmd *cobra.Command, opts *ChecksOptions) error {
	r := renderer
	if r == nil || opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	var defs []profile.CheckDef
	for _, def := range profile.All() {
		if opts.Group != "" && def.Group != opts.Group {
			continue
		}
		defs = append(defs, def)
	}

	if r.EffectiveMode() == output.ModeJSON {
		infos := make([]checkInfo, len(defs))
		for i, def := range defs {
			infos[i] = checkInfo{
				ID:          def.ID,
				Name:        def.Name,
				Group:       def.Group,
				Section:     def.Section,
				Description: def.Description,
			}
		}
		return r.JSON(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Section", "ID", "Name", "Description"})
	for _, def := range defs {
		t.AppendRow(table.Row{strconv.Itoa(def.Section), def.ID, def.Name, def.Description})
	}
	t.Render()
	r.Printf("(%d checks)\n", len(defs))
	return nil
}
