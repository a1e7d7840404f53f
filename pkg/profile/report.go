package profile

import (
	"fmt"
	"strings"
)

// Report holds the findings of one pipeline run in check order.
type Report struct {
	TableName string    `json:"table"`
	Findings  []Finding `json:"findings"`
}

// ActionItems returns all remediation actions in check order.
func (r *Report) ActionItems() []string {
	var actions []string
	for _, f := range r.Findings {
		actions = append(actions, f.Actions...)
	}
	return actions
}

// Render produces the final report text: a narrative body of numbered
// sections followed by the consolidated action items.
func (r *Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Here is the result of the initial data check for table '%s':\n", r.TableName)
	for _, f := range r.Findings {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%2d. %s:\n", f.Section, f.Title)
		for _, line := range f.Lines {
			fmt.Fprintf(&b, "    - %s\n", line)
		}
		if f.Block != "" {
			for _, line := range strings.Split(f.Block, "\n") {
				fmt.Fprintf(&b, "    %s\n", line)
			}
		}
	}

	b.WriteString("\nAction required:\n")
	actions := r.ActionItems()
	if len(actions) == 0 {
		b.WriteString(" - No action required.\n")
	}
	for _, a := range actions {
		fmt.Fprintf(&b, " - %s\n", a)
	}

	return b.String()
}
