package checks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

func init() {
	profile.Register(MixedTypes)
}

// MixedTypes flags columns whose non-null values classify into more than one
// of {numeric, string, other kind}. Numeric-looking strings count as numeric.
var MixedTypes = profile.CheckDef{
	ID:          "TY02",
	Name:        "types.mixed",
	Group:       "types",
	Section:     8,
	Title:       "Mixed Data Type Check (e.g., numbers mixed with text)",
	Description: "Flag columns mixing numeric and text values.",
	Check:       checkMixedTypes,
}

// classifyValue labels a non-null value as "numeric", "string", or the
// value's kind name as a fallback. It never fails: an unexpected kind just
// reports its own name.
func classifyValue(v dataset.Value) string {
	switch v.Kind() {
	case dataset.KindInt, dataset.KindFloat:
		return "numeric"
	case dataset.KindString:
		if _, err := strconv.ParseFloat(strings.TrimSpace(v.Str()), 64); err == nil {
			return "numeric"
		}
		return "string"
	default:
		return v.Kind().String()
	}
}

func checkMixedTypes(t *dataset.Table) (profile.Finding, error) {
	var mixedCols []string
	classesByCol := make(map[string][]string)

	for _, c := range t.Columns {
		var classes []string
		seen := make(map[string]bool)
		for _, v := range c.NonNull() {
			class := classifyValue(v)
			if !seen[class] {
				classes = append(classes, class)
				seen[class] = true
			}
		}
		if len(classes) > 1 {
			mixedCols = append(mixedCols, c.Name)
			classesByCol[c.Name] = classes
		}
	}

	if len(mixedCols) == 0 {
		return profile.Finding{Lines: []string{"No columns have mixed data types."}}, nil
	}

	lines := []string{fmt.Sprintf("Columns with mixed data types: %s.", quoteJoin(mixedCols))}
	lines = append(lines, "Different types in these columns:")
	for _, name := range mixedCols {
		lines = append(lines, fmt.Sprintf("%s: %s", name, strings.Join(classesByCol[name], ", ")))
	}

	return profile.Finding{
		Lines: lines,
		Actions: []string{fmt.Sprintf(
			"Resolve mixed data type issues: standardize data types in columns %s to ensure consistency.",
			quoteJoin(mixedCols))},
	}, nil
}
