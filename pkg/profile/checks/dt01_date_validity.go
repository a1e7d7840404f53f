package checks

import (
	"fmt"
	"strings"
	"time"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

// nowUTC is an overridable seam so tests can pin the comparison instant.
var nowUTC = func() time.Time { return time.Now().UTC() }

func init() {
	profile.Register(DateValidity)
}

// DateValidity flags timestamps strictly later than the current UTC instant
// in the known date columns. The comparison is boundary-exclusive: a value
// equal to "now" is valid.
var DateValidity = profile.CheckDef{
	ID:          "DT01",
	Name:        "dates.validity",
	Group:       "dates",
	Section:     9,
	Title:       "Date Validity Check (timestamps are valid)",
	Description: "Flag future timestamps in the known date columns.",
	Check:       checkDateValidity,
}

func checkDateValidity(t *dataset.Table) (profile.Finding, error) {
	var found []*dataset.Column
	for _, name := range profile.DateColumns {
		if c := t.Column(name); c != nil {
			found = append(found, c)
		}
	}
	if len(found) == 0 {
		return profile.Finding{Lines: []string{"No date columns in this table."}}, nil
	}

	now := nowUTC()
	var lines []string
	for _, c := range found {
		var offenders []string
		seen := make(map[string]bool)
		for _, v := range c.Values {
			if v.Kind() != dataset.KindTime || !v.Time().After(now) {
				continue
			}
			s := v.String()
			if !seen[s] {
				offenders = append(offenders, s)
				seen[s] = true
			}
		}
		if len(offenders) > 0 {
			lines = append(lines, fmt.Sprintf("%s has future dates: %s.", c.Name, strings.Join(offenders, ", ")))
		}
	}

	if len(lines) == 0 {
		return profile.Finding{Lines: []string{"All date columns are valid."}}, nil
	}
	return profile.Finding{
		Lines:   lines,
		Actions: []string{"Correct invalid dates: update or remove the future dates listed in the date validity check."},
	}, nil
}
