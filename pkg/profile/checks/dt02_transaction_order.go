package checks

import (
	"fmt"
	"time"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

func init() {
	profile.Register(TransactionDateOrder)
}

// TransactionDateOrder flags rows where the receipt scan date precedes the
// purchase date. Only the date portion is compared.
var TransactionDateOrder = profile.CheckDef{
	ID:          "DT02",
	Name:        "dates.transaction_order",
	Group:       "dates",
	Section:     10,
	Title:       "Date Order Check (receipt scan date is after purchase date)",
	Description: "Flag rows where SCAN_DATE precedes PURCHASE_DATE.",
	Check: func(t *dataset.Table) (profile.Finding, error) {
		return checkDateOrder(t, "SCAN_DATE", "PURCHASE_DATE", "scan_date", "purchase_date")
	},
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// checkDateOrder counts rows where the later column's date portion precedes
// the earlier column's. Rows with a null in either column are skipped.
// If either column is absent, the whole check is not applicable.
func checkDateOrder(t *dataset.Table, laterName, earlierName, laterLabel, earlierLabel string) (profile.Finding, error) {
	later := t.Column(laterName)
	earlier := t.Column(earlierName)
	if later == nil || earlier == nil {
		return profile.Finding{Lines: []string{"No related columns found."}}, nil
	}

	violations := 0
	for i := 0; i < t.NumRows(); i++ {
		lv, ev := later.Values[i], earlier.Values[i]
		if lv.Kind() != dataset.KindTime || ev.Kind() != dataset.KindTime {
			continue
		}
		if dateOnly(lv.Time()).Before(dateOnly(ev.Time())) {
			violations++
		}
	}

	if violations == 0 {
		return profile.Finding{
			Lines: []string{fmt.Sprintf("All '%s' entries are after '%s'.", laterLabel, earlierLabel)},
		}, nil
	}
	return profile.Finding{
		Lines: []string{fmt.Sprintf("There are %d row(s) where '%s' is before '%s'.", violations, laterLabel, earlierLabel)},
		Actions: []string{fmt.Sprintf(
			"Correct date order: '%s' should be after '%s'. Found invalid entries in %d row(s).",
			laterLabel, earlierLabel, violations)},
	}, nil
}
