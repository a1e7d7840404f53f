package checks

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

// Allow-lists for the categorical consistency check. There is no
// configurable rule set.
var (
	// 50 US states plus DC and PR.
	validStates = []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DC", "DE", "FL", "GA", "HI",
		"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN",
		"MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
		"OK", "OR", "PA", "PR", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA",
		"WA", "WV", "WI", "WY",
	}

	// ISO-639-1 derived language tags.
	validLanguages = []string{
		"en", "es-419", "fr", "de", "it", "pt", "zh", "ja", "ko", "ar", "ru",
		"hi", "en-US", "en-GB",
	}

	validGenders = []string{
		"female", "male", "non_binary", "transgender", "prefer_not_to_say",
		"not_listed", "unknown",
	}
)

func init() {
	profile.Register(Categorical)
}

// Categorical validates STATE, LANGUAGE and GENDER against fixed
// allow-lists. All three columns must be present or the check reports "no
// related columns". Null values are listed as the literal "NaN" rather
// than skipped.
var Categorical = profile.CheckDef{
	ID:          "CV01",
	Name:        "consistency.categorical",
	Group:       "consistency",
	Section:     12,
	Title:       "Data Consistency Check (STATE, LANGUAGE, and GENDER are consistent)",
	Description: "Validate STATE, LANGUAGE and GENDER values against fixed allow-lists.",
	Check:       checkCategorical,
}

// invalidValues returns the distinct column values missing from the
// allow-list, in first-seen order. Nulls render as "NaN".
func invalidValues(c *dataset.Column, allowed []string) []string {
	allowedSet := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		allowedSet[a] = true
	}

	var invalid []string
	seen := make(map[string]bool)
	for _, v := range c.Values {
		label := "NaN"
		if !v.IsNull() {
			if allowedSet[v.String()] {
				continue
			}
			label = v.String()
		}
		if !seen[label] {
			invalid = append(invalid, label)
			seen[label] = true
		}
	}
	return invalid
}

func checkCategorical(t *dataset.Table) (profile.Finding, error) {
	state := t.Column("STATE")
	language := t.Column("LANGUAGE")
	gender := t.Column("GENDER")
	if state == nil || language == nil || gender == nil {
		return profile.Finding{Lines: []string{"No related columns found."}}, nil
	}

	var lines, actions []string
	report := func(label string, invalid []string, actionVerb string) {
		if len(invalid) == 0 {
			return
		}
		joined := strings.Join(invalid, ", ")
		lines = append(lines, fmt.Sprintf("Invalid %s detected: %s", label, joined))
		actions = append(actions, fmt.Sprintf("%s %s: %s.", actionVerb, label, joined))
	}

	report("states", invalidValues(state, validStates), "Resolve invalid")
	report("languages", invalidValues(language, validLanguages), "Resolve invalid")
	report("gender values", invalidValues(gender, validGenders), "Address invalid")

	if len(lines) == 0 {
		lines = []string{"STATE, LANGUAGE and GENDER values are all consistent."}
	}
	return profile.Finding{Lines: lines, Actions: actions}, nil
}
