package checks

import (
	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

func init() {
	profile.Register(CustomerDateOrder)
}

// CustomerDateOrder flags rows where the account creation date precedes the
// customer's birth date. Same policy as the transaction date order check.
var CustomerDateOrder = profile.CheckDef{
	ID:          "DT03",
	Name:        "dates.customer_order",
	Group:       "dates",
	Section:     11,
	Title:       "Date Order Check (account created date is after birth date)",
	Description: "Flag rows where CREATED_DATE precedes BIRTH_DATE.",
	Check: func(t *dataset.Table) (profile.Finding, error) {
		return checkDateOrder(t, "CREATED_DATE", "BIRTH_DATE", "created_date", "birth_date")
	},
}
