// Package pricing computes rental durations and totals.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"yardflow/internal/model"
)

// Policy controls how an inverted date range (end before start) is billed.
type Policy string

const (
	// PolicyAllow lets zero or negative day counts flow into the total,
	// matching the historical behavior of the system.
	PolicyAllow Policy = "allow"
	// PolicyClamp floors the day count at zero.
	PolicyClamp Policy = "clamp"
	// PolicyReject turns an inverted range into ErrInvertedRange.
	PolicyReject Policy = "reject"
)

// ParsePolicy validates a policy name from configuration.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyAllow, PolicyClamp, PolicyReject:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown date policy %q", s)
}

// ErrInvertedRange is returned under PolicyReject when the end date precedes
// the start date.
var ErrInvertedRange = fmt.Errorf("data final anterior à data inicial")

// Days returns the billable day count for an inclusive date range: the whole
// days between start and end, plus one. A rental starting and ending on the
// same day bills for one day.
func Days(start, end model.Date, policy Policy) (int, error) {
	days := start.DaysUntil(end) + 1
	if days < 1 {
		switch policy {
		case PolicyClamp:
			if days < 0 {
				days = 0
			}
		case PolicyReject:
			return 0, ErrInvertedRange
		}
	}
	return days, nil
}

// Total multiplies the daily rate by the day count in exact decimal
// arithmetic. The rate carries two fractional digits, so the product does too.
func Total(dailyRate model.Money, days int) model.Money {
	return dailyRate.Mul(decimal.NewFromInt(int64(days)))
}
