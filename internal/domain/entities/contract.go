package entities

import "time"

// BillingCadence governs how long a billing period lasts.
//
// Biweekly periods span 15 calendar days; monthly periods span one calendar
// month. An empty cadence means the commerce has no (complete) contract on
// file and must be resolved through CadenceOrDefault before any period math.

type BillingCadence string

const (
	CadenceMonthly  BillingCadence = "monthly"
	CadenceBiweekly BillingCadence = "biweekly"
)

// CadenceOrDefault substitutes the documented default (monthly) for a missing
// or unknown cadence. Defaulting lives here, in one place, so incomplete
// contract setup degrades predictably instead of failing the request.
func CadenceOrDefault(c BillingCadence) BillingCadence {
	switch c {
	case CadenceMonthly, CadenceBiweekly:
		return c
	default:
		return CadenceMonthly
	}
}

// PeriodEnd computes the inclusive end date of a period opening at start.
func (c BillingCadence) PeriodEnd(start time.Time) time.Time {
	if c == CadenceBiweekly {
		return start.AddDate(0, 0, 15)
	}
	return start.AddDate(0, 1, 0)
}

// ContractState marks whether a contract currently binds its commerce.

type ContractState string

const (
	ContractStateActive   ContractState = "active"
	ContractStateInactive ContractState = "inactive"
)

// Contract is the commerce-level commercial agreement persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//   - GSI1 (commerce_id-index): commerce_id

type Contract struct {
	ID              string         `json:"id"`
	CommerceID      string         `json:"commerce_id"`
	Cadence         BillingCadence `json:"cadence"`
	DiscountPercent float64        `json:"discount_percent"`
	State           ContractState  `json:"state"`
	DurationMonths  int            `json:"duration_months"`
	EndDate         time.Time      `json:"end_date"`
}

// BillingTerms is the read-only contract snapshot the billing core consumes.
//
// A zero CommerceID means the commerce itself is unknown. A known commerce
// with no active contract yields an empty cadence and a nil discount; both
// have documented defaults (monthly, 0%).

type BillingTerms struct {
	CommerceID      string
	Cadence         BillingCadence
	DiscountPercent *float64
}
