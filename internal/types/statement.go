package types

// StatementPeriod holds the line items reported for a single fiscal period.
// Items maps a line-item name (e.g. "Total Revenue") to its reported value;
// a missing key means the item was not reported for that period.
type StatementPeriod struct {
	Label string             `json:"label"` // period end date, e.g. "2024-12-31"
	Items map[string]float64 `json:"items"`
}

// StatementTable is a multi-period financial statement. Periods are ordered
// most-recent first: index 0 holds the latest fiscal period. The same
// ordering is used across the income statement, balance sheet, and cash
// flow statement for a company.
type StatementTable struct {
	Periods []StatementPeriod `json:"periods"`
}

// IsEmpty reports whether the table carries no periods at all.
func (t StatementTable) IsEmpty() bool {
	return len(t.Periods) == 0
}

// NumPeriods returns the number of reported periods.
func (t StatementTable) NumPeriods() int {
	return len(t.Periods)
}
