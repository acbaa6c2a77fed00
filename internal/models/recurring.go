package models

// Frequency represents how often a recurring transaction fires.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringTransaction is a template that periodically materializes into a
// real transaction. NextDate is advanced by the scheduler each time it
// fires; it is never edited directly during normal operation.
type RecurringTransaction struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Frequency   Frequency       `json:"frequency"`
	NextDate    Date            `json:"nextDate"`
}

// Template builds the transaction this recurring entry materializes into,
// dated at the current NextDate. The id is assigned by the engine on add.
func (r RecurringTransaction) Template() Transaction {
	return Transaction{
		Amount:      r.Amount,
		Date:        r.NextDate,
		Description: r.Description,
		Category:    r.Category,
		Type:        r.Type,
	}
}
