package engine

import (
	"math"
	"time"

	"fintrack/internal/models"
)

// Suggestion thresholds, as ratios over the whole transaction history.
const (
	foodShareThreshold      = 0.3
	entertainShareThreshold = 0.2
	spendRateThreshold      = 0.8
)

const (
	suggestionMealPlanning = "You're spending a lot on food. Try planning meals ahead to cut costs."
	suggestionLowCostFun   = "Entertainment is taking a big share of your spending. Look for low-cost alternatives."
	suggestionSavingsGoal  = "Most of your income is being spent. Consider setting a savings goal."
)

// Suggestions evaluates each spending hint independently against the
// entire history. Hints whose denominator is zero are skipped rather than
// treated as exceeded.
func (e *Engine) Suggestions() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := []string{}
	if e.state == nil {
		return out
	}

	var totalIncome, totalExpense, food, entertainment float64
	for _, tx := range e.state.Transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			totalIncome += tx.Amount
		case models.TransactionTypeExpense:
			totalExpense += tx.Amount
			switch tx.Category {
			case "Food":
				food += tx.Amount
			case "Entertainment":
				entertainment += tx.Amount
			}
		}
	}

	if totalExpense > 0 {
		if food/totalExpense > foodShareThreshold {
			out = append(out, suggestionMealPlanning)
		}
		if entertainment/totalExpense > entertainShareThreshold {
			out = append(out, suggestionLowCostFun)
		}
	}
	if totalIncome > 0 && totalExpense/totalIncome > spendRateThreshold {
		out = append(out, suggestionSavingsGoal)
	}
	return out
}

// PredictExpenses estimates next month's expense per category as the mean
// of the trailing three calendar months (the month containing now and the
// two before it, by month boundary), rounded to the nearest whole unit.
// Months without matching transactions contribute zero to the mean; the
// divisor is always three, so short histories predict low.
func (e *Engine) PredictExpenses(now time.Time) map[string]float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := map[string]float64{}
	if e.state == nil {
		return out
	}

	type yearMonth struct {
		year  int
		month time.Month
	}
	window := map[yearMonth]bool{}
	for i := 0; i < 3; i++ {
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		window[yearMonth{m.Year(), m.Month()}] = true
	}

	sums := map[string]float64{}
	for _, tx := range e.state.Transactions {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		year, month, ok := tx.Date.YearMonth()
		if !ok || !window[yearMonth{year, month}] {
			continue
		}
		sums[tx.Category] += tx.Amount
	}

	for _, cat := range e.state.Categories {
		out[cat.Name] = math.Round(sums[cat.Name] / 3)
	}
	return out
}
