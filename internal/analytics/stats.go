package analytics

import (
	"sort"

	"voyagr/internal/models"
)

// Statistical highlights over a filtered expense list. Every helper
// reports ok=false on empty input rather than synthesizing a zero entry.

// LargestExpense returns the expense with the highest normalized amount
// together with that amount. Ties keep the first occurrence in input
// order.
func LargestExpense(expenses []models.Expense, conv Converter, mainCurrency string) (models.Expense, float64, bool) {
	if len(expenses) == 0 {
		return models.Expense{}, 0, false
	}
	best := expenses[0]
	bestAmount := conv.Convert(best.Amount, best.Currency, mainCurrency)
	for _, e := range expenses[1:] {
		amount := conv.Convert(e.Amount, e.Currency, mainCurrency)
		if amount > bestAmount {
			best = e
			bestAmount = amount
		}
	}
	return best, bestAmount, true
}

// HighestSpendingDay returns the calendar day with the largest normalized
// total. Ties resolve to the earliest day.
func HighestSpendingDay(expenses []models.Expense, conv Converter, mainCurrency string) (string, float64, bool) {
	if len(expenses) == 0 {
		return "", 0, false
	}
	totals := DailyTotals(expenses, conv, mainCurrency)

	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Strings(days)

	best := days[0]
	for _, day := range days[1:] {
		if totals[day] > totals[best] {
			best = day
		}
	}
	return best, totals[best], true
}

// MostFrequentCategory returns the category with the most transactions.
// Ties keep the first-seen category in input order.
func MostFrequentCategory(expenses []models.Expense) (string, int, bool) {
	if len(expenses) == 0 {
		return "", 0, false
	}
	counts := make(map[string]int)
	var order []string
	for _, e := range expenses {
		if counts[e.Category] == 0 {
			order = append(order, e.Category)
		}
		counts[e.Category]++
	}

	best := order[0]
	for _, category := range order[1:] {
		if counts[category] > counts[best] {
			best = category
		}
	}
	return best, counts[best], true
}

// AverageTransaction returns total normalized spend over transaction
// count.
func AverageTransaction(expenses []models.Expense, conv Converter, mainCurrency string) (float64, bool) {
	if len(expenses) == 0 {
		return 0, false
	}
	var total float64
	for _, e := range expenses {
		total += conv.Convert(e.Amount, e.Currency, mainCurrency)
	}
	return total / float64(len(expenses)), true
}
