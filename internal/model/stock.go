package model

// StockStatus classifies an item's stock level.
type StockStatus string

// Stock statuses.
const (
	StockCritical StockStatus = "critical"
	StockLow      StockStatus = "low"
	StockGood     StockStatus = "good"
)

// ClassifyStock maps current and minimum quantities to a stock status. The
// low band ends at 1.5 times the minimum; the comparison is done in integers
// so the threshold is exact. A minimum of zero means any positive quantity
// is good and zero is critical.
func ClassifyStock(current, minimum int) StockStatus {
	switch {
	case current <= minimum:
		return StockCritical
	case 2*current <= 3*minimum:
		return StockLow
	default:
		return StockGood
	}
}
