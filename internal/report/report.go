// Package report computes display summaries over the inventory and request
// stores and serializes them for export.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

// unitPrice is a flat per-unit placeholder for the estimated inventory value;
// there is no real pricing data.
var unitPrice = decimal.NewFromInt(10)

// recentRequestLimit caps the recent-requests section of the requests report.
const recentRequestLimit = 10

// CategoryCount is one entry of the per-category item breakdown.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatusCount is one entry of the per-status request breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// MonthCount is one entry of the per-calendar-month request breakdown.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// InventorySummary holds the headline inventory numbers.
type InventorySummary struct {
	TotalItems    int             `json:"totalItems"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	LowStockCount int             `json:"lowStockCount"`
	Categories    int             `json:"categories"`
}

// InventoryReport is the full inventory report.
type InventoryReport struct {
	Summary           InventorySummary      `json:"summary"`
	LowStockItems     []model.InventoryItem `json:"lowStockItems"`
	CategoryBreakdown []CategoryCount       `json:"categoryBreakdown"`
	Items             []model.InventoryItem `json:"items"`
}

// RequestsSummary holds per-status request counts. Statuses with no requests
// count as zero.
type RequestsSummary struct {
	TotalRequests int `json:"totalRequests"`
	Pending       int `json:"pending"`
	Approved      int `json:"approved"`
	Fulfilled     int `json:"fulfilled"`
	Rejected      int `json:"rejected"`
}

// RequestsReport is the full requests report.
type RequestsReport struct {
	Summary          RequestsSummary `json:"summary"`
	StatusBreakdown  []StatusCount   `json:"statusBreakdown"`
	MonthlyBreakdown []MonthCount    `json:"monthlyBreakdown"`
	RecentRequests   []model.Request `json:"recentRequests"`
}

// Generator computes reports from current store state.
type Generator struct {
	DB *store.DB
}

// Inventory computes the inventory report. The category breakdown is in
// first-seen order; the item list is sorted by name.
func (g *Generator) Inventory(ctx context.Context) (*InventoryReport, error) {
	items, err := store.ListInventoryItems(ctx, g.DB)
	if err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}

	totalValue := decimal.Zero
	var breakdown []CategoryCount
	index := make(map[string]int)
	var lowStock []model.InventoryItem

	for _, item := range items {
		totalValue = totalValue.Add(decimal.NewFromInt(int64(item.Quantity)).Mul(unitPrice))

		if i, ok := index[item.Category]; ok {
			breakdown[i].Count++
		} else {
			index[item.Category] = len(breakdown)
			breakdown = append(breakdown, CategoryCount{Name: item.Category, Count: 1})
		}

		if model.ClassifyStock(item.Quantity, item.MinQuantity) != model.StockGood {
			lowStock = append(lowStock, item)
		}
	}

	sorted := make([]model.InventoryItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	return &InventoryReport{
		Summary: InventorySummary{
			TotalItems:    len(items),
			TotalValue:    totalValue,
			LowStockCount: len(lowStock),
			Categories:    len(breakdown),
		},
		LowStockItems:     lowStock,
		CategoryBreakdown: breakdown,
		Items:             sorted,
	}, nil
}

// Requests computes the requests report. Breakdowns are in first-seen order;
// recent requests are the newest ten by creation time.
func (g *Generator) Requests(ctx context.Context) (*RequestsReport, error) {
	requests, err := store.ListRequests(ctx, g.DB)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}

	summary := RequestsSummary{TotalRequests: len(requests)}
	var statuses []StatusCount
	statusIndex := make(map[string]int)
	var months []MonthCount
	monthIndex := make(map[string]int)

	for _, req := range requests {
		switch req.Status {
		case model.RequestStatusPending:
			summary.Pending++
		case model.RequestStatusApproved:
			summary.Approved++
		case model.RequestStatusFulfilled:
			summary.Fulfilled++
		case model.RequestStatusRejected:
			summary.Rejected++
		}

		if i, ok := statusIndex[req.Status]; ok {
			statuses[i].Count++
		} else {
			statusIndex[req.Status] = len(statuses)
			statuses = append(statuses, StatusCount{Status: req.Status, Count: 1})
		}

		month := req.CreatedAt.Format("January 2006")
		if i, ok := monthIndex[month]; ok {
			months[i].Count++
		} else {
			monthIndex[month] = len(months)
			months = append(months, MonthCount{Month: month, Count: 1})
		}
	}

	recent := make([]model.Request, len(requests))
	copy(recent, requests)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > recentRequestLimit {
		recent = recent[:recentRequestLimit]
	}

	return &RequestsReport{
		Summary:          summary,
		StatusBreakdown:  statuses,
		MonthlyBreakdown: months,
		RecentRequests:   recent,
	}, nil
}
