// Package report derives sales statistics from the transaction log. Reports
// are never stored; every call recomputes from the full list.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"boutique-pos/internal/models"
)

// SalesByPaymentMethod is one of the four fixed buckets.
type SalesByPaymentMethod struct {
	Method models.PaymentMethod `json:"method"`
	Count  int                  `json:"count"`
	Total  float64              `json:"total"`
}

// DailySales groups totals under a date-only ISO key.
type DailySales struct {
	Date             string  `json:"date"`
	Total            float64 `json:"total"`
	TransactionCount int     `json:"transactionCount"`
}

// ProductSale aggregates one product's units and revenue across all sales.
type ProductSale struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	QuantitySold int     `json:"quantitySold"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// CashierPerformance credits each cashier with their sale count and takings.
type CashierPerformance struct {
	CashierID        string  `json:"cashierId"`
	CashierName      string  `json:"cashierName"`
	TransactionCount int     `json:"transactionCount"`
	TotalSales       float64 `json:"totalSales"`
}

// Report is the full summary over a date range.
type Report struct {
	StartDate               time.Time              `json:"startDate"`
	EndDate                 time.Time              `json:"endDate"`
	TotalSales              float64                `json:"totalSales"`
	TransactionCount        int                    `json:"transactionCount"`
	AverageTransactionValue float64                `json:"averageTransactionValue"`
	SalesByPaymentMethod    []SalesByPaymentMethod `json:"salesByPaymentMethod"`
	DailySales              []DailySales           `json:"dailySales"`
	TopProducts             []ProductSale          `json:"topProducts"`
	CashierPerformance      []CashierPerformance   `json:"cashierPerformance"`
}

// topProductsLimit caps the best-seller list.
const topProductsLimit = 5

// Generate filters transactions to [start, end] inclusive and aggregates them
// in a single pass per grouping. Division by zero is defined away: an empty
// range yields an average of 0, and all four payment buckets are always
// present even with zero counts.
func Generate(transactions []models.Transaction, start, end time.Time) Report {
	var filtered []models.Transaction
	for _, tx := range transactions {
		if tx.Timestamp.Before(start) || tx.Timestamp.After(end) {
			continue
		}
		filtered = append(filtered, tx)
	}

	r := Report{
		StartDate:        start,
		EndDate:          end,
		TransactionCount: len(filtered),
	}
	for _, tx := range filtered {
		r.TotalSales += tx.Total
	}
	if r.TransactionCount > 0 {
		r.AverageTransactionValue = r.TotalSales / float64(r.TransactionCount)
	}

	r.SalesByPaymentMethod = groupByPaymentMethod(filtered)
	r.DailySales = groupByDay(filtered)
	r.TopProducts = topProducts(filtered)
	r.CashierPerformance = groupByCashier(filtered)
	return r
}

func groupByPaymentMethod(transactions []models.Transaction) []SalesByPaymentMethod {
	buckets := make(map[models.PaymentMethod]*SalesByPaymentMethod, len(models.PaymentMethods))
	out := make([]SalesByPaymentMethod, len(models.PaymentMethods))
	for i, method := range models.PaymentMethods {
		out[i] = SalesByPaymentMethod{Method: method}
		buckets[method] = &out[i]
	}
	for _, tx := range transactions {
		if b, ok := buckets[tx.PaymentMethod]; ok {
			b.Count++
			b.Total += tx.Total
		}
	}
	return out
}

func groupByDay(transactions []models.Transaction) []DailySales {
	// ordered by first-seen day
	index := make(map[string]int)
	var out []DailySales
	for _, tx := range transactions {
		day := tx.Timestamp.UTC().Format("2006-01-02")
		i, ok := index[day]
		if !ok {
			i = len(out)
			index[day] = i
			out = append(out, DailySales{Date: day})
		}
		out[i].Total += tx.Total
		out[i].TransactionCount++
	}
	return out
}

func topProducts(transactions []models.Transaction) []ProductSale {
	index := make(map[string]int)
	var all []ProductSale
	for _, tx := range transactions {
		for _, item := range tx.Items {
			i, ok := index[item.ProductID]
			if !ok {
				i = len(all)
				index[item.ProductID] = i
				all = append(all, ProductSale{ProductID: item.ProductID, ProductName: item.Name})
			}
			all[i].QuantitySold += item.Quantity
			all[i].TotalRevenue += item.Price * float64(item.Quantity)
		}
	}
	// stable sort keeps first-encountered order on revenue ties
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TotalRevenue > all[j].TotalRevenue
	})
	if len(all) > topProductsLimit {
		all = all[:topProductsLimit]
	}
	return all
}

func groupByCashier(transactions []models.Transaction) []CashierPerformance {
	index := make(map[string]int)
	var out []CashierPerformance
	for _, tx := range transactions {
		i, ok := index[tx.CashierID]
		if !ok {
			i = len(out)
			index[tx.CashierID] = i
			out = append(out, CashierPerformance{CashierID: tx.CashierID, CashierName: tx.CashierName})
		}
		out[i].TransactionCount++
		out[i].TotalSales += tx.Total
	}
	return out
}

// exportPayload is the shape offered for download, with a human-readable
// period header.
type exportPayload struct {
	ReportPeriod            string                 `json:"reportPeriod"`
	TotalSales              float64                `json:"totalSales"`
	TransactionCount        int                    `json:"transactionCount"`
	AverageTransactionValue float64                `json:"averageTransactionValue"`
	SalesByPaymentMethod    []SalesByPaymentMethod `json:"salesByPaymentMethod"`
	DailySales              []DailySales           `json:"dailySales"`
	TopProducts             []ProductSale          `json:"topProducts"`
	CashierPerformance      []CashierPerformance   `json:"cashierPerformance"`
}

// Export serializes the report as an indented JSON blob and returns the
// download filename, boutique-report-<start>-to-<end>.json.
func Export(r Report) (filename string, data []byte, err error) {
	start := r.StartDate.UTC().Format("2006-01-02")
	end := r.EndDate.UTC().Format("2006-01-02")

	payload := exportPayload{
		ReportPeriod:            fmt.Sprintf("%s - %s", start, end),
		TotalSales:              r.TotalSales,
		TransactionCount:        r.TransactionCount,
		AverageTransactionValue: r.AverageTransactionValue,
		SalesByPaymentMethod:    r.SalesByPaymentMethod,
		DailySales:              r.DailySales,
		TopProducts:             r.TopProducts,
		CashierPerformance:      r.CashierPerformance,
	}
	data, err = json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", nil, err
	}
	filename = fmt.Sprintf("boutique-report-%s-to-%s.json", start, end)
	return filename, data, nil
}
