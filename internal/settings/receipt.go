package settings

import (
	"fmt"
	"strings"

	"boutique-pos/internal/models"
)

// Printer sends a rendered receipt to hardware. Printer integration is
// stubbed; NoopPrinter is the only implementation.
type Printer interface {
	Print(receipt string) error
}

// NoopPrinter swallows receipts.
type NoopPrinter struct{}

func (NoopPrinter) Print(string) error { return nil }

// RenderReceipt lays out a plain-text receipt for a completed sale using the
// current store and receipt settings.
func (s *Service) RenderReceipt(tx models.Transaction) string {
	cfg := s.Get()

	var b strings.Builder
	if cfg.Receipt.ShowLogo {
		fmt.Fprintf(&b, "*** %s ***\n", cfg.Store.Name)
	} else {
		fmt.Fprintf(&b, "%s\n", cfg.Store.Name)
	}
	fmt.Fprintf(&b, "%s\n%s\n%s\n", cfg.Store.Address, cfg.Store.Phone, cfg.Store.Email)
	b.WriteString(strings.Repeat("-", 32) + "\n")
	fmt.Fprintf(&b, "Sale %s\n", tx.ID)
	fmt.Fprintf(&b, "%s\n", tx.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Cashier: %s\n", tx.CashierName)
	b.WriteString(strings.Repeat("-", 32) + "\n")

	for _, item := range tx.Items {
		fmt.Fprintf(&b, "%-20s x%-3d %8.2f\n", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}
	b.WriteString(strings.Repeat("-", 32) + "\n")
	if cfg.Receipt.ShowTaxDetails {
		fmt.Fprintf(&b, "%-24s %8.2f\n", "Tax (0%)", 0.0)
	}
	fmt.Fprintf(&b, "%-24s %8.2f\n", "TOTAL", tx.Total)
	fmt.Fprintf(&b, "Paid by %s\n", strings.ReplaceAll(string(tx.PaymentMethod), "-", " "))
	if tx.AmountReceived != nil {
		fmt.Fprintf(&b, "%-24s %8.2f\n", "Received", *tx.AmountReceived)
	}
	if tx.Change != nil {
		fmt.Fprintf(&b, "%-24s %8.2f\n", "Change", *tx.Change)
	}
	if cfg.Receipt.FooterText != "" {
		fmt.Fprintf(&b, "\n%s\n", cfg.Receipt.FooterText)
	}
	return b.String()
}
