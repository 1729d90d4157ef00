package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/pos-billing/internal/common"
	"github.com/noah-isme/pos-billing/internal/pricing"
)

const rule = "============================================================"
const divider = "------------------------------------------------------------"

// Formatter renders the fixed-layout invoice text. It is a pure view
// over an already computed quote and never recomputes pricing.
type Formatter struct {
	StoreName      string
	CurrencySymbol string
}

// Render produces the invoice document for the customer. It fails
// with an EMPTY_CART error when the quote carries no lines.
func (f *Formatter) Render(customerName string, q pricing.Quote, now time.Time) (string, error) {
	if len(q.Lines) == 0 {
		return "", common.EmptyCart("your cart is empty")
	}

	date := now.Format("2006-01-02")
	clock := now.Format("15:04:05")
	invoiceID := date + "-" + strings.ReplaceAll(clock, ":", "-")
	sym := f.CurrencySymbol

	var b strings.Builder
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%s\t\tINVOICE\n\n", f.StoreName)
	fmt.Fprintf(&b, "Invoice: %s\tDate: %s\n", invoiceID, date)
	fmt.Fprintf(&b, "\t\t\tTime: %s\n", clock)
	fmt.Fprintf(&b, "Name of Customer: %s\n", customerName)
	b.WriteString(rule + "\n")
	b.WriteString("PARTICULAR\tQUANTITY\tUNIT PRICE\tTOTAL\n")
	b.WriteString(divider + "\n")
	for _, line := range q.Lines {
		fmt.Fprintf(&b, "%-15s %-10d %s%-10s %s%-10s\n",
			line.ItemName, line.Quantity,
			sym, line.UnitPrice.StringFixed(2),
			sym, line.LineTotal.StringFixed(2))
	}
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "\t\tYour discountable amount: %s%s\n", sym, q.Subtotal.StringFixed(2))
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "\t\tYour %s%% discounted amount is: %s%s\n", q.DiscountRate.String(), sym, q.DiscountAmount.StringFixed(2))
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "\t\tYour payable amount is: %s%s\n", sym, q.Payable.StringFixed(2))
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "\n\tThank You %s for your shopping.\n", customerName)
	b.WriteString("\t\tSee you again!\n")
	b.WriteString(rule + "\n")
	return b.String(), nil
}

// FileName derives the invoice file name for a customer. Repeated
// saves for the same customer reuse the name, overwriting the file.
func FileName(customerName string) string {
	return strings.ReplaceAll(strings.TrimSpace(customerName), " ", "_") + "_invoice.txt"
}
