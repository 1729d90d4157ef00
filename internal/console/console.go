package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/noah-isme/pos-billing/internal/app"
	"github.com/noah-isme/pos-billing/internal/common"
	"github.com/noah-isme/pos-billing/internal/invoice"
	"github.com/noah-isme/pos-billing/internal/pricing"
)

// Loop drives the numbered menu for one billing session. Every domain
// error is recoverable: it is reported and the operator is prompted
// again. Only exhausting the input stream ends the loop.
type Loop struct {
	Deps *app.Dependencies
	In   io.Reader
	Out  io.Writer
	Now  func() time.Time

	scanner  *bufio.Scanner
	customer string
}

func (l *Loop) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *Loop) printf(format string, args ...any) {
	fmt.Fprintf(l.Out, format, args...)
}

// readLine returns the next input line. The second result is false
// once the input stream is exhausted.
func (l *Loop) readLine(prompt string) (string, bool) {
	l.printf("%s", prompt)
	if !l.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(l.scanner.Text()), true
}

// Run executes the session until the operator exits or input ends.
func (l *Loop) Run() error {
	l.scanner = bufio.NewScanner(l.In)

	for {
		name, ok := l.readLine("Enter the customer's name: ")
		if !ok {
			return nil
		}
		if name != "" {
			l.customer = name
			break
		}
		l.printf("Customer name must not be empty.\n")
	}

	for {
		l.printf("\n1. View available items\n")
		l.printf("2. Add items to cart\n")
		l.printf("3. Update or remove items in cart\n")
		l.printf("4. Save invoice to file\n")
		l.printf("5. View past invoices\n")
		l.printf("6. Exit\n")

		choice, ok := l.readLine("Enter your choice (1-6): ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			l.viewItems()
		case "2":
			if !l.addToCart() {
				return nil
			}
		case "3":
			if !l.updateCart() {
				return nil
			}
		case "4":
			l.saveInvoice()
		case "5":
			l.viewPastInvoices()
		case "6":
			l.printf("Thank you for using the billing system!\n")
			return nil
		default:
			l.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (l *Loop) viewItems() {
	items := l.Deps.Catalog.Items()
	if len(items) == 0 {
		l.printf("No items available.\n")
		return
	}
	sym := l.Deps.Config.CurrencySymbol
	l.printf("\nAvailable Items:\n")
	for i, item := range items {
		l.printf("%d. %s: %s%s - Category: %s - %s", i+1, item.Name, sym, item.Price.StringFixed(2), item.Category, item.Description)
		if promo, ok := l.Deps.Catalog.PromotionFor(item.Name); ok {
			eff := pricing.EffectiveUnitPrice(item.Price, &promo)
			l.printf(" (promo price %s%s)", sym, eff.StringFixed(2))
		}
		l.printf("\n")
	}
}

func (l *Loop) addToCart() bool {
	for {
		l.viewItems()
		raw, ok := l.readLine("Enter the item number to add to the cart (or '0' to finish): ")
		if !ok {
			return false
		}
		number, err := common.ParseIndex(raw)
		if err != nil {
			l.printf("Invalid input. Please enter a valid number.\n")
			continue
		}
		if number == 0 {
			return true
		}
		items := l.Deps.Catalog.Items()
		if number < 1 || number > len(items) {
			l.printf("Invalid item number. Please try again.\n")
			continue
		}
		item := items[number-1]

		rawQty, ok := l.readLine(fmt.Sprintf("Enter quantity for %s: ", item.Name))
		if !ok {
			return false
		}
		qty, err := common.ParseQuantity(rawQty)
		if err != nil {
			l.report(err)
			continue
		}
		if err := l.Deps.Cart.Add(item.Name, qty); err != nil {
			l.report(err)
			continue
		}
		l.printf("Added %d of %s to the cart.\n", qty, item.Name)
	}
}

func (l *Loop) updateCart() bool {
	for {
		name, ok := l.readLine("Enter the item name to update/remove (or 'done' to finish): ")
		if !ok {
			return false
		}
		if strings.EqualFold(name, "done") {
			return true
		}
		current := l.Deps.Cart.Quantity(name)
		if current == 0 {
			l.printf("%s is not in the cart. Try again.\n", name)
			continue
		}
		action, ok := l.readLine(fmt.Sprintf("Do you want to 'update' or 'remove' %s (current quantity: %d): ", name, current))
		if !ok {
			return false
		}
		switch strings.ToLower(action) {
		case "update":
			rawQty, ok := l.readLine(fmt.Sprintf("Enter new quantity for %s: ", name))
			if !ok {
				return false
			}
			qty, err := common.ParseQuantity(rawQty)
			if err != nil {
				l.report(err)
				continue
			}
			if err := l.Deps.Cart.SetQuantity(name, qty); err != nil {
				l.report(err)
				continue
			}
			l.printf("Updated %s quantity to %d.\n", name, qty)
		case "remove":
			if err := l.Deps.Cart.Remove(name); err != nil {
				l.report(err)
				continue
			}
			l.printf("Removed %s from the cart.\n", name)
		default:
			l.printf("Invalid action. Please type 'update' or 'remove'.\n")
		}
	}
}

// saveInvoice renders and writes the invoice. A failed write leaves
// cart, catalog, and log untouched.
func (l *Loop) saveInvoice() {
	if l.Deps.Cart.IsEmpty() {
		l.printf("Your cart is empty.\n")
		return
	}
	quote, err := l.Deps.Engine.Quote(l.Deps.Cart.Entries())
	if err != nil {
		l.report(err)
		return
	}
	content, err := l.Deps.Formatter.Render(l.customer, quote, l.now())
	if err != nil {
		l.report(err)
		return
	}
	fileName := invoice.FileName(l.customer)
	path, err := l.Deps.Store.Write(fileName, content)
	if err != nil {
		l.Deps.Logger.Error().Err(err).Str("file", fileName).Msg("save invoice")
		l.printf("Could not save the invoice: %v\n", err)
		return
	}
	l.Deps.Log.Record(l.customer, fileName)
	l.Deps.Logger.Info().Str("customer", l.customer).Str("path", path).Msg("invoice saved")
	l.printf("\nInvoice saved to %s successfully!\n", fileName)
}

func (l *Loop) viewPastInvoices() {
	records := l.Deps.Log.List()
	if len(records) == 0 {
		l.printf("No past invoices.\n")
		return
	}
	l.printf("\nPast Invoices:\n")
	for _, rec := range records {
		l.printf("Customer: %s, Filename: %s\n", rec.Customer, rec.FileName)
	}
}

// report prints a recoverable error and returns control to the menu.
// Unexpected (non-AppError) failures are additionally logged.
func (l *Loop) report(err error) {
	if !common.IsAppError(err) {
		l.Deps.Logger.Error().Err(err).Msg("unexpected failure")
	}
	l.printf("%s. Please try again.\n", err.Error())
}
