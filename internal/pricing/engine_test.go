package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/pos-billing/internal/cart"
	"github.com/noah-isme/pos-billing/internal/catalog"
)

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEffectiveUnitPricePercentage(t *testing.T) {
	promo := &catalog.Promotion{Kind: catalog.PromotionPercentage, Value: dec("10")}
	got := EffectiveUnitPrice(dec("1000"), promo)
	if !got.Equal(dec("900")) {
		t.Fatalf("expected 900, got %s", got)
	}
}

func TestEffectiveUnitPricePercentageClampsToZero(t *testing.T) {
	promo := &catalog.Promotion{Kind: catalog.PromotionPercentage, Value: dec("150")}
	got := EffectiveUnitPrice(dec("1000"), promo)
	if !got.IsZero() {
		t.Fatalf("expected 0 for >100%% promotion, got %s", got)
	}
}

func TestEffectiveUnitPriceFixed(t *testing.T) {
	promo := &catalog.Promotion{Kind: catalog.PromotionFixed, Value: dec("300")}
	if got := EffectiveUnitPrice(dec("1000"), promo); !got.Equal(dec("700")) {
		t.Fatalf("expected 700, got %s", got)
	}
	if got := EffectiveUnitPrice(dec("200"), promo); !got.IsZero() {
		t.Fatalf("expected fixed promotion floored at zero, got %s", got)
	}
}

func TestEffectiveUnitPriceWithoutPromotion(t *testing.T) {
	if got := EffectiveUnitPrice(dec("42.50"), nil); !got.Equal(dec("42.50")) {
		t.Fatalf("expected unchanged price, got %s", got)
	}
}

func seededCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	svc := catalog.NewService()
	if err := svc.RegisterItem("ITEM_A", dec("100"), "General", ""); err != nil {
		t.Fatal(err)
	}
	if err := svc.RegisterItem("ITEM_B", dec("50"), "General", ""); err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestQuoteWithoutDiscounts(t *testing.T) {
	engine := &Engine{Catalog: seededCatalog(t), DiscountRate: decimal.Zero}
	quote, err := engine.Quote([]cart.Line{
		{ItemName: "ITEM_A", Quantity: 2},
		{ItemName: "ITEM_B", Quantity: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !quote.Subtotal.Equal(dec("250")) {
		t.Fatalf("expected subtotal 250, got %s", quote.Subtotal)
	}
	if !quote.DiscountAmount.IsZero() {
		t.Fatalf("expected zero discount, got %s", quote.DiscountAmount)
	}
	if !quote.Payable.Equal(dec("250")) {
		t.Fatalf("expected payable 250, got %s", quote.Payable)
	}
	if len(quote.Lines) != 2 || quote.Lines[0].ItemName != "ITEM_A" {
		t.Fatalf("expected lines in insertion order, got %+v", quote.Lines)
	}
	if !quote.Lines[0].LineTotal.Equal(dec("200")) || !quote.Lines[1].LineTotal.Equal(dec("50")) {
		t.Fatalf("unexpected line totals: %+v", quote.Lines)
	}
}

func TestQuoteAppliesItemPromotion(t *testing.T) {
	cat := catalog.NewService()
	if err := cat.RegisterItem("ITEM_A", dec("1000"), "General", ""); err != nil {
		t.Fatal(err)
	}
	if err := cat.RegisterPromotion("ITEM_A", catalog.PromotionPercentage, dec("10")); err != nil {
		t.Fatal(err)
	}
	engine := &Engine{Catalog: cat, DiscountRate: decimal.Zero}
	quote, err := engine.Quote([]cart.Line{{ItemName: "ITEM_A", Quantity: 3}})
	if err != nil {
		t.Fatal(err)
	}
	line := quote.Lines[0]
	if !line.UnitPrice.Equal(dec("1000")) {
		t.Fatalf("expected original unit price kept, got %s", line.UnitPrice)
	}
	if !line.PromotedUnit.Equal(dec("900")) {
		t.Fatalf("expected promoted unit 900, got %s", line.PromotedUnit)
	}
	if !line.LineTotal.Equal(dec("2700")) {
		t.Fatalf("expected line total 2700, got %s", line.LineTotal)
	}
}

func TestQuoteAppliesGlobalDiscountOnTopOfPromotions(t *testing.T) {
	cat := catalog.NewService()
	if err := cat.RegisterItem("ITEM_A", dec("1000"), "General", ""); err != nil {
		t.Fatal(err)
	}
	engine := &Engine{Catalog: cat, DiscountRate: dec("5")}
	quote, err := engine.Quote([]cart.Line{{ItemName: "ITEM_A", Quantity: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if !quote.DiscountAmount.Equal(dec("50")) {
		t.Fatalf("expected discount 50, got %s", quote.DiscountAmount)
	}
	if !quote.Payable.Equal(dec("950")) {
		t.Fatalf("expected payable 950, got %s", quote.Payable)
	}
}

func TestQuoteEmptyCartYieldsZeroAggregates(t *testing.T) {
	engine := &Engine{Catalog: seededCatalog(t), DiscountRate: dec("5")}
	quote, err := engine.Quote(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(quote.Lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(quote.Lines))
	}
	if !quote.Subtotal.IsZero() || !quote.DiscountAmount.IsZero() || !quote.Payable.IsZero() {
		t.Fatalf("expected all-zero aggregates, got %+v", quote)
	}
}

func TestQuoteFailsOnUnknownItem(t *testing.T) {
	engine := &Engine{Catalog: seededCatalog(t), DiscountRate: decimal.Zero}
	if _, err := engine.Quote([]cart.Line{{ItemName: "GHOST", Quantity: 1}}); err == nil {
		t.Fatal("expected lookup error for unknown item")
	}
}
