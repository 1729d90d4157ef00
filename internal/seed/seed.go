package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/pos-billing/internal/catalog"
)

type itemRow struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

type promotionRow struct {
	ItemName string          `json:"itemName"`
	Kind     string          `json:"kind"`
	Value    decimal.Decimal `json:"value"`
}

type file struct {
	Items      []itemRow      `json:"items"`
	Promotions []promotionRow `json:"promotions"`
}

// Catalog loads the built-in electronics catalog into the registry.
func Catalog(c *catalog.Service) error {
	rows := []itemRow{
		{Name: "APPLE SMART WATCH", Price: decimal.NewFromInt(24000), Category: "Gadgets", Description: "Apple Smart Watch with advanced features."},
		{Name: "SMART WATCH", Price: decimal.NewFromInt(5000), Category: "Gadgets", Description: "Basic Smart Watch with fitness tracking features."},
		{Name: "PHONE", Price: decimal.NewFromInt(70000), Category: "Electronics", Description: "Smartphone with 128GB storage."},
		{Name: "LAPTOP", Price: decimal.NewFromInt(150000), Category: "Electronics", Description: "Laptop with 16GB RAM, 1TB SSD."},
		{Name: "TABLET", Price: decimal.NewFromInt(35000), Category: "Electronics", Description: "Tablet with 10-inch screen and stylus support."},
		{Name: "WIRELESS EARPHONES", Price: decimal.NewFromInt(3000), Category: "Gadgets", Description: "Bluetooth wireless earphones with noise cancellation."},
		{Name: "SMART SPEAKER", Price: decimal.NewFromInt(7000), Category: "Gadgets", Description: "Voice-activated smart speaker with Alexa."},
	}
	promos := []promotionRow{
		{ItemName: "LAPTOP", Kind: string(catalog.PromotionPercentage), Value: decimal.NewFromInt(10)},
	}
	return apply(c, file{Items: rows, Promotions: promos})
}

// LoadFile seeds the catalog from a JSON file containing items and
// promotions. Rows go through the catalog API so the same validation
// applies as for built-in data.
func LoadFile(c *catalog.Service, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return apply(c, f)
}

func apply(c *catalog.Service, f file) error {
	for _, row := range f.Items {
		if err := c.RegisterItem(row.Name, row.Price, row.Category, row.Description); err != nil {
			return fmt.Errorf("seed item %s: %w", row.Name, err)
		}
	}
	for _, row := range f.Promotions {
		if err := c.RegisterPromotion(row.ItemName, catalog.PromotionKind(row.Kind), row.Value); err != nil {
			return fmt.Errorf("seed promotion %s: %w", row.ItemName, err)
		}
	}
	return nil
}
