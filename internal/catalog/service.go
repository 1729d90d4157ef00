package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/pos-billing/internal/common"
)

// PromotionKind discriminates how a promotion value is applied.
type PromotionKind string

const (
	// PromotionPercentage subtracts value percent from the unit price.
	PromotionPercentage PromotionKind = "percentage"
	// PromotionFixed subtracts a fixed amount from the unit price.
	PromotionFixed PromotionKind = "fixed"
)

// ErrItemNotFound indicates the requested item is not registered.
var ErrItemNotFound = errors.New("item not found")

// Item describes a sellable product.
type Item struct {
	Name        string
	Price       decimal.Decimal
	Category    string
	Description string
}

// Promotion is a per-item discount rule applied before the cart-level
// discount. At most one promotion exists per item.
type Promotion struct {
	ItemName string
	Kind     PromotionKind
	Value    decimal.Decimal
}

// registration captures the raw item input for validation.
type registration struct {
	Name     string `validate:"required"`
	Category string `validate:"required"`
}

// Service is the in-memory registry of items and promotion rules.
// Items keep registration order; re-registering a name overwrites the
// item in place without changing its position.
type Service struct {
	items      map[string]Item
	order      []string
	categories map[string][]string
	catOrder   []string
	promotions map[string]Promotion
	validate   *validator.Validate
}

// NewService constructs an empty catalog.
func NewService() *Service {
	return &Service{
		items:      make(map[string]Item),
		categories: make(map[string][]string),
		promotions: make(map[string]Promotion),
		validate:   validator.New(),
	}
}

// RegisterItem inserts or overwrites the item keyed by name.
func (s *Service) RegisterItem(name string, price decimal.Decimal, category, description string) error {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if category == "" {
		category = "General"
	}
	reg := registration{Name: name, Category: category}
	if err := s.validate.Struct(reg); err != nil {
		return common.Validation("item registration is incomplete", err)
	}
	if price.IsNegative() {
		return common.Validation(fmt.Sprintf("price for %s must not be negative", name), nil)
	}

	if _, exists := s.items[name]; !exists {
		s.order = append(s.order, name)
	}
	s.items[name] = Item{Name: name, Price: price, Category: category, Description: description}
	s.indexCategory(category, name)
	return nil
}

func (s *Service) indexCategory(category, name string) {
	members, exists := s.categories[category]
	if !exists {
		s.catOrder = append(s.catOrder, category)
	}
	for _, member := range members {
		if member == name {
			return
		}
	}
	s.categories[category] = append(members, name)
}

// RegisterPromotion inserts or overwrites the promotion for an item.
// The item must already be registered.
func (s *Service) RegisterPromotion(itemName string, kind PromotionKind, value decimal.Decimal) error {
	itemName = strings.TrimSpace(itemName)
	if _, exists := s.items[itemName]; !exists {
		return common.NewAppError(common.CodeNotFound, fmt.Sprintf("cannot promote unknown item %q", itemName), ErrItemNotFound)
	}
	if kind != PromotionPercentage && kind != PromotionFixed {
		return common.Validation(fmt.Sprintf("unknown promotion kind %q", kind), nil)
	}
	if value.IsNegative() {
		return common.Validation("promotion value must not be negative", nil)
	}
	s.promotions[itemName] = Promotion{ItemName: itemName, Kind: kind, Value: value}
	return nil
}

// Lookup returns the item registered under name.
func (s *Service) Lookup(name string) (Item, error) {
	item, exists := s.items[strings.TrimSpace(name)]
	if !exists {
		return Item{}, common.NewAppError(common.CodeNotFound, fmt.Sprintf("item %q is not available", name), ErrItemNotFound)
	}
	return item, nil
}

// Exists reports whether an item is registered under name.
func (s *Service) Exists(name string) bool {
	_, exists := s.items[strings.TrimSpace(name)]
	return exists
}

// Items returns all items in registration order.
func (s *Service) Items() []Item {
	out := make([]Item, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.items[name])
	}
	return out
}

// PromotionFor returns the promotion registered for the item, if any.
func (s *Service) PromotionFor(name string) (Promotion, bool) {
	promo, exists := s.promotions[strings.TrimSpace(name)]
	return promo, exists
}

// Categories returns category names in first-seen order.
func (s *Service) Categories() []string {
	out := make([]string, len(s.catOrder))
	copy(out, s.catOrder)
	return out
}

// ItemsInCategory returns the item names registered under category, in
// registration order.
func (s *Service) ItemsInCategory(category string) []string {
	members := s.categories[strings.TrimSpace(category)]
	out := make([]string, len(members))
	copy(out, members)
	return out
}
