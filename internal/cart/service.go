package cart

import (
	"errors"
	"fmt"

	"github.com/noah-isme/pos-billing/internal/common"
)

// ErrUnknownItem indicates the item is not registered in the catalog.
var ErrUnknownItem = errors.New("unknown item")

// ErrNotInCart indicates the cart holds no entry for the item.
var ErrNotInCart = errors.New("item not in cart")

// ErrInvalidQuantity is returned when a quantity is zero or negative.
var ErrInvalidQuantity = errors.New("invalid quantity")

// Line is one cart entry.
type Line struct {
	ItemName string
	Quantity int
}

// Lookup reports whether an item name exists in the catalog. The cart
// validates every insertion through it so cart keys always reference
// registered items.
type Lookup func(name string) bool

// Service holds the customer's current selection. Entries keep
// insertion order; quantities accumulate on repeated Add.
type Service struct {
	exists     Lookup
	quantities map[string]int
	order      []string
}

// NewService constructs an empty cart validating against the provided lookup.
func NewService(exists Lookup) *Service {
	return &Service{
		exists:     exists,
		quantities: make(map[string]int),
	}
}

// Add inserts the item or increments its quantity when already present.
func (s *Service) Add(itemName string, quantity int) error {
	if s.exists == nil || !s.exists(itemName) {
		return common.NewAppError(common.CodeNotFound, fmt.Sprintf("item %q is not available", itemName), ErrUnknownItem)
	}
	if quantity <= 0 {
		return common.NewAppError(common.CodeValidation, "quantity must be greater than 0", ErrInvalidQuantity)
	}
	if _, present := s.quantities[itemName]; !present {
		s.order = append(s.order, itemName)
	}
	s.quantities[itemName] += quantity
	return nil
}

// SetQuantity overwrites the quantity of an existing entry.
func (s *Service) SetQuantity(itemName string, quantity int) error {
	if _, present := s.quantities[itemName]; !present {
		return common.NewAppError(common.CodeNotFound, fmt.Sprintf("%s is not in the cart", itemName), ErrNotInCart)
	}
	if quantity <= 0 {
		return common.NewAppError(common.CodeValidation, "quantity must be greater than 0", ErrInvalidQuantity)
	}
	s.quantities[itemName] = quantity
	return nil
}

// Remove deletes the entry for the item.
func (s *Service) Remove(itemName string) error {
	if _, present := s.quantities[itemName]; !present {
		return common.NewAppError(common.CodeNotFound, fmt.Sprintf("%s is not in the cart", itemName), ErrNotInCart)
	}
	delete(s.quantities, itemName)
	for i, name := range s.order {
		if name == itemName {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Quantity returns the quantity for the item, zero when absent.
func (s *Service) Quantity(itemName string) int {
	return s.quantities[itemName]
}

// IsEmpty reports whether the cart has no entries.
func (s *Service) IsEmpty() bool {
	return len(s.order) == 0
}

// Entries returns the cart lines in insertion order.
func (s *Service) Entries() []Line {
	out := make([]Line, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Line{ItemName: name, Quantity: s.quantities[name]})
	}
	return out
}

// Clear empties the cart for the next customer session.
func (s *Service) Clear() {
	s.quantities = make(map[string]int)
	s.order = nil
}
