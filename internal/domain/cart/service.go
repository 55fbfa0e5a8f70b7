// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Service handles cart business logic. State lives entirely in Storage; the
// service re-reads it on every call so nothing is ever cached stale.
type Service struct {
	storage Storage
}

// NewService creates a new cart service.
func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// Get retrieves the cart for a session.
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}
	return s.storage.Load(ctx, sessionID)
}

// Add puts quantity units of a product into the cart. If a line for the
// product already exists its quantity is incremented; a duplicate line is
// never created. The cart is persisted before returning.
func (s *Service) Add(ctx context.Context, sessionID string, p catalog.Product, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Add(Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
		Quantity:  quantity,
	})

	if err := s.storage.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove deletes the line for a product id. Removing a line that is not in
// the cart is a no-op, not an error.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !c.Remove(productID) {
		return c, nil
	}

	if err := s.storage.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the cart. Called as the terminal step of a successful
// checkout.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required")
	}
	return s.storage.Delete(ctx, sessionID)
}

// Count returns the total quantity across all lines, for the cart badge.
func (s *Service) Count(ctx context.Context, sessionID string) (int, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return c.TotalQuantity(), nil
}
