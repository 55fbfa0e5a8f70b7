// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/pkg/money"
)

// ErrEmptyCart is returned when submitting a checkout with nothing in the
// cart.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports a missing required checkout field. The cart and
// dialog state are left untouched when one is returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

// CartReader is the slice of the cart service the checkout flow needs.
type CartReader interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// DialogCloser dismisses the session's visible dialog after a successful
// submission.
type DialogCloser interface {
	Close(sessionID string)
}

// SubmitRequest carries the contact-and-address form.
type SubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// Result is what a successful submission hands back: the pre-filled deep
// link the client opens, plus the summary it encodes. Success means "the
// link was produced", not "the order was received"; the handoff is
// fire-and-forget.
type Result struct {
	WhatsAppURL  string `json:"whatsapp_url"`
	Message      string `json:"message"`
	Total        int64  `json:"total"`
	LineCount    int    `json:"line_count"`
	Confirmation string `json:"confirmation"`
}

// Service handles checkout business logic.
type Service struct {
	carts   CartReader
	dialogs DialogCloser
	config  *config.Config
	logger  *logrus.Logger
}

// NewService creates a new checkout service.
func NewService(carts CartReader, dialogs DialogCloser, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		carts:   carts,
		dialogs: dialogs,
		config:  cfg,
		logger:  logger,
	}
}

// Submit validates the form, formats the order summary, and builds the
// WhatsApp deep link. On success it then clears the cart and closes the
// session's dialog, in that order; on any failure everything is left as it
// was.
func (s *Service) Submit(ctx context.Context, sessionID string, req *SubmitRequest) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	message := s.buildOrderMessage(req, c)
	link := s.buildDeepLink(message)

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}
	s.dialogs.Close(sessionID)

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"lines":      len(c.Lines),
		"total":      c.Total(),
	}).Info("Checkout submitted")

	return &Result{
		WhatsAppURL:  link,
		Message:      message,
		Total:        c.Total(),
		LineCount:    len(c.Lines),
		Confirmation: "Votre commande a été envoyée avec succès! Vous allez être redirigé vers WhatsApp pour finaliser.",
	}, nil
}

func validate(req *SubmitRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: "name"}
	}
	if strings.TrimSpace(req.Phone) == "" {
		return &ValidationError{Field: "phone"}
	}
	if strings.TrimSpace(req.Address) == "" {
		return &ValidationError{Field: "address"}
	}
	return nil
}

// buildOrderMessage formats the human-readable order summary: client block,
// then each line with unit price, quantity and subtotal, then the grand
// total.
func (s *Service) buildOrderMessage(req *SubmitRequest, c *cart.Cart) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛍️ *NOUVELLE COMMANDE - %s*\n\n", s.config.Checkout.StoreName)
	fmt.Fprintf(&b, "👤 *Client:* %s\n", req.Name)
	fmt.Fprintf(&b, "📱 *Téléphone:* %s\n", req.Phone)
	fmt.Fprintf(&b, "📍 *Adresse:* %s\n\n", req.Address)
	b.WriteString("🛒 *PRODUITS COMMANDÉS:*\n")

	for i, line := range c.Lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line.Name)
		fmt.Fprintf(&b, "   • Prix unitaire: %s\n", money.FormatFCFA(line.Price))
		fmt.Fprintf(&b, "   • Quantité: %d\n", line.Quantity)
		fmt.Fprintf(&b, "   • Sous-total: %s\n\n", money.FormatFCFA(line.Subtotal()))
	}

	fmt.Fprintf(&b, "💰 *TOTAL À PAYER: %s*\n\n", money.FormatFCFA(c.Total()))
	b.WriteString("📝 Merci de confirmer cette commande et m'indiquer les modalités de livraison.")

	return b.String()
}

func (s *Service) buildDeepLink(message string) string {
	query := url.Values{}
	query.Set("text", message)
	return fmt.Sprintf("https://wa.me/%s?%s", s.config.Checkout.WhatsAppNumber, query.Encode())
}
