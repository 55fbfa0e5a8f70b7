// internal/domain/checkout/service_test.go
package checkout

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

type fakeCarts struct {
	cart    *cart.Cart
	cleared bool
}

func (f *fakeCarts) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return f.cart, nil
}

func (f *fakeCarts) Clear(ctx context.Context, sessionID string) error {
	f.cleared = true
	f.cart = &cart.Cart{}
	return nil
}

type fakeDialogs struct {
	closed []string
}

func (f *fakeDialogs) Close(sessionID string) {
	f.closed = append(f.closed, sessionID)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Checkout.WhatsAppNumber = "221781965641"
	cfg.Checkout.StoreName = "SEN DIWANE TOUHFATOU"
	return cfg
}

func testCart() *cart.Cart {
	return &cart.Cart{Lines: []cart.Line{
		{ProductID: "corporel-1", Name: "Musc Tahara", Price: 1000, Quantity: 2},
		{ProductID: "maison-3", Name: "Oud Royal", Price: 2500, Quantity: 1},
	}}
}

func newTestService(carts *fakeCarts, dialogs *fakeDialogs) *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(carts, dialogs, testConfig(), logger)
}

func TestService_SubmitValidation(t *testing.T) {
	cases := []struct {
		name  string
		req   SubmitRequest
		field string
	}{
		{"missing name", SubmitRequest{Phone: "770000000", Address: "Dakar"}, "name"},
		{"missing phone", SubmitRequest{Name: "Awa", Address: "Dakar"}, "phone"},
		{"missing address", SubmitRequest{Name: "Awa", Phone: "770000000"}, "address"},
		{"blank counts as missing", SubmitRequest{Name: "  ", Phone: "770000000", Address: "Dakar"}, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			carts := &fakeCarts{cart: testCart()}
			dialogs := &fakeDialogs{}
			svc := newTestService(carts, dialogs)

			_, err := svc.Submit(context.Background(), "s1", &tc.req)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)

			// Nothing may change on a rejected submission.
			assert.False(t, carts.cleared)
			assert.Empty(t, dialogs.closed)
			assert.Len(t, carts.cart.Lines, 2)
		})
	}
}

func TestService_SubmitEmptyCart(t *testing.T) {
	carts := &fakeCarts{cart: &cart.Cart{}}
	dialogs := &fakeDialogs{}
	svc := newTestService(carts, dialogs)

	_, err := svc.Submit(context.Background(), "s1", &SubmitRequest{Name: "Awa", Phone: "770000000", Address: "Dakar"})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, dialogs.closed)
}

func TestService_SubmitSuccess(t *testing.T) {
	carts := &fakeCarts{cart: testCart()}
	dialogs := &fakeDialogs{}
	svc := newTestService(carts, dialogs)

	res, err := svc.Submit(context.Background(), "s1", &SubmitRequest{
		Name:    "Awa Diop",
		Phone:   "770000000",
		Address: "Médina, Dakar",
	})
	require.NoError(t, err)

	t.Run("summary matches cart contents", func(t *testing.T) {
		assert.Contains(t, res.Message, "NOUVELLE COMMANDE - SEN DIWANE TOUHFATOU")
		assert.Contains(t, res.Message, "*Client:* Awa Diop")
		assert.Contains(t, res.Message, "*Téléphone:* 770000000")
		assert.Contains(t, res.Message, "*Adresse:* Médina, Dakar")
		assert.Contains(t, res.Message, "1. Musc Tahara")
		assert.Contains(t, res.Message, "Prix unitaire: 1 000 FCFA")
		assert.Contains(t, res.Message, "Quantité: 2")
		assert.Contains(t, res.Message, "Sous-total: 2 000 FCFA")
		assert.Contains(t, res.Message, "2. Oud Royal")
		assert.Contains(t, res.Message, "TOTAL À PAYER: 4 500 FCFA")
		assert.Equal(t, int64(4500), res.Total)
		assert.Equal(t, 2, res.LineCount)
	})

	t.Run("deep link targets the configured number with the encoded summary", func(t *testing.T) {
		require.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/221781965641?"))

		parsed, err := url.Parse(res.WhatsAppURL)
		require.NoError(t, err)
		assert.Equal(t, res.Message, parsed.Query().Get("text"))
	})

	t.Run("cart is cleared and dialog closed", func(t *testing.T) {
		assert.True(t, carts.cleared)
		assert.Equal(t, []string{"s1"}, dialogs.closed)
	})
}
