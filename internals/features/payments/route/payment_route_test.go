package route

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The gateway posts notifications without a bearer token, so the webhook is
// mounted directly on the app. A request with no Authorization header must
// reach the handler (here: rejected for its payload, not for missing auth).
func TestPaymentWebhookRoutes_ReachableWithoutAuth(t *testing.T) {
	app := fiber.New()
	PaymentWebhookRoutes(app, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/notification",
		strings.NewReader(`{"order_id":"ENR-AB12CD34EF56"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEqual(t, http.StatusUnauthorized, resp.StatusCode)
}
