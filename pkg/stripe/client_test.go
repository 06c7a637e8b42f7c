package stripe

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "3548", r.PostForm.Get("amount")) // 35.48 in cents
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "ORD-20260830-0001", r.PostForm.Get("metadata[order_number]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","status":"requires_payment_method","amount":3548,"currency":"usd","client_secret":"pi_123_secret"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_123")
	intent, err := client.CreatePaymentIntent(35.48, "usd", "ORD-20260830-0001")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "requires_payment_method", intent.Status)
	assert.Equal(t, int64(3548), intent.Amount)
}

func TestCreatePaymentIntent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"type":"card_error","message":"Your card was declined."}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_123")
	_, err := client.CreatePaymentIntent(10, "usd", "ORD-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declined")
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1000), toMinorUnits(10.00))
	assert.Equal(t, int64(1099), toMinorUnits(10.99))
	// 19.99 is not exactly representable; rounding keeps the cent.
	assert.Equal(t, int64(1999), toMinorUnits(19.99))
	assert.Equal(t, int64(0), toMinorUnits(0))
}
