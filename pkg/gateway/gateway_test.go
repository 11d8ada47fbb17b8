package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"ridebook/pkg/logger"
)

func TestCreateOrder(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		var req orderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, int64(1200000), req.Amount)
		require.Equal(t, "INR", req.Currency)

		_ = json.NewEncoder(w).Encode(orderResponse{
			ID:       "order_abc",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "key_id", "key_secret", logger.New("test", "error"))

	order, err := c.CreateOrder(context.Background(), 1200000, "INR", "ridebook_1")
	require.NoError(t, err)
	require.Equal(t, "order_abc", order.OrderID)
	require.Equal(t, int64(1200000), order.Amount)
	require.Equal(t, "INR", order.Currency)
	require.Equal(t, "ridebook_1", order.ReceiptLabel)
	require.NotEmpty(t, gotAuth)
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "key_id", "key_secret", logger.New("test", "error"))

	order, err := c.CreateOrder(context.Background(), 50000, "INR", "ridebook_2")
	require.Error(t, err)
	require.Nil(t, order)
}

func TestClientVerifyUsesKeySecret(t *testing.T) {
	c := New("http://localhost", "key_id", "key_secret", logger.New("test", "error"))

	valid := sign("order_1", "pay_1", "key_secret")
	require.True(t, c.Verify("order_1", "pay_1", valid))
	require.False(t, c.Verify("order_1", "pay_1", sign("order_1", "pay_1", "other")))
}
