package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ridebook/pkg/models"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Render(models.ReceiptFields{
		CustomerName: "Asha",
		Phone:        "+911234567890",
		PaymentID:    "pay_789",
		OrderID:      "order_123",
		Driver:       "Driver 2",
		Timestamp:    time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, doc)

	body := string(doc)
	require.Contains(t, body, "%PDF")
	require.Contains(t, body, "RIDEBOOK TRAVELS - RECEIPT")
	require.Contains(t, body, "Driver 2")
	require.Contains(t, body, "pay_789")
	require.Contains(t, body, "order_123")
	require.Contains(t, body, "14 Mar 2026")
}

func TestRenderMissingOptionalFields(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Render(models.ReceiptFields{
		PaymentID: "pay_789",
		OrderID:   "order_123",
		Driver:    "Driver 1",
		Timestamp: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Contains(t, string(doc), "Customer: ")
	require.Contains(t, string(doc), "Phone: ")
}

func TestRenderIsDeterministic(t *testing.T) {
	r := NewRenderer()
	fields := models.ReceiptFields{
		CustomerName: "Asha",
		PaymentID:    "pay_789",
		OrderID:      "order_123",
		Driver:       "Driver 3",
		Timestamp:    time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}

	a, err := r.Render(fields)
	require.NoError(t, err)
	b, err := r.Render(fields)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
