package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"ridebook/pkg/models"
)

const title = "RIDEBOOK TRAVELS - RECEIPT"

// Renderer produces the payment receipt as a PDF byte stream. Layout is a
// title followed by one line per field; missing optional fields render
// blank. Compression is off so field values stay inspectable in the output.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(f models.ReceiptFields) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCreationDate(f.Timestamp)
	pdf.SetModificationDate(f.Timestamp)
	pdf.AddPage()

	pdf.SetFont("Arial", "BU", 18)
	pdf.Cell(0, 12, title)
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 12)
	lines := []string{
		fmt.Sprintf("Customer: %s", f.CustomerName),
		fmt.Sprintf("Phone: %s", f.Phone),
		fmt.Sprintf("Payment ID: %s", f.PaymentID),
		fmt.Sprintf("Order ID: %s", f.OrderID),
		fmt.Sprintf("Driver: %s", f.Driver),
		fmt.Sprintf("Date: %s", f.Timestamp.Format("02 Jan 2006 15:04:05")),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
