package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

const payCodeSize = 200

// RenderPaymentCode turns a bill total into a scannable PNG. Used only when
// the payment method is "QR Code".
func RenderPaymentCode(amount decimal.Decimal) ([]byte, error) {
	content := fmt.Sprintf("Amount: %s", amount.StringFixed(2))
	png, err := qrcode.Encode(content, qrcode.Medium, payCodeSize)
	if err != nil {
		return nil, fmt.Errorf("encode payment code: %w", err)
	}
	return png, nil
}
