package service

// QRCodeService renders order receipts as QR codes.
type QRCodeService interface {
	// GenerateOrderReceiptQR returns a PNG encoding the order reference.
	GenerateOrderReceiptQR(orderID int64) ([]byte, error)

	// ParseOrderReceiptQR extracts the order id from scanned QR text.
	ParseOrderReceiptQR(qrData string) (int64, error)
}
