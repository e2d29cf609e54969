package utils

import (
	"strconv"
	"time"
)

// GenerateReceiptNo generates a receipt number from the creation time.
// The format is RCPT-<unix milliseconds> and is fixed for the life of the
// payment: receipt numbers are embedded in download filenames and printed
// documents, so they are never regenerated.
func GenerateReceiptNo(t time.Time) string {
	return "RCPT-" + strconv.FormatInt(t.UnixMilli(), 10)
}
