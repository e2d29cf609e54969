package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/alqaim/estates-api/internal/domain/repository"
	"github.com/alqaim/estates-api/pkg/apperror"
	"github.com/alqaim/estates-api/pkg/pdf"
)

// ReceiptRender is a built receipt ready to be encoded. Splitting build from
// write lets the HTTP layer set response headers before any PDF bytes are
// produced, so a missing payment never leaks a partial body.
type ReceiptRender struct {
	ReceiptNo string
	Filename  string
	Document  *pdf.Document
}

type ReceiptService struct {
	paymentRepo repository.PaymentRepository
	encoder     *pdf.Encoder
	branding    ReceiptBranding
}

func NewReceiptService(paymentRepo repository.PaymentRepository, encoder *pdf.Encoder, branding ReceiptBranding) *ReceiptService {
	return &ReceiptService{
		paymentRepo: paymentRepo,
		encoder:     encoder,
		branding:    branding,
	}
}

// BuildReceipt loads the payment with its customer and composes the receipt
// document. It does not encode anything yet.
func (s *ReceiptService) BuildReceipt(ctx context.Context, paymentID uuid.UUID) (*ReceiptRender, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, apperror.NewInternalError("Failed to load payment")
	}
	if payment == nil || payment.Customer == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	doc, err := BuildReceiptDocument(payment, payment.Customer, s.branding)
	if err != nil {
		return nil, apperror.NewInternalError("Failed to compose receipt")
	}

	return &ReceiptRender{
		ReceiptNo: payment.ReceiptNo,
		Filename:  "receipt-" + payment.ReceiptNo + ".pdf",
		Document:  doc,
	}, nil
}

// WriteReceipt encodes a built receipt to w as PDF bytes.
func (s *ReceiptService) WriteReceipt(ctx context.Context, render *ReceiptRender, w io.Writer) error {
	if err := s.encoder.Encode(ctx, render.Document, w); err != nil {
		return apperror.NewEncodingError("Failed to encode receipt")
	}
	return nil
}
