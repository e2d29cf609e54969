package service

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/alqaim/estates-api/internal/domain/enum"
	"github.com/alqaim/estates-api/pkg/apperror"
	"github.com/alqaim/estates-api/pkg/pagination"
	"github.com/alqaim/estates-api/pkg/pdf"
)

// fakePaymentRepo serves a fixed set of payments from memory.
type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	// Mirror the entity's BeforeCreate hook
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return r.payments[id], nil
}

func (r *fakePaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Payment, int64, error) {
	out := make([]entity.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

var testBranding = ReceiptBranding{
	Name:    "AL-QAIM ASSOCIATES & DEVELOPERS",
	Address: "Office No. 313, Block-A, 3rd Floor, Dar Plaza, Gilgit",
	City:    "Gilgit",
	Phone:   "0315-5265707",
	Email:   "info@alqaim.com",
	Website: "www.alqaim.com",
	Project: "AL-Madina City",
}

func testPayment() *entity.Payment {
	customer := &entity.Customer{
		ID:       uuid.New(),
		Name:     "Ali Khan",
		CNIC:     "12345-1234567-1",
		Phone:    "0300-1234567",
		Address:  "House 12, Street 4, Gilgit",
		Plot:     "B-17",
		PlotSize: "5 Marla",
		PlotType: "Residential",
		Phase:    "Phase 1",
	}
	return &entity.Payment{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		ReceiptNo:  "RCPT-1709290800000",
		Method:     enum.PaymentMethodCash,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(125000),
		Customer:   customer,
	}
}

func newReceiptService(payments ...*entity.Payment) *ReceiptService {
	repo := &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
	for _, p := range payments {
		repo.payments[p.ID] = p
	}
	return NewReceiptService(repo, pdf.NewEncoder(), testBranding)
}

func documentTexts(doc *pdf.Document) []string {
	var texts []string
	for _, cmd := range doc.Commands {
		if t, ok := cmd.(pdf.Text); ok {
			texts = append(texts, t.Value)
		}
	}
	return texts
}

func TestBuildReceiptDocumentContent(t *testing.T) {
	payment := testPayment()

	doc, err := BuildReceiptDocument(payment, payment.Customer, testBranding)
	require.NoError(t, err)

	texts := documentTexts(doc)
	assert.Contains(t, texts, "PAYMENT RECEIPT")
	assert.Contains(t, texts, "PKR 125,000")
	assert.Contains(t, texts, "Rupees One Lakh Twenty Five Thousand Only")
	assert.Contains(t, texts, "RCPT-1709290800000")
	assert.Contains(t, texts, "2024-03-01")
	assert.Contains(t, texts, "Ali Khan")
	assert.Contains(t, texts, "12345-1234567-1")
	assert.Contains(t, texts, "AL-Madina City")
	assert.Contains(t, texts, "AL-QAIM ASSOCIATES & DEVELOPERS")
}

func TestBuildReceiptDocumentLayout(t *testing.T) {
	payment := testPayment()

	doc, err := BuildReceiptDocument(payment, payment.Customer, testBranding)
	require.NoError(t, err)
	assert.Equal(t, pdf.PageWidthA4, doc.Width)
	assert.Equal(t, pdf.PageHeightA4, doc.Height)

	findText := func(value string) pdf.Text {
		t.Helper()
		for _, cmd := range doc.Commands {
			if txt, ok := cmd.(pdf.Text); ok && txt.Value == value {
				return txt
			}
		}
		t.Fatalf("no text command %q", value)
		return pdf.Text{}
	}

	title := findText("PAYMENT RECEIPT")
	assert.Equal(t, 135.0, title.Y)
	assert.Equal(t, pdf.AlignCenter, title.Align)
	assert.Equal(t, pdf.StyleBold, title.Style)

	name := findText("AL-QAIM ASSOCIATES & DEVELOPERS")
	assert.Equal(t, 50.0, name.Y)
	assert.Equal(t, 24.0, name.Size)

	words := findText("Rupees One Lakh Twenty Five Thousand Only")
	assert.Equal(t, pdf.StyleItalic, words.Style)
	assert.Equal(t, 65.0, words.X)

	var dividerAt110 bool
	for _, cmd := range doc.Commands {
		if line, ok := cmd.(pdf.Line); ok && line.Y1 == 110 && line.Y2 == 110 {
			dividerAt110 = true
			assert.Equal(t, 50.0, line.X1)
			assert.Equal(t, doc.Width-50, line.X2)
		}
	}
	assert.True(t, dividerAt110, "header divider rule missing")
}

func TestBuildReceiptDocumentMissingPlotDetails(t *testing.T) {
	payment := testPayment()
	payment.Customer.PlotSize = ""
	payment.Customer.PlotType = ""

	doc, err := BuildReceiptDocument(payment, payment.Customer, testBranding)
	require.NoError(t, err)

	na := 0
	for _, v := range documentTexts(doc) {
		if v == "N/A" {
			na++
		}
	}
	assert.Equal(t, 2, na)
}

func TestBuildReceiptDocumentTruncatesFractions(t *testing.T) {
	payment := testPayment()
	payment.Amount = decimal.RequireFromString("125000.75")

	doc, err := BuildReceiptDocument(payment, payment.Customer, testBranding)
	require.NoError(t, err)

	texts := documentTexts(doc)
	assert.Contains(t, texts, "PKR 125,000")
	assert.Contains(t, texts, "Rupees One Lakh Twenty Five Thousand Only")
}

func TestBuildReceiptLoadsPayment(t *testing.T) {
	payment := testPayment()
	svc := newReceiptService(payment)

	render, err := svc.BuildReceipt(context.Background(), payment.ID)
	require.NoError(t, err)

	assert.Equal(t, payment.ReceiptNo, render.ReceiptNo)
	assert.Equal(t, "receipt-RCPT-1709290800000.pdf", render.Filename)
	assert.NotEmpty(t, render.Document.Commands)
}

func TestBuildReceiptUnknownPayment(t *testing.T) {
	svc := newReceiptService()

	render, err := svc.BuildReceipt(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, render)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Payment not found", appErr.Message)
}

func TestWriteReceiptProducesPDF(t *testing.T) {
	payment := testPayment()
	svc := newReceiptService(payment)

	render, err := svc.BuildReceipt(context.Background(), payment.ID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteReceipt(context.Background(), render, &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteReceiptDeterministic(t *testing.T) {
	payment := testPayment()
	svc := newReceiptService(payment)

	var first, second bytes.Buffer
	for _, buf := range []*bytes.Buffer{&first, &second} {
		render, err := svc.BuildReceipt(context.Background(), payment.ID)
		require.NoError(t, err)
		require.NoError(t, svc.WriteReceipt(context.Background(), render, buf))
	}

	assert.Equal(t, first.Bytes(), second.Bytes())
}
