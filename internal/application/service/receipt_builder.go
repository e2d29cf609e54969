package service

import (
	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/alqaim/estates-api/pkg/numwords"
	"github.com/alqaim/estates-api/pkg/pdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReceiptBranding holds the letterhead strings printed on every receipt.
// It is passed in from configuration so the builder has no hidden inputs.
type ReceiptBranding struct {
	Name    string
	Address string
	City    string
	Phone   string
	Email   string
	Website string
	Project string
}

var amountPrinter = message.NewPrinter(language.English)

// BuildReceiptDocument composes the printable receipt for a payment as an
// ordered draw-command list. It is a pure function of its arguments: no
// I/O, no clock, and the same payment always yields the same document.
//
// The amount appears twice, as a thousands-separated figure and spelled out
// in words. Both renderings are taken from the same whole-rupee value
// (fractional paisa are truncated before either is produced) so the figure
// and the words can never disagree.
func BuildReceiptDocument(payment *entity.Payment, customer *entity.Customer, branding ReceiptBranding) (*pdf.Document, error) {
	rupees := payment.Amount.IntPart()
	words, err := numwords.ToWords(rupees)
	if err != nil {
		return nil, err
	}

	doc := pdf.NewA4Document()
	contentWidth := doc.Width - 2*receiptMargin

	centered := func(value string, y, size float64, style string, color pdf.Color) pdf.Text {
		return pdf.Text{
			Value: value,
			X:     receiptMargin,
			Y:     y,
			Style: style,
			Size:  size,
			Color: color,
			Width: contentWidth,
			Align: pdf.AlignCenter,
		}
	}
	label := func(value string, x, y float64) pdf.Text {
		return pdf.Text{Value: value, X: x, Y: y, Style: pdf.StyleBold, Size: 10, Color: colorMuted}
	}
	detail := func(value string, x, y float64) pdf.Text {
		return pdf.Text{Value: value, X: x, Y: y, Size: 10, Color: colorBody}
	}

	// Header
	doc.Add(
		centered(branding.Name, headerNameY, 24, pdf.StyleBold, colorInk),
		centered(branding.Address, headerAddressY, 10, pdf.StyleRegular, colorMuted),
		centered("Phone: "+branding.Phone+" | Email: "+branding.Email, headerContactY, 9, pdf.StyleRegular, colorMuted),
		pdf.Line{X1: receiptMargin, Y1: dividerRuleY, X2: doc.Width - receiptMargin, Y2: dividerRuleY, Color: colorAccent, Width: 2},
	)

	// Title
	doc.Add(centered("PAYMENT RECEIPT", receiptTitleY, 18, pdf.StyleBold, colorAccent))

	// Receipt info box
	doc.Add(
		pdf.Rect{X: receiptMargin, Y: infoBoxY, W: contentWidth, H: infoBoxHeight, Fill: colorBoxFill, Stroke: colorBorder},
		pdf.Text{Value: "Receipt No:", X: infoLabelX, Y: infoBoxY + infoRowInset, Style: pdf.StyleBold, Size: 10, Color: colorBody},
		pdf.Text{Value: payment.ReceiptNo, X: infoValueX, Y: infoBoxY + infoRowInset, Size: 10, Color: colorBody},
		pdf.Text{Value: "Date:", X: doc.Width - 200, Y: infoBoxY + infoRowInset, Style: pdf.StyleBold, Size: 10, Color: colorBody},
		pdf.Text{Value: payment.Date.Format("2006-01-02"), X: doc.Width - 150, Y: infoBoxY + infoRowInset, Size: 10, Color: colorBody},
	)

	// Customer information
	customerBoxY := customerSectionY + sectionBoxGap
	rowY := customerBoxY + sectionRowInset
	addressValue := detail(customer.Address, detailValueX, rowY+3*sectionRowHeight)
	addressValue.Width = addressWrapWidth
	doc.Add(
		pdf.Text{Value: "CUSTOMER INFORMATION", X: receiptMargin, Y: customerSectionY, Style: pdf.StyleBold, Size: 12, Color: colorAccent},
		pdf.Rect{X: receiptMargin, Y: customerBoxY, W: contentWidth, H: customerBoxHeight, Radius: boxCornerRadius, Fill: colorWhite, Stroke: colorBorder},
		label("Customer Name:", detailLabelX, rowY),
		detail(customer.Name, detailValueX, rowY),
		label("CNIC:", detailLabelX, rowY+sectionRowHeight),
		detail(customer.CNIC, detailValueX, rowY+sectionRowHeight),
		label("Phone:", detailLabelX, rowY+2*sectionRowHeight),
		detail(customer.Phone, detailValueX, rowY+2*sectionRowHeight),
		label("Address:", detailLabelX, rowY+3*sectionRowHeight),
		addressValue,
	)

	// Property details
	propertyBoxY := propertySectionY + sectionBoxGap
	rowY = propertyBoxY + sectionRowInset
	doc.Add(
		pdf.Text{Value: "PROPERTY DETAILS", X: receiptMargin, Y: propertySectionY, Style: pdf.StyleBold, Size: 12, Color: colorAccent},
		pdf.Rect{X: receiptMargin, Y: propertyBoxY, W: contentWidth, H: propertyBoxHeight, Radius: boxCornerRadius, Fill: colorWhite, Stroke: colorBorder},
		label("Project Name:", detailLabelX, rowY),
		detail(branding.Project, detailValueX, rowY),
		label("Plot No:", detailLabelX, rowY+sectionRowHeight),
		detail(customer.Plot, detailValueX, rowY+sectionRowHeight),
		label("Block/Phase:", detailRightLabelX, rowY+sectionRowHeight),
		detail(customer.Phase, detailRightValueX, rowY+sectionRowHeight),
		label("Plot Type:", detailLabelX, rowY+2*sectionRowHeight),
		detail(orNA(customer.PlotType), detailValueX, rowY+2*sectionRowHeight),
		label("Plot Size:", detailRightLabelX, rowY+2*sectionRowHeight),
		detail(orNA(customer.PlotSize), detailRightValueX, rowY+2*sectionRowHeight),
	)

	// Payment details
	paymentBoxY := paymentSectionY + sectionBoxGap
	doc.Add(
		pdf.Text{Value: "PAYMENT DETAILS", X: receiptMargin, Y: paymentSectionY, Style: pdf.StyleBold, Size: 12, Color: colorAccent},
		pdf.Rect{X: receiptMargin, Y: paymentBoxY, W: contentWidth, H: paymentBoxHeight, Radius: boxCornerRadius, Fill: colorAmountBox, Stroke: colorAccent},
		pdf.Text{Value: "Amount Paid:", X: detailLabelX, Y: paymentBoxY + 13, Style: pdf.StyleBold, Size: 11, Color: colorMuted},
		pdf.Text{Value: amountPrinter.Sprintf("PKR %d", rupees), X: doc.Width - 250, Y: paymentBoxY + 10, Style: pdf.StyleBold, Size: 20, Color: colorAccent},
		pdf.Text{Value: "Rupees " + words + " Only", X: detailLabelX, Y: paymentBoxY + 33, Style: pdf.StyleItalic, Size: 10, Color: colorMuted, Width: doc.Width - 130},
	)

	// Signature block, anchored to the page bottom
	signatureY := doc.Height - signatureBottomOffset
	doc.Add(
		pdf.Line{X1: receiptMargin, Y1: signatureY - 20, X2: doc.Width - receiptMargin, Y2: signatureY - 20, Color: colorFaintRule, Width: 1},
		pdf.Text{
			Value: "This is a computer-generated receipt and does not require a signature.",
			X:     receiptMargin, Y: signatureY,
			Style: pdf.StyleItalic, Size: 10, Color: colorMuted,
			Width: disclaimerWrapWidth,
		},
		pdf.Text{Value: "Authorized Signature", X: doc.Width - 200, Y: signatureY + 20, Style: pdf.StyleBold, Size: 10, Color: colorBody},
		pdf.Line{X1: doc.Width - 200, Y1: signatureY + 50, X2: doc.Width - receiptMargin, Y2: signatureY + 50, Color: colorBody, Width: 1},
	)

	// Footer
	doc.Add(
		centered(
			"Thank you for your payment! For any queries, please contact us at "+branding.Phone,
			doc.Height-footerContactBottomOffset, 8, pdf.StyleRegular, colorFooter,
		),
		centered(
			branding.Name+" | "+branding.City+" | "+branding.Website,
			doc.Height-footerBrandingBottomOffset, 7, pdf.StyleRegular, colorBranding,
		),
	)

	return doc, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
