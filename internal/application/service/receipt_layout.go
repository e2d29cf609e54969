package service

import "github.com/alqaim/estates-api/pkg/pdf"

// Receipt page palette. One accent color for emphasis, near-black ink for
// primary text, grays for secondary text and box chrome.
var (
	colorInk       = pdf.Color{R: 26, G: 26, B: 26}    // #1a1a1a
	colorBody      = pdf.Color{R: 51, G: 51, B: 51}    // #333333
	colorMuted     = pdf.Color{R: 102, G: 102, B: 102} // #666666
	colorAccent    = pdf.Color{R: 201, G: 48, B: 44}   // #c9302c
	colorBoxFill   = pdf.Color{R: 245, G: 245, B: 245} // #f5f5f5
	colorAmountBox = pdf.Color{R: 249, G: 249, B: 249} // #f9f9f9
	colorBorder    = pdf.Color{R: 221, G: 221, B: 221} // #dddddd
	colorFaintRule = pdf.Color{R: 238, G: 238, B: 238} // #eeeeee
	colorFooter    = pdf.Color{R: 153, G: 153, B: 153} // #999999
	colorBranding  = pdf.Color{R: 204, G: 204, B: 204} // #cccccc
	colorWhite     = pdf.Color{R: 255, G: 255, B: 255}
)

// Vertical section offsets of the fixed A4 receipt layout, in points from
// the top of the page. The layout is absolute: content is fixed-format text,
// nothing reflows, so each section sits at a known offset. Generated
// receipts are archived by customers, so changing any of these changes every
// future receipt against every past one.
const (
	receiptMargin = 50.0

	headerNameY    = 50.0 // company name
	headerAddressY = 78.0
	headerContactY = 92.0

	dividerRuleY = 110.0

	receiptTitleY = 135.0

	infoBoxY      = 175.0 // receipt number + date box
	infoBoxHeight = 35.0
	infoRowInset  = 10.0
	infoLabelX    = 60.0
	infoValueX    = 140.0

	customerSectionY  = 230.0
	customerBoxHeight = 80.0

	propertySectionY  = 350.0
	propertyBoxHeight = 60.0

	paymentSectionY  = 460.0
	paymentBoxHeight = 50.0

	// Distance of the signature block from the page bottom; it anchors there
	// regardless of the sections above.
	signatureBottomOffset = 150.0

	footerContactBottomOffset  = 50.0
	footerBrandingBottomOffset = 35.0

	// Section boxes start this far below their heading and use rounded
	// corners.
	sectionBoxGap    = 25.0
	sectionRowInset  = 10.0
	sectionRowHeight = 20.0
	boxCornerRadius  = 5.0

	// Label/value column offsets inside detail boxes.
	detailLabelX      = 65.0
	detailValueX      = 165.0
	detailRightLabelX = 320.0
	detailRightValueX = 400.0

	// Free-text wrap widths.
	addressWrapWidth    = 380.0
	disclaimerWrapWidth = 300.0
)
