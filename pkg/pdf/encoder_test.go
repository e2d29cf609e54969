package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	doc := NewA4Document()
	doc.Add(
		Rect{X: 50, Y: 175, W: 495, H: 35, Fill: Color{245, 245, 245}, Stroke: Color{221, 221, 221}},
		Text{Value: "PAYMENT RECEIPT", X: 50, Y: 135, Style: StyleBold, Size: 18, Color: Color{201, 48, 44}, Width: 495, Align: AlignCenter},
		Text{Value: "Receipt No:", X: 60, Y: 185, Style: StyleBold, Size: 10, Color: Color{51, 51, 51}},
		Line{X1: 50, Y1: 110, X2: 545, Y2: 110, Color: Color{201, 48, 44}, Width: 2},
	)
	return doc
}

func TestEncodeProducesPDFSignature(t *testing.T) {
	var buf bytes.Buffer
	err := NewEncoder().Encode(context.Background(), sampleDocument(), &buf)
	require.NoError(t, err)

	require.Greater(t, buf.Len(), 0)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output must start with the PDF signature")
}

func TestEncodeDeterministic(t *testing.T) {
	enc := NewEncoder()

	var first, second bytes.Buffer
	require.NoError(t, enc.Encode(context.Background(), sampleDocument(), &first))
	require.NoError(t, enc.Encode(context.Background(), sampleDocument(), &second))

	assert.Equal(t, first.Bytes(), second.Bytes(), "same document must encode to identical bytes")
}

func TestEncodeCancelledContextWritesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewEncoder().Encode(ctx, sampleDocument(), &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len(), "no bytes may be written after cancellation")
}
