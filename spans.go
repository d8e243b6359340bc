package renamify

import (
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// TextSpan is one contiguous run of text on a page sharing a font size,
// with its position. Y grows downward, so sorting ascending gives
// top-to-bottom reading order.
type TextSpan struct {
	Text     string
	FontSize float64
	Y        float64
	X        float64
}

// SpanCollector produces the text spans of a document's first page.
type SpanCollector interface {
	FirstPageSpans(path string) ([]TextSpan, error)
}

// PDFSpanCollector reads spans from the embedded text layer of a PDF.
// Scanned (image-only) documents yield no spans.
type PDFSpanCollector struct{}

// spacingFactor times the font size decides whether two consecutive
// fragments on a line are separate words.
const spacingFactor = 0.3

func (PDFSpanCollector) FirstPageSpans(path string) (spans []TextSpan, rerr error) {
	// The pdf reader panics on some malformed documents; turn that into an
	// error so one bad file cannot take down a whole batch.
	defer func() {
		if v := recover(); v != nil {
			rerr = errors.Errorf("pdf reader panic: %v", v)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "FirstPageSpans failed")
	}
	defer f.Close()

	var page pdf.Page
	for i := 1; i <= r.NumPage(); i++ {
		if p := r.Page(i); !p.V.IsNull() {
			page = p
			break
		}
	}
	if page.V.IsNull() {
		return nil, nil
	}

	height := pageHeight(page)
	var cur *TextSpan
	var prevY, prevEnd float64

	flush := func() {
		if cur == nil {
			return
		}
		text := strings.Join(strings.Fields(cur.Text), " ")
		if text != "" {
			spans = append(spans, TextSpan{
				Text:     text,
				FontSize: cur.FontSize,
				Y:        cur.Y,
				X:        cur.X,
			})
		}
		cur = nil
	}

	for _, t := range page.Content().Text {
		sameLine := cur != nil && t.FontSize == cur.FontSize && t.Y == prevY
		if !sameLine {
			flush()
			cur = &TextSpan{FontSize: t.FontSize, Y: height - t.Y, X: t.X}
		} else if t.X-prevEnd >= spacingFactor*t.FontSize {
			cur.Text += " "
		}
		cur.Text += t.S
		prevY = t.Y
		prevEnd = t.X + t.W
	}
	flush()

	return spans, nil
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// for inherited boxes. Needed to flip the PDF bottom-up Y axis into
// reading order.
func pageHeight(p pdf.Page) float64 {
	v := p.V
	for !v.IsNull() {
		if box := v.Key("MediaBox"); !box.IsNull() {
			return box.Index(3).Float64() - box.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	return 792
}
