package renamify

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// TitleInferrer decides the best candidate title for a single PDF document.
// The declared metadata title wins when present; otherwise the first page's
// typography is read and the spans with the largest font size are taken as
// the title, unless one of the banner patterns outranks them.
type TitleInferrer struct {
	meta     MetadataReader
	spans    SpanCollector
	keywords []string
	log      *logrus.Logger
}

// NewTitleInferrer returns a TitleInferrer matching journal banners against
// keywords, case-insensitively.
func NewTitleInferrer(meta MetadataReader, spans SpanCollector, keywords []string, log *logrus.Logger) *TitleInferrer {
	return &TitleInferrer{
		meta:     meta,
		spans:    spans,
		keywords: keywords,
		log:      log,
	}
}

// InferTitle returns the inferred title of the document at path, or "" when
// neither metadata nor the page layout yields one. Read failures are logged
// and never propagate; they only exhaust the stage they occur in.
func (ti *TitleInferrer) InferTitle(path string) string {
	title, err := ti.meta.Title(path)
	if err != nil && !errors.Is(err, ErrTitleNotFound) {
		ti.log.WithField("path", path).WithError(err).Warn("Cannot read title metadata.")
	}
	if err == nil && title != "" {
		return title
	}

	ti.log.WithField("path", path).Debug("No metadata title, reading content.")
	title, err = ti.titleFromContent(path)
	if err != nil {
		ti.log.WithField("path", path).WithError(err).Warn("Cannot read title from content.")
		return ""
	}
	return title
}

func (ti *TitleInferrer) titleFromContent(path string) (string, error) {
	spans, err := ti.spans.FirstPageSpans(path)
	if err != nil {
		return "", err
	}
	if len(spans) == 0 {
		return "", nil
	}

	sizes := distinctSizes(spans)
	if len(sizes) < 2 {
		// A single font size cannot separate a title from body text.
		return "", nil
	}

	primary := joinGroup(spans, sizes[0])
	if ti.shouldUseSecondary(primary) {
		return joinGroup(spans, sizes[1]), nil
	}
	return primary, nil
}

// distinctSizes returns the font sizes present among spans, descending.
func distinctSizes(spans []TextSpan) []float64 {
	seen := make(map[float64]bool)
	var sizes []float64
	for _, s := range spans {
		if !seen[s.FontSize] {
			seen[s.FontSize] = true
			sizes = append(sizes, s.FontSize)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))
	return sizes
}

// joinGroup joins the spans rendered at size into one string, in
// top-to-bottom, left-to-right reading order.
func joinGroup(spans []TextSpan, size float64) string {
	var group []TextSpan
	for _, s := range spans {
		if s.FontSize == size {
			group = append(group, s)
		}
	}
	sort.SliceStable(group, func(i, j int) bool {
		if group[i].Y != group[j].Y {
			return group[i].Y < group[j].Y
		}
		return group[i].X < group[j].X
	})
	texts := make([]string, len(group))
	for i, s := range group {
		texts[i] = s.Text
	}
	return strings.Join(texts, " ")
}

// shouldUseSecondary reports whether the largest-font text is one of the
// patterns certain document families render larger than the real title:
// preprint and review banners, running-header abbreviations, and journal
// name banners.
func (ti *TitleInferrer) shouldUseSecondary(primary string) bool {
	lower := strings.ToLower(primary)
	if strings.Contains(lower, "arxiv") || strings.Contains(lower, "peer review") {
		return true
	}

	trimmed := strings.TrimSpace(primary)
	if utf8.RuneCountInString(trimmed) <= 2 && isUpper(trimmed) {
		return true
	}

	for _, keyword := range ti.keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// isUpper reports whether s contains at least one cased character and no
// lowercase ones.
func isUpper(s string) bool {
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}
