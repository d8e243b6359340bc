package renamify

import (
	"strings"

	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pkg/errors"
)

var ErrTitleNotFound = errors.New("title not found")

// MetadataReader yields the title a document declares about itself, if any.
type MetadataReader interface {
	Title(path string) (string, error)
}

// PDFMetadataReader reads the Title entry of a PDF's info dictionary.
// Encrypted documents are opened with an empty passphrase; anything that
// needs a real password surfaces as an error.
type PDFMetadataReader struct{}

func (PDFMetadataReader) Title(path string) (string, error) {
	info, err := pdfcpu.InfoFile(path, []string{}, nil)
	if err != nil {
		return "", errors.Wrap(err, "Title failed")
	}
	return titleFromInfo(info)
}

func titleFromInfo(info []string) (string, error) {
	titlePrefix := "Title: "
	for _, line := range info {
		cleaned := strings.TrimSpace(line)
		if strings.HasPrefix(cleaned, titlePrefix) {
			return strings.TrimPrefix(cleaned, titlePrefix), nil
		}
	}
	return "", ErrTitleNotFound
}

func IsPDF(filePath string) bool {
	filePath = strings.ToLower(filePath)
	return strings.HasSuffix(filePath, ".pdf")
}
