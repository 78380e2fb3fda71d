package document

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/Ibraheem715/syllabus-to-calendar/constants"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/common"
)

// ExtractedText is the result of decoding one uploaded document.
type ExtractedText struct {
	Text  string
	Pages int
}

// ExtractText decodes a PDF blob into plain text and a page count.
// It fails terminally on anything that is not a text-bearing PDF: wrong
// signature, undecodable structure, too little text, or an image-only scan.
func ExtractText(data []byte) (ExtractedText, error) {
	if !bytes.HasPrefix(data, []byte(constants.PDFSignature)) {
		return ExtractedText{}, common.NewAppError(common.CodeInvalidFormat,
			"file is not a PDF document", common.ErrInvalidFormat)
	}

	text, pages, err := decodePDF(data)
	if err != nil {
		return ExtractedText{}, common.NewAppError(common.CodeInvalidFormat,
			"could not decode PDF document", err)
	}

	clean := strings.TrimSpace(text)
	if err := checkContent(clean, pages); err != nil {
		return ExtractedText{}, err
	}
	return ExtractedText{Text: clean, Pages: pages}, nil
}

// decodePDF wraps the pdf library, which panics on some malformed inputs.
func decodePDF(data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf decode panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	pages = reader.NumPage()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", pages, fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", pages, fmt.Errorf("read pdf text: %w", err)
	}

	text = buf.String()
	if !utf8.ValidString(text) {
		// re-encode through the rune loop so invalid sequences become U+FFFD
		var sb strings.Builder
		sb.Grow(len(text))
		for _, r := range text {
			sb.WriteRune(r)
		}
		text = sb.String()
	}
	return text, pages, nil
}

// checkContent applies the text density gates. The minimum-content check
// runs first so a near-empty document reads as "too little text" rather
// than "scanned".
func checkContent(clean string, pages int) error {
	if len(clean) < constants.MinTextLength {
		return common.NewAppError(common.CodeInsufficientContent,
			fmt.Sprintf("document contains only %d characters of extractable text", len(clean)),
			common.ErrInsufficientContent)
	}
	if pages > 0 && len(clean)/pages < constants.MinCharsPerPage {
		return common.NewAppError(common.CodeScannedDocument,
			fmt.Sprintf("average %d extractable characters per page; document appears to be scanned", len(clean)/pages),
			common.ErrScannedDocument)
	}
	return nil
}
