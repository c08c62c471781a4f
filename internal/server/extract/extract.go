// Package extract turns stored PDF and DOCX documents into normalized text
// and a page count.
//
// Extraction is a pure transform of the bytes it is given. Callers that want
// to reuse results wrap an Extractor with a Cache.
package extract

import (
	"context"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	"github.com/gabriel-vasile/mimetype"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// WordsPerPage is the divisor used to estimate DOCX page counts. DOCX files
// carry no reliable page information, so the count is an approximation.
const WordsPerPage = 500

type Format int

const (
	FormatUnknown Format = iota
	FormatPDF
	FormatDOCX
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	}
	return "unknown"
}

// Input describes the document being extracted. MimeType and FileName are
// the values declared at upload time; the body is sniffed as well.
type Input struct {
	DocumentID string
	FileName   string
	MimeType   string
}

type Extraction struct {
	Text      string
	PageCount int
}

type Extractor interface {
	Extract(ctx context.Context, in Input, body []byte) (Extraction, error)
}

// DOCXInflation is how many times MaxBytes the main DOCX part may occupy
// once decompressed. Without a ceiling DefaultDOCXPartLimit applies.
const (
	DOCXInflation        = 8
	DefaultDOCXPartLimit = 256 << 20
)

// DocumentExtractor is the PDF/DOCX Extractor. The zero value has no size
// ceiling on the stored body.
type DocumentExtractor struct {
	MaxBytes int64
}

func (e *DocumentExtractor) docxPartLimit() int64 {
	if e.MaxBytes > 0 {
		return e.MaxBytes * DOCXInflation
	}
	return DefaultDOCXPartLimit
}

func NewDocumentExtractor(maxBytes int64) *DocumentExtractor {
	return &DocumentExtractor{MaxBytes: maxBytes}
}

func (e *DocumentExtractor) Extract(ctx context.Context, in Input, body []byte) (Extraction, error) {
	if e.MaxBytes > 0 && int64(len(body)) > e.MaxBytes {
		return Extraction{}, errs.Errorf(errs.DocumentTooLarge, "%d bytes, limit %d", len(body), e.MaxBytes)
	}

	format, err := DetectFormat(in, body)
	if err != nil {
		return Extraction{}, err
	}
	if len(body) == 0 {
		return Extraction{}, errs.New(errs.CorruptDocument, "empty "+format.String()+" file")
	}
	if err := ctx.Err(); err != nil {
		return Extraction{}, err
	}

	var (
		text  string
		pages int
	)
	switch format {
	case FormatPDF:
		text, pages, err = extractPDF(ctx, body)
	case FormatDOCX:
		text, err = extractDOCX(body, e.docxPartLimit())
	}
	if err != nil {
		return Extraction{}, err
	}

	text = Normalize(text)
	if text == "" {
		return Extraction{}, errs.New(errs.CorruptDocument, "no text could be extracted")
	}
	if format == FormatDOCX {
		pages = EstimatePages(text)
	}
	return Extraction{Text: text, PageCount: pages}, nil
}

func declaredFormat(in Input) Format {
	switch strings.ToLower(strings.TrimSpace(in.MimeType)) {
	case MimePDF:
		return FormatPDF
	case MimeDOCX:
		return FormatDOCX
	}
	switch strings.ToLower(filepath.Ext(in.FileName)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	}
	return FormatUnknown
}

func sniffedFormat(body []byte) (format Format, zipped bool, detected string) {
	m := mimetype.Detect(body)
	detected = m.String()
	for ; m != nil; m = m.Parent() {
		switch {
		case m.Is(MimePDF):
			return FormatPDF, false, detected
		case m.Is(MimeDOCX):
			return FormatDOCX, true, detected
		case m.Is("application/zip"):
			zipped = true
		}
	}
	return FormatUnknown, zipped, detected
}

// DetectFormat decides how to parse a document. Content sniffing wins over
// the declared type when it recognizes PDF or DOCX; a zip archive declared
// as DOCX is handed to the DOCX reader, which decides whether it is one. A
// body that claims to be PDF or DOCX but sniffs as something else is
// corrupt, anything else is unsupported. Empty bodies are judged on the
// declared type alone.
func DetectFormat(in Input, body []byte) (Format, error) {
	declared := declaredFormat(in)
	if len(body) == 0 {
		if declared == FormatUnknown {
			return FormatUnknown, errs.Errorf(errs.UnsupportedFormat, "%q (%s)", in.FileName, in.MimeType)
		}
		return declared, nil
	}

	sniffed, zipped, detected := sniffedFormat(body)
	switch {
	case sniffed != FormatUnknown:
		return sniffed, nil
	case zipped && declared == FormatDOCX:
		return FormatDOCX, nil
	case declared != FormatUnknown:
		return declared, errs.Errorf(errs.CorruptDocument, "declared %s but content is %s", declared, detected)
	default:
		return FormatUnknown, errs.Errorf(errs.UnsupportedFormat, "content type %s", detected)
	}
}

// EstimatePages approximates a page count from the word count of text:
// one page per WordsPerPage words, rounded up, and at least one page when
// there is any text.
func EstimatePages(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return (words + WordsPerPage - 1) / WordsPerPage
}

// Normalize trims every line, collapses runs of horizontal whitespace to a
// single space, drops control characters and squeezes blank lines so that
// at most one empty line separates paragraphs.
func Normalize(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, line := range lines {
		line = strings.Map(func(r rune) rune {
			if r == '\t' || r == ' ' {
				return ' '
			}
			if unicode.IsControl(r) {
				return -1
			}
			return r
		}, line)
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
