package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
)

const docxBody = "word/document.xml"

// extractDOCX returns the paragraph text of the main document part.
// Tables, headers and footers outside word/document.xml are not read.
// limit caps the inflated size of that part.
func extractDOCX(body []byte, limit int64) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return "", errs.Wrap(errs.CorruptDocument, err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == docxBody {
			part = f
			break
		}
	}
	if part == nil {
		return "", errs.New(errs.CorruptDocument, "missing "+docxBody)
	}

	if part.UncompressedSize64 > uint64(limit) {
		return "", errs.Errorf(errs.DocumentTooLarge, "%s inflates to %d bytes, limit %d", docxBody, part.UncompressedSize64, limit)
	}

	rc, err := part.Open()
	if err != nil {
		return "", errs.Wrap(errs.CorruptDocument, err)
	}
	defer rc.Close()

	return readPart(rc, limit)
}

// readPart decodes at most limit bytes of WordprocessingML. The declared
// size in the zip header is not trusted.
func readPart(r io.Reader, limit int64) (string, error) {
	cr := &countingReader{r: io.LimitReader(r, limit+1)}
	text, err := paragraphs(cr)
	if cr.n > limit {
		return "", errs.Errorf(errs.DocumentTooLarge, "%s inflates past %d bytes", docxBody, limit)
	}
	if err != nil {
		return "", errs.Wrap(errs.CorruptDocument, err)
	}
	return text, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// paragraphs walks WordprocessingML and emits the text runs (w:t), with
// tabs for w:tab, line breaks for w:br and w:cr, and a newline per w:p.
func paragraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var (
		sb     strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br", "cr":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
}
