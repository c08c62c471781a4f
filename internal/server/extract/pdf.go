package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	"github.com/ledongthuc/pdf"
)

// extractPDF reads text page by page. The parser panics on some malformed
// inputs; those panics are reported as CorruptDocument.
func extractPDF(ctx context.Context, body []byte) (text string, pages int, err error) {
	defer func() {
		if p := recover(); p != nil {
			text, pages = "", 0
			err = errs.Errorf(errs.CorruptDocument, "pdf parser: %v", p)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return "", 0, errs.Wrap(errs.CorruptDocument, err)
	}

	pages = r.NumPage()
	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range p.Fonts() {
			f := p.Font(name)
			fonts[name] = &f
		}
		pageText, err := p.GetPlainText(fonts)
		if err != nil {
			return "", 0, errs.Wrap(errs.CorruptDocument, fmt.Errorf("page %d: %w", i, err))
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
	}
	return sb.String(), pages, nil
}
