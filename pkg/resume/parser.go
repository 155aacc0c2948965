package resume

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Extract returns the plain text of a PDF or Word document.
//
// PDF pages are read in order; pages without a text layer contribute nothing.
// Each page's text is followed by a newline and the result is trimmed. An
// empty result yields ErrNoExtractableText (scanned or blank document).
//
// DOCX body paragraphs are joined with newlines exactly as found, empty ones
// included. Callers validate the MIME type first; anything else is
// ErrUnsupportedType.
func Extract(data []byte, mimeType string) (string, error) {
	switch mimeType {
	case MimePDF:
		return extractTextFromPDF(data)
	case MimeDOCX, MimeDOC:
		return extractTextFromDocx(data)
	default:
		return "", ErrUnsupportedType
	}
}

func extractTextFromPDF(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed object graphs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteByte('\n')
	}
	text = strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrNoExtractableText
	}
	return text, nil
}

func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	paras, err := bodyParagraphs(strings.NewReader(doc.Editable().GetContent()))
	if err != nil {
		return "", fmt.Errorf("read docx body: %w", err)
	}
	return strings.Join(paras, "\n"), nil
}

// bodyParagraphs walks word/document.xml and returns the text of every
// paragraph that sits directly in the body, i.e. not inside a table.
func bodyParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	var (
		paras   []string
		cur     strings.Builder
		inPara  int
		inTable int
		inRun   int
		inText  bool
		collect bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				inTable++
			case "p":
				if inPara == 0 {
					collect = inTable == 0
					cur.Reset()
				}
				inPara++
			case "r":
				inRun++
			case "t":
				inText = true
			case "tab":
				// tab stops in paragraph properties are not content
				if collect && inRun > 0 {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				if collect && inRun > 0 {
					cur.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				inTable--
			case "p":
				inPara--
				if inPara == 0 && collect {
					paras = append(paras, cur.String())
					collect = false
				}
			case "r":
				inRun--
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && collect {
				cur.Write(t)
			}
		}
	}
	return paras, nil
}
