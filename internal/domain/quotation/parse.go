package quotation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnrecognizedFormat is returned when a document is missing the
// mandatory layout markers. Callers fall back to showing the raw text;
// a parse failure must never take the whole view down.
var ErrUnrecognizedFormat = errors.New("unrecognized format")

// ParsedItem is one line-item recovered from a document. Total is kept
// as printed; qty and price are decoded for display math.
type ParsedItem struct {
	Number        string `json:"number"`
	Description   string `json:"description"`
	AIDescription string `json:"ai_description,omitempty"`
	Unity         string `json:"unity"`
	Qty           int    `json:"qty"`
	PricePerUnit  int64  `json:"price_per_unit"`
	Total         string `json:"total"`
}

// TotalLine is one label/value row from the totals block (subtotal and,
// when present, tax — the grand total is carried separately).
type TotalLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Parsed is the structured view of a quotation document, the shape the
// on-screen, print and PDF presentations are built from.
type Parsed struct {
	CompanyInfo  []string     `json:"company_info"`
	ID           string       `json:"id"`
	Date         string       `json:"date"`
	Client       string       `json:"client"`
	Location     string       `json:"location"`
	Items        []ParsedItem `json:"items"`
	TotalLines   []TotalLine  `json:"totals"`
	GrandTotal   string       `json:"grand_total"`
	TotalInWords string       `json:"total_in_words"`
	Comment      string       `json:"comment"`
	Services     []string     `json:"services"`
}

var (
	itemStartRe = regexp.MustCompile(`^(\d{2})\.\s+(.+)`)
	unityRe     = regexp.MustCompile(`Unity:\s+(.+?)\s+QTY:`)
	qtyRe       = regexp.MustCompile(`QTY:\s+(\d+)`)
	priceRe     = regexp.MustCompile(`Price/Unit:\s+RWF\s+(\d+(?:,\d{3})*)`)
	totalRe     = regexp.MustCompile(`Total:\s+(.+)`)
)

func isSeparator(line string) bool {
	return strings.Contains(line, strings.Repeat("-", 10))
}

// Parse scans a document by line position and pattern match, mirroring
// the formatter's layout. The first `01.` item line and the first dash
// separator after it are mandatory; everything secondary degrades to
// empty values instead of failing the parse.
func Parse(document string) (*Parsed, error) {
	lines := strings.Split(document, "\n")

	itemStart := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "01.") {
			itemStart = i
			break
		}
	}
	dashIdx := -1
	if itemStart != -1 {
		for i := itemStart + 1; i < len(lines); i++ {
			if isSeparator(lines[i]) {
				dashIdx = i
				break
			}
		}
	}
	if itemStart == -1 || dashIdx == -1 {
		return nil, ErrUnrecognizedFormat
	}

	p := &Parsed{}
	p.parseHeader(lines)

	for i := itemStart; i < dashIdx; i++ {
		m := itemStartRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}
		item := ParsedItem{Number: m[1], Description: m[2]}

		details := ""
		if i+1 < dashIdx {
			next := strings.TrimSpace(lines[i+1])
			if strings.HasPrefix(next, labelAIDesc) {
				item.AIDescription = strings.TrimSpace(strings.TrimPrefix(next, labelAIDesc))
				if i+2 < dashIdx {
					details = strings.TrimSpace(lines[i+2])
				}
			} else {
				details = next
			}
		}

		if m := unityRe.FindStringSubmatch(details); m != nil {
			item.Unity = m[1]
		}
		if m := qtyRe.FindStringSubmatch(details); m != nil {
			item.Qty, _ = strconv.Atoi(m[1])
		}
		if m := priceRe.FindStringSubmatch(details); m != nil {
			item.PricePerUnit, _ = strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
		}
		if m := totalRe.FindStringSubmatch(details); m != nil {
			item.Total = m[1]
		}
		p.Items = append(p.Items, item)
	}

	// Totals sit between the two separators: subtotal and, when the
	// document carries tax, the tax line. The grand total follows the
	// second separator and is found by substring search so the optional
	// tax line shifting positions cannot break it.
	for i := dashIdx + 1; i < len(lines) && len(p.TotalLines) < 3; i++ {
		if isSeparator(lines[i]) {
			break
		}
		label, value, ok := strings.Cut(lines[i], ":")
		if !ok {
			continue
		}
		p.TotalLines = append(p.TotalLines, TotalLine{
			Label: strings.TrimSpace(label),
			Value: strings.TrimSpace(value),
		})
	}

	// First match wins for both labels: user-entered instructions may
	// legitimately contain the same wording further down.
	foundGrand, foundWords := false, false
	for _, line := range lines {
		if !foundWords && strings.Contains(line, labelEqualsTo) {
			p.TotalInWords = strings.TrimSpace(line)
			foundWords = true
		} else if !foundGrand && strings.Contains(line, labelGrandTotal) {
			_, value, _ := strings.Cut(line, labelGrandTotal)
			p.GrandTotal = strings.TrimSpace(value)
			foundGrand = true
		}
		if foundGrand && foundWords {
			break
		}
	}

	if idx := indexContaining(lines, labelInstructions); idx != -1 {
		var body []string
		for i := idx + 1; i < len(lines) && i <= idx+2; i++ {
			body = append(body, lines[i])
		}
		p.Comment = strings.TrimSpace(strings.Join(body, "\n"))
	}

	if idx := indexContaining(lines, labelServices); idx != -1 {
		for _, line := range lines[idx+1:] {
			for _, tag := range strings.Split(line, "/") {
				if tag = strings.TrimSpace(tag); tag != "" {
					p.Services = append(p.Services, tag)
				}
			}
		}
	}

	return p, nil
}

// parseHeader reads the fixed-offset header fields. A document shorter
// than the header simply yields empty fields; the item markers already
// vouched for the overall shape.
func (p *Parsed) parseHeader(lines []string) {
	if len(lines) >= 3 {
		p.CompanyInfo = []string{lines[0], lines[1], lines[2]}
	}
	if len(lines) > lineQuotationInfo {
		info := lines[lineQuotationInfo]
		idPart, datePart, _ := strings.Cut(info, labelDate)
		p.ID = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(idPart), labelQuotationID))
		p.Date = strings.TrimSpace(datePart)
	}
	if len(lines) > lineClient {
		p.Client = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[lineClient]), strings.TrimSpace(labelClient)))
	}
	if len(lines) > lineLocation {
		p.Location = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[lineLocation]), strings.TrimSpace(labelLocation)))
	}
}

func indexContaining(lines []string, substr string) int {
	for i, line := range lines {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}
