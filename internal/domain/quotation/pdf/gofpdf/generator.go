package gofpdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"century-cleaning/go_backend/internal/domain/quotation"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate renders the printable quotation from its parsed view: the
// same presentation the on-screen document uses, so PDF download and
// email attachment stay in step with what the client saw.
func (g *Generator) Generate(p *quotation.Parsed) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Century Cleaning Quotation", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	for i, line := range p.CompanyInfo {
		if i > 0 {
			pdf.SetFont("Arial", "", 11)
		}
		pdf.CellFormat(0, 7, line, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 6, fmt.Sprintf("Quotation ID: %s", p.ID), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Date: %s", p.Date), "", 1, "R", false, 0, "")
	if p.Client != "" || p.Location != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("CLIENT: %s", p.Client), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Location: %s", p.Location), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(80, 7, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Unity", "1", 0, "C", false, 0, "")
	pdf.CellFormat(15, 7, "QTY", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "Price/Unit", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, it := range p.Items {
		desc := it.Description
		if it.AIDescription != "" {
			desc += " - " + it.AIDescription
		}
		pdf.CellFormat(10, 6, it.Number, "1", 0, "C", false, 0, "")
		pdf.CellFormat(80, 6, trim(desc, 60), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, it.Unity, "1", 0, "C", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", it.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", it.PricePerUnit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, it.Total, "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 10)
	for _, tl := range p.TotalLines {
		pdf.CellFormat(140, 6, tl.Label+":", "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, tl.Value, "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(140, 7, "Grand Total:", "", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, p.GrandTotal, "", 1, "R", false, 0, "")

	if p.TotalInWords != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(0, 5, p.TotalInWords, "", 1, "C", false, 0, "")
	}

	if p.Comment != "" {
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, "Comment or Special Instructions:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, p.Comment, "", "L", false)
	}

	if len(p.Services) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, "Our Services:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, strings.Join(p.Services, " / "), "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "Thank you for choosing Century Cleaning Agency.", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "This quotation is valid for 30 days from the date of issue.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
