package quotation

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuotation() Quotation {
	return Quotation{
		ID:       "CCQ-1234",
		Client:   "Kigali Heights",
		Location: "Kigali, Rwanda",
		Date:     time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Items: []Item{
			{
				Description:   "Window Cleaning",
				AIDescription: "Professional window cleaning service using advanced techniques.",
				Unity:         "window",
				Qty:           15,
				PricePerUnit:  2500,
			},
		},
		IncludeTax: true,
	}
}

func TestFormatEndToEnd(t *testing.T) {
	doc, err := Format(sampleQuotation())
	require.NoError(t, err)

	assert.Contains(t, doc, "01. Window Cleaning")
	assert.Contains(t, doc, "Unity: window   QTY: 15   Price/Unit: RWF 2,500")
	assert.Contains(t, doc, "Total: RWF 37,500")
	assert.Contains(t, doc, "Subtotal:         RWF 37,500")
	assert.Contains(t, doc, "EBM Tax (18%):    RWF 6,750")
	assert.Contains(t, doc, "Grand Total:      RWF 44,250")
	assert.Contains(t, doc, "Grand Total Equals To 44,250 Rwandan Francs 18% VAT included.")
	assert.Contains(t, doc, DefaultInstructions)
	assert.Contains(t, doc, "Our Services:")
}

func TestFormatHeaderOffsets(t *testing.T) {
	doc, err := Format(sampleQuotation())
	require.NoError(t, err)

	lines := strings.Split(doc, "\n")
	require.Greater(t, len(lines), lineLocation)
	assert.Equal(t, AgencyName, lines[0])
	assert.Equal(t, AgencyTIN, lines[1])
	assert.Equal(t, AgencyTel, lines[2])
	assert.Empty(t, lines[3])
	assert.Contains(t, lines[lineQuotationInfo], "Quotation ID: CCQ-1234")
	assert.Contains(t, lines[lineQuotationInfo], "Date: 2025-05-01")
	assert.Equal(t, "CLIENT: Kigali Heights", lines[lineClient])
	assert.Equal(t, "Location: Kigali, Rwanda", lines[lineLocation])
}

func TestFormatWithoutTax(t *testing.T) {
	q := sampleQuotation()
	q.IncludeTax = false

	doc, err := Format(q)
	require.NoError(t, err)

	assert.NotContains(t, doc, "EBM Tax")
	assert.Contains(t, doc, "Grand Total:      RWF 37,500")
	assert.Contains(t, doc, "Rwandan Francs VAT excluded.")
}

func TestFormatOmitsEmptyAIDescription(t *testing.T) {
	q := sampleQuotation()
	q.Items[0].AIDescription = ""

	doc, err := Format(q)
	require.NoError(t, err)
	assert.NotContains(t, doc, "AI Description:")
}

func TestFormatNumberingSequential(t *testing.T) {
	q := sampleQuotation()
	q.Items = nil
	for i := 0; i < 12; i++ {
		q.Items = append(q.Items, Item{
			Description:  fmt.Sprintf("General Cleaning - Zone %d", i+1),
			Unity:        "sq.m",
			Qty:          10,
			PricePerUnit: 500,
		})
	}

	doc, err := Format(q)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		assert.Contains(t, doc, fmt.Sprintf("%02d. General Cleaning - Zone %d", i+1, i+1))
	}
}

func TestFormatEmptyItemsFails(t *testing.T) {
	q := sampleQuotation()
	q.Items = nil

	_, err := Format(q)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestFormatSeparators(t *testing.T) {
	doc, err := Format(sampleQuotation())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(doc, strings.Repeat("-", 80)))
}
