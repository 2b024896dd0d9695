package quotation

import (
	"fmt"
	"strings"
)

// Layout contract shared by Format and Parse. The document is
// line-position significant: the parser reads the header from fixed
// offsets and locates the body through these markers.
const (
	labelQuotationID  = "Quotation ID: "
	labelDate         = "Date: "
	labelClient       = "CLIENT: "
	labelLocation     = "Location: "
	labelAIDesc       = "AI Description:"
	labelSubtotal     = "Subtotal:"
	labelTax          = "EBM Tax (18%):"
	labelGrandTotal   = "Grand Total:"
	labelEqualsTo     = "Grand Total Equals To"
	labelInstructions = "Comment or Special Instructions:"
	labelServices     = "Our Services:"

	vatIncluded = "18% VAT included"
	vatExcluded = "VAT excluded"

	dateLayout = "2006-01-02"

	lineQuotationInfo = 4
	lineClient        = 6
	lineLocation      = 7
)

var separator = strings.Repeat("-", 80)

// Format renders a quotation into the canonical document. It is a pure
// transform; totals are recomputed from the items, never taken from the
// caller. An invalid quotation (empty item list among others) fails
// fast rather than producing a document the parser cannot read back.
func Format(q Quotation) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}
	totals := ComputeTotals(q.Items, q.IncludeTax)

	var b strings.Builder
	b.WriteString(AgencyName + "\n")
	b.WriteString(AgencyTIN + "\n")
	b.WriteString(AgencyTel + "\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s%s                    %s%s\n", labelQuotationID, q.ID, labelDate, q.Date.Format(dateLayout))
	b.WriteString("\n")
	b.WriteString(labelClient + q.Client + "\n")
	b.WriteString(labelLocation + q.Location + "\n")

	for i, it := range q.Items {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%02d. %s\n", i+1, it.Description)
		if it.AIDescription != "" {
			fmt.Fprintf(&b, "   %s %s\n", labelAIDesc, it.AIDescription)
		}
		fmt.Fprintf(&b, "   Unity: %s   QTY: %d   Price/Unit: RWF %s   Total: %s\n",
			it.Unity, it.Qty, groupedAmount(it.PricePerUnit), currency(int64(it.Qty)*it.PricePerUnit))
	}

	b.WriteString("\n")
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "%s         %s\n", labelSubtotal, currency(totals.Subtotal))
	if q.IncludeTax {
		fmt.Fprintf(&b, "%s    %s\n", labelTax, currency(roundRWF(totals.Tax)))
	}
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "%s      %s\n", labelGrandTotal, currency(roundRWF(totals.GrandTotal)))
	b.WriteString("\n")

	vat := vatExcluded
	if q.IncludeTax {
		vat = vatIncluded
	}
	fmt.Fprintf(&b, "%s %s Rwandan Francs %s.\n", labelEqualsTo, groupedAmount(roundRWF(totals.GrandTotal)), vat)

	b.WriteString("\n")
	b.WriteString(labelInstructions + "\n")
	b.WriteString(q.Instructions() + "\n")
	b.WriteString("\n")
	b.WriteString(labelServices + "\n")
	b.WriteString(ServiceCatalog + "\n")

	return b.String(), nil
}
