package ai

// TemplateItem is one entry of the recommended service set used to
// pre-fill a quotation for a typical office cleaning job.
type TemplateItem struct {
	Description  string `json:"description"`
	Unity        string `json:"unity"`
	Qty          int    `json:"qty"`
	PricePerUnit int64  `json:"price_per_unit"`
}

// TemplateItems returns the recommended office-cleaning service set.
func TemplateItems() []TemplateItem {
	return []TemplateItem{
		{Description: "General Cleaning - Office Space", Unity: "sq.m", Qty: 200, PricePerUnit: 500},
		{Description: "Window Cleaning", Unity: "window", Qty: 15, PricePerUnit: 2500},
		{Description: "Carpet Cleaning", Unity: "sq.m", Qty: 100, PricePerUnit: 3500},
	}
}
