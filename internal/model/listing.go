package model

// Tool categories form a fixed enumeration. Listings created or patched with
// an unknown or empty category fall back to CategoryOther rather than failing;
// the presentation layer owns any stricter validation.
const (
	CategoryPowerTools string = "power_tools"
	CategoryHandTools  string = "hand_tools"
	CategoryLadders    string = "ladders_scaffolding"
	CategoryGarden     string = "garden"
	CategoryCleaning   string = "cleaning"
	CategoryMeasuring  string = "measuring"
	CategoryOther      string = "other"
)

// Categories lists every valid listing category in display order.
var Categories = []string{
	CategoryPowerTools,
	CategoryHandTools,
	CategoryLadders,
	CategoryGarden,
	CategoryCleaning,
	CategoryMeasuring,
	CategoryOther,
}

// NormalizeCategory maps an arbitrary category string onto the fixed set.
// Unknown or empty values become CategoryOther.
func NormalizeCategory(c string) string {
	for _, known := range Categories {
		if c == known {
			return c
		}
	}
	return CategoryOther
}

// Listing is a tool offered for rent in the catalog.
//
// Fields:
//
//	ID          – system-generated identifier, unique across the process.
//	Name        – display name of the tool.
//	PricePerDay – rental price for a single day, non-negative.
//	Category    – one of the Categories values; defaults to "other".
//	Description – optional free-text description.
//	PhotoRef    – optional reference to a stored photo.
//	Archived    – archived listings are hidden from search results but
//	              remain addressable by ID.
type Listing struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PricePerDay float64 `json:"price_per_day"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	PhotoRef    string  `json:"photo_ref,omitempty"`
	Archived    bool    `json:"archived"`
}

// ListingPatch carries a partial update for a listing. Nil fields are left
// untouched by the merge; set fields overwrite the listing's current value.
type ListingPatch struct {
	Name        *string  `json:"name,omitempty"`
	PricePerDay *float64 `json:"price_per_day,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	PhotoRef    *string  `json:"photo_ref,omitempty"`
	Archived    *bool    `json:"archived,omitempty"`
}
