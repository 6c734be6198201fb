package glassdex

// SearchMode controls how query text matches item fields.
type SearchMode string

// Search mode constants.
const (
	ModePartial SearchMode = "partial"
	ModeExact   SearchMode = "exact"
	ModeFuzzy   SearchMode = "fuzzy"
)

// SortKey orders query results.
type SortKey string

// Sort key constants. SortRelevance ranks by match quality and needs query text.
const (
	SortName         SortKey = "name"
	SortCode         SortKey = "code"
	SortManufacturer SortKey = "manufacturer"
	SortQuantity     SortKey = "quantity"
	SortType         SortKey = "type"
	SortRelevance    SortKey = "relevance"
)

// Stock band names accepted in Query.Stock.
const (
	StockUnavailable = "unavailable"
	StockLow         = "low"
	StockSufficient  = "sufficient"
)

// Query describes a catalog search. The zero value lists every visible item
// sorted by name.
type Query struct {
	Text          string
	Terms         []string // every term must match (AND)
	Mode          SearchMode
	Tolerance     *int // edit distance for fuzzy mode; implies ModeFuzzy
	CaseSensitive bool
	Highlight     bool
	FieldWeights  map[string]float64

	Tags    []string
	Types   []string
	Classes []string // COE values
	Stock   []string

	MinQuantity *float64 // inclusive
	MaxQuantity *float64 // inclusive

	Sort       SortKey
	Descending bool

	Limit  int
	Offset int
}

// Item is a catalog entry.
type Item struct {
	ID           string
	Manufacturer string
	Code         string
	Name         string
	Description  string
	Tags         []string
	Synonyms     []string
	COE          string
	Type         string
	StockType    string
	Status       string
	URL          string
	ImageURL     string
	StableID     string
	Quantity     *float64
}

// Highlight is a matched span: Field is the index into the item's searchable
// fields, Start and End are rune offsets.
type Highlight struct {
	Field int
	Start int
	End   int
}

// Hit is one search result.
type Hit struct {
	Item       Item
	Relevance  float64
	Highlights []Highlight
}

// Page is a window of search results.
type Page struct {
	Hits   []Hit
	Total  int
	Offset int
	Limit  int
}

// HasMore reports whether results exist past this page.
func (p Page) HasMore() bool { return p.Offset+len(p.Hits) < p.Total }

// Manufacturer is a registry entry with its enablement state.
type Manufacturer struct {
	Code    string
	Name    string
	Classes []string
	Enabled bool
	Items   int
}

// ReloadStats summarizes a catalog reload.
type ReloadStats struct {
	Items   int
	Skipped int
	Source  string
}
