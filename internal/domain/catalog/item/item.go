// Package item defines the catalog item aggregate.
package item

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	manufacturerRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,8}$`)
	codeRegex         = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/ -]*$`)
)

// Field limits.
const (
	MaxCodeLength        = 64
	MaxNameLength        = 256
	MaxDescriptionLength = 16384
	MaxTags              = 64
)

// Status values.
const (
	StatusAvailable    = "available"
	StatusDiscontinued = "discontinued"
)

// Params are the inputs to New.
type Params struct {
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
	// Quantity is the on-hand amount; nil when not tracked.
	Quantity *float64
}

// Item is a catalog entry (immutable value object).
type Item struct {
	manufacturer string
	code         string
	name         string
	description  string
	tags         []string
	synonyms     []string
	coe          string
	itemType     string
	stockType    string
	status       string
	url          string
	imageURL     string
	stableID     string
	quantity     *float64
}

// New validates and creates an Item.
// Manufacturer codes are upper-cased; list fields are trimmed and blanks dropped.
func New(p Params) (Item, error) {
	mfr := strings.ToUpper(strings.TrimSpace(p.Manufacturer))
	if mfr == "" {
		return Item{}, fmt.Errorf("manufacturer is required")
	}
	if !manufacturerRegex.MatchString(mfr) {
		return Item{}, fmt.Errorf("manufacturer %q must be 1-8 alphanumeric characters", mfr)
	}
	code := strings.TrimSpace(p.Code)
	if code == "" {
		return Item{}, fmt.Errorf("code is required")
	}
	if len(code) > MaxCodeLength {
		return Item{}, fmt.Errorf("code too long (max %d)", MaxCodeLength)
	}
	if !codeRegex.MatchString(code) {
		return Item{}, fmt.Errorf("code %q contains invalid characters", code)
	}
	name := strings.TrimSpace(p.Name)
	if len(name) > MaxNameLength {
		return Item{}, fmt.Errorf("name too long (max %d)", MaxNameLength)
	}
	if len(p.Description) > MaxDescriptionLength {
		return Item{}, fmt.Errorf("description too long (max %d bytes)", MaxDescriptionLength)
	}
	tags := cleanList(p.Tags)
	if len(tags) > MaxTags {
		return Item{}, fmt.Errorf("too many tags (max %d)", MaxTags)
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return Item{}, fmt.Errorf("quantity must not be negative")
	}
	status := strings.ToLower(strings.TrimSpace(p.Status))
	switch status {
	case "":
		status = StatusAvailable
	case StatusAvailable, StatusDiscontinued:
	default:
		return Item{}, fmt.Errorf("invalid status %q", p.Status)
	}

	return Item{
		manufacturer: mfr,
		code:         code,
		name:         name,
		description:  strings.TrimSpace(p.Description),
		tags:         tags,
		synonyms:     cleanList(p.Synonyms),
		coe:          strings.TrimSpace(p.COE),
		itemType:     strings.TrimSpace(p.Type),
		stockType:    strings.TrimSpace(p.StockType),
		status:       status,
		url:          strings.TrimSpace(p.URL),
		imageURL:     strings.TrimSpace(p.ImageURL),
		stableID:     strings.TrimSpace(p.StableID),
		quantity:     cloneFloat(p.Quantity),
	}, nil
}

// Reconstruct creates an Item without validation (storage hydration).
func Reconstruct(p Params) Item {
	return Item{
		manufacturer: p.Manufacturer,
		code:         p.Code,
		name:         p.Name,
		description:  p.Description,
		tags:         p.Tags,
		synonyms:     p.Synonyms,
		coe:          p.COE,
		itemType:     p.Type,
		stockType:    p.StockType,
		status:       p.Status,
		url:          p.URL,
		imageURL:     p.ImageURL,
		stableID:     p.StableID,
		quantity:     p.Quantity,
	}
}

// Key builds the product key for a manufacturer and code.
func Key(manufacturer, code string) string {
	return strings.ToUpper(strings.TrimSpace(manufacturer)) + "-" + strings.TrimSpace(code)
}

// ID returns the product key, MANUFACTURER-CODE.
func (i Item) ID() string { return Key(i.manufacturer, i.code) }

// Manufacturer returns the manufacturer code.
func (i Item) Manufacturer() string { return i.manufacturer }

// Code returns the manufacturer's item code.
func (i Item) Code() string { return i.code }

// Name returns the display name.
func (i Item) Name() string { return i.name }

// Description returns the manufacturer's description.
func (i Item) Description() string { return i.description }

// Tags returns the tags.
func (i Item) Tags() []string { return i.tags }

// Synonyms returns alternative names.
func (i Item) Synonyms() []string { return i.synonyms }

// COE returns the coefficient of expansion, or "" when unknown.
func (i Item) COE() string { return i.coe }

// Classification is the compatibility class used by facets and sorting.
func (i Item) Classification() string { return i.coe }

// Type returns the item type (rod, frit, sheet, ...).
func (i Item) Type() string { return i.itemType }

// StockType returns the manufacturer's stock designation.
func (i Item) StockType() string { return i.stockType }

// Status returns available or discontinued.
func (i Item) Status() string { return i.status }

// Discontinued reports whether the manufacturer no longer sells the item.
func (i Item) Discontinued() bool { return i.status == StatusDiscontinued }

// URL returns the manufacturer product page.
func (i Item) URL() string { return i.url }

// ImageURL returns the product image location.
func (i Item) ImageURL() string { return i.imageURL }

// StableID returns the short identifier assigned by the import tooling.
func (i Item) StableID() string { return i.stableID }

// Quantity returns the on-hand amount and whether it is tracked.
func (i Item) Quantity() (float64, bool) {
	if i.quantity == nil {
		return 0, false
	}
	return *i.quantity, true
}

// SearchableText lists the searchable fields, most significant first:
// ID, name, code, manufacturer, COE, type, tags, synonyms, description.
func (i Item) SearchableText() []string {
	out := make([]string, 0, 7+len(i.tags)+len(i.synonyms))
	out = append(out, i.ID(), i.name, i.code, i.manufacturer, i.coe, i.itemType)
	out = append(out, i.tags...)
	out = append(out, i.synonyms...)
	return append(out, i.description)
}

// WithQuantity returns a copy with the on-hand amount replaced.
func (i Item) WithQuantity(q *float64) Item {
	i.quantity = cloneFloat(q)
	return i
}

func cleanList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
