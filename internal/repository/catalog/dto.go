package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kailas-cloud/glassdex/internal/domain"
	domcat "github.com/kailas-cloud/glassdex/internal/domain/catalog"
	"github.com/kailas-cloud/glassdex/internal/domain/catalog/item"
)

// SupportedMajorVersion is the export format major version this package reads.
const SupportedMajorVersion = "1"

// exportDTO is the JSON document produced by the catalog import tooling.
type exportDTO struct {
	Version    string    `json:"version"`
	Generated  string    `json:"generated"`
	ItemCount  int       `json:"item_count"`
	GlassItems []itemDTO `json:"glassitems"`
}

type itemDTO struct {
	Manufacturer            string     `json:"manufacturer"`
	Code                    flexString `json:"code"`
	Name                    string     `json:"name"`
	ManufacturerDescription string     `json:"manufacturer_description"`
	Tags                    stringList `json:"tags"`
	Synonyms                stringList `json:"synonyms"`
	COE                     flexString `json:"coe"`
	Type                    string     `json:"type"`
	StockType               string     `json:"stock_type"`
	Status                  string     `json:"status"`
	ManufacturerURL         string     `json:"manufacturer_url"`
	ImageURL                string     `json:"image_url"`
	StableID                string     `json:"stable_id"`
	Quantity                *float64   `json:"quantity,omitempty"`
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// stringList accepts a JSON array of strings or a comma-separated string of
// optionally quoted values. "unknown" entries are dropped.
type stringList []string

func (l *stringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}
	var raw []string
	if b[0] == '[' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	} else {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("expected array or string: %w", err)
		}
		raw = strings.Split(s, ",")
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		v = strings.Trim(strings.TrimSpace(v), `"'`)
		if v == "" || strings.EqualFold(v, "unknown") {
			continue
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

func (d itemDTO) toDomain() (item.Item, error) {
	return item.New(item.Params{
		Manufacturer: d.Manufacturer,
		Code:         string(d.Code),
		Name:         d.Name,
		Description:  d.ManufacturerDescription,
		Tags:         d.Tags,
		Synonyms:     d.Synonyms,
		COE:          string(d.COE),
		Type:         d.Type,
		StockType:    d.StockType,
		Status:       d.Status,
		URL:          d.ManufacturerURL,
		ImageURL:     d.ImageURL,
		StableID:     d.StableID,
		Quantity:     d.Quantity,
	})
}

func fromDomain(it item.Item) itemDTO {
	d := itemDTO{
		Manufacturer:            it.Manufacturer(),
		Code:                    flexString(it.Code()),
		Name:                    it.Name(),
		ManufacturerDescription: it.Description(),
		Tags:                    it.Tags(),
		Synonyms:                it.Synonyms(),
		COE:                     flexString(it.COE()),
		Type:                    it.Type(),
		StockType:               it.StockType(),
		Status:                  it.Status(),
		ManufacturerURL:         it.URL(),
		ImageURL:                it.ImageURL(),
		StableID:                it.StableID(),
	}
	if q, ok := it.Quantity(); ok {
		d.Quantity = &q
	}
	return d
}

// Decode reads an export document. Entries that fail validation are skipped
// and counted in Catalog.Skipped; they never fail the whole load.
func Decode(r io.Reader) (domcat.Catalog, error) {
	var dto exportDTO
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return domcat.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := checkVersion(dto.Version); err != nil {
		return domcat.Catalog{}, err
	}

	items := make([]item.Item, 0, len(dto.GlassItems))
	invalid := 0
	for _, d := range dto.GlassItems {
		it, err := d.toDomain()
		if err != nil {
			invalid++
			continue
		}
		items = append(items, it)
	}
	return domcat.New(dto.Version, parseGenerated(dto.Generated), items, invalid), nil
}

// Encode writes c in export format.
func Encode(w io.Writer, c domcat.Catalog) error {
	dto := exportDTO{
		Version:    c.Version(),
		ItemCount:  c.Len(),
		GlassItems: make([]itemDTO, c.Len()),
	}
	if dto.Version == "" {
		dto.Version = SupportedMajorVersion + ".0"
	}
	if !c.Generated().IsZero() {
		dto.Generated = c.Generated().Format(time.RFC3339Nano)
	}
	for i, it := range c.Items() {
		dto.GlassItems[i] = fromDomain(it)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	major, _, _ := strings.Cut(strings.TrimSpace(v), ".")
	if major != SupportedMajorVersion {
		return fmt.Errorf("%w: version %q", domain.ErrUnsupportedFormat, v)
	}
	return nil
}

// parseGenerated accepts RFC 3339 and the zone-less ISO form the import
// tooling writes. Unparseable values yield the zero time.
func parseGenerated(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
