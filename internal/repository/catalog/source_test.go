package catalog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/glassdex/internal/domain"
	domcat "github.com/kailas-cloud/glassdex/internal/domain/catalog"
)

func loadFixture(t *testing.T) domcat.Catalog {
	t.Helper()
	c, err := NewFileSource(filepath.Join("testdata", "catalog.json")).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func itemIDs(c domcat.Catalog) []string {
	out := make([]string, 0, c.Len())
	for _, it := range c.Items() {
		out = append(out, it.ID())
	}
	return out
}

func TestFileSource_Load(t *testing.T) {
	c := loadFixture(t)

	if diff := cmp.Diff([]string{"BE-0100", "EF-204", "EF-591", "GA-NS-33"}, itemIDs(c)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if c.Skipped() != 2 {
		t.Errorf("Skipped() = %d, want 2", c.Skipped())
	}
	if c.Version() != "1.0" {
		t.Errorf("Version() = %q", c.Version())
	}
	if c.Generated().Year() != 2025 {
		t.Errorf("Generated() = %v", c.Generated())
	}
}

func TestDecode_LegacyListsAndNumericCOE(t *testing.T) {
	c := loadFixture(t)
	it, ok := c.Get("EF-204")
	if !ok {
		t.Fatal("EF-204 missing")
	}
	if diff := cmp.Diff([]string{"blue", "transparent"}, it.Tags()); diff != "" {
		t.Errorf("Tags() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"cobalt"}, it.Synonyms()); diff != "" {
		t.Errorf("Synonyms() (-want +got):\n%s", diff)
	}
	if it.COE() != "104" {
		t.Errorf("COE() = %q", it.COE())
	}
	if q, ok := it.Quantity(); !ok || q != 3 {
		t.Errorf("Quantity() = %v,%v", q, ok)
	}
	if dc, _ := c.Get("EF-591"); !dc.Discontinued() {
		t.Error("EF-591 should be discontinued")
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(strings.NewReader("{not json")); err == nil {
		t.Error("expected decode error")
	}
	_, err := Decode(strings.NewReader(`{"version":"2.0","glassitems":[]}`))
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "none.json")).Load(context.Background())
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestEncodeDecode_PreservesItems(t *testing.T) {
	c := loadFixture(t)
	var buf bytes.Buffer
	if err := Encode(&buf, c); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(itemIDs(c), itemIDs(back)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if back.Skipped() != 0 {
		t.Errorf("Skipped() = %d after re-encode", back.Skipped())
	}
}

func TestStoreSource_PublishThenLoad(t *testing.T) {
	ctx := context.Background()
	s := newMockStore()
	src := NewStoreSource(s, "")

	if _, err := src.Load(ctx); !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable before publish, got %v", err)
	}
	if err := src.Publish(ctx, loadFixture(t)); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if _, ok := s.kv[DefaultCatalogKey]; !ok {
		t.Fatal("catalog not stored under default key")
	}
	c, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
	if src.Describe() != "store:"+DefaultCatalogKey {
		t.Errorf("Describe() = %q", src.Describe())
	}
}

func TestStoreSource_GetError(t *testing.T) {
	s := newMockStore()
	s.getErr = errors.New("timeout")
	_, err := NewStoreSource(s, "k").Load(context.Background())
	if err == nil || errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("expected plain store error, got %v", err)
	}
}

func TestInventory(t *testing.T) {
	ctx := context.Background()
	s := newMockStore()
	inv := NewInventory(s, "")
	q := 4.5

	if err := inv.SetQuantity(ctx, "EF-204", &q); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	s.hashes[DefaultInventoryKey]["BROKEN"] = "lots"

	got, err := inv.Quantities(ctx)
	if err != nil {
		t.Fatalf("Quantities: %v", err)
	}
	if diff := cmp.Diff(map[string]float64{"EF-204": 4.5}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if err := inv.SetQuantity(ctx, "EF-204", nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, _ = inv.Quantities(ctx)
	if _, ok := got["EF-204"]; ok {
		t.Error("quantity not cleared")
	}

	neg := -1.0
	if err := inv.SetQuantity(ctx, "EF-204", &neg); err == nil {
		t.Error("expected error for negative quantity")
	}
}

func TestInventory_Error(t *testing.T) {
	s := newMockStore()
	s.hgetErr = errors.New("timeout")
	if _, err := NewInventory(s, "").Quantities(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFileSource_NullItems(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(p, []byte(`{"version":"1.0","glassitems":null}`), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := NewFileSource(p).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}
