package themes

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerate(t *testing.T) {
	got := Generate("cubehq", []string{"New York", "  ", "Austin"})
	want := Themes{
		{Name: CategoryProduct, Themes: []string{"cubehq software", "cubehq platform", "cubehq tools"}},
		{Name: CategoryUseCase, Themes: []string{"cubehq for teams", "cubehq for business", "cubehq for productivity"}},
		{Name: CategoryDemographic, Themes: []string{"cubehq for professionals", "cubehq for startups", "cubehq for remote teams"}},
		{Name: CategoryLocation, Themes: []string{"cubehq New York", "cubehq Austin"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateWithoutLocations(t *testing.T) {
	got := Generate("product", nil)
	if len(got) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(got))
	}
	product, ok := got.Get(CategoryProduct)
	if !ok || product.Themes[0] != "product software" {
		t.Errorf("expected placeholder domain themes, got %+v", product)
	}
	location, _ := got.Get(CategoryLocation)
	if len(location.Themes) != 0 {
		t.Errorf("expected no location themes, got %v", location.Themes)
	}
	if _, ok := got.Get("Seasonal Themes"); ok {
		t.Errorf("unexpected category")
	}
}

func TestThemesJSONOrder(t *testing.T) {
	themes := Generate("acme", nil)
	data, err := json.Marshal(themes)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"Product Category Themes":["acme software","acme platform","acme tools"],` +
		`"Use-case Based Themes":["acme for teams","acme for business","acme for productivity"],` +
		`"Demographic Themes":["acme for professionals","acme for startups","acme for remote teams"],` +
		`"Location-based Themes":[]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s\nwant %s", data, want)
	}

	var decoded Themes
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(themes, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if err := json.Unmarshal([]byte(`["x"]`), &decoded); err == nil {
		t.Errorf("expected error for array input")
	}
}
