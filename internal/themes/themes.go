// Package themes builds search theme lists for Performance Max campaigns.
package themes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Theme category names.
const (
	CategoryProduct     = "Product Category Themes"
	CategoryUseCase     = "Use-case Based Themes"
	CategoryDemographic = "Demographic Themes"
	CategoryLocation    = "Location-based Themes"
)

// Category is one named list of themes.
type Category struct {
	Name   string
	Themes []string
}

// Themes is an ordered list of categories. It encodes to a JSON object in
// list order.
type Themes []Category

// Get returns the named category.
func (t Themes) Get(name string) (Category, bool) {
	for _, c := range t {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// MarshalJSON writes the categories as an ordered object.
func (t Themes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		list := c.Themes
		if list == nil {
			list = []string{}
		}
		values, err := json.Marshal(list)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(values)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of category name to themes, keeping key order.
func (t *Themes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("search themes: expected object, got %v", tok)
	}

	result := Themes{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("search themes: expected category name, got %v", tok)
		}
		var list []string
		if err := dec.Decode(&list); err != nil {
			return fmt.Errorf("search themes: category %q: %w", name, err)
		}
		result = append(result, Category{Name: name, Themes: list})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*t = result
	return nil
}

var (
	productPatterns     = []string{"%s software", "%s platform", "%s tools"}
	useCasePatterns     = []string{"%s for teams", "%s for business", "%s for productivity"}
	demographicPatterns = []string{"%s for professionals", "%s for startups", "%s for remote teams"}
)

// Generate returns the four theme categories for a domain token.
func Generate(domain string, locations []string) Themes {
	locationThemes := make([]string, 0, len(locations))
	for _, loc := range locations {
		if l := strings.TrimSpace(loc); l != "" {
			locationThemes = append(locationThemes, domain+" "+l)
		}
	}

	return Themes{
		{Name: CategoryProduct, Themes: render(productPatterns, domain)},
		{Name: CategoryUseCase, Themes: render(useCasePatterns, domain)},
		{Name: CategoryDemographic, Themes: render(demographicPatterns, domain)},
		{Name: CategoryLocation, Themes: locationThemes},
	}
}

func render(patterns []string, domain string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, fmt.Sprintf(p, domain))
	}
	return out
}
