package keywords

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AdGroup is a named set of keywords sharing bidding and targeting settings.
type AdGroup struct {
	Name     string
	Keywords []Keyword
}

// AdGroups is an ordered list of ad groups. It encodes to a JSON object in
// list order, leaving out empty groups.
type AdGroups []AdGroup

// Get returns the named group.
func (g AdGroups) Get(name string) (AdGroup, bool) {
	for _, group := range g {
		if group.Name == name {
			return group, true
		}
	}
	return AdGroup{}, false
}

// NonEmpty returns the groups holding at least one keyword.
func (g AdGroups) NonEmpty() AdGroups {
	result := make(AdGroups, 0, len(g))
	for _, group := range g {
		if len(group.Keywords) > 0 {
			result = append(result, group)
		}
	}
	return result
}

// Count returns the total number of keywords across all groups.
func (g AdGroups) Count() int {
	n := 0
	for _, group := range g {
		n += len(group.Keywords)
	}
	return n
}

// MarshalJSON writes the non-empty groups as an ordered object.
func (g AdGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, group := range g {
		if len(group.Keywords) == 0 {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		name, err := json.Marshal(group.Name)
		if err != nil {
			return nil, err
		}
		members, err := json.Marshal(group.Keywords)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(members)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of group name to keywords, keeping key order.
func (g *AdGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ad groups: expected object, got %v", tok)
	}

	groups := AdGroups{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("ad groups: expected group name, got %v", tok)
		}
		var members []Keyword
		if err := dec.Decode(&members); err != nil {
			return fmt.Errorf("ad groups: group %q: %w", name, err)
		}
		groups = append(groups, AdGroup{Name: name, Keywords: members})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*g = groups
	return nil
}
