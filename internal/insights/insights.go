// Package insights looks up salary, demand and course data for careers.
package insights

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
)

// Placeholder is used for salary and demand of careers without data.
const Placeholder = "—"

//go:embed data/careers.json
var defaultData []byte

// Course is a learning resource for a career.
type Course struct {
	Title    string `mapstructure:"title" json:"title"`
	Provider string `mapstructure:"provider" json:"provider,omitempty"`
	URL      string `mapstructure:"url" json:"url,omitempty"`
}

// Info is the enrichment record of one career.
type Info struct {
	Name    string   `mapstructure:"name" json:"name"`
	Salary  string   `mapstructure:"salary" json:"salary"`
	Demand  string   `mapstructure:"demand" json:"demand"`
	Courses []Course `mapstructure:"courses" json:"courses"`
}

// Unknown returns the placeholder record for name.
func Unknown(name string) Info {
	return Info{Name: name, Salary: Placeholder, Demand: Placeholder, Courses: []Course{}}
}

// Catalog is an immutable name-indexed set of career records.
type Catalog struct {
	byName map[string]Info
	names  []string
}

// Default returns the catalog built from the embedded data set.
func Default() *Catalog {
	c, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("embedded career insights are invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog from a JSON file.
func LoadFile(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read career insights %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse career insights %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a JSON array of career records. Entries without a name are
// skipped and later duplicates replace earlier ones.
func Parse(data []byte) (*Catalog, error) {
	var raw []map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	c := &Catalog{byName: make(map[string]Info, len(raw))}
	for i, item := range raw {
		var info Info
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &info,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(item); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		info.Name = strings.TrimSpace(info.Name)
		if info.Name == "" {
			continue
		}
		if info.Salary == "" {
			info.Salary = Placeholder
		}
		if info.Demand == "" {
			info.Demand = Placeholder
		}
		if info.Courses == nil {
			info.Courses = []Course{}
		}

		if _, ok := c.byName[info.Name]; !ok {
			c.names = append(c.names, info.Name)
		}
		c.byName[info.Name] = info
	}

	return c, nil
}

// Names returns the known career names in data order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Get returns the record for name.
func (c *Catalog) Get(name string) (Info, bool) {
	info, ok := c.byName[name]
	if !ok {
		return Info{}, false
	}
	info.Courses = append([]Course{}, info.Courses...)
	return info, true
}

// Lookup returns one record per name, in order. Unknown names get the
// placeholder record.
func (c *Catalog) Lookup(names []string) []Info {
	out := make([]Info, 0, len(names))
	for _, name := range names {
		info, ok := c.Get(name)
		if !ok {
			info = Unknown(name)
		}
		out = append(out, info)
	}
	return out
}
