// Package careers holds the fixed career catalog shared by training and ranking:
// the ordered label set, per-career score profiles, interest keywords and roadmaps.
package careers

import (
	"strings"
	"sync"
)

// Label names one of the careers the classifier predicts.
type Label string

const (
	SoftwareEngineer    Label = "Software Engineer"
	DataScientist       Label = "Data Scientist"
	DoctorHealthcare    Label = "Doctor / Healthcare"
	LawyerLegal         Label = "Lawyer / Legal"
	DesignerUIUX        Label = "Designer / UI-UX"
	EntrepreneurManager Label = "Entrepreneur / Manager"
	TeacherAcademic     Label = "Teacher / Academic"
	ContentCreatorMedia Label = "Content Creator / Media"
)

func (l Label) String() string { return string(l) }

// Profile is the mean score vector and per-feature variance used to synthesize
// training samples for a single career.
type Profile struct {
	Mean     [FeatureCount]float64
	Variance [FeatureCount]float64
}

type entry struct {
	label    Label
	profile  Profile
	keywords []string
	roadmap  []string
}

// Catalog is an immutable, ordered view of the supported careers. The order of
// Labels defines the classifier's class indexes.
type Catalog struct {
	entries []entry
	index   map[Label]int
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return newCatalog(defaultEntries())
})

// Default returns the built-in catalog. It is built once and never mutated.
func Default() *Catalog {
	return defaultCatalog()
}

// newCatalog builds a catalog from entries, copying every slice it is given.
func newCatalog(entries []entry) *Catalog {
	c := &Catalog{
		entries: make([]entry, 0, len(entries)),
		index:   make(map[Label]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := c.index[e.label]; dup {
			continue
		}
		c.index[e.label] = len(c.entries)
		c.entries = append(c.entries, entry{
			label:    e.label,
			profile:  e.profile,
			keywords: append([]string(nil), e.keywords...),
			roadmap:  append([]string(nil), e.roadmap...),
		})
	}
	return c
}

// Len returns the number of careers.
func (c *Catalog) Len() int { return len(c.entries) }

// Labels returns the careers in classifier order.
func (c *Catalog) Labels() []Label {
	labels := make([]Label, 0, len(c.entries))
	for _, e := range c.entries {
		labels = append(labels, e.label)
	}
	return labels
}

// Names returns the careers in classifier order as plain strings.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, string(e.label))
	}
	return names
}

// Index returns the classifier index of label.
func (c *Catalog) Index(label Label) (int, bool) {
	idx, ok := c.index[label]
	return idx, ok
}

// Profile returns the synthesis profile of label.
func (c *Catalog) Profile(label Label) (Profile, bool) {
	idx, ok := c.index[label]
	if !ok {
		return Profile{}, false
	}
	return c.entries[idx].profile, true
}

// Keywords returns the interest keywords of label.
func (c *Catalog) Keywords(label Label) []string {
	idx, ok := c.index[label]
	if !ok {
		return nil
	}
	return append([]string(nil), c.entries[idx].keywords...)
}

// Parse resolves a career name case-insensitively.
func (c *Catalog) Parse(name string) (Label, bool) {
	name = strings.TrimSpace(name)
	if idx, ok := c.index[Label(name)]; ok {
		return c.entries[idx].label, true
	}
	for _, e := range c.entries {
		if strings.EqualFold(string(e.label), name) {
			return e.label, true
		}
	}
	return "", false
}
