package careers

var fallbackRoadmap = []string{
	"Strengthen fundamentals",
	"Build small projects and ship",
	"Network and seek mentors",
}

// Roadmap returns the ordered steps for the named career. Unknown names get the
// generic three-step roadmap; the result is never empty.
func (c *Catalog) Roadmap(name string) []string {
	if label, ok := c.Parse(name); ok {
		if steps := c.entries[c.index[label]].roadmap; len(steps) > 0 {
			return append([]string(nil), steps...)
		}
	}
	return FallbackRoadmap()
}

// FallbackRoadmap returns a copy of the generic roadmap.
func FallbackRoadmap() []string {
	return append([]string(nil), fallbackRoadmap...)
}

// TinyRoadmap looks the career up in the default catalog.
func TinyRoadmap(name string) []string {
	return Default().Roadmap(name)
}
