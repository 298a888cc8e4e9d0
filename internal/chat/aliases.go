package chat

import (
	"sort"
	"strings"
)

// aliases maps common phrases to canonical career names. Some targets, such
// as "Cloud Engineer", only have insights and a generic roadmap.
var aliases = map[string]string{
	"software engineer":         "Software Engineer",
	"developer":                 "Software Engineer",
	"programmer":                "Software Engineer",
	"data scientist":            "Data Scientist",
	"ai engineer":               "AI / ML Engineer",
	"ml engineer":               "AI / ML Engineer",
	"machine learning engineer": "AI / ML Engineer",
	"cybersecurity":             "Cybersecurity Specialist",
	"security engineer":         "Cybersecurity Specialist",
	"cloud engineer":            "Cloud Engineer",
	"devops":                    "Cloud Engineer",
	"ui/ux":                     "Designer / UI-UX",
	"ux designer":               "Designer / UI-UX",
	"ui designer":               "Designer / UI-UX",
	"designer":                  "Designer / UI-UX",
	"doctor":                    "Doctor / Healthcare",
	"healthcare":                "Doctor / Healthcare",
	"lawyer":                    "Lawyer / Legal",
	"legal":                     "Lawyer / Legal",
	"entrepreneur":              "Entrepreneur / Manager",
	"manager":                   "Entrepreneur / Manager",
	"teacher":                   "Teacher / Academic",
	"academic":                  "Teacher / Academic",
	"content creator":           "Content Creator / Media",
	"media":                     "Content Creator / Media",
}

// aliasOrder lists aliases longest first so multi-word phrases win over
// their parts. Equal lengths sort alphabetically.
var aliasOrder = func() []string {
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// ExtractCareers returns the distinct canonical careers mentioned in text.
func ExtractCareers(text string) []string {
	text = strings.ToLower(text)
	var hits []string
	seen := make(map[string]bool)
	for _, alias := range aliasOrder {
		if !strings.Contains(text, alias) {
			continue
		}
		canon := aliases[alias]
		if seen[canon] {
			continue
		}
		seen[canon] = true
		hits = append(hits, canon)
	}
	return hits
}
