package domain

import (
	"slices"
	"strings"
)

// Slug identifies a block editor script, e.g. "news".
type Slug string

// sourceSlugs maps the "source" recorded in a script translation catalog to
// the block it was extracted from. Keys match exactly: no case folding, no
// path cleaning.
var sourceSlugs = map[string]Slug{
	"blocks/src/calendar/edit.js":     "calendar",
	"blocks/src/coming-games/edit.js": "coming-games",
	"blocks/src/leaders/edit.js":      "leaders",
	"blocks/src/members/edit.js":      "members",
	"blocks/src/navigation/edit.js":   "navigation",
	"blocks/src/news/edit.js":         "news",
	"blocks/src/title/edit.js":        "title",
}

// ResolveSlug looks source up in the mapping table.
func ResolveSlug(source string) (Slug, bool) {
	slug, ok := sourceSlugs[source]
	return slug, ok
}

// Sources returns every known source, sorted.
func Sources() []string {
	out := make([]string, 0, len(sourceSlugs))
	for source := range sourceSlugs {
		out = append(out, source)
	}
	slices.Sort(out)
	return out
}

// Slugs returns every known slug, sorted.
func Slugs() []Slug {
	out := make([]Slug, 0, len(sourceSlugs))
	for _, slug := range sourceSlugs {
		out = append(out, slug)
	}
	slices.Sort(out)
	return out
}

// Naming builds the filenames WordPress looks up when a script handle gets
// translations attached: <domain>-<locale>-<handle>.json.
type Naming struct {
	TextDomain string // e.g. "myclub-groups"
	Locale     string // e.g. "sv_SE"
}

// Handle returns the editor script handle registered for slug.
func (n Naming) Handle(slug Slug) string {
	return n.TextDomain + "-" + string(slug) + "-editor-script"
}

// TargetName returns the catalog filename for slug.
func (n Naming) TargetName(slug Slug) string {
	return strings.Join([]string{n.TextDomain, n.Locale, n.Handle(slug)}, "-") + ".json"
}

// Target resolves source and returns the catalog filename it belongs under.
func (n Naming) Target(source string) (string, error) {
	slug, ok := ResolveSlug(source)
	if !ok {
		return "", ErrUnknownSource
	}
	return n.TargetName(slug), nil
}
