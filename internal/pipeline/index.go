package pipeline

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/f1scraper/internal/model"
)

// NameIndex maps the names of a season's entities to their fragments.
// Every summary row is reachable by its internal slug and by its display
// name, both trimmed and case-folded. When two rows share a key the first
// row keeps it.
type NameIndex struct {
	caser  cases.Caser
	bySlug map[string]model.Fragment
	byName map[string]model.Fragment

	// slugs and names hold the keys in insertion order.
	slugs []string
	names []string

	seen  map[string]bool
	order []model.Fragment
}

// NewNameIndex returns an empty index.
func NewNameIndex() *NameIndex {
	return &NameIndex{
		caser:  cases.Lower(language.Und),
		bySlug: make(map[string]model.Fragment),
		byName: make(map[string]model.Fragment),
		seen:   make(map[string]bool),
		order:  make([]model.Fragment, 0),
	}
}

// Add indexes the slug and display name of f. Keys already taken by an
// earlier row are left alone. Entities are told apart by their full
// identity, so two races sharing a slug stay two entities. It reports
// whether f is a new entity.
func (x *NameIndex) Add(f model.Fragment) bool {
	if slug := x.key(f.InternalName()); slug != "" {
		if _, ok := x.bySlug[slug]; !ok {
			x.bySlug[slug] = f
			x.slugs = append(x.slugs, slug)
		}
	}

	if name := x.key(f.Label()); name != "" {
		if _, ok := x.byName[name]; !ok {
			x.byName[name] = f
			x.names = append(x.names, name)
		}
	}

	id := identity(f)
	if x.seen[id] {
		return false
	}
	x.seen[id] = true
	x.order = append(x.order, f)
	return true
}

// identity returns the key an entity's detail page is addressed by.
func identity(f model.Fragment) string {
	switch f := f.(type) {
	case model.Circuit:
		return "race/" + strconv.FormatUint(uint64(f.Index), 10) + "/" + f.Slug
	case model.Driver:
		return "driver/" + f.ID + "/" + f.Slug
	default:
		return f.EntityKind().String() + "/" + f.InternalName()
	}
}

// Lookup finds the entity called name. Slugs take priority over display
// names.
func (x *NameIndex) Lookup(name string) (model.Fragment, bool) {
	key := x.key(name)
	if key == "" {
		return nil, false
	}
	if f, ok := x.bySlug[key]; ok {
		return f, true
	}
	f, ok := x.byName[key]
	return f, ok
}

// Entities returns every distinct entity in the order it was first seen.
func (x *NameIndex) Entities() []model.Fragment {
	return append([]model.Fragment(nil), x.order...)
}

// Len returns the number of distinct entities.
func (x *NameIndex) Len() int {
	return len(x.order)
}

// Keys returns the slug and display name keys in insertion order.
func (x *NameIndex) Keys() (slugs, names []string) {
	return append([]string(nil), x.slugs...), append([]string(nil), x.names...)
}

func (x *NameIndex) key(s string) string {
	return x.caser.String(strings.TrimSpace(s))
}
