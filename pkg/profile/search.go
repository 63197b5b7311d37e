package profile

import "github.com/sahilm/fuzzy"

// Search fuzzy-matches query against profile names and returns the
// matching profiles in match-quality order. An empty query returns the
// whole catalog in its own order.
func (c Catalog) Search(query string) Catalog {
	if query == "" {
		out := make(Catalog, len(c))
		copy(out, c)
		return out
	}

	matches := fuzzy.Find(query, c.Names())
	out := make(Catalog, 0, len(matches))
	for _, m := range matches {
		out = append(out, c[m.Index])
	}
	return out
}
