package property

import "strings"

// Matches applies the listing query predicate: the type facet matches
// case-insensitively unless it is empty or the "All" sentinel, and the
// search text must appear as a case-insensitive substring of the name,
// location, or description. Both conditions must hold.
//
// This is the single filter implementation; the server list path and the
// client cache re-filter both call it so their results always agree.
func Matches(p *Property, typeFacet, search string) bool {
	if typeFacet != "" && typeFacet != FacetAll {
		if !strings.EqualFold(p.Type, typeFacet) {
			return false
		}
	}
	if search != "" {
		q := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Location), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}

// Filter returns the listings matching the facet and search text, in their
// original order. With no facet and no search text it returns every record.
func Filter(list []*Property, typeFacet, search string) []*Property {
	out := make([]*Property, 0, len(list))
	for _, p := range list {
		if Matches(p, typeFacet, search) {
			out = append(out, p)
		}
	}
	return out
}
