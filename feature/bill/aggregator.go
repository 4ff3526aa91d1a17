package bill

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Consolidate deduplicates resolved components by id, summing quantities
// within a group and keeping the first-seen descriptive metadata. The
// result is ordered by name ascending under locale-aware collation, so
// repeated runs produce diff-friendly output. Consolidate is idempotent.
func Consolidate(components []ResolvedComponent) []ResolvedComponent {
	groups := make(map[string]int, len(components))
	out := make([]ResolvedComponent, 0, len(components))

	for _, comp := range components {
		if pos, seen := groups[comp.ID]; seen {
			out[pos].Quantity += comp.Quantity
			continue
		}
		groups[comp.ID] = len(out)
		out = append(out, comp)
	}

	coll := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		return coll.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
