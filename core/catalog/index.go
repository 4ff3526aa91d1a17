package catalog

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestMaxDistance is the largest edit distance Suggest will accept.
const suggestMaxDistance = 3

// Index provides O(1) identifier resolution over a catalog slice.
// It is rebuilt whenever the backing slice changes (cache reload or
// mutation); readers treat it as immutable.
type Index struct {
	byID     map[int]*Item
	byName   map[string]*Item
	nameToID map[string]int
	items    []Item
}

// NewIndex builds id- and name-keyed maps over the given items.
// Name lookup is case-insensitive exact match.
func NewIndex(items []Item) *Index {
	ix := &Index{
		byID:     make(map[int]*Item, len(items)),
		byName:   make(map[string]*Item, len(items)),
		nameToID: make(map[string]int, len(items)),
		items:    items,
	}
	for i := range items {
		item := &items[i]
		ix.byID[item.ID] = item
		key := strings.ToLower(item.Name)
		if _, exists := ix.byName[key]; !exists {
			ix.byName[key] = item
			ix.nameToID[key] = item.ID
		}
	}
	return ix
}

// Len returns the number of indexed items.
func (ix *Index) Len() int {
	return len(ix.items)
}

// Items returns the backing slice.
func (ix *Index) Items() []Item {
	return ix.items
}

// ByID looks up an item by its numeric id.
func (ix *Index) ByID(id int) (*Item, bool) {
	item, ok := ix.byID[id]
	return item, ok
}

// Find resolves an identifier, trying numeric id first, then name.
// A linear scan runs only as a defensive fallback for stale maps; it is
// never the common path.
func (ix *Index) Find(identifier string) (*Item, bool) {
	if id, err := strconv.Atoi(identifier); err == nil {
		if item, ok := ix.byID[id]; ok {
			return item, true
		}
	}
	if item, ok := ix.byName[strings.ToLower(identifier)]; ok {
		return item, true
	}
	for i := range ix.items {
		item := &ix.items[i]
		if strings.EqualFold(item.Name, identifier) || strconv.Itoa(item.ID) == identifier {
			return item, true
		}
	}
	return nil, false
}

// Suggest returns the indexed name closest to the given identifier, for
// not-found diagnostics. No suggestion is made beyond a small edit
// distance.
func (ix *Index) Suggest(identifier string) (string, bool) {
	needle := strings.ToLower(identifier)
	best := ""
	bestDist := suggestMaxDistance + 1
	for i := range ix.items {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(ix.items[i].Name))
		if dist < bestDist {
			best = ix.items[i].Name
			bestDist = dist
		}
	}
	return best, bestDist <= suggestMaxDistance
}
