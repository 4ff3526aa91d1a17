package bill

import (
	"context"
	"strconv"

	"craft-calculator/core/catalog"

	"go.uber.org/zap"
)

// maxDepth caps recursion for pathological non-cyclic chains. The cycle
// guard already bounds repetition; this is a safeguard, not a contract.
const maxDepth = 64

// ResolvedComponent is one leaf contribution produced by resolution.
// ID is the canonical identifier: the decimal item id for known items,
// or the requested identifier verbatim for unknown leaves.
type ResolvedComponent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	IsRaw       bool   `json:"is_raw"`
	IsUnknown   bool   `json:"is_unknown,omitempty"`
	SourceSkill string `json:"source_skill,omitempty"`
}

// Resolver expands catalog items into their raw leaf requirements. It
// reads the catalog through the recipe cache.
type Resolver struct {
	cache  *catalog.Cache
	logger *zap.Logger
}

// NewResolver creates a resolver over the given cache.
func NewResolver(cache *catalog.Cache, logger *zap.Logger) *Resolver {
	return &Resolver{cache: cache, logger: logger}
}

// Resolve expands one identifier at the given quantity into raw leaf
// contributions, in recipe component order. It never returns an error:
// unknown identifiers become flagged leaves and cyclic branches are
// truncated.
func (r *Resolver) Resolve(ctx context.Context, identifier string, quantity int) []ResolvedComponent {
	idx := r.cache.Index(ctx)
	return r.resolve(idx, identifier, quantity, nil, 0)
}

// resolve is the recursive step. visited is the set of canonical ids on
// the current recursion path only; it is copied on each descent so
// sibling branches can legitimately share a dependency.
func (r *Resolver) resolve(idx *catalog.Index, identifier string, quantity int,
	visited map[string]struct{}, depth int) []ResolvedComponent {

	if depth > maxDepth {
		r.logger.Warn("recipe expansion exceeded max depth, truncating",
			zap.String("identifier", identifier), zap.Int("depth", depth))
		return nil
	}

	item, found := idx.Find(identifier)
	if !found {
		r.logger.Warn("unknown component in recipe",
			zap.String("identifier", identifier))
		return []ResolvedComponent{{
			ID:        identifier,
			Name:      identifier,
			Quantity:  quantity,
			IsUnknown: true,
		}}
	}

	key := strconv.Itoa(item.ID)
	if _, onPath := visited[key]; onPath {
		// Cycle truncation: the branch contributes nothing further.
		r.logger.Warn("circular recipe dependency, truncating branch",
			zap.String("item", item.Name), zap.Int("id", item.ID))
		return nil
	}

	if item.Kind == catalog.KindRaw {
		leaf := ResolvedComponent{ID: key, Name: item.Name, Quantity: quantity, IsRaw: true}
		if item.Gathering != nil {
			leaf.SourceSkill = item.Gathering.Skill
		}
		return []ResolvedComponent{leaf}
	}

	if !item.Expandable() {
		// Intermediate/crafted with no recipe components: terminal
		// leaf, flagged by IsRaw=false so callers can spot the gap.
		r.logger.Warn("craftable item has no recipe components",
			zap.String("item", item.Name), zap.Int("id", item.ID))
		return []ResolvedComponent{{ID: key, Name: item.Name, Quantity: quantity}}
	}

	next := make(map[string]struct{}, len(visited)+1)
	for k := range visited {
		next[k] = struct{}{}
	}
	next[key] = struct{}{}

	var out []ResolvedComponent
	for _, comp := range item.Recipe.Components {
		out = append(out, r.resolve(idx, comp.Identifier, comp.Quantity*quantity, next, depth+1)...)
	}
	return out
}
