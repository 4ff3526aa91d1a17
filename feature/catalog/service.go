package catalog

import (
	"context"

	core "craft-calculator/core/catalog"

	"go.uber.org/zap"
)

// Service handles catalog reads and mutations.
type Service struct {
	cache   *core.Cache
	gateway *core.Gateway
	logger  *zap.Logger
}

// NewService creates a new catalog service.
func NewService(cache *core.Cache, gateway *core.Gateway, logger *zap.Logger) *Service {
	return &Service{cache: cache, gateway: gateway, logger: logger}
}

// Catalog returns the full catalog in the interchange shape.
func (s *Service) Catalog(ctx context.Context) *core.File {
	snap := core.Snapshot{
		Raw:          s.cache.GetKind(ctx, core.KindRaw),
		Intermediate: s.cache.GetKind(ctx, core.KindIntermediate),
		Crafted:      s.cache.GetKind(ctx, core.KindCrafted),
		Meta:         s.cache.Meta(ctx),
	}
	return snap.ToFile()
}

// Meta returns the skill metadata.
func (s *Service) Meta(ctx context.Context) core.Meta {
	return s.cache.Meta(ctx)
}

// Find resolves one identifier. When it is absent, the second return is
// a near-miss name suggestion (may be empty).
func (s *Service) Find(ctx context.Context, identifier string) (*core.Item, string, bool) {
	idx := s.cache.Index(ctx)
	if item, ok := idx.Find(identifier); ok {
		return item, "", true
	}
	suggestion, _ := idx.Suggest(identifier)
	return nil, suggestion, false
}

// Add validates and appends an item via the mutation gateway.
func (s *Service) Add(ctx context.Context, kind core.Kind, item core.Item) core.Result {
	return s.gateway.Add(ctx, kind, item)
}

// Update merges partial updates into an item via the mutation gateway.
func (s *Service) Update(ctx context.Context, kind core.Kind, id int, updates map[string]any) core.Result {
	return s.gateway.Update(ctx, kind, id, updates)
}

// Remove deletes an item via the mutation gateway.
func (s *Service) Remove(ctx context.Context, kind core.Kind, id int) core.Result {
	return s.gateway.Remove(ctx, kind, id)
}
