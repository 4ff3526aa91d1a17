package bill

import (
	"context"

	"craft-calculator/core/catalog"

	"go.uber.org/zap"
)

// Service handles bill resolution.
type Service struct {
	processor *Processor
	logger    *zap.Logger
}

// NewService creates a new bill service.
func NewService(cache *catalog.Cache, logger *zap.Logger) *Service {
	resolver := NewResolver(cache, logger)
	return &Service{
		processor: NewProcessor(resolver),
		logger:    logger,
	}
}

// Resolve processes a bill into consolidated raw components.
func (s *Service) Resolve(ctx context.Context, entries []Entry) []ResolvedComponent {
	return s.processor.Process(ctx, entries)
}
