package bill

import "context"

// Entry is one line of the user's bill: an item identifier (id or name)
// and the quantity to craft.
type Entry struct {
	Identifier string `json:"identifier"`
	Quantity   int    `json:"quantity"`
}

// Processor orchestrates the resolver and consolidation across a
// multi-line bill. It is the single entry point the application calls
// whenever the user's selection changes.
type Processor struct {
	resolver *Resolver
}

// NewProcessor creates a bill processor.
func NewProcessor(resolver *Resolver) *Processor {
	return &Processor{resolver: resolver}
}

// Process resolves every bill entry with a fresh recursion path,
// concatenates the contributions and consolidates them. An empty bill
// yields an empty result; malformed entries are skipped, not errors.
func (p *Processor) Process(ctx context.Context, entries []Entry) []ResolvedComponent {
	if len(entries) == 0 {
		return []ResolvedComponent{}
	}

	var combined []ResolvedComponent
	for _, entry := range entries {
		if entry.Identifier == "" || entry.Quantity < 1 {
			continue
		}
		combined = append(combined, p.resolver.Resolve(ctx, entry.Identifier, entry.Quantity)...)
	}
	return Consolidate(combined)
}
