package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"craft-calculator/core/utils"

	"go.uber.org/zap"
)

// Result is the uniform outcome of a gateway operation. Failures carry
// the wrapped sentinel in Err for errors.Is matching and a stringified
// copy in Error for JSON consumers.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *Item  `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Err     error  `json:"-"`
}

func success(message string, item *Item) Result {
	return Result{Success: true, Message: message, Data: item}
}

func failure(err error, message string) Result {
	return Result{Success: false, Message: message, Error: err.Error(), Err: err}
}

// Gateway validates and applies catalog mutations. It is the sole writer
// of the catalog; every write persists through the store and invalidates
// the cache before returning, so mutation and invalidation are observed
// as one atomic step.
type Gateway struct {
	store  Store
	cache  *Cache
	logger *zap.Logger

	// mu keeps load-mutate-persist-invalidate atomic for
	// multi-threaded hosts.
	mu sync.Mutex
}

// NewGateway creates a mutation gateway over the given store and cache.
func NewGateway(store Store, cache *Cache, logger *zap.Logger) *Gateway {
	return &Gateway{store: store, cache: cache, logger: logger}
}

// Add validates the item and appends it to the catalog slice of the
// given kind.
func (g *Gateway) Add(ctx context.Context, kind Kind, item Item) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !kind.Valid() {
		return failure(fmt.Errorf("%w: unknown kind %q", ErrValidation, kind), "invalid kind")
	}
	item.Kind = kind

	snap, err := g.store.LoadAll(ctx)
	if err != nil {
		return failure(fmt.Errorf("loading catalog: %w", err), "catalog unavailable")
	}

	if err := validateItem(kind, &item); err != nil {
		return failure(err, "item rejected")
	}
	if other, ok := findByID(snap, item.ID); ok {
		return failure(fmt.Errorf("%w: id %d already used by %q", ErrDuplicateID, item.ID, other.Name),
			"id already in use")
	}

	snap.SetSlice(kind, append(snap.Slice(kind), item))
	if err := g.commit(ctx, snap, kind); err != nil {
		return failure(err, "persist failed")
	}

	g.logger.Info("catalog item added",
		zap.String("kind", string(kind)), zap.Int("id", item.ID), zap.String("name", item.Name))
	return success("item added", &item)
}

// Update merges partial updates into an existing item, re-validates the
// merged result and persists it. Changing the id is rejected.
func (g *Gateway) Update(ctx context.Context, kind Kind, id int, updates map[string]any) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !kind.Valid() {
		return failure(fmt.Errorf("%w: unknown kind %q", ErrValidation, kind), "invalid kind")
	}
	if raw, ok := updates["id"]; ok {
		if utils.ToInt(raw) != id {
			return failure(fmt.Errorf("%w: id is immutable", ErrValidation), "id cannot be changed")
		}
		// Merge from a copy without the id key; the caller's map stays
		// untouched.
		filtered := make(map[string]any, len(updates))
		for k, v := range updates {
			if k != "id" {
				filtered[k] = v
			}
		}
		updates = filtered
	}

	snap, err := g.store.LoadAll(ctx)
	if err != nil {
		return failure(fmt.Errorf("loading catalog: %w", err), "catalog unavailable")
	}

	slice := snap.Slice(kind)
	pos := -1
	for i := range slice {
		if slice[i].ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return failure(fmt.Errorf("%w: no %s item with id %d", ErrNotFound, kind, id), "item not found")
	}

	merged, err := mergeItem(slice[pos], updates)
	if err != nil {
		return failure(err, "update rejected")
	}
	if err := validateItem(kind, &merged); err != nil {
		return failure(err, "merged item invalid")
	}

	slice[pos] = merged
	if err := g.commit(ctx, snap, kind); err != nil {
		return failure(err, "persist failed")
	}

	g.logger.Info("catalog item updated",
		zap.String("kind", string(kind)), zap.Int("id", id))
	return success("item updated", &merged)
}

// Remove deletes an item by id and returns the removed item.
func (g *Gateway) Remove(ctx context.Context, kind Kind, id int) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !kind.Valid() {
		return failure(fmt.Errorf("%w: unknown kind %q", ErrValidation, kind), "invalid kind")
	}

	snap, err := g.store.LoadAll(ctx)
	if err != nil {
		return failure(fmt.Errorf("loading catalog: %w", err), "catalog unavailable")
	}

	slice := snap.Slice(kind)
	for i := range slice {
		if slice[i].ID != id {
			continue
		}
		removed := slice[i]
		snap.SetSlice(kind, append(slice[:i:i], slice[i+1:]...))
		if err := g.commit(ctx, snap, kind); err != nil {
			return failure(err, "persist failed")
		}
		g.logger.Info("catalog item removed",
			zap.String("kind", string(kind)), zap.Int("id", id), zap.String("name", removed.Name))
		return success("item removed", &removed)
	}
	return failure(fmt.Errorf("%w: no %s item with id %d", ErrNotFound, kind, id), "item not found")
}

// commit persists the snapshot and invalidates the affected cache slice
// inline, before control returns to the mutation caller.
func (g *Gateway) commit(ctx context.Context, snap *Snapshot, kind Kind) error {
	if err := g.store.Persist(ctx, snap); err != nil {
		return fmt.Errorf("persisting catalog: %w", err)
	}
	g.cache.Invalidate(kind)
	return nil
}

// mergeItem applies a partial update map onto a deep copy of the item,
// so the live snapshot stays untouched if validation rejects the merge.
// Nested sections present in the map are merged field by field.
func mergeItem(base Item, updates map[string]any) (Item, error) {
	patch, err := json.Marshal(updates)
	if err != nil {
		return Item{}, fmt.Errorf("%w: unencodable update payload: %v", ErrValidation, err)
	}

	var merged Item
	clone, err := json.Marshal(base)
	if err != nil {
		return Item{}, fmt.Errorf("encoding item %d: %w", base.ID, err)
	}
	if err := json.Unmarshal(clone, &merged); err != nil {
		return Item{}, fmt.Errorf("decoding item %d: %w", base.ID, err)
	}

	if err := json.Unmarshal(patch, &merged); err != nil {
		return Item{}, fmt.Errorf("%w: malformed update payload: %v", ErrValidation, err)
	}
	merged.ID = base.ID
	merged.Kind = base.Kind
	return merged, nil
}

// validateItem enforces the structural rules for one kind.
func validateItem(kind Kind, item *Item) error {
	if item.ID <= 0 {
		return fmt.Errorf("%w: id must be a positive integer", ErrValidation)
	}
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}

	switch kind {
	case KindRaw:
		if item.Gathering == nil || strings.TrimSpace(item.Gathering.Skill) == "" {
			return fmt.Errorf("%w: raw item %q needs a gathering skill", ErrValidation, item.Name)
		}
	case KindIntermediate, KindCrafted:
		if item.Recipe == nil || len(item.Recipe.Components) == 0 {
			return fmt.Errorf("%w: %s item %q needs at least one recipe component",
				ErrValidation, kind, item.Name)
		}
		for i, comp := range item.Recipe.Components {
			if strings.TrimSpace(comp.Identifier) == "" {
				return fmt.Errorf("%w: component %d of %q has no identifier",
					ErrValidation, i, item.Name)
			}
			if comp.Quantity < 1 {
				return fmt.Errorf("%w: component %q of %q needs a positive quantity",
					ErrValidation, comp.Identifier, item.Name)
			}
		}
	}
	return nil
}

func findByID(snap *Snapshot, id int) (*Item, bool) {
	for _, kind := range Kinds() {
		slice := snap.Slice(kind)
		for i := range slice {
			if slice[i].ID == id {
				return &slice[i], true
			}
		}
	}
	return nil, false
}
