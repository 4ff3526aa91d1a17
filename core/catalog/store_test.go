package catalog_test

import (
	"context"
	"sync"
	"time"

	"craft-calculator/core/catalog"
)

// memStore is an in-memory Store with instrumentation for cache and
// gateway tests.
type memStore struct {
	mu        sync.Mutex
	snap      *catalog.Snapshot
	loads     int
	persists  int
	loadErr   error
	loadDelay time.Duration
	loadGate  chan struct{} // when set, LoadAll blocks until it closes
}

func newMemStore(snap *catalog.Snapshot) *memStore {
	return &memStore{snap: snap}
}

func (s *memStore) LoadAll(_ context.Context) (*catalog.Snapshot, error) {
	s.mu.Lock()
	s.loads++
	err := s.loadErr
	delay := s.loadDelay
	gate := s.loadGate
	snap := s.snap
	s.mu.Unlock()

	// The snapshot is captured before blocking, so a load that straddles
	// a Persist returns the data it started with.
	if gate != nil {
		<-gate
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *memStore) Persist(_ context.Context, snap *catalog.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persists++
	s.snap = snap
	return nil
}

func (s *memStore) loadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

func (s *memStore) setLoadGate(gate chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadGate = gate
}

func rawItem(id int, name, skill string) catalog.Item {
	return catalog.Item{
		ID:        id,
		Name:      name,
		Kind:      catalog.KindRaw,
		Gathering: &catalog.Gathering{Skill: skill, SkillLevel: 1},
	}
}

func craftableItem(id int, name string, kind catalog.Kind, components ...catalog.ComponentRef) catalog.Item {
	return catalog.Item{
		ID:   id,
		Name: name,
		Kind: kind,
		Recipe: &catalog.Recipe{
			ArtisanSkill: "Crafting",
			WorkStation:  "Workbench",
			Components:   components,
		},
	}
}

// fixtureSnapshot builds the shared test catalog: a hunting bow line
// (raw wood and hide, processed intermediates) plus a flower powder.
func fixtureSnapshot() *catalog.Snapshot {
	return &catalog.Snapshot{
		Raw: []catalog.Item{
			rawItem(1, "Oak Wood", "Woodcutting"),
			rawItem(2, "Rabbit Hide", "Hunting"),
			rawItem(6, "Essence Crystal", "Mining"),
			rawItem(7, "Snowdrop", "Herbalism"),
			rawItem(8, "Daffodil", "Herbalism"),
		},
		Intermediate: []catalog.Item{
			craftableItem(3, "Oak Timber", catalog.KindIntermediate,
				catalog.ComponentRef{Identifier: "Oak Wood", Quantity: 1}),
			craftableItem(4, "Processed Rabbit Hide", catalog.KindIntermediate,
				catalog.ComponentRef{Identifier: "Rabbit Hide", Quantity: 1}),
		},
		Crafted: []catalog.Item{
			craftableItem(5, "Novice Hunting Bow", catalog.KindCrafted,
				catalog.ComponentRef{Identifier: "Oak Timber", Quantity: 8},
				catalog.ComponentRef{Identifier: "Processed Rabbit Hide", Quantity: 2}),
			craftableItem(9, "Magic Powder", catalog.KindCrafted,
				catalog.ComponentRef{Identifier: "Essence Crystal", Quantity: 1},
				catalog.ComponentRef{Identifier: "Snowdrop", Quantity: 1},
				catalog.ComponentRef{Identifier: "Daffodil", Quantity: 1}),
		},
		Meta: catalog.Meta{
			ArtisanSkills:   []string{"Crafting"},
			GatheringSkills: []string{"Woodcutting", "Hunting", "Mining", "Herbalism"},
		},
	}
}
