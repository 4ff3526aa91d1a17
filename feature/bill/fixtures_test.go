package bill_test

import (
	"context"
	"testing"
	"time"

	"craft-calculator/core/catalog"

	"go.uber.org/zap"
)

// memStore is a minimal in-memory catalog store for resolver tests.
type memStore struct {
	snap *catalog.Snapshot
}

func (s *memStore) LoadAll(_ context.Context) (*catalog.Snapshot, error) {
	return s.snap, nil
}

func (s *memStore) Persist(_ context.Context, snap *catalog.Snapshot) error {
	s.snap = snap
	return nil
}

func newCache(t *testing.T, snap *catalog.Snapshot) *catalog.Cache {
	t.Helper()
	return catalog.NewCache(&memStore{snap: snap}, zap.NewNop(), time.Minute)
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
		ID:     id,
		Name:   name,
		Kind:   kind,
		Recipe: &catalog.Recipe{ArtisanSkill: "Crafting", Components: components},
	}
}

func component(identifier string, quantity int) catalog.ComponentRef {
	return catalog.ComponentRef{Identifier: identifier, Quantity: quantity}
}

// huntingSnapshot is the bow/powder catalog used across the feature
// tests.
func huntingSnapshot() *catalog.Snapshot {
	return &catalog.Snapshot{
		Raw: []catalog.Item{
			rawItem(1, "Oak Wood", "Woodcutting"),
			rawItem(2, "Rabbit Hide", "Hunting"),
			rawItem(6, "Essence Crystal", "Mining"),
			rawItem(7, "Snowdrop", "Herbalism"),
			rawItem(8, "Daffodil", "Herbalism"),
		},
		Intermediate: []catalog.Item{
			craftableItem(3, "Oak Timber", catalog.KindIntermediate, component("Oak Wood", 1)),
			craftableItem(4, "Processed Rabbit Hide", catalog.KindIntermediate, component("Rabbit Hide", 1)),
		},
		Crafted: []catalog.Item{
			craftableItem(5, "Novice Hunting Bow", catalog.KindCrafted,
				component("Oak Timber", 8), component("Processed Rabbit Hide", 2)),
			craftableItem(9, "Magic Powder", catalog.KindCrafted,
				component("Essence Crystal", 1), component("Snowdrop", 1), component("Daffodil", 1)),
		},
	}
}
