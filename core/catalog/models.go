package catalog

import "fmt"

// Kind identifies which catalog slice an item belongs to.
type Kind string

const (
	KindRaw          Kind = "raw"
	KindIntermediate Kind = "intermediate"
	KindCrafted      Kind = "crafted"
)

// Kinds returns all catalog kinds in slice order.
func Kinds() []Kind {
	return []Kind{KindRaw, KindIntermediate, KindCrafted}
}

// Valid reports whether k is a known catalog kind.
func (k Kind) Valid() bool {
	switch k {
	case KindRaw, KindIntermediate, KindCrafted:
		return true
	default:
		return false
	}
}

// ParseKind converts a path or query segment into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown kind %q", ErrValidation, s)
	}
	return k, nil
}

// Requirements holds the levels a player needs before using an item.
type Requirements struct {
	PlayerLevel  int `json:"player_level,omitempty"`
	ArtisanLevel int `json:"artisan_level,omitempty"`
}

// ComponentRef is one line inside a recipe. Identifier is a decimal item
// id or an item name; Quantity is the per-unit amount and must be positive.
type ComponentRef struct {
	Identifier string `json:"identifier"`
	Quantity   int    `json:"quantity"`
}

// Recipe describes how an intermediate or crafted item is made.
type Recipe struct {
	ArtisanSkill string         `json:"artisan_skill,omitempty"`
	WorkStation  string         `json:"work_station,omitempty"`
	Components   []ComponentRef `json:"components"`
}

// Gathering describes how a raw item is collected.
type Gathering struct {
	Skill      string `json:"skill"`
	SkillLevel int    `json:"skill_level,omitempty"`
}

// Item is one catalog entry. Kind is not part of the wire format; it is
// implied by which top-level array the item sits in and assigned on load.
type Item struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Kind         Kind          `json:"-"`
	Description  string        `json:"description,omitempty"`
	Requirements *Requirements `json:"requirements,omitempty"`
	Recipe       *Recipe       `json:"recipe,omitempty"`
	Gathering    *Gathering    `json:"gathering,omitempty"`
}

// Expandable reports whether resolution may recurse into this item.
// Only intermediate and crafted items with at least one recipe component
// qualify; everything else is a terminal leaf.
func (i *Item) Expandable() bool {
	if i.Kind != KindIntermediate && i.Kind != KindCrafted {
		return false
	}
	return i.Recipe != nil && len(i.Recipe.Components) > 0
}

// Meta carries the skill lists shipped alongside the catalog slices.
// The JSON keys match the interchange format.
type Meta struct {
	ArtisanSkills   []string `json:"artisan_levels"`
	GatheringSkills []string `json:"gathering_skills"`
}

// File is the on-disk/interchange shape of a full catalog document.
type File struct {
	RawComponents       []Item   `json:"raw_components"`
	IntermediateRecipes []Item   `json:"intermediate_recipes"`
	CraftedItems        []Item   `json:"crafted_items"`
	ArtisanLevels       []string `json:"artisan_levels"`
	GatheringSkills     []string `json:"gathering_skills"`
}

// Snapshot is one in-memory view of the whole catalog.
type Snapshot struct {
	Raw          []Item
	Intermediate []Item
	Crafted      []Item
	Meta         Meta
}

// Slice returns the items of one kind. The returned slice is the
// snapshot's backing slice; callers must not mutate it.
func (s *Snapshot) Slice(kind Kind) []Item {
	switch kind {
	case KindRaw:
		return s.Raw
	case KindIntermediate:
		return s.Intermediate
	case KindCrafted:
		return s.Crafted
	default:
		return nil
	}
}

// SetSlice replaces the items of one kind.
func (s *Snapshot) SetSlice(kind Kind, items []Item) {
	switch kind {
	case KindRaw:
		s.Raw = items
	case KindIntermediate:
		s.Intermediate = items
	case KindCrafted:
		s.Crafted = items
	}
}

// All concatenates the three slices in kind order.
func (s *Snapshot) All() []Item {
	out := make([]Item, 0, len(s.Raw)+len(s.Intermediate)+len(s.Crafted))
	out = append(out, s.Raw...)
	out = append(out, s.Intermediate...)
	out = append(out, s.Crafted...)
	return out
}

// ToFile converts the snapshot into the interchange shape.
func (s *Snapshot) ToFile() *File {
	return &File{
		RawComponents:       s.Raw,
		IntermediateRecipes: s.Intermediate,
		CraftedItems:        s.Crafted,
		ArtisanLevels:       s.Meta.ArtisanSkills,
		GatheringSkills:     s.Meta.GatheringSkills,
	}
}

// FromFile builds a snapshot from an interchange document, stamping each
// item with the kind implied by its array.
func FromFile(f *File) *Snapshot {
	snap := &Snapshot{
		Raw:          stampKind(f.RawComponents, KindRaw),
		Intermediate: stampKind(f.IntermediateRecipes, KindIntermediate),
		Crafted:      stampKind(f.CraftedItems, KindCrafted),
		Meta: Meta{
			ArtisanSkills:   f.ArtisanLevels,
			GatheringSkills: f.GatheringSkills,
		},
	}
	return snap
}

func stampKind(items []Item, kind Kind) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		out[i].Kind = kind
	}
	return out
}
