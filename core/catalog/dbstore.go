package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// ItemRecord is the database row for a catalog item. Nested structures
// are serialized as JSON text so the schema stays identical across MySQL
// and SQLite.
type ItemRecord struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false"`
	Kind        string `gorm:"size:16;index"`
	Name        string `gorm:"size:255"`
	Description string
	Payload     string // requirements/recipe/gathering as JSON
}

// TableName overrides the GORM default.
func (ItemRecord) TableName() string {
	return "catalog_items"
}

// SkillRecord is one metadata skill entry (artisan or gathering).
type SkillRecord struct {
	ID       uint   `gorm:"primaryKey"`
	Category string `gorm:"size:16;index"`
	Name     string `gorm:"size:255"`
}

// TableName overrides the GORM default.
func (SkillRecord) TableName() string {
	return "catalog_skills"
}

const (
	skillCategoryArtisan   = "artisan"
	skillCategoryGathering = "gathering"
)

// itemPayload carries the item fields that live in the serialized column.
type itemPayload struct {
	Requirements *Requirements `json:"requirements,omitempty"`
	Recipe       *Recipe       `json:"recipe,omitempty"`
	Gathering    *Gathering    `json:"gathering,omitempty"`
}

// DBStore keeps the catalog in a relational database via GORM.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a database-backed catalog store and migrates its
// tables.
func NewDBStore(db *gorm.DB) (*DBStore, error) {
	if err := db.AutoMigrate(&ItemRecord{}, &SkillRecord{}); err != nil {
		return nil, fmt.Errorf("migrating catalog tables: %w", err)
	}
	return &DBStore{db: db}, nil
}

// LoadAll reads every item and skill row into one snapshot.
func (s *DBStore) LoadAll(ctx context.Context) (*Snapshot, error) {
	var records []ItemRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("loading catalog items: %w", err)
	}

	snap := &Snapshot{}
	for _, rec := range records {
		item, err := recordToItem(rec)
		if err != nil {
			return nil, err
		}
		snap.SetSlice(item.Kind, append(snap.Slice(item.Kind), item))
	}

	var skills []SkillRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("loading catalog skills: %w", err)
	}
	for _, sk := range skills {
		switch sk.Category {
		case skillCategoryArtisan:
			snap.Meta.ArtisanSkills = append(snap.Meta.ArtisanSkills, sk.Name)
		case skillCategoryGathering:
			snap.Meta.GatheringSkills = append(snap.Meta.GatheringSkills, sk.Name)
		}
	}
	return snap, nil
}

// Persist replaces the stored catalog with the snapshot in one
// transaction.
func (s *DBStore) Persist(ctx context.Context, snap *Snapshot) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ItemRecord{}).Error; err != nil {
			return fmt.Errorf("clearing catalog items: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&SkillRecord{}).Error; err != nil {
			return fmt.Errorf("clearing catalog skills: %w", err)
		}

		for _, item := range snap.All() {
			rec, err := itemToRecord(item)
			if err != nil {
				return err
			}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("persisting item %d: %w", item.ID, err)
			}
		}

		for _, name := range snap.Meta.ArtisanSkills {
			if err := tx.Create(&SkillRecord{Category: skillCategoryArtisan, Name: name}).Error; err != nil {
				return fmt.Errorf("persisting artisan skill %q: %w", name, err)
			}
		}
		for _, name := range snap.Meta.GatheringSkills {
			if err := tx.Create(&SkillRecord{Category: skillCategoryGathering, Name: name}).Error; err != nil {
				return fmt.Errorf("persisting gathering skill %q: %w", name, err)
			}
		}
		return nil
	})
}

func recordToItem(rec ItemRecord) (Item, error) {
	item := Item{
		ID:          rec.ID,
		Name:        rec.Name,
		Kind:        Kind(rec.Kind),
		Description: rec.Description,
	}
	if rec.Payload != "" {
		var p itemPayload
		if err := json.Unmarshal([]byte(rec.Payload), &p); err != nil {
			return Item{}, fmt.Errorf("decoding payload for item %d: %w", rec.ID, err)
		}
		item.Requirements = p.Requirements
		item.Recipe = p.Recipe
		item.Gathering = p.Gathering
	}
	return item, nil
}

func itemToRecord(item Item) (ItemRecord, error) {
	payload, err := json.Marshal(itemPayload{
		Requirements: item.Requirements,
		Recipe:       item.Recipe,
		Gathering:    item.Gathering,
	})
	if err != nil {
		return ItemRecord{}, fmt.Errorf("encoding payload for item %d: %w", item.ID, err)
	}
	return ItemRecord{
		ID:          item.ID,
		Kind:        string(item.Kind),
		Name:        item.Name,
		Description: item.Description,
		Payload:     string(payload),
	}, nil
}
