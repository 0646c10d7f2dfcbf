package kv

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learnflow/models"
)

// Gorm persists blobs to the cart_snapshots table
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Get(key string) ([]byte, error) {
	var snapshot models.CartSnapshot
	if err := g.db.Where("key = ?", key).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoValue
		}
		return nil, err
	}
	return []byte(snapshot.Value), nil
}

func (g *Gorm) Put(key string, value []byte) error {
	snapshot := models.CartSnapshot{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snapshot).Error
}

func (g *Gorm) Delete(key string) error {
	return g.db.Where("key = ?", key).Delete(&models.CartSnapshot{}).Error
}
