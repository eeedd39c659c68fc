package kvstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Entry struct {
	Key   string `gorm:"column:entry_key;primaryKey;size:255" json:"key"`
	Value string `gorm:"column:entry_value;type:text;not null"  json:"value"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

type Gorm struct {
	DB *gorm.DB
}

// NewGorm migrates the entries table and returns a store over db.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Gorm{DB: db}, nil
}

func (g *Gorm) Get(ctx context.Context, key string) (string, bool, error) {
	var e Entry
	if err := g.DB.WithContext(ctx).Where("entry_key = ?", key).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return e.Value, true, nil
}

func (g *Gorm) Set(ctx context.Context, key, value string) error {
	return g.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value"}),
	}).Create(&Entry{Key: key, Value: value}).Error
}

func (g *Gorm) Remove(ctx context.Context, key string) error {
	return g.DB.WithContext(ctx).Where("entry_key = ?", key).Delete(&Entry{}).Error
}
