package infrastructure

import (
	"context"
	"encoding/json"
	"errors"

	appErrors "Piggyvault/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetaRepository guarda pares chave/valor de estado do cofre, como o
// ponteiro de meta ativa e os marcos já celebrados. Valores são JSON.
type MetaRepository struct {
	DB *gorm.DB
}

type metaDB struct {
	Key   string `gorm:"type:varchar(50);primaryKey"`
	Value string `gorm:"type:text;not null"`
}

func (metaDB) TableName() string { return "meta" }

func (r *MetaRepository) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	var row metaDB
	if err := r.DB.WithContext(ctx).Table("meta").Where("key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, appErrors.NewDatabaseError(err)
	}
	if err := json.Unmarshal([]byte(row.Value), out); err != nil {
		return false, appErrors.ErrInternalServer.WithError(err)
	}
	return true, nil
}

func (r *MetaRepository) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}
	row := metaDB{Key: key, Value: string(raw)}
	if err := r.DB.WithContext(ctx).Table("meta").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&row).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *MetaRepository) Delete(ctx context.Context, key string) error {
	if err := r.DB.WithContext(ctx).Table("meta").Where("key = ?", key).Delete(&metaDB{}).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
