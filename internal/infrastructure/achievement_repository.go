package infrastructure

import (
	"context"
	"time"

	"Piggyvault/internal/domain/achievement"
	appErrors "Piggyvault/internal/errors"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

type achievementDB struct {
	Id         string    `gorm:"type:varchar(50);primaryKey"`
	UnlockedAt time.Time `gorm:"not null"`
}

func (achievementDB) TableName() string { return "achievements" }

func (r *AchievementRepository) Create(ctx context.Context, u *achievement.Unlock) error {
	adb := &achievementDB{Id: u.Id, UnlockedAt: u.UnlockedAt}
	if err := r.DB.WithContext(ctx).Table("achievements").Create(&adb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *AchievementRepository) List(ctx context.Context) ([]*achievement.Unlock, error) {
	var rows []achievementDB
	if err := r.DB.WithContext(ctx).Table("achievements").Order("unlocked_at ASC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*achievement.Unlock, 0, len(rows))
	for i := range rows {
		out = append(out, &achievement.Unlock{Id: rows[i].Id, UnlockedAt: rows[i].UnlockedAt})
	}
	return out, nil
}
