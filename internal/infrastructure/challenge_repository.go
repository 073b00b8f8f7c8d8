package infrastructure

import (
	"context"
	"errors"
	"time"

	"Piggyvault/internal/domain/challenge"
	appErrors "Piggyvault/internal/errors"
	"Piggyvault/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ChallengeRepository struct {
	DB *gorm.DB
}

type challengeDB struct {
	Id            string  `gorm:"type:varchar(26);primaryKey"`
	TemplateId    string  `gorm:"type:varchar(50);index;not null"`
	Type          string  `gorm:"type:varchar(10);not null"`
	Title         string  `gorm:"type:varchar(100);not null"`
	Description   string  `gorm:"type:varchar(255)"`
	TargetAmount  float64 `gorm:"not null"`
	TargetCount   int     `gorm:"not null"`
	CurrentAmount float64 `gorm:"not null"`
	CurrentCount  int     `gorm:"not null"`
	StartDate     time.Time
	EndDate       time.Time
	Status        string `gorm:"type:varchar(10);index;not null"`
	CompletedAt   *time.Time
	Reward        string `gorm:"type:varchar(50)"`
	Badge         string `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
}

func (challengeDB) TableName() string { return "challenges" }

func toDomainChallenge(cdb *challengeDB) (*challenge.Challenge, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &challenge.Challenge{
		Id:            id,
		TemplateId:    cdb.TemplateId,
		Type:          challenge.Type(cdb.Type),
		Title:         cdb.Title,
		Description:   cdb.Description,
		TargetAmount:  cdb.TargetAmount,
		TargetCount:   cdb.TargetCount,
		CurrentAmount: cdb.CurrentAmount,
		CurrentCount:  cdb.CurrentCount,
		StartDate:     cdb.StartDate,
		EndDate:       cdb.EndDate,
		Status:        challenge.Status(cdb.Status),
		CompletedAt:   cdb.CompletedAt,
		Reward:        cdb.Reward,
		Badge:         cdb.Badge,
		CreatedAt:     cdb.CreatedAt,
	}, nil
}

func toDBChallenge(c *challenge.Challenge) *challengeDB {
	return &challengeDB{
		Id:            c.Id.String(),
		TemplateId:    c.TemplateId,
		Type:          string(c.Type),
		Title:         c.Title,
		Description:   c.Description,
		TargetAmount:  c.TargetAmount,
		TargetCount:   c.TargetCount,
		CurrentAmount: c.CurrentAmount,
		CurrentCount:  c.CurrentCount,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		Status:        string(c.Status),
		CompletedAt:   c.CompletedAt,
		Reward:        c.Reward,
		Badge:         c.Badge,
		CreatedAt:     c.CreatedAt,
	}
}

func (r *ChallengeRepository) Create(ctx context.Context, c *challenge.Challenge) error {
	cdb := toDBChallenge(c)
	if err := r.DB.WithContext(ctx).Table("challenges").Create(&cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ChallengeRepository) Update(ctx context.Context, c *challenge.Challenge) error {
	cdb := toDBChallenge(c)
	if err := r.DB.WithContext(ctx).Table("challenges").Where("id = ?", cdb.Id).Save(&cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ChallengeRepository) GetById(ctx context.Context, id ulid.ULID) (*challenge.Challenge, error) {
	var cdb challengeDB
	if err := r.DB.WithContext(ctx).Table("challenges").Where("id = ?", id.String()).First(&cdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrChallengeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainChallenge(&cdb)
}

func (r *ChallengeRepository) List(ctx context.Context) ([]*challenge.Challenge, error) {
	var rows []challengeDB
	if err := r.DB.WithContext(ctx).Table("challenges").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainChallenges(rows)
}

func (r *ChallengeRepository) ListByStatus(ctx context.Context, status challenge.Status) ([]*challenge.Challenge, error) {
	var rows []challengeDB
	if err := r.DB.WithContext(ctx).Table("challenges").
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainChallenges(rows)
}

func (r *ChallengeRepository) CountByStatus(ctx context.Context, status challenge.Status) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Table("challenges").
		Where("status = ?", string(status)).
		Count(&total).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func toDomainChallenges(rows []challengeDB) ([]*challenge.Challenge, error) {
	out := make([]*challenge.Challenge, 0, len(rows))
	for i := range rows {
		c, err := toDomainChallenge(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
