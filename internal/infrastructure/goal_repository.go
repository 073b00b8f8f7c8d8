package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"Piggyvault/internal/domain/goal"
	appErrors "Piggyvault/internal/errors"
	"Piggyvault/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

// O plano de parcelas é um documento: vai serializado em JSON numa coluna
// de texto em vez de uma tabela própria. Parcelas não são consultadas
// individualmente e o plano inteiro sempre viaja junto com a meta.
type goalDB struct {
	Id            string  `gorm:"type:varchar(26);primaryKey"`
	Name          string  `gorm:"not null"`
	TargetAmount  float64 `gorm:"not null"`
	TotalSlots    int     `gorm:"not null"`
	Frequency     string  `gorm:"type:varchar(10);not null"`
	DurationValue int
	DurationUnit  string          `gorm:"type:varchar(10)"`
	Category      string          `gorm:"type:varchar(30)"`
	Status        goal.GoalStatus `gorm:"type:varchar(10);not null"`
	Plan          string          `gorm:"type:text;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (goalDB) TableName() string { return "goals" }

func toDomainGoal(gdb *goalDB) (*goal.Goal, error) {
	id, err := pkg.ParseULID(gdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	var plan []goal.SavingsBit
	if gdb.Plan != "" {
		if err := json.Unmarshal([]byte(gdb.Plan), &plan); err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
	}
	return &goal.Goal{
		Id:            id,
		Name:          gdb.Name,
		TargetAmount:  gdb.TargetAmount,
		TotalSlots:    gdb.TotalSlots,
		Frequency:     goal.Frequency(gdb.Frequency),
		DurationValue: gdb.DurationValue,
		DurationUnit:  gdb.DurationUnit,
		Category:      gdb.Category,
		Status:        gdb.Status,
		SavingsPlan:   plan,
		CreatedAt:     gdb.CreatedAt,
		UpdatedAt:     gdb.UpdatedAt,
	}, nil
}

func toDBGoal(g *goal.Goal) (*goalDB, error) {
	plan, err := json.Marshal(g.SavingsPlan)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &goalDB{
		Id:            g.Id.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		TotalSlots:    g.TotalSlots,
		Frequency:     string(g.Frequency),
		DurationValue: g.DurationValue,
		DurationUnit:  g.DurationUnit,
		Category:      g.Category,
		Status:        g.Status,
		Plan:          string(plan),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}, nil
}

func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	gdb, err := toDBGoal(g)
	if err != nil {
		return err
	}
	if err := r.DB.WithContext(ctx).Table("goals").Create(&gdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	gdb, err := toDBGoal(g)
	if err != nil {
		return err
	}
	if err := r.DB.WithContext(ctx).Table("goals").Where("id = ?", gdb.Id).Updates(&gdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("goals").Where("id = ?", id.String()).Delete(&goalDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) GetById(ctx context.Context, id ulid.ULID) (*goal.Goal, error) {
	var gdb goalDB
	if err := r.DB.WithContext(ctx).Table("goals").Where("id = ?", id.String()).First(&gdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainGoal(&gdb)
}

func (r *GoalRepository) List(ctx context.Context) ([]*goal.Goal, error) {
	var rows []goalDB
	if err := r.DB.WithContext(ctx).Table("goals").Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*goal.Goal, 0, len(rows))
	for i := range rows {
		g, err := toDomainGoal(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}
