package infrastructure

import (
	"context"
	"errors"
	"time"

	"Piggyvault/internal/domain/account"
	appErrors "Piggyvault/internal/errors"
	"Piggyvault/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type AccountRepository struct {
	DB *gorm.DB
}

type accountDB struct {
	Id        string `gorm:"type:varchar(26);primaryKey"`
	UpiId     string `gorm:"type:varchar(100);not null"`
	Name      string `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
}

func (accountDB) TableName() string { return "accounts" }

func toDomainAccount(adb *accountDB) (*account.Account, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &account.Account{
		Id:        id,
		UpiId:     adb.UpiId,
		Name:      adb.Name,
		CreatedAt: adb.CreatedAt,
	}, nil
}

func toDBAccount(a *account.Account) *accountDB {
	return &accountDB{
		Id:        a.Id.String(),
		UpiId:     a.UpiId,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	adb := toDBAccount(a)
	if err := r.DB.WithContext(ctx).Table("accounts").Create(&adb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("accounts").Where("id = ?", id.String()).Delete(&accountDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) GetById(ctx context.Context, id ulid.ULID) (*account.Account, error) {
	var adb accountDB
	if err := r.DB.WithContext(ctx).Table("accounts").Where("id = ?", id.String()).First(&adb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrAccountNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainAccount(&adb)
}

func (r *AccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	var rows []accountDB
	if err := r.DB.WithContext(ctx).Table("accounts").Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*account.Account, 0, len(rows))
	for i := range rows {
		a, err := toDomainAccount(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Table("accounts").Count(&total).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}
