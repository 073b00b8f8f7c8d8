package infrastructure

import (
	"context"
	"time"

	"Piggyvault/internal/domain/transaction"
	appErrors "Piggyvault/internal/errors"
	"Piggyvault/internal/pkg"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

type transactionDB struct {
	Id          string  `gorm:"type:varchar(26);primaryKey"`
	GoalId      string  `gorm:"type:varchar(26);index;not null"`
	AccountId   string  `gorm:"type:varchar(26);index;not null"`
	Type        string  `gorm:"type:varchar(10);not null"`
	Amount      float64 `gorm:"not null"`
	Description string  `gorm:"type:varchar(255)"`
	Date        time.Time
	CreatedAt   time.Time `gorm:"not null"`
}

func (transactionDB) TableName() string { return "transactions" }

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	gid, err := pkg.ParseULID(tdb.GoalId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	aid, err := pkg.ParseULID(tdb.AccountId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &transaction.Transaction{
		Id:          id,
		GoalId:      gid,
		AccountId:   aid,
		Type:        transaction.Types(tdb.Type),
		Amount:      tdb.Amount,
		Description: tdb.Description,
		Date:        tdb.Date,
		CreatedAt:   tdb.CreatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	return &transactionDB{
		Id:          t.Id.String(),
		GoalId:      t.GoalId.String(),
		AccountId:   t.AccountId.String(),
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	if err := r.DB.WithContext(ctx).Table("transactions").Create(&tdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *TransactionRepository) List(ctx context.Context) ([]*transaction.Transaction, error) {
	var rows []transactionDB
	if err := r.DB.WithContext(ctx).Table("transactions").Order("date DESC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		t, err := toDomainTransaction(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TransactionRepository) ListPaged(ctx context.Context, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).Table("transactions")
	out, total, err := pkg.Paginate[transaction.Transaction, transactionDB](query, pagination, "date DESC", toDomainTransaction)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return out, total, nil
}

func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Table("transactions").Count(&total).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}
