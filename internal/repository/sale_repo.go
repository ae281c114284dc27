package repository

import (
	"context"
	"errors"
	"time"

	"bodegapos/internal/domain"
	"bodegapos/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	// NextSaleID allocates max(id)+1 over existing sales. The read runs
	// inside the commit transaction; isolation against concurrent commits
	// is delegated to the backing store.
	NextSaleID(ctx context.Context, tx *gorm.DB) (int, error)
	// CreateTx inserts the sale header together with its items and, when
	// present, its invoice.
	CreateTx(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id int) (*model.Sale, error)
	// ListByDate returns sales for one calendar day, newest first. A zero
	// time means today.
	ListByDate(ctx context.Context, day time.Time) ([]model.Sale, error)
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) NextSaleID(ctx context.Context, tx *gorm.DB) (int, error) {
	var next int
	err := tx.WithContext(ctx).Raw("SELECT COALESCE(MAX(id), 0) + 1 FROM sales").Scan(&next).Error
	return next, err
}

func (r *saleRepo) CreateTx(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	return tx.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id int) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items.Product").Preload("Invoice").Preload("Employee").
		First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.E(domain.KindSaleNotFound, "sale %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) ListByDate(ctx context.Context, day time.Time) ([]model.Sale, error) {
	if day.IsZero() {
		day = time.Now()
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items.Product").Preload("Invoice").Preload("Employee").
		Where("date >= ? AND date < ?", start, end).
		Order("id DESC").
		Find(&sales).Error
	return sales, err
}
