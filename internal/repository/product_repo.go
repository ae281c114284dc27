package repository

import (
	"context"
	"errors"

	"bodegapos/internal/domain"
	"bodegapos/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByCode(ctx context.Context, code string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, code string) error

	// DecrementStockTx subtracts quantity inside a sale transaction. The
	// update is guarded (stock >= quantity); a miss means the live stock
	// no longer covers the sale and aborts the caller's transaction.
	DecrementStockTx(tx *gorm.DB, code string, quantity int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByCode(ctx context.Context, code string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.E(domain.KindProductNotFound, "product %s not found", code)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Supplier").Preload("Unit").
		Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).Where("code = ?", code).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.E(domain.KindProductNotFound, "product %s not found", code)
	}
	return nil
}

func (r *productRepo) DecrementStockTx(tx *gorm.DB, code string, quantity int) error {
	res := tx.Model(&model.Product{}).
		Where("code = ? AND stock >= ?", code, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Re-read inside the tx so the error reports the live value.
		available := 0
		var p model.Product
		if err := tx.Where("code = ?", code).First(&p).Error; err == nil {
			available = p.Stock
		}
		return domain.NewInsufficientStock(code, available, quantity)
	}
	return nil
}

func (r *productRepo) DB() *gorm.DB { return r.db }
