package repository

import (
	"context"
	"errors"

	"bodegapos/internal/domain"
	"bodegapos/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	// CreateTx inserts a customer inside an ongoing sale transaction —
	// used when the invoice negotiator registered a walk-in customer.
	CreateTx(tx *gorm.DB, c *model.Customer) error
	FindByPhone(ctx context.Context, phone string) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, phone string) error
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) CreateTx(tx *gorm.DB, c *model.Customer) error {
	return tx.Create(c).Error
}

func (r *customerRepo) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.E(domain.KindCustomerNotFound, "customer %s not found", phone)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Order("name ASC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Update(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *customerRepo) Delete(ctx context.Context, phone string) error {
	res := r.db.WithContext(ctx).Where("phone = ?", phone).Delete(&model.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.E(domain.KindCustomerNotFound, "customer %s not found", phone)
	}
	return nil
}
