package repository

import (
	"context"
	"errors"
	"fmt"

	"bodegapos/internal/domain"
	"bodegapos/internal/model"

	"gorm.io/gorm"
)

// The three classification tables (categories, suppliers, units) share the
// same CRUD shape; each gets its own thin repository so services keep
// typed signatures.

type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id int) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id int) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, id int) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFoundOr(err, "category %d not found", id)
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) Update(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id int) error {
	return deleteByID(r.db.WithContext(ctx), &model.Category{}, id, "category %d not found")
}

type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id int) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) error
	Delete(ctx context.Context, id int) error
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) FindByID(ctx context.Context, id int) (*model.Supplier, error) {
	var s model.Supplier
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFoundOr(err, "supplier %d not found", id)
	}
	return &s, nil
}

func (r *supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).Order("id ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *supplierRepo) Delete(ctx context.Context, id int) error {
	return deleteByID(r.db.WithContext(ctx), &model.Supplier{}, id, "supplier %d not found")
}

type UnitRepository interface {
	Create(ctx context.Context, u *model.Unit) error
	FindByID(ctx context.Context, id int) (*model.Unit, error)
	List(ctx context.Context) ([]model.Unit, error)
	Update(ctx context.Context, u *model.Unit) error
	Delete(ctx context.Context, id int) error
}

type unitRepo struct{ db *gorm.DB }

func NewUnitRepository(db *gorm.DB) UnitRepository { return &unitRepo{db: db} }

func (r *unitRepo) Create(ctx context.Context, u *model.Unit) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *unitRepo) FindByID(ctx context.Context, id int) (*model.Unit, error) {
	var u model.Unit
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFoundOr(err, "unit %d not found", id)
	}
	return &u, nil
}

func (r *unitRepo) List(ctx context.Context) ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.WithContext(ctx).Order("id ASC").Find(&units).Error
	return units, err
}

func (r *unitRepo) Update(ctx context.Context, u *model.Unit) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *unitRepo) Delete(ctx context.Context, id int) error {
	return deleteByID(r.db.WithContext(ctx), &model.Unit{}, id, "unit %d not found")
}

func notFoundOr(err error, format string, id int) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.Error{Kind: domain.KindValidationFailed, Message: fmt.Sprintf(format, id)}
	}
	return err
}

func deleteByID(db *gorm.DB, m interface{}, id int, format string) error {
	res := db.Delete(m, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &domain.Error{Kind: domain.KindValidationFailed, Message: fmt.Sprintf(format, id)}
	}
	return nil
}
