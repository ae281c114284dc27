package service

import (
	"context"

	"bodegapos/internal/dto"
	"bodegapos/internal/model"
	"bodegapos/internal/repository"
)

// CategoryService manages product categories.
type CategoryService interface {
	Create(ctx context.Context, req dto.NamedRequest) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id int, req dto.NamedRequest) (*model.Category, error)
	Delete(ctx context.Context, id int) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req dto.NamedRequest) (*model.Category, error) {
	c := &model.Category{ID: req.ID, Name: req.Name}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, id int, req dto.NamedRequest) (*model.Category, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	c := &model.Category{ID: id, Name: req.Name}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// SupplierService manages product vendors.
type SupplierService interface {
	Create(ctx context.Context, req dto.SupplierRequest) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, id int, req dto.SupplierRequest) (*model.Supplier, error)
	Delete(ctx context.Context, id int) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, req dto.SupplierRequest) (*model.Supplier, error) {
	sup := &model.Supplier{ID: req.ID, Name: req.Name, Phone: req.Phone}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *supplierService) List(ctx context.Context) ([]model.Supplier, error) {
	return s.repo.List(ctx)
}

func (s *supplierService) Update(ctx context.Context, id int, req dto.SupplierRequest) (*model.Supplier, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	sup := &model.Supplier{ID: id, Name: req.Name, Phone: req.Phone}
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *supplierService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// UnitService manages units of measure.
type UnitService interface {
	Create(ctx context.Context, req dto.NamedRequest) (*model.Unit, error)
	List(ctx context.Context) ([]model.Unit, error)
	Update(ctx context.Context, id int, req dto.NamedRequest) (*model.Unit, error)
	Delete(ctx context.Context, id int) error
}

type unitService struct {
	repo repository.UnitRepository
}

func NewUnitService(repo repository.UnitRepository) UnitService {
	return &unitService{repo: repo}
}

func (s *unitService) Create(ctx context.Context, req dto.NamedRequest) (*model.Unit, error) {
	u := &model.Unit{ID: req.ID, Name: req.Name}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *unitService) List(ctx context.Context) ([]model.Unit, error) {
	return s.repo.List(ctx)
}

func (s *unitService) Update(ctx context.Context, id int, req dto.NamedRequest) (*model.Unit, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	u := &model.Unit{ID: id, Name: req.Name}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *unitService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
