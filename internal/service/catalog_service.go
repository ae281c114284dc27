package service

import (
	"context"

	"bodegapos/internal/dto"
	"bodegapos/internal/model"
	"bodegapos/internal/repository"
)

// The catalog services are the plain data-entry surface behind the
// per-entity screens. They stay thin: request → model → repository, with
// referential checks where the legacy schema expects them.

// ProductService defines business operations for the article catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.ProductRequest) (*model.Product, error)
	Get(ctx context.Context, code string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, code string, req dto.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, code string) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	unitRepo     repository.UnitRepository
}

func NewProductService(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	unitRepo repository.UnitRepository,
) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo, unitRepo: unitRepo}
}

func (s *productService) checkReferences(ctx context.Context, req dto.ProductRequest) error {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return err
	}
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return err
	}
	if _, err := s.unitRepo.FindByID(ctx, req.UnitID); err != nil {
		return err
	}
	return nil
}

func productFromRequest(req dto.ProductRequest) *model.Product {
	return &model.Product{
		Code:         req.Code,
		Name:         req.Name,
		SalePrice:    req.SalePrice,
		Cost:         req.Cost,
		Stock:        req.Stock,
		ReorderPoint: req.ReorderPoint,
		CategoryID:   req.CategoryID,
		SupplierID:   req.SupplierID,
		UnitID:       req.UnitID,
	}
}

func (s *productService) Create(ctx context.Context, req dto.ProductRequest) (*model.Product, error) {
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	p := productFromRequest(req)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Get(ctx context.Context, code string) (*model.Product, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

func (s *productService) Update(ctx context.Context, code string, req dto.ProductRequest) (*model.Product, error) {
	if _, err := s.repo.FindByCode(ctx, code); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	p := productFromRequest(req)
	p.Code = code
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}

// CustomerService manages registered customers.
type CustomerService interface {
	Create(ctx context.Context, req dto.CustomerRequest) (*model.Customer, error)
	Get(ctx context.Context, phone string) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, phone string, req dto.CustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, phone string) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func customerFromRequest(req dto.CustomerRequest) *model.Customer {
	return &model.Customer{
		Phone:   req.Phone,
		Name:    req.Name,
		Address: req.Address,
		TaxID:   req.TaxID,
		Email:   req.Email,
	}
}

func (s *customerService) Create(ctx context.Context, req dto.CustomerRequest) (*model.Customer, error) {
	c := customerFromRequest(req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) Get(ctx context.Context, phone string) (*model.Customer, error) {
	return s.repo.FindByPhone(ctx, phone)
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.repo.List(ctx)
}

func (s *customerService) Update(ctx context.Context, phone string, req dto.CustomerRequest) (*model.Customer, error) {
	if _, err := s.repo.FindByPhone(ctx, phone); err != nil {
		return nil, err
	}
	c := customerFromRequest(req)
	c.Phone = phone
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) Delete(ctx context.Context, phone string) error {
	return s.repo.Delete(ctx, phone)
}

// EmployeeService manages store workers.
type EmployeeService interface {
	Create(ctx context.Context, req dto.EmployeeRequest) (*model.Employee, error)
	Get(ctx context.Context, id int) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, id int, req dto.EmployeeRequest) (*model.Employee, error)
	Delete(ctx context.Context, id int) error
}

type employeeService struct {
	repo repository.EmployeeRepository
}

func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) Create(ctx context.Context, req dto.EmployeeRequest) (*model.Employee, error) {
	e := &model.Employee{ID: req.ID, Name: req.Name, Gender: req.Gender, Role: req.Role}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *employeeService) Get(ctx context.Context, id int) (*model.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.repo.List(ctx)
}

func (s *employeeService) Update(ctx context.Context, id int, req dto.EmployeeRequest) (*model.Employee, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	e := &model.Employee{ID: id, Name: req.Name, Gender: req.Gender, Role: req.Role}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *employeeService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
