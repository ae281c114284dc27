package repository

import (
	"context"
	"errors"

	"bodegapos/internal/domain"
	"bodegapos/internal/model"

	"gorm.io/gorm"
)

type PausedSaleRepository interface {
	Create(ctx context.Context, p *model.PausedSale) error
	// FindLatest returns the most recently paused record. Multiple paused
	// sales may coexist; only the newest is ever resumed.
	FindLatest(ctx context.Context) (*model.PausedSale, error)
	Delete(ctx context.Context, id int) error
}

type pausedSaleRepo struct{ db *gorm.DB }

func NewPausedSaleRepository(db *gorm.DB) PausedSaleRepository { return &pausedSaleRepo{db: db} }

func (r *pausedSaleRepo) Create(ctx context.Context, p *model.PausedSale) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pausedSaleRepo) FindLatest(ctx context.Context) (*model.PausedSale, error) {
	var p model.PausedSale
	err := r.db.WithContext(ctx).Order("paused_at DESC, id DESC").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.E(domain.KindNoPausedSale, "no paused sale to resume")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pausedSaleRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.PausedSale{}, id).Error
}
