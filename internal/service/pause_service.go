package service

import (
	"context"
	"encoding/json"
	"time"

	"bodegapos/internal/cart"
	"bodegapos/internal/domain"
	"bodegapos/internal/dto"
	"bodegapos/internal/model"
	"bodegapos/internal/repository"

	"github.com/rs/zerolog/log"
)

// PauseService suspends and restores in-progress carts. A paused cart is
// serialized to a durable row; resume always takes the newest row,
// restores it verbatim, and deletes it (exactly-once). Stock is not
// re-validated on resume — the next checkout attempt re-checks it.
type PauseService interface {
	Pause(ctx context.Context, cartID string) error
	Resume(ctx context.Context) (*dto.CartSnapshot, error)
}

type pauseService struct {
	manager *cart.Manager
	repo    repository.PausedSaleRepository
}

func NewPauseService(manager *cart.Manager, repo repository.PausedSaleRepository) PauseService {
	return &pauseService{manager: manager, repo: repo}
}

func (s *pauseService) Pause(ctx context.Context, cartID string) error {
	c, err := s.manager.Get(cartID)
	if err != nil {
		return err
	}
	if c.Empty() {
		return domain.E(domain.KindEmptyCart, "no line items to pause")
	}

	itemsJSON, err := json.Marshal(c.Items)
	if err != nil {
		return err
	}
	record := model.PausedSale{
		ItemsJSON:  itemsJSON,
		EmployeeID: c.EmployeeID,
		PausedAt:   time.Now(),
	}
	if c.Customer != nil {
		phone := c.Customer.Phone
		record.CustomerPhone = &phone
		customerJSON, err := json.Marshal(c.Customer)
		if err != nil {
			return err
		}
		record.CustomerJSON = customerJSON
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		return err
	}
	log.Info().Str("cart_id", cartID).Int("lines", len(c.Items)).Msg("sale paused")
	c.Reset()
	return nil
}

func (s *pauseService) Resume(ctx context.Context) (*dto.CartSnapshot, error) {
	record, err := s.repo.FindLatest(ctx)
	if err != nil {
		return nil, err
	}

	c := s.manager.Create()
	if err := json.Unmarshal(record.ItemsJSON, &c.Items); err != nil {
		s.manager.Discard(c.ID)
		return nil, err
	}
	if len(record.CustomerJSON) > 0 {
		var customer model.Customer
		if err := json.Unmarshal(record.CustomerJSON, &customer); err != nil {
			s.manager.Discard(c.ID)
			return nil, err
		}
		c.Customer = &customer
	}
	c.EmployeeID = record.EmployeeID

	// Delete after a successful restore so a failed resume keeps the row.
	if err := s.repo.Delete(ctx, record.ID); err != nil {
		s.manager.Discard(c.ID)
		return nil, err
	}
	log.Info().Int("pause_id", record.ID).Str("cart_id", c.ID).Msg("sale resumed")

	snap := snapshotOf(c)
	return &snap, nil
}
