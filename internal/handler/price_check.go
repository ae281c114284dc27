package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"bodegapos/internal/dto"
	"bodegapos/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const priceCacheTTL = 4 * time.Hour

// PriceCheckHandler serves the kiosk price lookup. Read-only: it never
// touches carts or stock.
type PriceCheckHandler struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewPriceCheckHandler(repo repository.ProductRepository, rdb *redis.Client) *PriceCheckHandler {
	return &PriceCheckHandler{repo: repo, rdb: rdb}
}

func (h *PriceCheckHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	ctx := c.Request.Context()
	cacheKey := "price:" + code

	// Try Redis first; a corrupt entry falls through to the DB.
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PriceCheckResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	product, err := h.repo.FindByCode(ctx, code)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.PriceCheckResponse{
		Code:      product.Code,
		Name:      product.Name,
		SalePrice: product.SalePrice,
		Stock:     product.Stock,
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
