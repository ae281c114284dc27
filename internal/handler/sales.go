package handler

import (
	"net/http"
	"strconv"

	"bodegapos/internal/apierror"
	"bodegapos/internal/dto"
	"bodegapos/internal/service"

	"github.com/gin-gonic/gin"
)

// SalesHandler serves read-only sale history.
type SalesHandler struct {
	sales service.SaleService
}

func NewSalesHandler(sales service.SaleService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

// List returns committed sales, optionally filtered to a single day
// with ?date=YYYY-MM-DD.
func (h *SalesHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query: "+err.Error()))
		return
	}
	resp, err := h.sales.ListSales(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SalesHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("sale id must be numeric"))
		return
	}
	detail, err := h.sales.GetSale(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
