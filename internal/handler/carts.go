package handler

import (
	"net/http"

	"bodegapos/internal/domain"
	"bodegapos/internal/dto"
	"bodegapos/internal/service"

	"github.com/gin-gonic/gin"
)

// CartsHandler serves the sale-screen workflow: cart assembly, payment
// selection, checkout and pause/resume.
type CartsHandler struct {
	carts  service.CartService
	sales  service.SaleService
	pauses service.PauseService
}

func NewCartsHandler(carts service.CartService, sales service.SaleService, pauses service.PauseService) *CartsHandler {
	return &CartsHandler{carts: carts, sales: sales, pauses: pauses}
}

func (h *CartsHandler) Create(c *gin.Context) {
	snap := h.carts.CreateCart(c.Request.Context())
	c.JSON(http.StatusCreated, snap)
}

func (h *CartsHandler) Get(c *gin.Context) {
	snap, err := h.carts.GetCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *CartsHandler) Discard(c *gin.Context) {
	if err := h.carts.Discard(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartsHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	snap, err := h.carts.AddItem(c.Request.Context(), c.Param("id"), req.Code, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *CartsHandler) EditQuantity(c *gin.Context) {
	var req dto.EditQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	snap, err := h.carts.EditQuantity(c.Request.Context(), c.Param("id"), c.Param("code"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *CartsHandler) RemoveItem(c *gin.Context) {
	snap, err := h.carts.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *CartsHandler) BindCustomer(c *gin.Context) {
	var req dto.BindCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	snap, err := h.carts.BindCustomer(c.Request.Context(), c.Param("id"), req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *CartsHandler) BindEmployee(c *gin.Context) {
	var req dto.BindEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	snap, err := h.carts.BindEmployee(c.Request.Context(), c.Param("id"), req.EmployeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *CartsHandler) SetPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	snap, err := h.carts.SetPayment(c.Request.Context(), c.Param("id"), domain.PaymentMethod(req.Method), req.Tendered)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *CartsHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	receipt, err := h.sales.Checkout(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

func (h *CartsHandler) Pause(c *gin.Context) {
	if err := h.pauses.Pause(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paused": true})
}

// Resume restores the most recently paused cart into a fresh session.
func (h *CartsHandler) Resume(c *gin.Context) {
	snap, err := h.pauses.Resume(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
