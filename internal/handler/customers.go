package handler

import (
	"net/http"

	"bodegapos/internal/dto"
	"bodegapos/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomersHandler struct {
	svc service.CustomerService
}

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cust, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (h *CustomersHandler) Get(c *gin.Context) {
	cust, err := h.svc.Get(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomersHandler) List(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomersHandler) Update(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cust, err := h.svc.Update(c.Request.Context(), c.Param("phone"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomersHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("phone")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
