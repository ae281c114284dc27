package handler

import (
	"net/http"
	"reflect"

	"bodegapos/internal/apierror"
	"bodegapos/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// statusFor maps a business failure kind to its HTTP status. Anything
// unclassified is treated as a bad request rather than a server fault so
// a misbehaving terminal cannot trip alerting.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindProductNotFound,
		domain.KindEmployeeNotFound,
		domain.KindCustomerNotFound,
		domain.KindCartNotFound,
		domain.KindSaleNotFound,
		domain.KindLineNotFound,
		domain.KindNoPausedSale:
		return http.StatusNotFound
	case domain.KindInsufficientStock:
		return http.StatusConflict
	case domain.KindValidationFailed,
		domain.KindInvoiceDataIncomplete,
		domain.KindInvalidPhoneFormat:
		return http.StatusUnprocessableEntity
	case domain.KindCommitFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// respondError writes the canonical error envelope for a service failure.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(domain.KindOf(err)), apierror.FromDomain(err))
}
