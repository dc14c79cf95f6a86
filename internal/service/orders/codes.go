package orders

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

const (
	msgOrderNotFound   = "Order does not exist"
	msgStatusNotFound  = "Order status does not exist"
	msgDuplicateStatus = "Duplicate order status"
	msgUnavailable     = "Product service unavailable"
	msgInternal        = "Internal server error"
	msgSuccess         = "Success"
)

// Code сопоставляет результат операции с кодом ответа и сообщением для клиента.
func Code(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, msgSuccess
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, msgOrderNotFound
	case errors.Is(err, domain.ErrStatusNotFound):
		return http.StatusBadRequest, msgStatusNotFound
	case errors.Is(err, domain.ErrDuplicateStatus):
		return http.StatusConflict, msgDuplicateStatus
	case errors.Is(err, domain.ErrDuplicateProductID),
		errors.Is(err, domain.ErrStatusTransition):
		return http.StatusConflict, capitalize(err.Error())
	case errors.Is(err, domain.ErrFulfillmentRejected),
		errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrProductNotFound):
		return http.StatusBadRequest, capitalize(err.Error())
	case errors.Is(err, domain.ErrProductUnavailable):
		return http.StatusServiceUnavailable, msgUnavailable
	case errors.Is(err, domain.ErrItemDeleteFailed):
		return http.StatusInternalServerError, capitalize(domain.ErrItemDeleteFailed.Error())
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func statusOf(err error) int {
	code, _ := Code(err)
	return code
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
