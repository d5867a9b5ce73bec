package ledger

import (
	"errors"
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
)

// ledgerErrorResponse turns domain sentinels into the status the client
// should see, or falls back to a generic 500 for anything unexpected.
func ledgerErrorResponse(err error) *presentationProtocols.HttpResponse {
	switch {
	case errors.Is(err, models.ErrAccountNotFound):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "account not found",
		}, http.StatusNotFound)
	case errors.Is(err, models.ErrAccessDenied):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "account does not belong to the user",
		}, http.StatusForbidden)
	case errors.Is(err, models.ErrCurrencyMismatch):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "accounts hold different currencies, use an exchange instead",
		}, http.StatusConflict)
	case errors.Is(err, models.ErrSameCurrency):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "exchange requires accounts with different currencies",
		}, http.StatusConflict)
	case errors.Is(err, models.ErrInvalidAmount):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "amount must be positive",
		}, http.StatusBadRequest)
	case errors.Is(err, models.ErrInsufficientBalance):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "insufficient balance",
		}, http.StatusUnprocessableEntity)
	default:
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when writing the transaction",
		}, http.StatusInternalServerError)
	}
}
