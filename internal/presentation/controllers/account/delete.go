package account

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteAccountController struct {
	FindAccountByIdRepository usecase.FindAccountByIdRepository
	DeleteAccountRepository   usecase.DeleteAccountRepository
}

func NewDeleteAccountController(
	findAccountById usecase.FindAccountByIdRepository,
	deleteAccount usecase.DeleteAccountRepository,
) *DeleteAccountController {
	return &DeleteAccountController{
		FindAccountByIdRepository: findAccountById,
		DeleteAccountRepository:   deleteAccount,
	}
}

func (c *DeleteAccountController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	accountId, err := primitive.ObjectIDFromHex(r.Req.PathValue("accountId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid account ID format",
		}, http.StatusBadRequest)
	}

	account, err := c.FindAccountByIdRepository.Find(accountId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding account",
		}, http.StatusInternalServerError)
	}

	if account == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "account not found",
		}, http.StatusNotFound)
	}

	if err := c.DeleteAccountRepository.Delete(accountId, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting account",
		}, http.StatusInternalServerError)
	}

	return &presentationProtocols.HttpResponse{
		StatusCode: http.StatusNoContent,
	}
}
