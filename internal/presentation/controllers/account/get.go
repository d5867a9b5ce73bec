package account

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetAccountsController struct {
	FindAccountsByUserIdRepository usecase.FindAccountsByUserIdRepository
}

func NewGetAccountsController(findAccountsByUserId usecase.FindAccountsByUserIdRepository) *GetAccountsController {
	return &GetAccountsController{
		FindAccountsByUserIdRepository: findAccountsByUserId,
	}
}

func (c *GetAccountsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	accounts, err := c.FindAccountsByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving accounts",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(accounts, http.StatusOK)
}
