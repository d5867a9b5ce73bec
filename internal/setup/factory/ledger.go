package factory

import (
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/transaction_repository"
	controllers "github.com/platahq/plata-backend/internal/presentation/controllers/ledger"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeTransferFundsController(db *mongo.Database) *controllers.TransferFundsController {
	return controllers.NewTransferFundsController(
		transaction_repository.NewTransferFundsMongoRepository(db),
	)
}

func MakeExchangeFundsController(db *mongo.Database) *controllers.ExchangeFundsController {
	return controllers.NewExchangeFundsController(
		transaction_repository.NewExchangeFundsMongoRepository(db),
	)
}

func MakeRegisterIncomeController(db *mongo.Database) *controllers.RegisterIncomeController {
	return controllers.NewRegisterIncomeController(
		transaction_repository.NewRegisterIncomeMongoRepository(db),
	)
}

func MakeGetTransactionsController(db *mongo.Database) *controllers.GetTransactionsController {
	return controllers.NewGetTransactionsController(
		transaction_repository.NewFindTransactionsMongoRepository(db),
	)
}
