package factory

import (
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/account_repository"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/institution_repository"
	controllers "github.com/platahq/plata-backend/internal/presentation/controllers/account"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateAccountController(db *mongo.Database) *controllers.CreateAccountController {
	return controllers.NewCreateAccountController(
		account_repository.NewCreateAccountMongoRepository(db),
		institution_repository.NewFindInstitutionByIdMongoRepository(db),
	)
}

func MakeGetAccountsController(db *mongo.Database) *controllers.GetAccountsController {
	return controllers.NewGetAccountsController(
		account_repository.NewFindAccountsMongoRepository(db),
	)
}

func MakeUpdateAccountController(db *mongo.Database) *controllers.UpdateAccountController {
	return controllers.NewUpdateAccountController(
		account_repository.NewUpdateAccountMongoRepository(db),
	)
}

func MakeDeleteAccountController(db *mongo.Database) *controllers.DeleteAccountController {
	return controllers.NewDeleteAccountController(
		account_repository.NewFindAccountByIdMongoRepository(db),
		account_repository.NewDeleteAccountMongoRepository(db),
	)
}
