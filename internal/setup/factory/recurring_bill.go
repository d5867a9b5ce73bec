package factory

import (
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/account_repository"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/recurring_bill_repository"
	controllers "github.com/platahq/plata-backend/internal/presentation/controllers/recurring_bill"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateRecurringBillController(db *mongo.Database) *controllers.CreateRecurringBillController {
	return controllers.NewCreateRecurringBillController(
		recurring_bill_repository.NewCreateRecurringBillMongoRepository(db),
		account_repository.NewFindAccountByIdMongoRepository(db),
	)
}

func MakeGetRecurringBillsController(db *mongo.Database) *controllers.GetRecurringBillsController {
	return controllers.NewGetRecurringBillsController(
		recurring_bill_repository.NewFindRecurringBillsMongoRepository(db),
	)
}

func MakeUpdateRecurringBillController(db *mongo.Database) *controllers.UpdateRecurringBillController {
	return controllers.NewUpdateRecurringBillController(
		recurring_bill_repository.NewFindRecurringBillByIdMongoRepository(db),
		recurring_bill_repository.NewUpdateRecurringBillMongoRepository(db),
	)
}

func MakeDeleteRecurringBillController(db *mongo.Database) *controllers.DeleteRecurringBillController {
	return controllers.NewDeleteRecurringBillController(
		recurring_bill_repository.NewFindRecurringBillByIdMongoRepository(db),
		recurring_bill_repository.NewDeleteRecurringBillMongoRepository(db),
	)
}
