package factory

import (
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/bill_due_repository"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/payment_repository"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/recurring_bill_repository"
	controllers "github.com/platahq/plata-backend/internal/presentation/controllers/bill_due"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGenerateMonthDuesController(db *mongo.Database) *controllers.GenerateMonthDuesController {
	return controllers.NewGenerateMonthDuesController(
		recurring_bill_repository.NewFindRecurringBillsMongoRepository(db),
		bill_due_repository.NewExistsBillDueForRangeMongoRepository(db),
		bill_due_repository.NewCreateBillDueMongoRepository(db),
		bill_due_repository.NewFindBillDuesByRangeMongoRepository(db),
	)
}

func MakeGetMonthDuesController(db *mongo.Database) *controllers.GetMonthDuesController {
	return controllers.NewGetMonthDuesController(
		bill_due_repository.NewFindBillDuesByRangeMongoRepository(db),
	)
}

func MakeCreateBillDueController(db *mongo.Database) *controllers.CreateBillDueController {
	return controllers.NewCreateBillDueController(
		bill_due_repository.NewCreateBillDueMongoRepository(db),
	)
}

func MakeUpdateBillDueController(db *mongo.Database) *controllers.UpdateBillDueController {
	return controllers.NewUpdateBillDueController(
		bill_due_repository.NewFindBillDueByIdMongoRepository(db),
		bill_due_repository.NewUpdateBillDueMongoRepository(db),
	)
}

func MakeDeleteBillDueController(db *mongo.Database) *controllers.DeleteBillDueController {
	return controllers.NewDeleteBillDueController(
		bill_due_repository.NewFindBillDueByIdMongoRepository(db),
		bill_due_repository.NewDeleteBillDueMongoRepository(db),
	)
}

func MakePayBillDueController(db *mongo.Database) *controllers.PayBillDueController {
	return controllers.NewPayBillDueController(
		bill_due_repository.NewPayBillDueMongoRepository(db),
	)
}

func MakeGetDuePaymentsController(db *mongo.Database) *controllers.GetDuePaymentsController {
	return controllers.NewGetDuePaymentsController(
		payment_repository.NewFindPaymentsByDueIdMongoRepository(db),
	)
}
