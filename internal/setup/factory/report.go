package factory

import (
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/account_repository"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/bill_due_repository"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/institution_repository"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/transaction_repository"
	controllers "github.com/platahq/plata-backend/internal/presentation/controllers/report"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetMonthSummaryController(db *mongo.Database, redisURL string) *controllers.GetMonthSummaryController {
	return controllers.NewGetMonthSummaryController(
		institution_repository.NewFindInstitutionsMongoRepository(db),
		account_repository.NewFindAccountsMongoRepository(db),
		transaction_repository.NewFindTransactionsMongoRepository(db),
		bill_due_repository.NewFindBillDuesByRangeMongoRepository(db),
		redisURL,
	)
}

func MakeExportMonthController(db *mongo.Database, redisURL string) *controllers.ExportMonthController {
	return controllers.NewExportMonthController(
		transaction_repository.NewFindTransactionsMongoRepository(db),
		bill_due_repository.NewFindBillDuesByRangeMongoRepository(db),
		redisURL,
	)
}
