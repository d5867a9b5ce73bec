package factory

import (
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/institution_repository"
	controllers "github.com/platahq/plata-backend/internal/presentation/controllers/institution"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateInstitutionController(db *mongo.Database) *controllers.CreateInstitutionController {
	return controllers.NewCreateInstitutionController(
		institution_repository.NewCreateInstitutionMongoRepository(db),
		institution_repository.NewFindInstitutionsMongoRepository(db),
	)
}

func MakeGetInstitutionsController(db *mongo.Database) *controllers.GetInstitutionsController {
	return controllers.NewGetInstitutionsController(
		institution_repository.NewFindInstitutionsMongoRepository(db),
	)
}

func MakeUpdateInstitutionController(db *mongo.Database) *controllers.UpdateInstitutionController {
	return controllers.NewUpdateInstitutionController(
		institution_repository.NewUpdateInstitutionMongoRepository(db),
	)
}

func MakeDeleteInstitutionController(db *mongo.Database) *controllers.DeleteInstitutionController {
	return controllers.NewDeleteInstitutionController(
		institution_repository.NewFindInstitutionByIdMongoRepository(db),
		institution_repository.NewDeleteInstitutionCascadeMongoRepository(db),
	)
}
