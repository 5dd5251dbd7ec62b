package repository

import (
	"sync"

	"certverify.io/entities"
	"certverify.io/infrastructure/database/connection/datastore"
	"certverify.io/infrastructure/database/repository/mongo"
)

var verificationLogOnce = sync.Once{}

var verificationLogRepository mongo.MongoRepository[entities.VerificationLog]

func VerificationLogRepo() *mongo.MongoRepository[entities.VerificationLog] {
	verificationLogOnce.Do(func() {
		verificationLogRepository = mongo.MongoRepository[entities.VerificationLog]{Model: datastore.VerificationLogModel}
	})
	return &verificationLogRepository
}
