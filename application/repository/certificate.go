package repository

import (
	"sync"

	"certverify.io/entities"
	"certverify.io/infrastructure/database/connection/datastore"
	"certverify.io/infrastructure/database/repository/mongo"
)

var certificateOnce = sync.Once{}

var certificateRepository mongo.MongoRepository[entities.Certificate]

func CertificateRepo() *mongo.MongoRepository[entities.Certificate] {
	certificateOnce.Do(func() {
		certificateRepository = mongo.MongoRepository[entities.Certificate]{Model: datastore.CertificateModel}
	})
	return &certificateRepository
}
