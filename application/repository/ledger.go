package repository

import (
	"sync"

	"certverify.io/entities"
	"certverify.io/infrastructure/database/connection/datastore"
	"certverify.io/infrastructure/database/repository/mongo"
)

var ledgerOnce = sync.Once{}

var ledgerRepository mongo.MongoRepository[entities.LedgerEntry]

func LedgerRepo() *mongo.MongoRepository[entities.LedgerEntry] {
	ledgerOnce.Do(func() {
		ledgerRepository = mongo.MongoRepository[entities.LedgerEntry]{Model: datastore.LedgerModel}
	})
	return &ledgerRepository
}
