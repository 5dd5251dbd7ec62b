package connection

import (
	"certverify.io/infrastructure/database/connection/cache"
	"certverify.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectToDatabase()
	cache.ConnectToCache()
}
