package database

import "certverify.io/infrastructure/database/connection"

func SetUpDatabase() {
	connection.ConnectToDatabase()
}

type BaseModel interface {
	ParseModel() any
}
