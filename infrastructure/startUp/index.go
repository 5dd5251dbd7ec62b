package startup

import (
	"certverify.io/infrastructure/biometric"
	"certverify.io/infrastructure/database"
	"certverify.io/infrastructure/database/connection/datastore"
	fileupload "certverify.io/infrastructure/file_upload"
	"certverify.io/infrastructure/logger"
	messagequeue "certverify.io/infrastructure/message_queue"
)

// Used to start services such as loggers, databases, queues, etc.
func StartServices() {
	logger.InitializeLogger()
	database.SetUpDatabase()
	fileupload.InitialiseFileUploader()
	biometric.InitialiseBiometricService()
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	datastore.CleanUp()
	messagequeue.TaskQueue.Shutdown()
	logger.Sync()
}
