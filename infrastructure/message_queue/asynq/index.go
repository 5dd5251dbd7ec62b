package asynq

import (
	"errors"
	"os"
	"time"

	"certverify.io/infrastructure/logger"
	queue_tasks "certverify.io/infrastructure/message_queue/tasks"
	mq_types "certverify.io/infrastructure/message_queue/types"
	"github.com/hibiken/asynq"
)

type AsynqBroker struct {
	Client *asynq.Client
	server *asynq.Server
}

func redisConnOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

// Start connects the client and blocks serving queued tasks.
func (aq *AsynqBroker) Start() {
	aq.Client = asynq.NewClient(redisConnOpt())

	aq.server = asynq.NewServer(
		redisConnOpt(),
		asynq.Config{
			Concurrency: 20,
			Queues: map[string]int{
				string(mq_types.High):   7,
				string(mq_types.Medium): 2,
				string(mq_types.Low):    1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(string(queue_tasks.HandleEmailDeliveryTaskName), queue_tasks.HandleEmailDeliveryTask)

	if err := aq.server.Run(mux); err != nil {
		logger.Error("asynq server stopped", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}

func (aq *AsynqBroker) Enqueue(task mq_types.QueueTask) error {
	if aq.Client == nil {
		return errors.New("task queue not started")
	}
	if task.TimeOut == 0 {
		task.TimeOut = 60
	}
	if task.MaxRetry == 0 {
		task.MaxRetry = 10
	}
	if task.Priority == "" {
		task.Priority = mq_types.Medium
	}
	_, err := aq.Client.Enqueue(asynq.NewTask(string(task.Name), task.Payload),
		asynq.ProcessIn(task.ProcessIn*time.Second),
		asynq.MaxRetry(task.MaxRetry),
		asynq.Timeout(time.Second*task.TimeOut),
		asynq.Queue(string(task.Priority)))
	if err != nil {
		logger.Error("could not enqueue task", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "task",
			Data: task.Name,
		})
	}
	return err
}

func (aq *AsynqBroker) Shutdown() {
	if aq.server != nil {
		aq.server.Shutdown()
	}
	if aq.Client != nil {
		aq.Client.Close()
	}
}
