package mongo

import (
	"context"
	"errors"
	"time"

	"certverify.io/infrastructure/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrCollectionUnavailable = errors.New("database collection unavailable")

const queryTimeout = 15 * time.Second

func (repo *MongoRepository[T]) ready() error {
	if repo.Model == nil {
		logger.Error("mongo collection not initialised")
		return ErrCollectionUnavailable
	}
	return nil
}

func (repo *MongoRepository[T]) CreateOne(ctx context.Context, payload T) (*T, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}
	c, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	parsed := payload.ParseModel().(T)
	if _, err := repo.Model.InsertOne(c, parsed); err != nil {
		logger.Error("mongo error occured while running CreateOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "collection",
			Data: repo.Model.Name(),
		})
		return nil, err
	}
	return &parsed, nil
}

// FindOneByFilter returns nil, nil when no document matches.
func (repo *MongoRepository[T]) FindOneByFilter(ctx context.Context, filter map[string]interface{}, opts ...*options.FindOneOptions) (*T, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}
	c, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var result T
	err := repo.Model.FindOne(c, filter, opts...).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error("mongo error occured while running FindOneByFilter", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "filter",
			Data: filter,
		})
		return nil, err
	}
	return &result, nil
}

func (repo *MongoRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return repo.FindOneByFilter(ctx, map[string]interface{}{"_id": id})
}

func (repo *MongoRepository[T]) FindMany(ctx context.Context, filter map[string]interface{}, opts *FindOptions) (*[]T, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}
	c, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	findOpts := options.Find()
	if opts != nil {
		if opts.Projection != nil {
			findOpts.SetProjection(*opts.Projection)
		}
		if opts.Sort != nil {
			findOpts.SetSort(*opts.Sort)
		}
		if opts.Skip != nil {
			findOpts.SetSkip(*opts.Skip)
		}
		if opts.Limit != nil {
			findOpts.SetLimit(*opts.Limit)
		}
	}

	cursor, err := repo.Model.Find(c, filter, findOpts)
	if err != nil {
		logger.Error("mongo error occured while running FindMany", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "filter",
			Data: filter,
		})
		return nil, err
	}
	result := []T{}
	if err := cursor.All(c, &result); err != nil {
		logger.Error("mongo error occured while decoding FindMany", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	return &result, nil
}

func (repo *MongoRepository[T]) CountDocs(ctx context.Context, filter map[string]interface{}) (int64, error) {
	if err := repo.ready(); err != nil {
		return 0, err
	}
	c, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	count, err := repo.Model.CountDocuments(c, filter)
	if err != nil {
		logger.Error("mongo error occured while running CountDocs", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return 0, err
	}
	return count, nil
}

// UpdatePartialByFilter sets the given fields and stamps updatedAt.
func (repo *MongoRepository[T]) UpdatePartialByFilter(ctx context.Context, filter map[string]interface{}, payload map[string]interface{}) (int64, error) {
	if err := repo.ready(); err != nil {
		return 0, err
	}
	c, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{}
	for k, v := range payload {
		update[k] = v
	}
	update["updatedAt"] = time.Now()

	result, err := repo.Model.UpdateOne(c, filter, bson.M{"$set": update})
	if err != nil {
		logger.Error("mongo error occured while running UpdatePartialByFilter", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "filter",
			Data: filter,
		})
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (repo *MongoRepository[T]) DeleteOne(ctx context.Context, filter map[string]interface{}) (int64, error) {
	if err := repo.ready(); err != nil {
		return 0, err
	}
	c, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := repo.Model.DeleteOne(c, filter)
	if err != nil {
		logger.Error("mongo error occured while running DeleteOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return 0, err
	}
	return result.DeletedCount, nil
}
