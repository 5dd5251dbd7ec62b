package ledger

import (
	"context"
	"sync"

	"certverify.io/application/constants"
	"certverify.io/application/repository"
	"certverify.io/entities"
	"certverify.io/infrastructure/database/repository/cache"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoEntryStore struct{}

func (mongoEntryStore) Latest(ctx context.Context) (*entities.LedgerEntry, error) {
	return repository.LedgerRepo().FindOneByFilter(ctx, map[string]interface{}{},
		options.FindOne().SetSort(bson.D{{Key: "blockNumber", Value: -1}}))
}

func (mongoEntryStore) Save(ctx context.Context, entry entities.LedgerEntry) (*entities.LedgerEntry, error) {
	return repository.LedgerRepo().CreateOne(ctx, entry)
}

func (mongoEntryStore) FindByTxHash(ctx context.Context, txHash string) (*entities.LedgerEntry, error) {
	return repository.LedgerRepo().FindOneByFilter(ctx, map[string]interface{}{"txHash": txHash})
}

type redisChainHead struct{}

func (redisChainHead) Advance(ctx context.Context, txHash string) (int64, string, error) {
	height, previous, err := cache.Cache.IncrementAndSwap(constants.LEDGER_BLOCK_HEIGHT_KEY, constants.LEDGER_HEAD_KEY, txHash)
	if err != nil {
		return 0, "", err
	}
	if previous == nil {
		return height, "", nil
	}
	return height, *previous, nil
}

var (
	defaultLedger *Ledger
	ledgerOnce    sync.Once
)

// Default is the ledger backed by mongo entries and a redis chain head.
func Default() *Ledger {
	ledgerOnce.Do(func() {
		defaultLedger = New(mongoEntryStore{}, redisChainHead{})
	})
	return defaultLedger
}
