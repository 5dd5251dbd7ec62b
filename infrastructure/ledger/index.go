package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"certverify.io/entities"
	"certverify.io/infrastructure/cryptography"
	"certverify.io/infrastructure/logger"
)

// GenesisHash is the previous hash of the first entry.
const GenesisHash = "0x0000000000000000000000000000000000000000000000000000000000000000"

var ErrEntryNotFound = errors.New("ledger entry not found")

type EntryStore interface {
	Latest(ctx context.Context) (*entities.LedgerEntry, error)
	Save(ctx context.Context, entry entities.LedgerEntry) (*entities.LedgerEntry, error)
	FindByTxHash(ctx context.Context, txHash string) (*entities.LedgerEntry, error)
}

// ChainHead allocates the next block height and swaps in the new head tx hash
// as one atomic step, so writers in different processes never chain onto the
// same entry. previous is empty when no head has been recorded yet.
type ChainHead interface {
	Advance(ctx context.Context, txHash string) (height int64, previous string, err error)
}

// Ledger anchors certificate hashes in an append-only, hash-linked log. It
// stands in for a chain: nothing is mined or broadcast.
type Ledger struct {
	Store EntryStore
	Head  ChainHead
}

func New(store EntryStore, head ChainHead) *Ledger {
	return &Ledger{Store: store, Head: head}
}

// NewTxHash returns a 0x-prefixed 32 byte random hex string.
func NewTxHash() (string, error) {
	h, err := cryptography.RandomHex(32)
	if err != nil {
		return "", err
	}
	return "0x" + h, nil
}

func (l *Ledger) Record(ctx context.Context, certificateNumber string, documentHash string) (*entities.LedgerEntry, error) {
	txHash, err := NewTxHash()
	if err != nil {
		return nil, fmt.Errorf("generating tx hash: %w", err)
	}
	height, previous, err := l.Head.Advance(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("advancing ledger head: %w", err)
	}
	if previous == "" {
		previous, err = l.storedHead(ctx)
		if err != nil {
			return nil, err
		}
	}

	entry, err := l.Store.Save(ctx, entities.LedgerEntry{
		TxHash:            txHash,
		BlockNumber:       height,
		PreviousHash:      previous,
		DocumentHash:      documentHash,
		CertificateNumber: certificateNumber,
		Timestamp:         time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("saving ledger entry: %w", err)
	}
	logger.Info("certificate anchored on ledger", logger.LoggerOptions{
		Key:  "txHash",
		Data: entry.TxHash,
	}, logger.LoggerOptions{
		Key:  "blockNumber",
		Data: entry.BlockNumber,
	})
	return entry, nil
}

// storedHead covers ledgers persisted before a head was tracked.
func (l *Ledger) storedHead(ctx context.Context) (string, error) {
	latest, err := l.Store.Latest(ctx)
	if err != nil {
		return "", fmt.Errorf("reading ledger head: %w", err)
	}
	if latest == nil {
		return GenesisHash, nil
	}
	return latest.TxHash, nil
}

func (l *Ledger) Lookup(ctx context.Context, txHash string) (*entities.LedgerEntry, error) {
	entry, err := l.Store.FindByTxHash(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

// Verify reports whether entry anchors documentHash.
func Verify(entry *entities.LedgerEntry, documentHash string) bool {
	return entry != nil && documentHash != "" && entry.DocumentHash == documentHash
}
