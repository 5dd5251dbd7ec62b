package ledger

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"certverify.io/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu      sync.Mutex
	entries []entities.LedgerEntry
	saveErr error
}

func (m *memoryStore) Latest(ctx context.Context) (*entities.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return nil, nil
	}
	e := m.entries[len(m.entries)-1]
	return &e, nil
}

func (m *memoryStore) Save(ctx context.Context, entry entities.LedgerEntry) (*entities.LedgerEntry, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return &entry, nil
}

func (m *memoryStore) FindByTxHash(ctx context.Context, txHash string) (*entities.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.TxHash == txHash {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

type memoryHead struct {
	mu     sync.Mutex
	height int64
	head   string
}

func (h *memoryHead) Advance(ctx context.Context, txHash string) (int64, string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.height++
	previous := h.head
	h.head = txHash
	return h.height, previous, nil
}

func TestRecordChainsEntries(t *testing.T) {
	l := New(&memoryStore{}, &memoryHead{})
	ctx := context.Background()

	first, err := l.Record(ctx, "CERT-1", "hash-1")
	require.NoError(t, err)
	second, err := l.Record(ctx, "CERT-2", "hash-2")
	require.NoError(t, err)

	assert.Equal(t, GenesisHash, first.PreviousHash)
	assert.Equal(t, first.TxHash, second.PreviousHash)
	assert.Equal(t, int64(1), first.BlockNumber)
	assert.Equal(t, int64(2), second.BlockNumber)
	assert.NotEqual(t, first.TxHash, second.TxHash)
}

func TestTxHashFormat(t *testing.T) {
	h, err := NewTxHash()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "0x"))
	assert.Len(t, h, 66)
}

func TestLookupAndVerify(t *testing.T) {
	l := New(&memoryStore{}, &memoryHead{})
	ctx := context.Background()
	entry, err := l.Record(ctx, "CERT-1", "hash-1")
	require.NoError(t, err)

	found, err := l.Lookup(ctx, entry.TxHash)
	require.NoError(t, err)
	assert.True(t, Verify(found, "hash-1"))
	assert.False(t, Verify(found, "hash-edited"))
	assert.False(t, Verify(nil, "hash-1"))

	_, err = l.Lookup(ctx, "0xmissing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestRecordSurfacesStoreErrors(t *testing.T) {
	boom := errors.New("write failed")
	l := New(&memoryStore{saveErr: boom}, &memoryHead{})
	_, err := l.Record(context.Background(), "CERT-1", "hash-1")
	assert.ErrorIs(t, err, boom)
}

func assertSingleChain(t *testing.T, entries []entities.LedgerEntry) {
	t.Helper()
	heights := map[int64]bool{}
	previous := map[string]bool{}
	txHashes := map[string]bool{}
	for _, e := range entries {
		txHashes[e.TxHash] = true
	}
	for _, e := range entries {
		assert.False(t, heights[e.BlockNumber], "height %d reused", e.BlockNumber)
		heights[e.BlockNumber] = true
		assert.False(t, previous[e.PreviousHash], "chain forked at %s", e.PreviousHash)
		previous[e.PreviousHash] = true
		if e.PreviousHash != GenesisHash {
			assert.True(t, txHashes[e.PreviousHash])
		}
	}
}

func TestConcurrentRecordsHaveDistinctHeights(t *testing.T) {
	store := &memoryStore{}
	l := New(store, &memoryHead{})
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Record(context.Background(), "CERT", "hash")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, store.entries, 20)
	assertSingleChain(t, store.entries)
}

func TestLedgersSharingAHeadDoNotFork(t *testing.T) {
	store := &memoryStore{}
	head := &memoryHead{}
	instances := []*Ledger{New(store, head), New(store, head)}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(l *Ledger) {
			defer wg.Done()
			_, err := l.Record(context.Background(), "CERT", "hash")
			assert.NoError(t, err)
		}(instances[i%2])
	}
	wg.Wait()

	assert.Len(t, store.entries, 30)
	assertSingleChain(t, store.entries)
}

func TestRecordFallsBackToStoredHead(t *testing.T) {
	store := &memoryStore{entries: []entities.LedgerEntry{{TxHash: "0xolder", BlockNumber: 4}}}
	entry, err := New(store, &memoryHead{}).Record(context.Background(), "CERT-5", "hash-5")
	require.NoError(t, err)
	assert.Equal(t, "0xolder", entry.PreviousHash)
}
