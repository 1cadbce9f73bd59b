package vault

import (
	"errors"
	"sort"
	"sync"

	"github.com/mr-shifu/mixnet-lib/pkg/common/vault"
)

var (
	ErrKeyNotFound = errors.New("vault: key not found")
	ErrEmptyKeyID  = errors.New("vault: empty key id")
)

var _ vault.Vault = (*InMemoryVault)(nil)

// InMemoryVault keeps copies of the imported key material, so callers may
// reuse their buffers.
type InMemoryVault struct {
	lock sync.RWMutex
	keys map[string][]byte
}

func NewInMemoryVault() *InMemoryVault {
	return &InMemoryVault{
		keys: make(map[string][]byte),
	}
}

func (store *InMemoryVault) Import(keyID string, key []byte) error {
	if keyID == "" {
		return ErrEmptyKeyID
	}
	store.lock.Lock()
	defer store.lock.Unlock()

	store.keys[keyID] = append([]byte(nil), key...)
	return nil
}

func (store *InMemoryVault) Get(keyID string) ([]byte, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	key, ok := store.keys[keyID]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), key...), nil
}

func (store *InMemoryVault) Delete(keyID string) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	if _, ok := store.keys[keyID]; !ok {
		return ErrKeyNotFound
	}
	delete(store.keys, keyID)
	return nil
}

func (store *InMemoryVault) KeyIDs() []string {
	store.lock.RLock()
	defer store.lock.RUnlock()

	ids := make([]string, 0, len(store.keys))
	for id := range store.keys {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
