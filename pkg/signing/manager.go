package signing

import (
	"github.com/mr-shifu/mixnet-lib/pkg/common/vault"
)

// KeyManager stores node signing keys in a vault under their key id.
type KeyManager struct {
	vault vault.Vault
}

func NewKeyManager(v vault.Vault) *KeyManager {
	return &KeyManager{vault: v}
}

func (mgr *KeyManager) GenerateKey() (*SigningKey, error) {
	key, err := GenerateKey()
	if err != nil {
		return nil, err
	}
	return mgr.ImportKey(key)
}

func (mgr *KeyManager) ImportKey(key *SigningKey) (*SigningKey, error) {
	encoded, err := key.Bytes()
	if err != nil {
		return nil, err
	}
	if err := mgr.vault.Import(key.KeyID(), encoded); err != nil {
		return nil, err
	}
	return key, nil
}

func (mgr *KeyManager) GetKey(keyID string) (*SigningKey, error) {
	encoded, err := mgr.vault.Get(keyID)
	if err != nil {
		return nil, err
	}
	return KeyFromBytes(encoded)
}

// Keys returns every stored key, ordered by key id.
func (mgr *KeyManager) Keys() ([]*SigningKey, error) {
	ids := mgr.vault.KeyIDs()
	keys := make([]*SigningKey, 0, len(ids))
	for _, id := range ids {
		key, err := mgr.GetKey(id)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
