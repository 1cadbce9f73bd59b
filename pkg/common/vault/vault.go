package vault

// Vault holds serialized node signing keys addressed by key id.
type Vault interface {
	Import(keyID string, key []byte) error
	Get(keyID string) ([]byte, error)
	Delete(keyID string) error

	// KeyIDs lists the stored key ids in lexical order.
	KeyIDs() []string
}
