// Package storage provides the local key-value store backing drafts,
// submissions, and the saved language preference.
package storage

// KV is the minimal key-value contract the rest of the application depends
// on. Values are JSON blobs; the store does not interpret them.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set writes value under key, overwriting any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}
