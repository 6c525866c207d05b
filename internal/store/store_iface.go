package store

// Backend is the durable key/value storage the Store mirrors to. Values are
// opaque strings, mirroring browser local storage.
type Backend interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}
