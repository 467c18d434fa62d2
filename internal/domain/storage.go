package domain

// KeyValue is the narrow persistence contract the collection store depends
// on. Read failures fold into the ok flag; a missing key and an unreadable
// key are indistinguishable on purpose.
type KeyValue interface {
	// Get returns the stored value for key, or ok=false when absent/unreadable
	Get(key string) ([]byte, bool)

	// Set durably stores value under key
	Set(key string, value []byte) error

	// Close releases any resources held by the store
	Close() error
}
