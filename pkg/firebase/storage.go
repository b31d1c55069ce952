package firebase

import "cloud.google.com/go/storage"

// StorageBucket pairs a bucket handle with its name; the cloud SDK handle
// does not expose the name, and public URLs need it.
type StorageBucket struct {
	Handle *storage.BucketHandle
	Name   string
}
