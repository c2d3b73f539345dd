// Package storage maps the adapter's logical file names to a host
// persistence capability that only stores named text blobs. The bridge
// serializes numeric character sequences as self-describing text, so the
// store never holds raw binary, and treats malformed stored data as
// absent rather than as a failure.
package storage

// Store is the host persistence capability: get/set of named text blobs.
type Store interface {
	// Get returns the blob stored under name, if present.
	Get(name string) (value string, ok bool)
	// Set stores a blob under name, replacing any previous value.
	Set(name string, value string) (err error)
	// Delete removes the blob stored under name, if present.
	Delete(name string) (err error)
	// Has reports whether a blob is stored under name.
	Has(name string) (ok bool)
}

// MemStore is an in-process Store for ephemeral sessions and tests.
type MemStore struct {
	blobs map[string]string
}

var _ Store = (*MemStore)(nil)

func (st *MemStore) Get(name string) (value string, ok bool) {
	value, ok = st.blobs[name]

	return
}

func (st *MemStore) Set(name string, value string) (err error) {
	if st.blobs == nil {
		st.blobs = make(map[string]string)
	}
	st.blobs[name] = value

	return
}

func (st *MemStore) Delete(name string) (err error) {
	delete(st.blobs, name)

	return
}

func (st *MemStore) Has(name string) (ok bool) {
	_, ok = st.blobs[name]

	return
}
