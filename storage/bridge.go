package storage

import (
	"log"
)

// Bridge maps a logical file name to get/put of a serialized numeric
// sequence in a Store. Save and restore are best-effort: a failed save is
// logged and swallowed, and malformed stored data loads as absent. No
// storage anomaly ever halts the interactive session.
type Bridge struct {
	Store Store
}

// NewBridge creates a bridge over the given store.
func NewBridge(store Store) (br *Bridge) {
	br = &Bridge{Store: store}

	return
}

// Load returns the sequence stored under name. A name never saved, or a
// blob that fails to decode, reports ok false.
func (br *Bridge) Load(name string) (data []uint32, ok bool) {
	text, found := br.Store.Get(name)
	if !found {
		return
	}

	data, err := Decode(text)
	if err != nil {
		log.Printf("zork1-web: storage: %q: %v", name, err)
		data = nil
		return
	}
	ok = true

	return
}

// Save stores the sequence under name, replacing any previous contents.
func (br *Bridge) Save(name string, data []uint32) (err error) {
	err = br.Store.Set(name, Encode(data))
	if err != nil {
		log.Printf("zork1-web: storage: %q: %v", name, err)
	}

	return
}

// Delete removes the sequence stored under name, if present.
func (br *Bridge) Delete(name string) {
	err := br.Store.Delete(name)
	if err != nil {
		log.Printf("zork1-web: storage: %q: %v", name, err)
	}
}

// Exists reports whether a sequence is stored under name.
func (br *Bridge) Exists(name string) (ok bool) {
	ok = br.Store.Has(name)

	return
}
