package glk

import (
	"iter"
)

// FileUsage describes what a file reference will hold.
type FileUsage uint32

const (
	FILEUSAGE_DATA         = FileUsage(0)
	FILEUSAGE_SAVED_GAME   = FileUsage(1)
	FILEUSAGE_TRANSCRIPT   = FileUsage(2)
	FILEUSAGE_INPUT_RECORD = FileUsage(3)
)

// Fileref names a logical file in the host's persistent store. The Name is
// the storage key; no host path is ever involved.
type Fileref struct {
	Name  string
	Usage FileUsage
	Rock  uint32
	ID    uint32
}

// FilerefCreateByName creates a file reference for the given logical name.
func (sess *Session) FilerefCreateByName(usage FileUsage, name string, rock uint32) (fref *Fileref) {
	fref = &Fileref{
		Name:  name,
		Usage: usage,
		Rock:  rock,
		ID:    sess.nextID(),
	}
	sess.filerefs = append(sess.filerefs, fref)

	return
}

// FilerefDestroy removes a file reference. The stored file, if any, is
// untouched.
func (sess *Session) FilerefDestroy(fref *Fileref) {
	for n, known := range sess.filerefs {
		if known == fref {
			sess.filerefs = append(sess.filerefs[:n], sess.filerefs[n+1:]...)
			return
		}
	}
}

// FilerefDoesFileExist reports whether the named file is present in the
// host store.
func (sess *Session) FilerefDoesFileExist(fref *Fileref) (exists bool) {
	if fref == nil || sess.Files == nil {
		return
	}
	exists = sess.Files.Exists(fref.Name)

	return
}

// FilerefDeleteFile removes the named file from the host store, if present.
func (sess *Session) FilerefDeleteFile(fref *Fileref) {
	if fref == nil || sess.Files == nil {
		return
	}
	sess.Files.Delete(fref.Name)
}

// Filerefs returns an iterator over all live file references.
func (sess *Session) Filerefs() iter.Seq[*Fileref] {
	return func(yield func(fref *Fileref) bool) {
		for _, fref := range sess.filerefs {
			if !yield(fref) {
				return
			}
		}
	}
}
