package credstore

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/verilearn/verilearn/core/session"
)

// File is a session.Keeper storing each entry as one file under the state
// directory (~/.verilearn by default). Entries are owner-only: tokens live
// here.
type File struct {
	dir string
}

var _ session.Keeper = (*File)(nil)

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrapf(err, "credstore: creating %s", dir)
	}
	return &File{dir: dir}, nil
}

func (f *File) Get(key string) (string, bool, error) {
	raw, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "credstore: reading %s", key)
	}
	return string(raw), true, nil
}

func (f *File) Set(key, value string) error {
	return errors.Wrapf(os.WriteFile(f.path(key), []byte(value), 0600), "credstore: writing %s", key)
}

func (f *File) Delete(keys ...string) error {
	for _, key := range keys {
		if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "credstore: removing %s", key)
		}
	}
	return nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key)
}
