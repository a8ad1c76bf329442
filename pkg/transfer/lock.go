package transfer

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/kism/smart-rom-sync/pkg/errors"
)

// Lock keeps two syncs from running at the same time
type Lock struct {
	path string
	fl   *flock.Flock
}

// NewLock creates an unlocked lock on path
func NewLock(path string) *Lock {
	return &Lock{path: path, fl: flock.New(path)}
}

// Path of the lock file
func (l *Lock) Path() string {
	return l.path
}

// TryLock takes the lock without waiting. A busy lock is a LOCK_HELD error.
func (l *Lock) TryLock() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create lock directory for %s", l.path)
	}

	ok, err := l.fl.TryLock()
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "acquire lock %s", l.path)
	}
	if !ok {
		return errors.New(errors.ErrLockHeld, "another sync is already running").
			WithDetail("path", l.path)
	}
	return nil
}

// Unlock releases the lock
func (l *Lock) Unlock() error {
	return l.fl.Unlock()
}
