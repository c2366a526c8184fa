package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/bbs-uottawa/bbsdocs/internal/config"
)

// ErrLocked is returned when another bbsdocs process holds the lock on
// the output directory.
var ErrLocked = errors.New("output directory is locked by another bbsdocs process")

// lockRetryDelay is how often a held lock is polled.
const lockRetryDelay = 50 * time.Millisecond

// DirLock is an advisory lock on an output directory.
//
// The lock file lives in the user's runtime directory, not in the output
// directory, so nothing but the documents appears next to the PDFs.
type DirLock struct {
	dir string
	fl  *flock.Flock
}

// LockDir locks dir, waiting up to timeout for another process to release
// it. A zero timeout tries exactly once.
func LockDir(ctx context.Context, dir string, timeout time.Duration) (*DirLock, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	path, err := lockPath(abs)
	if err != nil {
		return nil, err
	}
	fl := flock.New(path)

	var locked bool
	if timeout <= 0 {
		locked, err = fl.TryLock()
	} else {
		lctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		locked, err = fl.TryLockContext(lctx, lockRetryDelay)
		if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			err = nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", abs, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", abs, ErrLocked)
	}

	return &DirLock{dir: abs, fl: fl}, nil
}

// Dir returns the locked directory.
func (l *DirLock) Dir() string {
	return l.dir
}

// Path returns the lock file path.
func (l *DirLock) Path() string {
	return l.fl.Path()
}

// Unlock releases the lock. The lock file is left in place.
func (l *DirLock) Unlock() error {
	return l.fl.Unlock()
}

// lockPath returns the lock file for an absolute directory. The name is
// derived from the directory path so that every directory has its own
// lock.
func lockPath(abs string) (string, error) {
	base := config.XDGRuntimeDir()
	if err := os.MkdirAll(base, 0o700); err != nil {
		base = filepath.Join(os.TempDir(), config.AppName)
		if err := os.MkdirAll(base, 0o700); err != nil {
			return "", fmt.Errorf("failed to create lock directory: %w", err)
		}
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.ToSlash(abs)))
	return filepath.Join(base, id.String()+".lock"), nil
}
