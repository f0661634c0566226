// Package localfs implements a distribution target on a local directory.
package localfs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oceanbound/marlin/pkg/storage"
	"github.com/spf13/afero"
)

// New creates a local file system backed store rooted at root.
func New(fs afero.Fs, root string) storage.Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &localFS{fs: fs, root: root}
}

type localFS struct {
	fs   afero.Fs
	root string
}

func (l *localFS) String() string {
	return "localfs@" + l.root
}

func (l *localFS) path(key string) string {
	return filepath.Join(l.root, filepath.FromSlash(key))
}

func (l *localFS) Has(_ context.Context, key string) (bool, error) {
	fi, err := l.fs.Stat(l.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !fi.IsDir(), nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, storage.ErrNotFound
	}
	return l.fs.Open(l.path(key))
}

func (l *localFS) Put(_ context.Context, key string, source io.Reader) error {
	target := l.path(key)
	if dir := filepath.Dir(target); dir != "" {
		if err := l.fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := l.fs.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, source)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (l *localFS) Keys(_ context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	err := afero.Walk(l.fs, l.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}
