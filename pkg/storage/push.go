package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// PushSummary reports the outcome of a dataset push.
type PushSummary struct {
	Uploaded int
	Skipped  int
}

// Push walks the dataset tree rooted at root on fs and uploads every file to
// the store under its slash-separated relative key. Keys the store already
// has are skipped unless overwrite is set.
func Push(ctx context.Context, fs afero.Fs, root string, store Store, overwrite bool, l *zap.Logger) (PushSummary, error) {
	if l == nil {
		l = zap.NewNop()
	}
	var summary PushSummary
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)

		if !overwrite {
			has, err := store.Has(ctx, key)
			if err != nil {
				return err
			}
			if has {
				l.Debug("already distributed, skipping", zap.String("key", key))
				summary.Skipped++
				return nil
			}
		}

		f, err := fs.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		l.Info("uploading", zap.String("key", key), zap.String("target", store.String()))
		if err := store.Put(ctx, key, f); err != nil {
			return err
		}
		summary.Uploaded++
		return nil
	})
	return summary, err
}
