// Package storage abstracts the distribution targets packaged datasets are
// pushed to.
//
// Implementations are assumed to be simple K/V-style object stores: the
// local filesystem, S3, ...
package storage

import (
	"context"
	"io"
)

type errString string

func (e errString) Error() string { return string(e) }

// ErrNotFound indicates a missing object
const ErrNotFound errString = "not found"

// Store implementations know how to write dataset entries to a K/V target.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}
