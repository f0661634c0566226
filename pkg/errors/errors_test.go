package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	e1 := New("cause1")
	e2 := New("cause2").Wrap(e1)
	e := New("dummy").Wrap(e2)
	e3 := e.Unwrap()
	assert.True(t, Is(e, e1))
	assert.True(t, Is(e, e2))
	assert.True(t, Is(e3, e2))
}

func TestSentinelWrap(t *testing.T) {
	cause := fmt.Errorf("exit status 1")
	err := ErrExtractorFailed.Wrap(cause)
	assert.True(t, Is(err, ErrExtractorFailed))
	assert.True(t, Is(err, cause))
	// wrapping must not mutate the sentinel itself
	assert.Nil(t, ErrExtractorFailed.Unwrap())
}
