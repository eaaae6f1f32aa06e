// Package id generates request correlation IDs.
//
// IDs are ULIDs carrying a "req_" prefix so they sort by time and read well
// in logs and in the X-Request-ID response header.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestID identifies a single API request.
type RequestID string

// RequestPrefix marks request IDs in logs and headers.
const RequestPrefix = "req"

// Generator produces prefixed ULIDs from a locked entropy source.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the shared generator instance.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// Useful for testing with deterministic entropy.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

func (g *Generator) next() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// NewRequest returns a fresh request ID.
func (g *Generator) NewRequest() RequestID {
	return RequestID(fmt.Sprintf("%s_%s", RequestPrefix, g.next().String()))
}

// NewRequestID returns a fresh request ID from the shared generator.
func NewRequestID() RequestID {
	return Default().NewRequest()
}

// String returns the ID as a plain string.
func (r RequestID) String() string {
	return string(r)
}

// Valid reports whether r carries the request prefix and a parseable ULID.
func (r RequestID) Valid() bool {
	rest, ok := strings.CutPrefix(string(r), RequestPrefix+"_")
	if !ok {
		return false
	}
	_, err := ulid.ParseStrict(rest)
	return err == nil
}

// Timestamp extracts the creation time from a request ID.
func (r RequestID) Timestamp() (time.Time, error) {
	rest, ok := strings.CutPrefix(string(r), RequestPrefix+"_")
	if !ok {
		return time.Time{}, fmt.Errorf("not a request id: %q", r)
	}
	parsed, err := ulid.ParseStrict(rest)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
