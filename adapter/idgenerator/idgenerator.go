// Package idgenerator contains the default [domain.IDGenerator]
// implementation producing 24-character hexadecimal identifiers.
package idgenerator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"anonboard/domain"
)

// idLen is the total identifier length in hexadecimal characters: an
// 8-char time component followed by a 16-char random component.
const idLen = 24

// IDGenerator implements [domain.IDGenerator].
type IDGenerator struct {
	reader io.Reader
	now    func() time.Time
}

// NewIDGenerator returns a new implementation of [domain.IDGenerator].
func NewIDGenerator(opts ...Option) domain.IDGenerator {
	i := IDGenerator{
		reader: rand.Reader,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&i)
	}
	return &i
}

// NewID implements [domain.IDGenerator]. The identifier is the hex-encoded
// unix time in seconds concatenated with 8 random bytes, hex-encoded.
// Uniqueness relies on the entropy source; it is not enforced.
func (i *IDGenerator) NewID() string {
	buf := make([]byte, (idLen-8)/2)
	// rand.Reader never fails; an injected reader that does yields a
	// zero-filled random component rather than an invalid identifier.
	_, _ = io.ReadFull(i.reader, buf)

	return fmt.Sprintf("%08x%s", i.now().Unix(), hex.EncodeToString(buf))
}
