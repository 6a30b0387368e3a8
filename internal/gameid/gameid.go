// Package gameid generates session identifiers for game sessions. Ids
// are UUIDv7 values rendered as 26 characters of Crockford base32, so
// they sort by creation time and are safe to use as deduplication keys.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource supplies random bytes, injectable for deterministic tests.
type RandSource interface {
	Intn(n int) int
}

// Generator mints session ids with configurable randomness.
type Generator struct {
	randSource RandSource
}

// NewGenerator creates a generator. A nil RandSource means crypto/rand.
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource}
}

// Generate mints a session id using crypto/rand.
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate mints a session id.
func (g *Generator) Generate() string {
	return encode(g.uuidv7())
}

// uuidv7 builds a 128-bit UUIDv7: 48-bit millisecond timestamp, then
// random bits, with version and variant bits set per RFC 9562.
func (g *Generator) uuidv7() [16]byte {
	var u [16]byte

	now := time.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		u[i] = byte(now >> (40 - 8*i))
	}

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			u[i] = byte(g.randSource.Intn(256))
		}
	} else {
		if _, err := rand.Read(u[6:]); err != nil {
			panic("gameid: failed to read random bytes: " + err.Error())
		}
	}

	u[6] = (u[6] & 0x0f) | 0x70 // version 7
	u[8] = (u[8] & 0x3f) | 0x80 // variant 10

	return u
}

// encode renders 128 bits as 26 base32 characters, msb first. Two zero
// pad bits at the front make 130 bits divide evenly into 5-bit groups,
// which also guarantees the first character is 0-7.
func encode(u [16]byte) string {
	var out [26]byte

	acc := uint32(0)
	bits := 2
	idx := 0
	for _, b := range u {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out[idx] = alphabet[(acc>>uint(bits))&0x1f]
			idx++
		}
	}

	return string(out[:])
}

// Validate checks that a session id is well-formed.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("session id must be 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session id first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
