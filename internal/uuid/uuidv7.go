// Package uuid generates the identifiers the record store assigns to new
// children. Ids are UUIDv7 strings: lexical order follows creation order,
// including ids minted within the same millisecond.
package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	googleuuid "github.com/google/uuid"
)

var (
	mu       sync.Mutex
	lastMS   uint64
	sequence uint16
)

// New generates a new UUIDv7 based on the current timestamp.
//
// Layout (RFC 9562):
//   - 48 bits: Unix timestamp in milliseconds
//   - 4 bits: version (0111 = 7)
//   - 12 bits: per-millisecond sequence (rand_a)
//   - 2 bits: variant (10)
//   - 62 bits: random data
func New() string {
	return newAt(time.Now())
}

func newAt(now time.Time) string {
	var id [16]byte

	ms, seq := next(uint64(now.UnixMilli()))

	binary.BigEndian.PutUint64(id[0:8], ms<<16)
	if _, err := rand.Read(id[8:]); err != nil {
		return googleuuid.New().String()
	}

	id[6] = 0x70 | byte(seq>>8)&0x0f
	id[7] = byte(seq)
	id[8] = (id[8] & 0x3f) | 0x80

	return formatUUID(id)
}

// next returns the timestamp and sequence for a new id. When the clock does
// not advance (or goes backwards) the previous timestamp is reused and the
// sequence incremented; on sequence overflow the timestamp is bumped.
func next(ms uint64) (uint64, uint16) {
	mu.Lock()
	defer mu.Unlock()

	if ms > lastMS {
		lastMS = ms
		sequence = 0
		return lastMS, sequence
	}

	sequence++
	if sequence > 0x0fff {
		lastMS++
		sequence = 0
	}
	return lastMS, sequence
}

// formatUUID formats a 16-byte array as a UUID string
func formatUUID(id [16]byte) string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.BigEndian.Uint32(id[0:4]),
		binary.BigEndian.Uint16(id[4:6]),
		binary.BigEndian.Uint16(id[6:8]),
		binary.BigEndian.Uint16(id[8:10]),
		id[10:16],
	)
}

// Parse validates and parses a UUID string
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
