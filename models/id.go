package models

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"time"
)

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewID returns a 24-character lowercase hex record identifier: a 4-byte
// unix-time prefix followed by 8 random bytes. The time prefix keeps ids
// roughly ordered by creation time.
func NewID() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// IsValidID reports whether id is a syntactically valid 24-character hex
// identifier. Every by-id endpoint must check this before touching the store.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}
