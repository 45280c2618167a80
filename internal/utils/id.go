package utils

import (
	"crypto/rand"
	"strconv"
	"time"
)

// Room codes are short, lowercase, and safe to read out loud over a call.
const roomAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewRoomCode returns a best-effort unique n-character room identifier. The
// caller is expected to check for collisions before handing it out.
func NewRoomCode(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// Fallback to timestamp if crypto/rand is unavailable.
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	for i, b := range buf {
		buf[i] = roomAlphabet[int(b)%len(roomAlphabet)]
	}
	return string(buf)
}
