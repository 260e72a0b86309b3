package domain

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// TaskIDAlphabet holds the characters task IDs are drawn from.
// Visually confusable characters (0, 1, I, O, l) are left out.
const TaskIDAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// TaskIDLength is the number of characters in a generated task ID
const TaskIDLength = 8

// TaskID is the opaque, immutable identifier of a task
type TaskID string

// NewTaskID generates a random task ID.
// No check is made against existing IDs: 57^8 possible values keep collisions negligible.
func NewTaskID() TaskID {
	base := big.NewInt(int64(len(TaskIDAlphabet)))

	var b strings.Builder
	b.Grow(TaskIDLength)
	for range TaskIDLength {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic("domain: reading random bytes: " + err.Error())
		}
		b.WriteByte(TaskIDAlphabet[n.Int64()])
	}
	return TaskID(b.String())
}

// String returns the ID as a plain string
func (id TaskID) String() string {
	return string(id)
}

// IsValidTaskID reports whether s looks like a generated task ID.
// IDs loaded from disk are never rejected by this; it only guards user input.
func IsValidTaskID(s string) bool {
	if len(s) != TaskIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(TaskIDAlphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
