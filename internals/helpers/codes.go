package helper

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// randomCodeSuffix draws n chars from a confusion-free alphabet.
func randomCodeSuffix(n int) string {
	var b strings.Builder
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken;
			// fall back to a fixed char rather than aborting provisioning.
			b.WriteByte('X')
			continue
		}
		b.WriteByte(codeAlphabet[idx.Int64()])
	}
	return b.String()
}

// timeToken is a base36 millisecond timestamp, upper-cased.
func timeToken() string {
	return strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
}

// GenerateEmployeeCode returns a human-readable employee code, e.g. EMP-LZ3K9QW27NFD.
func GenerateEmployeeCode() string {
	return "EMP-" + timeToken() + randomCodeSuffix(4)
}

// GenerateStudentCode returns a human-readable student code, e.g. STU-LZ3K9QW27NFD.
func GenerateStudentCode() string {
	return "STU-" + timeToken() + randomCodeSuffix(4)
}
