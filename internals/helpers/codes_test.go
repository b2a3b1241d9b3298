package helper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEmployeeCode(t *testing.T) {
	code := GenerateEmployeeCode()
	assert.Regexp(t, regexp.MustCompile(`^EMP-[A-Z0-9]+$`), code)
}

func TestGenerateStudentCode(t *testing.T) {
	code := GenerateStudentCode()
	assert.Regexp(t, regexp.MustCompile(`^STU-[A-Z0-9]+$`), code)
}

func TestGeneratedCodesDiffer(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		c := GenerateStudentCode()
		assert.False(t, seen[c], "duplicate code %s", c)
		seen[c] = true
	}
}
