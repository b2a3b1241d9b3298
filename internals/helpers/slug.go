package helper

import (
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const slugMaxAttempts = 50

// GenerateSlug normalizes a display name into a URL slug: lower-case,
// non-alphanumerics collapsed to single dashes, dashes trimmed.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// GenerateUniqueSlug returns base, or base-2, base-3, ... — the first slug not
// already taken in table.column among non-deleted rows.
func GenerateUniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	if base == "" {
		base = "item"
	}
	candidate := base
	for i := 2; i <= slugMaxAttempts; i++ {
		var cnt int64
		err := db.Table(table).
			Where(fmt.Sprintf("lower(%s) = lower(?)", column), candidate).
			Where("deleted_at IS NULL").
			Count(&cnt).Error
		if err != nil {
			return "", err
		}
		if cnt == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("could not find a free slug for %q", base)
}
