package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authModel "coachdesk_backend/internals/features/users/auth/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test"), &gorm.Config{
		DisableAutomaticPing: true,
		DryRun:               true,
	})
	require.NoError(t, err)
	return db
}

// An expired refresh token must never satisfy a rotation lookup.
func TestRefreshTokenLookupFiltersExpiredRows(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rt authModel.RefreshTokenModel
		return activeRefreshToken(tx, []byte("hash")).First(&rt)
	})

	assert.Contains(t, sql, "token = ")
	assert.Contains(t, sql, "expires_at > ")
}

func TestRefreshTokenCleanupDeletesOnlyExpiredRows(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return expiredRefreshTokens(tx).Delete(&authModel.RefreshTokenModel{})
	})

	assert.Contains(t, sql, `DELETE FROM "refresh_tokens"`)
	assert.Contains(t, sql, "expires_at <= ")
}
