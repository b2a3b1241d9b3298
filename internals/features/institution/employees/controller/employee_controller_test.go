package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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

// A user can hold several role rows; the directory must still list each
// employee once, with their earliest role.
func TestEmployeeDirectoryQuery_OneRowPerEmployee(t *testing.T) {
	db := dryRunDB(t)

	var items []employeeItem
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return employeeDirectoryQuery(tx).Find(&items)
	})

	assert.Contains(t, sql, "LEFT JOIN LATERAL")
	assert.Contains(t, sql, "ORDER BY created_at ASC LIMIT 1")
	assert.NotContains(t, sql, "LEFT JOIN user_roles ON user_roles.user_id")
}
