package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSQLite(t *testing.T) {
	db, err := ConnectDB("sqlite", "file:connect_test?mode=memory&cache=shared")
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestConnectUnknownDriver(t *testing.T) {
	_, err := ConnectDB("oracle", "")
	assert.ErrorContains(t, err, "unsupported driver")
}
