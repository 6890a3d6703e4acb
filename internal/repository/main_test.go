//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kisanmitra/kisan-service/internal/testutil"
)

// TestMain sets up a shared MongoDB container for all integration tests in
// this package, so each test only pays for a database, not a container.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDBFromSharedContainer creates a MongoDB connection using the shared
// container with a unique database name for test isolation.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	dbName := testutil.SanitizeDBName(t.Name())
	db, err := NewMongoDB(testutil.GetSharedContainerURI(), dbName)
	require.NoError(t, err)
	return db
}
