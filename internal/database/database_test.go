package database_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budjb/things-we-make/internal/database"
)

func TestNew_InvalidURL(t *testing.T) {
	_, err := database.New(context.Background(), "postgres://%zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse database url")
}

func TestNew_Health(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.New(context.Background(), url)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Health(context.Background()))
}
