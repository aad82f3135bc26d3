package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wrapErrors "github.com/linlinbupt123-crypto/flow_intel/errors"
)

func TestNewMongoRepoRejectsBadURI(t *testing.T) {
	_, err := NewMongoRepo(context.Background(), "postgres://nope", "flow_intel")
	require.Error(t, err)
	assert.Equal(t, wrapErrors.CodeStorage, wrapErrors.CodeOf(err))
}

func TestNewMongoRepoIsLazy(t *testing.T) {
	repo, err := NewMongoRepo(context.Background(), "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=100", "flow_intel")
	require.NoError(t, err)
	assert.Equal(t, "flow_intel", repo.DB.Name())

	assert.Error(t, repo.Ping(context.Background()))
	assert.NoError(t, repo.Close(context.Background()))
}
