package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/linlinbupt123-crypto/flow_intel/repository"
)

func TestReferenceIndexesUniqueKeys(t *testing.T) {
	unique := map[string]bool{}
	for _, idx := range referenceIndexes() {
		if idx.model.Options != nil && idx.model.Options.Unique != nil && *idx.model.Options.Unique {
			unique[idx.collection] = true
		}
	}
	assert.Equal(t, map[string]bool{
		AssetsCollection:  true,
		HoldersCollection: true,
		ChainsCollection:  true,
	}, unique)
}

func TestIsIndexConflict(t *testing.T) {
	assert.True(t, isIndexConflict(errors.New("Index already exists with a different name")))
	assert.False(t, isIndexConflict(errors.New("connection refused")))
	assert.False(t, isIndexConflict(nil))
}

func TestHolderDocument(t *testing.T) {
	ref, err := repository.Default()
	require.NoError(t, err)

	var withLogo, withoutLogo bson.M
	for _, h := range ref.Holders() {
		if h.Logo != nil && withLogo == nil {
			withLogo = holderDocument(h)
		}
		if h.Logo == nil && withoutLogo == nil {
			withoutLogo = holderDocument(h)
		}
	}
	require.NotNil(t, withLogo)
	require.NotNil(t, withoutLogo)

	assert.Equal(t, true, withLogo["is_entity"])
	assert.Contains(t, withLogo["logo"], "http")
	assert.NotContains(t, withoutLogo, "logo")
	assert.Equal(t, false, withoutLogo["is_entity"])
}
