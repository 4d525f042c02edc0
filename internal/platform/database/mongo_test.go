package database

import (
	"testing"
	"time"

	"page_insights_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOptions(t *testing.T) {
	cfg := &config.Config{
		MongoURI:                    "mongodb://localhost:27017/insights",
		MongoConnectTimeout:         10 * time.Second,
		MongoServerSelectionTimeout: 11 * time.Second,
		MongoSocketTimeout:          45 * time.Second,
		MongoMaxPoolSize:            10,
	}

	opts := ClientOptions(cfg)
	require.NoError(t, opts.Validate())

	require.NotNil(t, opts.ConnectTimeout)
	assert.Equal(t, 10*time.Second, *opts.ConnectTimeout)
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, 11*time.Second, *opts.ServerSelectionTimeout)
	require.NotNil(t, opts.SocketTimeout)
	assert.Equal(t, 45*time.Second, *opts.SocketTimeout)
	require.NotNil(t, opts.MaxPoolSize)
	assert.EqualValues(t, 10, *opts.MaxPoolSize)
	require.NotNil(t, opts.RetryWrites)
	assert.True(t, *opts.RetryWrites)
	require.NotNil(t, opts.WriteConcern)
	assert.Equal(t, "majority", opts.WriteConcern.W)
	assert.Equal(t, []string{"localhost:27017"}, opts.Hosts)
}
