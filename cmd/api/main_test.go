package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSConfig(t *testing.T) {
	open := corsConfig(nil)
	assert.True(t, open.AllowAllOrigins)
	require.NoError(t, open.Validate())

	restricted := corsConfig([]string{"https://console.example"})
	assert.False(t, restricted.AllowAllOrigins)
	assert.Equal(t, []string{"https://console.example"}, restricted.AllowOrigins)
	assert.Contains(t, restricted.AllowHeaders, "Authorization")
	require.NoError(t, restricted.Validate())
}
