package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashtagListRoundTrip(t *testing.T) {
	in := HashtagList{"#marketing", "#tips"}

	v, err := in.Value()
	require.NoError(t, err)

	var out HashtagList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestHashtagListScanNull(t *testing.T) {
	var out HashtagList
	require.NoError(t, out.Scan(nil))
	assert.Empty(t, out)
}
