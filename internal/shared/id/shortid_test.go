package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSID(t *testing.T) {
	sid, err := NewSID(PrefixCarton)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sid, "ctn_"))
	assert.Len(t, sid, len("ctn_")+DefaultLength)
	assert.NoError(t, ValidatePrefix(sid, PrefixCarton))
	assert.Error(t, ValidatePrefix(sid, PrefixDieline))
}

func TestNewSID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		sid, err := NewSID(PrefixAssignment)
		require.NoError(t, err)
		require.False(t, seen[sid], "duplicate sid %s", sid)
		seen[sid] = true
	}
}

func TestValidatePrefix_Malformed(t *testing.T) {
	for _, in := range []string{"", "ctn", "ctn_", "_abc"} {
		assert.Error(t, ValidatePrefix(in, PrefixCarton), in)
	}
}
