package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupGlobalLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	require.NoError(t, SetupGlobalLogger("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.Error(t, SetupGlobalLogger("loud"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestFieldNamesDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range []string{FieldComponent, FieldType, FieldCase, FieldRoot, FieldSize, FieldPath, FieldCount, FieldImpl} {
		assert.False(t, seen[f], f)
		seen[f] = true
	}
}
