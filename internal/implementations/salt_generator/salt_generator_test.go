package saltgenerator

import (
	"testing"

	"bookstand/internal/core/domain/account"

	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	generator := NewGenerator()

	first, err := generator.GenerateSalt()
	require.NoError(t, err)
	require.Len(t, first, account.SaltLength)

	second, err := generator.GenerateSalt()
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
