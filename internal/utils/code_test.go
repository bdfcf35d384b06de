package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfirmationCode_Range(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := NewConfirmationCode()
		require.NoError(t, err)
		require.GreaterOrEqual(t, code, 1000)
		require.LessOrEqual(t, code, 9999)
	}
}
