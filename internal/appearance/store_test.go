package appearance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsToLight(t *testing.T) {
	require.Equal(t, ModeLight, New().Current())
}

func TestToggleFlips(t *testing.T) {
	s := New()
	require.Equal(t, ModeDark, s.Toggle())
	require.Equal(t, ModeLight, s.Toggle())
}

func TestSetRejectsUnknownModes(t *testing.T) {
	s := New()
	s.Set(Mode("sepia"))
	require.Equal(t, ModeLight, s.Current())
	s.Set(ModeDark)
	require.Equal(t, ModeDark, s.Current())
}
