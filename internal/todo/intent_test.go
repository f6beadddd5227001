package todo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyDrivesFullSession(t *testing.T) {
	s := NewStore()

	script := []Intent{
		UpdateDraftIntent{Text: "buy milk"},
		AddIntent{},
		UpdateDraftIntent{Text: "wash car"},
		AddIntent{},
		ToggleIntent{Index: 1},
		SetFilterIntent{Mode: Active},
		NoOpIntent{},
	}
	for _, in := range script {
		require.NoError(t, s.Apply(in))
	}

	require.Equal(t, 2, s.Total())
	require.Equal(t, Active, s.Filter())
	require.Equal(t, []Entry{{Description: "buy milk"}}, s.Visible())

	require.NoError(t, s.Apply(ClearCompletedIntent{}))
	require.Equal(t, 1, s.Total())

	require.NoError(t, s.Apply(ToggleAllIntent{}))
	require.True(t, s.IsAllCompleted())
}

func TestApplyReportsIndexErrors(t *testing.T) {
	s := NewStore()

	require.ErrorIs(t, s.Apply(ToggleIntent{Index: 0}), ErrIndexOutOfRange)
	require.ErrorIs(t, s.Apply(RemoveIntent{Index: 0}), ErrIndexOutOfRange)

	// failed intents leave the store untouched
	require.Equal(t, 0, s.Total())
	require.Equal(t, All, s.Filter())
}
