package notification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSlotLastWriteWins(t *testing.T) {
	s := NewSlot()
	_, ok := s.Current()
	require.False(t, ok)

	s.Push(KindError, "Failed to update unit")
	second := s.Push(KindSuccess, "Lease created")

	cur, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, second.ID, cur.ID)
	require.Equal(t, KindSuccess, cur.Kind)
	require.Equal(t, "Lease created", cur.Message)
}

func TestDismiss(t *testing.T) {
	s := NewSlot()
	first := s.Push(KindError, "first")
	s.Push(KindSuccess, "second")

	s.Dismiss(&first.ID)
	cur, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, "second", cur.Message)

	stranger := uuid.New()
	s.Dismiss(&stranger)
	_, ok = s.Current()
	require.True(t, ok)

	s.Dismiss(nil)
	_, ok = s.Current()
	require.False(t, ok)

	s.Dismiss(nil)
}
