package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattn-fsel/fsel/internal/item"
	"github.com/mattn-fsel/fsel/internal/matcher"
)

func matches(ids ...uint64) []matcher.Match {
	out := make([]matcher.Match, len(ids))
	for i, id := range ids {
		out[i] = matcher.Match{Item: item.New(id, "x", false, false)}
	}
	return out
}

func TestAppendSortedAndCursor(t *testing.T) {
	t.Parallel()

	s := New(false)
	s.AppendSorted(matches(1, 2, 3))
	require.Equal(t, 3, s.Len())
	require.Equal(t, 0, s.CursorIndex())

	s.MoveCursor(1)
	require.Equal(t, 1, s.CursorIndex())

	s.MoveCursor(-5)
	require.Equal(t, 0, s.CursorIndex())

	s.SetCursor(2)
	require.Equal(t, 2, s.CursorIndex())
	require.Equal(t, uint64(3), s.CurrentItem().ID())
}

func TestClearResetsMatchesAndChosen(t *testing.T) {
	t.Parallel()

	s := New(true)
	s.AppendSorted(matches(1, 2))
	s.SetCursor(1)
	s.ToggleCurrent()
	require.Equal(t, 1, s.NumChosen())

	s.Clear()
	require.Equal(t, 0, s.Len())
	require.Equal(t, 0, s.NumChosen())
	require.Nil(t, s.CurrentItem())
}

func TestToggleCurrentNoOpWhenNotMultiSelect(t *testing.T) {
	t.Parallel()

	s := New(false)
	s.AppendSorted(matches(1))
	s.ToggleCurrent()
	require.Equal(t, 0, s.NumChosen())
}

func TestChosenItemsOrderedByID(t *testing.T) {
	t.Parallel()

	s := New(true)
	s.AppendSorted(matches(1, 2, 3))

	s.SetCursor(2)
	s.ToggleCurrent()
	s.SetCursor(0)
	s.ToggleCurrent()

	chosen := s.ChosenItems()
	require.Len(t, chosen, 2)
	require.Equal(t, uint64(1), chosen[0].ID())
	require.Equal(t, uint64(3), chosen[1].ID())
}

func TestSelectedItemsSingleSelect(t *testing.T) {
	t.Parallel()

	s := New(false)
	require.Empty(t, s.SelectedItems())

	s.AppendSorted(matches(1, 2))
	s.SetCursor(1)
	sel := s.SelectedItems()
	require.Len(t, sel, 1)
	require.Equal(t, uint64(2), sel[0].ID())
}

func TestSelectedItemsMultiSelectIgnoresCursorWhenNothingToggled(t *testing.T) {
	t.Parallel()

	s := New(true)
	s.AppendSorted(matches(1, 2))
	s.SetCursor(0)

	require.Empty(t, s.SelectedItems())

	s.ToggleCurrent()
	sel := s.SelectedItems()
	require.Len(t, sel, 1)
	require.Equal(t, uint64(1), sel[0].ID())
}
