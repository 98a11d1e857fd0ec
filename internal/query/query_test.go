package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldInsertAndDelete(t *testing.T) {
	t.Parallel()

	var f Field
	f.InsertRuneAtCaret('a')
	f.InsertRuneAtCaret('b')
	f.InsertRuneAtCaret('c')
	require.Equal(t, "abc", f.String())
	require.Equal(t, 3, f.CaretPos())

	f.SetCaretPos(1)
	f.InsertRuneAtCaret('X')
	require.Equal(t, "aXbc", f.String())

	require.True(t, f.DeleteRuneBeforeCaret())
	require.Equal(t, "abc", f.String())
}

func TestFieldDeleteRuneAtCaret(t *testing.T) {
	t.Parallel()

	var f Field
	f.Set("abc")
	f.SetCaretPos(0)
	require.True(t, f.DeleteRuneAtCaret())
	require.Equal(t, "bc", f.String())

	f.SetCaretPos(f.Len())
	require.False(t, f.DeleteRuneAtCaret())
}

func TestFieldSetMovesCaretToEnd(t *testing.T) {
	t.Parallel()

	var f Field
	f.Set("hello")
	require.Equal(t, 5, f.CaretPos())

	f.Reset()
	require.Equal(t, "", f.String())
	require.Equal(t, 0, f.CaretPos())
}

func TestFieldCaretClamped(t *testing.T) {
	t.Parallel()

	var f Field
	f.Set("ab")
	f.SetCaretPos(-5)
	require.Equal(t, 0, f.CaretPos())

	f.SetCaretPos(100)
	require.Equal(t, 2, f.CaretPos())
}

func TestQueryFocusSwitch(t *testing.T) {
	t.Parallel()

	q := New("filter text", "cmd text")
	require.Same(t, q.Filter(), q.Active())

	q.FocusCommand()
	require.Same(t, q.Command(), q.Active())

	q.FocusFilter()
	require.Same(t, q.Filter(), q.Active())
}

func TestQueryFieldsIndependent(t *testing.T) {
	t.Parallel()

	q := New("f", "c")
	q.Filter().InsertRuneAtCaret('!')
	require.Equal(t, "f!", q.Filter().String())
	require.Equal(t, "c", q.Command().String())
}
