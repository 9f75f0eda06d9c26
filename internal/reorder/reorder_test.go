package reorder

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/showrank/internal/quiz"
)

// rows of height 2 starting at y=10: position i covers [10+2i, 12+2i).
var testRows = Rows{Top: 10, Height: 2}

func abcde() State {
	return New(quiz.Ordering{"A", "B", "C", "D", "E"})
}

func TestNew_NothingInMotion(t *testing.T) {
	s := abcde()
	assert.Equal(t, -1, s.Moving())
	assert.False(t, s.Styled())
	assert.Equal(t, quiz.Ordering{"A", "B", "C", "D", "E"}, s.CurrentOrder())
}

func TestCurrentOrder_IsACopy(t *testing.T) {
	s := abcde()
	o := s.CurrentOrder()
	o[0] = "Z"
	assert.Equal(t, quiz.Item("A"), s.At(0))
}

func TestStart_MouseDefersStyling(t *testing.T) {
	s := Reduce(abcde(), testRows, Start{Y: 14.5, Backend: BackendMouse})

	assert.Equal(t, 2, s.Moving())
	assert.False(t, s.Styled())
	assert.True(t, s.PendingStyle())

	s = Reduce(s, testRows, StyleTick{})
	assert.True(t, s.Styled())
	assert.False(t, s.PendingStyle())
}

func TestStart_KeyboardStylesImmediately(t *testing.T) {
	s := Reduce(abcde(), testRows, Start{Y: testRows.Box(1).Mid(), Backend: BackendKeyboard})

	assert.Equal(t, 1, s.Moving())
	assert.True(t, s.Styled())
	assert.False(t, s.PendingStyle())
}

func TestStart_OutsideListIsNoop(t *testing.T) {
	before := abcde()
	after := Reduce(before, testRows, Start{Y: 3, Backend: BackendMouse})
	assert.True(t, before.Equal(after))

	after = Reduce(before, testRows, Start{Y: 20, Backend: BackendMouse})
	assert.True(t, before.Equal(after))
}

func TestStyleTick_AfterEndIsNoop(t *testing.T) {
	s := Reduce(abcde(), testRows, Start{Y: 10, Backend: BackendMouse})
	s = Reduce(s, testRows, End{})
	s = Reduce(s, testRows, StyleTick{})

	assert.Equal(t, -1, s.Moving())
	assert.False(t, s.Styled())
}

func TestMove_Up(t *testing.T) {
	// Grab D (position 3) and point at the top half of B.
	s := Reduce(abcde(), testRows, Start{Y: 16.5, Backend: BackendMouse})
	s = Reduce(s, testRows, Move{Y: 12.5})

	assert.Equal(t, quiz.Ordering{"A", "D", "B", "C", "E"}, s.CurrentOrder())
	assert.Equal(t, 1, s.Moving())
}

func TestMove_Down(t *testing.T) {
	// Grab A and point at the bottom half of C: lands between C and D.
	s := Reduce(abcde(), testRows, Start{Y: 10.5, Backend: BackendMouse})
	s = Reduce(s, testRows, Move{Y: 15.5})

	assert.Equal(t, quiz.Ordering{"B", "C", "A", "D", "E"}, s.CurrentOrder())
	assert.Equal(t, 2, s.Moving())
}

func TestMove_BelowAllGoesToEnd(t *testing.T) {
	s := Reduce(abcde(), testRows, Start{Y: 12.5, Backend: BackendMouse})
	s = Reduce(s, testRows, Move{Y: 100})

	assert.Equal(t, quiz.Ordering{"A", "C", "D", "E", "B"}, s.CurrentOrder())
	assert.Equal(t, 4, s.Moving())
}

func TestMove_AboveAllGoesToStart(t *testing.T) {
	s := Reduce(abcde(), testRows, Start{Y: 18.5, Backend: BackendMouse})
	s = Reduce(s, testRows, Move{Y: 0})

	assert.Equal(t, quiz.Ordering{"E", "A", "B", "C", "D"}, s.CurrentOrder())
}

func TestMove_Idempotent(t *testing.T) {
	s := Reduce(abcde(), testRows, Start{Y: 16.5, Backend: BackendMouse})
	once := Reduce(s, testRows, Move{Y: 12.5})
	twice := Reduce(once, testRows, Move{Y: 12.5})

	assert.True(t, once.Equal(twice))
}

func TestMove_WithoutGestureIsNoop(t *testing.T) {
	before := abcde()
	after := Reduce(before, testRows, Move{Y: 10})
	assert.True(t, before.Equal(after))
}

func TestMove_DoesNotMutatePreviousState(t *testing.T) {
	s := Reduce(abcde(), testRows, Start{Y: 10.5, Backend: BackendKeyboard})
	_ = Reduce(s, testRows, Move{Y: 100})
	assert.Equal(t, quiz.Ordering{"A", "B", "C", "D", "E"}, s.CurrentOrder())
}

func TestEnd_ClearsMotion(t *testing.T) {
	s := Reduce(abcde(), testRows, Start{Y: 10.5, Backend: BackendKeyboard})
	s = Reduce(s, testRows, Move{Y: 100})
	s = Reduce(s, testRows, End{})

	assert.Equal(t, -1, s.Moving())
	assert.False(t, s.Styled())
	assert.False(t, s.PendingStyle())
	assert.Equal(t, quiz.Ordering{"B", "C", "D", "E", "A"}, s.CurrentOrder())
}

func TestKeyboardSteps(t *testing.T) {
	s := Reduce(abcde(), testRows, Start{Y: testRows.Box(2).Mid(), Backend: BackendKeyboard})
	require.Equal(t, 2, s.Moving())

	s = Reduce(s, testRows, Move{Y: StepUp(testRows, s.Moving())})
	assert.Equal(t, quiz.Ordering{"A", "C", "B", "D", "E"}, s.CurrentOrder())

	s = Reduce(s, testRows, Move{Y: StepUp(testRows, s.Moving())})
	assert.Equal(t, quiz.Ordering{"C", "A", "B", "D", "E"}, s.CurrentOrder())

	// Already at the top.
	s = Reduce(s, testRows, Move{Y: StepUp(testRows, s.Moving())})
	assert.Equal(t, 0, s.Moving())

	for i := 0; i < 6; i++ {
		s = Reduce(s, testRows, Move{Y: StepDown(testRows, s.Moving(), s.Len())})
	}
	assert.Equal(t, quiz.Ordering{"A", "B", "D", "E", "C"}, s.CurrentOrder())
	assert.Equal(t, 4, s.Moving())
}

func TestReduce_PreservesPermutation(t *testing.T) {
	initial := quiz.Default().Reference()
	rows := Rows{Top: 4, Height: 2}
	rng := rand.New(rand.NewPCG(3, 5))
	s := New(initial)

	span := rows.Box(len(initial)).Top + 4
	for i := 0; i < 2000; i++ {
		var e Event
		switch rng.IntN(4) {
		case 0:
			e = Start{Y: rng.Float64() * span, Backend: Backend(rng.IntN(2))}
		case 1, 2:
			e = Move{Y: rng.Float64()*span - 2}
		default:
			e = End{}
		}
		s = Reduce(s, rows, e)
		require.True(t, s.CurrentOrder().IsPermutationOf(initial), "event %d: %#v", i, e)
	}
}

func TestInsertionAnchor(t *testing.T) {
	// Midpoints at 11, 13, 15, 17, 19.
	assert.Equal(t, 1, InsertionAnchor(testRows, 5, 0, 12.9))
	assert.Equal(t, 2, InsertionAnchor(testRows, 5, 1, 12.9))
	assert.Equal(t, 0, InsertionAnchor(testRows, 5, 3, 5))
	assert.Equal(t, -1, InsertionAnchor(testRows, 5, 0, 19))
}

func TestHitTest(t *testing.T) {
	assert.Equal(t, 0, HitTest(testRows, 5, 10))
	assert.Equal(t, 0, HitTest(testRows, 5, 11.9))
	assert.Equal(t, 1, HitTest(testRows, 5, 12))
	assert.Equal(t, -1, HitTest(testRows, 5, 20))
	assert.Equal(t, -1, HitTest(testRows, 5, 9.9))
}
