package board

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_StartsEmpty(t *testing.T) {
	b := New(DefaultLayout())
	n := 0
	b.Each(func(Position, *Stone) { n++ })
	assert.Zero(t, n)
	assert.Empty(t, b.Moves())
	assert.Equal(t, Black, b.Next())
}

func TestBoard_PlaceSnapsToIntersection(t *testing.T) {
	b := New(DefaultLayout())
	p, ok := b.Place(157, 43, White) // relative (107, -7) → (2, 0)
	require.True(t, ok)
	assert.Equal(t, Position{X: 2, Y: 0}, p)

	s, ok := b.Get(p)
	require.True(t, ok)
	assert.Equal(t, Point{X: 150, Y: 50}, s.Center())
	assert.Equal(t, White, s.Color())
	assert.True(t, s.Animating())
}

func TestBoard_PlaceOnOccupiedIsNoop(t *testing.T) {
	b := New(DefaultLayout())
	_, ok := b.Place(100, 100, Black)
	require.True(t, ok)

	for _, c := range []Color{Black, White} {
		// Same intersection, slightly different pointer.
		_, ok = b.Place(104, 96, c)
		assert.False(t, ok)
	}
	s, _ := b.Get(Position{X: 1, Y: 1})
	assert.Equal(t, Black, s.Color())
	assert.Len(t, b.Moves(), 1)
}

func TestBoard_PlaceMissIsNoop(t *testing.T) {
	b := New(DefaultLayout())
	_, ok := b.Place(75, 75, Black) // dead zone
	assert.False(t, ok)
	_, ok = b.Place(5, 5, Black) // outside the board
	assert.False(t, ok)
	assert.Empty(t, b.Moves())
}

func TestBoard_IsPlaceableAgreesWithPlace(t *testing.T) {
	b := New(DefaultLayout())
	for _, xy := range [][2]float64{{50, 50}, {100, 50}, {500, 500}, {950, 950}} {
		_, ok := b.Place(xy[0], xy[1], Black)
		require.True(t, ok)
	}
	for y := -20.0; y < 1000; y += 7.3 {
		for x := -20.0; x < 1000; x += 7.3 {
			want := b.IsPlaceable(x, y)
			probe := New(DefaultLayout())
			b.Each(func(p Position, s *Stone) { probe.set(p, *s) })
			_, got := probe.Place(x, y, White)
			if got != want {
				t.Fatalf("(%.1f,%.1f): IsPlaceable=%v but Place accepted=%v", x, y, want, got)
			}
		}
	}
}

func TestBoard_ExtremeCoordinatesAreNotPlaceable(t *testing.T) {
	b := New(DefaultLayout())
	for _, xy := range [][2]float64{
		{1e300, 50},
		{50, 1e300},
		{-1e300, -1e300},
		{math.Inf(1), 50},
		{50, math.NaN()},
	} {
		assert.False(t, b.IsPlaceable(xy[0], xy[1]), "(%g,%g)", xy[0], xy[1])
		_, ok := b.Place(xy[0], xy[1], Black)
		assert.False(t, ok, "(%g,%g)", xy[0], xy[1])
		assert.Equal(t, CursorDefault, b.Hover(xy[0], xy[1]))
	}
	assert.Empty(t, b.Moves())
}

func TestBoard_HoverCursor(t *testing.T) {
	b := New(DefaultLayout())
	assert.Equal(t, CursorPointer, b.Hover(50, 50))
	assert.Equal(t, CursorDefault, b.Hover(75, 75))
	b.Place(50, 50, Black)
	assert.Equal(t, CursorDefault, b.Hover(50, 50))
}

func TestBoard_PlayAtAlternatesOnlyOnAccept(t *testing.T) {
	b := New(DefaultLayout())
	m, ok := b.PlayAt(50, 50)
	require.True(t, ok)
	assert.Equal(t, Black, m.Color)
	assert.Equal(t, 1, m.Number)

	_, ok = b.PlayAt(50, 50)
	require.False(t, ok)
	assert.Equal(t, White, b.Next(), "rejected play must not hand over the turn")

	m, ok = b.PlayAt(100, 50)
	require.True(t, ok)
	assert.Equal(t, White, m.Color)
	assert.Equal(t, 2, m.Number)
	assert.Equal(t, Black, b.Next())
}

func TestBoard_GetOutOfRange(t *testing.T) {
	b := New(DefaultLayout())
	_, ok := b.Get(Position{X: -1, Y: 0})
	assert.False(t, ok)
	_, ok = b.Get(Position{X: 0, Y: Size})
	assert.False(t, ok)
}

func TestBoard_EachIsRowMajor(t *testing.T) {
	b := New(DefaultLayout())
	b.Place(500, 100, Black) // (9,1)
	b.Place(100, 500, Black) // (1,9)
	b.Place(50, 100, Black)  // (0,1)
	var got []Position
	b.Each(func(p Position, _ *Stone) { got = append(got, p) })
	assert.Equal(t, []Position{{0, 1}, {9, 1}, {1, 9}}, got)
}

func TestBoard_UpdateAdvancesIndependently(t *testing.T) {
	b := New(DefaultLayout())
	b.Place(50, 50, Black)
	b.Update(1.0)
	b.Place(100, 50, White)

	settled := b.Update(0.5)
	assert.Equal(t, []Position{{0, 0}}, settled)

	first, _ := b.Get(Position{0, 0})
	second, _ := b.Get(Position{1, 0})
	assert.False(t, first.Animating())
	require.True(t, second.Animating())
	a, _ := second.Animation()
	assert.InDelta(t, 0.5, a.Elapsed(), 1e-12)
}

func TestBoard_DrawOrder(t *testing.T) {
	b := New(DefaultLayout())
	b.Place(50, 50, Black)
	b.Update(RingEnd)

	r := &Recorder{}
	b.Draw(r)

	lines := 2 * Size
	var kinds []OpKind
	for _, op := range r.Ops {
		kinds = append(kinds, op.Kind)
	}
	require.Len(t, kinds, lines+1+lines+2+9+4)

	i := 0
	for ; i < lines; i++ {
		require.Equal(t, OpLine, kinds[i])
		require.Equal(t, ShadowColor, r.Ops[i].Color)
	}
	require.Equal(t, OpFillPolygon, kinds[i], "stone shadow follows line shadows")
	require.Equal(t, ShadowColor, r.Ops[i].Color)
	i++
	for end := i + lines; i < end; i++ {
		require.Equal(t, OpLine, kinds[i])
		require.Equal(t, LineColor, r.Ops[i].Color)
	}
	require.Equal(t, OpStrokeRect, kinds[i])
	require.Equal(t, OpStrokeRect, kinds[i+1])
	i += 2
	for end := i + 9; i < end; i++ {
		require.Equal(t, OpFillCircle, kinds[i])
		require.Equal(t, 10.0, r.Ops[i].Radius, "star point radius")
	}
	for ; i < len(kinds); i++ {
		require.Equal(t, OpFillPolygon, kinds[i], "stones paint last")
	}
}

func TestBoard_DrawSkipsShadowWhileAnimating(t *testing.T) {
	b := New(DefaultLayout())
	b.Place(50, 50, Black)
	r := &Recorder{}
	b.Draw(r)
	assert.Equal(t, 0, r.Count(OpFillPolygon))
	assert.Equal(t, 2*Size*2+10, r.Count(OpLine))
}
