package board

import (
	"testing"
)

func TestStone_StartsAnimating(t *testing.T) {
	s := NewStone(Black, Point{X: 100, Y: 100}, 50)
	a, ok := s.Animation()
	if !ok {
		t.Fatal("new stone should own an animation")
	}
	if a.Elapsed() != 0 || a.Finished() {
		t.Fatalf("fresh animation: elapsed=%.2f finished=%v", a.Elapsed(), a.Finished())
	}
}

func TestStone_SettlesExactlyOnce(t *testing.T) {
	s := NewStone(White, Point{X: 100, Y: 100}, 50)
	a, _ := s.Animation()

	if s.Update(RingEnd / 2) {
		t.Fatal("stone settled halfway through the animation")
	}
	if !s.Update(RingEnd / 2) {
		t.Fatal("stone should settle when the terminal threshold is reached")
	}
	if !a.Finished() {
		t.Fatal("dropped animation should report finished")
	}
	if s.Animating() {
		t.Fatal("stone still animating after settle")
	}
	for i := 0; i < 5; i++ {
		if s.Update(1) {
			t.Fatal("settled stone reported a second transition")
		}
	}
	if _, ok := s.Animation(); ok {
		t.Fatal("settled stone returned an animation")
	}
}

func TestStone_DrawDelegatesWhileAnimating(t *testing.T) {
	s := NewStone(Black, Point{X: 100, Y: 100}, 50)
	s.Update(0.1)

	var got, want Recorder
	s.Draw(&got)
	FrameAt(Point{X: 100, Y: 100}, 50, 0.1).Draw(&want)
	if len(got.Ops) != len(want.Ops) {
		t.Fatalf("animating stone drew %d ops, frame has %d", len(got.Ops), len(want.Ops))
	}
	if got.Count(OpFillPolygon) != 0 {
		t.Fatal("animating stone should not draw static rings")
	}
}

func TestStone_StaticRingsPerColor(t *testing.T) {
	for _, tc := range []struct {
		color Color
		rings int
	}{
		{Black, 4},
		{White, 5},
	} {
		s := NewStone(tc.color, Point{X: 200, Y: 200}, 50)
		s.Update(RingEnd)

		var r Recorder
		s.Draw(&r)
		if r.Count(OpFillPolygon) != tc.rings {
			t.Fatalf("%s: expected %d rings, got %d", tc.color, tc.rings, r.Count(OpFillPolygon))
		}
		// Back to front: each ring is no wider than the one before.
		prev := 1e9
		for i, op := range r.Ops {
			w := op.Points[0].X - 200
			if w > prev {
				t.Fatalf("%s: ring %d wider than ring %d", tc.color, i, i-1)
			}
			prev = w
		}
		if r.Ops[0].Color != Rings(tc.color)[0].Color {
			t.Fatalf("%s: outer ring colour mismatch", tc.color)
		}
	}
}

func TestStone_ShadowOnlyWhenSettled(t *testing.T) {
	s := NewStone(Black, Point{X: 100, Y: 100}, 50)

	var r Recorder
	s.DrawShadow(&r)
	if len(r.Ops) != 0 {
		t.Fatalf("animating stone drew %d shadow ops", len(r.Ops))
	}

	s.Update(RingEnd)
	s.DrawShadow(&r)
	if len(r.Ops) != 1 {
		t.Fatalf("settled stone should draw one shadow, got %d", len(r.Ops))
	}
	want := Hexagon(Point{X: 108, Y: 108}, 25)
	for i, p := range r.Ops[0].Points {
		if p != want[i] {
			t.Fatalf("shadow vertex %d = %+v, want %+v", i, p, want[i])
		}
	}
	if r.Ops[0].Color != ShadowColor {
		t.Fatal("shadow should use the shadow colour")
	}
}

func TestStone_IndependentAnimations(t *testing.T) {
	a := NewStone(Black, Point{X: 50, Y: 50}, 50)
	b := NewStone(White, Point{X: 100, Y: 50}, 50)
	a.Update(1.0)

	animA, _ := a.Animation()
	animB, _ := b.Animation()
	if animA.Elapsed() != 1.0 {
		t.Fatalf("stone a elapsed %.2f, want 1.0", animA.Elapsed())
	}
	if animB.Elapsed() != 0 {
		t.Fatalf("advancing stone a moved stone b to %.2f", animB.Elapsed())
	}
}

func TestColorOther(t *testing.T) {
	if Black.Other() != White || White.Other() != Black {
		t.Fatal("Other should swap colours")
	}
}
