package tifc

import "testing"

func TestArena(t *testing.T) {
	t.Run("AllocZeroed", func(t *testing.T) {
		var a Arena
		p := Alloc[Position](&a)
		if p == nil {
			t.Fatal("expected allocation")
		}
		if p.X != 0 || p.Y != 0 {
			t.Errorf("expected zeroed value, got %+v", *p)
		}
		if a.Len() != 1 {
			t.Errorf("expected 1 held allocation, got %d", a.Len())
		}
	})

	t.Run("KeepAndRelease", func(t *testing.T) {
		var a Arena
		Alloc[Panel](&a)
		a.Keep(&ViewInterior{})
		if a.Len() != 2 {
			t.Fatalf("expected 2 held, got %d", a.Len())
		}

		a.Release()
		if a.Len() != 0 {
			t.Errorf("expected empty arena after release, got %d", a.Len())
		}
	})

	t.Run("ReusableAfterRelease", func(t *testing.T) {
		var a Arena
		Alloc[Cell](&a)
		a.Release()
		Alloc[Cell](&a)
		if a.Len() != 1 {
			t.Errorf("expected 1 held after reuse, got %d", a.Len())
		}
	})
}
