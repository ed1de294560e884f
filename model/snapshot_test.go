package model

import "testing"

func TestSnapshotIsACopy(t *testing.T) {
	g := NewGrid(5, 5)
	g.Place(Blinker, 1, 2)
	snap := g.Snapshot()
	want := snap.String()

	g.Set(0, 0, true)
	g.Step()
	g.Step()

	if got := snap.String(); got != want {
		t.Errorf("snapshot changed after grid mutation:\n%s\nwant:\n%s", got, want)
	}
	if snap.Population() != 3 {
		t.Errorf("Population() = %d, want 3", snap.Population())
	}
}

func TestSnapshotAlive(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(2, 1, true)
	snap := g.Snapshot()

	if snap.Width() != 3 || snap.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", snap.Width(), snap.Height())
	}
	if !snap.Alive(2, 1) {
		t.Error("Alive(2, 1) = false, want true")
	}
	if snap.Alive(1, 1) || snap.Alive(3, 1) || snap.Alive(-1, 0) {
		t.Error("unexpected live cell")
	}
}

func TestSnapshotEqualAndHash(t *testing.T) {
	a := NewGrid(4, 4)
	a.Place(Block, 1, 1)
	b := NewGrid(4, 4)
	b.Place(Block, 1, 1)
	c := NewGrid(4, 4)
	c.Place(Block, 0, 0)

	if !a.Snapshot().Equal(b.Snapshot()) || a.Snapshot().Hash() != b.Snapshot().Hash() {
		t.Error("identical grids should compare equal")
	}
	if a.Snapshot().Equal(c.Snapshot()) || a.Snapshot().Hash() == c.Snapshot().Hash() {
		t.Error("different grids should not compare equal")
	}
	if a.Snapshot().Equal(NewGrid(4, 5).Snapshot()) {
		t.Error("snapshots of different sizes should not compare equal")
	}
}

func TestSnapshotString(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, true)
	g.Set(2, 1, true)

	want := "#..\n..#\n"
	if got := g.Snapshot().String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
