package crt

import (
	"errors"
	"testing"
)

func TestApplyResizeOrder(t *testing.T) {
	log := new([]string)
	con := &fakeConsole{log: log}
	l, _, d := newTestLoop(t, 800, 600,
		WithResizeScaling(true),
		WithFont(fakeFont{8, 8}),
		WithConsole(con))
	d.log = log

	if err := l.applyResize(800, 600, 1, true); err != nil {
		t.Fatalf("applyResize: %v", err)
	}

	want := []string{"viewport", "target", "grid"}
	if len(*log) != len(want) {
		t.Fatalf("op log = %v, want %v", *log, want)
	}
	for i := range want {
		if (*log)[i] != want[i] {
			t.Fatalf("op log = %v, want %v", *log, want)
		}
	}
}

func TestApplyResizeRebuildsTarget(t *testing.T) {
	l, _, d := newTestLoop(t, 800, 600)

	if err := l.applyResize(800, 600, 1, true); err != nil {
		t.Fatalf("first applyResize: %v", err)
	}
	first := d.targets[0]
	if err := l.applyResize(1024, 768, 1, true); err != nil {
		t.Fatalf("second applyResize: %v", err)
	}

	if !first.destroyed {
		t.Error("old composite target not destroyed")
	}
	if got := d.targets[1]; got.w != 1024 || got.h != 768 || got.destroyed {
		t.Errorf("new target %dx%d destroyed=%v, want live 1024x768", got.w, got.h, got.destroyed)
	}
}

func TestApplyResizeNotify(t *testing.T) {
	l, _, _ := newTestLoop(t, 800, 600, WithStructuredEvents(true), WithResizeScaling(true), WithFont(fakeFont{8, 8}))

	if err := l.applyResize(801, 600, 1, true); err != nil {
		t.Fatalf("applyResize: %v", err)
	}
	evs := l.term.DrainEvents()
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	r, ok := evs[0].(Resized)
	if !ok || r.Width != 800 || r.Height != 600 {
		t.Errorf("got %#v, want Resized{800 600} (usable, not physical)", evs[0])
	}

	// notify=false applies geometry silently.
	if err := l.applyResize(640, 480, 1, false); err != nil {
		t.Fatalf("silent applyResize: %v", err)
	}
	if evs := l.term.DrainEvents(); len(evs) != 0 {
		t.Errorf("silent resize emitted %d events", len(evs))
	}
	if w, h := l.term.SizePixels(); w != 800 || h != 600 {
		t.Errorf("silent resize changed term size to %dx%d", w, h)
	}
}

func TestApplyResizeGridRecompute(t *testing.T) {
	t.Run("scaling re-flows", func(t *testing.T) {
		con := &fakeConsole{}
		l, _, _ := newTestLoop(t, 800, 600, WithResizeScaling(true), WithFont(fakeFont{8, 8}), WithConsole(con))
		if err := l.applyResize(800, 600, 1, true); err != nil {
			t.Fatalf("applyResize: %v", err)
		}
		if w, h := con.GridSize(); w != 100 || h != 75 {
			t.Errorf("grid = %dx%d, want 100x75", w, h)
		}
		if w, h := l.term.SizePixels(); w != 800 || h != 600 {
			t.Errorf("term size = %dx%d, want usable 800x600", w, h)
		}
	})

	t.Run("fixed grid untouched", func(t *testing.T) {
		con := &fakeConsole{gw: 80, gh: 25}
		l, _, _ := newTestLoop(t, 800, 600, WithFont(fakeFont{8, 8}), WithConsole(con))
		if err := l.applyResize(1024, 768, 1, true); err != nil {
			t.Fatalf("applyResize: %v", err)
		}
		if w, h := con.GridSize(); w != 80 || h != 25 {
			t.Errorf("grid = %dx%d, want unchanged 80x25", w, h)
		}
		if w, h := l.term.SizePixels(); w != 1024 || h != 768 {
			t.Errorf("term size = %dx%d, want physical 1024x768", w, h)
		}
	})

	t.Run("largest tile bounds all consoles", func(t *testing.T) {
		small := &fakeConsole{}
		big := &fakeConsole{font: 1}
		l, _, _ := newTestLoop(t, 800, 600,
			WithResizeScaling(true),
			WithFont(fakeFont{8, 8}),
			WithFont(fakeFont{16, 16}),
			WithConsole(small),
			WithConsole(big))
		if err := l.applyResize(808, 600, 1, true); err != nil {
			t.Fatalf("applyResize: %v", err)
		}
		// Usable area floors to 16-pixel tiles: 800x592.
		if w, h := l.scaler.Available(); w != 800 || h != 592 {
			t.Fatalf("usable = %dx%d, want 800x592", w, h)
		}
		if w, h := small.GridSize(); w != 100 || h != 74 {
			t.Errorf("small grid = %dx%d, want 100x74", w, h)
		}
		if w, h := big.GridSize(); w != 50 || h != 37 {
			t.Errorf("big grid = %dx%d, want 50x37", w, h)
		}
	})
}

func TestApplyResizeDegenerate(t *testing.T) {
	l, _, d := newTestLoop(t, 0, 0)
	if err := l.applyResize(0, 0, 1, true); err != nil {
		t.Fatalf("applyResize: %v", err)
	}
	if len(d.viewports) != 0 {
		t.Errorf("viewport set for zero-size window: %v", d.viewports)
	}
	if got := d.targets[0]; got.w != 1 || got.h != 1 {
		t.Errorf("degenerate target = %dx%d, want clamped 1x1", got.w, got.h)
	}
	if w, h := l.scaler.Available(); w != 0 || h != 0 {
		t.Errorf("usable = %dx%d, want 0x0", w, h)
	}
}

func TestApplyResizeTargetError(t *testing.T) {
	l, _, d := newTestLoop(t, 800, 600)
	if err := l.applyResize(800, 600, 1, true); err != nil {
		t.Fatalf("applyResize: %v", err)
	}
	first := d.targets[0]

	wantErr := errors.New("out of memory")
	d.createErr = wantErr
	err := l.applyResize(1024, 768, 1, true)
	if !errors.Is(err, wantErr) {
		t.Fatalf("applyResize error = %v, want wrapped %v", err, wantErr)
	}
	if first.destroyed {
		t.Error("old target destroyed although rebuild failed")
	}
	if l.target != first {
		t.Error("loop dropped the surviving target")
	}
}

func TestLargestTile(t *testing.T) {
	fonts := []Font{fakeFont{8, 8}, fakeFont{16, 12}}
	consoles := []Console{&fakeConsole{font: 0}, &fakeConsole{font: 1}}
	if w, h := largestTile(consoles, fonts); w != 16 || h != 12 {
		t.Errorf("largestTile = %dx%d, want 16x12", w, h)
	}

	// Consoles with unknown fonts are skipped.
	if w, h := largestTile([]Console{&fakeConsole{font: 7}}, fonts); w != 0 || h != 0 {
		t.Errorf("largestTile = %dx%d with bad index, want 0x0", w, h)
	}

	if w, h := largestTile(nil, fonts); w != 0 || h != 0 {
		t.Errorf("largestTile = %dx%d with no consoles, want 0x0", w, h)
	}
}
