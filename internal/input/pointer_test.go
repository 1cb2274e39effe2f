package input

import "testing"

type target struct {
	umbrella bool
	x        float64
	moves    int
}

func (t *target) SetUmbrella(open bool) { t.umbrella = open }
func (t *target) SetPointerX(x float64) { t.x = x; t.moves++ }

func TestTrackerEdges(t *testing.T) {
	var tr Tracker
	steps := []struct {
		in   Sample
		want Kind
	}{
		{Sample{X: 10, Y: 10}, None},
		{Sample{X: 30, Y: 14}, None},
		{Sample{Down: true, X: 10, Y: 10}, Began},
		{Sample{Down: true, X: 10, Y: 10}, None},
		{Sample{Down: true, X: 40, Y: 12}, Moved},
		{Sample{Down: false, X: 45, Y: 12}, Ended},
		{Sample{Down: false, X: 45, Y: 12}, None},
		{Sample{Down: false, X: 80, Y: 20}, None},
		{Sample{Down: true, X: 90, Y: 5}, Began},
	}
	for i, step := range steps {
		got := tr.Update(step.in)
		if got.Kind != step.want {
			t.Fatalf("step %d: kind %v, want %v", i, got.Kind, step.want)
		}
		if got.Kind != None && got.X != step.in.X {
			t.Fatalf("step %d: x %f, want %f", i, got.X, step.in.X)
		}
	}
	if !tr.Down() {
		t.Fatal("tracker should report the pointer held")
	}
}

func TestApply(t *testing.T) {
	tg := &target{}
	if changed, _ := Apply(tg, Event{}); changed || tg.moves != 0 {
		t.Fatal("empty event should do nothing")
	}
	changed, open := Apply(tg, Event{Kind: Began, X: 50})
	if !changed || !open || !tg.umbrella || tg.x != 50 {
		t.Fatalf("began: changed=%v open=%v target=%+v", changed, open, tg)
	}
	changed, _ = Apply(tg, Event{Kind: Moved, X: 70})
	if changed || !tg.umbrella || tg.x != 70 {
		t.Fatalf("moved: changed=%v target=%+v", changed, tg)
	}
	changed, open = Apply(tg, Event{Kind: Ended, X: 71})
	if !changed || open || tg.umbrella || tg.x != 70 {
		t.Fatalf("ended: changed=%v open=%v target=%+v", changed, open, tg)
	}
}

func TestHoverDoesNotSteer(t *testing.T) {
	var tr Tracker
	tg := &target{x: 200}
	for _, s := range []Sample{{X: 250, Y: 10}, {X: 300, Y: 10}} {
		Apply(tg, tr.Update(s))
	}
	if tg.moves != 0 || tg.x != 200 || tg.umbrella {
		t.Fatalf("hover changed the target: %+v", tg)
	}

	Apply(tg, tr.Update(Sample{Down: true, X: 300, Y: 10}))
	Apply(tg, tr.Update(Sample{Down: true, X: 320, Y: 10}))
	if tg.x != 320 || tg.moves != 2 {
		t.Fatalf("drag should steer: %+v", tg)
	}
}

func TestApplySuspendedOnlyReleases(t *testing.T) {
	tg := &target{umbrella: true, x: 100}
	for _, e := range []Event{{Kind: Began, X: 5}, {Kind: Moved, X: 6}, {}} {
		if ApplySuspended(tg, e) {
			t.Fatalf("%v reported a close", e.Kind)
		}
	}
	if !tg.umbrella || tg.moves != 0 {
		t.Fatalf("suspended input leaked through: %+v", tg)
	}
	if !ApplySuspended(tg, Event{Kind: Ended, X: 7}) || tg.umbrella {
		t.Fatalf("release while suspended should close the umbrella: %+v", tg)
	}
	if tg.moves != 0 {
		t.Fatal("release while suspended should not steer")
	}
}
