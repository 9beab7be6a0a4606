package mood

import (
	"testing"
	"time"

	"github.com/easeaico/project-texas/internal/types"
)

func newTestArbiter(t *testing.T) *Arbiter {
	t.Helper()
	arbiter, err := NewArbiter(DefaultParams())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return arbiter
}

// painFreeRecord returns a record on a painless cycle day with no pending
// release phase, so lower arbitration tiers are reachable.
func painFreeRecord(now time.Time) types.StateRecord {
	rec := types.NewStateRecord(now)
	rec.Biology.CycleStartDate = now.AddDate(0, 0, -10) // day 11
	release := now.Add(-24 * time.Hour)                 // Normal phase
	rec.Biology.LastReleaseTime = &release
	return rec
}

func TestComatoseOverridesEverything(t *testing.T) {
	arbiter := newTestArbiter(t)
	now := time.Now()

	moods := []types.MoodState{
		{},
		{Pleasure: 10, Arousal: 10, Dominance: 10},
		{Pleasure: -10, Arousal: -10, Dominance: -10},
	}
	for _, m := range moods {
		for _, lust := range []float64{0, 50, 100} {
			rec := painFreeRecord(now)
			rec.Biology.Stamina = 5
			rec.Mood = m
			rec.Desire.Lust = lust

			d, err := arbiter.Decide(rec, now)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if d.Level != LevelHardLock || d.Lock != LockComatose {
				t.Fatalf("expected comatose lock for mood=%+v lust=%.0f, got %+v", m, lust, d)
			}
		}
	}
}

func TestRefractoryLockBeatsMindBreak(t *testing.T) {
	arbiter := newTestArbiter(t)
	now := time.Now()

	rec := painFreeRecord(now)
	release := now.Add(-10 * time.Minute)
	rec.Biology.LastReleaseTime = &release
	rec.Desire.Lust = 99

	d, err := arbiter.Decide(rec, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.Level != LevelHardLock || d.Lock != LockRefractory {
		t.Fatalf("expected refractory lock, got %+v", d)
	}
}

func TestPainLockFlipsAtBreakThreshold(t *testing.T) {
	arbiter := newTestArbiter(t)
	now := time.Now()

	// Cycle day 1 carries pain 0.8; sensitivity 50 puts the bar at lust 80.
	makeRecord := func(lust float64) types.StateRecord {
		rec := types.NewStateRecord(now)
		rec.Biology.CycleStartDate = now
		rec.Biology.Sensitivity = 50
		rec.Mood.Pleasure = -5
		rec.Desire.Lust = lust
		return rec
	}

	for lust := 0.0; lust <= 100.0; lust++ {
		d, err := arbiter.Decide(makeRecord(lust), now)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if d.Level != LevelHardLock {
			t.Fatalf("lust %.0f: expected hard lock, got %s", lust, d.Level)
		}
		want := LockPain
		if lust >= 80 {
			want = LockPainBypass
		}
		if d.Lock != want {
			t.Fatalf("lust %.0f: expected %s, got %s", lust, want, d.Lock)
		}
	}
}

func TestPainLockNeedsLowPleasure(t *testing.T) {
	arbiter := newTestArbiter(t)
	now := time.Now()

	rec := types.NewStateRecord(now)
	rec.Biology.CycleStartDate = now // day 1, pain 0.8
	rec.Mood.Pleasure = 2            // comforted: no lock
	rec.Desire.Lust = 10

	d, err := arbiter.Decide(rec, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.Level == LevelHardLock {
		t.Fatalf("expected no pain lock with positive pleasure, got %+v", d)
	}
}

func TestMindBreakDirective(t *testing.T) {
	arbiter := newTestArbiter(t)
	now := time.Now()

	rec := painFreeRecord(now)
	rec.Desire.Lust = 98
	rec.Mood = types.MoodState{Pleasure: 8, Arousal: 8, Dominance: -5}

	d, err := arbiter.Decide(rec, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.Level != LevelLimit || !d.MindBreak {
		t.Fatalf("expected limit state, got %+v", d)
	}
}

func TestResonanceCombinesQuadrantAndPhase(t *testing.T) {
	arbiter := newTestArbiter(t)
	now := time.Now()

	rec := painFreeRecord(now)
	rec.Biology.LastReleaseTime = nil // Starved
	rec.Mood = types.MoodState{Pleasure: -3, Arousal: 6, Dominance: 6}
	rec.Desire.Lust = 80

	d, err := arbiter.Decide(rec, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.Level != LevelResonance || d.Quadrant != QuadrantTsundere || d.Phase != PhaseStarved {
		t.Fatalf("unexpected directive: %+v", d)
	}
	if d.Text == "" {
		t.Fatalf("expected flavor text")
	}
}

func TestBaseStateForNeutralLowLust(t *testing.T) {
	arbiter := newTestArbiter(t)
	now := time.Now()

	rec := painFreeRecord(now)
	rec.Desire.Lust = 20

	d, err := arbiter.Decide(rec, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.Level != LevelBase || d.Quadrant != QuadrantNeutral {
		t.Fatalf("expected base state, got %+v", d)
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	arbiter := newTestArbiter(t)
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	rec := painFreeRecord(now)
	rec.Mood = types.MoodState{Pleasure: 6, Arousal: 6, Dominance: 6}
	rec.Desire.Lust = 60

	first, err := arbiter.Decide(rec, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := arbiter.Decide(rec, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first != second {
		t.Fatalf("expected identical directives:\n%+v\n%+v", first, second)
	}
}

func TestDecideIsTotalWithinBounds(t *testing.T) {
	arbiter := newTestArbiter(t)
	now := time.Now()

	for p := -10.0; p <= 10.0; p += 5 {
		for lust := 0.0; lust <= 100.0; lust += 25 {
			for _, stamina := range []float64{5, 50, 100} {
				rec := painFreeRecord(now)
				rec.Mood = types.MoodState{Pleasure: p, Arousal: -p, Dominance: p / 2}
				rec.Desire.Lust = lust
				rec.Biology.Stamina = stamina

				d, err := arbiter.Decide(rec, now)
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if d.Level == "" || d.Text == "" {
					t.Fatalf("incomplete directive for p=%.0f lust=%.0f stamina=%.0f: %+v", p, lust, stamina, d)
				}
			}
		}
	}
}
