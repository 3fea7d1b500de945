package walk

import (
	"math/rand"
	"testing"
)

func mustTrajectory(t *testing.T, start int64, steps []int) *Trajectory {
	t.Helper()
	traj, err := NewTrajectory(start, steps)
	if err != nil {
		t.Fatalf("cannot build trajectory; %v", err)
	}
	return traj
}

func TestStatistics_SinglePointTrajectory(t *testing.T) {
	traj := mustTrajectory(t, 0, nil)
	if tau := Tau(traj); tau != 0 {
		t.Fatalf("tau of a single-point trajectory: want 0, got %v", tau)
	}
	if gamma := Gamma(traj); gamma != 0 {
		t.Fatalf("gamma of a single-point trajectory: want 0, got %v", gamma)
	}
}

func TestStatistics_MonotoneWalks(t *testing.T) {
	up := mustTrajectory(t, 0, []int{1, 1, 1, 1})
	if tau := Tau(up); tau != 4 {
		t.Fatalf("tau of a rising walk: want 4, got %v", tau)
	}
	if gamma := Gamma(up); gamma != 0 {
		t.Fatalf("gamma of a rising walk: want 0, got %v", gamma)
	}

	down := mustTrajectory(t, 0, []int{-1, -1, -1, -1})
	if tau := Tau(down); tau != 0 {
		t.Fatalf("tau of a falling walk: want 0, got %v", tau)
	}
	if gamma := Gamma(down); gamma != 0 {
		t.Fatalf("gamma of a falling walk: want 0, got %v", gamma)
	}
}

func TestTau_PicksLastOfTiedMaxima(t *testing.T) {
	// positions 0,1,0,1,0 attain the maximum at steps 1 and 3
	traj := mustTrajectory(t, 0, []int{1, -1, 1, -1})
	if tau := Tau(traj); tau != 3 {
		t.Fatalf("tau must pick the last tied maximum: want 3, got %v", tau)
	}
}

func TestGamma_PicksLastReturnToStart(t *testing.T) {
	// positions 0,1,0,1,0 return to the start at steps 2 and 4
	traj := mustTrajectory(t, 0, []int{1, -1, 1, -1})
	if gamma := Gamma(traj); gamma != 4 {
		t.Fatalf("gamma must pick the last return: want 4, got %v", gamma)
	}
}

// TestStatistics_AlternatingWalk pins the up-down sawtooth of even length,
// for which gamma lands on the final step and tau one step earlier. Gamma
// may exceed tau; neither statistic bounds the other.
func TestStatistics_AlternatingWalk(t *testing.T) {
	n := 10
	steps := make([]int, n)
	for i := range steps {
		if i%2 == 0 {
			steps[i] = 1
		} else {
			steps[i] = -1
		}
	}
	traj := mustTrajectory(t, 0, steps)
	if tau := Tau(traj); tau != n-1 {
		t.Fatalf("tau of the sawtooth: want %v, got %v", n-1, tau)
	}
	if gamma := Gamma(traj); gamma != n {
		t.Fatalf("gamma of the sawtooth: want %v, got %v", n, gamma)
	}
}

func TestGamma_ComparesAgainstActualStart(t *testing.T) {
	// positions 5,6,5,4,5 with start 5; returns at steps 2 and 4
	traj := mustTrajectory(t, 5, []int{1, -1, -1, 1})
	if gamma := Gamma(traj); gamma != 4 {
		t.Fatalf("gamma of a translated walk: want 4, got %v", gamma)
	}
	if tau := Tau(traj); tau != 1 {
		t.Fatalf("tau of a translated walk: want 1, got %v", tau)
	}

	// the same shape translated to a negative origin keeps its statistics
	negative := mustTrajectory(t, -3, []int{1, -1, -1, 1})
	if gamma := Gamma(negative); gamma != 4 {
		t.Fatalf("gamma of a negative-origin walk: want 4, got %v", gamma)
	}
	if tau := Tau(negative); tau != 1 {
		t.Fatalf("tau of a negative-origin walk: want 1, got %v", tau)
	}
}

// TestStatistics_RangeBounds checks that both statistics stay within the
// step-index range on random walks.
func TestStatistics_RangeBounds(t *testing.T) {
	rg := rand.New(rand.NewSource(999))
	for range 100 {
		traj, err := Generate(rg, 0.5, 50, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tau := Tau(traj)
		gamma := Gamma(traj)
		if tau < 0 || tau > 50 {
			t.Fatalf("tau %v out of range [0,50]", tau)
		}
		if gamma < 0 || gamma > 50 {
			t.Fatalf("gamma %v out of range [0,50]", gamma)
		}
		if traj.Position(tau) < traj.Start() {
			t.Fatalf("maximum position (%v) must not be below the start position (%v)", traj.Position(tau), traj.Start())
		}
	}
}
