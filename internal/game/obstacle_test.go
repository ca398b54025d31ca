package game

import (
	"testing"

	"github.com/ndanilko/flaptty/internal/config"
	"github.com/ndanilko/flaptty/internal/core"
)

func TestSpawnPairGeometry(t *testing.T) {
	cfg := testConfig()
	rt := testRuntime()

	// Draw many pairs across seeds and check everything the generator
	// promises: gap bounds, fixed gap height, spawn position, shared
	// pair identity.
	for seed := int64(0); seed < 50; seed++ {
		rt.Seed = seed
		s := newTestSession(t, cfg, rt, nil)
		s.Jump()

		for n := 0; n < 20; n++ {
			s.spawnPair()
		}

		if len(s.obstacles) != 40 {
			t.Fatalf("seed %d: expected 40 obstacles, got %d", seed, len(s.obstacles))
		}

		for i := 0; i < len(s.obstacles); i += 2 {
			top, bottom := s.obstacles[i], s.obstacles[i+1]

			if top.Edge != EdgeTop || bottom.Edge != EdgeBottom {
				t.Fatalf("seed %d: pair %d edges wrong: %v/%v", seed, i/2, top.Edge, bottom.Edge)
			}
			if top.Pair != bottom.Pair {
				t.Errorf("seed %d: halves of one spawn carry different pair ids: %d vs %d", seed, top.Pair, bottom.Pair)
			}
			if top.X != float64(rt.ScreenW) || bottom.X != float64(rt.ScreenW) {
				t.Errorf("seed %d: pair must spawn at the right edge %d, got %g/%g", seed, rt.ScreenW, top.X, bottom.X)
			}
			if top.W != cfg.Obstacles.Width || bottom.W != cfg.Obstacles.Width {
				t.Errorf("seed %d: wrong obstacle width", seed)
			}
			if top.passed || bottom.passed {
				t.Errorf("seed %d: fresh obstacles must not be marked passed", seed)
			}

			// Top spans [0, gapY]; bottom spans [gapY+gap, fieldH].
			gapY := top.H
			if top.Y != 0 {
				t.Errorf("seed %d: top half must start at the field top, got y=%d", seed, top.Y)
			}
			if bottom.Y != gapY+cfg.Obstacles.GapHeight {
				t.Errorf("seed %d: gap height %d, expected fixed %d", seed, bottom.Y-gapY, cfg.Obstacles.GapHeight)
			}
			if bottom.Y+bottom.H != rt.ScreenH {
				t.Errorf("seed %d: bottom half must reach the field bottom, ends at %d", seed, bottom.Y+bottom.H)
			}

			// Gap offset honors the clearance margin on both edges.
			minY := cfg.Obstacles.MinGapY
			maxY := rt.ScreenH - cfg.Obstacles.GapHeight - minY
			if gapY < minY || gapY > maxY {
				t.Errorf("seed %d: gapY %d outside [%d, %d]", seed, gapY, minY, maxY)
			}
		}
	}
}

func TestSpawnPairUsesFullRange(t *testing.T) {
	cfg := testConfig()
	rt := testRuntime()
	rt.Seed = 7

	s := newTestSession(t, cfg, rt, nil)
	s.Jump()

	seen := make(map[int]bool)
	for n := 0; n < 500; n++ {
		s.spawnPair()
		seen[s.obstacles[len(s.obstacles)-2].H] = true
		s.obstacles = s.obstacles[:0]
	}

	minY := cfg.Obstacles.MinGapY
	maxY := rt.ScreenH - cfg.Obstacles.GapHeight - minY
	if !seen[minY] || !seen[maxY] {
		t.Errorf("500 draws should reach both bounds of [%d, %d], saw %d distinct values", minY, maxY, len(seen))
	}
}

func TestNewSessionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sessionParams)
	}{
		{
			name:   "zero tick rate",
			mutate: func(p *sessionParams) { p.rt.TickRate = 0 },
		},
		{
			name:   "field too narrow for player",
			mutate: func(p *sessionParams) { p.rt.ScreenW = 10 },
		},
		{
			name: "gap cannot fit between margins",
			mutate: func(p *sessionParams) {
				p.rt.ScreenH = 12
				p.cfg.Obstacles.GapHeight = 10
				p.cfg.Obstacles.MinGapY = 2
			},
		},
		{
			name: "no room between field bands",
			mutate: func(p *sessionParams) {
				p.rt.ScreenH = 14
				p.cfg.Obstacles.GapHeight = 5
				p.cfg.Obstacles.MinGapY = 0
				p.cfg.Field.TopMargin = 7
				p.cfg.Field.BottomMargin = 6
			},
		},
		{
			name:   "invalid config rejected",
			mutate: func(p *sessionParams) { p.cfg.Physics.Gravity = -1 },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := sessionParams{cfg: testConfig(), rt: testRuntime()}
			tc.mutate(&p)
			if _, err := NewSession(p.cfg, p.rt, nil); err == nil {
				t.Error("expected NewSession to fail fast, got nil error")
			}
		})
	}
}

type sessionParams struct {
	cfg config.Config
	rt  core.RuntimeConfig
}
