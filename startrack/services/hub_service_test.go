package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/utils"
)

func int64Ptr(v int64) *int64 { return &v }

func TestScoreDelta(t *testing.T) {
	tests := []struct {
		name       string
		current    int64
		historical *int64
		want       *int64
	}{
		{
			name:       "NoHistory",
			current:    5000,
			historical: nil,
			want:       nil,
		},
		{
			name:       "Growth",
			current:    5000,
			historical: int64Ptr(4200),
			want:       int64Ptr(800),
		},
		{
			name:       "Loss",
			current:    4000,
			historical: int64Ptr(4200),
			want:       int64Ptr(-200),
		},
		{
			name:       "Unchanged",
			current:    4200,
			historical: int64Ptr(4200),
			want:       int64Ptr(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreDelta(tt.current, tt.historical)
			if (got == nil) != (tt.want == nil) {
				t.Errorf("ScoreDelta() = %v, want %v", got, tt.want)
				return
			}
			if got != nil && *got != *tt.want {
				t.Errorf("ScoreDelta() = %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestDeltaSinceUsesLatestRowAtOrBeforeCutoff(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	history := []*models.ScoreSnapshot{
		{ScoreTotal: 100, RecordedAt: now.Add(-30 * time.Hour)},
		{ScoreTotal: 100, RecordedAt: now.Add(-2 * time.Hour)},
	}

	// The 24h boundary row is the 30h-old snapshot; the 2h-old row lies
	// inside the window and must not shadow it.
	got := DeltaSince(150, history, now.Add(-24*time.Hour))
	if got == nil || *got != 50 {
		t.Errorf("DeltaSince(24h) = %v, want 50", got)
	}

	// No row is old enough for a 48h delta.
	if got := DeltaSince(150, history, now.Add(-48*time.Hour)); got != nil {
		t.Errorf("DeltaSince(48h) = %d, want nil", *got)
	}
}

func TestScoreDeltasFromHistory(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	history := []*models.ScoreSnapshot{
		{ScoreTotal: 100, RecordedAt: now.Add(-30 * time.Hour)},
		{ScoreTotal: 130, RecordedAt: now.Add(-10 * time.Hour)},
	}

	deltas := ScoreDeltasFromHistory(150, history, now)
	if deltas.Delta6h == nil || *deltas.Delta6h != 20 {
		t.Errorf("Delta6h = %v, want 20 (10h-old row is the 6h boundary)", deltas.Delta6h)
	}
	if deltas.Delta12h == nil || *deltas.Delta12h != 50 {
		t.Errorf("Delta12h = %v, want 50 (10h-old row lies inside the 12h window)", deltas.Delta12h)
	}
	if deltas.Delta24h == nil || *deltas.Delta24h != 50 {
		t.Errorf("Delta24h = %v, want 50", deltas.Delta24h)
	}
}

func TestActivityFromTotals(t *testing.T) {
	got := ActivityFromTotals(&models.ActivityTotals{
		Count:     12,
		Count24h:  3,
		Metal:     900,
		Crystal:   900,
		Deuterium: 900,
	})
	want := ActivityStats{
		Count:     12,
		Count24h:  3,
		Metal:     900,
		Crystal:   900,
		Deuterium: 900,
		Points:    2,
	}
	if got != want {
		t.Errorf("ActivityFromTotals() = %+v, want %+v", got, want)
	}
}

func TestLeaderboardMaxima(t *testing.T) {
	rows := []models.PlayerLevels{
		{
			PlayerID:   30,
			PlayerName: "Gamma",
			Levels:     models.LevelMap{"energy": 12, "laser": 10},
		},
		{
			PlayerID:   10,
			PlayerName: "Alpha",
			Levels:     models.LevelMap{"energy": 12, "laser": 8},
		},
		{
			PlayerID:   20,
			PlayerName: "Beta",
			Levels:     models.LevelMap{"energy": 14},
		},
	}

	got := LeaderboardMaxima(rows)
	want := map[string]LeaderEntry{
		// Tie on energy 12 between Alpha and Gamma before Beta's 14 wins.
		"energy": {MaxLevel: 14, HolderID: 20, HolderName: "Beta"},
		"laser":  {MaxLevel: 10, HolderID: 30, HolderName: "Gamma"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LeaderboardMaxima() = %v, want %v", got, want)
	}
}

func TestLeaderboardMaximaTieGoesToLowestID(t *testing.T) {
	rows := []models.PlayerLevels{
		{PlayerID: 99, PlayerName: "Late", Levels: models.LevelMap{"laser": 10}},
		{PlayerID: 7, PlayerName: "Early", Levels: models.LevelMap{"laser": 10}},
	}

	got := LeaderboardMaxima(rows)
	if got["laser"].HolderID != 7 {
		t.Errorf("LeaderboardMaxima() holder = %d, want 7", got["laser"].HolderID)
	}
}

func TestInCurrentSyncWindow(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		now  time.Time
		want bool
	}{
		{
			name: "SameBucket",
			t:    time.Date(2025, 3, 10, 6, 5, 0, 0, time.UTC),
			now:  time.Date(2025, 3, 10, 11, 59, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "BucketBoundary",
			t:    time.Date(2025, 3, 10, 5, 59, 0, 0, time.UTC),
			now:  time.Date(2025, 3, 10, 6, 1, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "DifferentDay",
			t:    time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC),
			now:  time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "LastBucketOfDay",
			t:    time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
			now:  time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "NonUTCInput",
			t:    time.Date(2025, 3, 10, 8, 0, 0, 0, time.FixedZone("CET", 3600)),
			now:  time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCurrentSyncWindow(tt.t, tt.now); got != tt.want {
				t.Errorf("InCurrentSyncWindow(%v, %v) = %v, want %v", tt.t, tt.now, got, tt.want)
			}
		})
	}
}

func TestDistancesFrom(t *testing.T) {
	origin := utils.Coordinates{Galaxy: 1, System: 100, Position: 5}
	targets := []utils.Coordinates{
		{Galaxy: 2, System: 1, Position: 1},
		{Galaxy: 1, System: 100, Position: 8},
		{Galaxy: 1, System: 103, Position: 4},
	}

	got := DistancesFrom(origin, targets)
	if len(got) != 3 {
		t.Fatalf("DistancesFrom() returned %d targets, want 3", len(got))
	}

	wantOrder := []string{"1:100:8", "1:103:4", "2:1:1"}
	for i, want := range wantOrder {
		if got[i].Coordinates != want {
			t.Errorf("DistancesFrom()[%d] = %s, want %s", i, got[i].Coordinates, want)
		}
	}
	if got[0].Distance != 1015 {
		t.Errorf("DistancesFrom()[0].Distance = %d, want 1015", got[0].Distance)
	}
}
