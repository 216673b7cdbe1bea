package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/database/repositories"
	"github.com/voidcrew/startrack/startrack/utils"
)

// PlanetOverview is one planet row of the hub overview with the score deltas
// already computed. Deltas stay nil when no history row exists at the window
// boundary; zero would falsely read as "no change".
type PlanetOverview struct {
	Coordinates string  `json:"coordinates"`
	Galaxy      int64   `json:"galaxy"`
	System      int64   `json:"system"`
	Position    int64   `json:"position"`
	PlayerID    int64   `json:"player_id"`
	PlayerName  string  `json:"player_name"`
	AllianceTag *string `json:"alliance_tag"`
	Notice      *string `json:"notice"`

	ScoreTotal     int64 `json:"score_total"`
	ScoreBuildings int64 `json:"score_buildings"`
	ScoreResearch  int64 `json:"score_research"`
	ScoreFleet     int64 `json:"score_fleet"`
	ScoreDefense   int64 `json:"score_defense"`

	Delta6h  *int64 `json:"delta_6h"`
	Delta12h *int64 `json:"delta_12h"`
	Delta18h *int64 `json:"delta_18h"`
	Delta24h *int64 `json:"delta_24h"`

	InactiveSince    *time.Time `json:"inactive_since"`
	VacationSince    *time.Time `json:"vacation_since"`
	LastSpyReport    *time.Time `json:"last_spy_report"`
	LastBattleReport *time.Time `json:"last_battle_report"`
	SpyMetal         *int64     `json:"spy_metal"`
	SpyCrystal       *int64     `json:"spy_crystal"`
	SpyDeuterium     *int64     `json:"spy_deuterium"`

	Distance *int64 `json:"distance,omitempty"`
}

// ActivityStats is one activity category's lifetime and rolling-24h tallies.
type ActivityStats struct {
	Count     int64 `json:"count"`
	Count24h  int64 `json:"count_24h"`
	Metal     int64 `json:"metal"`
	Crystal   int64 `json:"crystal"`
	Deuterium int64 `json:"deuterium"`
	Points    int64 `json:"points"`
}

// PlayerActivity bundles the three activity categories for one reporter.
type PlayerActivity struct {
	Expeditions ActivityStats `json:"expeditions"`
	Raids       ActivityStats `json:"raids"`
	Recycling   ActivityStats `json:"recycling"`
}

// LeaderEntry is the per-tech/building maximum across an alliance.
type LeaderEntry struct {
	MaxLevel   int64  `json:"max_level"`
	HolderID   int64  `json:"holder_id"`
	HolderName string `json:"holder_name"`
}

// SyncFreshness pairs a periodic sync type with its currency flag.
type SyncFreshness struct {
	StatType   string     `json:"stat_type"`
	LastSyncAt *time.Time `json:"last_sync_at"`
	Current    bool       `json:"current"`
}

// DistanceTarget is one coordinate with its static distance estimate.
type DistanceTarget struct {
	Coordinates string `json:"coordinates"`
	Distance    int64  `json:"distance"`
}

// HubService is the read-only aggregation layer over reconciled state.
type HubService struct {
	hubRepo      repositories.HubRepository
	planetRepo   repositories.PlanetRepository
	statViewRepo repositories.StatViewRepository
	now          func() time.Time
}

func NewHubService(
	hubRepo repositories.HubRepository,
	planetRepo repositories.PlanetRepository,
	statViewRepo repositories.StatViewRepository,
) *HubService {
	return &HubService{
		hubRepo:      hubRepo,
		planetRepo:   planetRepo,
		statViewRepo: statViewRepo,
		now:          time.Now,
	}
}

// Overview returns every tracked planet with score deltas attached. When
// origin is non-nil the rows also carry a distance and are sorted by it.
func (s *HubService) Overview(ctx context.Context, origin *utils.Coordinates) ([]*PlanetOverview, error) {
	rows, err := s.hubRepo.Overview(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load overview: %w", err)
	}

	overview := make([]*PlanetOverview, 0, len(rows))
	for _, row := range rows {
		po := &PlanetOverview{
			Coordinates:      row.Coordinates,
			Galaxy:           row.Galaxy,
			System:           row.System,
			Position:         row.Position,
			PlayerID:         row.PlayerID,
			PlayerName:       row.PlayerName,
			AllianceTag:      row.AllianceTag,
			Notice:           row.Notice,
			ScoreTotal:       row.ScoreTotal,
			ScoreBuildings:   row.ScoreBuildings,
			ScoreResearch:    row.ScoreResearch,
			ScoreFleet:       row.ScoreFleet,
			ScoreDefense:     row.ScoreDefense,
			Delta6h:          ScoreDelta(row.ScoreTotal, row.Score6h),
			Delta12h:         ScoreDelta(row.ScoreTotal, row.Score12h),
			Delta18h:         ScoreDelta(row.ScoreTotal, row.Score18h),
			Delta24h:         ScoreDelta(row.ScoreTotal, row.Score24h),
			InactiveSince:    row.InactiveSince,
			VacationSince:    row.VacationSince,
			LastSpyReport:    row.LastSpyReport,
			LastBattleReport: row.LastBattleReport,
			SpyMetal:         row.SpyMetal,
			SpyCrystal:       row.SpyCrystal,
			SpyDeuterium:     row.SpyDeuterium,
		}
		if origin != nil {
			target := utils.Coordinates{Galaxy: row.Galaxy, System: row.System, Position: row.Position}
			d := origin.Distance(target)
			po.Distance = &d
		}
		overview = append(overview, po)
	}

	if origin != nil {
		sort.SliceStable(overview, func(i, j int) bool {
			return *overview[i].Distance < *overview[j].Distance
		})
	}
	return overview, nil
}

// ScoreDelta computes current-historical, or nil when no history row existed
// at the window boundary.
func ScoreDelta(current int64, historical *int64) *int64 {
	if historical == nil {
		return nil
	}
	d := current - *historical
	return &d
}

// ScoreDeltas holds the four windowed total-score deltas of one player.
type ScoreDeltas struct {
	Delta6h  *int64 `json:"delta_6h"`
	Delta12h *int64 `json:"delta_12h"`
	Delta18h *int64 `json:"delta_18h"`
	Delta24h *int64 `json:"delta_24h"`
}

// ScoreDeltasFromHistory computes the windowed deltas from a player's full
// history, ordered by recorded_at ascending.
func ScoreDeltasFromHistory(current int64, history []*models.ScoreSnapshot, now time.Time) ScoreDeltas {
	return ScoreDeltas{
		Delta6h:  DeltaSince(current, history, now.Add(-6*time.Hour)),
		Delta12h: DeltaSince(current, history, now.Add(-12*time.Hour)),
		Delta18h: DeltaSince(current, history, now.Add(-18*time.Hour)),
		Delta24h: DeltaSince(current, history, now.Add(-24*time.Hour)),
	}
}

// DeltaSince subtracts the newest snapshot recorded at or before cutoff from
// current, or nil when no snapshot that old exists. A row inside the window
// must never serve as the boundary: a 2h-old snapshot says nothing about the
// 24h delta even when it is the only recent one.
func DeltaSince(current int64, history []*models.ScoreSnapshot, cutoff time.Time) *int64 {
	var boundary *models.ScoreSnapshot
	for _, snap := range history {
		if snap.RecordedAt.After(cutoff) {
			break
		}
		boundary = snap
	}
	if boundary == nil {
		return nil
	}
	d := current - boundary.ScoreTotal
	return &d
}

// Activity returns the three activity tallies for one reporter in one pass.
func (s *HubService) Activity(ctx context.Context, reporterID int64) (*PlayerActivity, error) {
	expeditions, err := s.hubRepo.ExpeditionTotals(ctx, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expedition totals: %w", err)
	}
	raids, err := s.hubRepo.RaidTotals(ctx, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load raid totals: %w", err)
	}
	recycling, err := s.hubRepo.RecycleTotals(ctx, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recycle totals: %w", err)
	}
	return &PlayerActivity{
		Expeditions: ActivityFromTotals(expeditions),
		Raids:       ActivityFromTotals(raids),
		Recycling:   ActivityFromTotals(recycling),
	}, nil
}

// ActivityFromTotals normalizes raw aggregate sums into points. Recycle totals
// arrive with deuterium forced to zero, which keeps it out of the points too.
func ActivityFromTotals(t *models.ActivityTotals) ActivityStats {
	return ActivityStats{
		Count:     t.Count,
		Count24h:  t.Count24h,
		Metal:     t.Metal,
		Crystal:   t.Crystal,
		Deuterium: t.Deuterium,
		Points:    (t.Metal + t.Crystal + t.Deuterium) / 1000,
	}
}

// ResearchLeaders returns the per-tech maxima across one alliance.
func (s *HubService) ResearchLeaders(ctx context.Context, allianceID int64) (map[string]LeaderEntry, error) {
	rows, err := s.hubRepo.ResearchByAlliance(ctx, allianceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load alliance research: %w", err)
	}
	levels := make([]models.PlayerLevels, 0, len(rows))
	for _, row := range rows {
		levels = append(levels, models.PlayerLevels{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Levels:     models.LevelMap(row.Research),
		})
	}
	return LeaderboardMaxima(levels), nil
}

// BuildingLeaders returns the per-building maxima across one alliance,
// considering every planet of every member.
func (s *HubService) BuildingLeaders(ctx context.Context, allianceID int64) (map[string]LeaderEntry, error) {
	rows, err := s.hubRepo.BuildingsByAlliance(ctx, allianceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load alliance buildings: %w", err)
	}
	levels := make([]models.PlayerLevels, 0, len(rows))
	for _, row := range rows {
		levels = append(levels, models.PlayerLevels{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Levels:     row.Buildings,
		})
	}
	return LeaderboardMaxima(levels), nil
}

// LeaderboardMaxima retains, per id, the highest level seen and its holder.
// Rows are scanned in ascending player id and only a strictly higher level
// replaces the holder, so ties resolve to the lowest player id.
func LeaderboardMaxima(rows []models.PlayerLevels) map[string]LeaderEntry {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].PlayerID < rows[j].PlayerID })

	maxima := make(map[string]LeaderEntry)
	for _, row := range rows {
		for id, level := range row.Levels {
			if entry, ok := maxima[id]; !ok || level > entry.MaxLevel {
				maxima[id] = LeaderEntry{
					MaxLevel:   level,
					HolderID:   row.PlayerID,
					HolderName: row.PlayerName,
				}
			}
		}
	}
	return maxima
}

// Freshness reports, per tracked sync type, whether the last sync falls in
// the current 6-hour bucket.
func (s *HubService) Freshness(ctx context.Context) ([]SyncFreshness, error) {
	views, err := s.statViewRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sync state: %w", err)
	}
	now := s.now()
	out := make([]SyncFreshness, 0, len(views))
	for _, view := range views {
		current := view.LastSyncAt != nil && InCurrentSyncWindow(*view.LastSyncAt, now)
		out = append(out, SyncFreshness{
			StatType:   view.StatType,
			LastSyncAt: view.LastSyncAt,
			Current:    current,
		})
	}
	return out, nil
}

// InCurrentSyncWindow reports whether t and now fall into the same fixed
// 6-hour bucket of the UTC day (buckets start at 00, 06, 12 and 18). This is
// deliberately not a rolling window: a sync at 05:59 is already stale at
// 06:01.
func InCurrentSyncWindow(t, now time.Time) bool {
	t, now = t.UTC(), now.UTC()
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	if ty != ny || tm != nm || td != nd {
		return false
	}
	return t.Hour()/6 == now.Hour()/6
}

// SystemScanStatus returns every scanned system with its marker timestamp.
func (s *HubService) SystemScanStatus(ctx context.Context) ([]*models.SystemScan, error) {
	scans, err := s.planetRepo.GetSystemScans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan markers: %w", err)
	}
	return scans, nil
}

// DistancesFrom computes the static distance from origin to every target and
// returns them nearest first.
func DistancesFrom(origin utils.Coordinates, targets []utils.Coordinates) []DistanceTarget {
	out := make([]DistanceTarget, 0, len(targets))
	for _, t := range targets {
		out = append(out, DistanceTarget{
			Coordinates: t.String(),
			Distance:    origin.Distance(t),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}
