package services

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/database/repositories/mock"
)

func TestEmpireSyncFallsBackToCallerPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	playerRepo := mock.NewMockPlayerRepository(ctrl)
	planetRepo := mock.NewMockPlanetRepository(ctrl)

	playerRepo.EXPECT().
		EnsureExists(gomock.Any(), int64(77), "Unknown").
		Return(nil)

	s := NewEmpireService(playerRepo, planetRepo)
	result, err := s.Sync(context.Background(), &EmpireSnapshot{}, int64Ptr(77), nil)
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if result.Synced != 0 || result.Skipped != 0 {
		t.Errorf("Sync() = %+v, want empty result", result)
	}
}

func TestEmpireSyncFailsWithoutAnyPlayerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewEmpireService(mock.NewMockPlayerRepository(ctrl), mock.NewMockPlanetRepository(ctrl))

	if _, err := s.Sync(context.Background(), &EmpireSnapshot{}, nil, nil); err == nil {
		t.Error("Sync() without player id returned nil error")
	}
}

func TestEmpireSyncSkipsMalformedCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	playerRepo := mock.NewMockPlayerRepository(ctrl)
	planetRepo := mock.NewMockPlanetRepository(ctrl)

	playerRepo.EXPECT().
		EnsureExists(gomock.Any(), int64(100), "Kirk").
		Return(nil)
	playerRepo.EXPECT().
		UpdateAlliance(gomock.Any(), int64(100), int64(7)).
		Return(nil)
	playerRepo.EXPECT().
		UpdateResearch(gomock.Any(), int64(100), models.ResearchMap{"energy": 12}).
		Return(nil)

	var upserted []*models.Planet
	planetRepo.EXPECT().
		UpsertEmpire(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, p *models.Planet) { upserted = append(upserted, p) }).
		Return(nil)

	s := NewEmpireService(playerRepo, planetRepo)
	snapshot := &EmpireSnapshot{
		PlayerID:   100,
		PlayerName: "Kirk",
		Research:   models.ResearchMap{"energy": 12},
		Planets: []EmpirePlanet{
			{Coordinates: "not:coords", Name: strPtr("Broken")},
			{
				Coordinates: "1:42:4",
				Name:        strPtr("Homeworld"),
				Points:      1234,
				Production:  EmpireProd{Metal: 500, Crystal: 300, Deuterium: 100},
			},
		},
	}

	result, err := s.Sync(context.Background(), snapshot, nil, int64Ptr(7))
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if result.Synced != 1 || result.Skipped != 1 {
		t.Errorf("Sync() = %+v, want synced 1 skipped 1", result)
	}
	if len(upserted) != 1 {
		t.Fatalf("got %d upserts, want 1", len(upserted))
	}

	planet := upserted[0]
	if planet.Coordinates != "1:42:4" || planet.Galaxy != 1 || planet.System != 42 || planet.Position != 4 {
		t.Errorf("planet coordinates = %+v", planet)
	}
	if planet.Status != models.StatusSeen {
		t.Errorf("planet status = %q, want %q", planet.Status, models.StatusSeen)
	}
	if planet.ProdMetal != 500 || planet.ProdCrystal != 300 || planet.ProdDeuterium != 100 {
		t.Errorf("planet production = %+v", planet)
	}
}
