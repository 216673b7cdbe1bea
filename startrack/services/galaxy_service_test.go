package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/database/repositories/mock"
	"github.com/voidcrew/startrack/startrack/utils"
)

func TestSyncSystemRejectsInvalidSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewGalaxyService(
		mock.NewMockPlayerRepository(ctrl),
		mock.NewMockAllianceRepository(ctrl),
		mock.NewMockPlanetRepository(ctrl),
	)

	// Bad input must be classifiable so the transport can answer 400
	// instead of a generic storage failure.
	if _, err := s.SyncSystem(context.Background(), &GalaxyScan{Galaxy: 0, System: 5}); !errors.Is(err, utils.ErrInvalidCoordinates) {
		t.Errorf("SyncSystem() with galaxy 0 error = %v, want ErrInvalidCoordinates", err)
	}
	if _, err := s.SyncSystem(context.Background(), &GalaxyScan{Galaxy: 1, System: -1}); !errors.Is(err, utils.ErrInvalidCoordinates) {
		t.Errorf("SyncSystem() with negative system error = %v, want ErrInvalidCoordinates", err)
	}
}

func TestSyncSystemEmptyScanStampsMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	playerRepo := mock.NewMockPlayerRepository(ctrl)
	planetRepo := mock.NewMockPlanetRepository(ctrl)

	playerRepo.EXPECT().
		EnsureExists(gomock.Any(), models.SystemPlayerID, "System").
		Return(nil)

	planetRepo.EXPECT().
		UpsertScan(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, p *models.Planet) {
			if p.Position != 0 || p.Name == nil || *p.Name != "EMPTY" {
				t.Errorf("marker = %+v, want EMPTY at position 0", p)
			}
			if p.PlayerID != models.SystemPlayerID {
				t.Errorf("marker owner = %d, want system player", p.PlayerID)
			}
		}).
		Return(nil)

	s := NewGalaxyService(playerRepo, mock.NewMockAllianceRepository(ctrl), planetRepo)
	result, err := s.SyncSystem(context.Background(), &GalaxyScan{Galaxy: 1, System: 42})
	if err != nil {
		t.Fatalf("SyncSystem() error = %v", err)
	}
	if result.Created != 0 || result.Skipped != 0 || result.Deleted != 0 {
		t.Errorf("SyncSystem() = %+v, want all zero", result)
	}
}

func TestSyncSystemFullEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	playerRepo := mock.NewMockPlayerRepository(ctrl)
	allianceRepo := mock.NewMockAllianceRepository(ctrl)
	planetRepo := mock.NewMockPlanetRepository(ctrl)

	playerRepo.EXPECT().
		EnsureExists(gomock.Any(), models.SystemPlayerID, "System").
		Return(nil)
	playerRepo.EXPECT().
		EnsureExists(gomock.Any(), int64(100), "Kirk").
		Return(nil)
	allianceRepo.EXPECT().
		EnsureExists(gomock.Any(), int64(7), "FED").
		Return(nil)
	playerRepo.EXPECT().
		UpdateAlliance(gomock.Any(), int64(100), int64(7)).
		Return(nil)
	planetRepo.EXPECT().
		MarkDeleted(gomock.Any(), int64(1), int64(42), int64(9), models.KindMoon).
		Return(nil)

	var upserted []*models.Planet
	planetRepo.EXPECT().
		UpsertScan(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, p *models.Planet) { upserted = append(upserted, p) }).
		Return(nil).
		Times(3) // marker, planet, moon

	s := NewGalaxyService(playerRepo, allianceRepo, planetRepo)
	scan := &GalaxyScan{
		Galaxy: 1,
		System: 42,
		Planets: []GalaxyScanPlanet{
			{
				Position:    4,
				PlayerID:    int64Ptr(100),
				PlayerName:  strPtr("Kirk"),
				PlanetName:  strPtr("Homeworld"),
				MoonName:    strPtr("Moonbase"),
				HasMoon:     true,
				PlanetID:    int64Ptr(5551),
				MoonID:      int64Ptr(5552),
				AllianceID:  int64Ptr(7),
				AllianceTag: strPtr("FED"),
			},
		},
		Destroyed: []DestroyedPosition{{Position: 9, Type: models.KindMoon}},
	}

	result, err := s.SyncSystem(context.Background(), scan)
	if err != nil {
		t.Fatalf("SyncSystem() error = %v", err)
	}
	if result.Created != 1 || result.Skipped != 0 || result.Deleted != 1 {
		t.Errorf("SyncSystem() = %+v, want created 1 deleted 1", result)
	}
	if len(upserted) != 3 {
		t.Fatalf("got %d upserts, want 3", len(upserted))
	}

	planet := upserted[1]
	if planet.Kind != models.KindPlanet || planet.Position != 4 || planet.Coordinates != "1:42:4" {
		t.Errorf("planet row = %+v", planet)
	}
	if planet.ExternalID == nil || *planet.ExternalID != 5551 {
		t.Errorf("planet external id = %v, want 5551", planet.ExternalID)
	}

	moon := upserted[2]
	if moon.Kind != models.KindMoon || moon.Position != 4 {
		t.Errorf("moon row = %+v", moon)
	}
	if moon.Name == nil || *moon.Name != "Moonbase" {
		t.Errorf("moon name = %v, want Moonbase", moon.Name)
	}
	if moon.ExternalID == nil || *moon.ExternalID != 5552 {
		t.Errorf("moon external id = %v, want 5552", moon.ExternalID)
	}
}

func TestSyncSystemSkipsUnownedAndInvalidPositions(t *testing.T) {
	ctrl := gomock.NewController(t)
	playerRepo := mock.NewMockPlayerRepository(ctrl)
	planetRepo := mock.NewMockPlanetRepository(ctrl)

	playerRepo.EXPECT().
		EnsureExists(gomock.Any(), models.SystemPlayerID, "System").
		Return(nil)
	// Only the marker row is written.
	planetRepo.EXPECT().
		UpsertScan(gomock.Any(), gomock.Any()).
		Return(nil)

	s := NewGalaxyService(playerRepo, mock.NewMockAllianceRepository(ctrl), planetRepo)
	scan := &GalaxyScan{
		Galaxy: 1,
		System: 42,
		Planets: []GalaxyScanPlanet{
			{Position: 0, PlayerID: int64Ptr(100)},
			{Position: 6, PlayerID: nil},
		},
	}

	result, err := s.SyncSystem(context.Background(), scan)
	if err != nil {
		t.Fatalf("SyncSystem() error = %v", err)
	}
	if result.Skipped != 2 || result.Created != 0 {
		t.Errorf("SyncSystem() = %+v, want skipped 2", result)
	}
}

func TestSyncSystemNoAllianceLinkWithoutTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	playerRepo := mock.NewMockPlayerRepository(ctrl)
	allianceRepo := mock.NewMockAllianceRepository(ctrl)
	planetRepo := mock.NewMockPlanetRepository(ctrl)

	playerRepo.EXPECT().
		EnsureExists(gomock.Any(), models.SystemPlayerID, "System").
		Return(nil)
	// Missing name falls back to Unknown.
	playerRepo.EXPECT().
		EnsureExists(gomock.Any(), int64(100), "Unknown").
		Return(nil)
	planetRepo.EXPECT().
		UpsertScan(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)
	// No allianceRepo.EnsureExists, no UpdateAlliance: a bare id is not enough.

	s := NewGalaxyService(playerRepo, allianceRepo, planetRepo)
	scan := &GalaxyScan{
		Galaxy: 1,
		System: 42,
		Planets: []GalaxyScanPlanet{
			{Position: 4, PlayerID: int64Ptr(100), AllianceID: int64Ptr(7)},
		},
	}

	if _, err := s.SyncSystem(context.Background(), scan); err != nil {
		t.Fatalf("SyncSystem() error = %v", err)
	}
}
