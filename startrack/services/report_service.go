package services

import (
	"context"
	"fmt"
	"time"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/database/repositories"
	"github.com/voidcrew/startrack/startrack/utils"
)

// Report payloads. Every kind carries the externally assigned report id that
// doubles as the dedup key; re-submitting an id replaces the stored payload.

type SpyReportPayload struct {
	ExternalID  int64           `json:"external_id"`
	Coordinates string          `json:"coordinates"`
	Moon        bool            `json:"moon"`
	Resources   models.LevelMap `json:"resources"`
	Buildings   models.LevelMap `json:"buildings"`
	Research    models.LevelMap `json:"research"`
	Fleet       models.LevelMap `json:"fleet"`
	Defense     models.LevelMap `json:"defense"`
	ReportTime  *time.Time      `json:"report_time"`
}

type BattleReportPayload struct {
	ExternalID    int64      `json:"external_id"`
	Coordinates   string     `json:"coordinates"`
	Moon          bool       `json:"moon"`
	AttackerLost  int64      `json:"attacker_lost"`
	DefenderLost  int64      `json:"defender_lost"`
	Metal         int64      `json:"metal"`
	Crystal       int64      `json:"crystal"`
	Deuterium     int64      `json:"deuterium"`
	DebrisMetal   int64      `json:"debris_metal"`
	DebrisCrystal int64      `json:"debris_crystal"`
	ReportTime    *time.Time `json:"report_time"`
}

type ExpeditionReportPayload struct {
	ExternalID int64           `json:"external_id"`
	Message    *string         `json:"message"`
	Kind       *string         `json:"kind"`
	Resources  models.LevelMap `json:"resources"`
	Fleet      models.LevelMap `json:"fleet"`
	ReportTime *time.Time      `json:"report_time"`
}

type RecycleReportPayload struct {
	ExternalID  int64      `json:"external_id"`
	Coordinates string     `json:"coordinates"`
	Metal       int64      `json:"metal"`
	Crystal     int64      `json:"crystal"`
	MetalTF     int64      `json:"metal_tf"`
	CrystalTF   int64      `json:"crystal_tf"`
	ReportTime  *time.Time `json:"report_time"`
}

type HostileSpyingPayload struct {
	ExternalID          int64      `json:"external_id"`
	AttackerCoordinates *string    `json:"attacker_coordinates"`
	TargetCoordinates   *string    `json:"target_coordinates"`
	ReportTime          *time.Time `json:"report_time"`
}

// ReportService is the ingestion front for all five report kinds plus the
// message-id dedup used by the scraper.
type ReportService struct {
	spyRepo        repositories.SpyReportRepository
	battleRepo     repositories.BattleReportRepository
	expeditionRepo repositories.ExpeditionReportRepository
	recycleRepo    repositories.RecycleReportRepository
	hostileRepo    repositories.HostileSpyingRepository
	messageRepo    repositories.MessageRepository
}

func NewReportService(
	spyRepo repositories.SpyReportRepository,
	battleRepo repositories.BattleReportRepository,
	expeditionRepo repositories.ExpeditionReportRepository,
	recycleRepo repositories.RecycleReportRepository,
	hostileRepo repositories.HostileSpyingRepository,
	messageRepo repositories.MessageRepository,
) *ReportService {
	return &ReportService{
		spyRepo:        spyRepo,
		battleRepo:     battleRepo,
		expeditionRepo: expeditionRepo,
		recycleRepo:    recycleRepo,
		hostileRepo:    hostileRepo,
		messageRepo:    messageRepo,
	}
}

func kindOf(moon bool) string {
	if moon {
		return models.KindMoon
	}
	return models.KindPlanet
}

func (s *ReportService) SubmitSpyReport(ctx context.Context, payload *SpyReportPayload, reportedBy *int64) error {
	coords, err := utils.ParseCoordinates(payload.Coordinates)
	if err != nil {
		return err
	}
	report := &models.SpyReport{
		ExternalID:  payload.ExternalID,
		Coordinates: coords.String(),
		Galaxy:      coords.Galaxy,
		System:      coords.System,
		Position:    coords.Position,
		Kind:        kindOf(payload.Moon),
		Resources:   payload.Resources,
		Buildings:   payload.Buildings,
		Research:    payload.Research,
		Fleet:       payload.Fleet,
		Defense:     payload.Defense,
		ReportedBy:  reportedBy,
		ReportTime:  payload.ReportTime,
	}
	if err := s.spyRepo.Upsert(ctx, report); err != nil {
		return fmt.Errorf("failed to store spy report %d: %w", payload.ExternalID, err)
	}
	return nil
}

func (s *ReportService) SubmitBattleReport(ctx context.Context, payload *BattleReportPayload, reportedBy *int64) error {
	coords, err := utils.ParseCoordinates(payload.Coordinates)
	if err != nil {
		return err
	}
	report := &models.BattleReport{
		ExternalID:    payload.ExternalID,
		Coordinates:   coords.String(),
		Galaxy:        coords.Galaxy,
		System:        coords.System,
		Position:      coords.Position,
		Kind:          kindOf(payload.Moon),
		AttackerLost:  payload.AttackerLost,
		DefenderLost:  payload.DefenderLost,
		Metal:         payload.Metal,
		Crystal:       payload.Crystal,
		Deuterium:     payload.Deuterium,
		DebrisMetal:   payload.DebrisMetal,
		DebrisCrystal: payload.DebrisCrystal,
		ReportedBy:    reportedBy,
		ReportTime:    payload.ReportTime,
	}
	if err := s.battleRepo.Upsert(ctx, report); err != nil {
		return fmt.Errorf("failed to store battle report %d: %w", payload.ExternalID, err)
	}
	return nil
}

func (s *ReportService) SubmitExpeditionReport(ctx context.Context, payload *ExpeditionReportPayload, reportedBy *int64) error {
	report := &models.ExpeditionReport{
		ExternalID: payload.ExternalID,
		Message:    payload.Message,
		Kind:       payload.Kind,
		Resources:  payload.Resources,
		Fleet:      payload.Fleet,
		ReportedBy: reportedBy,
		ReportTime: payload.ReportTime,
	}
	if err := s.expeditionRepo.Upsert(ctx, report); err != nil {
		return fmt.Errorf("failed to store expedition report %d: %w", payload.ExternalID, err)
	}
	return nil
}

func (s *ReportService) SubmitRecycleReport(ctx context.Context, payload *RecycleReportPayload, reportedBy *int64) error {
	coords, err := utils.ParseCoordinates(payload.Coordinates)
	if err != nil {
		return err
	}
	report := &models.RecycleReport{
		ExternalID:  payload.ExternalID,
		Coordinates: coords.String(),
		Galaxy:      coords.Galaxy,
		System:      coords.System,
		Position:    coords.Position,
		Metal:       payload.Metal,
		Crystal:     payload.Crystal,
		MetalTF:     payload.MetalTF,
		CrystalTF:   payload.CrystalTF,
		ReportedBy:  reportedBy,
		ReportTime:  payload.ReportTime,
	}
	if err := s.recycleRepo.Upsert(ctx, report); err != nil {
		return fmt.Errorf("failed to store recycle report %d: %w", payload.ExternalID, err)
	}
	return nil
}

// SubmitHostileSpying stores the raw coordinate strings. The attacker may sit
// outside the tracked universe, so no parsing is attempted.
func (s *ReportService) SubmitHostileSpying(ctx context.Context, payload *HostileSpyingPayload) error {
	record := &models.HostileSpying{
		ExternalID:          payload.ExternalID,
		AttackerCoordinates: payload.AttackerCoordinates,
		TargetCoordinates:   payload.TargetCoordinates,
		ReportTime:          payload.ReportTime,
	}
	if err := s.hostileRepo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to store hostile spying record %d: %w", payload.ExternalID, err)
	}
	return nil
}

// FilterNewMessages records a batch of observed in-game mail ids and returns
// only the ones never seen before.
func (s *ReportService) FilterNewMessages(ctx context.Context, externalIDs []int64) ([]int64, error) {
	fresh, err := s.messageRepo.FilterNew(ctx, externalIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to dedup message ids: %w", err)
	}
	return fresh, nil
}
