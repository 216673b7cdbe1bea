package services

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/voidcrew/startrack/startrack/database/models"
)

func strPtr(s string) *string { return &s }

func TestAssembleExport(t *testing.T) {
	older := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	planets := []*models.Planet{
		{
			// Marker row: contributes only the group timestamp.
			Name:        strPtr("SCANNED"),
			PlayerID:    models.SystemPlayerID,
			Coordinates: "1:42:0",
			Galaxy:      1,
			System:      42,
			Position:    0,
			Kind:        models.KindPlanet,
			UpdatedAt:   newer,
		},
		{
			Name:        strPtr("Homeworld"),
			PlayerID:    100,
			Coordinates: "1:42:4",
			Galaxy:      1,
			System:      42,
			Position:    4,
			Kind:        models.KindPlanet,
			UpdatedAt:   older,
		},
		{
			Name:        strPtr("Moonbase"),
			PlayerID:    100,
			Coordinates: "1:42:4",
			Galaxy:      1,
			System:      42,
			Position:    4,
			Kind:        models.KindMoon,
			UpdatedAt:   older,
		},
		{
			Name:        strPtr("Outpost"),
			PlayerID:    200,
			Coordinates: "1:42:9",
			Galaxy:      1,
			System:      42,
			Position:    9,
			Kind:        models.KindPlanet,
			UpdatedAt:   older,
		},
	}
	players := []*models.Player{
		{ID: 100, Name: "Kirk", AllianceID: int64Ptr(7), UpdatedAt: newer},
		{ID: 200, Name: "Lonewolf", AllianceID: nil, UpdatedAt: older},
	}
	alliances := []*models.Alliance{
		{ID: 7, Name: "Federation", Tag: "FED", UpdatedAt: older},
	}

	doc := AssembleExport(planets, players, alliances)

	system, ok := doc.Coordinates["1:42"]
	if !ok {
		t.Fatal("AssembleExport() missing system group 1:42")
	}
	if system.Timepoint != newer.UnixMilli() {
		t.Errorf("system timepoint = %d, want %d", system.Timepoint, newer.UnixMilli())
	}

	slot := system.Slots[3]
	if slot == nil {
		t.Fatal("AssembleExport() slot 4 is vacant")
	}
	if slot.PlayerID != 100 || slot.Name != "Kirk" {
		t.Errorf("slot 4 = %+v, want owner 100 named Kirk", slot)
	}
	if slot.AllianceID != 7 || slot.AllianceName != "Federation" {
		t.Errorf("slot 4 alliance = %d %q, want 7 Federation", slot.AllianceID, slot.AllianceName)
	}
	if slot.PlanetName != "" || slot.Special != "" {
		t.Errorf("slot 4 = %+v, want empty planetname and special", slot)
	}
	if !slot.HasMoon {
		t.Error("slot 4 has no moon flag despite moon row")
	}

	outpost := system.Slots[8]
	if outpost == nil {
		t.Fatal("AssembleExport() slot 9 is vacant")
	}
	if outpost.AllianceID != -1 || outpost.AllianceName != "-" {
		t.Errorf("slot 9 alliance = %d %q, want -1 \"-\"", outpost.AllianceID, outpost.AllianceName)
	}
	if outpost.HasMoon {
		t.Error("slot 9 flagged with a moon it does not have")
	}

	for i, s := range system.Slots {
		if i != 3 && i != 8 && s != nil {
			t.Errorf("slot %d occupied, want vacant", i+1)
		}
	}

	kirk := doc.Players["100"]
	if kirk == nil || kirk.Name != "Kirk" || kirk.Timepoint != newer.UnixMilli() {
		t.Errorf("player 100 = %+v, want Kirk at %d", kirk, newer.UnixMilli())
	}
	if lone := doc.Players["200"]; lone == nil || lone.Name != "Lonewolf" {
		t.Errorf("player 200 = %+v, want Lonewolf", lone)
	}

	sentinel := doc.Alliances[models.NoAllianceID]
	if sentinel == nil {
		t.Fatal("AssembleExport() missing no-alliance sentinel")
	}
	if sentinel.Name != "-" {
		t.Errorf("sentinel name = %q, want \"-\"", sentinel.Name)
	}
	if sentinel.Timepoint != older.UnixMilli() {
		t.Errorf("sentinel timepoint = %d, want %d", sentinel.Timepoint, older.UnixMilli())
	}
}

func TestAssembleExportIgnoresOutOfRangePositions(t *testing.T) {
	planets := []*models.Planet{
		{
			Name:      strPtr("Ghost"),
			PlayerID:  100,
			Galaxy:    1,
			System:    1,
			Position:  16,
			Kind:      models.KindPlanet,
			UpdatedAt: time.Now(),
		},
	}

	doc := AssembleExport(planets, nil, nil)
	system := doc.Coordinates["1:1"]
	if system == nil {
		t.Fatal("AssembleExport() missing system group 1:1")
	}
	for i, s := range system.Slots {
		if s != nil {
			t.Errorf("slot %d occupied from out-of-range position", i+1)
		}
	}
}

func TestExportDocumentJSONShape(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	planets := []*models.Planet{
		{
			Name:        strPtr("Homeworld"),
			PlayerID:    100,
			Coordinates: "2:5:1",
			Galaxy:      2,
			System:      5,
			Position:    1,
			Kind:        models.KindPlanet,
			UpdatedAt:   now,
		},
	}
	players := []*models.Player{
		{ID: 100, Name: "Kirk", UpdatedAt: now},
	}

	raw, err := json.Marshal(AssembleExport(planets, players, nil))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		t.Fatalf("document is not a JSON array: %v", err)
	}
	if len(arr) != 3 {
		t.Fatalf("document has %d elements, want 3", len(arr))
	}

	var coords map[string]map[string]json.RawMessage
	if err := json.Unmarshal(arr[0], &coords); err != nil {
		t.Fatalf("coordinates element did not decode: %v", err)
	}
	group := coords["2:5"]
	if group == nil {
		t.Fatal("coordinates missing group 2:5")
	}
	// timepoint plus the keys "1" through "15"
	if len(group) != models.SystemSlots+1 {
		t.Errorf("group has %d keys, want %d", len(group), models.SystemSlots+1)
	}
	if string(group["2"]) != "null" {
		t.Errorf("vacant slot 2 = %s, want null", group["2"])
	}
	// The occupied-slot keys are a compatibility contract with the viewer.
	slot := string(group["1"])
	for _, want := range []string{
		`"planetname":""`,
		`"hasmoon":false`,
		`"playerid":100`,
		`"name":"Kirk"`,
		`"allianceid":-1`,
		`"alliancename":"-"`,
		`"special":""`,
	} {
		if !strings.Contains(slot, want) {
			t.Errorf("slot 1 = %s, missing %s", slot, want)
		}
	}
}
