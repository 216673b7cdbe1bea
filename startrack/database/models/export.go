package models

import (
	"encoding/json"
	"strconv"
)

// The export document is consumed verbatim by an external viewer tool. Field
// names, the 3-element array layout and the fixed 15-slot structure are a
// compatibility contract.

// ExportSlot is one occupied position inside a system group. The owner's name
// and alliance are denormalized onto the slot; planetname and special are
// always empty but the keys must stay.
type ExportSlot struct {
	PlanetName   string `json:"planetname"`
	HasMoon      bool   `json:"hasmoon"`
	PlayerID     int64  `json:"playerid"`
	Name         string `json:"name"`
	AllianceID   int64  `json:"allianceid"`
	AllianceName string `json:"alliancename"`
	Special      string `json:"special"`
}

// ExportPlayer is one entry of the flat player map.
type ExportPlayer struct {
	Name      string `json:"name"`
	Timepoint int64  `json:"timepoint"`
}

// ExportAlliance is one entry of the flat alliance map.
type ExportAlliance struct {
	Name      string `json:"name"`
	Timepoint int64  `json:"timepoint"`
}

// NoAllianceID keys the synthetic "no alliance" sentinel entry.
const NoAllianceID = "-1"

// SystemSlots is the number of positions per system.
const SystemSlots = 15

// ExportSystem holds the 15 position slots of one "galaxy:system" group plus
// the group's freshness timestamp in Unix milliseconds. Vacant slots stay nil.
type ExportSystem struct {
	Timepoint int64
	Slots     [SystemSlots]*ExportSlot
}

func (s *ExportSystem) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, SystemSlots+1)
	obj["timepoint"] = s.Timepoint
	for i, slot := range s.Slots {
		obj[strconv.Itoa(i+1)] = slot
	}
	return json.Marshal(obj)
}

// ExportDocument serializes as the 3-element array
// [coordinatesMap, playersMap, alliancesMap].
type ExportDocument struct {
	Coordinates map[string]*ExportSystem
	Players     map[string]*ExportPlayer
	Alliances   map[string]*ExportAlliance
}

func (d *ExportDocument) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{d.Coordinates, d.Players, d.Alliances})
}
