package platform

import (
	"encoding/json"
	"maps"
	"slices"
)

// Snapshot is a deterministic view of a loaded platform for golden-file
// comparison and debug dumps. Feature tokens are sorted; every other list
// keeps declaration order.
type Snapshot struct {
	Name                string      `json:"name"`
	NormalizedName      string      `json:"normalized_name"`
	Arch                string      `json:"arch"`
	Vendor              string      `json:"vendor,omitempty"`
	Tier                int         `json:"tier"`
	Type                string      `json:"type"`
	RAM                 int         `json:"ram"`
	Flash               int         `json:"flash"`
	Sysbuild            bool        `json:"sysbuild"`
	Twister             bool        `json:"twister"`
	TimeoutMultiplier   float64     `json:"timeout_multiplier"`
	Default             bool        `json:"default"`
	IgnoreTags          []string    `json:"ignore_tags,omitempty"`
	OnlyTags            []string    `json:"only_tags,omitempty"`
	Binaries            []string    `json:"binaries,omitempty"`
	Supported           []string    `json:"supported,omitempty"`
	Simulation          string      `json:"simulation"`
	Simulators          []Simulator `json:"simulators,omitempty"`
	SupportedToolchains []string    `json:"supported_toolchains,omitempty"`
	Env                 []string    `json:"env,omitempty"`
	EnvSatisfied        bool        `json:"env_satisfied"`
	UART                string      `json:"uart,omitempty"`
	Resc                string      `json:"resc,omitempty"`
}

// Snapshot captures the platform's populated state.
func (p *Platform) Snapshot() Snapshot {
	return Snapshot{
		Name:                p.Name,
		NormalizedName:      p.NormalizedName,
		Arch:                p.Arch,
		Vendor:              p.Vendor,
		Tier:                p.Tier,
		Type:                p.Type,
		RAM:                 p.RAM,
		Flash:               p.Flash,
		Sysbuild:            p.Sysbuild,
		Twister:             p.Twister,
		TimeoutMultiplier:   p.TimeoutMultiplier,
		Default:             p.Default,
		IgnoreTags:          p.IgnoreTags,
		OnlyTags:            p.OnlyTags,
		Binaries:            p.Binaries,
		Supported:           slices.Sorted(maps.Keys(p.Supported)),
		Simulation:          p.Simulation,
		Simulators:          p.Simulators,
		SupportedToolchains: p.SupportedToolchains,
		Env:                 p.Env,
		EnvSatisfied:        p.EnvSatisfied,
		UART:                p.UART,
		Resc:                p.Resc,
	}
}

// MarshalIndent renders the snapshot as indented JSON for golden files.
func (s Snapshot) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
