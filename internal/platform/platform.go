package platform

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Platform describes a buildable hardware or simulated target. Maps directly
// to the board argument when building.
type Platform struct {
	// Name is the declared identifier, e.g. "vendor/board/soc".
	// NormalizedName is Name with path separators replaced by underscores.
	Name           string
	NormalizedName string

	Sysbuild bool
	Twister  bool

	// RAM and Flash are in KiB. Boards that do not declare them get the
	// historical defaults of 128K RAM and 512K flash.
	RAM   int
	Flash int

	TimeoutMultiplier float64
	IgnoreTags        []string
	OnlyTags          []string
	Default           bool
	Binaries          []string

	// Supported holds atomic feature tokens. Compound "a:b" tokens from the
	// platform file are decomposed into separate members.
	Supported map[string]bool

	Arch   string
	Vendor string
	Tier   int
	Type   string

	// Simulators is the owned backend list in declaration order; the first
	// entry is the default. Simulation is the default backend's name, or
	// "na" when the platform declares none.
	Simulators []Simulator
	Simulation string

	SupportedToolchains []string

	// Env lists required environment variable names. EnvSatisfied is true
	// iff every one is set and non-empty in the current process.
	Env          []string
	EnvSatisfied bool

	// Renode-specific settings from the testing.renode block.
	UART string
	Resc string
}

// New returns a Platform with every field at its documented default.
func New() *Platform {
	return &Platform{
		Twister:             true,
		RAM:                 128,
		Flash:               512,
		TimeoutMultiplier:   1.0,
		Tier:                -1,
		Type:                "na",
		Supported:           make(map[string]bool),
		Simulation:          "na",
		SupportedToolchains: []string{},
		EnvSatisfied:        true,
	}
}

// platformConfig mirrors the platform file layout. Pointer fields
// distinguish "absent" from a declared zero value.
type platformConfig struct {
	Identifier string            `yaml:"identifier"`
	Arch       string            `yaml:"arch"`
	Vendor     string            `yaml:"vendor"`
	Tier       *int              `yaml:"tier"`
	Type       string            `yaml:"type"`
	RAM        *int              `yaml:"ram"`
	Flash      *int              `yaml:"flash"`
	Sysbuild   bool              `yaml:"sysbuild"`
	Twister    *bool             `yaml:"twister"`
	Supported  []string          `yaml:"supported"`
	Simulation []simulatorConfig `yaml:"simulation"`
	Toolchain  []string          `yaml:"toolchain"`
	Env        []string          `yaml:"env"`
	Testing    testingConfig     `yaml:"testing"`
}

type testingConfig struct {
	TimeoutMultiplier *float64     `yaml:"timeout_multiplier"`
	IgnoreTags        []string     `yaml:"ignore_tags"`
	OnlyTags          []string     `yaml:"only_tags"`
	Default           bool         `yaml:"default"`
	Binaries          []string     `yaml:"binaries"`
	Renode            renodeConfig `yaml:"renode"`
}

type renodeConfig struct {
	UART string `yaml:"uart"`
	Resc string `yaml:"resc"`
}

// Load populates the platform from the definition file at path. The file is
// validated against the shared schema, decoded strictly, and the documented
// defaults and inference rules are applied. On error the platform is left in
// an unspecified partially-populated state and must be discarded.
func (p *Platform) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading platform file: %w", err)
	}
	if err := validateSchema(path, data); err != nil {
		return err
	}

	var cfg platformConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	p.Name = cfg.Identifier
	p.NormalizedName = strings.ReplaceAll(p.Name, "/", "_")
	p.Sysbuild = cfg.Sysbuild
	p.Twister = orDefault(cfg.Twister, true)
	p.RAM = orDefault(cfg.RAM, 128)
	p.Flash = orDefault(cfg.Flash, 512)

	p.TimeoutMultiplier = orDefault(cfg.Testing.TimeoutMultiplier, 1.0)
	p.IgnoreTags = cfg.Testing.IgnoreTags
	p.OnlyTags = cfg.Testing.OnlyTags
	p.Default = cfg.Testing.Default
	p.Binaries = cfg.Testing.Binaries
	p.UART = cfg.Testing.Renode.UART
	p.Resc = cfg.Testing.Renode.Resc

	p.Supported = make(map[string]bool)
	for _, feature := range cfg.Supported {
		for _, token := range strings.Split(feature, ":") {
			p.Supported[token] = true
		}
	}

	p.Arch = cfg.Arch
	p.Vendor = cfg.Vendor
	p.Tier = orDefault(cfg.Tier, -1)
	p.Type = cfg.Type
	if p.Type == "" {
		p.Type = "na"
	}

	p.Simulators = nil
	for _, sc := range cfg.Simulation {
		sim, err := newSimulator(sc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		p.Simulators = append(p.Simulators, sim)
	}
	p.Simulation = "na"
	if def := p.SimulatorByName(""); def != nil {
		p.Simulation = def.Name
	}

	// The declared list is kept as-is, internal duplicates included; only
	// the inferred additions de-dup against it.
	p.SupportedToolchains = append([]string{}, cfg.Toolchain...)
	for _, tc := range toolchainsByArch[p.Arch] {
		if !slices.Contains(p.SupportedToolchains, tc) {
			p.SupportedToolchains = append(p.SupportedToolchains, tc)
		}
	}

	p.Env = cfg.Env
	p.EnvSatisfied = true
	for _, name := range p.Env {
		if os.Getenv(name) == "" {
			p.EnvSatisfied = false
		}
	}
	return nil
}

// SimulatorByName returns the named simulator, or the first declared
// simulator when name is empty. The first entry in the platform file is the
// default backend. Returns nil when there is no match.
func (p *Platform) SimulatorByName(name string) *Simulator {
	if name == "" {
		if len(p.Simulators) == 0 {
			return nil
		}
		return &p.Simulators[0]
	}
	for i := range p.Simulators {
		if p.Simulators[i].Name == name {
			return &p.Simulators[i]
		}
	}
	return nil
}

func (p *Platform) String() string {
	return fmt.Sprintf("<%s on %s>", p.Name, p.Arch)
}

func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
