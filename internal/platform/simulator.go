package platform

import (
	"errors"
	"fmt"
	"os/exec"
)

// SupportedSimulators is the closed set of simulator backends the framework
// knows how to drive. Platform files may only reference these names.
var SupportedSimulators = []string{
	"mdb-nsim",
	"nsim",
	"renode",
	"qemu",
	"tsim",
	"armfvp",
	"xt-sim",
	"native",
	"custom",
	"simics",
}

// ErrUnknownSimulator reports a simulator name outside SupportedSimulators.
var ErrUnknownSimulator = errors.New("unsupported simulator")

var supportedSimulators = func() map[string]bool {
	set := make(map[string]bool, len(SupportedSimulators))
	for _, name := range SupportedSimulators {
		set[name] = true
	}
	return set
}()

// Simulator is a named execution backend capable of running built binaries
// for a platform. Immutable after construction; equality is structural.
type Simulator struct {
	Name string `json:"name"`
	Exec string `json:"exec,omitempty"`
}

// simulatorConfig mirrors one entry of the `simulation` list in a platform
// file.
type simulatorConfig struct {
	Name string `yaml:"name"`
	Exec string `yaml:"exec,omitempty"`
}

func newSimulator(cfg simulatorConfig) (Simulator, error) {
	if cfg.Name == "" {
		return Simulator{}, errors.New("simulator entry is missing a name")
	}
	if !supportedSimulators[cfg.Name] {
		return Simulator{}, fmt.Errorf("%w: %q", ErrUnknownSimulator, cfg.Name)
	}
	return Simulator{Name: cfg.Name, Exec: cfg.Exec}, nil
}

// IsRunnable reports whether the simulator can execute binaries on this
// host. qemu is assumed always available; every other backend needs an exec
// command resolvable on PATH.
func (s Simulator) IsRunnable() bool {
	if s.Name == "qemu" {
		return true
	}
	if s.Exec == "" {
		return false
	}
	_, err := exec.LookPath(s.Exec)
	return err == nil
}

// Equal reports whether both simulators have the same name and exec.
func (s Simulator) Equal(other Simulator) bool {
	return s.Name == other.Name && s.Exec == other.Exec
}

// String renders a diagnostic summary. Not parsed by any consumer.
func (s Simulator) String() string {
	return fmt.Sprintf("Simulator(name: %s, exec: %s)", s.Name, s.Exec)
}
