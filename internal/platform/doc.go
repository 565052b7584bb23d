// Package platform loads the per-target metadata the orchestrator selects
// and schedules tests against.
//
// Each target is described by a declarative YAML file. The file is validated
// against an embedded CUE schema, decoded strictly, and materialized as a
// Platform with documented defaults applied and toolchains inferred from the
// architecture.
//
// # Platform File Format
//
//	identifier: vendor/board/soc
//	arch: arm
//	vendor: acme
//	ram: 256
//	flash: 1024
//	supported:
//	  - gpio
//	  - netif:eth
//	simulation:
//	  - name: qemu
//	  - name: renode
//	    exec: renode
//	toolchain:
//	  - zephyr
//	env:
//	  - ACME_SDK_DIR
//	testing:
//	  timeout_multiplier: 2.0
//	  default: true
//	  renode:
//	    uart: sysbus.uart0
//	    resc: boards/acme.resc
//
// A Platform is populated exactly once by Load and is read-only afterwards.
// If Load returns an error the Platform is partially populated and must be
// discarded.
package platform
