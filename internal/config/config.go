// Package config loads and validates the TOML descriptor that tells the
// demo CLI (cmd/wirecall) how to talk to a keyring: its byte order,
// signed-integer representation, and buffering configuration. The
// descriptor also records a terminal device name, which cmd/wirecall does
// not read: it always takes its bytes from stdin. It follows the teacher project's
// Load/loadToml/Validate split, re-pointed at github.com/BurntSushi/toml
// to match this module's actually-declared dependency (the teacher's own
// internal/config/config.go imported github.com/pelletier/go-toml/v2,
// inconsistent with its own go.mod's BurntSushi/toml require — this port
// resolves that inconsistency in favor of go.mod, the source of truth
// for what's genuinely wired).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/wirecall/internal/wire"
)

// Descriptor declares how a demo dispatcher is built and reached. It has
// no bearing on the keyring's action table itself — the spec's Non-goals
// exclude dynamic action registration, so the signature list stays a
// compile-time Go construct — only the codec configuration and buffering
// are externally configurable. Device is parsed and kept but not used by
// cmd/wirecall.
type Descriptor struct {
	Name       string `toml:"name"`
	ByteOrder  string `toml:"byte_order"`  // "big" | "little"
	SignedMode string `toml:"signed_mode"` // "twos_complement" | "ones_complement"
	Buffering  string `toml:"buffering"`   // "single" | "double"
	Device     string `toml:"device"`      // terminal device to bridge, e.g. /dev/ttyUSB0
}

// Load reads and validates a Descriptor from path, filling in defaults
// for anything left blank.
func Load(path string) (Descriptor, error) {
	var cfg Descriptor
	if err := loadToml(path, &cfg); err != nil {
		return Descriptor{}, err
	}
	if cfg.Name == "" {
		cfg.Name = "wirecall"
	}
	if cfg.ByteOrder == "" {
		cfg.ByteOrder = "little"
	}
	if cfg.SignedMode == "" {
		cfg.SignedMode = "twos_complement"
	}
	if cfg.Buffering == "" {
		cfg.Buffering = "double"
	}
	if err := Validate(cfg); err != nil {
		return Descriptor{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// Validate reports whether cfg's fields describe a usable configuration.
func Validate(cfg Descriptor) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("descriptor missing name")
	}
	if _, err := cfg.ByteOrderValue(); err != nil {
		return err
	}
	if _, err := cfg.SignedModeValue(); err != nil {
		return err
	}
	if _, err := cfg.Single(); err != nil {
		return err
	}
	return nil
}

// ByteOrderValue resolves the descriptor's byte_order field.
func (cfg Descriptor) ByteOrderValue() (wire.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.ByteOrder)) {
	case "big":
		return wire.BigEndian, nil
	case "little":
		return wire.LittleEndian, nil
	default:
		return 0, fmt.Errorf("descriptor: unknown byte_order %q (want big|little)", cfg.ByteOrder)
	}
}

// SignedModeValue resolves the descriptor's signed_mode field.
func (cfg Descriptor) SignedModeValue() (wire.SignedMode, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.SignedMode)) {
	case "twos_complement", "twos-complement", "builtin":
		return wire.TwosComplement, nil
	case "ones_complement", "ones-complement":
		return wire.OnesComplement, nil
	default:
		return 0, fmt.Errorf("descriptor: unknown signed_mode %q (want twos_complement|ones_complement)", cfg.SignedMode)
	}
}

// Single resolves the descriptor's buffering field: true for the
// single-buffer configuration, false for double-buffer.
func (cfg Descriptor) Single() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Buffering)) {
	case "single":
		return true, nil
	case "double":
		return false, nil
	default:
		return false, fmt.Errorf("descriptor: unknown buffering %q (want single|double)", cfg.Buffering)
	}
}
