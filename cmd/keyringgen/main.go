// Command keyringgen writes or validates the TOML descriptor consumed by
// cmd/wirecall, using pflag in place of the standard flag package for
// its GNU-style long options.
package main

import (
	"log"

	"github.com/spf13/pflag"

	"github.com/danmuck/wirecall/internal/config"
)

func main() {
	kind := pflag.String("kind", "double", "descriptor kind: double|single")
	output := pflag.StringP("output", "o", "", "output path for the descriptor template")
	validate := pflag.Bool("validate", false, "validate an existing descriptor file instead of writing one")
	input := pflag.StringP("input", "i", "", "descriptor path for validation")
	force := pflag.BoolP("force", "f", false, "overwrite an existing descriptor file")
	pflag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = "cmd/wirecall/config.toml"
		}
		cfg, err := config.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("valid descriptor %q at %s (byte_order=%s signed_mode=%s buffering=%s)",
			cfg.Name, path, cfg.ByteOrder, cfg.SignedMode, cfg.Buffering)
		return
	}

	target := *output
	if target == "" {
		target = "cmd/wirecall/config.toml"
	}
	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s descriptor template to %s", *kind, target)
}
