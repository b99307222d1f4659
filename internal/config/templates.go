package config

import (
	"fmt"
	"os"
	"strings"
)

// Template returns the stock descriptor TOML for kind. "double" and
// "single" select a buffering default; the rest of the fields are
// identical.
func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "double", "":
		return doubleTemplate, nil
	case "single":
		return singleTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

// WriteTemplate writes kind's template to path, refusing to clobber an
// existing file unless overwrite is set.
func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const doubleTemplate = `name = "wirecall"
byte_order = "little"
signed_mode = "twos_complement"
buffering = "double"
device = "/dev/ttyUSB0"
`

const singleTemplate = `name = "wirecall"
byte_order = "little"
signed_mode = "twos_complement"
buffering = "single"
device = "/dev/ttyUSB0"
`
