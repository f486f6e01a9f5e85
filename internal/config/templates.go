package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "tlctl":
		return tlctlTemplate, nil
	case "codec":
		return codecTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

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

const codecTemplate = `[codec]
max_blob_bytes = 16777215
max_vector_len = 1048576
max_unpacked_bytes = 16777216
`

const tlctlTemplate = codecTemplate + `
[gen]
schema = "internal/protocol/types/schema.tl"
output = "internal/protocol/types/types_gen.go"
package = "types"
layer = 1

[log]
level = "info"
`
