package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/yacobolo/twconfig"
	"github.com/yacobolo/twconfig/internal/logging"
)

const builtinName = "(built-in)"

// loadedDescriptor is a descriptor together with where it came from.
type loadedDescriptor struct {
	descriptor twconfig.Descriptor
	filename   string
	format     twconfig.Format
	source     []byte
	unknown    []string
	builtin    bool
}

// loadDescriptor reads the configured descriptor file. When no file was
// named explicitly and the default one is absent, the built-in descriptor
// is used.
func loadDescriptor() (loadedDescriptor, error) {
	log := logging.WithComponent("loader")

	if getBoolWithFallback("builtin", "builtin", false) {
		log.Debug().Msg("using built-in descriptor")
		return builtinDescriptor(), nil
	}

	path, explicit := descriptorPath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !explicit {
		log.Debug().Str("file", path).Msg("descriptor file not found, using built-in descriptor")
		return builtinDescriptor(), nil
	}

	format, err := twconfig.FormatFromPath(path)
	if err != nil {
		return loadedDescriptor{}, err
	}

	source, err := twconfig.ReadSource(path)
	if err != nil {
		return loadedDescriptor{}, err
	}

	d, unknown, err := twconfig.Unmarshal(source, format)
	if err != nil {
		return loadedDescriptor{}, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().
		Str("file", path).
		Str("format", string(format)).
		Int("globs", len(d.ContentGlobs())).
		Int("plugins", len(d.Plugins())).
		Strs("unknown", unknown).
		Msg("descriptor loaded")

	return loadedDescriptor{
		descriptor: d,
		filename:   path,
		format:     format,
		source:     source,
		unknown:    unknown,
	}, nil
}

func builtinDescriptor() loadedDescriptor {
	d := twconfig.Load()
	return loadedDescriptor{
		descriptor: d,
		filename:   builtinName,
		format:     twconfig.FormatJS,
		source:     mustMarshal(d, twconfig.FormatJS),
		builtin:    true,
	}
}

// mustMarshal is only used with descriptors built in this package.
func mustMarshal(d twconfig.Descriptor, format twconfig.Format) []byte {
	data, err := twconfig.Marshal(d, format)
	if err != nil {
		panic(err)
	}
	return data
}
