// Package twconfig models the configuration descriptor consumed by a
// utility-class CSS generator (tailwind.config.js and friends).
//
// A descriptor holds three things: the content globs the generator scans,
// the theme extensions it merges over its defaults, and the plugins it
// registers. Descriptors are immutable once built.
//
// # Loading
//
// The project's own descriptor is compiled in:
//
//	d := twconfig.Load()
//	d.ContentGlobs() // ["./open_data_lakehouse_demo/templates/**/*.html", ...]
//
// Descriptors can also be read from any of their record forms:
//
//	d, unknown, err := twconfig.LoadFile("tailwind.config.js")
//
// # Checking
//
// Check lints a descriptor and reports issues in golangci-lint format:
//
//	result, err := twconfig.Check(d, twconfig.CheckConfig{Root: "."})
//
// # CLI Tool
//
//	go install github.com/yacobolo/twconfig/cmd/twconfig@latest
package twconfig
