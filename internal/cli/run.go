package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bin2c/bin2c/internal/config"
	"github.com/bin2c/bin2c/internal/emitter"
	"github.com/bin2c/bin2c/internal/pathname"
	"github.com/bin2c/bin2c/internal/ui"
	"github.com/bin2c/bin2c/pkg/log"
)

// run executes one conversion: load configuration, open the input, drive
// the emitter, and release every resource on every path. Each failing phase
// contributes its own diagnostic to the returned error.
func run(v Variant, inputPath string, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return &runError{errs: []error{err}}
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return &runError{errs: []error{fmt.Errorf("initialize logging: %w", err)}}
	}

	// Flags win over configuration defaults.
	prefix := opts.prefix
	if prefix == "" {
		prefix = cfg.Naming.Prefix
	}
	suffix := opts.suffix
	if suffix == "" {
		suffix = cfg.Naming.Suffix
	}
	lengthSuffix := opts.lengthSuffix
	if lengthSuffix == "" {
		lengthSuffix = cfg.Naming.LengthSuffix
	}

	scope := emitter.Local
	if opts.globalScope {
		scope = emitter.Global
	}

	if err := pathname.Validate(inputPath); err != nil {
		return &runError{errs: []error{err}}
	}

	// Opening the input is the strongest validation of the pathname
	// argument and happens before any output artifact is created.
	in, err := os.Open(inputPath)
	if err != nil {
		return &runError{errs: []error{fmt.Errorf("open %s: %w", inputPath, err)}}
	}

	slog.Debug("starting conversion",
		"program", v.name(), "input", inputPath, "scope", scope)

	res, emitErr := emitter.Emit(in, emitter.Request{
		InputPath:    inputPath,
		Prefix:       prefix,
		Suffix:       suffix,
		LengthSuffix: lengthSuffix,
		Scope:        scope,
		ElementType:  cfg.Output.ElementType,
		BlockSize:    cfg.Encoder.BlockSize,
		Atomic:       cfg.Output.Atomic,
	})

	var errs []error
	if emitErr != nil {
		errs = append(errs, fmt.Errorf("failed to create output C file(s) from the input binary file: %w", emitErr))
	}
	if cerr := in.Close(); cerr != nil {
		errs = append(errs, fmt.Errorf("failed to properly close the input file: %w", cerr))
	}
	if len(errs) > 0 {
		return &runError{errs: errs}
	}

	ui.PrintSuccess("definition", fmt.Sprintf("%s (%d elements)", res.Definition, res.Elements))
	if res.Declaration != "" {
		ui.PrintSuccess("declaration", res.Declaration)
	}
	slog.Info("conversion complete", "input", inputPath, "elements", res.Elements)
	return nil
}
