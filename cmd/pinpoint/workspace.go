package main

import (
	"flag"

	"github.com/odvcencio/pinpoint/pkg/config"
	"github.com/odvcencio/pinpoint/pkg/generate"
	"github.com/odvcencio/pinpoint/pkg/logging"
	"github.com/odvcencio/pinpoint/pkg/manifest"
	"github.com/odvcencio/pinpoint/pkg/registry"
	"github.com/odvcencio/pinpoint/pkg/terminal"
)

// newTerminalWriter allows tests to capture command output.
var newTerminalWriter = terminal.New

// genOptions are the flags shared by list, gen, check, and watch.
type genOptions struct {
	configPath string
	manifest   string
	out        string
	pkg        string
	jsonOut    string
}

func addGenFlags(fs *flag.FlagSet) *genOptions {
	opts := &genOptions{}
	fs.StringVar(&opts.configPath, "config", "", "Tool config file (default .pinpoint.yaml)")
	fs.StringVar(&opts.manifest, "manifest", "", "Component manifest path (overrides config)")
	fs.StringVar(&opts.out, "out", "", "Generated Go file path (overrides config)")
	fs.StringVar(&opts.pkg, "package", "", "Generated Go package name (overrides config)")
	fs.StringVar(&opts.jsonOut, "json-out", "", "JSON listing path (overrides config)")
	return opts
}

// resolveConfig loads the tool config and applies flag overrides.
func resolveConfig(opts *genOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.manifest != "" {
		cfg.Manifest = opts.manifest
	}
	if opts.out != "" {
		cfg.Output.GoFile = opts.out
	}
	if opts.pkg != "" {
		cfg.Output.GoPackage = opts.pkg
	}
	if opts.jsonOut != "" {
		cfg.Output.JSONFile = opts.jsonOut
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger opens the JSONL log; logging is best-effort, so failure
// degrades to a nil (no-op) logger.
func openLogger(cfg *config.Config) *logging.Logger {
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		return nil
	}
	return logger
}

// loadEntries loads the manifest and enumerates its registry.
func loadEntries(cfg *config.Config, log *logging.Logger) ([]registry.Entry, error) {
	m, err := manifest.Load(cfg.Manifest)
	if err != nil {
		_ = log.Error(logging.CategoryManifest, "manifest_load_failed", err.Error(), map[string]any{"path": cfg.Manifest})
		return nil, err
	}
	_ = log.Info(logging.CategoryManifest, "manifest_loaded", "", map[string]any{
		"path":       cfg.Manifest,
		"components": len(m.Components),
	})

	entries, err := registry.Enumerate(m)
	if err != nil {
		_ = log.Error(logging.CategoryRegistry, "enumerate_failed", err.Error(), nil)
		return nil, err
	}
	_ = log.Info(logging.CategoryRegistry, "registry_enumerated", "", map[string]any{"entries": len(entries)})
	return entries, nil
}

// generateAll writes the configured artifacts for the current
// manifest state.
func generateAll(cfg *config.Config, log *logging.Logger, out *terminal.Writer) error {
	entries, err := loadEntries(cfg, log)
	if err != nil {
		return err
	}

	src, err := generate.GoFile(entries, cfg.Output.GoPackage)
	if err != nil {
		return err
	}
	if err := generate.WriteFile(cfg.Output.GoFile, src); err != nil {
		_ = log.Error(logging.CategoryGenerate, "write_failed", err.Error(), map[string]any{"path": cfg.Output.GoFile})
		return err
	}
	_ = log.Info(logging.CategoryGenerate, "go_file_written", "", map[string]any{
		"path":     cfg.Output.GoFile,
		"locators": len(entries),
	})
	out.Success("wrote %s (%d locators)", cfg.Output.GoFile, len(entries))

	if cfg.Output.JSONFile != "" {
		data, err := generate.JSONFile(entries)
		if err != nil {
			return err
		}
		if err := generate.WriteFile(cfg.Output.JSONFile, data); err != nil {
			_ = log.Error(logging.CategoryGenerate, "write_failed", err.Error(), map[string]any{"path": cfg.Output.JSONFile})
			return err
		}
		_ = log.Info(logging.CategoryGenerate, "json_file_written", "", map[string]any{"path": cfg.Output.JSONFile})
		out.Success("wrote %s", cfg.Output.JSONFile)
	}
	return nil
}
