package main

import (
	"errors"
	"flag"
	"io/fs"

	"solar-system/internal/bodies"
	"solar-system/internal/config"
	"solar-system/internal/env"
	"solar-system/internal/logger"
)

// options are the flags shared by every subcommand. Empty strings mean "not given".
type options struct {
	configPath string
	assetDir   string
	logPath    string
	lighting   bool
}

func bindOptions(fs *flag.FlagSet) *options {
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "preferences file (default "+config.DefaultPath+")")
	fs.StringVar(&o.assetDir, "assets", "", "asset directory with textures/, fonts/, bodies.yaml")
	fs.StringVar(&o.logPath, "log", "", "log file path")
	fs.BoolVar(&o.lighting, "lighting", false, "shade planets with the sun as a point light")
	return o
}

// resolve loads .env, then the preferences file, then applies env and flag overrides (flags win).
// A malformed config file is returned as warn so it can be logged once the logger exists.
func (o *options) resolve() (p config.Prefs, warn error) {
	_ = env.Load(".env")
	path := o.configPath
	if path == "" {
		path = env.String(env.ConfigVar, config.DefaultPath)
	}
	p, warn = config.Load(path)
	p.AssetDir = env.String(env.AssetDirVar, p.AssetDir)
	p.LogPath = env.String(env.LogPathVar, p.LogPath)
	if o.assetDir != "" {
		p.AssetDir = o.assetDir
	}
	if o.logPath != "" {
		p.LogPath = o.logPath
	}
	if o.lighting {
		p.Lighting = true
	}
	return p, warn
}

// loadRegistry reads bodies.yaml from the asset directory when present; otherwise, or when it is
// invalid, the built-in bodies are used.
func loadRegistry(p config.Prefs, log *logger.Logger) *bodies.Registry {
	reg, err := bodies.Load(p.BodiesPath())
	if err == nil {
		log.Logf("Loaded %d bodies from %s", reg.Len(), p.BodiesPath())
		return reg
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Logf("Using built-in bodies: %v", err)
	}
	return bodies.Default()
}
