package config

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment overrides: STRUCTVIZ_LIST_KIND
// sets list_kind.
const EnvPrefix = "STRUCTVIZ_"

// File names searched in the working directory when no path is given.
var defaultFiles = []string{"structviz.yaml", "structviz.yml"}

// Loaded is the outcome of Load.
type Loaded struct {
	Config
	// File is the config file that was read, or "" when none was found.
	File string
}

// findConfigFile picks the explicit path or the first default file present.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range defaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads configuration with precedence flags > env > file > defaults.
// Only flags that were explicitly set override lower layers. An explicit
// path that does not exist is an error; a missing default file is not.
func Load(path string, flags *pflag.FlagSet) (*Loaded, error) {
	k := koanf.New(".")

	d := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":        d.Output,
		"list_kind":     d.ListKind,
		"tree_kind":     d.TreeKind,
		"dataset":       d.Dataset,
		"history_limit": d.HistoryLimit,
		"id_scheme":     d.IDScheme,
		"id_prefix":     d.IDPrefix,
		"step_interval": d.StepInterval.String(),
		"log_level":     d.LogLevel,
		"color":         d.Color,
		"graph_nodes":   d.GraphNodes,
		"graph_shape":   d.GraphShape,
		"canvas_width":  d.CanvasWidth,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	used := findConfigFile(path)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", used)
		}
	}

	// STRUCTVIZ_STEP_INTERVAL -> step_interval
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env vars")
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			switch key {
			case "config", "steps", "animate", "interactive":
				// per-invocation switches, not settings
				return "", nil
			case "no_color":
				return "color", !flagBool(flags, f.Name)
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errors.Wrap(err, "load flags")
		}
	}

	out := &Loaded{File: used}
	if err := k.Unmarshal("", &out.Config); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func flagBool(flags *pflag.FlagSet, name string) bool {
	v, _ := flags.GetBool(name)
	return v
}

// loggerKey is the context key of the command logger.
type loggerKey struct{}

// settingsKey is the context key of the resolved settings.
type settingsKey struct{}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// GetLogger retrieves the logger stored by WithLogger.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return slog.New(slog.DiscardHandler)
}

// WithSettings returns a copy of ctx carrying s.
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// GetSettings retrieves the settings stored by WithSettings, falling back to
// the resolved defaults.
func GetSettings(ctx context.Context) Settings {
	if ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(Settings); ok {
			return s
		}
	}
	d := Default()
	s, err := d.Resolve()
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "default config does not resolve"))
	}
	return s
}
