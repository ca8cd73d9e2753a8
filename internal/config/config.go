package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/kls/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envKubectl  = "KLS_KUBECTL"
	envRefresh  = "KLS_REFRESH"
	envBindings = "KLS_BINDINGS"
	envMouse    = "KLS_MOUSE"
	envVerbose  = "KLS_VERBOSE"
	envTrace    = "KLS_TRACE"
	envLogFile  = "KLS_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("kls", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	kubectl := fs.String("kubectl", envOrDefault(env, envKubectl, "kubectl"), "kubectl binary used for cluster queries")
	refresh := fs.Int("refresh", envOrInt(env, envRefresh, 5), "idle refresh interval in seconds (0 disables)")
	bindings := fs.String("bindings", envOrDefault(env, envBindings, ""), "path to a TOML file of extra key bindings")
	mouse := fs.Bool("mouse", envOrBool(env, envMouse, true), "enable mouse support")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "log command output and timings")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *refresh < 0 {
		return Config{}, fmt.Errorf("refresh must be >= 0 (got %d)", *refresh)
	}

	cfg := Config{
		App: app.Config{
			KubectlPath:     *kubectl,
			RefreshInterval: time.Duration(*refresh) * time.Second,
			BindingsPath:    *bindings,
			Mouse:           *mouse,
			Verbose:         *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"kubectl":  *kubectl,
			"refresh":  strconv.Itoa(*refresh),
			"bindings": *bindings,
			"mouse":    strconv.FormatBool(*mouse),
			"trace":    strconv.FormatBool(*trace),
			"verbose":  strconv.FormatBool(*verbose),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
