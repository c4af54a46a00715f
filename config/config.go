// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/units"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/hypercounter/codec"
	"github.com/ava-labs/hypercounter/consts"
	"github.com/ava-labs/hypercounter/pebble"
	"github.com/ava-labs/hypercounter/trace"
)

const (
	defaultLogLevel          = "info"
	defaultLogDisplayLevel   = "off"
	defaultLogFormat         = "json"
	defaultLogMaxSize        = 8 // megabytes
	defaultLogMaxFiles       = 4
	defaultLogMaxAge         = 7 // days
	defaultHTTPHost          = "127.0.0.1"
	defaultHTTPPort          = 9650
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultStreamingBacklog  = 1_024
	defaultMaxRequestSize    = 1 * units.MiB
)

type Config struct {
	// Storage
	DataDir  string        `json:"dataDir"  yaml:"dataDir"`
	Database pebble.Config `json:"database" yaml:"database"`

	// Contract is the hex address the counter is deployed at.
	Contract string `json:"contract" yaml:"contract"`

	// Logging
	LogDir          string `json:"logDir"          yaml:"logDir"`
	LogLevel        string `json:"logLevel"        yaml:"logLevel"`
	LogDisplayLevel string `json:"logDisplayLevel" yaml:"logDisplayLevel"`
	LogFormat       string `json:"logFormat"       yaml:"logFormat"`
	LogMaxSize      int    `json:"logMaxSize"      yaml:"logMaxSize"`
	LogMaxFiles     int    `json:"logMaxFiles"     yaml:"logMaxFiles"`
	LogMaxAge       int    `json:"logMaxAge"       yaml:"logMaxAge"`

	// HTTP
	HTTPHost          string        `json:"httpHost"          yaml:"httpHost"`
	HTTPPort          uint16        `json:"httpPort"          yaml:"httpPort"`
	AllowedOrigins    []string      `json:"allowedOrigins"    yaml:"allowedOrigins"`
	AllowedHosts      []string      `json:"allowedHosts"      yaml:"allowedHosts"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `json:"shutdownTimeout"   yaml:"shutdownTimeout"`
	MaxRequestSize    int           `json:"maxRequestSize"    yaml:"maxRequestSize"`

	// Streaming
	StreamingBacklogSize int `json:"streamingBacklogSize" yaml:"streamingBacklogSize"`

	// Tracing
	TraceEnabled    bool    `json:"traceEnabled"    yaml:"traceEnabled"`
	TraceSampleRate float64 `json:"traceSampleRate" yaml:"traceSampleRate"`
	TraceEndpoint   string  `json:"traceEndpoint"   yaml:"traceEndpoint"`

	logLevel        logging.Level
	logDisplayLevel logging.Level
	contract        codec.Address
}

// New parses a JSON config. Missing fields keep their defaults.
func New(dataDir string, b []byte) (*Config, error) {
	c := newDefault(dataDir)
	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	return c, c.parse()
}

// Load reads the config at [path]. Files ending in .yaml or .yml are parsed
// as YAML, anything else as JSON.
func Load(dataDir string, path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c := newDefault(dataDir)
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
		}
		return c, c.parse()
	default:
		return New(dataDir, b)
	}
}

func newDefault(dataDir string) *Config {
	return &Config{
		DataDir:              dataDir,
		Database:             pebble.NewDefaultConfig(),
		Contract:             consts.DefaultContract.String(),
		LogDir:               filepath.Join(dataDir, "logs"),
		LogLevel:             defaultLogLevel,
		LogDisplayLevel:      defaultLogDisplayLevel,
		LogFormat:            defaultLogFormat,
		LogMaxSize:           defaultLogMaxSize,
		LogMaxFiles:          defaultLogMaxFiles,
		LogMaxAge:            defaultLogMaxAge,
		HTTPHost:             defaultHTTPHost,
		HTTPPort:             defaultHTTPPort,
		AllowedOrigins:       []string{"*"},
		AllowedHosts:         []string{"localhost"},
		ReadHeaderTimeout:    defaultReadHeaderTimeout,
		ShutdownTimeout:      defaultShutdownTimeout,
		MaxRequestSize:       defaultMaxRequestSize,
		StreamingBacklogSize: defaultStreamingBacklog,
		TraceEndpoint:        trace.DefaultEndpoint,
	}
}

func (c *Config) parse() error {
	var err error
	c.logLevel, err = logging.ToLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid logLevel: %w", err)
	}
	c.logDisplayLevel, err = logging.ToLevel(c.LogDisplayLevel)
	if err != nil {
		return fmt.Errorf("invalid logDisplayLevel: %w", err)
	}
	c.contract, err = codec.StringToAddress(c.Contract)
	if err != nil {
		return fmt.Errorf("invalid contract: %w", err)
	}
	return nil
}

func (c *Config) GetLogLevel() logging.Level        { return c.logLevel }
func (c *Config) GetLogDisplayLevel() logging.Level { return c.logDisplayLevel }
func (c *Config) GetContract() codec.Address        { return c.contract }
func (c *Config) GetHTTPAddress() string            { return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort) }
func (c *Config) GetStreamingBacklogSize() int      { return c.StreamingBacklogSize }
func (c *Config) GetShutdownTimeout() time.Duration { return c.ShutdownTimeout }

func (c *Config) GetLogConfig() (logging.Config, error) {
	format, err := logging.ToFormat(c.LogFormat, os.Stdout.Fd())
	if err != nil {
		return logging.Config{}, err
	}
	return logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   c.LogMaxSize,
			MaxFiles:  c.LogMaxFiles,
			MaxAge:    c.LogMaxAge,
			Directory: c.LogDir,
		},
		DisableWriterDisplaying: c.logDisplayLevel == logging.Off,
		LogLevel:                c.logLevel,
		DisplayLevel:            c.logDisplayLevel,
		LogFormat:               format,
	}, nil
}

func (c *Config) GetTraceConfig() *trace.Config {
	return &trace.Config{
		Enabled:         c.TraceEnabled,
		TraceSampleRate: c.TraceSampleRate,
		Endpoint:        c.TraceEndpoint,
		AppName:         consts.Name,
		Agent:           c.HTTPHost,
		Version:         consts.Version,
	}
}

// SetLogLevel overrides the configured log level.
func (c *Config) SetLogLevel(level string) error {
	l, err := logging.ToLevel(level)
	if err != nil {
		return err
	}
	c.LogLevel = level
	c.logLevel = l
	return nil
}
