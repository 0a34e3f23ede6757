package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/moklet-dev/twibbon/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "twibbon.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultTitle is the document title of the rendered page.
	DefaultTitle = "Moklet Twibbon"

	// DefaultTailwindCDN is the Tailwind runtime used by the rendered page.
	DefaultTailwindCDN = "https://cdn.tailwindcss.com"

	// DefaultPublishKey is the object key of the published page.
	DefaultPublishKey = "index.html"

	// DefaultCacheControl is the Cache-Control header of the published page.
	DefaultCacheControl = "public, max-age=300"
)

// Config represents the complete twibbon.json configuration.
type Config struct {
	// Title is the document title.
	Title string `json:"title,omitempty"`

	// Description is the meta description of the page.
	Description string `json:"description,omitempty"`

	// Lang is the html lang attribute.
	Lang string `json:"lang,omitempty"`

	// Dev contains preview server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Render contains static render configuration.
	Render RenderConfig `json:"render,omitempty"`

	// Publish contains object storage configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// Tailwind contains stylesheet runtime configuration.
	Tailwind TailwindConfig `json:"tailwind,omitempty"`

	// Tracing toggles OpenTelemetry spans.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains preview server configuration.
type DevConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
}

// RenderConfig contains static render configuration.
type RenderConfig struct {
	// Pretty indents the emitted HTML.
	Pretty bool `json:"pretty,omitempty"`
	// Output is the file written by `twibbon render`; empty means stdout.
	Output string `json:"output,omitempty"`
}

// PublishConfig contains object storage configuration.
type PublishConfig struct {
	Bucket       string `json:"bucket,omitempty"`
	Key          string `json:"key,omitempty"`
	Region       string `json:"region,omitempty"`
	CacheControl string `json:"cacheControl,omitempty"`
}

// TailwindConfig contains stylesheet runtime configuration.
type TailwindConfig struct {
	// CDN is the script URL of the Tailwind runtime.
	CDN string `json:"cdn,omitempty"`
}

// TracingConfig configures OpenTelemetry span export.
type TracingConfig struct {
	Enabled bool `json:"enabled,omitempty"`
	// Endpoint is the OTLP/HTTP collector (host:port). Empty uses the
	// OTEL_EXPORTER_OTLP_ENDPOINT environment default.
	Endpoint string `json:"endpoint,omitempty"`
	// SampleRate is the fraction of traces kept, 0 to 1.
	SampleRate *float64 `json:"sampleRate,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadFile loads the configuration at path.
// A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := New()
			cfg.configPath = path
			return cfg, nil
		}
		return nil, errors.New(errors.CodeConfigParse).WithDetail("reading " + path).Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigParse).
			WithDetail("Failed to parse " + path).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Lang == "" {
		c.Lang = "en"
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Publish.Key == "" {
		c.Publish.Key = DefaultPublishKey
	}
	if c.Publish.CacheControl == "" {
		c.Publish.CacheControl = DefaultCacheControl
	}
	if c.Tailwind.CDN == "" {
		c.Tailwind.CDN = DefaultTailwindCDN
	}
	if c.Tracing.SampleRate == nil {
		rate := 1.0
		c.Tracing.SampleRate = &rate
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return invalid("dev.port must be between 0 and 65535, got %d", c.Dev.Port)
	}
	if strings.ContainsAny(c.Dev.Host, " /") {
		return invalid("dev.host %q is not a host name", c.Dev.Host)
	}
	if strings.HasPrefix(c.Publish.Key, "/") {
		return invalid("publish.key %q must not start with /", c.Publish.Key)
	}
	if c.Publish.Bucket != "" && strings.ContainsAny(c.Publish.Bucket, " /") {
		return invalid("publish.bucket %q is not a bucket name", c.Publish.Bucket)
	}
	if r := c.Tracing.SampleRate; r != nil && (*r < 0 || *r > 1) {
		return invalid("tracing.sampleRate must be between 0 and 1, got %g", *r)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.CodeConfigInvalid).WithDetail(fmt.Sprintf(format, args...))
}

// DevAddress returns the host:port the preview server listens on.
func (c *Config) DevAddress() string {
	return net.JoinHostPort(c.Dev.Host, strconv.Itoa(c.Dev.Port))
}

// DevURL returns the preview URL.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}
