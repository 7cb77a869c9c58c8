package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

const defaultBaseURL = "http://localhost"

// Options contains configuration options. YAML-only settings live at the top
// level, everything else comes from environment variables.
type Options struct {
	TrustedProxies []string  `yaml:"trusted_proxies" validate:"dive,ip|cidr"`
	RateLimit      RateLimit `yaml:"rate_limit"`

	env EnvOptions

	rootURL  string
	basePath string
	secrets  []string
}

// RateLimit bounds how often one client may call the set-theme action.
type RateLimit struct {
	Rate  float64 `yaml:"rate" validate:"omitempty,min=0"`
	Burst int     `yaml:"burst" validate:"omitempty,min=0"`
}

type EnvOptions struct {
	ListenAddr        string   `env:"LISTEN_ADDR" envDefault:"127.0.0.1:8080" validate:"required,hostname_port"`
	BaseURL           string   `env:"BASE_URL" envDefault:"http://localhost" validate:"required"`
	HTTPS             bool     `env:"HTTPS"`
	DisableHSTS       bool     `env:"DISABLE_HSTS"`
	CertFile          string   `env:"CERT_FILE" validate:"omitempty,filepath"`
	CertKeyFile       string   `env:"KEY_FILE" validate:"omitempty,filepath"`
	CertDomain        string   `env:"CERT_DOMAIN"`
	CertCacheDir      string   `env:"CERT_CACHE_DIR" envDefault:"/var/lib/lightswitch/certs"`
	LogFile           string   `env:"LOG_FILE" envDefault:"stderr" validate:"required"`
	LogFormat         string   `env:"LOG_FORMAT" envDefault:"text" validate:"required,oneof=human json text"`
	LogLevel          string   `env:"LOG_LEVEL" envDefault:"info" validate:"required,oneof=debug info warning error"`
	LogDateTime       bool     `env:"LOG_DATE_TIME"`
	MetricsCollector  bool     `env:"METRICS_COLLECTOR"`
	MetricsNetworks   []string `env:"METRICS_ALLOWED_NETWORKS" envDefault:"127.0.0.1/8" validate:"dive,cidr"`
	HTTPServerTimeout int      `env:"HTTP_SERVER_TIMEOUT" envDefault:"300" validate:"min=1"`
	DefaultTheme      string   `env:"DEFAULT_THEME" validate:"omitempty,oneof=dark light"`
	SessionSecretFile *string  `env:"SESSION_SECRET_FILE,file"`
}

// NewOptions returns Options with default values.
func NewOptions() *Options {
	return &Options{
		RateLimit: RateLimit{Rate: 5, Burst: 10},
	}
}

func (o *Options) init(environ map[string]string) error {
	if err := o.validate(); err != nil {
		return err
	}

	rootURL, basePath, err := parseBaseURL(o.env.BaseURL)
	if err != nil {
		return err
	}
	o.env.BaseURL = rootURL + basePath
	o.rootURL = rootURL
	o.basePath = basePath

	return o.initSecrets(environ)
}

func (o *Options) validate() error {
	if err := Validator().Struct(&o.env); err != nil {
		return fmt.Errorf("config: invalid environment: %w", err)
	}
	if err := Validator().Struct(o); err != nil {
		return fmt.Errorf("config: invalid configuration file: %w", err)
	}
	return nil
}

// initSecrets resolves cookie signing secrets. They are read via FromEnv
// instead of a struct tag so they never end up in dumpable options. A comma
// separated list rotates secrets, newest first.
func (o *Options) initSecrets(environ map[string]string) error {
	raw := ""
	if o.env.SessionSecretFile != nil {
		raw = strings.TrimSpace(*o.env.SessionSecretFile)
	}

	if raw == "" {
		value, err := FromEnv("SESSION_SECRET", environ)
		if err != nil {
			return err
		}
		raw = value
	}

	for s := range strings.SplitSeq(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			o.secrets = append(o.secrets, s)
		}
	}

	if len(o.secrets) == 0 {
		return errors.New("config: SESSION_SECRET contains no usable secret")
	}
	return nil
}

func parseBaseURL(value string) (string, string, error) {
	if value == "" {
		return defaultBaseURL, "", nil
	}
	value = strings.TrimSuffix(value, "/")

	parsedURL, err := url.Parse(value)
	if err != nil {
		return "", "", fmt.Errorf("config: invalid BASE_URL: %w", err)
	}

	scheme := strings.ToLower(parsedURL.Scheme)
	if scheme != "https" && scheme != "http" {
		return "", "",
			errors.New("config: invalid BASE_URL: scheme must be http or https")
	}

	basePath := parsedURL.Path
	parsedURL.Path = ""
	return parsedURL.String(), basePath, nil
}

func (o *Options) ListenAddr() string { return o.env.ListenAddr }

// BaseURL returns the application base URL with path.
func (o *Options) BaseURL() string { return o.env.BaseURL }

// RootURL returns the base URL without path.
func (o *Options) RootURL() string { return o.rootURL }

// BasePath returns the application base path according to the base URL.
func (o *Options) BasePath() string { return o.basePath }

func (o *Options) HTTPS() bool { return o.env.HTTPS }

func (o *Options) EnableHTTPS() { o.env.HTTPS = true }

func (o *Options) HasHSTS() bool { return !o.env.DisableHSTS }

func (o *Options) CertFile() string { return o.env.CertFile }

func (o *Options) CertKeyFile() string { return o.env.CertKeyFile }

func (o *Options) CertDomain() string { return o.env.CertDomain }

// CertCacheDir returns the directory where automatic certificates are
// cached.
func (o *Options) CertCacheDir() string { return o.env.CertCacheDir }

func (o *Options) LogFile() string { return o.env.LogFile }

func (o *Options) LogFormat() string { return o.env.LogFormat }

func (o *Options) LogLevel() string { return o.env.LogLevel }

func (o *Options) SetLogLevel(level string) { o.env.LogLevel = level }

func (o *Options) LogDateTime() bool { return o.env.LogDateTime }

func (o *Options) HasMetricsCollector() bool { return o.env.MetricsCollector }

// MetricsAllowedNetworks returns CIDRs allowed to scrape the metrics
// endpoint.
func (o *Options) MetricsAllowedNetworks() []string {
	return o.env.MetricsNetworks
}

func (o *Options) HTTPServerTimeout() time.Duration {
	return time.Duration(o.env.HTTPServerTimeout) * time.Second
}

// SessionSecrets returns cookie signing secrets, newest first.
func (o *Options) SessionSecrets() []string { return slices.Clone(o.secrets) }

// DefaultTheme returns the theme rendered for visitors without a cookie, or
// empty when the OS preference should decide.
func (o *Options) DefaultTheme() string { return o.env.DefaultTheme }

func (o *Options) ActionRateLimit() (rate float64, burst int) {
	return o.RateLimit.Rate, o.RateLimit.Burst
}

// String returns dumpable options, secrets redacted.
func (o *Options) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "LISTEN_ADDR: %v\n", o.env.ListenAddr)
	fmt.Fprintf(&b, "BASE_URL: %v\n", o.env.BaseURL)
	fmt.Fprintf(&b, "HTTPS: %v\n", o.env.HTTPS)
	fmt.Fprintf(&b, "DISABLE_HSTS: %v\n", o.env.DisableHSTS)
	fmt.Fprintf(&b, "CERT_FILE: %v\n", o.env.CertFile)
	fmt.Fprintf(&b, "KEY_FILE: %v\n", o.env.CertKeyFile)
	fmt.Fprintf(&b, "CERT_DOMAIN: %v\n", o.env.CertDomain)
	fmt.Fprintf(&b, "CERT_CACHE_DIR: %v\n", o.env.CertCacheDir)
	fmt.Fprintf(&b, "LOG_FILE: %v\n", o.env.LogFile)
	fmt.Fprintf(&b, "LOG_FORMAT: %v\n", o.env.LogFormat)
	fmt.Fprintf(&b, "LOG_LEVEL: %v\n", o.env.LogLevel)
	fmt.Fprintf(&b, "LOG_DATE_TIME: %v\n", o.env.LogDateTime)
	fmt.Fprintf(&b, "METRICS_COLLECTOR: %v\n", o.env.MetricsCollector)
	fmt.Fprintf(&b, "METRICS_ALLOWED_NETWORKS: %v\n", o.env.MetricsNetworks)
	fmt.Fprintf(&b, "HTTP_SERVER_TIMEOUT: %v\n", o.env.HTTPServerTimeout)
	fmt.Fprintf(&b, "DEFAULT_THEME: %v\n", o.env.DefaultTheme)
	fmt.Fprintf(&b, "SESSION_SECRET: ******\n")
	fmt.Fprintf(&b, "TRUSTED_PROXIES: %v\n", o.TrustedProxies)
	fmt.Fprintf(&b, "RATE_LIMIT: %v r/s, burst %v\n",
		o.RateLimit.Rate, o.RateLimit.Burst)
	return b.String()
}
