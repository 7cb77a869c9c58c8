package config

import "time"

// Opts holds parsed configuration options.
var Opts *Options

// Load loads configuration values from a YAML file (if filename isn't empty)
// and from environment variables after that.
func Load(filename string) (err error) {
	cfg := NewParser()
	if filename != "" {
		Opts, err = cfg.ParseFile(filename)
		return
	}
	Opts, err = cfg.ParseEnvironmentVariables()
	return
}

// LoadEnvFile loads configuration values from a dotenv file and from
// environment variables after that.
func LoadEnvFile(filename string) (err error) {
	Opts, err = NewParser().ParseEnvFile(filename)
	return
}

// LoadYAML loads configuration values from a YAML file and a dotenv file,
// both optional, and from environment variables after that.
func LoadYAML(yamlFile, envFile string) (err error) {
	switch {
	case yamlFile != "":
		Opts, err = NewParser().ParseFile(yamlFile)
	case envFile != "":
		Opts, err = NewParser().ParseEnvFile(envFile)
	default:
		Opts, err = NewParser().ParseEnvironmentVariables()
	}
	return
}

// LoadFrom loads configuration values from an explicit key/value source
// instead of the process environment.
func LoadFrom(environ map[string]string) (err error) {
	Opts, err = NewParser().parseEnviron(environ)
	return
}

func ListenAddr() string { return Opts.ListenAddr() }

func BaseURL() string { return Opts.BaseURL() }

func RootURL() string { return Opts.RootURL() }

func BasePath() string { return Opts.BasePath() }

func HTTPS() bool { return Opts.HTTPS() }

func EnableHTTPS() { Opts.EnableHTTPS() }

func HasHSTS() bool { return Opts.HasHSTS() }

func CertFile() string { return Opts.CertFile() }

func CertKeyFile() string { return Opts.CertKeyFile() }

func CertDomain() string { return Opts.CertDomain() }

func CertCacheDir() string { return Opts.CertCacheDir() }

func HTTPServerTimeout() time.Duration { return Opts.HTTPServerTimeout() }

func HasMetricsCollector() bool { return Opts.HasMetricsCollector() }

func MetricsAllowedNetworks() []string { return Opts.MetricsAllowedNetworks() }

func SessionSecrets() []string { return Opts.SessionSecrets() }

func DefaultTheme() string { return Opts.DefaultTheme() }

func TrustedProxies() []string { return Opts.TrustedProxies }

func ActionRateLimit() (rate float64, burst int) {
	return Opts.ActionRateLimit()
}
