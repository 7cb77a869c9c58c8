package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

// Parser handles configuration parsing.
type Parser struct {
	opts *Options
}

// NewParser returns a new Parser.
func NewParser() *Parser { return &Parser{opts: NewOptions()} }

// ParseEnvironmentVariables loads configuration values from environment
// variables.
func (p *Parser) ParseEnvironmentVariables() (*Options, error) {
	if err := env.Parse(p.env()); err != nil {
		return nil, fmt.Errorf("config: failed parse env vars: %w", err)
	} else if err := p.opts.init(nil); err != nil {
		return nil, err
	}
	return p.opts, nil
}

func (p *Parser) env() *EnvOptions { return &p.opts.env }

// ParseEnvFile loads configuration values from a dotenv file, ignoring the
// process environment entirely.
func (p *Parser) ParseEnvFile(filename string) (*Options, error) {
	environ, err := godotenv.Read(filename)
	if err != nil {
		return nil, fmt.Errorf("config: failed parse %q: %w", filename, err)
	}
	return p.parseEnviron(environ)
}

// parseEnviron loads configuration values from an explicit key/value source.
func (p *Parser) parseEnviron(environ map[string]string) (*Options, error) {
	err := env.ParseWithOptions(p.env(), env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("config: failed parse environment: %w", err)
	} else if err := p.opts.init(environ); err != nil {
		return nil, err
	}
	return p.opts, nil
}

// ParseFile loads YAML-only configuration values from a local file and
// everything else from environment variables after that.
func (p *Parser) ParseFile(filename string) (*Options, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: failed read %q: %w", filename, err)
	}

	if err := yaml.Unmarshal(b, p.opts); err != nil {
		return nil, fmt.Errorf("config: failed parse %q: %w", filename, err)
	}
	return p.ParseEnvironmentVariables()
}
