//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"metroems/internal/app/errors"
	"metroems/internal/config"
	"metroems/internal/config/logger"
)

const header = `# metroems console configuration
# Environment variables prefixed with METROEMS_ override these values,
# e.g. METROEMS_BACKEND_TOKEN or METROEMS_SESSION_ID.

`

// Options contains the values written into a new metroems.yaml
type Options struct {
	Path       string
	BackendURL string
	SessionID  string
}

// DefaultOptions returns sensible defaults for generation
func DefaultOptions() Options {
	return Options{
		Path:       config.FileName,
		BackendURL: config.BackendURL,
		SessionID:  "1",
	}
}

// Generator defines the interface for generating metroems.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator instance printing dry runs to stdout
func NewGenerator(log logger.Logger) Generator {
	return NewGeneratorWithOutput(os.Stdout, log)
}

// NewGeneratorWithOutput creates a generator printing dry runs to out
func NewGeneratorWithOutput(out io.Writer, log logger.Logger) Generator {
	return &generator{
		out: out,
		log: log,
	}
}

// Generate writes the default configuration with the given overrides
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if opts.Path == "" {
		opts.Path = config.FileName
	}

	if !dryRun && !force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrFileExists, opts.Path)
		}
	}

	content, err := Render(opts)
	if err != nil {
		return err
	}

	if dryRun {
		_, err := g.out.Write(content)
		return err
	}

	if err := os.WriteFile(opts.Path, content, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", opts.Path)

	return nil
}

// Render returns the YAML document for the given options
func Render(opts Options) ([]byte, error) {
	cfg := config.DefaultConfig()

	if opts.BackendURL != "" {
		cfg.Backend.URL = opts.BackendURL
	}

	cfg.Session.ID = opts.SessionID

	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}

	return buf.Bytes(), nil
}
