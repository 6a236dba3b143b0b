package opendoc

import (
	"bytes"
	"io"
	"os"

	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/element"
	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/loader"
	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/render"
	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/xml"
)

// Engine renders document models with a fixed configuration.
// Use New() or NewWithConfig() to create one.
type Engine struct {
	config   *Config
	logger   *Logger
	renderer *render.Renderer
}

// New creates an engine from the global configuration.
func New() *Engine {
	e, err := NewWithConfig(GetGlobalConfig())
	if err != nil {
		// invalid environment settings fall back to defaults
		e, _ = NewWithConfig(DefaultConfig())
	}
	return e
}

// NewWithConfig creates an engine with a custom configuration.
func NewWithConfig(config *Config) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	logger := GetLogger()
	opts := render.Options{
		MaxDepth:  config.MaxDepth,
		MergeRuns: config.MergeRuns,
		Logger:    logger,
	}
	if config.ReportUnknown {
		opts.Unknown = logger.unknownProperty
	}
	return &Engine{
		config:   config,
		logger:   logger,
		renderer: render.New(opts),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// Render builds the w:document tree for doc.
func (e *Engine) Render(doc *element.Document) (*xml.Node, error) {
	return e.renderer.Render(doc)
}

// Write renders doc and writes the serialized part to w.
func (e *Engine) Write(w io.Writer, doc *element.Document) error {
	_, err := e.renderer.WriteTo(w, doc)
	return err
}

// RenderBytes loads a YAML description and returns the rendered part.
func (e *Engine) RenderBytes(src []byte) ([]byte, error) {
	doc, err := loader.LoadBytes(src)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := e.Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderFile loads the YAML description at inPath and writes the rendered
// part to outPath. An empty outPath or "-" writes to stdout.
func (e *Engine) RenderFile(inPath, outPath string) error {
	log := e.logger.WithField("input", inPath)
	log.Debug("loading document")

	doc, err := loader.LoadFile(inPath)
	if err != nil {
		return err
	}
	log.Debug("loaded %d sections", len(doc.Sections()))

	if outPath == "" || outPath == "-" {
		return e.Write(os.Stdout, doc)
	}

	var buf bytes.Buffer
	if err := e.Write(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return NewDocumentError("write", outPath, err)
	}
	log.WithField("output", outPath).Info("wrote %d bytes", buf.Len())
	return nil
}

// RenderDocument renders doc to w using the global configuration.
func RenderDocument(w io.Writer, doc *element.Document) error {
	return New().Write(w, doc)
}

// RenderFile renders a YAML description file using the global configuration.
func RenderFile(inPath, outPath string) error {
	return New().RenderFile(inPath, outPath)
}
