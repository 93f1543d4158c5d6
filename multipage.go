package multipage

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"slices"

	"github.com/3-lines-studio/multipage/internal/adapters/fs"
	"github.com/3-lines-studio/multipage/internal/config"
	"github.com/3-lines-studio/multipage/internal/core"
	"github.com/3-lines-studio/multipage/internal/usecase"

	httpadapter "github.com/3-lines-studio/multipage/internal/adapters/http"
)

const Name = "multipage"

type Page = core.Page

type Config = core.Config

type RouteRule = core.RouteRule

type EmittedFile = usecase.EmittedFile

type Move = usecase.Move

type RelocateOutput = usecase.RelocateOutput

type FileSystem = fs.FileSystem

type Problem = usecase.Problem

type ConfigError = core.ConfigError

type NotFoundError = core.NotFoundError

type TransformError = core.TransformError

// BuildOptions is the part of the bundler configuration the plugin touches.
type BuildOptions struct {
	Input []string
}

type Option func(*options)

type options struct {
	config *Config
	root   string
	logger *slog.Logger
	fs     FileSystem
	isDev  bool
}

// WithConfig supplies the page configuration directly instead of loading
// it from the project root.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = &cfg
	}
}

func WithRoot(root string) Option {
	return func(o *options) {
		o.root = root
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithFileSystem(fsys FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithDev shows error details in pages served by DevMiddleware.
func WithDev(isDev bool) Option {
	return func(o *options) {
		o.isDev = isDev
	}
}

// Plugin owns one session of page configuration: the route table, the
// pending synthesized documents and the services built on them.
type Plugin struct {
	root       string
	configFile string
	isDev      bool
	logger     *slog.Logger
	fs         FileSystem

	registry  *core.Registry
	rules     core.RuleTable
	entries   *usecase.EntryService
	dev       *usecase.DevService
	relocator *usecase.RelocateService
	checker   *usecase.CheckService
}

// New builds a plugin. Without WithConfig the configuration is loaded from
// pages.config.{json,yaml,yml} in the root directory.
func New(opts ...Option) (*Plugin, error) {
	o := options{root: "."}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.fs == nil {
		o.fs = fs.NewOSFileSystem()
	}

	root, err := filepath.Abs(o.root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", o.root, err)
	}
	root = core.SlashPath(root)

	cfg := o.config
	var configFile string
	if cfg == nil {
		cfg, configFile, err = config.Load(root)
		if err != nil {
			return nil, err
		}
	}

	template := cfg.Template
	if template == "" {
		template = core.DefaultTemplate
	}

	registry, err := core.NewRegistry(cfg.Pages, template)
	if err != nil {
		return nil, err
	}

	p := &Plugin{
		root:       root,
		configFile: configFile,
		isDev:      o.isDev,
		logger:     o.logger,
		fs:         o.fs,
		registry:   registry,
		rules:      registry.Rules(),
	}
	p.entries = usecase.NewEntryService(registry, core.NewPendingDocuments(), o.fs, root, o.logger)
	p.dev = usecase.NewDevService(p.rules, o.fs, root, o.logger)
	p.relocator = usecase.NewRelocateService(registry, o.fs, o.logger)
	p.checker = usecase.NewCheckService(registry, o.fs, root, o.logger)

	o.logger.Debug("multipage configured", "root", root, "config", configFile, "pages", len(cfg.Pages), "template", template)
	return p, nil
}

func (p *Plugin) Name() string {
	return Name
}

func (p *Plugin) Root() string {
	return p.root
}

// ConfigFile is the configuration file the plugin was loaded from, empty
// when the configuration was supplied with WithConfig.
func (p *Plugin) ConfigFile() string {
	return p.configFile
}

func (p *Plugin) Pages() []Page {
	return p.registry.Pages()
}

func (p *Plugin) Rules() []RouteRule {
	return slices.Clone(p.rules)
}

// Configure adds every page entry file to the build inputs.
func (p *Plugin) Configure(opts *BuildOptions) {
	if opts == nil {
		return
	}
	for _, page := range p.registry.Pages() {
		if !slices.Contains(opts.Input, page.File) {
			opts.Input = append(opts.Input, page.File)
		}
	}
}

// ResolveEntry claims a top-level non-HTML page entry and returns the id of
// the HTML document generated for it. ok is false when the specifier is not
// handled here.
func (p *Plugin) ResolveEntry(specifier, importer string, isEntry bool) (string, bool, error) {
	out, err := p.entries.ResolveEntry(usecase.ResolveEntryInput{
		Specifier: specifier,
		Importer:  importer,
		IsEntry:   isEntry,
	})
	return out.ID, out.Handled, err
}

func (p *Plugin) LoadContent(id string) (string, bool, error) {
	out, err := p.entries.LoadContent(id)
	return out.Content, out.Handled, err
}

func (p *Plugin) DevMiddleware(next http.Handler) http.Handler {
	return httpadapter.NewPageMiddleware(p.dev, next, p.isDev, nil)
}

// OnBuildComplete moves each emitted page document to its canonical output
// path under outDir and removes directories left empty.
func (p *Plugin) OnBuildComplete(outDir string, files []EmittedFile) (RelocateOutput, error) {
	return p.relocator.Relocate(usecase.RelocateInput{OutDir: outDir, Files: files})
}

// Check lists configuration problems that would only surface at build time.
func (p *Plugin) Check() ([]Problem, error) {
	out, err := p.checker.Check()
	return out.Problems, err
}
