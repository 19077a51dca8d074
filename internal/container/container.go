// Package container provides dependency injection for finbot.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"fjacquet/finbot/internal/analytics"
	"fjacquet/finbot/internal/categorizer"
	"fjacquet/finbot/internal/config"
	"fjacquet/finbot/internal/export"
	"fjacquet/finbot/internal/ledger"
	"fjacquet/finbot/internal/logging"
	"fjacquet/finbot/internal/report"
	"fjacquet/finbot/internal/storage"
	"fjacquet/finbot/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
// It is immutable after creation.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	store       *store.CategoryStore
	categorizer *categorizer.Categorizer
	repository  ledger.Repository
	database    *storage.SQLiteRepository
	engine      *analytics.Engine
	ledger      *ledger.Service
	reports     *report.Generator
	exporter    *export.Exporter
}

// Option customizes container construction.
type Option func(*options)

type options struct {
	logger logging.Logger
	clock  func() time.Time
}

// WithLogger replaces the logrus logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock sets the ledger's notion of "now".
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// NewContainer creates and wires all application dependencies.
// A database path of ":memory:" selects the in-process repository.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	categoryStore := store.NewCategoryStore(cfg.Categories.File, logger)
	cat := categorizer.NewCategorizer(categoryStore, logger)

	c := &Container{
		logger:      logger,
		config:      cfg,
		store:       categoryStore,
		categorizer: cat,
		engine:      analytics.NewEngine(logger),
		reports:     report.NewGenerator(cfg.Display.CurrencySymbol, logger),
		exporter:    export.NewExporter(cfg.ExportDelimiter(), logger),
	}

	if cfg.UsesMemoryDatabase() {
		c.repository = ledger.NewMemoryRepository()
	} else {
		db, err := storage.NewSQLiteRepository(cfg.Database.Path, cfg.DefaultMonthlyBudget(), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		c.database = db
		c.repository = db
	}

	var ledgerOpts []ledger.Option
	if o.clock != nil {
		ledgerOpts = append(ledgerOpts, ledger.WithClock(o.clock))
	}
	c.ledger = ledger.NewService(c.repository, cat, c.engine, logger, ledgerOpts...)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldDatabase, cfg.Database.Path),
		logging.F("rules_source", cat.Source()))

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the category rules store.
func (c *Container) GetStore() *store.CategoryStore {
	return c.store
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetLedger returns the ledger service.
func (c *Container) GetLedger() *ledger.Service {
	return c.ledger
}

// GetReportGenerator returns the report renderer.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reports
}

// GetExporter returns the CSV exporter.
func (c *Container) GetExporter() *export.Exporter {
	return c.exporter
}

// SchemaVersion returns the applied migration version of the SQLite database.
// ok is false for the in-memory repository, which has no schema.
func (c *Container) SchemaVersion() (version uint, ok bool, err error) {
	if c.database == nil {
		return 0, false, nil
	}

	version, dirty, err := storage.SchemaVersion(c.config.Database.Path)
	if err != nil {
		return 0, false, err
	}
	if dirty {
		return version, true, fmt.Errorf("database schema version %d is dirty", version)
	}
	return version, true, nil
}

// Close releases the database, if one is open.
func (c *Container) Close() error {
	if c.database != nil {
		if err := c.database.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}
