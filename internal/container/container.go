// Package container provides dependency injection for the budget-prep application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"
	"os"

	"fjacquet/budget-prep/internal/aggregator"
	"fjacquet/budget-prep/internal/config"
	"fjacquet/budget-prep/internal/dumper"
	"fjacquet/budget-prep/internal/exportparser"
	"fjacquet/budget-prep/internal/logging"
	"fjacquet/budget-prep/internal/parser"
	"fjacquet/budget-prep/internal/pipeline"
	"fjacquet/budget-prep/internal/report"
	"fjacquet/budget-prep/internal/reshaper"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger logging.Logger
	config *config.Config

	parser     parser.TransactionParser
	aggregator *aggregator.Aggregator
	reshaper   *reshaper.Reshaper
	dumper     *dumper.Dumper
	pipeline   *pipeline.Pipeline
	reporter   *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies. Logs go to stderr.
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithLogOutput(cfg, os.Stderr)
}

// NewContainerWithLogOutput is NewContainer with an explicit log destination.
func NewContainerWithLogOutput(cfg *config.Config, logOut io.Writer) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if cfg.CSV.Delimiter == "" {
		return nil, fmt.Errorf("csv delimiter cannot be empty")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapterWithWriter(cfg.Log.Level, cfg.Log.Format, logOut)

	exportParser := exportparser.New(logger, exportparser.Options{
		Delimiter:  cfg.DelimiterRune(),
		SkipHeader: cfg.CSV.SkipHeader,
	})
	agg := aggregator.NewAggregator(logger)
	rs := reshaper.NewReshaper(logger)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldDelimiter, cfg.CSV.Delimiter),
		logging.F(logging.FieldFormat, cfg.Output.Format))

	return &Container{
		logger:     logger,
		config:     cfg,
		parser:     exportParser,
		aggregator: agg,
		reshaper:   rs,
		dumper:     dumper.New(logger, cfg.DelimiterRune()),
		pipeline:   pipeline.New(exportParser, agg, rs, logger),
		reporter:   report.NewReportGenerator(logger, cfg.Output.Indent),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetParser returns the transaction export parser.
func (c *Container) GetParser() parser.TransactionParser {
	return c.parser
}

// GetAggregator returns the category aggregator.
func (c *Container) GetAggregator() *aggregator.Aggregator {
	return c.aggregator
}

// GetReshaper returns the summary reshaper.
func (c *Container) GetReshaper() *reshaper.Reshaper {
	return c.reshaper
}

// GetDumper returns the generic CSV dumper.
func (c *Container) GetDumper() *dumper.Dumper {
	return c.dumper
}

// GetPipeline returns the prepare/transform pipeline.
func (c *Container) GetPipeline() *pipeline.Pipeline {
	return c.pipeline
}

// GetReportGenerator returns the output renderer.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reporter
}
