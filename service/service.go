package service

import (
	"context"
	"io"
	"time"

	"github.com/ONSdigital/dp-datadoc-generator/config"
	"github.com/ONSdigital/dp-datadoc-generator/display"
	"github.com/ONSdigital/dp-datadoc-generator/emitter"
	"github.com/ONSdigital/dp-datadoc-generator/encoder"
	"github.com/ONSdigital/dp-datadoc-generator/mapper"
	"github.com/ONSdigital/dp-datadoc-generator/models"
	"github.com/ONSdigital/dp-datadoc-generator/schema"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
)

// ErrNoShortName is returned when a filename has to be derived from a dataset without a short name
var ErrNoShortName = errors.New("dataset has no short name")

// Result describes the document written by a run
type Result struct {
	Path      string
	ShortName string
	Variables int
	Bytes     int
}

// Service holds the config and the output stream used for a single run
type Service struct {
	Config *config.Config
	Out    io.Writer
	Clock  func() time.Time
}

// New returns a service writing its terminal display to out
func New(cfg *config.Config, out io.Writer) *Service {
	return &Service{
		Config: cfg,
		Out:    out,
		Clock:  time.Now,
	}
}

// Run builds, serialises and writes one metadata document. Any failure ends the run.
func (svc *Service) Run(ctx context.Context) (*Result, error) {
	cfg := svc.Config
	logData := log.Data{"sample": cfg.Sample, "output_dir": cfg.OutputDir}
	log.Info(ctx, "running datadoc generator", logData)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timezone %q", cfg.Timezone)
	}

	doc, err := mapper.Build(cfg.Sample, mapper.Options{
		DocumentVersion: cfg.DocumentVersion,
		Now:             svc.Clock(),
		Location:        loc,
	})
	if err != nil {
		return nil, err
	}

	tree, err := models.Dump(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to flatten metadata document")
	}

	body, err := encoder.Marshal(tree)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialise metadata document")
	}

	if cfg.ValidateSchema {
		if err := schema.Validate(body); err != nil {
			return nil, err
		}
	}

	shortName := ShortName(doc)
	name, err := GetDocumentFilename(cfg, shortName)
	if err != nil {
		return nil, err
	}

	path, err := emitter.Emit(ctx, cfg.OutputDir, name, body)
	if err != nil {
		return nil, err
	}

	if cfg.PrettyPrint {
		if err := display.Render(svc.Out, body, cfg.ColourOutput); err != nil {
			log.Warn(ctx, "unable to display metadata document", log.Data{"error": err.Error()})
		}
	}

	result := &Result{
		Path:      path,
		ShortName: shortName,
		Variables: len(doc.Datadoc.Variables),
		Bytes:     len(body),
	}
	logData["path"] = path
	logData["variables"] = result.Variables
	log.Info(ctx, "datadoc generator run complete", logData)
	return result, nil
}

// ShortName returns the dataset short name of a document, or an empty string
func ShortName(doc *models.MetadataContainer) string {
	if doc == nil || doc.Datadoc == nil || doc.Datadoc.Dataset == nil || doc.Datadoc.Dataset.ShortName == nil {
		return ""
	}
	return *doc.Datadoc.Dataset.ShortName
}

// GetDocumentFilename returns the configured fixed filename, or one derived from the short name
func GetDocumentFilename(cfg *config.Config, shortName string) (string, error) {
	if cfg.OutputFilename != "" {
		return cfg.OutputFilename, nil
	}
	if shortName == "" {
		return "", ErrNoShortName
	}
	return emitter.Filename(shortName, cfg.FileVersion), nil
}
