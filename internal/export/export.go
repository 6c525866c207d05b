// Package export turns a resume into a single-page PDF: the rendered HTML
// is rasterized by a headless browser and the bitmap is placed on one page.
package export

//go:generate mockgen -source=./export.go -package=exportmocks -destination=./mocks/export.mock.go

import (
	"context"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/render"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// DefaultScale is the supersampling factor used when rasterizing.
const DefaultScale = 2

var ErrExportInProgress = errors.New("an export is already running")

// Rasterizer draws the #resume-preview element of an HTML document into a
// bitmap at the given device scale.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string, scale float64) (image.Image, error)
}

// Assembler writes img as the only content of a one-page PDF.
type Assembler interface {
	Assemble(w io.Writer, img image.Image, paper Paper) error
}

type Notifier interface {
	Notify(n Notification)
}

type Severity string

const (
	SeverityInfo        Severity = "info"
	SeveritySuccess     Severity = "success"
	SeverityDestructive Severity = "destructive"
)

type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

var (
	notifyStart   = Notification{Title: "Generating PDF...", Description: "Please wait while we create your resume.", Severity: SeverityInfo}
	notifySuccess = Notification{Title: "Success!", Description: "Your resume has been downloaded.", Severity: SeveritySuccess}
	notifyFailure = Notification{Title: "Error", Description: "Failed to generate PDF. Please try again.", Severity: SeverityDestructive}
)

type Options struct {
	Scale     float64
	Paper     Paper
	OutputDir string
}

type Exporter struct {
	raster    Rasterizer
	assembler Assembler
	notifier  Notifier
	log       *zap.Logger
	opts      Options

	// busy admits one export at a time.
	busy *semaphore.Weighted
}

func NewExporter(r Rasterizer, a Assembler, n Notifier, log *zap.Logger, opts Options) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}
	if opts.Paper == (Paper{}) {
		opts.Paper = A4
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return &Exporter{
		raster:    r,
		assembler: a,
		notifier:  n,
		log:       log,
		opts:      opts,
		busy:      semaphore.NewWeighted(1),
	}
}

// Export renders doc with the given template and writes the PDF into the
// output directory, returning its path. A second call while one is running
// fails with ErrExportInProgress. On failure no file is left behind.
func (e *Exporter) Export(ctx context.Context, doc model.Resume, tmpl model.TemplateID) (string, error) {
	if !e.busy.TryAcquire(1) {
		return "", ErrExportInProgress
	}
	defer e.busy.Release(1)

	e.notifier.Notify(notifyStart)
	start := time.Now()
	path, err := e.export(ctx, doc, tmpl)
	if err != nil {
		e.log.Error("export failed", zap.String("template", string(tmpl)), zap.Error(err))
		e.notifier.Notify(notifyFailure)
		return "", err
	}
	e.log.Info("export finished", zap.String("path", path), zap.Duration("took", time.Since(start)))
	e.notifier.Notify(notifySuccess)
	return path, nil
}

func (e *Exporter) export(ctx context.Context, doc model.Resume, tmpl model.TemplateID) (string, error) {
	page, err := render.Render(doc, tmpl)
	if err != nil {
		return "", errors.Wrap(err, "rendering resume")
	}
	html, err := page.HTML()
	if err != nil {
		return "", errors.Wrap(err, "encoding html")
	}

	t := time.Now()
	img, err := e.raster.Rasterize(ctx, html, e.opts.Scale)
	if err != nil {
		return "", errors.Wrap(err, "rasterizing preview")
	}
	b := img.Bounds()
	e.log.Debug("rasterized preview",
		zap.Int("width", b.Dx()), zap.Int("height", b.Dy()), zap.Duration("took", time.Since(t)))

	path := filepath.Join(e.opts.OutputDir, FileName(doc.PersonalInfo.FullName))
	if err := e.write(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// write assembles into a temp file next to path and renames it into place.
func (e *Exporter) write(path string, img image.Image) error {
	if err := os.MkdirAll(e.opts.OutputDir, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", e.opts.OutputDir)
	}
	f, err := os.CreateTemp(e.opts.OutputDir, ".resume-*.pdf")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmp := f.Name()
	if err := e.assembler.Assemble(f, img, e.opts.Paper); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(err, "assembling pdf")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "closing %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "moving pdf to %s", path)
	}
	return nil
}

// FileName derives the PDF name from the person's full name: whitespace
// runs become underscores and "_Resume.pdf" is appended. A blank name gives
// "Resume.pdf".
func FileName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "Resume.pdf"
	}
	name := strings.Join(parts, "_")
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	return name + "_Resume.pdf"
}
