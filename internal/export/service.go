// Package export ties the templates, the exporters and the print facility
// together. Every export reads an immutable snapshot of the resume taken when
// the call starts.
package export

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/docx"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/printing"
	"github.com/jonathan/resume-builder/internal/profile"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// Request describes one export
type Request struct {
	Resume     *types.ResumeData
	TemplateID string
	Mode       types.ExportMode
	// Tree, when set, is printed instead of rendering Resume with a template.
	// The word-processor path always builds from Resume.
	Tree *document.Node
}

// Service produces export artifacts
type Service struct {
	Templates *templates.Registry
	Printer   printing.Printer
	Verbose   bool
}

// NewService returns a service using reg for templates and printer for PDFs.
// A nil printer disables PDF output.
func NewService(reg *templates.Registry, printer printing.Printer, verbose bool) *Service {
	return &Service{Templates: reg, Printer: printer, Verbose: verbose}
}

// Export produces a single artifact of format f
func (s *Service) Export(ctx context.Context, f Format, req Request) (*Artifact, error) {
	switch f {
	case FormatHTML:
		return s.HTML(ctx, req)
	case FormatPDF:
		return s.PDF(ctx, req)
	case FormatDOCX:
		return s.DOCX(ctx, req)
	default:
		return nil, &PreconditionError{Message: fmt.Sprintf("unknown export format %q", f)}
	}
}

// HTML renders the printable document
func (s *Service) HTML(_ context.Context, req Request) (*Artifact, error) {
	j, err := snapshot(req)
	if err != nil {
		return nil, err
	}
	html, err := s.printable(j)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Filename:    Filename(j.fullName(), FormatHTML),
		ContentType: FormatHTML.ContentType(),
		Format:      FormatHTML,
		Data:        []byte(html),
	}, nil
}

// PDF renders the printable document and prints it
func (s *Service) PDF(ctx context.Context, req Request) (*Artifact, error) {
	j, err := snapshot(req)
	if err != nil {
		return nil, err
	}
	html, err := s.printable(j)
	if err != nil {
		return nil, err
	}
	return s.print(ctx, j, html)
}

// DOCX builds the word-processor document from the resume data
func (s *Service) DOCX(_ context.Context, req Request) (*Artifact, error) {
	j, err := snapshot(req)
	if err != nil {
		return nil, err
	}
	return s.docx(j)
}

// All produces the HTML, PDF and DOCX artifacts, in that order. PDF and DOCX
// are built concurrently; the first failure cancels the rest and no partial
// set is returned.
func (s *Service) All(ctx context.Context, req Request) ([]*Artifact, error) {
	j, err := snapshot(req)
	if err != nil {
		return nil, err
	}
	html, err := s.printable(j)
	if err != nil {
		return nil, err
	}

	out := make([]*Artifact, len(Formats))
	out[0] = &Artifact{
		Filename:    Filename(j.fullName(), FormatHTML),
		ContentType: FormatHTML.ContentType(),
		Format:      FormatHTML,
		Data:        []byte(html),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.print(gctx, j, html)
		out[1] = a
		return err
	})
	g.Go(func() error {
		a, err := s.docx(j)
		out[2] = a
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// job is the immutable input of one export
type job struct {
	resume     *types.ResumeData
	tree       *document.Node
	templateID string
	profile    profile.Profile
}

func (j job) fullName() string {
	if j.resume == nil {
		return ""
	}
	return j.resume.PersonalInfo.FullName
}

func snapshot(req Request) (job, error) {
	if req.Resume == nil && req.Tree == nil {
		return job{}, &PreconditionError{Message: "nothing to export: no resume data"}
	}
	id := req.TemplateID
	if id == "" {
		id = templates.DefaultID
	}
	return job{
		resume:     req.Resume.Clone(),
		tree:       req.Tree,
		templateID: id,
		profile:    profile.For(req.Mode),
	}, nil
}

func (s *Service) printable(sn job) (string, error) {
	root := sn.tree
	if root == nil {
		if s.Templates == nil {
			return "", &PreconditionError{Message: "no templates are registered"}
		}
		var err error
		root, err = s.Templates.Render(sn.templateID, sn.resume)
		if err != nil {
			return "", &PreconditionError{Message: fmt.Sprintf("template %q not found", sn.templateID), Cause: err}
		}
	}

	html, err := rendering.ExportHTML(root, sn.profile)
	if err != nil {
		return "", &PackagingError{Message: "failed to assemble printable document", Cause: err}
	}
	if s.Verbose {
		log.Printf("[EXPORT] Rendered %s document with template %s (%d bytes)", sn.profile.Mode, sn.templateID, len(html))
	}
	return html, nil
}

func (s *Service) print(ctx context.Context, sn job, html string) (*Artifact, error) {
	if s.Printer == nil {
		return nil, &PreconditionError{Message: "PDF export needs a headless browser; none is configured"}
	}

	pdf, err := s.Printer.PrintToPDF(ctx, html)
	if err != nil {
		var ctxErr *printing.ContextError
		if errors.As(err, &ctxErr) {
			return nil, &PlatformDenialError{
				Message: "Failed to open the print context. Allow the headless browser to start and try again.",
				Cause:   err,
			}
		}
		return nil, &PackagingError{Message: "Failed to generate PDF", Cause: err}
	}
	if len(pdf) == 0 {
		return nil, &PackagingError{Message: "Failed to generate PDF: the printer returned an empty document"}
	}
	if s.Verbose {
		log.Printf("[EXPORT] Printed PDF (%d bytes)", len(pdf))
	}

	return &Artifact{
		Filename:    Filename(sn.fullName(), FormatPDF),
		ContentType: FormatPDF.ContentType(),
		Format:      FormatPDF,
		Data:        pdf,
	}, nil
}

func (s *Service) docx(sn job) (*Artifact, error) {
	if sn.resume == nil {
		return nil, &PreconditionError{Message: "word export needs resume data"}
	}
	data, err := docx.Export(sn.resume, sn.profile)
	if err != nil {
		return nil, &PackagingError{Message: "Failed to generate Word document", Cause: err}
	}
	if s.Verbose {
		log.Printf("[EXPORT] Built Word document (%d bytes)", len(data))
	}
	return &Artifact{
		Filename:    Filename(sn.fullName(), FormatDOCX),
		ContentType: FormatDOCX.ContentType(),
		Format:      FormatDOCX,
		Data:        data,
	}, nil
}
