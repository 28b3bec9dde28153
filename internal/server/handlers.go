package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxBodyBytes bounds request bodies; inline profile pictures make resumes large.
const maxBodyBytes = 10 << 20

var validate = validator.New()

// ExportRequest is the body of POST /export/{format}
type ExportRequest struct {
	Resume   *types.ResumeData `json:"resume" validate:"required"`
	Template string            `json:"template" validate:"omitempty,max=64"`
	Mode     string            `json:"mode" validate:"omitempty,oneof=normal ats"`
}

// StagedResponse is returned when an artifact is staged instead of streamed
type StagedResponse struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	URL         string `json:"url"`
}

// ValidateResponse reports every schema and field problem of a resume
type ValidateResponse struct {
	Valid  bool               `json:"valid"`
	Errors []ValidationDetail `json:"errors,omitempty"`
}

// ValidationDetail is one problem found in a resume
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleExport renders the posted resume in the requested format
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.PathValue("format"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var body ExportRequest
	if err := decodeJSON(w, r, &body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := checkRequest(body); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := body.Resume.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	mode := s.defaultMode
	if body.Mode != "" {
		mode = types.ExportMode(body.Mode)
	}

	artifact, err := s.service.Export(r.Context(), format, export.Request{
		Resume:     body.Resume,
		TemplateID: body.Template,
		Mode:       mode,
	})
	if err != nil {
		s.exportErrorResponse(w, r, err)
		return
	}
	s.deliver(w, r, artifact)
}

// handleImportHTML converts a saved preview snapshot into a printable
// document, or a PDF when ?format=pdf.
func (s *Server) handleImportHTML(w http.ResponseWriter, r *http.Request) {
	format := export.FormatHTML
	if f := r.URL.Query().Get("format"); f != "" {
		parsed, err := export.ParseFormat(f)
		if err != nil || parsed == export.FormatDOCX {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("snapshots export as html or pdf, not %q", f))
			return
		}
		format = parsed
	}

	mode := s.defaultMode
	if m := r.URL.Query().Get("mode"); m != "" {
		parsed, err := types.ParseExportMode(m)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		mode = parsed
	}

	tree, err := document.FromHTML(http.MaxBytesReader(w, r.Body, maxBodyBytes), r.URL.Query().Get("selector"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	artifact, err := s.service.Export(r.Context(), format, export.Request{Tree: tree, Mode: mode})
	if err != nil {
		s.exportErrorResponse(w, r, err)
		return
	}
	s.deliver(w, r, artifact)
}

// handleDownload serves a staged artifact
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	artifact, ok := s.staging.Get(id)
	if !ok {
		err := &ErrNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	writeArtifact(w, artifact)
}

// handleReleaseDownload releases a staged artifact before its TTL
func (s *Server) handleReleaseDownload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.staging.Release(id) {
		err := &ErrNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleTemplates lists the registered templates
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.templates.List())
}

// handleValidate checks a resume document against the schema and the field
// constraints, reporting every problem found.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !json.Valid(raw) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	resp := ValidateResponse{Valid: true}

	var schemaErr *schemas.ValidationError
	if err := schemas.ValidateResume(raw); err != nil {
		if !errors.As(err, &schemaErr) {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		for _, fe := range schemaErr.Errors {
			resp.Errors = append(resp.Errors, ValidationDetail{Field: fe.Field, Message: fe.Message})
		}
	}

	// Field constraints are checked only on documents that fit the schema,
	// since a type mismatch would not decode.
	if len(resp.Errors) == 0 {
		var resume types.ResumeData
		if err := json.Unmarshal(raw, &resume); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		var fieldErr *types.ValidationError
		if err := resume.Validate(); errors.As(err, &fieldErr) {
			for _, fe := range fieldErr.Errors {
				resp.Errors = append(resp.Errors, ValidationDetail{Field: fe.Field, Message: fe.Message})
			}
		}
	}

	resp.Valid = len(resp.Errors) == 0
	s.jsonResponse(w, http.StatusOK, resp)
}

// deliver streams the artifact, or stages it when ?stage=true
func (s *Server) deliver(w http.ResponseWriter, r *http.Request, a *export.Artifact) {
	stage, _ := strconv.ParseBool(r.URL.Query().Get("stage"))
	if !stage {
		writeArtifact(w, a)
		return
	}

	id := s.staging.Put(a)
	if s.verbose {
		log.Printf("[HTTP] Staged %s as %s", a.Filename, id)
	}
	s.jsonResponse(w, http.StatusCreated, StagedResponse{
		ID:          id,
		Filename:    a.Filename,
		ContentType: a.ContentType,
		URL:         "/downloads/" + id,
	})
}

func writeArtifact(w http.ResponseWriter, a *export.Artifact) {
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, bytes.NewReader(a.Data)); err != nil {
		log.Printf("Error writing artifact %s: %v", a.Filename, err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

// checkRequest applies the struct tags of an export request. Problems inside
// the resume itself are left to ResumeData.Validate.
func checkRequest(body ExportRequest) error {
	err := validate.Struct(body)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if strings.Count(fe.StructNamespace(), ".") != 1 {
			continue
		}
		switch fe.Tag() {
		case "required":
			return &ErrValidation{Field: fe.Field(), Message: "is required"}
		case "oneof":
			return &ErrValidation{Field: fe.Field(), Message: "must be one of: " + fe.Param()}
		default:
			return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed %s constraint", fe.Tag())}
		}
	}
	return nil
}
