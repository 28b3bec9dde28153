package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/docx"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/printing"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

type stubPrinter struct {
	pdf []byte
	err error
}

func (p *stubPrinter) PrintToPDF(_ context.Context, _ string) ([]byte, error) {
	return p.pdf, p.err
}

func newTestServer(t *testing.T, printer printing.Printer, rl *ratelimit.Config) *Server {
	t.Helper()
	if rl == nil {
		rl = &ratelimit.Config{Enabled: false}
	}
	s, err := New(Config{
		Port:      0,
		Service:   export.NewService(templates.Builtin(), printer, false),
		Staging:   export.NewStaging(time.Minute, false),
		RateLimit: rl,
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func exportBody(t *testing.T, template, mode string) *bytes.Buffer {
	t.Helper()
	resume, err := types.Sample("midlevel")
	require.NoError(t, err)
	data, err := json.Marshal(ExportRequest{Resume: resume, Template: template, Mode: mode})
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func do(t *testing.T, s *Server, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func attachmentName(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	return params["filename"]
}

func TestNew_RequiresService(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := do(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, false, resp["pdf"])
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestTemplatesEndpoint(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := do(t, s, http.MethodGet, "/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var infos []templates.Info
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	assert.Len(t, infos, len(templates.Builtin().List()))
	assert.Equal(t, templates.Builtin().List(), infos)
}

func TestExportEndpoint_HTML(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := do(t, s, http.MethodPost, "/export/html", exportBody(t, "minimalist", "ats"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, export.FormatHTML.ContentType(), w.Header().Get("Content-Type"))
	assert.Equal(t, "Sarah_Chen_Resume.html", attachmentName(t, w))

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Contains(t, doc.Find("h1").First().Text(), "Sarah Chen")
	assert.Zero(t, doc.Find("img").Length())
}

func TestExportEndpoint_PDF(t *testing.T) {
	s := newTestServer(t, &stubPrinter{pdf: []byte("%PDF-1.4 stub")}, nil)

	w := do(t, s, http.MethodPost, "/export/pdf", exportBody(t, "", ""))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "Sarah_Chen_Resume.pdf", attachmentName(t, w))
	assert.Equal(t, "%PDF-1.4 stub", w.Body.String())
}

func TestExportEndpoint_DOCX(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := do(t, s, http.MethodPost, "/export/docx", exportBody(t, "", "normal"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, docx.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "Sarah_Chen_Resume.docx", attachmentName(t, w))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestExportEndpoint_Failures(t *testing.T) {
	tests := []struct {
		name    string
		printer printing.Printer
		target  string
		body    *bytes.Buffer
		status  int
		message string
	}{
		{
			name:   "unknown format",
			target: "/export/rtf",
			body:   nil,
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed body",
			target: "/export/html",
			body:   bytes.NewBufferString(`{"resume":`),
			status: http.StatusBadRequest,
		},
		{
			name:   "missing resume",
			target: "/export/html",
			body:   bytes.NewBufferString(`{"template":"corporate"}`),
			status: http.StatusBadRequest,
		},
		{
			name:   "bad mode",
			target: "/export/html",
			body:   bytes.NewBufferString(`{"resume":{"personalInfo":{"fullName":"A"}},"mode":"fancy"}`),
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid resume field",
			target: "/export/docx",
			body:   bytes.NewBufferString(`{"resume":{"personalInfo":{"fullName":"A","email":"not-an-email"}}}`),
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown template",
			target: "/export/html",
			body:   bytes.NewBufferString(`{"resume":{"personalInfo":{"fullName":"A"}},"template":"nope"}`),
			status: http.StatusNotFound,
		},
		{
			name:    "no printer",
			target:  "/export/pdf",
			body:    bytes.NewBufferString(`{"resume":{"personalInfo":{"fullName":"A"}}}`),
			status:  http.StatusBadRequest,
			message: "PDF export needs a headless browser; none is configured",
		},
		{
			name:    "print context denied",
			printer: &stubPrinter{err: &printing.ContextError{Message: "browser would not start"}},
			target:  "/export/pdf",
			body:    bytes.NewBufferString(`{"resume":{"personalInfo":{"fullName":"A"}}}`),
			status:  http.StatusServiceUnavailable,
			message: "Failed to open the print context. Allow the headless browser to start and try again.",
		},
		{
			name:    "print failure",
			printer: &stubPrinter{err: &printing.PrintError{Message: "crashed"}},
			target:  "/export/pdf",
			body:    bytes.NewBufferString(`{"resume":{"personalInfo":{"fullName":"A"}}}`),
			status:  http.StatusInternalServerError,
			message: "Failed to generate PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.printer, nil)
			w := do(t, s, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.status, w.Code, w.Body.String())
			msg := decodeError(t, w)
			assert.NotEmpty(t, msg)
			if tt.message != "" {
				assert.Equal(t, tt.message, msg)
			}
			assert.Empty(t, w.Header().Get("Content-Disposition"))
		})
	}
}

func TestExportEndpoint_StageAndDownload(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := do(t, s, http.MethodPost, "/export/docx?stage=true", exportBody(t, "", ""))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var staged StagedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &staged))
	assert.Equal(t, "Sarah_Chen_Resume.docx", staged.Filename)
	assert.Equal(t, "/downloads/"+staged.ID, staged.URL)

	w = do(t, s, http.MethodGet, staged.URL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sarah_Chen_Resume.docx", attachmentName(t, w))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))

	w = do(t, s, http.MethodDelete, staged.URL, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, http.MethodGet, staged.URL, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, s, http.MethodDelete, staged.URL, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportHTMLEndpoint(t *testing.T) {
	s := newTestServer(t, nil, nil)

	snapshot := `<html><body><div id="resume-preview">
		<h1>Ada Lovelace</h1>
		<img src="https://example.com/me.png">
		<div class="hidden">secret</div>
		<p>Analyst &amp; writer</p>
	</div></body></html>`

	w := do(t, s, http.MethodPost, "/import/html?mode=ats", bytes.NewBufferString(snapshot))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "resume.html", attachmentName(t, w))

	body := w.Body.String()
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "Analyst &amp; writer")
	assert.NotContains(t, body, "secret")
	assert.NotContains(t, body, "<img")

	w = do(t, s, http.MethodPost, "/import/html?format=docx", bytes.NewBufferString(snapshot))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/import/html?mode=loud", bytes.NewBufferString(snapshot))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func sampleWith(t *testing.T, edit func(r *types.ResumeData)) string {
	t.Helper()
	r, err := types.Sample("junior")
	require.NoError(t, err)
	edit(r)
	data, err := json.Marshal(r)
	require.NoError(t, err)
	return string(data)
}

func TestValidateEndpoint(t *testing.T) {
	s := newTestServer(t, nil, nil)

	tests := []struct {
		name      string
		body      string
		status    int
		wantField string
	}{
		{
			name:   "sample",
			body:   sampleWith(t, func(*types.ResumeData) {}),
			status: http.StatusOK,
		},
		{
			name:   "malformed",
			body:   `{"personalInfo":`,
			status: http.StatusBadRequest,
		},
		{
			name:      "missing sections",
			body:      `{"personalInfo":{"fullName":"A"}}`,
			status:    http.StatusOK,
			wantField: "(root)",
		},
		{
			name: "bad skill type",
			body: sampleWith(t, func(r *types.ResumeData) {
				r.Skills = []types.Skill{{ID: "s1", Name: "Go", Type: "wizardry"}}
			}),
			status:    http.StatusOK,
			wantField: "skills.0.type",
		},
		{
			name: "duplicate ids",
			body: sampleWith(t, func(r *types.ResumeData) {
				r.Hobbies = []types.Hobby{{ID: "h", Name: "Chess"}, {ID: "h", Name: "Climbing"}}
			}),
			status:    http.StatusOK,
			wantField: "Hobbies",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/validate", bytes.NewBufferString(tt.body))
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status != http.StatusOK {
				return
			}

			var resp ValidateResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantField == "", resp.Valid, resp.Errors)
			if tt.wantField != "" {
				var fields []string
				for _, e := range resp.Errors {
					fields = append(fields, e.Field)
				}
				assert.Contains(t, fields, tt.wantField)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := do(t, s, http.MethodOptions, "/export/pdf", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, &stubPrinter{pdf: []byte("%PDF")}, &ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []ratelimit.EndpointConfig{
			{Path: "/export/pdf", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
		},
	})

	for i := 0; i < 2; i++ {
		w := do(t, s, http.MethodPost, "/export/pdf", exportBody(t, "", ""))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := do(t, s, http.MethodPost, "/export/pdf", exportBody(t, "", ""))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decodeError(t, w))

	// health is never throttled
	w = do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDEchoed(t *testing.T) {
	s := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-7")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, "client-7", w.Header().Get(middleware.RequestIDHeader))
}
