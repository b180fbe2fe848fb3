package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghul07102002/holofolio/internal/config"
)

const testSecret = "Trytocrack@9015"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDSN = "file:" + t.Name() + "?mode=memory&cache=shared"

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.db.Close() })

	return srv.Router()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

type uploadFile struct {
	name string
	mime string
	data []byte
}

func doMultipart(t *testing.T, r *gin.Engine, path, field, password string, files ...uploadFile) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("password", password))
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, f.name))
		h.Set("Content-Type", f.mime)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNavigation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/view", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "landing", decodeBody(t, w)["view"])

	w = doJSON(t, r, http.MethodPost, "/api/activate", nil)
	assert.Equal(t, "menu", decodeBody(t, w)["view"])

	w = doJSON(t, r, http.MethodPost, "/api/open/about", nil)
	assert.Equal(t, "about", decodeBody(t, w)["view"])

	w = doJSON(t, r, http.MethodPost, "/api/close", nil)
	assert.Equal(t, "menu", decodeBody(t, w)["view"])
}

func TestOpen_UnknownView(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/activate", nil)

	w := doJSON(t, r, http.MethodPost, "/api/open/bogus", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unknown view: bogus", decodeBody(t, w)["error"])
}

func TestMenuAndSections(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["cards"], 6)

	w = doJSON(t, r, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["sections"])

	w = doJSON(t, r, http.MethodGet, "/api/learnings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["sections"])
}

func TestProfile_Default(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/profile", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Raghul R", body["name"])
	assert.Equal(t, "Security Engineer", body["role"])
}

func TestProfile_Update(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/profile", gin.H{
		"password": testSecret,
		"name":     "New Name",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Profile updated successfully!", decodeBody(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/api/profile", nil)
	body := decodeBody(t, w)
	assert.Equal(t, "New Name", body["name"])
	assert.Equal(t, "Security Engineer", body["role"])
}

func TestProfile_WrongPassword(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/profile", gin.H{
		"password": "wrong",
		"name":     "Mallory",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Incorrect password", decodeBody(t, w)["error"])

	w = doJSON(t, r, http.MethodGet, "/api/profile", nil)
	assert.Equal(t, "Raghul R", decodeBody(t, w)["name"])
}

func TestResume_UploadAndDownload(t *testing.T) {
	r := newTestRouter(t)

	w := doMultipart(t, r, "/api/resume", "file", testSecret,
		uploadFile{name: "cv.pdf", mime: "application/pdf", data: []byte("%PDF-1.7 resume")})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Resume uploaded successfully!", decodeBody(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/api/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.7 resume", w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="cv.pdf"`)
}

func TestResume_Empty(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/resume", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResume_RejectsUnsupportedType(t *testing.T) {
	r := newTestRouter(t)

	w := doMultipart(t, r, "/api/resume", "file", testSecret,
		uploadFile{name: "malware.exe", mime: "application/octet-stream", data: []byte("MZ")})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "Unsupported file type")
}

func TestResume_WrongPassword(t *testing.T) {
	r := newTestRouter(t)

	w := doMultipart(t, r, "/api/resume", "file", "wrong",
		uploadFile{name: "cv.pdf", mime: "application/pdf", data: []byte("%PDF")})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/resume", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCertificates_Flow(t *testing.T) {
	r := newTestRouter(t)

	w := doMultipart(t, r, "/api/certificates", "files", testSecret,
		uploadFile{name: "aws.png", mime: "image/png", data: []byte("png-bytes")},
		uploadFile{name: "oscp.pdf", mime: "application/pdf", data: []byte("pdf-bytes")})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2 certificate(s) uploaded successfully!", decodeBody(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/api/certificates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	certs := decodeBody(t, w)["certificates"].([]any)
	require.Len(t, certs, 2)
	first := certs[0].(map[string]any)
	assert.Equal(t, "aws.png", first["name"])
	id := first["id"].(string)
	require.NotEmpty(t, id)

	w = doJSON(t, r, http.MethodGet, "/api/certificates/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())

	w = doJSON(t, r, http.MethodPatch, "/api/certificates/"+id, gin.H{
		"password": testSecret,
		"name":     "AWS Certified",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/certificates", nil)
	certs = decodeBody(t, w)["certificates"].([]any)
	assert.Equal(t, "AWS Certified", certs[0].(map[string]any)["name"])

	w = doJSON(t, r, http.MethodDelete, "/api/certificates/"+id, gin.H{"password": testSecret})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/certificates", nil)
	certs = decodeBody(t, w)["certificates"].([]any)
	require.Len(t, certs, 1)
	assert.Equal(t, "oscp.pdf", certs[0].(map[string]any)["name"])
}

func TestCertificates_SkipsUnsupportedFiles(t *testing.T) {
	r := newTestRouter(t)

	w := doMultipart(t, r, "/api/certificates", "files", testSecret,
		uploadFile{name: "cert.pdf", mime: "application/pdf", data: []byte("pdf")},
		uploadFile{name: "notes.txt", mime: "text/plain", data: []byte("txt")})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "1 certificate(s) uploaded successfully!", body["message"])
	require.Len(t, body["skipped"], 1)

	w = doJSON(t, r, http.MethodGet, "/api/certificates", nil)
	assert.Len(t, decodeBody(t, w)["certificates"], 1)
}

func TestCertificates_RenameMissing(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/certificates/nope", gin.H{
		"password": testSecret,
		"name":     "Whatever",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Certificate not found", decodeBody(t, w)["error"])
}

func TestCertificates_RemoveRequiresPassword(t *testing.T) {
	r := newTestRouter(t)

	w := doMultipart(t, r, "/api/certificates", "files", testSecret,
		uploadFile{name: "c.pdf", mime: "application/pdf", data: []byte("p")})
	require.Equal(t, http.StatusOK, w.Code)
	certs := decodeBody(t, doJSON(t, r, http.MethodGet, "/api/certificates", nil))["certificates"].([]any)
	id := certs[0].(map[string]any)["id"].(string)

	w = doJSON(t, r, http.MethodDelete, "/api/certificates/"+id, gin.H{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	certs = decodeBody(t, doJSON(t, r, http.MethodGet, "/api/certificates", nil))["certificates"].([]any)
	assert.Len(t, certs, 1)
}

func TestLogout(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/logout", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out", decodeBody(t, w)["message"])
}
