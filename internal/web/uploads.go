package web

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/raghul07102002/holofolio/internal/models"
	"github.com/raghul07102002/holofolio/internal/picker"
	"github.com/raghul07102002/holofolio/internal/store"
)

// readUpload buffers one multipart file into a picker.File. The declared
// Content-Type is kept when present; otherwise the type is sniffed from the
// name and payload.
func readUpload(fh *multipart.FileHeader) (picker.File, error) {
	src, err := fh.Open()
	if err != nil {
		return picker.File{}, fmt.Errorf("opening %s: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return picker.File{}, fmt.Errorf("reading %s: %w", fh.Filename, err)
	}

	name := filepath.Base(fh.Filename)
	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = picker.DetectType(name, data)
	}

	return picker.File{Name: name, Type: mimeType, Data: data}, nil
}

func (s *Server) uploadSingleton(slot store.Slot) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded (key 'file' missing)"})
			return
		}

		f, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !picker.Matches(picker.AcceptDocuments, f.Name, f.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type: " + f.Name})
			return
		}

		if !s.authenticate(c, c.PostForm("password")) {
			return
		}
		artifact, err := s.store.UploadSingleton(c.Request.Context(), slot, f)
		if err != nil {
			s.fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  slot.Label() + " uploaded successfully!",
			"artifact": describe(artifact),
		})
	}
}

func (s *Server) downloadSingleton(slot store.Slot) gin.HandlerFunc {
	return func(c *gin.Context) {
		artifact, err := s.store.DownloadSingleton(slot)
		if err != nil {
			s.fail(c, err)
			return
		}
		serveArtifact(c, artifact.Name, artifact.Type, artifact.Data)
	}
}

func (s *Server) listCertificates(c *gin.Context) {
	certs := s.store.Certificates()
	out := make([]gin.H, 0, len(certs))
	for i := range certs {
		out = append(out, describe(&certs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"certificates": out})
}

// uploadCertificates accepts a batch of files under the 'files' key. Files
// failing the accept filter are reported and skipped; the rest are stored.
func (s *Server) uploadCertificates(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse multipart form"})
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded (key 'files' missing or empty)"})
		return
	}

	var (
		files   []picker.File
		skipped []gin.H
	)
	for _, fh := range headers {
		f, err := readUpload(fh)
		if err != nil {
			skipped = append(skipped, gin.H{"filename": fh.Filename, "error": err.Error()})
			continue
		}
		if !picker.Matches(picker.AcceptCertificates, f.Name, f.Type) {
			skipped = append(skipped, gin.H{"filename": f.Name, "error": "Unsupported file type"})
			continue
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No acceptable files in the upload", "skipped": skipped})
		return
	}

	if !s.authenticate(c, c.PostForm("password")) {
		return
	}
	added, err := s.store.UploadMany(c.Request.Context(), files)
	if err != nil {
		s.fail(c, err)
		return
	}

	out := make([]gin.H, 0, len(added))
	for i := range added {
		out = append(out, describe(&added[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      fmt.Sprintf("%d certificate(s) uploaded successfully!", len(added)),
		"certificates": out,
		"skipped":      skipped,
	})
}

func (s *Server) downloadCertificate(c *gin.Context) {
	artifact, err := s.store.Certificate(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	serveArtifact(c, artifact.Name, artifact.Type, artifact.Data)
}

type renameRequest struct {
	Password string `json:"password"`
	Name     string `json:"name" binding:"required"`
}

func (s *Server) renameCertificate(c *gin.Context) {
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !s.authenticate(c, req.Password) {
		return
	}

	found, err := s.store.RenameCertificate(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certificate renamed"})
}

type removeRequest struct {
	Password string `json:"password"`
}

func (s *Server) removeCertificate(c *gin.Context) {
	var req removeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !s.authenticate(c, req.Password) {
		return
	}

	found, err := s.store.RemoveCertificate(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certificate removed"})
}

// describe renders artifact metadata for list responses; payloads go through
// the download routes only.
func describe(a *models.Artifact) gin.H {
	return gin.H{
		"id":      a.ID,
		"name":    a.Name,
		"type":    a.Type,
		"size":    len(a.Data),
		"addedAt": a.AddedAt,
	}
}

func serveArtifact(c *gin.Context, name, mimeType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, mimeType, data)
}
