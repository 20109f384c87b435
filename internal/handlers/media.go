package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"gazete/internal/models"
)

// maxUploadSize is the maximum allowed file upload size (50 MB).
const maxUploadSize = 50 << 20

// allowedMediaTypes defines MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
	"video/mp4":       true,
}

// MediaList returns all media records, newest first.
func (a *API) MediaList(w http.ResponseWriter, r *http.Request) {
	items, err := a.stores.Media.List()
	if err != nil {
		serverError(w, "list media", err)
		return
	}
	if items == nil {
		items = []models.Media{}
	}
	writeJSON(w, http.StatusOK, items)
}

// MediaGet returns a single media record.
func (a *API) MediaGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.Media.FindByID(id)
	if err != nil {
		serverError(w, "find media", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// MediaUpload stores a multipart upload (field "file") and records its
// metadata. The content type comes from sniffing the first 512 bytes,
// not from the client.
func (a *API) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.files == nil {
		writeError(w, http.StatusServiceUnavailable, "file storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 50 MB")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	uploadedBy, err := strconv.ParseInt(r.FormValue("uploadedBy"), 10, 64)
	if err != nil || uploadedBy < 1 {
		writeError(w, http.StatusBadRequest, "uploadedBy must be a valid user id")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 50 MB")
		return
	}

	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		serverError(w, "read upload", err)
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// DetectContentType reports SVGs as XML or plain text.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedMediaTypes[contentType] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file type %q is not allowed", contentType))
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		serverError(w, "rewind upload", err)
		return
	}

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	key := uuid.New().String() + ext

	if err := a.files.Save(r.Context(), key, contentType, file, header.Size); err != nil {
		serverError(w, "store upload", err)
		return
	}

	created, err := a.stores.Media.Create(&models.Media{
		Filename:     key,
		OriginalName: header.Filename,
		MimeType:     contentType,
		SizeBytes:    header.Size,
		Path:         key,
		UploadedBy:   uploadedBy,
	})
	if err != nil {
		// Best effort cleanup; the record is the source of truth.
		if rmErr := a.files.Remove(r.Context(), key); rmErr != nil {
			slog.Warn("orphaned upload cleanup failed", "key", key, "error", rmErr)
		}
		storeError(w, "create media", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// MediaServeFile delivers the file behind a media record. Backends with
// public URLs get a redirect; local files are streamed.
func (a *API) MediaServeFile(w http.ResponseWriter, r *http.Request) {
	if a.files == nil {
		writeError(w, http.StatusServiceUnavailable, "file storage is not configured")
		return
	}
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.stores.Media.FindByID(id)
	if err != nil {
		serverError(w, "find media", err)
		return
	}
	if item == nil {
		notFound(w)
		return
	}

	if url, ok := a.files.URL(item.Path); ok {
		http.Redirect(w, r, url, http.StatusFound)
		return
	}

	f, err := a.files.Open(r.Context(), item.Path)
	if err != nil {
		serverError(w, "open media file", err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", item.MimeType)
	w.Header().Set("Content-Length", strconv.FormatInt(item.SizeBytes, 10))
	if _, err := io.Copy(w, f); err != nil {
		slog.Warn("stream media file failed", "id", item.ID, "error", err)
	}
}

// MediaDelete removes a media record and its file. File cleanup is best
// effort; a storage failure does not resurrect the record.
func (a *API) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	deleted, err := a.stores.Media.Delete(id)
	if err != nil {
		serverError(w, "delete media", err)
		return
	}
	if deleted == nil {
		notFound(w)
		return
	}
	if a.files != nil {
		if err := a.files.Remove(r.Context(), deleted.Path); err != nil {
			slog.Warn("media file delete failed", "key", deleted.Path, "error", err)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "application/pdf":
		return ".pdf"
	case "video/mp4":
		return ".mp4"
	default:
		return ""
	}
}
