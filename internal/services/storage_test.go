package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartCV(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("cv", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	files := req.MultipartForm.File["cv"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveCVStoresFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())

	userID := uuid.New()
	filename, path, err := storage.SaveCV(multipartCV(t, "resume.pdf", "pdf bytes"), userID)
	require.NoError(t, err)

	assert.Contains(t, filename, "cv_"+userID.String())
	assert.Equal(t, ".pdf", filepath.Ext(filename))
	assert.Equal(t, filepath.Join(dir, filename), path)

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(saved))
}

func TestSaveCVUniqueFilenames(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	userID := uuid.New()
	first, _, err := storage.SaveCV(multipartCV(t, "resume.docx", "v1"), userID)
	require.NoError(t, err)
	second, _, err := storage.SaveCV(multipartCV(t, "resume.docx", "v2"), userID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveCVRejectsExtension(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	_, _, err := storage.SaveCV(multipartCV(t, "malware.exe", "nope"), uuid.New())
	assert.Error(t, err)
}

func TestDeleteFile(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	filename, path, err := storage.SaveCV(multipartCV(t, "resume.doc", "bytes"), uuid.New())
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(filename))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	assert.Error(t, storage.DeleteFile("missing.pdf"))
}
