package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"cityinbox_backend/internal/imageprocessor"
	"cityinbox_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	saved   map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string][]byte{}}
}

func (s *fakeStorage) Save(_ context.Context, path string, reader io.Reader, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.saved[path] = data
	return nil
}

func (s *fakeStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.saved[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	delete(s.saved, path)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := s.saved[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(_ context.Context, path string) (string, error) {
	return "http://localhost/uploads/" + path, nil
}

func (s *fakeStorage) GetSize(_ context.Context, path string) (int64, error) {
	return int64(len(s.saved[path])), nil
}

// multipartFile builds a real multipart.FileHeader the way gin receives
// one, including the part's Content-Type.
func multipartFile(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads/vendor", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("file")
	require.NoError(t, err)
	return fh
}

func newUploadService(store *fakeStorage, maxSize int64) UploadService {
	return NewUploadService(store, imageprocessor.NewProcessor(85), maxSize, []string{"image/jpeg", "image/png"})
}

// pngBytes encodes a solid image of the given size.
func pngBytes(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.String()
}

func TestUploadFile_StoresUnderKindFolder(t *testing.T) {
	store := newFakeStorage()
	svc := newUploadService(store, 1024)

	res, err := svc.UploadFile(context.Background(), "vendor", multipartFile(t, "shop.jpg", "image/jpeg", "jpeg-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Path, "vendors/"))
	assert.True(t, strings.HasSuffix(res.Path, ".jpg"))
	assert.Equal(t, "http://localhost/uploads/"+res.Path, res.URL)
	assert.Equal(t, int64(len("jpeg-bytes")), res.Size)
	assert.Equal(t, []byte("jpeg-bytes"), store.saved[res.Path])
	// Undecodable image bytes: the upload survives, no thumbnail.
	assert.Empty(t, res.ThumbPath)
}

func TestUploadFile_GeneratesThumbnailForImages(t *testing.T) {
	store := newFakeStorage()
	svc := newUploadService(store, 1<<20)

	content := pngBytes(t, 1200, 800)
	res, err := svc.UploadFile(context.Background(), "category", multipartFile(t, "tile.png", "image/png", content))
	require.NoError(t, err)

	require.NotEmpty(t, res.ThumbPath)
	assert.True(t, strings.HasPrefix(res.ThumbPath, "categories/"))
	assert.Contains(t, res.ThumbPath, "_thumb")
	assert.Equal(t, "http://localhost/uploads/"+res.ThumbPath, res.ThumbURL)

	thumb, ok := store.saved[res.ThumbPath]
	require.True(t, ok)

	cfg, err := png.DecodeConfig(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.LessOrEqual(t, cfg.Width, imageprocessor.ThumbWidth)
	assert.LessOrEqual(t, cfg.Height, imageprocessor.ThumbHeight)
}

func TestUploadFile_RejectsUnknownKind(t *testing.T) {
	svc := newUploadService(newFakeStorage(), 1024)

	_, err := svc.UploadFile(context.Background(), "avatar", multipartFile(t, "a.jpg", "image/jpeg", "x"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestUploadFile_RejectsOversizeAndBadType(t *testing.T) {
	svc := newUploadService(newFakeStorage(), 4)

	_, err := svc.UploadFile(context.Background(), "vendor", multipartFile(t, "big.jpg", "image/jpeg", "way too large"))
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)

	svc = newUploadService(newFakeStorage(), 1024)
	_, err = svc.UploadFile(context.Background(), "vendor", multipartFile(t, "script.sh", "application/x-sh", "#!"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestDeleteFile_RejectsTraversal(t *testing.T) {
	store := newFakeStorage()
	svc := newUploadService(store, 1024)

	err := svc.DeleteFile(context.Background(), "../etc/passwd")
	require.Error(t, err)
	err = svc.DeleteFile(context.Background(), "/etc/passwd")
	require.Error(t, err)
	assert.Empty(t, store.deleted)

	require.NoError(t, svc.DeleteFile(context.Background(), "vendors/a.jpg"))
	assert.Equal(t, []string{"vendors/a.jpg"}, store.deleted)
}
