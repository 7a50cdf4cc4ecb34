package upload_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

type memoryStore struct {
	folder  string
	kind    string
	content []byte
}

func (m *memoryStore) Upload(ctx context.Context, file io.Reader, folder, resourceType string) (*services.UploadedMedia, error) {
	b, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	m.folder, m.kind, m.content = folder, resourceType, b
	return &services.UploadedMedia{
		URL:          "https://cdn.example/" + folder + "/x",
		PublicID:     folder + "/x",
		ResourceType: resourceType,
		Size:         len(b),
	}, nil
}

func (m *memoryStore) Delete(ctx context.Context, publicID, resourceType string) error { return nil }

func multipartRequest(t *testing.T, filename, contentType string, body []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(body)
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload/single", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func serve(req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload/single", UploadSingle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestMediaKind(t *testing.T) {
	cases := []struct {
		contentType, filename, want string
	}{
		{"image/png", "a.bin", "image"},
		{"video/mp4", "a", "video"},
		{"application/octet-stream", "CLIP.MOV", "video"},
		{"", "photo.JPeG", "image"},
		{"application/pdf", "invoice.pdf", ""},
	}
	for _, tc := range cases {
		if got := MediaKind(tc.contentType, tc.filename); got != tc.want {
			t.Errorf("MediaKind(%q, %q) = %q, want %q", tc.contentType, tc.filename, got, tc.want)
		}
	}
	if MaxUploadSize("image") != 5<<20 || MaxUploadSize("video") != 50<<20 {
		t.Error("unexpected size limits")
	}
}

func TestUploadSingle(t *testing.T) {
	store := &memoryStore{}
	services.SetMediaStore(store)
	t.Cleanup(func() { services.SetMediaStore(nil) })

	rec := serve(multipartRequest(t, "card.png", "image/png", []byte("png-bytes")))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if store.folder != "uploads" || store.kind != "image" || string(store.content) != "png-bytes" {
		t.Errorf("store got folder=%q kind=%q content=%q", store.folder, store.kind, store.content)
	}

	var resp struct {
		Data services.UploadedMedia `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.URL == "" || resp.Data.Size != len("png-bytes") {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestUploadSingleRejects(t *testing.T) {
	services.SetMediaStore(&memoryStore{})
	t.Cleanup(func() { services.SetMediaStore(nil) })

	rec := serve(multipartRequest(t, "notes.txt", "text/plain", []byte("hello")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("text file: status %d", rec.Code)
	}

	big := bytes.Repeat([]byte{0}, 5<<20+1)
	rec = serve(multipartRequest(t, "huge.png", "image/png", big))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("oversized image: status %d", rec.Code)
	}

	rec = serve(httptest.NewRequest(http.MethodPost, "/upload/single", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing file: status %d", rec.Code)
	}
}

func TestUploadSingleWithoutStore(t *testing.T) {
	services.SetMediaStore(nil)
	rec := serve(multipartRequest(t, "card.png", "image/png", []byte("x")))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status %d", rec.Code)
	}
}
