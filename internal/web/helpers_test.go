package web

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/selamsoft/selam-web/internal/api"
	"github.com/selamsoft/selam-web/internal/config"
	"github.com/selamsoft/selam-web/internal/types"
	"github.com/selamsoft/selam-web/internal/view"
	"github.com/selamsoft/selam-web/internal/web/ratelimit"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	mu          sync.Mutex
	jobs        []types.Job
	jobsErr     error
	products    []types.Product
	productsErr error
	submitErr   error
	submissions []api.Submission
	block       chan struct{} // when set, list calls wait for it or ctx
}

func (f *fakeCatalog) BaseURL() string { return "http://api.test" }

func (f *fakeCatalog) wait(ctx context.Context) error {
	if f.block == nil {
		return nil
	}
	select {
	case <-f.block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeCatalog) ListJobs(ctx context.Context) (*api.List[types.Job], error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.jobsErr != nil {
		return nil, f.jobsErr
	}
	return &api.List[types.Job]{Items: f.jobs, Shape: api.ShapeArray}, nil
}

func (f *fakeCatalog) ListProducts(ctx context.Context) (*api.List[types.Product], error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.productsErr != nil {
		return nil, f.productsErr
	}
	return &api.List[types.Product]{Items: f.products, Shape: api.ShapeWrapped}, nil
}

func (f *fakeCatalog) SubmitApplication(ctx context.Context, sub api.Submission) (*api.Receipt, error) {
	f.mu.Lock()
	f.submissions = append(f.submissions, sub)
	f.mu.Unlock()
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &api.Receipt{StatusCode: http.StatusCreated}, nil
}

func (f *fakeCatalog) submitted() []api.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.Submission(nil), f.submissions...)
}

type fakeContacts struct {
	mu    sync.Mutex
	saved []types.ContactMessage
	err   error
}

func (f *fakeContacts) SaveContactMessage(ctx context.Context, msg *types.ContactMessage) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.saved = append(f.saved, *msg)
	return uuid.New(), nil
}

func sampleCatalog() *fakeCatalog {
	return &fakeCatalog{
		jobs: []types.Job{
			{ID: "1", Title: "Senior Backend Engineer", Department: "Engineering", Location: "Addis Ababa", Type: "Full-time",
				Description: "Build APIs.", Requirements: []string{"5+ years of Go"}},
			{ID: "2", Title: "Product Designer", Department: "Design", Location: "Remote", Type: "Contract"},
		},
		products: []types.Product{
			{ID: 1, Name: "ERP Solutions Suite", Category: "Enterprise", Description: "ERP.", Rating: 4.8, Users: "500+", Status: types.StatusAvailable, Price: "Contact for pricing"},
			{ID: 2, Name: "School Management System", Category: "Education", Rating: 4.9, Users: "200+", Status: types.StatusAvailable},
			{ID: 3, Name: "E-Commerce Platform", Category: "Retail", Rating: 4.7, Users: "150+", Status: types.StatusAvailable},
			{ID: 6, Name: "Financial Analytics AI", Category: "FinTech", Status: types.StatusComingSoon, Rating: 0, Users: "0"},
		},
	}
}

type serverOption func(*Config)

func newTestServer(t *testing.T, catalog Catalog, contacts *fakeContacts, opts ...serverOption) *Server {
	t.Helper()
	keys, err := config.DeriveKeys("test-session-secret-0123456789")
	require.NoError(t, err)

	cfg := Config{
		Port:           0,
		RenderTimeout:  time.Second,
		MaxUploadBytes: types.DefaultMaxUploadBytes,
		FlashTTL:       time.Minute,
		Keys:           keys,
		RateLimit:      &ratelimit.Config{Enabled: false},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var sink view.ContactSink
	if contacts != nil {
		sink = contacts
	}
	s, err := New(cfg, catalog, sink)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func do(t *testing.T, s *Server, req *http.Request) *http.Response {
	t.Helper()
	if req.RemoteAddr == "" {
		req.RemoteAddr = "192.0.2.1:1234"
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec.Result()
}

func get(t *testing.T, s *Server, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return do(t, s, req)
}

func document(t *testing.T, resp *http.Response) *goquery.Document {
	t.Helper()
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

// formToken renders path and returns its hidden token.
func formToken(t *testing.T, s *Server, path string) string {
	t.Helper()
	doc := document(t, get(t, s, path))
	token, ok := doc.Find(`input[name="_token"]`).Attr("value")
	require.True(t, ok, "form should carry a token")
	require.NotEmpty(t, token)
	return token
}

func validApplication() map[string]string {
	return map[string]string{
		"firstName":  "Meron",
		"lastName":   "Alemu",
		"email":      "meron@example.com",
		"phone":      "+251 911 123 456",
		"city":       "Addis Ababa",
		"experience": "4",
		"skills":     "Go, PostgreSQL",
		"interest":   "I want to build products for Ethiopia.",
	}
}

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

func multipartRequest(t *testing.T, path string, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, data := range files {
		fw, err := mw.CreateFormFile(name, name+".pdf")
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func formRequest(path string, fields map[string]string) *http.Request {
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func flashCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "selam_flash" && c.MaxAge >= 0 {
			return c
		}
	}
	return nil
}

var errAPIDown = errors.New("Failed to fetch jobs (HTTP 503)")
