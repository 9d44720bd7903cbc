package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/entity"
	"github.com/Qyuzet/onecarbon/internal/pipeline"
)

type fakeAnalyzer struct {
	result *pipeline.AggregateResult
	err    error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, filename string, _ []byte) (*pipeline.AggregateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeStore struct {
	submissions map[uuid.UUID][]entity.Document
	recorded    []uuid.UUID
	createErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{submissions: map[uuid.UUID][]entity.Document{}}
}

func (f *fakeStore) CreateWithDocuments(_ context.Context, name string, size int, agg *pipeline.AggregateResult) (*entity.Submission, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	sub := &entity.Submission{
		ID:             uuid.New(),
		ArchiveName:    name,
		ArchiveSize:    size,
		TotalFootprint: agg.TotalFootprint,
		DocumentCount:  agg.DocumentCount,
		Status:         "ANALYZED",
		SubmittedAt:    time.Now(),
	}
	docs := make([]entity.Document, 0, len(agg.Documents))
	for _, d := range agg.Documents {
		docs = append(docs, entity.Document{
			ID:           uuid.New(),
			SubmissionID: sub.ID,
			Name:         d.Name,
			SizeBytes:    d.SizeBytes,
			Footprint:    d.Footprint,
		})
	}
	f.submissions[sub.ID] = docs
	return sub, nil
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Submission, error) {
	if _, ok := f.submissions[id]; !ok {
		return nil, common.ErrNotFound
	}
	return &entity.Submission{ID: id}, nil
}

func (f *fakeStore) ListDocuments(_ context.Context, id uuid.UUID) ([]entity.Document, error) {
	docs, ok := f.submissions[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return docs, nil
}

func (f *fakeStore) MarkRecorded(_ context.Context, id uuid.UUID) error {
	f.recorded = append(f.recorded, id)
	return nil
}

func testConfig() *common.Config {
	return &common.Config{
		Estimator: common.EstimatorConfig{APIKey: "test-key"},
		Server:    common.ServerConfig{MaxUploadBytes: 8 << 20},
	}
}

func multipartZip(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("not a real zip, the analyzer is faked"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandleUploadMissingAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.Estimator.APIKey = ""
	srv := NewServer(cfg, &fakeAnalyzer{}, nil)

	body, ctype := multipartZip(t, "docs.zip")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "OpenAI API key not configured", resp.Error)
}

func TestHandleUploadRejectsNonZip(t *testing.T) {
	analyzer := &fakeAnalyzer{
		err: common.NewAppError("UNSUPPORTED_FILE_TYPE", "Please upload a ZIP file", common.ErrUnsupportedFileType),
	}
	srv := NewServer(testConfig(), analyzer, nil)

	body, ctype := multipartZip(t, "report.tar")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Please upload a ZIP file", resp.Error)
}

func TestHandleUploadMissingFileField(t *testing.T) {
	srv := NewServer(testConfig(), &fakeAnalyzer{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewBufferString("plain body"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUploadSuccess(t *testing.T) {
	analyzer := &fakeAnalyzer{
		result: &pipeline.AggregateResult{
			TotalFootprint: 27.5,
			DocumentCount:  2,
			Documents: []pipeline.DocumentResult{
				{Name: "a.pdf", SizeBytes: 100, ContentLength: 80, Footprint: 12.5},
				{Name: "b.txt", SizeBytes: 50, ContentLength: 50, Footprint: 15.0},
			},
		},
	}
	srv := NewServer(testConfig(), analyzer, nil)

	body, ctype := multipartZip(t, "docs.zip")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Upload successful", resp.Message)
	assert.InDelta(t, 27.5, resp.TotalFootprint, 1e-9)
	assert.Equal(t, 2, resp.DocumentCount)
	require.Len(t, resp.Documents, 2)
	assert.Equal(t, "a.pdf", resp.Documents[0].Name)
	assert.Empty(t, resp.SubmissionID)
}

func TestHandleUploadPersistsSubmission(t *testing.T) {
	analyzer := &fakeAnalyzer{
		result: &pipeline.AggregateResult{
			TotalFootprint: 10,
			DocumentCount:  1,
			Documents:      []pipeline.DocumentResult{{Name: "a.pdf", Footprint: 10}},
		},
	}
	store := newFakeStore()
	srv := NewServer(testConfig(), analyzer, nil).WithSubmissions(store)

	body, ctype := multipartZip(t, "docs.zip")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SubmissionID)

	id, err := uuid.Parse(resp.SubmissionID)
	require.NoError(t, err)
	docs, err := store.ListDocuments(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestHandleUploadStoreFailureDoesNotBreakResponse(t *testing.T) {
	analyzer := &fakeAnalyzer{
		result: &pipeline.AggregateResult{Documents: []pipeline.DocumentResult{}},
	}
	store := newFakeStore()
	store.createErr = common.ErrLedger
	srv := NewServer(testConfig(), analyzer, nil).WithSubmissions(store)

	body, ctype := multipartZip(t, "docs.zip")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Upload successful", resp.Message)
	assert.Empty(t, resp.SubmissionID)
}
