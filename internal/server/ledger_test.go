package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qyuzet/onecarbon/internal/entity"
	"github.com/Qyuzet/onecarbon/internal/ledger"
)

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRegisterCompany(t *testing.T) {
	srv := NewServer(testConfig(), &fakeAnalyzer{}, nil).WithLedger(ledger.NewMemoryLedger())
	h := srv.Routes()

	rec := postJSON(t, h, "/api/ledger/companies", registerCompanyRequest{Name: "Acme"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["created"])

	rec = postJSON(t, h, "/api/ledger/companies", registerCompanyRequest{Name: "Acme"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["created"])
}

func TestRegisterCompanyRejectsBlankName(t *testing.T) {
	srv := NewServer(testConfig(), &fakeAnalyzer{}, nil).WithLedger(ledger.NewMemoryLedger())

	rec := postJSON(t, srv.Routes(), "/api/ledger/companies", registerCompanyRequest{Name: "   "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompanyStatus(t *testing.T) {
	mem := ledger.NewMemoryLedger()
	srv := NewServer(testConfig(), &fakeAnalyzer{}, nil).WithLedger(mem)
	h := srv.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/ledger/companies/Unknown", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["registered"])
	assert.EqualValues(t, 0, resp["totalDeposited"])

	_, err := mem.Register(context.Background(), "Acme")
	require.NoError(t, err)
	_, err = mem.AppendDeposits(context.Background(), "Acme", []int64{12, 15})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/ledger/companies/Acme", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["registered"])
	assert.EqualValues(t, 27, resp["totalDeposited"])
}

func TestDepositsFloorsAndRecords(t *testing.T) {
	mem := ledger.NewMemoryLedger()
	_, err := mem.Register(context.Background(), "Acme")
	require.NoError(t, err)

	store := newFakeStore()
	subID := uuid.New()
	store.submissions[subID] = []entity.Document{
		{ID: uuid.New(), SubmissionID: subID, Name: "a.pdf", Footprint: 12.9},
		{ID: uuid.New(), SubmissionID: subID, Name: "b.txt", Footprint: 15.1},
	}

	srv := NewServer(testConfig(), &fakeAnalyzer{}, nil).WithSubmissions(store).WithLedger(mem)
	rec := postJSON(t, srv.Routes(), "/api/ledger/deposits", depositRequest{
		Company:      "Acme",
		SubmissionID: subID.String(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["transactionId"])

	total, err := mem.Total(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, int64(27), total) // floor(12.9) + floor(15.1)

	require.Len(t, store.recorded, 1)
	assert.Equal(t, subID, store.recorded[0])
}

func TestDepositsUnregisteredCompany(t *testing.T) {
	store := newFakeStore()
	subID := uuid.New()
	store.submissions[subID] = []entity.Document{{Footprint: 5}}

	srv := NewServer(testConfig(), &fakeAnalyzer{}, nil).WithSubmissions(store).WithLedger(ledger.NewMemoryLedger())
	rec := postJSON(t, srv.Routes(), "/api/ledger/deposits", depositRequest{
		Company:      "Ghost",
		SubmissionID: subID.String(),
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.recorded)
}

func TestDepositsUnknownSubmission(t *testing.T) {
	mem := ledger.NewMemoryLedger()
	_, err := mem.Register(context.Background(), "Acme")
	require.NoError(t, err)

	srv := NewServer(testConfig(), &fakeAnalyzer{}, nil).WithSubmissions(newFakeStore()).WithLedger(mem)
	rec := postJSON(t, srv.Routes(), "/api/ledger/deposits", depositRequest{
		Company:      "Acme",
		SubmissionID: uuid.NewString(),
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLedgerRoutesDisabledWithoutBackend(t *testing.T) {
	srv := NewServer(testConfig(), &fakeAnalyzer{}, nil)

	rec := postJSON(t, srv.Routes(), "/api/ledger/companies", registerCompanyRequest{Name: "Acme"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestContactValidation(t *testing.T) {
	srv := NewServer(testConfig(), &fakeAnalyzer{}, nil).WithContacts(&memContacts{})
	h := srv.Routes()

	rec := postJSON(t, h, "/api/contact", contactRequest{Name: "Jo", Email: "not-an-email", Message: "hi"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h, "/api/contact", contactRequest{Name: "Jo", Email: "jo@example.com", Message: "hello there"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])
}

type memContacts struct {
	stored []entity.ContactMessage
}

func (m *memContacts) Create(_ context.Context, name, email, message string) (*entity.ContactMessage, error) {
	msg := entity.ContactMessage{ID: uuid.New(), Name: name, Email: email, Message: message}
	m.stored = append(m.stored, msg)
	return &msg, nil
}
