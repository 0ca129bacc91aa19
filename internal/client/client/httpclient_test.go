package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() (string, bool) { return string(s), s != "" }

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL+"/api/", append([]Option{WithRetry(1, time.Millisecond)}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	for _, u := range []string{"", "localhost:5000", "ftp://x", "http://"} {
		_, err := NewHTTPClient(u)
		assert.Error(t, err, u)
	}
}

func TestResourceList_SendsOnlyPresentParamsAndHeaders(t *testing.T) {
	var gotQuery, gotAuth, gotReqID, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get(common.AuthorizationHeader)
		gotReqID = r.Header.Get(common.RequestIDHeader)
		_, _ = io.WriteString(w, `{"success":true,"message":"ok","data":[{"category_id":1,"name":"Books","status":"active"}],
			"pagination":{"page":1,"limit":10,"total":1,"totalPages":1,"hasNext":false,"hasPrev":false},
			"stats":{"totalCategories":8}}`)
	}, WithTokens(staticTokens("tok")))

	res := NewResource[models.Category, models.CategoryInput, models.CategoryPatch](c, models.ResourceCategories)
	env, err := res.List(context.Background(), models.Query{Status: "active", Search: ""})
	require.NoError(t, err)

	assert.Equal(t, "/api/admin/categories", gotPath)
	assert.Equal(t, "status=active", gotQuery)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.NotEmpty(t, gotReqID)

	require.Len(t, env.Data, 1)
	assert.Equal(t, "Books", env.Data[0].Name)
	assert.Equal(t, 8, env.Stats["totalCategories"])
	assert.False(t, env.Fallback)
}

func TestResource_NoTokenOmitsHeader(t *testing.T) {
	var hasAuth bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header[common.AuthorizationHeader]
		_, _ = io.WriteString(w, `{"success":true,"data":{"faq_id":3}}`)
	}, WithTokens(staticTokens("")))

	res := NewResource[models.FAQ, models.FAQInput, models.FAQPatch](c, models.ResourceFAQs)
	env, err := res.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, hasAuth)
	assert.Equal(t, int64(3), env.Data.ID)
}

func TestDo_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		status     int
		body       string
		wantAPI    bool
		wantUnauth bool
		wantMsg    string
	}{
		{"write 422 with message", http.MethodPost, 422, `{"success":false,"message":"name already exists"}`, true, false, "name already exists"},
		{"write 409 with error", http.MethodPut, 409, `{"success":false,"error":"duplicate account number"}`, true, false, "duplicate account number"},
		{"write 400 without body", http.MethodPost, 400, ``, false, false, ""},
		{"write 400 html", http.MethodPost, 400, `<html>bad</html>`, false, false, ""},
		{"write 404", http.MethodDelete, 404, `{"success":false,"message":"not found"}`, true, false, "not found"},
		{"write 404 without body", http.MethodPut, 404, ``, false, false, ""},
		{"write 500", http.MethodPost, 500, `{"success":false,"message":"db down"}`, false, false, ""},
		{"read 422", http.MethodGet, 422, `{"success":false,"message":"bad filter"}`, false, false, ""},
		{"401", http.MethodGet, 401, `{"success":false,"message":"token expired"}`, false, true, ""},
		{"403 write", http.MethodPatch, 403, `{"success":false,"message":"forbidden"}`, false, true, ""},
		{"2xx write success false", http.MethodPatch, 200, `{"success":false,"message":"cannot delete the last account"}`, true, false, "cannot delete the last account"},
		{"2xx read success false", http.MethodGet, 200, `{"success":false,"message":"oops"}`, false, false, ""},
		{"2xx unparsable", http.MethodGet, 200, `not json`, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			var out models.Envelope[*models.Category]
			err := c.Do(context.Background(), tt.method, "/admin/categories", nil, nil, &out)
			require.Error(t, err)

			var apiErr *APIError
			if tt.wantAPI {
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantMsg, apiErr.Error())
				assert.False(t, IsUnavailable(err))
				return
			}
			assert.False(t, errors.As(err, &apiErr))
			assert.True(t, IsUnavailable(err))
			assert.Equal(t, tt.wantUnauth, errors.Is(err, ErrUnauthorized))
		})
	}
}

func TestDo_ValidationFieldsAreKept(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"success":false,"message":"validation failed","errors":{"name":"too short"}}`)
	})

	err := c.Do(context.Background(), http.MethodPost, "/admin/categories", nil, map[string]string{"name": "x"}, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, map[string]string{"name": "too short"}, apiErr.Fields)
}

func TestDo_MalformedBodyMatchesSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":"not an object"}`)
	})
	var out models.Envelope[*models.Category]
	err := c.Do(context.Background(), http.MethodGet, "/admin/categories/1", nil, nil, &out)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDo_RetriesReadsOn5xx(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"success":true,"data":[]}`)
	})

	res := NewResource[models.Store, models.StoreInput, models.StorePatch](c, models.ResourceStores)
	env, err := res.List(context.Background(), models.Query{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.NotNil(t, env.Data)
}

func TestDo_DoesNotRetryWrites(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	res := NewResource[models.Store, models.StoreInput, models.StorePatch](c, models.ResourceStores)
	_, err := res.Create(context.Background(), models.StoreInput{StoreName: "x"})
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_NetworkErrorIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, WithRetry(0, 0))
	require.NoError(t, err)

	err = c.Do(context.Background(), http.MethodGet, "/admin/faqs", nil, nil, nil)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.Status)
	assert.True(t, IsUnavailable(err))
}

func TestDo_TimeoutIsTransport(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}, WithTimeout(20*time.Millisecond), WithRetry(0, 0))

	err := c.Do(context.Background(), http.MethodGet, "/admin/faqs", nil, nil, nil)
	assert.True(t, IsUnavailable(err))
}

func TestResource_ActionAndDeletePaths(t *testing.T) {
	var got []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = io.WriteString(w, `{"success":true,"message":"done","data":{"account_id":2,"is_active":true}}`)
	})

	res := NewResource[models.BankAccount, models.BankAccountInput, models.BankAccountPatch](c, models.ResourceBankAccounts)
	env, err := res.Action(context.Background(), 2, "set-active", nil)
	require.NoError(t, err)
	assert.True(t, env.Data.IsActive)

	del, err := res.Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, del.Success)

	assert.Equal(t, []string{"PATCH /api/admin/bank-accounts/2/set-active", "DELETE /api/admin/bank-accounts/2"}, got)
}

func TestDownload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "status=pending", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="reports.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.3"))
	})

	blob, err := c.Download(context.Background(), PathReportsExportPDF, models.Query{Status: "pending"}.Values())
	require.NoError(t, err)
	assert.Equal(t, "reports.pdf", blob.Name)
	assert.Equal(t, "application/pdf", blob.ContentType)
	assert.Equal(t, []byte("%PDF-1.3"), blob.Data)
}

func TestDownload_FailurePropagates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := c.Download(context.Background(), PathReportsExportExcel, nil)
	assert.True(t, IsUnavailable(err))
}

func TestPing(t *testing.T) {
	up := true
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		if !up {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"status":"OK"}`)
	})

	require.NoError(t, c.Ping(context.Background()))
	up = false
	assert.True(t, IsUnavailable(c.Ping(context.Background())))
}
