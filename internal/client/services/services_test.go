package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/marketadmin/internal/client/client"
	"github.com/dmitrijs2005/marketadmin/internal/client/failover"
	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func newServices(t *testing.T, h http.HandlerFunc, policies map[string]failover.Policy) (*Services, *fallback.Set) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := client.NewHTTPClient(srv.URL, client.WithRetry(0, 0))
	require.NoError(t, err)

	local := fallback.NewSet()
	return New(Deps{Client: c, Local: local, Policies: policies}), local
}

// offlineServices points the facades at a server that is already closed.
func offlineServices(t *testing.T) (*Services, *fallback.Set) {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := client.NewHTTPClient(url, client.WithRetry(0, 0))
	require.NoError(t, err)

	local := fallback.NewSet()
	return New(Deps{Client: c, Local: local}), local
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

type memSink struct {
	saved *models.Blob
	err   error
}

func (m *memSink) Save(_ context.Context, b *models.Blob) (string, error) {
	m.saved = b
	return "mem://" + b.Name, m.err
}

// ---- tests ----

func TestFacade_RemoteSuccessIsNotTagged(t *testing.T) {
	svc, _ := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/categories", r.URL.Path)
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		writeJSON(w, http.StatusOK, `{"success":true,"message":"ok","data":[{"category_id":42,"name":"Garden","status":"active"}],"pagination":{"page":1,"limit":10,"total":1,"totalPages":1}}`)
	}, nil)

	env, err := svc.Categories.List(context.Background(), models.Query{Status: "active"})
	require.NoError(t, err)
	assert.False(t, env.Fallback)
	assert.Equal(t, "ok", env.Message)
	require.Len(t, env.Data, 1)
	assert.Equal(t, int64(42), env.Data[0].ID)
	assert.Equal(t, failover.SourceRemote, svc.Categories.State().Status().LastSource)
}

func TestFacade_TransportFailureServesLocalData(t *testing.T) {
	svc, _ := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"success":false,"error":"boom"}`)
	}, nil)

	env, err := svc.Categories.List(context.Background(), models.Query{Status: "active"})
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.True(t, env.Fallback)
	assert.True(t, strings.HasSuffix(env.Message, OfflineSuffix))
	assert.Len(t, env.Data, 7)
	assert.Equal(t, 8, env.Stats["totalCategories"])

	st := svc.Categories.State().Status()
	assert.Equal(t, failover.SourceFallback, st.LastSource)
	assert.True(t, st.Offline)
}

func TestFacade_UnreachableBackendCreatesLocally(t *testing.T) {
	svc, local := offlineServices(t)
	ctx := context.Background()

	env, err := svc.Categories.Create(ctx, models.CategoryInput{Name: "Garden"})
	require.NoError(t, err)
	require.True(t, env.Success)
	assert.True(t, env.Fallback)
	assert.Equal(t, int64(9), env.Data.ID)
	assert.Len(t, local.Categories.All(ctx), 9)
}

func TestFacade_ValidationErrorIsReturnedNotMasked(t *testing.T) {
	var calls atomic.Int32
	svc, local := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		writeJSON(w, http.StatusUnprocessableEntity, `{"success":false,"error":"name already exists"}`)
	}, nil)
	ctx := context.Background()
	before := local.Categories.All(ctx)

	env, err := svc.Categories.Create(ctx, models.CategoryInput{Name: "Fashion"})
	require.Error(t, err)
	assert.Nil(t, env)
	assert.Equal(t, "name already exists", err.Error())

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)

	assert.Equal(t, before, local.Categories.All(ctx))
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, svc.Categories.State().Status().Offline)
}

func TestFacade_LocalRuleViolationIsAnEnvelope(t *testing.T) {
	svc, _ := offlineServices(t)
	ctx := context.Background()

	_, err := svc.BankAccounts.Delete(ctx, 2)
	require.NoError(t, err)

	env, err := svc.BankAccounts.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.True(t, env.Fallback)
	assert.NotEmpty(t, env.Error)

	senv, err := svc.Stores.Get(ctx, 999)
	require.NoError(t, err)
	assert.False(t, senv.Success)
	assert.Equal(t, models.CodeNotFound, senv.Code)
}

func TestFacade_RemoteNotFoundOnWriteIsNotMasked(t *testing.T) {
	var calls atomic.Int32
	svc, local := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPut, r.Method)
		writeJSON(w, http.StatusNotFound, `{"success":false,"error":"category not found","code":"not_found"}`)
	}, nil)
	ctx := context.Background()
	before := local.Categories.All(ctx)

	name := "Renamed"
	env, err := svc.Categories.Update(ctx, 5, models.CategoryPatch{Name: &name})
	require.Error(t, err)
	assert.Nil(t, env)
	assert.Equal(t, "category not found", err.Error())

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	after := local.Categories.All(ctx)
	assert.Equal(t, before, after)
	for _, c := range after {
		if c.ID == 5 {
			assert.Equal(t, "Sports", c.Name)
		}
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, svc.Categories.State().Status().Offline)
}

func TestFacade_ActionsUseVerbPaths(t *testing.T) {
	var got []string
	svc, _ := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		_, _ = body.ReadFrom(r.Body)
		got = append(got, strings.TrimSpace(r.Method+" "+r.URL.Path+" "+body.String()))
		writeJSON(w, http.StatusOK, `{"success":true,"message":"done","data":{}}`)
	}, nil)
	ctx := context.Background()

	_, err := svc.BankAccounts.SetActive(ctx, 2)
	require.NoError(t, err)
	_, err = svc.FAQs.ToggleStatus(ctx, 3)
	require.NoError(t, err)
	_, err = svc.Reports.UpdateStatus(ctx, 4, models.StatusChange{Status: models.StatusResolved, Notes: "refunded"})
	require.NoError(t, err)
	_, err = svc.Stores.Approve(ctx, 5, "")
	require.NoError(t, err)
	_, err = svc.Payments.Reject(ctx, 6, "blurry receipt")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"PATCH /admin/bank-accounts/2/set-active",
		"PATCH /admin/faqs/3/toggle-status",
		`PATCH /admin/reports/4/status {"status":"resolved","notes":"refunded"}`,
		"PATCH /admin/stores/5/approve {}",
		`PATCH /admin/payments/6/reject {"notes":"blurry receipt"}`,
	}, got)
}

func TestFacade_ActionsFallBack(t *testing.T) {
	svc, local := offlineServices(t)
	ctx := context.Background()

	env, err := svc.BankAccounts.SetActive(ctx, 2)
	require.NoError(t, err)
	assert.True(t, env.Fallback)
	for _, a := range local.BankAccounts.All(ctx) {
		assert.Equal(t, a.ID == 2, a.IsActive)
	}

	penv, err := svc.Payments.Approve(ctx, 5, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, penv.Data.Status)
	assert.NotNil(t, penv.Data.VerifiedAt)
}

func TestFacade_LocalPolicySkipsRemote(t *testing.T) {
	var calls atomic.Int32
	svc, _ := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, `{"success":true,"data":[]}`)
	}, map[string]failover.Policy{models.ResourceFAQs: failover.PolicyLocal})

	env, err := svc.FAQs.List(context.Background(), models.Query{})
	require.NoError(t, err)
	assert.True(t, env.Fallback)
	assert.Len(t, env.Data, 6)
	assert.Zero(t, calls.Load())
}

func TestReports_ExportHasNoFallback(t *testing.T) {
	svc, _ := offlineServices(t)

	blob, err := svc.Reports.ExportPDF(context.Background(), models.Query{})
	require.Error(t, err)
	assert.Nil(t, blob)
	assert.True(t, client.IsUnavailable(err))
}

func TestReports_ExportTo(t *testing.T) {
	svc, _ := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, client.PathReportsExportExcel, r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="reports.csv"`)
		_, _ = w.Write([]byte("report_id,status\n1,pending\n"))
	}, nil)

	sink := &memSink{}
	where, err := svc.Reports.ExportTo(context.Background(), FormatExcel, models.Query{Status: "pending"}, sink)
	require.NoError(t, err)
	assert.Equal(t, "mem://reports.csv", where)
	require.NotNil(t, sink.saved)
	assert.Equal(t, "text/csv", sink.saved.ContentType)

	_, err = svc.Reports.ExportTo(context.Background(), "docx", models.Query{}, sink)
	assert.Error(t, err)
}

func TestReports_ExportExcelDefaultsToCSVName(t *testing.T) {
	svc, _ := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("report_id,status\n"))
	}, nil)

	blob, err := svc.Reports.ExportExcel(context.Background(), models.Query{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(blob.Name, "reports-"))
	assert.True(t, strings.HasSuffix(blob.Name, ".csv"))
}

func TestServices_OverviewAndReset(t *testing.T) {
	svc, _ := offlineServices(t)
	ctx := context.Background()

	sums, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Len(t, sums, len(models.Resources))
	for i, s := range sums {
		assert.Equal(t, models.Resources[i], s.Resource)
		assert.True(t, s.Fallback)
	}
	assert.Equal(t, 8, sums[0].Stats["totalCategories"])

	for _, st := range svc.Statuses() {
		assert.True(t, st.Offline, st.Resource)
	}

	_, err = svc.Categories.Create(ctx, models.CategoryInput{Name: "Garden"})
	require.NoError(t, err)
	svc.Reset()

	env, err := svc.Categories.List(ctx, models.Query{})
	require.NoError(t, err)
	assert.Equal(t, 8, env.Pagination.Total)

	st, ok := svc.State(models.ResourceStores)
	require.True(t, ok)
	assert.Equal(t, models.ResourceStores, st.Resource())
}
