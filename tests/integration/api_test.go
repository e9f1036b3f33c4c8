package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"country-limits/config"
	httpHandler "country-limits/internal/adapter/http/handler"
	"country-limits/internal/adapter/metrics"
	"country-limits/internal/adapter/storage/memory"
	redisStorage "country-limits/internal/adapter/storage/redis"
	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"
	"country-limits/internal/service"
	"country-limits/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-jwt-secret-key-32bytes!!!!!"
	testChannel = "country-limits:events"
)

// testApp builds the full stack over an in-memory repository and miniredis.
// It exercises the real HTTP layer, middleware, handlers, services, and the
// Redis publisher and rate limiter end-to-end.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	rdb    *goredis.Client
	repo   *inMemoryCountryRepo
	store  *memory.RegistryStore
	tokens *service.JWTTokenService
}

type appOptions struct {
	repo       *inMemoryCountryRepo
	editPolicy string
	distinct   bool
	rateLimit  int64
}

func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	if opts.repo == nil {
		opts.repo = newInMemoryCountryRepo()
	}
	log := logger.New("error", false)

	store := memory.NewRegistryStore(opts.repo, log)
	require.NoError(t, store.Load(context.Background()))

	notifier := service.NewBroadcaster(service.NamedNotifier{
		Name:     "redis",
		Notifier: redisStorage.NewChangePublisher(rdb, testChannel),
	})

	var authorizer ports.Authorizer = service.AllowAll{}
	if opts.distinct {
		authorizer = service.MakerChecker{}
	}

	queue := service.NewApprovalQueue(store)
	m := metrics.New(queue)
	registrySvc := service.NewRegistryService(store, notifier, log)
	workflowSvc := service.NewWorkflowService(store, authorizer, notifier, m, opts.editPolicy, log)
	tokens := service.NewJWTTokenService(testSecret, time.Hour, "country-limits")

	deps := httpHandler.RouterDeps{
		Registry:       registrySvc,
		Workflow:       workflowSvc,
		Queue:          queue,
		Audit:          service.NewAuditService(store),
		Store:          store,
		TokenSvc:       tokens,
		Metrics:        m,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Server:         config.ServerConfig{Mode: "test", MaxBodyBytes: 1 << 16},
		Logger:         log,
	}
	if opts.rateLimit > 0 {
		deps.RateLimiter = redisStorage.NewRateLimitStore(rdb)
		deps.RateLimit = config.RateLimitConfig{Enabled: true, Limit: opts.rateLimit, Window: time.Minute}
	}

	app := &testApp{
		server: httptest.NewServer(httpHandler.SetupRouter(deps)),
		redis:  mr,
		rdb:    rdb,
		repo:   opts.repo,
		store:  store,
		tokens: tokens,
	}
	t.Cleanup(app.close)
	return app
}

func (a *testApp) close() {
	a.server.Close()
	_ = a.rdb.Close()
	_ = a.store.Close(context.Background())
}

func (a *testApp) token(t *testing.T, actor string, role domain.Role) string {
	t.Helper()
	tok, _, err := a.tokens.Generate(actor, role)
	require.NoError(t, err)
	return tok
}

type apiResponse struct {
	Status    int
	Data      json.RawMessage `json:"data"`
	Count     int             `json:"count"`
	ErrorCode string          `json:"error_code"`
}

func (a *testApp) call(t *testing.T, method, path, token string, body interface{}) apiResponse {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, a.server.URL+path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := apiResponse{Status: resp.StatusCode}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return out
}

func (r apiResponse) record(t *testing.T) domain.CountryRecord {
	t.Helper()
	var rec domain.CountryRecord
	require.NoError(t, json.Unmarshal(r.Data, &rec))
	return rec
}

func proposal(limit, validUntil, protocol string) map[string]string {
	return map[string]string{"limit": limit, "valid_until": validUntil, "protocol": protocol}
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t, appOptions{})

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(0), body["records"])
}

func TestIntegration_TurkeyApproval(t *testing.T) {
	app := newTestApp(t, appOptions{})
	admin := app.token(t, "admin", domain.RoleAdmin)
	maker := app.token(t, "maker_user", domain.RoleMaker)
	checker := app.token(t, "approval_user", domain.RoleChecker)

	sub := app.rdb.Subscribe(context.Background(), testChannel)
	defer sub.Close()
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)

	r := app.call(t, http.MethodPost, "/api/v1/countries", admin, map[string]string{
		"code": "tr", "name": "Turkey", "limit": "250000", "valid_until": "2025-01-01", "protocol": "BD-104/2024",
	})
	require.Equal(t, http.StatusCreated, r.Status)
	assert.Equal(t, "TR", r.record(t).Code)

	r = app.call(t, http.MethodPost, "/api/v1/countries/TR/requests", maker, proposal("300000", "2026-01-01", "BD-204/2025"))
	require.Equal(t, http.StatusOK, r.Status)
	rec := r.record(t)
	assert.Equal(t, domain.RecordStatusPendingMaker, rec.Status)
	assert.Equal(t, "250000", rec.CurrentLimit)

	r = app.call(t, http.MethodGet, "/api/v1/approvals", checker, nil)
	require.Equal(t, http.StatusOK, r.Status)
	assert.Contains(t, string(r.Data), `"count":1`)

	r = app.call(t, http.MethodPost, "/api/v1/countries/TR/requests/approve", checker, nil)
	require.Equal(t, http.StatusOK, r.Status)
	rec = r.record(t)
	assert.Equal(t, domain.RecordStatusActive, rec.Status)
	assert.Equal(t, "300000", rec.CurrentLimit)
	assert.Equal(t, "2026-01-01", rec.CurrentValidUntil)
	assert.Equal(t, "BD-204/2025", rec.CurrentProtocol)
	assert.Equal(t, "approval_user", rec.LastUpdatedBy)
	require.Len(t, rec.History, 1)
	h := rec.History[0]
	assert.Equal(t, domain.HistoryStatusApproved, h.Status)
	assert.Equal(t, "maker_user", h.ChangedBy)
	require.NotNil(t, h.ApprovedBy)
	assert.Equal(t, "approval_user", *h.ApprovedBy)
	assert.Equal(t, "250000", h.OldLimit)

	r = app.call(t, http.MethodGet, "/api/v1/history?code=TR", checker, nil)
	require.Equal(t, http.StatusOK, r.Status)
	assert.Equal(t, 1, r.Count)

	// created, submitted, approved
	var kinds []domain.EventKind
	var versions []int64
	for i := 0; i < 3; i++ {
		msg, err := sub.ReceiveMessage(context.Background())
		require.NoError(t, err)
		var ev domain.RegistryEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
		assert.Equal(t, "TR", ev.Code)
		kinds = append(kinds, ev.Kind)
		versions = append(versions, ev.Version)
	}
	assert.Equal(t, []domain.EventKind{domain.EventCreated, domain.EventSubmitted, domain.EventApproved}, kinds)
	assert.Equal(t, []int64{1, 2, 3}, versions)
}

func TestIntegration_DuplicateCountry(t *testing.T) {
	app := newTestApp(t, appOptions{})
	admin := app.token(t, "admin", domain.RoleAdmin)

	body := map[string]string{"code": "US", "name": "United States"}
	require.Equal(t, http.StatusCreated, app.call(t, http.MethodPost, "/api/v1/countries", admin, body).Status)

	r := app.call(t, http.MethodPost, "/api/v1/countries", admin, map[string]string{"code": "us", "name": "Other"})
	assert.Equal(t, http.StatusConflict, r.Status)
	assert.Equal(t, "LIM_001", r.ErrorCode)

	r = app.call(t, http.MethodGet, "/api/v1/countries", admin, nil)
	assert.Equal(t, 1, r.Count)
}

func TestIntegration_NoPendingAndNotFound(t *testing.T) {
	app := newTestApp(t, appOptions{})
	admin := app.token(t, "admin", domain.RoleAdmin)
	checker := app.token(t, "approval_user", domain.RoleChecker)

	require.Equal(t, http.StatusCreated, app.call(t, http.MethodPost, "/api/v1/countries", admin, map[string]string{"code": "GB", "name": "United Kingdom"}).Status)

	r := app.call(t, http.MethodPost, "/api/v1/countries/GB/requests/reject", checker, nil)
	assert.Equal(t, http.StatusConflict, r.Status)
	assert.Equal(t, "LIM_004", r.ErrorCode)

	r = app.call(t, http.MethodPost, "/api/v1/countries/ZZ/requests/approve", checker, nil)
	assert.Equal(t, http.StatusNotFound, r.Status)
	assert.Equal(t, "LIM_002", r.ErrorCode)
}

func TestIntegration_SeparationOfDuties(t *testing.T) {
	app := newTestApp(t, appOptions{distinct: true})
	admin := app.token(t, "admin", domain.RoleAdmin)

	require.Equal(t, http.StatusCreated, app.call(t, http.MethodPost, "/api/v1/countries", admin, map[string]string{"code": "DE", "name": "Germany"}).Status)
	require.Equal(t, http.StatusOK, app.call(t, http.MethodPost, "/api/v1/countries/DE/requests", admin, proposal("10", "Unlimited", "")).Status)

	r := app.call(t, http.MethodPost, "/api/v1/countries/DE/requests/approve", admin, nil)
	assert.Equal(t, http.StatusForbidden, r.Status)
	assert.Equal(t, "AUTH_002", r.ErrorCode)

	other := app.token(t, "approval_user", domain.RoleChecker)
	assert.Equal(t, http.StatusOK, app.call(t, http.MethodPost, "/api/v1/countries/DE/requests/approve", other, nil).Status)
}

func TestIntegration_StrictEditPolicy(t *testing.T) {
	app := newTestApp(t, appOptions{editPolicy: config.EditPolicyStrict})
	admin := app.token(t, "admin", domain.RoleAdmin)
	maker := app.token(t, "maker_user", domain.RoleMaker)

	require.Equal(t, http.StatusCreated, app.call(t, http.MethodPost, "/api/v1/countries", admin, map[string]string{"code": "FR", "name": "France"}).Status)
	require.Equal(t, http.StatusOK, app.call(t, http.MethodPost, "/api/v1/countries/FR/requests", maker, proposal("10", "2026-01-01", "")).Status)

	r := app.call(t, http.MethodPost, "/api/v1/countries/FR/requests", maker, proposal("20", "2026-01-01", ""))
	assert.Equal(t, http.StatusConflict, r.Status)
	assert.Equal(t, "LIM_003", r.ErrorCode)
}

func TestIntegration_StateSurvivesRestart(t *testing.T) {
	repo := newInMemoryCountryRepo()
	app := newTestApp(t, appOptions{repo: repo})
	admin := app.token(t, "admin", domain.RoleAdmin)
	maker := app.token(t, "maker_user", domain.RoleMaker)

	require.Equal(t, http.StatusCreated, app.call(t, http.MethodPost, "/api/v1/countries", admin, map[string]string{"code": "TR", "name": "Turkey", "limit": "250000"}).Status)
	require.Equal(t, http.StatusOK, app.call(t, http.MethodPost, "/api/v1/countries/TR/requests", maker, proposal("1", "2026-01-01", "")).Status)
	require.Equal(t, http.StatusOK, app.call(t, http.MethodDelete, "/api/v1/countries/TR/requests", maker, nil).Status)
	require.Equal(t, http.StatusOK, app.call(t, http.MethodPost, "/api/v1/countries/TR/requests", maker, proposal("300000", "2026-01-01", "BD-204/2025")).Status)
	app.close()

	restarted := newTestApp(t, appOptions{repo: repo})
	checker := restarted.token(t, "approval_user", domain.RoleChecker)

	r := restarted.call(t, http.MethodGet, "/api/v1/countries/TR", checker, nil)
	require.Equal(t, http.StatusOK, r.Status)
	rec := r.record(t)
	assert.Equal(t, domain.RecordStatusPendingMaker, rec.Status)
	require.NotNil(t, rec.Pending)
	assert.Equal(t, "300000", rec.Pending.NewLimit)
	require.Len(t, rec.History, 1)
	assert.Equal(t, domain.HistoryStatusDeletedByMaker, rec.History[0].Status)
	assert.Equal(t, int64(4), rec.Version, "version survives restart")

	r = restarted.call(t, http.MethodPost, "/api/v1/countries/TR/requests/approve", checker, nil)
	require.Equal(t, http.StatusOK, r.Status)
	assert.Equal(t, 2, repo.historyRows("TR"))
	approved := r.record(t)
	assert.Equal(t, domain.HistoryStatusApproved, approved.History[0].Status)
	assert.Equal(t, int64(5), approved.Version)
}

func TestIntegration_RateLimitedWrites(t *testing.T) {
	app := newTestApp(t, appOptions{rateLimit: 2})
	admin := app.token(t, "admin", domain.RoleAdmin)
	checker := app.token(t, "approval_user", domain.RoleChecker)

	assert.Equal(t, http.StatusCreated, app.call(t, http.MethodPost, "/api/v1/countries", admin, map[string]string{"code": "GB", "name": "United Kingdom"}).Status)
	assert.Equal(t, http.StatusCreated, app.call(t, http.MethodPost, "/api/v1/countries", admin, map[string]string{"code": "US", "name": "United States"}).Status)

	r := app.call(t, http.MethodPost, "/api/v1/countries", admin, map[string]string{"code": "DE", "name": "Germany"})
	assert.Equal(t, http.StatusTooManyRequests, r.Status)
	assert.Equal(t, "SYS_004", r.ErrorCode)

	// Reads are not limited and other actors have their own budget.
	assert.Equal(t, http.StatusOK, app.call(t, http.MethodGet, "/api/v1/countries", admin, nil).Status)
	assert.Equal(t, http.StatusConflict, app.call(t, http.MethodPost, "/api/v1/countries/GB/requests/approve", checker, nil).Status)
}

func TestIntegration_DemoSeed(t *testing.T) {
	app := newTestApp(t, appOptions{})
	checker := app.token(t, "approval_user", domain.RoleChecker)

	// The seed drives the same services the router uses.
	log := logger.New("error", false)
	queue := service.NewApprovalQueue(app.store)
	n, err := service.SeedDemo(context.Background(),
		service.NewRegistryService(app.store, nil, log),
		service.NewWorkflowService(app.store, nil, nil, nil, "", log))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 3, queue.Count(context.Background()))

	r := app.call(t, http.MethodGet, "/api/v1/countries?sort=code", checker, nil)
	require.Equal(t, http.StatusOK, r.Status)
	assert.Equal(t, 5, r.Count)

	r = app.call(t, http.MethodGet, "/api/v1/history?status=Approved", checker, nil)
	require.Equal(t, http.StatusOK, r.Status)
	assert.Equal(t, 5, r.Count)

	resp, err := http.Get(app.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "clm_pending_requests 3")
}
