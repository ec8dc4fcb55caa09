package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
	"github.com/jhoicas/panel-admin/internal/infrastructure/memory"
	"github.com/jhoicas/panel-admin/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/panel-admin/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/panel-admin/pkg/jwt"
	"github.com/jhoicas/panel-admin/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "17"
	testMargin    = 60 * time.Second
)

const emptyPage = `{"data":[],"totalItems":0,"currentPage":1,"totalPages":1}`

// backendCall petición recibida por el backend falso.
type backendCall struct {
	Method string
	Path   string
	Query  url.Values
	Body   string
	Auth   string
}

// fakeBackend API REST falsa: responde por "METHOD /ruta" y por defecto devuelve una página vacía.
type fakeBackend struct {
	srv    *httptest.Server
	mu     sync.Mutex
	calls  []backendCall
	routes map[string]http.HandlerFunc
}

func newFakeBackend(t *testing.T, routes map[string]http.HandlerFunc) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{routes: routes}
	fb.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.calls = append(fb.calls, backendCall{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Body:   string(body),
			Auth:   r.Header.Get("Authorization"),
		})
		fb.mu.Unlock()

		if h, ok := fb.routes[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		writeJSON(w, http.StatusOK, emptyPage)
	}))
	t.Cleanup(fb.srv.Close)
	return fb
}

// Calls devuelve una copia de las peticiones recibidas.
func (fb *fakeBackend) Calls() []backendCall {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]backendCall(nil), fb.calls...)
}

// Find primera petición con method y path, o nil.
func (fb *fakeBackend) Find(method, path string) *backendCall {
	for _, c := range fb.Calls() {
		if c.Method == method && c.Path == path {
			return &c
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, body)
	}
}

// testEnv aplicación completa contra el backend falso.
type testEnv struct {
	app     *fiber.App
	guard   *auth.Guard
	backend *fakeBackend
}

func newTestEnv(t *testing.T, routes map[string]http.HandlerFunc) *testEnv {
	t.Helper()
	fb := newFakeBackend(t, routes)

	api, err := backend.New(backend.Config{BaseURL: fb.srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	store := memory.NewSessionStore(time.Hour)
	t.Cleanup(func() { _ = store.Close() })
	guard := auth.NewGuard(auth.Config{Secret: testJWTSecret, ExpiryMargin: testMargin}, store)

	clientUC := usecase.NewClientUseCase(api)
	employeeUC := usecase.NewEmployeeUseCase(api)
	vehicleUC := usecase.NewVehicleUseCase(api)
	serviceUC := usecase.NewServiceUseCase(api)
	advanceUC := usecase.NewSalaryAdvanceUseCase(api)
	toiletUC := usecase.NewChemicalToiletUseCase(api)
	licenseUC := usecase.NewLicenseUseCase(api)

	log := logger.New(logger.Config{Env: "test", Level: "error", Output: io.Discard})
	app := apphttp.NewApp(apphttp.AppConfig{Name: "Panel test"}, log, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(api, guard),
		ClientUC:    clientUC,
		EmployeeUC:  employeeUC,
		VehicleUC:   vehicleUC,
		ServiceUC:   serviceUC,
		AdvanceUC:   advanceUC,
		ConditionUC: usecase.NewContractualConditionUseCase(api),
		ToiletUC:    toiletUC,
		LicenseUC:   licenseUC,
		UserUC:      usecase.NewUserUseCase(api),
		DashboardUC: usecase.NewDashboardUseCase(clientUC, employeeUC, vehicleUC, serviceUC, advanceUC, toiletUC, licenseUC),
		PDF:         pdf.NewListingGenerator(),
	})
	return &testEnv{app: app, guard: guard, backend: fb}
}

// tokenFor firma un token con los roles indicados que vence en exp.
func tokenFor(t *testing.T, exp time.Duration, employeeID *int, roles ...string) string {
	t.Helper()
	now := time.Now()
	tok, err := pkgjwt.Sign(testJWTSecret, pkgjwt.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   testUserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
		},
		Email:      "ana@empresa.com",
		Roles:      roles,
		EmployeeID: employeeID,
	})
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

func intPtr(n int) *int { return &n }

// reqOpt modifica la petición de prueba.
type reqOpt func(*http.Request)

func withToken(tok string) reqOpt {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: apphttp.CookieToken, Value: tok}) }
}

func withCookie(name, value string) reqOpt {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

func asXHR() reqOpt {
	return func(r *http.Request) {
		r.Header.Set("X-Requested-With", "XMLHttpRequest")
		r.Header.Set("Accept", "application/json")
	}
}

func (e *testEnv) do(t *testing.T, method, path string, form url.Values, opts ...reqOpt) *http.Response {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, o := range opts {
		o(req)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// cookie devuelve la cookie name escrita en la respuesta, o nil.
func cookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
