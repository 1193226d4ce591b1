package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mvp-cfdi-api/internal/application/auth"
	"github.com/jhoicas/mvp-cfdi-api/internal/application/cfdi"
	"github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"
	"github.com/jhoicas/mvp-cfdi-api/internal/infrastructure/accounts"
	"github.com/jhoicas/mvp-cfdi-api/internal/infrastructure/filestore"
	apphttp "github.com/jhoicas/mvp-cfdi-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testFixture = `{
  "cfdis_descargados": [
    {"id": 1, "emisor_nombre": "Comercializadora del Norte", "total": "$12,500.00", "estado": "Vigente"},
    {"id": 2, "emisor_nombre": "Servicios Integrales Bajío", "total": "$3,480.50", "estado": "Vigente"}
  ],
  "cfdis_validacion": [
    {"id": "VAL-001", "estado": "Válido"},
    {"id": "VAL-002", "estado": "Cancelado"},
    {"id": "VAL-003", "estado": "Error"}
  ],
  "cfdis_generados": [
    {"id": "GEN-001", "total": "$11,600.00"},
    {"id": "GEN-002", "total": "$2,494.00"},
    {"id": "GEN-003", "total": "pendiente"}
  ],
  "catalogos_sat": {"forma_pago": [], "metodo_pago": []}
}`

type pdfStub struct{}

func (pdfStub) GenerateCFDIReport(context.Context, []entity.Record, string, time.Time) ([]byte, error) {
	return []byte("%PDF-1.3 fake"), nil
}

// buildTestApp arma la aplicación completa sobre un archivo de datos en dataPath.
func buildTestApp(t *testing.T, dataPath string) *fiber.App {
	t.Helper()
	dir, err := accounts.NewDirectory(accounts.DefaultAccounts(), bcrypt.MinCost)
	require.NoError(t, err)

	store := filestore.NewDocumentStore(dataPath, zerolog.Nop())
	queryUC := cfdi.NewQueryUseCase(store, pdfStub{}, cfdi.Config{Version: "1.0.0"}, zerolog.Nop())
	authUC := auth.NewAuthUseCase(dir, auth.SessionConfig{TokenSalt: "mvp-cfdi-2024", SessionTTL: 8 * time.Hour})

	return apphttp.NewApp(apphttp.RouterDeps{
		QueryUC: queryUC,
		AuthUC:  authUC,
		Info:    apphttp.ServiceInfo{Name: "mvp-cfdi-api", Version: "1.0.0", FrontendURL: "http://localhost:3000"},
		OpenAPIDoc: func() (string, error) {
			return `{"swagger":"2.0"}`, nil
		},
	}, zerolog.Nop(), fiber.Config{})
}

func fixturePath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dummy_cfdis.json")
	require.NoError(t, os.WriteFile(path, []byte(testFixture), 0o644))
	return path
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	}
	return resp, out
}

// ──────────────────────────────────────────────────────────────────────────────
// CFDIs
// ──────────────────────────────────────────────────────────────────────────────

func TestDownload_OK(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodGet, "/api/cfdis/download", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "download", body["action"])
	assert.EqualValues(t, 2, body["total_cfdis"])
	assert.Equal(t, "Se obtuvieron 2 CFDIs descargados", body["message"])
	assert.NotEmpty(t, body["timestamp"])

	data := body["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	assert.Equal(t, "Servicios Integrales Bajío", data[1].(map[string]any)["emisor_nombre"])
	assert.EqualValues(t, 1, first["id"], "los registros se devuelven tal cual")
}

func TestDownload_ArchivoInexistente_500ConEnvelope(t *testing.T) {
	app := buildTestApp(t, filepath.Join(t.TempDir(), "no_existe.json"))
	resp, body := do(t, app, http.MethodGet, "/api/cfdis/download", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "Error al obtener CFDIs descargados")
	assert.Contains(t, body["message"], "archivo de datos no encontrado")
	assert.Equal(t, "500 Internal Server Error", body["error"])
}

func TestDownload_JSONCorrupto_500(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roto.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o644))
	app := buildTestApp(t, path)

	resp, body := do(t, app, http.MethodGet, "/api/cfdis/download", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "error al leer el archivo de datos")
}

func TestValidate_Estadisticas(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodGet, "/api/cfdis/validate", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	stats := body["estadisticas"].(map[string]any)
	assert.EqualValues(t, 1, stats["validos"])
	assert.EqualValues(t, 1, stats["cancelados"])
	assert.EqualValues(t, 1, stats["errores"])
	assert.EqualValues(t, 3, body["total_cfdis"])
}

func TestGenerate_TotalAmount(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodGet, "/api/cfdis/generate", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "$14,094.00", body["total_amount"])
	assert.EqualValues(t, 3, body["total_cfdis"])
	assert.Equal(t, "Se generaron 3 facturas exitosamente", body["message"])
}

func TestGeneratePDF(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	req := httptest.NewRequest(http.MethodGet, "/api/cfdis/generate/pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "cfdis_generados_")
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Utilidades
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_OK(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "OK", body["data_file_status"])
	assert.Contains(t, body["endpoints_available"], "/api/cfdis/download")
}

func TestHealth_SinArchivo_503(t *testing.T) {
	app := buildTestApp(t, filepath.Join(t.TempDir(), "no_existe.json"))
	resp, body := do(t, app, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "Health check failed")
}

func TestCatalogos(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodGet, "/api/catalogos", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["total_catalogos"])
	assert.Contains(t, body["catalogos"], "forma_pago")
}

func TestStatsGeneral(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodGet, "/api/stats/general", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	stats := body["stats"].(map[string]any)
	assert.EqualValues(t, 8, stats["total_cfdis"])
	assert.Equal(t, "$14,094.00", stats["total_generado"])
}

func TestRoot(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Contains(t, body["endpoints"], "health")
}

func TestOpenAPI(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodGet, "/api/openapi.json", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2.0", body["swagger"])
}

func TestRutaInexistente_404ConEndpoints(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodGet, "/api/no-existe", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Endpoint no encontrado", body["message"])
	assert.Equal(t, "404 Not Found", body["error"])
	assert.Contains(t, body["available_endpoints"], "/api/health")
}

func TestPanicEnHandler_500Generico(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	app.Get("/boom", func(*fiber.Ctx) error { panic("x") })

	resp, body := do(t, app, http.MethodGet, "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Error interno del servidor", body["message"])
	assert.Equal(t, "500 Internal Server Error", body["error"])
	assert.NotEmpty(t, body["note"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRequestID(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))

	resp, _ := do(t, app, http.MethodGet, "/api/health", "")
	assert.Len(t, resp.Header.Get(apphttp.HeaderRequestID), 36, "uuid generado")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Admin(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login exitoso", body["message"])
	assert.Len(t, body["token"], 32)
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin", user["rol"])
	assert.NotEmpty(t, user["login_time"])
	assert.NotEmpty(t, user["session_expires"])
}

func TestLogin_AdminPasswordIncorrecto_200RolDemo(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "demo", body["user"].(map[string]any)["rol"])
}

func TestLogin_CampoVacio_400(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	for _, payload := range []string{`{"username":"","password":"x"}`, `{"username":"x","password":""}`} {
		resp, body := do(t, app, http.MethodPost, "/api/auth/login", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, payload)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["message"], "username y password son requeridos")
	}
}

func TestLogin_CampoAusente_422(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodPost, "/api/auth/login", `{"username":"admin"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "422 Validation Error", body["error"])
	assert.Contains(t, body["details"], "Password")
}

func TestLogin_CuerpoMalformado_422(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))
	resp, body := do(t, app, http.MethodPost, "/api/auth/login", `{"username": 5, "password": "x"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.NotEmpty(t, body["details"])
}

func TestLogout(t *testing.T) {
	app := buildTestApp(t, fixturePath(t))

	resp, body := do(t, app, http.MethodPost, "/api/auth/logout", `{"token":"cualquier-cosa"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logout exitoso", body["message"])

	resp, body = do(t, app, http.MethodPost, "/api/auth/logout", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["message"], "token requerido")
}
