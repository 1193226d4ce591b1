package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliFixture = `{
  "cfdis_descargados": [{"id": 1}],
  "cfdis_validacion": [{"estado": "Válido"}, {"estado": "Cancelado"}],
  "cfdis_generados": [{"total": "$1,000.00"}, {"total": "$250.50"}],
  "catalogos_sat": {"uso_cfdi": []}
}`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeCLIFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfdis.json")
	require.NoError(t, os.WriteFile(path, []byte(cliFixture), 0o644))
	return path
}

func TestCLI_Generate(t *testing.T) {
	out, err := runCLI(t, "generate", "--data", writeCLIFixture(t))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "$1,250.50", body["total_amount"])
	assert.EqualValues(t, 2, body["total_cfdis"])
}

func TestCLI_Validate(t *testing.T) {
	out, err := runCLI(t, "validate", "--data", writeCLIFixture(t))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	stats := body["estadisticas"].(map[string]any)
	assert.EqualValues(t, 1, stats["validos"])
	assert.EqualValues(t, 1, stats["cancelados"])
}

func TestCLI_ArchivoInexistente(t *testing.T) {
	_, err := runCLI(t, "download", "--data", filepath.Join(t.TempDir(), "nada.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archivo de datos no encontrado")
}

func TestCLI_Report(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "reporte.pdf")
	_, err := runCLI(t, "report", "--data", writeCLIFixture(t), "--out", dest)
	require.NoError(t, err)

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestCLI_Login(t *testing.T) {
	t.Setenv("AUTH_BCRYPT_COST", "4")
	out, err := runCLI(t, "login", "demo", "demo", "--data", writeCLIFixture(t))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "demo", body["user"].(map[string]any)["rol"])
	assert.Len(t, body["token"], 32)
}
