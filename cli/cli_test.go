package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-attendance/config"
	"station-attendance/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHoursCommand(t *testing.T) {
	out, err := run(t, "hours", "--in", "09:00", "--out", "18:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Hrs: 9.50")
	assert.Contains(t, out, "OT Hrs:    1.50")

	_, err = run(t, "hours", "--in", "09:00", "--out", "18:75")
	assert.Error(t, err)

	_, err = run(t, "hours", "--in", "09:00")
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORE_DRIVER", config.DriverFile)
	t.Setenv("DATA_DIR", dir)

	backend, err := store.NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, backend.Set(context.Background(), store.UsersKey,
		`[{"id":"a","userId":"EMP001","userName":"Asha","email":"a@example.com","role":"employee"}]`))
	require.NoError(t, backend.Set(context.Background(), store.AttendanceKey,
		`[{"id":"r1","userId":"a","date":"2024-02-05","checkIn":"09:00","checkOut":"19:00","totalHrs":10,"otHrs":2}]`))

	target := filepath.Join(dir, "feb.csv")
	out, err := run(t, "export", "--year", "2024", "--month", "2", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1 user(s)")

	f, err := os.Open(target)
	require.NoError(t, err)
	defer f.Close()
	lines, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 5)
	assert.Equal(t, "EMP001", lines[1][1])
	assert.Equal(t, "2.00", lines[1][len(lines[1])-1])

	_, err = run(t, "export", "--year", "2024", "--month", "13", "--out", target)
	assert.Error(t, err)

	_, err = run(t, "export", "--format", "pdf", "--out", target)
	assert.Error(t, err)
}

func TestNewAppServesHealth(t *testing.T) {
	cfg := &config.AppConfig{AllowedOrigins: []string{"http://example.com"}}
	app := NewApp(cfg, newRepositories(store.NewMemoryBackend()))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://example.com")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
