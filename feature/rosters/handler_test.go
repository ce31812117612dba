package rosters

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *memoryRepository) {
	t.Helper()
	repo := &memoryRepository{dir: seedDirectory()}
	app := fiber.New()
	require.NoError(t, NewFeature(newTestService(repo)).Load(app))
	return app, repo
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestHandleGetRosters(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/rosters", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Contains(t, body, "ATL")
	assert.Contains(t, body, "BOS")
}

func TestHandleGetTeam(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/rosters/ATL", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Atlanta Hawks", decodeBody(t, resp.Body)["nombre_completo"])

	resp, err = app.Test(httptest.NewRequest("GET", "/rosters/XXX", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleDuplicates(t *testing.T) {
	app, repo := setupTestApp(t)
	atl, _ := repo.dir.Team("ATL")
	atl.Players = append(atl.Players, repo.dir.Teams()[1].Players[0])

	resp, err := app.Test(httptest.NewRequest("GET", "/rosters/duplicates", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, []any{"2: ATL, BOS"}, body["lines"])
}

func TestHandleApplyDiff(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		body       string
		wantStatus int
		wantSaves  int
	}{
		{"applies", "", `[{"equipo": "POR", "id": 3}]`, 200, 1},
		{"dry run", "?dry_run=true", `[{"equipo": "POR", "id": 3}]`, 200, 0},
		{"mapping", "", `{"POR": [{"id": 3}]}`, 200, 1},
		{"missing team", "", `[{"id": 3}]`, 422, 0},
		{"bad id skipped", "?skip_invalid=true", `[{"equipo": "POR", "id": "abc"}]`, 200, 1},
		{"bad shape", "", `"hello"`, 422, 0},
		{"malformed", "", `[{"equipo": `, 400, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, repo := setupTestApp(t)

			req := httptest.NewRequest("POST", "/rosters/diff"+tt.query, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantSaves, repo.saves)
		})
	}
}

func TestHandleApplyDiff_ReportsIndex(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/rosters/diff", strings.NewReader(`[{"equipo": "POR", "id": 3}, {"equipo": "POR", "id": "x"}]`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 422, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, float64(1), body["index"])
}

func TestHandleSync_Unavailable(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/rosters/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleResolve_Unavailable(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/rosters/resolve", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}
