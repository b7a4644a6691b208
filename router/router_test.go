package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-attendance/repository"
	"station-attendance/store"
)

func newTestApp() (*fiber.App, Repositories) {
	backend := store.NewMemoryBackend()
	repos := Repositories{
		Users:      repository.NewUserRepository(backend),
		Attendance: repository.NewAttendanceRepository(backend),
		Stations:   repository.NewStationRepository(backend),
	}
	app := fiber.New()
	SetupRoutes(app, repos)
	return app, repos
}

func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createUser(t *testing.T, app *fiber.App, code, name string) string {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/v1/users", map[string]string{
		"userId": code, "userName": name, "email": code + "@example.com",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	user := decode(t, resp)["user"].(map[string]any)
	return user["id"].(string)
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp()
	resp := do(t, app, http.MethodGet, "/", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "running", decode(t, resp)["status"])
}

func TestSwaggerDocServed(t *testing.T) {
	app, _ := newTestApp()
	resp := do(t, app, http.MethodGet, "/docs/doc.json", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), "/attendance/monthly/{userId}")
}

func TestUserLifecycle(t *testing.T) {
	app, repos := newTestApp()

	resp := do(t, app, http.MethodPost, "/api/v1/users", map[string]string{"userId": "EMP001"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, decode(t, resp)["errors"])
	assert.Empty(t, repos.Users.GetAll(context.Background()), "nothing is written on validation failure")

	id := createUser(t, app, "EMP001", "Asha Rao")

	resp = do(t, app, http.MethodGet, "/api/v1/users", nil)
	assert.Equal(t, float64(1), decode(t, resp)["total"])

	resp = do(t, app, http.MethodGet, "/api/v1/users/"+id, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "EMP001", decode(t, resp)["userId"])

	resp = do(t, app, http.MethodDelete, "/api/v1/users/"+id, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/api/v1/users/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/v1/users/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRecordAttendanceWithoutUsers(t *testing.T) {
	app, _ := newTestApp()

	resp := do(t, app, http.MethodPost, "/api/v1/attendance", map[string]any{
		"date":    "2024-02-15",
		"entries": []map[string]string{{"userId": "x", "checkIn": "09:00", "checkOut": "17:00"}},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No users found", decode(t, resp)["error"])
}

func TestRecordAttendance(t *testing.T) {
	app, repos := newTestApp()
	asha := createUser(t, app, "EMP001", "Asha")
	bilal := createUser(t, app, "EMP002", "Bilal")

	resp := do(t, app, http.MethodPost, "/api/v1/attendance", map[string]any{
		"date":    "2024-02-15",
		"entries": []map[string]string{{"userId": asha, "checkIn": "09:00"}, {"userId": bilal}},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please enter check-in and check-out times for at least one user", decode(t, resp)["error"])

	resp = do(t, app, http.MethodPost, "/api/v1/attendance", map[string]any{
		"date": "2024-02-15",
		"entries": []map[string]string{
			{"userId": asha, "checkIn": "09:00", "checkOut": "18:30"},
			{"userId": bilal, "checkIn": "09:00"},
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, float64(1), body["saved"])
	record := body["records"].([]any)[0].(map[string]any)
	assert.Equal(t, 9.5, record["totalHrs"])
	assert.Equal(t, 1.5, record["otHrs"])
	assert.Len(t, repos.Attendance.GetAll(context.Background()), 1)

	resp = do(t, app, http.MethodPost, "/api/v1/attendance", map[string]any{
		"date":    "2024-02-16",
		"entries": []map[string]string{{"userId": asha, "checkIn": "9am", "checkOut": "17:00"}},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/v1/attendance", map[string]any{
		"date":    "2024-02-16",
		"entries": []map[string]string{{"userId": "ghost", "checkIn": "09:00", "checkOut": "17:00"}},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Len(t, repos.Attendance.GetAll(context.Background()), 1)

	resp = do(t, app, http.MethodGet, "/api/v1/attendance?userId="+asha+"&year=2024&month=1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var records []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 1)
}

func TestComputeHoursPreview(t *testing.T) {
	app, _ := newTestApp()

	resp := do(t, app, http.MethodGet, "/api/v1/attendance/compute?checkIn=09:00&checkOut=18:30", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, 9.5, body["totalHrs"])
	assert.Equal(t, 1.5, body["otHrs"])

	resp = do(t, app, http.MethodGet, "/api/v1/attendance/compute?checkIn=09:00", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), decode(t, resp)["totalHrs"])

	resp = do(t, app, http.MethodGet, "/api/v1/attendance/compute?checkIn=25:00&checkOut=18:30", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMonthlyViews(t *testing.T) {
	app, _ := newTestApp()
	asha := createUser(t, app, "EMP001", "Asha")

	for _, entry := range []map[string]any{
		{"date": "2024-02-05", "entries": []map[string]string{{"userId": asha, "checkIn": "09:00", "checkOut": "19:00"}}},
		{"date": "2024-02-05", "entries": []map[string]string{{"userId": asha, "checkIn": "09:00", "checkOut": "17:30"}}},
	} {
		resp := do(t, app, http.MethodPost, "/api/v1/attendance", entry)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := do(t, app, http.MethodGet, "/api/v1/attendance/monthly?year=2024&month=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	grid := decode(t, resp)
	assert.Equal(t, "Monthly_Attendance_2024_02", grid["title"])
	assert.Equal(t, float64(29), grid["daysInMonth"])
	rows := grid["rows"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.5, rows[0].(map[string]any)["totalOtHrs"])

	resp = do(t, app, http.MethodGet, "/api/v1/attendance/monthly/"+asha+"?year=2024&month=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary := decode(t, resp)
	assert.Equal(t, float64(1), summary["totalPresentDays"])
	assert.Contains(t, summary["days"], "5")

	resp = do(t, app, http.MethodGet, "/api/v1/attendance/monthly/nobody?year=2024&month=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	empty := decode(t, resp)
	assert.Equal(t, float64(0), empty["totalPresentDays"])
	assert.Empty(t, empty["days"])
	assert.Equal(t, float64(29), empty["daysInMonth"])

	resp = do(t, app, http.MethodGet, "/api/v1/attendance/monthly?year=2024&month=12", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMonthlySummaryOutlivesDeletedUser(t *testing.T) {
	app, _ := newTestApp()
	id := createUser(t, app, "EMP009", "Farah")

	resp := do(t, app, http.MethodPost, "/api/v1/attendance", map[string]any{
		"date":    "2024-02-15",
		"entries": []map[string]string{{"userId": id, "checkIn": "09:00", "checkOut": "18:00"}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/api/v1/users/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/v1/attendance/monthly/"+id+"?year=2024&month=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary := decode(t, resp)
	assert.Equal(t, float64(1), summary["totalPresentDays"])
	assert.Equal(t, float64(1), summary["totalOtHrs"])
	assert.Contains(t, summary["days"], "15")

	resp = do(t, app, http.MethodGet, "/api/v1/attendance?userId="+id+"&year=2024&month=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var records []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 1)
}

func TestMonthlyExport(t *testing.T) {
	app, _ := newTestApp()
	createUser(t, app, "EMP001", "Asha")

	resp := do(t, app, http.MethodGet, "/api/v1/attendance/monthly/export?year=2024&month=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Monthly_Attendance_2024_02.csv")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "EMP001")

	resp = do(t, app, http.MethodGet, "/api/v1/attendance/monthly/export?year=2024&month=1&format=xlsx", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Monthly_Attendance_2024_02.xlsx")

	resp = do(t, app, http.MethodGet, "/api/v1/attendance/monthly/export?format=pdf", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStations(t *testing.T) {
	app, _ := newTestApp()

	resp := do(t, app, http.MethodPost, "/api/v1/stations", map[string]any{
		"stationName": "Bad", "latitude": 95, "longitude": 73.8,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/v1/stations", map[string]any{
		"stationName": "Swargate", "placeArea": "Pune", "latitude": 18.5018, "longitude": 73.8636,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	station := decode(t, resp)["station"].(map[string]any)
	id := station["id"].(string)
	assert.Equal(t, float64(100), station["radius"])
	assert.Equal(t, "Not Available", station["nearbyBusStation"])

	resp = do(t, app, http.MethodGet, "/api/v1/stations?search=swar&perPage=25", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decode(t, resp)
	assert.Equal(t, float64(1), page["total"])
	assert.Equal(t, float64(25), page["perPage"])

	resp = do(t, app, http.MethodGet, "/api/v1/stations/"+id+"/qr", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	png, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	resp = do(t, app, http.MethodPost, "/api/v1/stations/"+id+"/locate", map[string]any{
		"latitude": 18.5020, "longitude": 73.8636,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	located := decode(t, resp)
	assert.Equal(t, true, located["inside"])
	assert.Less(t, located["distance"].(float64), 50.0)

	resp = do(t, app, http.MethodPost, "/api/v1/stations/"+id+"/locate", map[string]any{
		"latitude": 18.52, "longitude": 73.8636,
	})
	assert.Equal(t, false, decode(t, resp)["inside"])

	resp = do(t, app, http.MethodGet, "/api/v1/stations/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
