package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"med-reminder-api/internal/router"
)

func TestHTTP_EndToEnd_TreatmentLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	userID := "user-1"
	otherID := "user-2"

	// 1) Registro de cuenta
	{
		st, body := doReq(t, ts.URL, "POST", "/users/register", userID, map[string]any{
			"email":        "ana@example.com",
			"display_name": "Ana",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 register, got %d body=%s", st, string(body))
		}
	}

	// 2) Crear tratamiento: cada 8h del 01 al 02 inclusive => 5 tomas
	planID, count := createTreatment(t, ts.URL, userID, map[string]any{
		"medication_name":  "Paracetamol",
		"medication_color": "#ff0000",
		"dose":             500,
		"frequency_hours":  8,
		"start_at":         "2025-01-01T08:00:00Z",
		"end_date":         "2025-01-02",
		"notes":            "con comida",
	})
	if planID == "" {
		t.Fatal("missing plan id")
	}
	if count != 5 {
		t.Fatalf("expected 5 occurrences, got %d", count)
	}

	// 3) Feed del calendario: 5 tomas pendientes, orden ascendente
	doses := listDoses(t, ts.URL, userID)
	if len(doses) != 5 {
		t.Fatalf("expected 5 doses, got %d", len(doses))
	}
	for i, d := range doses {
		if d.Status != "pending" {
			t.Fatalf("dose %d: expected pending, got %s", i, d.Status)
		}
		if d.MedicationName != "Paracetamol" || d.MedicationColor != "#ff0000" {
			t.Fatalf("dose %d: medication fields wrong: %+v", i, d)
		}
		if i > 0 && !doses[i-1].ScheduledAt.Before(d.ScheduledAt) {
			t.Fatalf("doses not ascending at %d", i)
		}
	}

	// 4) Otro usuario no ve nada ni puede tocar estas tomas
	{
		if other := listDoses(t, ts.URL, otherID); len(other) != 0 {
			t.Fatalf("expected empty feed for other user, got %d", len(other))
		}
		st, _ := doReq(t, ts.URL, "POST", "/doses/"+doses[0].RecordID+"/take", otherID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 taking someone else's dose, got %d", st)
		}
	}

	// 5) Confirmar una toma
	{
		st, body := doReq(t, ts.URL, "POST", "/doses/"+doses[0].RecordID+"/take", userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 take dose, got %d body=%s", st, string(body))
		}
		after := listDoses(t, ts.URL, userID)
		if after[0].Status != "taken" {
			t.Fatalf("expected taken, got %s", after[0].Status)
		}
	}

	// 6) Borrar una toma individual: el resto del plan queda
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/doses/"+doses[1].RecordID, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete dose, got %d", st)
		}
		after := listDoses(t, ts.URL, userID)
		if len(after) != 4 {
			t.Fatalf("expected 4 doses after delete, got %d", len(after))
		}
	}
}

func TestHTTP_CreateTreatment_LocalWallClock(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// Hora local + offset (UTC-4): misma cadencia, instantes corridos.
	_, count := createTreatment(t, ts.URL, "user-1", map[string]any{
		"medication_name": "Ibuprofeno",
		"dose":            200,
		"frequency_hours": 8,
		"start_local":     "2025-01-01T08:00",
		"offset_minutes":  240,
		"end_date":        "2025-01-02",
	})
	if count != 5 {
		t.Fatalf("expected 5 occurrences, got %d", count)
	}

	doses := listDoses(t, ts.URL, "user-1")
	want := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	if !doses[0].ScheduledAt.Equal(want) {
		t.Fatalf("first dose: want %v (08:00 local UTC-4), got %v", want, doses[0].ScheduledAt)
	}
}

func TestHTTP_CreateTreatment_Validation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	base := map[string]any{
		"medication_name": "Paracetamol",
		"dose":            500,
		"frequency_hours": 8,
		"start_at":        "2025-03-10T09:00:00Z",
		"end_date":        "2025-03-12",
	}

	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"zero frequency", func(m map[string]any) { m["frequency_hours"] = 0 }},
		{"huge frequency", func(m map[string]any) { m["frequency_hours"] = 3000000 }},
		{"end before start", func(m map[string]any) { m["end_date"] = "2025-03-09" }},
		{"missing name", func(m map[string]any) { m["medication_name"] = "" }},
		{"bad end date format", func(m map[string]any) { m["end_date"] = "12/03/2025" }},
		{"bad start format", func(m map[string]any) { m["start_at"] = "yesterday" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := map[string]any{}
			for k, v := range base {
				payload[k] = v
			}
			tc.mutate(payload)

			st, _ := doReq(t, ts.URL, "POST", "/treatments", "user-1", payload)
			if st != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", st)
			}

			// Nada quedó escrito: el feed sigue vacío.
			if doses := listDoses(t, ts.URL, "user-1"); len(doses) != 0 {
				t.Fatalf("validation error left %d doses", len(doses))
			}
		})
	}
}

func TestHTTP_RequiresAuth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// Sin X-Debug-User-ID ni token => 401 en todos los endpoints de negocio.
	for _, ep := range []struct{ method, path string }{
		{"POST", "/treatments"},
		{"GET", "/doses"},
		{"POST", "/users/register"},
		{"GET", "/me/profile"},
	} {
		st, _ := doReq(t, ts.URL, ep.method, ep.path, "", map[string]any{})
		if st != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", ep.method, ep.path, st)
		}
	}
}

func TestHTTP_ProfileRoundTrip(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	userID := "user-1"

	// Perfil antes de registrarse => 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/me/profile", userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 before register, got %d", st)
		}
	}

	doReq(t, ts.URL, "POST", "/users/register", userID, map[string]any{
		"email": "ana@example.com",
	})

	{
		st, body := doReq(t, ts.URL, "PUT", "/me/profile", userID, map[string]any{
			"weight":    62.5,
			"age":       34,
			"allergies": "penicilina",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 put profile, got %d body=%s", st, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/me/profile", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get profile, got %d", st)
		}
		var resp struct {
			Email     string   `json:"email"`
			Weight    *float64 `json:"weight"`
			Allergies string   `json:"allergies"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Email != "ana@example.com" || resp.Weight == nil || *resp.Weight != 62.5 || resp.Allergies != "penicilina" {
			t.Fatalf("profile round trip lost data: %s", string(body))
		}
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	for _, path := range []string{"/health", "/metrics"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
	}
}

// -------------------------
// Helpers
// -------------------------

type doseDTO struct {
	RecordID        string    `json:"record_id"`
	MedicationName  string    `json:"medication_name"`
	MedicationColor string    `json:"medication_color"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Status          string    `json:"status"`
}

func createTreatment(t *testing.T, baseURL, userID string, payload map[string]any) (string, int) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/treatments", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create treatment, got %d body=%s", st, string(body))
	}

	var resp struct {
		PlanID          string `json:"plan_id"`
		OccurrenceCount int    `json:"occurrence_count"`
	}
	_ = json.Unmarshal(body, &resp)
	return resp.PlanID, resp.OccurrenceCount
}

func listDoses(t *testing.T, baseURL, userID string) []doseDTO {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/doses", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list doses, got %d body=%s", st, string(body))
	}

	var out []doseDTO
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("list doses: invalid json: %v", err)
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path, userID string, payload map[string]any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}
