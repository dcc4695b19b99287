package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"med-reminder-api/internal/middleware"
	"med-reminder-api/internal/platform/logger"
	"med-reminder-api/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const endDateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, met *metrics.Metrics) {
	r.Route("/treatments", func(tr chi.Router) {
		tr.Post("/", createTreatmentHandler(svc, log, met))
	})

	r.Route("/doses", func(dr chi.Router) {
		dr.Get("/", listDosesHandler(svc))

		// Confirmar toma / borrar toma individual (el plan queda intacto).
		dr.Post("/{doseID}/take", takeDoseHandler(svc))
		dr.Delete("/{doseID}", deleteDoseHandler(svc))
	})
}

// createTreatmentRequest es el payload para crear un tratamiento.
// El inicio admite dos variantes, nunca ambas a medias:
//   - start_at: instante absoluto RFC3339, o
//   - start_local + offset_minutes: hora de pared del usuario más su
//     offset (convención getTimezoneOffset: local = UTC - offset).
type createTreatmentRequest struct {
	MedicationName  string  `json:"medication_name"`
	MedicationColor string  `json:"medication_color"` // hex, ej: "#ad2121"
	Dose            float64 `json:"dose"`
	FrequencyHours  int     `json:"frequency_hours"`
	StartAt         string  `json:"start_at"`    // RFC3339
	StartLocal      string  `json:"start_local"` // "2006-01-02T15:04"
	OffsetMinutes   *int    `json:"offset_minutes"`
	EndDate         string  `json:"end_date"` // "2006-01-02", inclusivo
	Notes           string  `json:"notes"`
}

type createTreatmentResponse struct {
	PlanID          string `json:"plan_id"`
	OccurrenceCount int    `json:"occurrence_count"`
}

// doseResponse es una toma del calendario con nombre y color del medicamento.
type doseResponse struct {
	RecordID        string     `json:"record_id"`
	MedicationName  string     `json:"medication_name"`
	MedicationColor string     `json:"medication_color"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	Status          DoseStatus `json:"status"`
}

// createTreatmentHandler godoc
// @Summary Crear tratamiento
// @Description Crea un plan de tratamiento y genera todas sus tomas en una sola transacción: o queda el plan con el set completo de tomas, o no queda nada. Ante un 500 es seguro reenviar el mismo payload. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags treatments
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createTreatmentRequest true "Datos del tratamiento"
// @Success 201 {object} createTreatmentResponse
// @Failure 400 {string} string "invalid json / campos faltantes / frecuencia o rango inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "storage failure (reintentable)"
// @Router /treatments [post]
func createTreatmentHandler(svc *Service, log logger.Logger, met *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createTreatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CreateTreatmentInput{
			OwnerUserID:     claims.UserID,
			MedicationName:  req.MedicationName,
			MedicationColor: req.MedicationColor,
			Dose:            req.Dose,
			FrequencyHours:  req.FrequencyHours,
			Notes:           req.Notes,
		}

		if v := strings.TrimSpace(req.StartAt); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "start_at must be RFC3339", http.StatusBadRequest)
				return
			}
			in.Start = StartTime{Instant: &t}
		} else {
			in.Start = StartTime{
				LocalWallClock: req.StartLocal,
				OffsetMinutes:  req.OffsetMinutes,
			}
		}

		if v := strings.TrimSpace(req.EndDate); v != "" {
			t, err := time.Parse(endDateLayout, v)
			if err != nil {
				http.Error(w, "end_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.EndDate = t
		}

		res, err := svc.CreateTreatment(r.Context(), in)
		if err != nil {
			if IsValidation(err) {
				met.TreatmentFailures.WithLabelValues("validation").Inc()
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			met.TreatmentFailures.WithLabelValues("persistence").Inc()
			log.Error("create treatment failed, transaction rolled back", map[string]any{
				"owner": claims.UserID,
				"error": err.Error(),
			})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if res.StartUTCAssumed {
			// Camino degradado: hora local sin offset, se asumió UTC.
			log.Warn("treatment start had no offset, assumed UTC", map[string]any{
				"owner": claims.UserID,
				"plan":  res.PlanID,
			})
		}

		met.TreatmentsCreated.Inc()
		met.OccurrencesGenerated.Add(float64(res.OccurrenceCount))

		writeJSON(w, http.StatusCreated, createTreatmentResponse{
			PlanID:          res.PlanID,
			OccurrenceCount: res.OccurrenceCount,
		})
	}
}

// listDosesHandler godoc
// @Summary Listar tomas del usuario
// @Description Devuelve todas las tomas agendadas del usuario autenticado, con nombre y color del medicamento, ordenadas por instante ascendente (feed del calendario).
// @Tags doses
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} doseResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /doses [get]
func listDosesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListDoses(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]doseResponse, 0, len(items))
		for _, d := range items {
			out = append(out, doseResponse{
				RecordID:        d.RecordID,
				MedicationName:  d.MedicationName,
				MedicationColor: d.MedicationColor,
				ScheduledAt:     d.ScheduledAt,
				Status:          d.Status,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// takeDoseHandler godoc
// @Summary Confirmar toma
// @Description Marca una toma del usuario autenticado como tomada.
// @Tags doses
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param doseID path string true "ID de la toma"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dose not found"
// @Failure 500 {string} string "internal error"
// @Router /doses/{doseID}/take [post]
func takeDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		err := svc.TakeDose(r.Context(), claims.UserID, chi.URLParam(r, "doseID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "dose not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteDoseHandler godoc
// @Summary Borrar una toma
// @Description Borra una toma individual del usuario autenticado. El plan y el resto de las tomas no se tocan.
// @Tags doses
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param doseID path string true "ID de la toma"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dose not found"
// @Failure 500 {string} string "internal error"
// @Router /doses/{doseID} [delete]
func deleteDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		err := svc.DeleteDose(r.Context(), claims.UserID, chi.URLParam(r, "doseID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "dose not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
