package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"med-reminder-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/users/register", registerHandler(svc))

	r.Route("/me/profile", func(pr chi.Router) {
		pr.Get("/", getProfileHandler(svc))
		pr.Put("/", updateProfileHandler(svc))
	})
}

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

type profileRequest struct {
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
	Age    *int     `json:"age"`

	EmergencyContact string `json:"emergency_contact"`
	Address          string `json:"address"`

	Contraindications   string `json:"contraindications"`
	Allergies           string `json:"allergies"`
	ChronicConditions   string `json:"chronic_conditions"`
	PermanentMedication string `json:"permanent_medication"`
	Disabilities        string `json:"disabilities"`
}

type userResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`

	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
	Age    *int     `json:"age"`

	EmergencyContact string `json:"emergency_contact"`
	Address          string `json:"address"`

	Contraindications   string `json:"contraindications"`
	Allergies           string `json:"allergies"`
	ChronicConditions   string `json:"chronic_conditions"`
	PermanentMedication string `json:"permanent_medication"`
	Disabilities        string `json:"disabilities"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Da de alta (o refresca) la cuenta del usuario autenticado. Idempotente. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags users
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body registerRequest true "Datos de identidad"
// @Success 200 {object} userResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /users/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// El email de los claims gana si el payload no trae uno.
		email := strings.TrimSpace(req.Email)
		if email == "" {
			email = claims.Email
		}

		u, err := svc.Register(r.Context(), claims.UserID, RegisterInput{
			Email:       email,
			DisplayName: req.DisplayName,
			PhotoURL:    req.PhotoURL,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// getProfileHandler godoc
// @Summary Obtener perfil propio
// @Tags users
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} userResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "user not found"
// @Router /me/profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// updateProfileHandler godoc
// @Summary Actualizar ficha médica
// @Description Reemplaza la ficha médica del usuario autenticado. 404 si la cuenta no está registrada todavía.
// @Tags users
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body profileRequest true "Ficha médica completa"
// @Success 200 {object} userResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "user not found"
// @Router /me/profile [put]
func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req profileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.UpdateProfile(r.Context(), claims.UserID, Profile{
			Weight:              req.Weight,
			Height:              req.Height,
			Age:                 req.Age,
			EmergencyContact:    strings.TrimSpace(req.EmergencyContact),
			Address:             strings.TrimSpace(req.Address),
			Contraindications:   strings.TrimSpace(req.Contraindications),
			Allergies:           strings.TrimSpace(req.Allergies),
			ChronicConditions:   strings.TrimSpace(req.ChronicConditions),
			PermanentMedication: strings.TrimSpace(req.PermanentMedication),
			Disabilities:        strings.TrimSpace(req.Disabilities),
		})
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:                  u.ID,
		Email:               u.Email,
		DisplayName:         u.DisplayName,
		PhotoURL:            u.PhotoURL,
		Weight:              u.Profile.Weight,
		Height:              u.Profile.Height,
		Age:                 u.Profile.Age,
		EmergencyContact:    u.Profile.EmergencyContact,
		Address:             u.Profile.Address,
		Contraindications:   u.Profile.Contraindications,
		Allergies:           u.Profile.Allergies,
		ChronicConditions:   u.Profile.ChronicConditions,
		PermanentMedication: u.Profile.PermanentMedication,
		Disabilities:        u.Profile.Disabilities,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
