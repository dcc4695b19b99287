package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// txTimeout acota la unidad de trabajo completa (upsert + plan + batch).
// Pasado esto se cancela el contexto y el adapter hace rollback; nunca
// queda un commit parcial colgando.
const txTimeout = 30 * time.Second

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

type CreateTreatmentInput struct {
	OwnerUserID     string
	MedicationName  string
	MedicationColor string
	Dose            float64
	FrequencyHours  int
	Start           StartTime
	EndDate         time.Time // solo fecha; el día completo se incluye
	Notes           string
}

type CreateTreatmentResult struct {
	PlanID          string
	OccurrenceCount int

	// StartUTCAssumed indica que el inicio venía como hora local sin
	// offset y se asumió UTC. El handler lo loggea como warning.
	StartUTCAssumed bool
}

// CreateTreatment es la operación central: valida el payload completo,
// y dentro de UNA transacción resuelve el medicamento, crea el plan,
// expande las tomas y las inserta en batch. Cualquier falla deshace todo:
// el caller nunca observa un plan sin su set completo de tomas.
//
// No se reintenta nada acá; como la operación es atómica, reintentar el
// mismo request desde afuera es seguro (módulo el upsert de color, que es
// last-write-wins a propósito).
func (s *Service) CreateTreatment(ctx context.Context, in CreateTreatmentInput) (CreateTreatmentResult, error) {
	// Validación de entrada: corta antes de tocar el storage.
	if strings.TrimSpace(in.OwnerUserID) == "" {
		return CreateTreatmentResult{}, &MissingFieldError{Field: "owner"}
	}
	name := strings.TrimSpace(in.MedicationName)
	if name == "" {
		return CreateTreatmentResult{}, &MissingFieldError{Field: "medication_name"}
	}
	if in.Dose <= 0 {
		return CreateTreatmentResult{}, &MissingFieldError{Field: "dose"}
	}
	if !validFrequency(in.FrequencyHours) {
		return CreateTreatmentResult{}, ErrInvalidFrequency
	}

	start, utcAssumed, err := in.Start.Resolve()
	if err != nil {
		return CreateTreatmentResult{}, err
	}
	if in.EndDate.IsZero() {
		return CreateTreatmentResult{}, &MissingFieldError{Field: "end_date"}
	}

	switch n := PlannedCount(start, in.FrequencyHours, in.EndDate); {
	case n == 0:
		return CreateTreatmentResult{}, ErrInvalidDateRange
	case n > MaxOccurrences:
		return CreateTreatmentResult{}, ErrTooManyOccurrences
	}

	now := s.now()

	med := Medication{
		ID:          uuid.NewString(),
		OwnerUserID: in.OwnerUserID,
		Name:        name,
		Color:       strings.TrimSpace(in.MedicationColor),
		DefaultDose: 0,
		DoseUnit:    "mg",
		FormType:    "N/A",
		CreatedAt:   now,
	}

	plan := TreatmentPlan{
		ID:             uuid.NewString(),
		OwnerUserID:    in.OwnerUserID,
		Dose:           in.Dose,
		FrequencyType:  FrequencyTypeHours,
		FrequencyHours: in.FrequencyHours,
		StartAt:        start,
		EndDate:        in.EndDate,
		Active:         true,
		CreatedAt:      now,
	}

	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	var count int
	err = s.store.WithinTx(ctx, func(tx Tx) error {
		medID, err := tx.UpsertMedication(ctx, med)
		if err != nil {
			return err
		}
		plan.MedicationID = medID

		if err := tx.InsertPlan(ctx, plan); err != nil {
			return err
		}

		times, err := ExpandOccurrences(start, in.FrequencyHours, in.EndDate)
		if err != nil {
			return err
		}

		occ := make([]DoseOccurrence, 0, len(times))
		for _, t := range times {
			occ = append(occ, DoseOccurrence{
				ID:          uuid.NewString(),
				PlanID:      plan.ID,
				ScheduledAt: t,
				Status:      DoseStatusPending,
				Notes:       strings.TrimSpace(in.Notes),
			})
		}

		if err := tx.InsertOccurrences(ctx, occ); err != nil {
			return err
		}
		count = len(occ)
		return nil
	})
	if err != nil {
		// El expander corre dentro de la tx pero sus errores ya se
		// chequearon en la entrada; si igual aparece uno, no lo
		// disfrazamos de falla de storage.
		if IsValidation(err) {
			return CreateTreatmentResult{}, err
		}
		return CreateTreatmentResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return CreateTreatmentResult{
		PlanID:          plan.ID,
		OccurrenceCount: count,
		StartUTCAssumed: utcAssumed,
	}, nil
}

// ListDoses devuelve el feed del calendario del usuario, ordenado por
// instante agendado ascendente.
func (s *Service) ListDoses(ctx context.Context, ownerUserID string) ([]DoseView, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, &MissingFieldError{Field: "owner"}
	}
	out, err := s.store.ListDoses(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}

// TakeDose marca una toma como tomada. Scoped al owner: un dose de otro
// usuario es not found, no forbidden (no filtramos existencia).
func (s *Service) TakeDose(ctx context.Context, ownerUserID, doseID string) error {
	doseID = strings.TrimSpace(doseID)
	if doseID == "" {
		return ErrNotFound
	}
	err := s.store.SetDoseStatus(ctx, ownerUserID, doseID, DoseStatusTaken)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return err
}

// DeleteDose borra una toma individual sin tocar el plan.
func (s *Service) DeleteDose(ctx context.Context, ownerUserID, doseID string) error {
	doseID = strings.TrimSpace(doseID)
	if doseID == "" {
		return ErrNotFound
	}
	err := s.store.DeleteDose(ctx, ownerUserID, doseID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return err
}
