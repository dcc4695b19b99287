package memory

import (
	"context"
	"sort"
	"sync"

	"med-reminder-api/internal/domain/schedule"
)

// ScheduleStore implementa schedule.Store en memoria, con la misma
// semántica todo-o-nada del adapter de Postgres: las escrituras de una
// transacción se stagean y solo se aplican si fn termina sin error.
// Sirve para dev sin base y para los tests de atomicidad.
type ScheduleStore struct {
	mu sync.RWMutex

	medications      map[string]schedule.Medication // por ID
	medIDByOwnerName map[string]string
	plans            map[string]schedule.TreatmentPlan
	doses            map[string]schedule.DoseOccurrence

	// FailInsertOccurrences simula una caída del storage justo en el
	// batch insert. Solo para tests.
	FailInsertOccurrences func() error
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{
		medications:      make(map[string]schedule.Medication),
		medIDByOwnerName: make(map[string]string),
		plans:            make(map[string]schedule.TreatmentPlan),
		doses:            make(map[string]schedule.DoseOccurrence),
	}
}

func medKey(owner, name string) string {
	return owner + "\x00" + name
}

func (s *ScheduleStore) WithinTx(ctx context.Context, fn func(tx schedule.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &scheduleTx{
		store: s,
		meds:  make(map[string]schedule.Medication),
		plans: make(map[string]schedule.TreatmentPlan),
		doses: make(map[string]schedule.DoseOccurrence),
	}

	if err := fn(tx); err != nil {
		// Rollback: lo stageado se descarta entero.
		return err
	}

	tx.apply()
	return nil
}

type scheduleTx struct {
	store *ScheduleStore

	meds  map[string]schedule.Medication
	plans map[string]schedule.TreatmentPlan
	doses map[string]schedule.DoseOccurrence
}

func (t *scheduleTx) UpsertMedication(ctx context.Context, m schedule.Medication) (string, error) {
	key := medKey(m.OwnerUserID, m.Name)

	// Existe ya commiteado: solo se actualiza el color (last write wins).
	if id, ok := t.store.medIDByOwnerName[key]; ok {
		existing := t.store.medications[id]
		existing.Color = m.Color
		t.meds[id] = existing
		return id, nil
	}

	// Existe stageado en esta misma tx.
	for id, staged := range t.meds {
		if medKey(staged.OwnerUserID, staged.Name) == key {
			staged.Color = m.Color
			t.meds[id] = staged
			return id, nil
		}
	}

	t.meds[m.ID] = m
	return m.ID, nil
}

func (t *scheduleTx) InsertPlan(ctx context.Context, p schedule.TreatmentPlan) error {
	t.plans[p.ID] = p
	return nil
}

func (t *scheduleTx) InsertOccurrences(ctx context.Context, occ []schedule.DoseOccurrence) error {
	if t.store.FailInsertOccurrences != nil {
		if err := t.store.FailInsertOccurrences(); err != nil {
			return err
		}
	}
	for _, d := range occ {
		t.doses[d.ID] = d
	}
	return nil
}

func (t *scheduleTx) apply() {
	for id, m := range t.meds {
		t.store.medications[id] = m
		t.store.medIDByOwnerName[medKey(m.OwnerUserID, m.Name)] = id
	}
	for id, p := range t.plans {
		t.store.plans[id] = p
	}
	for id, d := range t.doses {
		t.store.doses[id] = d
	}
}

func (s *ScheduleStore) ListDoses(ctx context.Context, ownerUserID string) ([]schedule.DoseView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schedule.DoseView, 0)
	for _, d := range s.doses {
		plan, ok := s.plans[d.PlanID]
		if !ok || plan.OwnerUserID != ownerUserID {
			continue
		}
		med := s.medications[plan.MedicationID]
		out = append(out, schedule.DoseView{
			RecordID:        d.ID,
			MedicationName:  med.Name,
			MedicationColor: med.Color,
			ScheduledAt:     d.ScheduledAt,
			Status:          d.Status,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out, nil
}

func (s *ScheduleStore) SetDoseStatus(ctx context.Context, ownerUserID, doseID string, status schedule.DoseStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.doses[doseID]
	if !ok {
		return schedule.ErrNotFound
	}
	plan, ok := s.plans[d.PlanID]
	if !ok || plan.OwnerUserID != ownerUserID {
		return schedule.ErrNotFound
	}

	d.Status = status
	s.doses[doseID] = d
	return nil
}

func (s *ScheduleStore) DeleteDose(ctx context.Context, ownerUserID, doseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.doses[doseID]
	if !ok {
		return schedule.ErrNotFound
	}
	plan, ok := s.plans[d.PlanID]
	if !ok || plan.OwnerUserID != ownerUserID {
		return schedule.ErrNotFound
	}

	delete(s.doses, doseID)
	return nil
}

// CountRows devuelve cuántas filas hay de cada entidad (solo tests:
// verificar que un rollback no dejó rastro).
func (s *ScheduleStore) CountRows() (medications, plans, doses int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.medications), len(s.plans), len(s.doses)
}
