package schedule

import "context"

// Tx agrupa las escrituras que deben ocurrir dentro de una misma unidad
// de trabajo. El adapter garantiza que, si la función pasada a WithinTx
// devuelve error, ninguna de estas escrituras sobrevive.
type Tx interface {
	// UpsertMedication resuelve (owner, name) a un ID estable: inserta si
	// no existe, actualiza solo el color si ya existe. Una carrera de dos
	// inserts concurrentes para el mismo par no produce dos filas.
	UpsertMedication(ctx context.Context, m Medication) (string, error)

	InsertPlan(ctx context.Context, p TreatmentPlan) error

	// InsertOccurrences persiste el batch completo en una sola operación
	// (no N round-trips). El todo-o-nada lo da la transacción, no este método.
	InsertOccurrences(ctx context.Context, occ []DoseOccurrence) error
}

// Store es el contrato de persistencia del módulo. WithinTx ejecuta fn
// dentro de una transacción: commit si fn devuelve nil, rollback si no.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error

	// Lecturas/mutaciones del calendario (fuera de la transacción de creación).
	ListDoses(ctx context.Context, ownerUserID string) ([]DoseView, error)
	SetDoseStatus(ctx context.Context, ownerUserID, doseID string, status DoseStatus) error
	DeleteDose(ctx context.Context, ownerUserID, doseID string) error
}
