package schedule

import "time"

// Medication representa un medicamento reutilizable de un usuario.
// (owner, name) es único: registrar el mismo nombre otra vez actualiza
// el color, nunca duplica la fila.
type Medication struct {
	ID          string
	OwnerUserID string

	Name  string
	Color string // hex, ej: "#ad2121"

	// Placeholders al crear desde un tratamiento; la dosis real
	// vive en el plan, no aquí.
	DefaultDose float64
	DoseUnit    string
	FormType    string

	CreatedAt time.Time
}

// TreatmentPlan es un tratamiento creado por el usuario para un medicamento.
type TreatmentPlan struct {
	ID           string
	OwnerUserID  string
	MedicationID string

	Dose           float64
	FrequencyType  FrequencyType
	FrequencyHours int

	// StartAt es el instante absoluto de la primera toma.
	// EndDate es solo fecha; el último día se incluye completo.
	StartAt time.Time
	EndDate time.Time

	Active    bool
	CreatedAt time.Time
}

// DoseOccurrence es una toma concreta agendada, generada desde un plan.
type DoseOccurrence struct {
	ID     string
	PlanID string

	ScheduledAt time.Time
	Status      DoseStatus
	Notes       string
}

// DoseView es la fila que consume el calendario: la toma junto con
// nombre y color del medicamento del plan al que pertenece.
type DoseView struct {
	RecordID        string
	MedicationName  string
	MedicationColor string
	ScheduledAt     time.Time
	Status          DoseStatus
}
