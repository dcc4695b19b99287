package schedule

// DoseStatus es el estado de una toma individual.
// @Enum pending, taken
type DoseStatus string

const (
	DoseStatusPending DoseStatus = "pending"
	DoseStatusTaken   DoseStatus = "taken"
)

// FrequencyType define la unidad de la frecuencia del plan.
// Por ahora solo soportamos horas (el input del frontend es numérico en horas).
type FrequencyType string

const (
	FrequencyTypeHours FrequencyType = "hours"
)
