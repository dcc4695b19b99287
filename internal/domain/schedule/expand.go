package schedule

import "time"

// MaxOccurrences acota la generación: un plan que supere esto se rechaza
// entero antes de materializar nada (mantiene acotados memoria y el batch
// insert). 5000 tomas ≈ 7 meses cada hora, de sobra para el caso de uso.
const MaxOccurrences = 5000

// MaxFrequencyHours acota la frecuencia por arriba: un año entre tomas.
// Además de no tener sentido clínico, valores enormes desbordarían la
// aritmética de time.Duration (int64 en nanosegundos) y el paso quedaría
// negativo, rompiendo el loop de expansión.
const MaxFrequencyHours = 24 * 365

// EffectiveEnd extiende la fecha de término al último nanosegundo de ese
// día calendario, en la misma zona que el inicio, para que las tomas
// tardías del último día no queden fuera por una comparación ingenua.
func EffectiveEnd(endDate time.Time, loc *time.Location) time.Time {
	return time.Date(endDate.Year(), endDate.Month(), endDate.Day(),
		23, 59, 59, 999999999, loc)
}

// PlannedCount calcula cuántas tomas generaría el plan sin materializarlas:
// floor((effectiveEnd - start) / h) + 1. Devuelve 0 si start > effectiveEnd.
func PlannedCount(start time.Time, everyHours int, endDate time.Time) int {
	if !validFrequency(everyHours) {
		return 0
	}
	end := EffectiveEnd(endDate, start.Location())
	if start.After(end) {
		return 0
	}
	step := time.Duration(everyHours) * time.Hour
	return int(end.Sub(start)/step) + 1
}

// ExpandOccurrences genera la secuencia de instantes de toma de un plan:
// start, start+h, start+2h, ... mientras no pase el fin efectivo.
// Función pura y determinista: mismos inputs, misma secuencia, estrictamente
// creciente con espaciado constante. Se suman duraciones absolutas (igual
// que sumar milisegundos): un cambio de hora por DST corre la hora de pared,
// no el intervalo real entre tomas.
func ExpandOccurrences(start time.Time, everyHours int, endDate time.Time) ([]time.Time, error) {
	if !validFrequency(everyHours) {
		return nil, ErrInvalidFrequency
	}

	end := EffectiveEnd(endDate, start.Location())
	if start.After(end) {
		// Cero tomas no es un éxito vacío: el rango es inválido.
		return nil, ErrInvalidDateRange
	}

	step := time.Duration(everyHours) * time.Hour
	n := int(end.Sub(start)/step) + 1
	if n > MaxOccurrences {
		return nil, ErrTooManyOccurrences
	}

	// validFrequency garantiza step > 0 y n >= 1 acá.

	out := make([]time.Time, 0, n)
	for t := start; !t.After(end); t = t.Add(step) {
		out = append(out, t)
	}
	return out, nil
}

func validFrequency(everyHours int) bool {
	return everyHours > 0 && everyHours <= MaxFrequencyHours
}
