package schedule

import (
	"strings"
	"time"
)

// Convención de signo del offset: la misma de getTimezoneOffset() en el
// cliente, o sea local = UTC - offset. Chile continental (UTC-4) manda
// offsetMinutes=240. No se consulta la base de timezones: el cliente ya
// resolvió DST al calcular su offset.

const wallClockLayout = "2006-01-02T15:04"

// FromWallClock convierte una hora de pared local + offset en minutos al
// instante absoluto correspondiente. Biyección pura para un offset fijo.
func FromWallClock(local time.Time, offsetMinutes int) time.Time {
	zone := time.FixedZone("client", -offsetMinutes*60)
	return time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(),
		zone,
	)
}

// ToWallClock es la inversa: devuelve el instante expresado en la zona
// fija del offset, para mostrar la hora que el usuario eligió.
func ToWallClock(instant time.Time, offsetMinutes int) time.Time {
	zone := time.FixedZone("client", -offsetMinutes*60)
	return instant.In(zone)
}

// StartTime es la variante etiquetada del inicio del tratamiento:
// o un instante absoluto, o una hora de pared local + offset.
// Nunca se mezclan representaciones después de Resolve.
type StartTime struct {
	Instant *time.Time

	LocalWallClock string // layout "2006-01-02T15:04" (segundos opcionales)
	OffsetMinutes  *int
}

// Resolve colapsa la variante a un único instante absoluto antes de que
// corra cualquier lógica de generación. Si viene hora local sin offset,
// se asume UTC y se reporta con utcAssumed=true: es un camino degradado
// que el caller debe loggear, no un default silencioso.
func (s StartTime) Resolve() (instant time.Time, utcAssumed bool, err error) {
	if s.Instant != nil {
		return *s.Instant, false, nil
	}

	raw := strings.TrimSpace(s.LocalWallClock)
	if raw == "" {
		return time.Time{}, false, &MissingFieldError{Field: "start_date"}
	}

	local, perr := parseWallClock(raw)
	if perr != nil {
		return time.Time{}, false, perr
	}

	if s.OffsetMinutes == nil {
		return FromWallClock(local, 0), true, nil
	}
	return FromWallClock(local, *s.OffsetMinutes), false, nil
}

func parseWallClock(raw string) (time.Time, error) {
	// Con o sin segundos; el datetime picker manda sin segundos.
	if t, err := time.Parse(wallClockLayout+":05", raw); err == nil {
		return t, nil
	}
	return time.Parse(wallClockLayout, raw)
}
