package users

import "time"

// Profile es la ficha médica que el usuario completa después de
// registrarse. Todos los campos son opcionales.
type Profile struct {
	Weight *float64 // kg
	Height *float64 // cm
	Age    *int

	EmergencyContact string
	Address          string

	Contraindications   string
	Allergies           string
	ChronicConditions   string
	PermanentMedication string
	Disabilities        string
}

// User representa una cuenta. El ID es el UID del proveedor de
// identidad externo, no lo generamos nosotros.
type User struct {
	ID          string
	Email       string
	DisplayName string
	PhotoURL    string

	Profile Profile

	CreatedAt time.Time
	UpdatedAt time.Time
}
