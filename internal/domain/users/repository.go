package users

import "context"

type Repository interface {
	// Upsert crea el usuario o, si ya existe, actualiza solo los campos
	// de identidad (email, display name, photo). El perfil no se toca.
	Upsert(ctx context.Context, u User) error

	// UpdateProfile reemplaza la ficha médica. ErrNotFound si el UID
	// no está registrado.
	UpdateProfile(ctx context.Context, id string, p Profile) error

	GetByID(ctx context.Context, id string) (User, error)
}
