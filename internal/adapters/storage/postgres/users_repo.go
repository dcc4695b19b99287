package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"med-reminder-api/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

// Upsert crea la cuenta o refresca identidad si el UID ya existe.
// El created_at original se conserva; el perfil no se toca acá.
func (r *UsersRepo) Upsert(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, display_name, photo_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id)
		DO UPDATE SET
			email = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			photo_url = EXCLUDED.photo_url,
			updated_at = EXCLUDED.updated_at
	`,
		u.ID,
		u.Email,
		u.DisplayName,
		u.PhotoURL,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *UsersRepo) UpdateProfile(ctx context.Context, id string, p users.Profile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			weight = $1, height = $2, age = $3,
			emergency_contact = $4, address = $5,
			contraindications = $6, allergies = $7,
			chronic_conditions = $8, permanent_medication = $9,
			disabilities = $10,
			updated_at = now()
		WHERE id = $11
	`,
		p.Weight, p.Height, p.Age,
		p.EmergencyContact, p.Address,
		p.Contraindications, p.Allergies,
		p.ChronicConditions, p.PermanentMedication,
		p.Disabilities,
		id,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, email, display_name, photo_url,
			weight, height, age,
			COALESCE(emergency_contact, ''), COALESCE(address, ''),
			COALESCE(contraindications, ''), COALESCE(allergies, ''),
			COALESCE(chronic_conditions, ''), COALESCE(permanent_medication, ''),
			COALESCE(disabilities, ''),
			created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	var u users.User
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.DisplayName,
		&u.PhotoURL,
		&u.Profile.Weight,
		&u.Profile.Height,
		&u.Profile.Age,
		&u.Profile.EmergencyContact,
		&u.Profile.Address,
		&u.Profile.Contraindications,
		&u.Profile.Allergies,
		&u.Profile.ChronicConditions,
		&u.Profile.PermanentMedication,
		&u.Profile.Disabilities,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}

	return u, nil
}
