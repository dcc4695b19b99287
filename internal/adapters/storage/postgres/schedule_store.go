package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"med-reminder-api/internal/domain/schedule"
)

type ScheduleStore struct {
	db *sql.DB
}

func NewScheduleStore(db *sql.DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

// WithinTx ejecuta fn dentro de una transacción: commit solo si fn
// devuelve nil; cualquier otro camino (error, panic, timeout de ctx)
// termina en rollback. Nada de lo escrito por fn sobrevive a una falla.
func (s *ScheduleStore) WithinTx(ctx context.Context, fn func(tx schedule.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(&scheduleTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

type scheduleTx struct {
	tx *sql.Tx
}

// UpsertMedication inserta o, si (owner, name) ya existe, actualiza solo
// el color. El ON CONFLICT también colapsa la carrera de dos inserts
// concurrentes para el mismo par: ambos terminan apuntando a la misma
// fila, sin tratar la violación de unique como error fatal.
func (t *scheduleTx) UpsertMedication(ctx context.Context, m schedule.Medication) (string, error) {
	var id string
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO medications (
			id, owner_user_id, name, color,
			default_dose, dose_unit, form_type, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (owner_user_id, name)
		DO UPDATE SET color = EXCLUDED.color
		RETURNING id
	`,
		m.ID,
		m.OwnerUserID,
		m.Name,
		m.Color,
		m.DefaultDose,
		m.DoseUnit,
		m.FormType,
		m.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert medication: %w", err)
	}
	return id, nil
}

func (t *scheduleTx) InsertPlan(ctx context.Context, p schedule.TreatmentPlan) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO treatment_plans (
			id, owner_user_id, medication_id,
			dose, frequency_type, frequency_hours,
			start_at, end_date,
			active, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.OwnerUserID,
		p.MedicationID,
		p.Dose,
		string(p.FrequencyType),
		p.FrequencyHours,
		p.StartAt,
		p.EndDate,
		p.Active,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// InsertOccurrences arma un único INSERT multi-fila para todo el batch:
// un round-trip en vez de N. La atomicidad la da la transacción.
func (t *scheduleTx) InsertOccurrences(ctx context.Context, occ []schedule.DoseOccurrence) error {
	if len(occ) == 0 {
		return nil
	}

	sb := strings.Builder{}
	sb.WriteString(`INSERT INTO dose_occurrences (id, plan_id, scheduled_at, status, notes) VALUES `)

	args := make([]any, 0, len(occ)*5)
	for i, d := range occ {
		if i > 0 {
			sb.WriteString(",")
		}
		n := i * 5
		sb.WriteString(fmt.Sprintf("($%d,$%d,$%d,$%d,$%d)", n+1, n+2, n+3, n+4, n+5))
		args = append(args, d.ID, d.PlanID, d.ScheduledAt, string(d.Status), d.Notes)
	}

	if _, err := t.tx.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("insert occurrences: %w", err)
	}
	return nil
}

func (s *ScheduleStore) ListDoses(ctx context.Context, ownerUserID string) ([]schedule.DoseView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			d.id,
			m.name,
			COALESCE(m.color, ''),
			d.scheduled_at,
			d.status
		FROM dose_occurrences d
		JOIN treatment_plans p ON d.plan_id = p.id
		JOIN medications m ON p.medication_id = m.id
		WHERE p.owner_user_id = $1
		ORDER BY d.scheduled_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]schedule.DoseView, 0)
	for rows.Next() {
		var v schedule.DoseView
		var status string
		if err := rows.Scan(&v.RecordID, &v.MedicationName, &v.MedicationColor, &v.ScheduledAt, &status); err != nil {
			return nil, err
		}
		v.Status = schedule.DoseStatus(status)
		out = append(out, v)
	}

	return out, rows.Err()
}

func (s *ScheduleStore) SetDoseStatus(ctx context.Context, ownerUserID, doseID string, status schedule.DoseStatus) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE dose_occurrences d
		SET status = $1
		FROM treatment_plans p
		WHERE d.plan_id = p.id
		  AND d.id = $2
		  AND p.owner_user_id = $3
	`, string(status), doseID, ownerUserID)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

func (s *ScheduleStore) DeleteDose(ctx context.Context, ownerUserID, doseID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM dose_occurrences d
		USING treatment_plans p
		WHERE d.plan_id = p.id
		  AND d.id = $1
		  AND p.owner_user_id = $2
	`, doseID, ownerUserID)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return schedule.ErrNotFound
	}
	return nil
}
