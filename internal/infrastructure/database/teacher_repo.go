package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"mergington/internal/domain/entities"
	"mergington/internal/ports/output"
)

var _ output.CredentialSource = (*TeacherRepository)(nil)

const listTeachers = `SELECT username, password FROM teachers ORDER BY username`

// Querier is the subset of *pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// TeacherRepository reads teacher credentials from the teachers table on
// every Load.
type TeacherRepository struct {
	q Querier
}

func NewTeacherRepository(q Querier) *TeacherRepository {
	return &TeacherRepository{q: q}
}

func (r *TeacherRepository) Load(ctx context.Context) (entities.Credentials, error) {
	rows, err := r.q.Query(ctx, listTeachers)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	pairs, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.TeacherCredential])
	if err != nil {
		return nil, fmt.Errorf("scan teachers: %w", err)
	}
	return entities.NewCredentials(pairs), nil
}

// Upsert creates or replaces a teacher's password.
func (r *TeacherRepository) Upsert(ctx context.Context, cred entities.TeacherCredential) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO teachers (username, password) VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password, updated_at = now()`,
		cred.Username, cred.Password,
	)
	if err != nil {
		return fmt.Errorf("upsert teacher %s: %w", cred.Username, err)
	}
	return nil
}
