package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"mergington/internal/domain/entities"
)

type fakeRows struct {
	data [][2]string
	pos  int
	err  error
}

func (r *fakeRows) Close() {}

func (r *fakeRows) Err() error {
	return r.err
}

func (r *fakeRows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag("SELECT")
}

func (r *fakeRows) Conn() *pgx.Conn {
	return nil
}

func (r *fakeRows) RawValues() [][]byte {
	return nil
}

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	return []pgconn.FieldDescription{{Name: "username"}, {Name: "password"}}
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	for i, d := range dest {
		p, ok := d.(*string)
		if !ok {
			return errors.New("unexpected scan target")
		}
		*p = row[i]
	}
	return nil
}

func (r *fakeRows) Values() ([]any, error) {
	row := r.data[r.pos-1]
	return []any{row[0], row[1]}, nil
}

type fakeQuerier struct {
	rows     *fakeRows
	queryErr error
	execSQL  string
	execArgs []any
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.execSQL = sql
	q.execArgs = args
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestTeacherRepository_Load(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][2]string{
		{"mchen", "chess456"},
		{"mrodriguez", "art123"},
	}}}

	creds, err := NewTeacherRepository(q).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !creds.Verify("mchen", "chess456") || !creds.Verify("mrodriguez", "art123") {
		t.Errorf("unexpected credentials: %+v", creds)
	}
}

func TestTeacherRepository_Load_QueryError(t *testing.T) {
	q := &fakeQuerier{queryErr: errors.New("connection refused")}

	_, err := NewTeacherRepository(q).Load(context.Background())

	if err == nil {
		t.Fatal("expected error when query fails")
	}
}

func TestTeacherRepository_Upsert(t *testing.T) {
	q := &fakeQuerier{}

	err := NewTeacherRepository(q).Upsert(context.Background(), entities.TeacherCredential{Username: "principal", Password: "admin789"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.execArgs) != 2 || q.execArgs[0] != "principal" || q.execArgs[1] != "admin789" {
		t.Errorf("unexpected exec args: %+v", q.execArgs)
	}
}
