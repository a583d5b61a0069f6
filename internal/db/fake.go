package db

import (
	"context"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FakeDB is a DB implementation backed by function fields, for tests.
type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

// FakeRow is a pgx.Row whose Scan assigns the stored values in order.
type FakeRow struct {
	Values  []any
	ScanErr error
}

func (r *FakeRow) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	assign(dest, r.Values)
	return nil
}

// FakeRows is a pgx.Rows over a fixed set of rows.
type FakeRows struct {
	Rows    [][]any
	ScanErr error
	RowsErr error

	idx int
}

func (r *FakeRows) Close()                                       {}
func (r *FakeRows) Err() error                                   { return r.RowsErr }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }

func (r *FakeRows) Next() bool {
	if r.idx >= len(r.Rows) {
		return false
	}
	r.idx++
	return true
}

func (r *FakeRows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	assign(dest, r.Rows[r.idx-1])
	return nil
}

func assign(dest, src []any) {
	for i, d := range dest {
		if i >= len(src) {
			return
		}
		dv := reflect.ValueOf(d).Elem()
		dv.Set(reflect.ValueOf(src[i]))
	}
}
