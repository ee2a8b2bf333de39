package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-scim-owner/internal/logger"
)

func newTestKVRepo(t *testing.T) (*keyValueRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &keyValueRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	}
	return repo, mock, db
}

func TestKVGet_Success(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE store_key = ?")).
		WithArgs("creds").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"salt":[1]}`)))

	got, err := repo.Get(context.Background(), "creds")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"salt":[1]}` {
		t.Errorf("unexpected value %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestKVGet_NotFound(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("creds").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.Get(context.Background(), "creds")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestKVGet_DBError(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("creds").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Get(context.Background(), "creds")
	if err == nil || errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestKVPut_Upserts(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_store (store_key,value,updated_at) VALUES (?,?,?) ON CONFLICT(store_key) DO UPDATE")).
		WithArgs("creds", []byte("blob"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Put(context.Background(), "creds", []byte("blob")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestKVPut_DBError(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WillReturnError(errors.New("readonly database"))

	if err := repo.Put(context.Background(), "creds", []byte("blob")); err == nil {
		t.Fatal("expected error")
	}
}

func TestKVDelete(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_store WHERE store_key = ?")).
		WithArgs("creds").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "creds"); err != nil {
		t.Fatalf("deleting a missing key must not fail: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestKVExists(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "present", count: 1, want: true},
		{name: "absent", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestKVRepo(t)
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM kv_store WHERE store_key = ?")).
				WithArgs("creds").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.Exists(context.Background(), "creds")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Exists = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKV_EmptyKey(t *testing.T) {
	repo, _, db := newTestKVRepo(t)
	defer db.Close()
	ctx := context.Background()

	if _, err := repo.Get(ctx, " "); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Get: expected ErrEmptyKey, got %v", err)
	}
	if err := repo.Put(ctx, "", nil); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Put: expected ErrEmptyKey, got %v", err)
	}
	if err := repo.Delete(ctx, ""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Delete: expected ErrEmptyKey, got %v", err)
	}
	if _, err := repo.Exists(ctx, ""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Exists: expected ErrEmptyKey, got %v", err)
	}
}
