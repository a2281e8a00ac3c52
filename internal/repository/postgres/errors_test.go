package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsPgDuplicateError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}

	if !isPgDuplicateError(dup) {
		t.Error("23505 should classify as duplicate")
	}
	if !isPgDuplicateError(fmt.Errorf("create folder: %w", dup)) {
		t.Error("wrapped 23505 should classify as duplicate")
	}
	if isPgDuplicateError(&pgconn.PgError{Code: "23503"}) {
		t.Error("23503 is not a duplicate")
	}
	if isPgDuplicateError(errors.New("boom")) {
		t.Error("plain error is not a duplicate")
	}
}

func TestIsPgForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}

	if !isPgForeignKeyError(fk) {
		t.Error("23503 should classify as foreign key violation")
	}
	if !isPgForeignKeyError(fmt.Errorf("create module: %w", fk)) {
		t.Error("wrapped 23503 should classify as foreign key violation")
	}
	if isPgForeignKeyError(&pgconn.PgError{Code: "23505"}) {
		t.Error("23505 is not a foreign key violation")
	}
}

func TestIsPgNoRowsError(t *testing.T) {
	if !isPgNoRowsError(pgx.ErrNoRows) {
		t.Error("pgx.ErrNoRows should classify as no rows")
	}
	if !isPgNoRowsError(fmt.Errorf("get folder: %w", pgx.ErrNoRows)) {
		t.Error("wrapped pgx.ErrNoRows should classify as no rows")
	}
	if isPgNoRowsError(errors.New("boom")) {
		t.Error("plain error is not a no-rows error")
	}
}
