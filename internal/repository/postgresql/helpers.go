package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
)

// IsUniqueViolation reports whether err is a unique-constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

// DeleteAttendancesByEmployee removes every attendance row for the employee.
// Part of the hard-delete cascade; runs inside the caller's transaction.
func DeleteAttendancesByEmployee(ctx context.Context, db *database.DB, employeeID string) error {
	q := GetQuerier(ctx, db)
	if _, err := q.Exec(ctx, `DELETE FROM attendances WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete attendances for employee: %w", err)
	}
	return nil
}
