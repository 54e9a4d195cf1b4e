package data

import (
	"database/sql"
	"fmt"
)

// expectOne turns a zero-row write into ErrNotFound.
func expectOne(res sql.Result, kind, id string) error {
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no %s with id %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
