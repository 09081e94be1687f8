package database

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jmoiron/sqlx"
)

// DumpTables lists the tables DumpTable accepts.
var DumpTables = []string{"users", "todos"}

// DumpTable writes the column names of table followed by every row, ordered by id.
func DumpTable(ctx context.Context, db *sqlx.DB, table string, w io.Writer) error {
	if !isDumpTable(table) {
		return fmt.Errorf("table %q cannot be dumped", table)
	}

	rows, err := db.QueryxContext(ctx, "SELECT * FROM "+table+" ORDER BY id")
	if err != nil {
		return fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", strings.ToUpper(table))
	fmt.Fprintln(w, strings.Join(columns, " | "))

	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		cells := make([]string, len(values))
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			cells[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(w, strings.Join(cells, " | "))
	}
	return rows.Err()
}

func isDumpTable(table string) bool {
	for _, t := range DumpTables {
		if t == table {
			return true
		}
	}
	return false
}
