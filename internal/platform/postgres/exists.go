// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"
)

// Exists reports whether table holds a row with column = value.
func Exists(ctx context.Context, db Querier, table, column string, value any) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", table, column)

	var found bool
	if err := db.QueryRow(ctx, query, value).Scan(&found); err != nil {
		return false, fmt.Errorf("postgres: failed to probe %s: %w", table, err)
	}
	return found, nil
}
