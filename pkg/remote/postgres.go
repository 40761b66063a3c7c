package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/formkit/pkg/pg"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// RowQuerier is the part of a pgx connection used for existence lookups.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx satisfy it.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Exists checks whether a row with Params["column"] equal to the value exists
// in Params["table"]. The rule fails when it does, or, with
// Params["mustExist"] true, when it does not. Identifiers are quoted, so
// "schema.table" is accepted for the table.
func Exists(db RowQuerier, opts ...Option) validator.AsyncCheckFunc {
	return check("pg", func(ctx context.Context, member string, rule validator.Rule) (bool, error) {
		query, err := existsQuery(rule)
		if err != nil {
			return false, err
		}
		var found bool
		if err := db.QueryRow(ctx, query, member).Scan(&found); err != nil {
			if pg.IsUndefinedTableError(err) || pg.IsUndefinedColumnError(err) {
				return false, errors.Join(ErrMisconfigured, err)
			}
			return false, errors.Join(ErrUnavailable, err)
		}
		return found, nil
	}, opts)
}

func existsQuery(rule validator.Rule) (string, error) {
	table, err := validator.StringParam(rule, "table")
	if err != nil {
		return "", err
	}
	column, err := validator.StringParam(rule, "column")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
		pgx.Identifier(strings.Split(table, ".")).Sanitize(),
		pgx.Identifier{column}.Sanitize(),
	), nil
}

