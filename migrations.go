package blog

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// EnsureSchema creates the catalogue tables when they do not exist yet. Hosts
// that manage migrations themselves can skip this and run their own DDL
// against the models exposed by the record package.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return fmt.Errorf("blog schema: database handle is nil")
	}

	models := []any{
		(*Post)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("blog schema: create table %T: %w", model, err)
		}
	}
	return nil
}
