package repomanager

import (
	"context"
	"database/sql"

	"github.com/readshelf/readshelf/internal/dbx"
	"github.com/readshelf/readshelf/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (plain connection
// or transaction) and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
