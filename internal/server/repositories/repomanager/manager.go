package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/codecrafted/internal/dbx"
	"github.com/dmitrijs2005/codecrafted/internal/server/repositories/courses"
	"github.com/dmitrijs2005/codecrafted/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/codecrafted/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DB handle, so the same
// code can run against *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Courses(db dbx.DBTX) courses.Repository
}
