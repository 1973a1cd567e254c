package query

/*
	Description:
		Package `query` provides interface for querying mongo db
		This package wraps https://github.com/mongodb/mongo-go-driver
		so please read document at following link for any detail
		https://godoc.org/go.mongodb.org/mongo-driver/mongo
*/

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = xerrors.New("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = xerrors.New("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = xerrors.New("COLLSCAN is not allowed")
)

// Mongo abstract the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Upsert replaces the entry matching selector, or inserts it when none matches
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sorts by the `sort` fields (ex "timestamp" ascending, or "-timestamp" descending)
	// an empty sort skips ordering and MongoDB does not guarantee the order of results.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort []string, query, results interface{}) error

	// Remove remove an entry from the table
	// Return ErrNotFound if selector does not match any documents
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// Patch $set update on one entry
	// Return ErrNotFound if selector does not match any documents
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Increment increases field by inc and decodes the updated entry into result.
	// If entry not exist, insert it.
	Increment(context ctx.Ctx, table domain.Table, selector, result interface{}, field string, inc interface{}) error

	// RunWithTransaction runs `run` in a session transaction, it may be retried on transient errors
	RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error
}
