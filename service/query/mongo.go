package query

/*
	Description:
		Package `query` wraps https://github.com/mongodb/mongo-go-driver with
		slow query logging, metrics and an optional COLLSCAN guard.
*/

import (
	"fmt"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrCollScan is error for unindexed query
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

// UpsertOp is one replacement of BulkUpsert
type UpsertOp struct {
	Selector interface{}
	Updater  interface{}
}

// Mongo abstract the mongo layer.
type Mongo interface {
	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count return counting for matched entry in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert replaces the entry matching selector, or inserts it.
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// SearchNSorts sorts by each field in order, "-" prefixed fields descending.
	// If you use compound key, make sure key order is correct.
	SearchNSorts(context ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error

	// BulkUpsert performs multiple upsert operations, unordered.
	BulkUpsert(context ctx.Ctx, table domain.Table, ops []UpsertOp) (matchedCnt int64, upsertedCnt int64, err error)
}
