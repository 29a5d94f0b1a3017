package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/database/mongoclient"
	"github.com/arcadia-music/goapi/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
)

func TestGetSortOption(t *testing.T) {
	require.Equal(t,
		bson.D{{Key: "timestamp", Value: -1}, {Key: "id", Value: 1}},
		getSortOption("-timestamp", "", "id"),
	)
}

type querySuite struct {
	suite.Suite
	im *impl
}

// needs a running mongo, e.g. MONGO_TEST_URI=mongodb://localhost:27017
func TestQuerySuite(t *testing.T) {
	if os.Getenv("MONGO_TEST_URI") == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	suite.Run(t, new(querySuite))
}

func (q *querySuite) SetupTest() {
	q.im = &impl{
		client: mongoclient.MustConnectMongoClient(mongoclient.Config{
			Uri:                os.Getenv("MONGO_TEST_URI"),
			AuthDBName:         "admin",
			DBName:             dbName,
			PoolSizeMultiplier: 1,
		}),
	}
	q.Require().NoError(q.im.coll(mockTable).Drop(mockCTX))
}

type dummy struct {
	Id    string `bson:"id"`
	Title string `bson:"title"`
	Rank  int    `bson:"rank"`
}

func (q *querySuite) TestUpsertFindOne() {
	q.NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"id": "a"}, dummy{"a", "first", 1}))
	q.NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"id": "a"}, dummy{"a", "second", 1}))

	res := dummy{}
	q.NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"id": "a"}, &res))
	q.Equal("second", res.Title)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"id": "b"}, &res))

	n, err := q.im.Count(mockCTX, mockTable, bson.M{})
	q.NoError(err)
	q.Equal(1, n)
}

func (q *querySuite) TestBulkUpsertSearch() {
	_, upserted, err := q.im.BulkUpsert(mockCTX, mockTable, []UpsertOp{
		{Selector: bson.M{"id": "a"}, Updater: dummy{"a", "a", 3}},
		{Selector: bson.M{"id": "b"}, Updater: dummy{"b", "b", 1}},
		{Selector: bson.M{"id": "c"}, Updater: dummy{"c", "c", 2}},
	})
	q.NoError(err)
	q.Equal(int64(3), upserted)

	matched, upserted, err := q.im.BulkUpsert(mockCTX, mockTable, []UpsertOp{
		{Selector: bson.M{"id": "b"}, Updater: dummy{"b", "b", 9}},
	})
	q.NoError(err)
	q.Equal(int64(1), matched)
	q.Equal(int64(0), upserted)

	res := []dummy{}
	q.NoError(q.im.SearchNSorts(mockCTX, mockTable, 0, 2, []string{"-rank", "id"}, bson.M{}, &res))
	q.Equal([]dummy{{"b", "b", 9}, {"a", "a", 3}}, res)

	_, _, err = q.im.BulkUpsert(mockCTX, mockTable, nil)
	q.NoError(err)
}
