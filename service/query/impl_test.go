package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/database/mongoclient"
	"github.com/x-xyz/nftmarket/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.TableListings
	dbName    = "testdb"
)

type dummy struct {
	Key   string `bson:"key"`
	Value int64  `bson:"value"`
}

// querySuite runs against a live replica set given by MONGO_URI
type querySuite struct {
	suite.Suite
	im       *impl
	mongoURI string
}

func TestQuerySuite(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	suite.Run(t, &querySuite{mongoURI: uri})
}

func (q *querySuite) SetupTest() {
	q.im = New(mongoclient.MustConnect(mongoclient.Config{Uri: q.mongoURI, AuthDBName: "admin", DbName: dbName, RequireReplicaSet: true}), false).(*impl)
	q.Require().NoError(q.im.coll(mockTable).Drop(mockCTX))
}

func (q *querySuite) TestInsertFindOne() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", 1}))

	res := &dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"key": "a"}, res))
	q.Equal(dummy{"a", 1}, *res)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"key": "b"}, res))
}

func (q *querySuite) TestInsertDuplicateKey() {
	_, err := q.im.coll(mockTable).Indexes().CreateOne(mockCTX, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	q.Require().NoError(err)

	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", 1}))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, dummy{"a", 2}))
}

func (q *querySuite) TestUpsertReplaces() {
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"key": "a"}, dummy{"a", 1}))
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"key": "a"}, dummy{"a", 2}))

	res := []dummy{}
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 0, 0, nil, bson.M{"key": "a"}, &res))
	q.Equal([]dummy{{"a", 2}}, res)
}

func (q *querySuite) TestSearch() {
	for i, k := range []string{"c", "a", "b"} {
		q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{k, int64(i)}))
	}

	res := []dummy{}
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 0, 2, []string{"key"}, bson.M{}, &res))
	q.Equal([]dummy{{"a", 1}, {"b", 2}}, res)

	res = []dummy{}
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 1, 0, []string{"-key"}, bson.M{}, &res))
	q.Equal([]dummy{{"b", 2}, {"a", 1}}, res)
}

func (q *querySuite) TestPatchRemove() {
	q.Equal(ErrNotFound, q.im.Patch(mockCTX, mockTable, bson.M{"key": "a"}, bson.M{"value": 3}))

	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", 1}))
	q.Require().NoError(q.im.Patch(mockCTX, mockTable, bson.M{"key": "a"}, bson.M{"value": 3}))

	res := &dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"key": "a"}, res))
	q.Equal(int64(3), res.Value)

	q.Require().NoError(q.im.Remove(mockCTX, mockTable, bson.M{"key": "a"}))
	q.Equal(ErrNotFound, q.im.Remove(mockCTX, mockTable, bson.M{"key": "a"}))
}

func (q *querySuite) TestIncrement() {
	res := &dummy{}
	q.Require().NoError(q.im.Increment(mockCTX, mockTable, bson.M{"key": "seq"}, res, "value", 1))
	q.Equal(int64(1), res.Value)
	q.Require().NoError(q.im.Increment(mockCTX, mockTable, bson.M{"key": "seq"}, res, "value", 1))
	q.Equal(int64(2), res.Value)
}

func (q *querySuite) TestRunWithTransaction() {
	// the collection has to exist before a transaction can write to it
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"seed", 0}))

	boom := xerrors.New("boom")
	err := q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		if err := q.im.Insert(c, mockTable, dummy{"a", 1}); err != nil {
			return err
		}
		return boom
	})
	q.Equal(boom, err)
	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"key": "a"}, &dummy{}))

	q.Require().NoError(q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		return q.im.Insert(c, mockTable, dummy{"a", 1})
	}))
	q.NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"key": "a"}, &dummy{}))
}

func TestSortOption(t *testing.T) {
	got := sortOption("a", "", "-b")
	if len(got) != 2 || got[0].Value != 1 || got[1].Key != "b" || got[1].Value != -1 {
		t.Fatalf("unexpected sort option %v", got)
	}
}
