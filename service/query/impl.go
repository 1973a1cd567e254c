package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/database/mongoclient"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/metrics"
	"github.com/x-xyz/nftmarket/domain"
)

const (
	queryMaxTime      = 20 * time.Second
	slowLogThreshold  = 500 * time.Millisecond
	maxConcurrentTxns = 10
)

var (
	timeNow = time.Now
	met     = metrics.New("query")
)

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
	// bounds the open sessions, a transaction holds its connection until commit
	txnSlots chan struct{}
}

// New initializes an impl
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	return &impl{
		client:     client,
		checkIndex: checkIndex,
		txnSlots:   make(chan struct{}, maxConcurrentTxns),
	}
}

// op is one measured statement against a table
type op struct {
	c      ctx.Ctx
	table  domain.Table
	action string
	filter interface{}
	start  time.Time
	end    metrics.Ender
}

func (im *impl) begin(c ctx.Ctx, table domain.Table, action string, filter interface{}) *op {
	return &op{
		c:      ctx.Ctx{Context: c, Logger: c.WithFields(log.Fields{"table": table, "action": action, "filter": filter})},
		table:  table,
		action: action,
		filter: filter,
		start:  timeNow(),
		end:    met.BumpTime("time", "func", action, "table", string(table)),
	}
}

// done records the latency and logs the statement when it is slow
func (o *op) done(sort ...string) {
	o.end.End()
	elapsed := time.Since(o.start)
	if elapsed < slowLogThreshold {
		return
	}
	met.BumpSum("slowlog", 1, "table", string(o.table), "action", o.action)
	o.c.WithFields(log.Fields{
		"startTime":  o.start.Unix(),
		"durationMs": elapsed.Milliseconds(),
		"sort":       sort,
	}).Warn("mongo slowlog")
}

func (o *op) fail(err error) error {
	if _, ok := err.(topology.ConnectionError); ok {
		met.BumpSum("conn.err", 1)
	}
	o.c.WithField("err", err).Error(o.action + " failed")
	return err
}

func (im *impl) coll(table domain.Table) *mongo.Collection {
	return im.client.Database(im.client.DbName).Collection(string(table))
}

func (im *impl) Insert(c ctx.Ctx, table domain.Table, insert interface{}) error {
	o := im.begin(c, table, "insert", nil)
	defer o.done()

	if _, err := im.coll(table).InsertOne(o.c, insert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return o.fail(err)
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, table domain.Table, query, result interface{}) error {
	o := im.begin(c, table, "findone", query)
	defer o.done()

	if err := im.explain(o, "find", bson.E{Key: "filter", Value: query}); err != nil {
		return err
	}

	err := im.coll(table).FindOne(o.c, query, options.FindOne().SetMaxTime(queryMaxTime)).Decode(result)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	} else if err != nil {
		return o.fail(err)
	}
	return nil
}

func (im *impl) Upsert(c ctx.Ctx, table domain.Table, selector, update interface{}) error {
	o := im.begin(c, table, "upsert", selector)
	defer o.done()

	_, err := im.coll(table).ReplaceOne(o.c, selector, update, options.Replace().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	} else if err != nil {
		return o.fail(err)
	}
	return nil
}

// sortOption turns "field" / "-field" into an ascending / descending sort document
func sortOption(fields ...string) bson.D {
	res := bson.D{}
	for _, f := range fields {
		switch {
		case f == "":
		case strings.HasPrefix(f, "-"):
			res = append(res, bson.E{Key: f[1:], Value: -1})
		default:
			res = append(res, bson.E{Key: f, Value: 1})
		}
	}
	return res
}

func (im *impl) Search(c ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error {
	o := im.begin(c, table, "search", query)
	defer o.done(sortFields...)

	if err := im.explain(o, "find", bson.E{Key: "filter", Value: query}); err != nil {
		return err
	}

	opts := options.Find().SetMaxTime(queryMaxTime).SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if sort := sortOption(sortFields...); len(sort) > 0 {
		opts.SetSort(sort)
	}

	cursor, err := im.coll(table).Find(o.c, query, opts)
	if err != nil {
		return o.fail(err)
	}
	defer cursor.Close(o.c)

	if err := cursor.All(o.c, results); err != nil {
		return o.fail(err)
	}
	return nil
}

func (im *impl) Remove(c ctx.Ctx, table domain.Table, selector interface{}) error {
	o := im.begin(c, table, "remove", selector)
	defer o.done()

	res, err := im.coll(table).DeleteOne(o.c, selector)
	if err != nil {
		return o.fail(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) Patch(c ctx.Ctx, table domain.Table, selector, update interface{}) error {
	o := im.begin(c, table, "patch", selector)
	defer o.done()

	res, err := im.coll(table).UpdateOne(o.c, selector, bson.M{"$set": update})
	if err != nil {
		return o.fail(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) Increment(c ctx.Ctx, table domain.Table, selector, result interface{}, field string, inc interface{}) error {
	o := im.begin(c, table, "increment", selector)
	defer o.done()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true)
	err := im.coll(table).FindOneAndUpdate(o.c, selector, bson.M{"$inc": bson.M{field: inc}}, opts).Decode(result)
	if err != nil {
		return o.fail(err)
	}
	return nil
}

func (im *impl) RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error {
	defer met.BumpTime("time", "func", "transaction").End()

	select {
	case <-c.Done():
		return c.Err()
	case im.txnSlots <- struct{}{}:
	}
	defer func() { <-im.txnSlots }()

	session, err := im.client.StartSession()
	if err != nil {
		c.WithField("err", err).Error("client.StartSession failed")
		return err
	}
	defer session.EndSession(c)

	_, err = session.WithTransaction(c, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, run(ctx.Ctx{Context: sc, Logger: c.Logger})
	})
	if err != nil {
		met.BumpSum("transaction.err", 1)
		return err
	}
	return nil
}

// explain rejects a query the planner would answer with a collection scan.
// The explain command is not allowed inside a transaction so those statements are not checked.
func (im *impl) explain(o *op, command string, filter bson.E) error {
	if !im.checkIndex || mongo.SessionFromContext(o.c) != nil {
		return nil
	}
	// https://docs.mongodb.com/manual/reference/command/explain/
	res := im.client.Database(im.client.DbName).RunCommand(o.c, bson.D{
		{Key: "explain", Value: bson.D{{Key: command, Value: string(o.table)}, filter}},
		{Key: "verbosity", Value: "queryPlanner"},
	})

	var plan bson.M
	if err := res.Decode(&plan); err != nil {
		o.c.WithField("err", err).Warn("explain decode failed")
		met.BumpSum("explain.err", 1)
		return nil
	}

	// the plan layout differs between server versions, only the stage name is stable
	if strings.Contains(fmt.Sprintf("%v", plan), "COLLSCAN") {
		o.c.Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
