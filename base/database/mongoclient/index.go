package mongoclient

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/x-xyz/nftmarket/base/log"
)

// EnsureIndexes creates models on table, existing identical indexes are kept
func (c *Client) EnsureIndexes(ctx context.Context, table string, models []mongo.IndexModel) error {
	if len(models) == 0 {
		return nil
	}
	names, err := c.Database(c.DbName).Collection(table).Indexes().CreateMany(ctx, models)
	if err != nil {
		log.Log().WithFields(log.Fields{"table": table, "err": err}).Error("CreateMany indexes failed")
		return err
	}
	log.Log().WithFields(log.Fields{"table": table, "indexes": names}).Info("indexes ensured")
	return nil
}
