package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/log"
)

const (
	socketTimeout  = 60 * time.Second
	connectTimeout = 10 * time.Second
)

// ErrNoReplicaSet is returned when the server cannot run multi-document transactions
var ErrNoReplicaSet = xerrors.New("mongo is not a replica set member")

// Client wraps mongo.Client bound to one database
type Client struct {
	DbName string
	*mongo.Client
}

type Config struct {
	Uri        string
	AuthDBName string
	DbName     string
	EnableSSL  bool
	// PoolMultiplier sizes the pool as NumCPU * PoolMultiplier, split across hosts
	PoolMultiplier float64
	// RequireReplicaSet rejects standalone servers, marketplace calls run in transactions
	RequireReplicaSet bool
}

// MustConnect panics when Connect fails
func MustConnect(cfg Config) *Client {
	cli, err := Connect(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"db": cfg.DbName, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

func Connect(cfg Config) (*Client, error) {
	cs, err := connstring.Parse(cfg.Uri)
	if err != nil {
		log.Log().WithFields(log.Fields{"db": cfg.DbName, "err": err}).Error("connstring.Parse failed")
		return nil, err
	}
	logger := log.Log().WithFields(log.Fields{"mongoHosts": cs.Hosts, "db": cfg.DbName})

	opts := options.Client().
		ApplyURI(cfg.Uri).
		SetSocketTimeout(socketTimeout).
		// transactions need majority acknowledged writes to be rolled back reliably
		SetWriteConcern(writeconcern.New(writeconcern.WMajority())).
		SetRetryWrites(true)

	if cs.Username != "" && cs.AuthSource == "" {
		opts.SetAuth(options.Credential{
			AuthMechanism:           cs.AuthMechanism,
			AuthMechanismProperties: cs.AuthMechanismProperties,
			Username:                cs.Username,
			Password:                cs.Password,
			PasswordSet:             cs.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}
	if cfg.EnableSSL {
		opts.SetTLSConfig(&tls.Config{})
	}
	if size := poolSize(cfg.PoolMultiplier, len(cs.Hosts)); size > 0 {
		opts.SetMinPoolSize(size / 4).SetMaxPoolSize(size)
		logger.WithField("poolSize", size).Info("mongo driver pool size")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.WithField("err", err).Error("mongo.Connect failed")
		return nil, err
	}

	// an unknown database name fails here rather than on the first query
	if _, err := client.Database(cfg.DbName).ListCollectionNames(ctx, bson.D{}); err != nil {
		logger.WithField("err", err).Error("ListCollectionNames failed")
		return nil, err
	}

	if cfg.RequireReplicaSet {
		var hello struct {
			SetName string `bson:"setName"`
		}
		if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "isMaster", Value: 1}}).Decode(&hello); err != nil {
			logger.WithField("err", err).Error("isMaster failed")
			return nil, err
		} else if hello.SetName == "" {
			return nil, ErrNoReplicaSet
		}
	}

	logger.Info("mongo connected")
	return &Client{Client: client, DbName: cfg.DbName}, nil
}

// poolSize is the per host pool size, 0 keeps the driver default
func poolSize(multiplier float64, hosts int) uint64 {
	if multiplier <= 0 || hosts == 0 {
		return 0
	}
	total := uint64(float64(runtime.NumCPU()) * multiplier)
	return (total + uint64(hosts) - 1) / uint64(hosts)
}
