// Package bootstrap reads the configuration and assembles the marketplace shared by the api and keeper binaries.
package bootstrap

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/database/mongoclient"
	"github.com/x-xyz/nftmarket/base/database/redisclient"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/metrics"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/auction"
	"github.com/x-xyz/nftmarket/domain/custody"
	"github.com/x-xyz/nftmarket/domain/event"
	hcdomain "github.com/x-xyz/nftmarket/domain/healthcheck"
	"github.com/x-xyz/nftmarket/domain/listing"
	"github.com/x-xyz/nftmarket/domain/pricefeed"
	"github.com/x-xyz/nftmarket/domain/settlement"
	"github.com/x-xyz/nftmarket/service/cache"
	"github.com/x-xyz/nftmarket/service/cache/provider"
	"github.com/x-xyz/nftmarket/service/chain"
	"github.com/x-xyz/nftmarket/service/chainlink"
	"github.com/x-xyz/nftmarket/service/notifier"
	"github.com/x-xyz/nftmarket/service/query"
	"github.com/x-xyz/nftmarket/service/redis"
	"github.com/x-xyz/nftmarket/service/txn"
	auction_repository "github.com/x-xyz/nftmarket/stores/auction/repository"
	auction_usecase "github.com/x-xyz/nftmarket/stores/auction/usecase"
	custody_repository "github.com/x-xyz/nftmarket/stores/custody/repository"
	custody_usecase "github.com/x-xyz/nftmarket/stores/custody/usecase"
	event_repository "github.com/x-xyz/nftmarket/stores/event/repository"
	event_usecase "github.com/x-xyz/nftmarket/stores/event/usecase"
	hc_repo "github.com/x-xyz/nftmarket/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftmarket/stores/healthcheck/usecase"
	listing_repository "github.com/x-xyz/nftmarket/stores/listing/repository"
	listing_usecase "github.com/x-xyz/nftmarket/stores/listing/usecase"
	"github.com/x-xyz/nftmarket/stores/memory"
	pricefeed_repository "github.com/x-xyz/nftmarket/stores/pricefeed/repository"
	pricefeed_usecase "github.com/x-xyz/nftmarket/stores/pricefeed/usecase"
	sequence_repository "github.com/x-xyz/nftmarket/stores/sequence/repository"
	settlement_repository "github.com/x-xyz/nftmarket/stores/settlement/repository"
	settlement_usecase "github.com/x-xyz/nftmarket/stores/settlement/usecase"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"

	cacheSizeMB = 16
)

// LoadConfig parses the command line and reads the yaml config it points at
func LoadConfig() {
	path := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*path)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	viper.SetDefault("storage.mode", StorageMongo)
	viper.SetDefault("cache.provider", cache.ProviderLocal)
	viper.SetDefault("events.channel", "marketplace")
	viper.SetDefault("keeper.interval", time.Minute)

	log.SetDebug(viper.GetBool("debug"))
	if viper.GetBool("debug") {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// Market holds every marketplace usecase wired on one storage backend
type Market struct {
	Custody    custody.UseCase
	Settlement settlement.UseCase
	PriceFeed  pricefeed.UseCase
	Event      event.UseCase
	Listing    listing.UseCase
	Auction    auction.UseCase
	Health     hcdomain.HealthCheckUsecase

	// Cache is the provider behind http response caching
	Cache provider.Provider

	closers []func()
}

// Close releases background workers and connections
func (m *Market) Close() {
	for i := len(m.closers) - 1; i >= 0; i-- {
		m.closers[i]()
	}
}

type repos struct {
	tx         txn.Transactor
	sequence   domain.SequenceRepo
	listings   listing.Repo
	auctions   auction.Repo
	escrow     auction.EscrowRepo
	priceFeeds pricefeed.Repo
	feeConfigs settlement.Repo
	events     event.Repo
	holdings   custody.HoldingRepo
	balances   custody.BalanceRepo
}

// Build connects the configured backends and assembles the marketplace
func Build(c ctx.Ctx) (*Market, error) {
	m := &Market{}

	var redisCache redis.Service
	if uri := viper.GetString("redis.uri"); uri != "" {
		c.Info("init redis")
		pool := redisclient.MustConnect(redisclient.Config{
			Uri:            uri,
			Password:       viper.GetString("redis.password"),
			PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
			Retry:          true,
		})
		redisCache = redis.New("redis", metrics.New("redis"), &redis.Pools{Src: pool})
		m.closers = append(m.closers, func() { pool.Close() })
	}

	cacheProvider, err := cache.NewProvider(viper.GetString("cache.provider"), "nftmarket", cacheSizeMB, redisCache)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "provider": viper.GetString("cache.provider")}).Error("cache.NewProvider failed")
		return nil, err
	}
	m.Cache = cacheProvider

	var (
		r           repos
		mongoClient *mongoclient.Client
	)
	switch mode := viper.GetString("storage.mode"); mode {
	case StorageMongo:
		c.Info("init mongo")
		mongoClient = mongoclient.MustConnect(mongoclient.Config{
			Uri:               viper.GetString("mongo.uri"),
			AuthDBName:        viper.GetString("mongo.authDBName"),
			DbName:            viper.GetString("mongo.dbName"),
			EnableSSL:         viper.GetBool("mongo.enableSSL"),
			PoolMultiplier:    2,
			RequireReplicaSet: true,
		})
		m.closers = append(m.closers, func() { mongoClient.Disconnect(ctx.Background()) })
		if err := ensureIndexes(c, mongoClient); err != nil {
			return nil, err
		}
		r = mongoRepos(query.New(mongoClient, viper.GetBool("mongo.checkIndex")))
	case StorageMemory:
		c.Warn("using in-memory storage, state is lost on exit")
		r = memoryRepos(memory.NewStore())
	default:
		return nil, xerrors.Errorf("unknown storage mode %q", mode)
	}

	chainId := domain.ChainId(viper.GetInt32("chain.chainId"))
	chainClient, err := chain.NewClient(c, &chain.ClientCfg{
		RpcUrls: map[int32]string{int32(chainId): viper.GetString("chain.rpcUrl")},
	})
	if err != nil {
		c.WithField("err", err).Warn("chainClient started with error")
	}
	oracle := chainlink.New(chainClient, cache.New(chainlink.NewCacheConfig(cache.ServiceConfig{Cache: cacheProvider})))

	var publisher event.Publisher
	if redisCache != nil {
		n := notifier.New(&notifier.Cfg{
			Redis:   redisCache,
			Channel: viper.GetString("events.channel"),
			Workers: viper.GetInt("events.workers"),
			Backoff: viper.GetDuration("events.backoff"),
		})
		m.closers = append(m.closers, n.Close)
		publisher = n
	}

	marketplace := domain.Address(viper.GetString("marketplace.address")).ToLower()
	runner := txn.NewRunner(r.tx)
	assets := custody_usecase.NewAssetLedger(r.holdings, nil)
	fungibles := custody_usecase.NewFungibleLedger(r.balances)

	m.Custody = custody_usecase.New(&custody_usecase.CustodyUseCaseCfg{
		Assets:    assets,
		Fungibles: fungibles,
		Runner:    runner,
	})
	m.Settlement = settlement_usecase.New(&settlement_usecase.SettlementUseCaseCfg{
		Repo:               r.feeConfigs,
		Ledger:             fungibles,
		Runner:             runner,
		Marketplace:        marketplace,
		DefaultRecipient:   domain.Address(viper.GetString("marketplace.feeRecipient")),
		DefaultBasisPoints: viper.GetInt64("marketplace.feeBasisPoints"),
	})
	m.PriceFeed = pricefeed_usecase.New(&pricefeed_usecase.PriceFeedUseCaseCfg{
		Repo:           r.priceFeeds,
		Oracle:         oracle,
		Settlement:     m.Settlement,
		Runner:         runner,
		ChainId:        chainId,
		NativeDecimals: viper.GetInt32("marketplace.nativeDecimals"),
		MaxQuoteAge:    viper.GetDuration("marketplace.maxQuoteAge"),
	})
	m.Event = event_usecase.New(&event_usecase.EventUseCaseCfg{
		Repo:      r.events,
		Sequence:  r.sequence,
		Publisher: publisher,
	})
	m.Listing = listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:        r.listings,
		Auctions:    r.auctions,
		Sequence:    r.sequence,
		Assets:      assets,
		PriceFeed:   m.PriceFeed,
		Settlement:  m.Settlement,
		Event:       m.Event,
		Runner:      runner,
		Marketplace: marketplace,
	})
	m.Auction = auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Repo:        r.auctions,
		EscrowRepo:  r.escrow,
		Listings:    r.listings,
		Sequence:    r.sequence,
		Assets:      assets,
		PriceFeed:   m.PriceFeed,
		Settlement:  m.Settlement,
		Event:       m.Event,
		Runner:      runner,
		Marketplace: marketplace,
	})
	m.Health = hc_usecase.New(hc_repo.New(mongoClient, redisCache))

	return m, nil
}

func mongoRepos(q query.Mongo) repos {
	return repos{
		tx:         q,
		sequence:   sequence_repository.New(q),
		listings:   listing_repository.New(q),
		auctions:   auction_repository.New(q),
		escrow:     auction_repository.NewEscrowRepo(q),
		priceFeeds: pricefeed_repository.New(q),
		feeConfigs: settlement_repository.New(q),
		events:     event_repository.New(q),
		holdings:   custody_repository.NewHoldingRepo(q),
		balances:   custody_repository.NewBalanceRepo(q),
	}
}

func memoryRepos(s *memory.Store) repos {
	return repos{
		tx:         s,
		sequence:   s.Sequence(),
		listings:   s.Listings(),
		auctions:   s.Auctions(),
		escrow:     s.Escrow(),
		priceFeeds: s.PriceFeeds(),
		feeConfigs: s.FeeConfigs(),
		events:     s.Events(),
		holdings:   s.Holdings(),
		balances:   s.Balances(),
	}
}

func ensureIndexes(c ctx.Ctx, client *mongoclient.Client) error {
	tables := []struct {
		table  domain.Table
		models []mongo.IndexModel
	}{
		{domain.TableCounters, sequence_repository.Indexes},
		{domain.TableListings, listing_repository.Indexes},
		{domain.TableAuctions, auction_repository.Indexes},
		{domain.TableEscrowEntries, auction_repository.EscrowIndexes},
		{domain.TablePriceFeedBindings, pricefeed_repository.Indexes},
		{domain.TableEvents, event_repository.Indexes},
		{domain.TableAssetHoldings, custody_repository.HoldingIndexes},
		{domain.TableOperatorApprovals, custody_repository.OperatorIndexes},
		{domain.TableBalances, custody_repository.BalanceIndexes},
		{domain.TableAllowances, custody_repository.AllowanceIndexes},
	}
	for _, t := range tables {
		if err := client.EnsureIndexes(c, string(t.table), t.models); err != nil {
			c.WithFields(log.Fields{"err": err, "table": t.table}).Error("client.EnsureIndexes failed")
			return err
		}
	}
	return nil
}
