package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"google.golang.org/api/option"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/database/mongoclient"
	"github.com/arcadia-music/goapi/base/database/redisclient"
	"github.com/arcadia-music/goapi/base/env"
	"github.com/arcadia-music/goapi/base/indexer"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/base/metrics"
	"github.com/arcadia-music/goapi/base/notify"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/keys"
	mmiddleware "github.com/arcadia-music/goapi/middleware"
	"github.com/arcadia-music/goapi/service/cache"
	"github.com/arcadia-music/goapi/service/cache/provider/redis"
	"github.com/arcadia-music/goapi/service/gql"
	"github.com/arcadia-music/goapi/service/query"
	bRedis "github.com/arcadia-music/goapi/service/redis"
	album_repository "github.com/arcadia-music/goapi/stores/album/repository"
	album_usecase "github.com/arcadia-music/goapi/stores/album/usecase"
	indexer_state_repository "github.com/arcadia-music/goapi/stores/indexer_state/repository/mongo"
	indexer_state_usecase "github.com/arcadia-music/goapi/stores/indexer_state/usecase"
	track_repository "github.com/arcadia-music/goapi/stores/track/repository"
	track_usecase "github.com/arcadia-music/goapi/stores/track/usecase"
	waveform_usecase "github.com/arcadia-music/goapi/stores/waveform/usecase"
	webresource_repository "github.com/arcadia-music/goapi/stores/web_resource/repository"
	webresource_usecase "github.com/arcadia-music/goapi/stores/web_resource/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/indexer/config.yaml", "path of the yaml config")
	pflag.Parse()

	if err := env.Load(); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// serve health and metrics for the orchestrator
	startEchoServer()

	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	gatewayTimeout := viper.GetDuration("gateway.timeout")
	storageBucket := viper.GetString("storage.bucket")
	indexerSchedule := viper.GetString("indexer.schedule")
	indexerBatch := viper.GetInt("indexer.batch")
	indexerMaxPages := viper.GetInt("indexer.maxPages")
	indexerWorkers := viper.GetInt("indexer.workers")
	indexerRetryLimit := viper.GetInt("indexer.retryLimit")
	indexerLockTtl := viper.GetDuration("indexer.lockTtl")

	ctx.WithFields(log.Fields{
		"gateway.graphqlUrl": viper.GetString("gateway.graphqlUrl"),
		"gateway.timeout":    gatewayTimeout,
		"storage.bucket":     storageBucket,
		"indexer.schedule":   indexerSchedule,
		"indexer.batch":      indexerBatch,
		"indexer.maxPages":   indexerMaxPages,
		"indexer.workers":    indexerWorkers,
		"indexer.retryLimit": indexerRetryLimit,
		"indexer.lockTtl":    indexerLockTtl,
	}).Info("config")

	ctx.Info("init mongo")
	q := initMongo()

	ctx.Info("init redis")
	redisName := viper.GetString("redis_cache.name")
	redisService := bRedis.New(redisName, metrics.New(redisName), &bRedis.Pools{
		Src: redisclient.MustConnectRedis(redisclient.Config{
			Uri:            viper.GetString("redis_cache.uri"),
			Password:       viper.GetString("redis_cache.password"),
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		}),
	})

	gqlClient := gql.NewClient(&gql.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    gatewayTimeout,
		Url:        viper.GetString("gateway.graphqlUrl"),
		PageSize:   indexerBatch,
		Rps:        viper.GetFloat64("gateway.rps"),
		Burst:      viper.GetInt("gateway.burst"),
		Attempts:   viper.GetInt("gateway.attempts"),
	})

	// repos
	httpClient := http.Client{}
	maxBytes := viper.GetInt64("gateway.maxBytes")
	httpRepo := webresource_repository.NewHttpReaderRepo(httpClient, gatewayTimeout, maxBytes, nil)
	arRepo := webresource_repository.NewArReaderRepo(httpClient, viper.GetString("gateway.dataUrl"), gatewayTimeout, maxBytes, nil)
	var archiveRepo domain.WebResourceWriterRepository
	if len(storageBucket) > 0 {
		storageClient, err := storage.NewClient(ctx, option.WithCredentialsFile(viper.GetString("storage.credentialsFile")))
		if err != nil {
			ctx.WithField("err", err).Panic("storage.NewClient failed")
		}
		archiveRepo, err = webresource_repository.NewCloudStorageWriterRepo(&webresource_repository.CloudStorageWriterRepoCfg{
			Timeout:      viper.GetDuration("storage.timeout"),
			Client:       storageClient,
			BucketName:   storageBucket,
			Url:          viper.GetString("storage.url"),
			CacheControl: "public, max-age=31536000",
		})
		if err != nil {
			ctx.WithField("err", err).Panic("NewCloudStorageWriterRepo failed")
		}
	}
	trackRepo := track_repository.NewTrack(q)
	albumRepo := album_repository.NewAlbum(q)
	indexerStateRepo := indexer_state_repository.NewIndexerStateMongoRepo(q)

	// usecases
	webResource := webresource_usecase.NewWebResourceUseCase(&webresource_usecase.WebResourceUseCaseCfg{
		HttpReader:         httpRepo,
		ArUriReader:        arRepo,
		CloudStorageWriter: archiveRepo,
	})
	track := track_usecase.New(&track_usecase.TrackUseCaseCfg{
		Repo: trackRepo,
		Gql:  gqlClient,
	})
	album := album_usecase.New(&album_usecase.AlbumUseCaseCfg{
		Repo:        albumRepo,
		Gql:         gqlClient,
		WebResource: webResource,
		Track:       track,
	})
	waveform := waveform_usecase.New(&waveform_usecase.WaveformUseCaseCfg{
		WebResource: webResource,
		Track:       track,
		// shared with the api so precomputed waveforms are served from cache
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   bRedis.Forever,
			Pfx:   keys.PfxWaveform,
			Cache: redis.NewRedis(redisService),
		}),
		DefaultPeaks: viper.GetInt("waveform.defaultPeaks"),
		MaxPeaks:     viper.GetInt("waveform.maxPeaks"),
		MaxBytes:     viper.GetInt64("waveform.maxBytes"),
	})
	indexerState := indexer_state_usecase.NewIndexerStateUseCase(indexerStateRepo, viper.GetDuration("mongo.timeout"))

	notifier := notify.Nop()
	if botKey := viper.GetString("discord.botKey"); len(botKey) > 0 {
		var err error
		notifier, err = notify.NewDiscord(notify.DiscordConfig{
			BotKey:    botKey,
			ChannelId: viper.GetString("discord.channelId"),
		})
		if err != nil {
			ctx.WithField("err", err).Panic("notify.NewDiscord failed")
		}
	}

	errCh := make(chan error, 10)
	trackIndexer := indexer.NewTrackIndexer(&indexer.TrackIndexerCfg{
		Gql:          gqlClient,
		WebResource:  webResource,
		Track:        track,
		Album:        album,
		IndexerState: indexerState,
		Waveform:     waveform,
		Redis:        redisService,
		Notifier:     notifier,
		Tag:          viper.GetString("indexer.tag"),
		Schedule:     indexerSchedule,
		PageSize:     indexerBatch,
		MaxPages:     indexerMaxPages,
		Workers:      indexerWorkers,
		RetryLimit:   indexerRetryLimit,
		LockTtl:      indexerLockTtl,
		ViewerUrl:    viper.GetString("discord.viewerUrl"),
		ErrorCh:      errCh,
	})
	if err := trackIndexer.Start(ctx); err != nil {
		ctx.WithField("err", err).Panic("trackIndexer.Start failed")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for err := range errCh {
			ctx.WithField("err", err).Error("indexer error")
		}
	}()

	sig := <-quit
	ctx.WithField("signal", sig).Info("received signal")
	cancel()
	trackIndexer.Wait()
	ctx.Info("indexer stopped")
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		Uri:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		Ssl:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: 2,
	})
	return query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
}
