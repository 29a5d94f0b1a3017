package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"google.golang.org/api/option"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/database/mongoclient"
	"github.com/arcadia-music/goapi/base/database/redisclient"
	"github.com/arcadia-music/goapi/base/env"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/base/metrics"
	bValidator "github.com/arcadia-music/goapi/base/validator"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/keys"
	mmiddleware "github.com/arcadia-music/goapi/middleware"
	"github.com/arcadia-music/goapi/service/cache"
	compoundCache "github.com/arcadia-music/goapi/service/cache/compoundCache"
	"github.com/arcadia-music/goapi/service/cache/provider/primitive"
	redisProvider "github.com/arcadia-music/goapi/service/cache/provider/redis"
	"github.com/arcadia-music/goapi/service/dre"
	"github.com/arcadia-music/goapi/service/gql"
	"github.com/arcadia-music/goapi/service/query"
	"github.com/arcadia-music/goapi/service/redis"
	album_delivery "github.com/arcadia-music/goapi/stores/album/delivery/http"
	album_repository "github.com/arcadia-music/goapi/stores/album/repository"
	album_usecase "github.com/arcadia-music/goapi/stores/album/usecase"
	asset_delivery "github.com/arcadia-music/goapi/stores/asset/delivery/http"
	asset_usecase "github.com/arcadia-music/goapi/stores/asset/usecase"
	hc_delivery "github.com/arcadia-music/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/arcadia-music/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/arcadia-music/goapi/stores/healthcheck/usecase"
	profile_delivery "github.com/arcadia-music/goapi/stores/profile/delivery/http"
	profile_usecase "github.com/arcadia-music/goapi/stores/profile/usecase"
	search_delivery "github.com/arcadia-music/goapi/stores/search/delivery/http"
	search_usecase "github.com/arcadia-music/goapi/stores/search/usecase"
	track_delivery "github.com/arcadia-music/goapi/stores/track/delivery/http"
	track_repository "github.com/arcadia-music/goapi/stores/track/repository"
	track_usecase "github.com/arcadia-music/goapi/stores/track/usecase"
	ucm_delivery "github.com/arcadia-music/goapi/stores/ucm/delivery/http"
	ucm_usecase "github.com/arcadia-music/goapi/stores/ucm/usecase"
	waveform_delivery "github.com/arcadia-music/goapi/stores/waveform/delivery/http"
	waveform_usecase "github.com/arcadia-music/goapi/stores/waveform/usecase"
	webresource_repository "github.com/arcadia-music/goapi/stores/web_resource/repository"
	webresource_usecase "github.com/arcadia-music/goapi/stores/web_resource/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/arcadia-music/goapi/app/api/docs"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
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

//	@title			Arcadia API
//	@version		1.0
//	@description	Tracks, albums, profiles and the UCM order book of Arcadia.

// main
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		Uri:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		Ssl:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: 2,
	})
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnectRedis(redisclient.Config{
		Uri:            viper.GetString("redis_cache.uri"),
		Password:       viper.GetString("redis_cache.password"),
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	localSizeMb := viper.GetInt("cache.localSizeMb")
	mmiddleware.SetupCache(redisCache, localSizeMb)

	cacheTtl := viper.GetDuration("cache.ttl")
	newCache := func(pfx string, ttl time.Duration) cache.Service {
		return compoundCache.NewCompoundCache([]cache.Service{
			cache.New(cache.ServiceConfig{
				Ttl:   ttl,
				Pfx:   pfx,
				Cache: primitive.NewPrimitive(pfx, localSizeMb),
			}),
			cache.New(cache.ServiceConfig{
				Ttl:   ttl,
				Pfx:   pfx,
				Cache: redisProvider.NewRedis(redisCache),
			}),
		})
	}

	gatewayTimeout := viper.GetDuration("gateway.timeout")
	gqlClient := gql.NewClient(&gql.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    gatewayTimeout,
		Url:        viper.GetString("gateway.graphqlUrl"),
		PageSize:   viper.GetInt("gateway.pageSize"),
		Rps:        viper.GetFloat64("gateway.rps"),
		Burst:      viper.GetInt("gateway.burst"),
		Attempts:   viper.GetInt("gateway.attempts"),
		Cache:      newCache(keys.PfxGql, cacheTtl),
	})
	dreClient := dre.NewClient(&dre.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("dre.timeout"),
		Url:        viper.GetString("dre.url"),
		Rps:        viper.GetFloat64("dre.rps"),
		Burst:      viper.GetInt("dre.burst"),
		Attempts:   viper.GetInt("dre.attempts"),
		Cache:      newCache(keys.PfxDre, viper.GetDuration("dre.cacheTtl")),
	})

	// repos
	httpClient := http.Client{}
	maxBytes := viper.GetInt64("gateway.maxBytes")
	httpRepo := webresource_repository.NewHttpReaderRepo(httpClient, gatewayTimeout, maxBytes, nil)
	arRepo := webresource_repository.NewArReaderRepo(httpClient, viper.GetString("gateway.dataUrl"), gatewayTimeout, maxBytes, nil)
	var archiveRepo domain.WebResourceWriterRepository
	if bucket := viper.GetString("storage.bucket"); len(bucket) > 0 {
		storageClient, err := storage.NewClient(context, option.WithCredentialsFile(viper.GetString("storage.credentialsFile")))
		if err != nil {
			context.WithField("err", err).Panic("storage.NewClient failed")
		}
		archiveRepo, err = webresource_repository.NewCloudStorageWriterRepo(&webresource_repository.CloudStorageWriterRepoCfg{
			Timeout:      viper.GetDuration("storage.timeout"),
			Client:       storageClient,
			BucketName:   bucket,
			Url:          viper.GetString("storage.url"),
			CacheControl: "public, max-age=31536000",
		})
		if err != nil {
			context.WithField("err", err).Panic("NewCloudStorageWriterRepo failed")
		}
	}
	hcRepo := hc_repo.New(mongoClient, redisCache)
	trackRepo := track_repository.NewTrack(q)
	albumRepo := album_repository.NewAlbum(q)

	// usecases
	webResource := webresource_usecase.NewWebResourceUseCase(&webresource_usecase.WebResourceUseCaseCfg{
		HttpReader:         httpRepo,
		ArUriReader:        arRepo,
		CloudStorageWriter: archiveRepo,
	})
	hc := hc_usecase.New(hcRepo, gqlClient, dreClient)
	profile := profile_usecase.New(&profile_usecase.ProfileUseCaseCfg{
		Gql:         gqlClient,
		WebResource: webResource,
		Cache:       newCache(keys.PfxProfile, cacheTtl),
	})
	ucmContractId := domain.ContractId(viper.GetString("ucm.contractId"))
	asset := asset_usecase.New(&asset_usecase.AssetUseCaseCfg{
		Dre:         dreClient,
		Marketplace: domain.Address(ucmContractId),
		Profile:     profile,
	})
	ucm := ucm_usecase.New(&ucm_usecase.UcmUseCaseCfg{
		Dre:        dreClient,
		ContractId: ucmContractId,
		Asset:      asset,
		Decimals:   viper.GetInt32("ucm.currencyDecimals"),
	})
	track := track_usecase.New(&track_usecase.TrackUseCaseCfg{
		Repo:    trackRepo,
		Gql:     gqlClient,
		Asset:   asset,
		Ucm:     ucm,
		Profile: profile,
	})
	album := album_usecase.New(&album_usecase.AlbumUseCaseCfg{
		Repo:        albumRepo,
		Gql:         gqlClient,
		WebResource: webResource,
		Track:       track,
	})
	waveform := waveform_usecase.New(&waveform_usecase.WaveformUseCaseCfg{
		WebResource:  webResource,
		Track:        track,
		Cache:        newCache(keys.PfxWaveform, redis.Forever),
		DefaultPeaks: viper.GetInt("waveform.defaultPeaks"),
		MaxPeaks:     viper.GetInt("waveform.maxPeaks"),
		MaxBytes:     viper.GetInt64("waveform.maxBytes"),
	})
	search := search_usecase.New(&search_usecase.SearchUseCaseCfg{
		Track: track,
		Album: album,
	})

	hc_delivery.New(e, hc)
	track_delivery.New(e, track)
	album_delivery.New(e, album)
	profile_delivery.New(e, profile)
	asset_delivery.New(e, asset)
	ucm_delivery.New(e, ucm)
	waveform_delivery.New(e, waveform)
	search_delivery.New(e, search)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
