package indexer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/goroutine"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/base/metrics"
	"github.com/arcadia-music/goapi/base/notify"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/album"
	"github.com/arcadia-music/goapi/domain/keys"
	"github.com/arcadia-music/goapi/domain/track"
	"github.com/arcadia-music/goapi/domain/waveform"
	"github.com/arcadia-music/goapi/service/gql"
	"github.com/arcadia-music/goapi/service/redis"
)

const (
	kindTrack = "track"
	kindAlbum = "album"

	defaultSchedule = "@every 1m"
	defaultLockTtl  = 5 * time.Minute
)

var (
	met     metrics.Service
	metOnce sync.Once
)

type TrackIndexerCfg struct {
	Gql          gql.Client
	WebResource  domain.WebResourceUseCase
	Track        track.Usecase
	Album        album.Usecase
	IndexerState domain.IndexerStateUseCase
	// optional, new tracks get default waveforms when set
	Waveform waveform.Usecase
	// optional, a run is skipped while another instance holds the lock
	Redis redis.Service
	// optional
	Notifier notify.Notifier
	// Tag prefixes the stored cursors, one per kind
	Tag        string
	Schedule   string
	PageSize   int
	MaxPages   int
	Workers    int
	RetryLimit int
	LockTtl    time.Duration
	// ViewerUrl links announced tracks, e.g. https://arcadia.music/track/
	ViewerUrl string
	ErrorCh   chan<- error
}

type TrackIndexer struct {
	gql          gql.Client
	webResource  domain.WebResourceUseCase
	track        track.Usecase
	album        album.Usecase
	indexerState domain.IndexerStateUseCase
	waveform     waveform.Usecase
	redis        redis.Service
	notifier     notify.Notifier

	tag        string
	schedule   string
	pageSize   int
	maxPages   int
	workers    int
	retryLimit int
	lockTtl    time.Duration
	viewerUrl  string

	cron      *cron.Cron
	taskCh    chan domain.TxId
	errorCh   chan<- error
	workerWg  sync.WaitGroup
	stoppedCh chan interface{}
}

func NewTrackIndexer(cfg *TrackIndexerCfg) *TrackIndexer {
	metOnce.Do(func() {
		met = metrics.New("indexer")
	})
	i := &TrackIndexer{
		gql:          cfg.Gql,
		webResource:  cfg.WebResource,
		track:        cfg.Track,
		album:        cfg.Album,
		indexerState: cfg.IndexerState,
		waveform:     cfg.Waveform,
		redis:        cfg.Redis,
		notifier:     cfg.Notifier,

		tag:        cfg.Tag,
		schedule:   cfg.Schedule,
		pageSize:   cfg.PageSize,
		maxPages:   cfg.MaxPages,
		workers:    cfg.Workers,
		retryLimit: cfg.RetryLimit,
		lockTtl:    cfg.LockTtl,
		viewerUrl:  cfg.ViewerUrl,

		errorCh:   cfg.ErrorCh,
		stoppedCh: make(chan interface{}),
	}
	if len(i.tag) == 0 {
		i.tag = domain.DefaultTag
	}
	if len(i.schedule) == 0 {
		i.schedule = defaultSchedule
	}
	if i.pageSize <= 0 || i.pageSize > gql.MaxPageSize {
		i.pageSize = gql.MaxPageSize
	}
	if i.maxPages <= 0 {
		i.maxPages = 10
	}
	if i.workers <= 0 {
		i.workers = 1
	}
	if i.lockTtl <= 0 {
		i.lockTtl = defaultLockTtl
	}
	if i.notifier == nil {
		i.notifier = notify.Nop()
	}
	i.taskCh = make(chan domain.TxId, i.pageSize*i.maxPages)
	return i
}

// Start runs the schedule until ctx is done. Wait blocks until workers drained.
func (i *TrackIndexer) Start(ctx bCtx.Ctx) error {
	i.cron = cron.New(
		cron.WithLogger(cronLogger{ctx.Logger}),
		cron.WithChain(cron.Recover(cronLogger{ctx.Logger}), cron.SkipIfStillRunning(cronLogger{ctx.Logger})),
	)
	if _, err := i.cron.AddFunc(i.schedule, func() {
		if _, err := i.RunOnce(ctx); err != nil && !errors.Is(err, redis.ErrNotSet) {
			ctx.WithField("err", err).Error("RunOnce failed")
			i.reportError(err)
		}
	}); err != nil {
		ctx.WithFields(log.Fields{"schedule": i.schedule, "err": err}).Error("cron.AddFunc failed")
		return err
	}

	for j := 0; j < i.workers; j++ {
		i.workerWg.Add(1)
		go i.work(ctx)
	}

	i.cron.Start()
	go func() {
		<-ctx.Done()
		<-i.cron.Stop().Done()
		close(i.taskCh)
		i.workerWg.Wait()
		close(i.stoppedCh)
	}()
	return nil
}

func (i *TrackIndexer) Wait() {
	<-i.stoppedCh
}

func (i *TrackIndexer) reportError(err error) {
	if i.errorCh == nil {
		return
	}
	select {
	case i.errorCh <- err:
	default:
	}
}

// RunOnce indexes tracks then albums from the stored cursors and returns how
// many items were written. It returns redis.ErrNotSet when another run holds the lock.
func (i *TrackIndexer) RunOnce(c bCtx.Ctx) (int, error) {
	runId := uuid.NewString()
	ctx := bCtx.WithValue(c, "runId", runId)
	defer met.BumpTime("run.time").End()

	if i.redis != nil {
		lockKey := keys.RedisKey(keys.PfxIndexerLock, i.tag)
		if err := i.redis.SetNX(ctx, lockKey, []byte(runId), i.lockTtl); errors.Is(err, redis.ErrNotSet) {
			ctx.Info("another run holds the lock")
			return 0, err
		} else if err != nil {
			ctx.WithField("err", err).Error("redis.SetNX failed")
			return 0, err
		}
		defer func() {
			// the lock may have expired and been taken by the next run
			if deleted, err := i.redis.DelIfEqual(ctx, lockKey, []byte(runId)); err != nil {
				ctx.WithField("err", err).Warn("redis.DelIfEqual failed")
			} else if !deleted {
				ctx.WithField("lockTtl", i.lockTtl).Warn("lock expired before the run ended")
			}
		}()
	}

	tracks, err := i.index(ctx, kindTrack, i.indexTracks, gql.WithTag(domain.TagContentType, track.ContentTypes...))
	if err != nil {
		return tracks, err
	}
	albums, err := i.index(ctx, kindAlbum, i.indexAlbums, gql.WithTag(domain.TagCollectionType, domain.CollectionTypeAlbum))
	return tracks + albums, err
}

type pageHandler func(ctx bCtx.Ctx, txs []*domain.Transaction) (int, error)

// index walks pages ascending from the cursor stored for kind. The cursor only
// moves past mined transactions so pending ones are read again next run.
func (i *TrackIndexer) index(ctx bCtx.Ctx, kind string, handle pageHandler, filter gql.QueryOptionsFunc) (int, error) {
	ctx = bCtx.WithValue(ctx, "kind", kind)
	stateId := &domain.IndexerStateId{Tag: fmt.Sprintf("%s:%s", i.tag, kind)}

	state, err := i.indexerState.Get(ctx, stateId)
	if err != nil {
		ctx.WithField("err", err).Error("indexerState.Get failed")
		return 0, err
	}

	total := 0
	for p := 0; p < i.maxPages; p++ {
		page, err := i.gql.Transactions(ctx,
			filter,
			gql.WithFirst(i.pageSize),
			gql.WithAfter(state.Cursor),
			gql.WithSort(gql.SortHeightAsc),
			gql.WithoutCache(),
		)
		if err != nil {
			ctx.WithFields(log.Fields{"cursor": state.Cursor, "err": err}).Error("gql.Transactions failed")
			return total, err
		}

		mined := []*domain.Transaction{}
		reachedPending := false
		for _, e := range page.Edges {
			if e.Node == nil || e.Node.Height == 0 {
				reachedPending = true
				break
			}
			mined = append(mined, e.Node)
			state.Cursor = e.Cursor
			state.LastHeight = e.Node.Height
		}
		if len(mined) == 0 {
			break
		}

		n, err := handle(ctx, mined)
		if err != nil {
			return total, err
		}
		total += n
		metrics.ObserveIndexed(kind, n)

		if err := i.indexerState.Update(ctx, state); err != nil {
			ctx.WithField("err", err).Error("indexerState.Update failed")
			return total, err
		}

		ctx.WithFields(log.Fields{
			"#items":     n,
			"cursor":     state.Cursor,
			"lastHeight": state.LastHeight,
		}).Info("page indexed")

		if reachedPending || !page.HasNextPage {
			break
		}
	}
	return total, nil
}

func (i *TrackIndexer) indexTracks(ctx bCtx.Ctx, txs []*domain.Transaction) (int, error) {
	tracks := make([]*track.Track, 0, len(txs))
	for _, tx := range txs {
		t, err := track.FromTransaction(tx)
		if err != nil {
			continue
		}
		tracks = append(tracks, t)
	}
	if len(tracks) == 0 {
		return 0, nil
	}
	if err := i.track.UpsertMany(ctx, tracks); err != nil {
		ctx.WithFields(log.Fields{"#tracks": len(tracks), "err": err}).Error("track.UpsertMany failed")
		return 0, err
	}

	for _, t := range tracks {
		if i.waveform != nil {
			select {
			case i.taskCh <- t.Id:
			default:
				ctx.WithField("id", t.Id).Warn("waveform queue full")
			}
		}

		if err := i.notifier.Notify(ctx, i.announce(t)); err != nil {
			ctx.WithFields(log.Fields{"id": t.Id, "err": err}).Warn("notifier.Notify failed")
		}
	}
	return len(tracks), nil
}

func (i *TrackIndexer) announce(t *track.Track) *notify.Message {
	creator := t.CreatorName
	if len(creator) == 0 {
		creator = t.Creator.String()
	}
	msg := &notify.Message{
		Title: fmt.Sprintf("New track: %s", t.Title),
		Fields: []notify.Field{
			{Name: "Creator", Value: creator},
			{Name: "Genre", Value: t.Genre},
		},
	}
	if len(i.viewerUrl) > 0 {
		msg.Url = i.viewerUrl + t.Id.String()
	}
	if !t.Thumbnail.IsEmpty() {
		msg.ImageUrl = "https://arweave.net/" + t.Thumbnail.String()
	}
	return msg
}

func (i *TrackIndexer) indexAlbums(ctx bCtx.Ctx, txs []*domain.Transaction) (int, error) {
	n := 0
	for _, tx := range txs {
		var data *album.Data
		raw, err := i.webResource.GetJson(ctx, tx.Id.String())
		switch {
		case errors.Is(err, domain.ErrInvalidJsonFormat):
			// never parses, the album is stored without tracks
			ctx.WithFields(log.Fields{"id": tx.Id, "err": err}).Warn("webResource.GetJson failed")
		case err != nil:
			// unseeded or unreachable data is read again from the same cursor next run
			ctx.WithFields(log.Fields{"id": tx.Id, "err": err}).Error("webResource.GetJson failed")
			return n, err
		default:
			if data, err = album.ParseData(raw); err != nil {
				ctx.WithFields(log.Fields{"id": tx.Id, "err": err}).Warn("album.ParseData failed")
			}
		}

		a, err := album.FromTransaction(tx, data)
		if err != nil {
			continue
		}
		if err := i.album.Upsert(ctx, a); err != nil {
			ctx.WithFields(log.Fields{"id": a.Id, "err": err}).Error("album.Upsert failed")
			return n, err
		}
		n++
	}
	return n, nil
}

func (i *TrackIndexer) work(ctx bCtx.Ctx) {
	defer i.workerWg.Done()
	for id := range i.taskCh {
		if ctx.Err() != nil {
			continue
		}
		i.precompute(ctx, id)
	}
}

// precompute builds the default waveform of a track, retrying up to retryLimit.
// A panic fails the attempt instead of the worker.
func (i *TrackIndexer) precompute(ctx bCtx.Ctx, id domain.TxId) {
	ctx = bCtx.WithValue(ctx, "trackId", id)
	for attempt := 0; attempt <= i.retryLimit; attempt++ {
		var err error
		panicCh := goroutine.RecoverableGo(func() {
			_, err = i.waveform.GetWaveform(ctx, id, 0)
		}, goroutine.WithLogger(ctx.Logger))
		if p := <-panicCh; p != nil {
			err = fmt.Errorf("panic: %v", p.Panic)
		}

		if err == nil {
			met.BumpSum("waveform.done", 1)
			return
		}
		if errors.Is(err, domain.ErrUnsupportedAudio) ||
			errors.Is(err, domain.ErrNotFound) ||
			errors.Is(err, domain.ErrNotTrack) ||
			errors.Is(err, domain.ErrTooLarge) {
			ctx.WithField("err", err).Info("waveform skipped")
			return
		}
		ctx.WithFields(log.Fields{"attempt": attempt, "err": err}).Warn("waveform.GetWaveform failed")
	}
	met.BumpSum("waveform.failed", 1)
	ctx.WithField("retryLimit", i.retryLimit).Error("waveform retries exhausted")
}

type cronLogger struct {
	log.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.WithFields(pairs(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.Logger.WithFields(pairs(keysAndValues)).WithField("err", err).Error(msg)
}

func pairs(keysAndValues []interface{}) log.Fields {
	fields := log.Fields{}
	for j := 0; j+1 < len(keysAndValues); j += 2 {
		fields[fmt.Sprint(keysAndValues[j])] = keysAndValues[j+1]
	}
	return fields
}
