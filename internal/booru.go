package internal

import (
	"context"
	"fmt"
	"sync"

	"github.com/Cyber-Creek/danbooru/internal/api"
	"github.com/Cyber-Creek/danbooru/internal/database"
	"github.com/Cyber-Creek/danbooru/internal/event"
	"github.com/Cyber-Creek/danbooru/internal/http/pixiv"
	"github.com/Cyber-Creek/danbooru/internal/http/twitter"
	"github.com/Cyber-Creek/danbooru/internal/post"
	"github.com/Cyber-Creek/danbooru/internal/sources"
	"github.com/Cyber-Creek/danbooru/internal/upload"
	"github.com/Cyber-Creek/danbooru/pkg/logger"
	"github.com/google/uuid"
)

var log = logger.Get("Core")

type RunnableService interface {
	Run(context.Context) error
}

// booruImpl represents the top-level object for the server, and is
// responsible for initialising stores, services, the event bus and the
// REST gateway, and wiring them together.
type booruImpl struct {
	eventBus event.EventCoordinator
	config   BooruConfig

	db          database.Manager
	uploadStore *upload.Store
	postStore   *post.Store
	registry    *sources.Registry

	uploadService upload.Service
	restGateway   *api.RestGateway
}

func New(config BooruConfig) (*booruImpl, error) {
	log.Emit(logger.DEBUG, "Bootstrapping services using config: %#v\n", config)
	booru := &booruImpl{
		eventBus:    event.New(),
		config:      config,
		db:          database.New(),
		uploadStore: upload.NewStore(),
		postStore:   post.NewStore(),
	}

	booru.registry = sources.NewRegistry(
		twitter.NewClient(twitter.Config{BearerToken: config.TwitterBearerToken}),
		pixiv.NewClient(pixiv.Config{SessionCookie: config.PixivSessionCookie}),
	)

	materializer := post.NewMaterializer(booru.registry, booru.postStore)
	acquirer := upload.NewFileAcquirer(config.Upload.DownloadDir, config.Upload.DownloadTimeoutDuration())

	serv, err := upload.New(
		config.Upload,
		booru.db,
		booru.uploadStore,
		acquirer,
		materializer,
		booru.registry,
		upload.NewTimerScheduler(),
		booru.eventBus,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct upload service: %w", err)
	}

	booru.uploadService = serv
	booru.restGateway = api.NewRestGateway(&config.Rest, serv)
	booru.registerEventLogging()

	return booru, nil
}

// Run will start the server by bringing up all required services and
// connections. This function will not return until the server is
// stopped; to stop it, the provided context must be cancelled. Errors
// from which the server cannot recover will also cause it to stop.
func (booru *booruImpl) Run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	crashHandler := func(label string, err error) {
		log.Emit(logger.FATAL, "Service crash (%s)! %s\n", label, err.Error())
		cancel()
	}

	log.Emit(logger.NEW, "Connecting to database...\n")
	if err := booru.db.Connect(booru.config.Database); err != nil {
		return err
	}

	wg := &sync.WaitGroup{}
	booru.spawnAsyncService(ctx, wg, booru.uploadService, "upload-service", crashHandler)
	booru.spawnAsyncService(ctx, wg, booru.restGateway, "rest-gateway", crashHandler)
	log.Emit(logger.SUCCESS, "Services spawned!\n")

	wg.Wait()
	return nil
}

// spawnAsyncService will run the provided function/service as its own
// go-routine, ensuring that the service waitgroup is updated correctly.
func (booru *booruImpl) spawnAsyncService(context context.Context, wg *sync.WaitGroup, service RunnableService, serviceLabel string, crashHandler func(string, error)) {
	log.Emit(logger.NEW, "Spawning %s\n", serviceLabel)
	wg.Add(1)

	go func(wg *sync.WaitGroup, label string, crash func(string, error)) {
		defer func() {
			if r := recover(); r != nil {
				crash(label, fmt.Errorf("panic %v", r))
			}
		}()

		defer wg.Done()
		if err := service.Run(context); err != nil {
			crash(label, err)
		}
	}(wg, serviceLabel, crashHandler)
}

// registerEventLogging attaches observers to the upload lifecycle
// events so every transition leaves a trace in the server log.
func (booru *booruImpl) registerEventLogging() {
	booru.eventBus.RegisterAsyncHandlerFunction(event.UPLOAD_UPDATE, func(ev event.Event, payload event.Payload) {
		log.Emit(logger.DEBUG, "Upload %s progressed\n", payload.(uuid.UUID))
	})
	booru.eventBus.RegisterAsyncHandlerFunction(event.UPLOAD_COMPLETE, func(ev event.Event, payload event.Payload) {
		log.Emit(logger.INFO, "Upload %s completed\n", payload.(uuid.UUID))
	})
	booru.eventBus.RegisterAsyncHandlerFunction(event.POST_CREATED, func(ev event.Event, payload event.Payload) {
		log.Emit(logger.INFO, "Post %d created\n", payload.(int64))
	})
}
