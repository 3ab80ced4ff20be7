package bootstrap

import (
	"context"

	"company-profile-be/internal/config"
	"company-profile-be/internal/controller"
	"company-profile-be/internal/dto"
	"company-profile-be/internal/handler"
	"company-profile-be/internal/mapper"
	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/logger"
	"company-profile-be/internal/pkg/mailer"
	"company-profile-be/internal/pkg/storage"
	"company-profile-be/internal/repository/memory"
	"company-profile-be/internal/repository/unitofwork"
	"company-profile-be/internal/resource"
	"company-profile-be/internal/service"
	"company-profile-be/internal/websocket"
	"company-profile-be/pkg/cache"
	pktNats "company-profile-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type Container struct {
	Config *config.Config
	Logger logger.ILogger

	// Controllers
	ResourceControllers []controller.IResourceController
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	NotificationHandler *handler.NotificationHandler

	// Services
	AuthService         service.IAuthService
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService
	MaintenanceService  *service.MaintenanceService

	WebSocketHub *websocket.Hub

	pubSub    *gochannel.GoChannel
	natsPub   *pktNats.Publisher
	natsSub   *pktNats.Subscriber
	cache     cache.Engine
	scheduler *cron.Cron
	cancel    context.CancelFunc
}

// NewContainer wires every dependency. A nil db selects the in-memory store.
// NATS and Redis are optional: without them events stay in process and the
// websocket hub serves this instance only.
func NewContainer(ctx context.Context, cfg *config.Config, db *gorm.DB, sysLogger logger.ILogger) (*Container, error) {
	// 1. Core Facades
	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	} else {
		sysLogger.Warn("Bootstrap", "Using in-memory store; data is lost on restart", nil)
		uowFactory = unitofwork.NewMemoryRepositoryFactory(memory.NewDatabase())
	}

	fileStorage, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// 2. Infrastructure
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
			rdb.Close()
			rdb = nil
		}
	}

	var engine cache.Engine = cache.NewLocalEngine(cfg.Cache.TTL)
	if cfg.Cache.Driver == "redis" {
		if rdb == nil {
			return nil, errors.New("CACHE_DRIVER=redis requires a reachable REDIS_URL")
		}
		engine = cache.NewRedisEngine(rdb, "company-profile:")
	}

	var natsPub *pktNats.Publisher
	var natsSub *pktNats.Subscriber
	if cfg.App.NatsURL != "" {
		if natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS publisher", map[string]interface{}{"error": err.Error()})
			natsPub = nil
		}
		if natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS subscriber", map[string]interface{}{"error": err.Error()})
			natsSub = nil
		}
	}

	// 3. Event Bus
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, watermill.NewStdLogger(false, false))
	publisherService := service.NewPublisherService(service.ContentTopic, pubSub)

	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Email, cfg.SMTP.Password, cfg.SMTP.SenderName)
	}

	// Events reach the notifier through NATS only when both ends are connected.
	var forwarder service.EventForwarder
	var notifySub *pktNats.Subscriber
	if natsPub != nil && natsSub != nil {
		forwarder = natsPub
		notifySub = natsSub
	}
	notifService := service.NewNotificationService(notifySub, wsHub, emailService, cfg.SMTP.NotificationEmail, wsLogger)
	consumerService := service.NewConsumerService(pubSub, service.ContentTopic, forwarder, notifService, sysLogger)

	// 4. Services
	deps := service.ResourceServiceDeps{
		Factory:   uowFactory,
		Cache:     engine,
		CacheTTL:  cfg.Cache.TTL,
		Publisher: publisherService,
		Logger:    sysLogger,
	}
	if fileStorage != nil {
		deps.Storage = fileStorage
	}

	companyService := service.NewResourceService[model.Company](resource.Company, deps)
	productService := service.NewResourceService[model.Product](resource.Products, deps)
	serviceService := service.NewResourceService[model.Service](resource.Services, deps)
	partnerService := service.NewResourceService[model.Partner](resource.Partners, deps)
	clientService := service.NewResourceService[model.Client](resource.Clients, deps)
	newsService := service.NewResourceService[model.News](resource.News, deps)
	eventService := service.NewResourceService[model.Event](resource.Events, deps)
	careerService := service.NewResourceService[model.Career](resource.Careers, deps)
	valueService := service.NewResourceService[model.Value](resource.Values, deps)
	contactService := service.NewResourceService[model.Contact](resource.Contacts, deps)

	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret, cfg.Auth.TokenTTL, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger)
	maintenance := service.NewMaintenanceService(uowFactory, careerService, eventService, sysLogger)

	// 5. Controllers
	return &Container{
		Config: cfg,
		Logger: sysLogger,

		ResourceControllers: []controller.IResourceController{
			controller.NewResourceController[model.Company, dto.CreateCompanyRequest, dto.UpdateCompanyRequest](companyService, mapper.NewCompanyMapper()),
			controller.NewResourceController[model.Product, dto.CreateProductRequest, dto.UpdateProductRequest](productService, mapper.NewProductMapper()),
			controller.NewResourceController[model.Service, dto.CreateServiceRequest, dto.UpdateServiceRequest](serviceService, mapper.NewServiceMapper()),
			controller.NewResourceController[model.Partner, dto.CreatePartnerRequest, dto.UpdatePartnerRequest](partnerService, mapper.NewPartnerMapper()),
			controller.NewResourceController[model.Client, dto.CreateClientRequest, dto.UpdateClientRequest](clientService, mapper.NewClientMapper()),
			controller.NewResourceController[model.News, dto.CreateNewsRequest, dto.UpdateNewsRequest](newsService, mapper.NewNewsMapper()),
			controller.NewResourceController[model.Event, dto.CreateEventRequest, dto.UpdateEventRequest](eventService, mapper.NewEventMapper()),
			controller.NewResourceController[model.Career, dto.CreateCareerRequest, dto.UpdateCareerRequest](careerService, mapper.NewCareerMapper()),
			controller.NewResourceController[model.Value, dto.CreateValueRequest, dto.UpdateValueRequest](valueService, mapper.NewValueMapper()),
			controller.NewResourceController[model.Contact, dto.CreateContactRequest, dto.UpdateContactRequest](contactService, mapper.NewContactMapper()),
		},
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		NotificationHandler: handler.NewNotificationHandler(wsHub, cfg.Auth.JwtSecret, wsLogger),

		AuthService:         authService,
		ConsumerService:     consumerService,
		NotificationService: notifService,
		MaintenanceService:  maintenance,

		WebSocketHub: wsHub,

		pubSub:  pubSub,
		natsPub: natsPub,
		natsSub: natsSub,
		cache:   engine,
	}, nil
}

func newStorage(ctx context.Context, cfg *config.Config) (*storage.ImageStorage, error) {
	opts := storage.Options{MaxSizeBytes: cfg.Upload.MaxSizeBytes, MaxImageWidth: cfg.Upload.MaxImageWidth}
	switch cfg.Upload.Driver {
	case "local", "":
		return storage.New(storage.NewLocalBackend(cfg.Upload.Dir, cfg.Upload.PublicPrefix), opts), nil
	case "s3":
		backend, err := storage.NewS3Backend(ctx, cfg.S3)
		if err != nil {
			return nil, errors.Wrap(err, "configure s3 storage")
		}
		return storage.New(backend, opts), nil
	case "none":
		return nil, nil
	default:
		return nil, errors.Errorf("unknown UPLOAD_DRIVER %q", cfg.Upload.Driver)
	}
}

// Start runs the background workers: websocket hub, event consumer, NATS
// notifier and, when enabled, the maintenance scheduler.
func (c *Container) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go c.WebSocketHub.Run(ctx)

	if err := c.ConsumerService.Consume(ctx); err != nil {
		return errors.Wrap(err, "start consumer")
	}
	if err := c.NotificationService.Start(); err != nil {
		return errors.Wrap(err, "start notifier")
	}

	if c.Config.Scheduler.Enabled {
		scheduler, err := c.MaintenanceService.Start(c.Config.Scheduler.Spec)
		if err != nil {
			return errors.Wrap(err, "start scheduler")
		}
		c.scheduler = scheduler
	}
	return nil
}

func (c *Container) Close() {
	if c.scheduler != nil {
		<-c.scheduler.Stop().Done()
	}
	if c.cancel != nil {
		c.cancel()
	}
	if err := c.pubSub.Close(); err != nil {
		c.Logger.Warn("Bootstrap", "Failed to close event bus", map[string]interface{}{"error": err.Error()})
	}
	if c.natsSub != nil {
		c.natsSub.Close()
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	c.cache.Close()
}
