package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/mwangie/CareToCrown/internal/audit"
	"github.com/mwangie/CareToCrown/internal/config"
	"github.com/mwangie/CareToCrown/internal/credentials"
	"github.com/mwangie/CareToCrown/internal/handlers"
	"github.com/mwangie/CareToCrown/internal/infra/googlecal"
	infraRepo "github.com/mwangie/CareToCrown/internal/infra/repository"
	"github.com/mwangie/CareToCrown/internal/middleware"
	"github.com/mwangie/CareToCrown/internal/models"
	"github.com/mwangie/CareToCrown/internal/notify"
	"github.com/mwangie/CareToCrown/internal/storage"
	ucBooking "github.com/mwangie/CareToCrown/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	providerRepo := infraRepo.NewProviderGormRepository(db)
	prescriptionRepo := infraRepo.NewPrescriptionGormRepository(db)

	credStore := credentials.NewRedisStore(rdb)

	oauth := googlecal.NewOAuth(cfg)
	calendarSvc := googlecal.NewService(oauth, credStore)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// Outbound channels fall back to log-only stubs when the
	// credentials are not configured.
	// ------------------------------
	var whatsapp notify.WhatsAppSender
	if s := notify.NewTwilioWhatsAppSender(notify.TwilioConfig{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		From:       cfg.WhatsAppFrom,
	}); s != nil {
		whatsapp = s
	} else {
		log.Println("routes: twilio not configured, whatsapp messages go to the log")
		whatsapp = notify.StubWhatsAppSender{}
	}

	var email notify.EmailSender
	if s := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.EmailFrom,
		FromName:  cfg.EmailFromName,
	}); s != nil {
		email = s
	} else {
		log.Println("routes: sendgrid not configured, emails go to the log")
		email = notify.StubEmailSender{}
	}

	notifier := notify.NewService(whatsapp, email)

	var files storage.FileStore
	if cfg.S3Bucket != "" {
		files = storage.NewS3FileStore(cfg)
	} else {
		files = storage.NewLocalFileStore(cfg.UploadDir)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	authenticateUC := ucBooking.NewAuthenticate(oauth)
	completeAuthUC := ucBooking.NewCompleteAuth(oauth, credStore)

	listEventsUC := ucBooking.NewListEvents(credStore, calendarSvc)

	bookUC := ucBooking.NewBook(
		providerRepo,
		credStore,
		calendarSvc,
		notifier,
		auditDispatcher,
	)

	blockUC := ucBooking.NewBlockSlot(credStore, calendarSvc, auditDispatcher)
	allowUC := ucBooking.NewAllowSlot(credStore, calendarSvc, auditDispatcher)

	notifyTransporterUC := ucBooking.NewNotifyTransporter(
		providerRepo,
		notifier,
		auditDispatcher,
		cfg.DefaultTransporterID,
	)

	uploadPrescriptionUC := ucBooking.NewUploadPrescription(
		providerRepo,
		prescriptionRepo,
		files,
		notifier,
		auditDispatcher,
	)

	markReadyUC := ucBooking.NewMarkReady(
		providerRepo,
		prescriptionRepo,
		notifier,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(providerRepo, cfg)
	meHandler := handlers.NewMeHandler(providerRepo)
	providerHandler := handlers.NewProviderHandler(providerRepo)

	calendarHandler := handlers.NewCalendarHandler(
		authenticateUC,
		completeAuthUC,
		listEventsUC,
		bookUC,
		blockUC,
		allowUC,
	)

	transportHandler := handlers.NewTransportHandler(notifyTransporterUC)
	prescriptionHandler := handlers.NewPrescriptionHandler(
		uploadPrescriptionUC,
		markReadyUC,
		prescriptionRepo,
		cfg,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	r.GET("/providers", providerHandler.List)

	r.GET("/auth/google", calendarHandler.AuthURL)
	r.GET("/auth/google/callback", calendarHandler.AuthCallback)

	r.GET("/calendar/events", calendarHandler.Events)
	r.POST("/calendar/book", calendarHandler.Book)

	r.POST("/notify-transporter", transportHandler.Notify)

	r.POST("/prescription/upload", prescriptionHandler.Upload)
	r.POST("/prescription/ready", prescriptionHandler.Ready)

	// ======================================================
	// SECURED ROUTES
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)
		secured.GET("/audit-logs", auditLogsHandler.List)

		secured.GET("/prescriptions",
			middleware.RequireRole(models.RolePharmacist),
			prescriptionHandler.List,
		)

		doctorOnly := secured.Group("/calendar")
		doctorOnly.Use(middleware.RequireRole(models.RoleDoctor))
		{
			doctorOnly.POST("/block", calendarHandler.Block)
			doctorOnly.POST("/allow", calendarHandler.Allow)
		}
	}
}
