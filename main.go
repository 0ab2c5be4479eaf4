package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bluerobins/config"
	"bluerobins/cron"
	"bluerobins/database"
	bookingRepoPkg "bluerobins/database/repository/booking"
	cartRepoPkg "bluerobins/database/repository/cart"
	chatRepoPkg "bluerobins/database/repository/chat"
	mentorRepoPkg "bluerobins/database/repository/mentor"
	notesRepoPkg "bluerobins/database/repository/notes"
	projectRepoPkg "bluerobins/database/repository/project"
	userRepoPkg "bluerobins/database/repository/user"
	"bluerobins/handlers"
	"bluerobins/routes"
	"bluerobins/services/booking"
	"bluerobins/services/calendar"
	"bluerobins/services/cart"
	"bluerobins/services/chat"
	"bluerobins/services/email"
	"bluerobins/services/mentor"
	"bluerobins/services/notes"
	"bluerobins/services/payment"
	"bluerobins/services/user"
	"bluerobins/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatCache()
	stripe.Key = config.AppConfig.StripeKey

	ctx := context.Background()
	calendarClient, err := calendar.NewGoogleEventClient(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	mentorRepo := mentorRepoPkg.NewMongoMentorRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	projectRepo := projectRepoPkg.NewMongoProjectRepo()
	cartRepo := cartRepoPkg.NewMongoCartRepo()
	noteRepo := notesRepoPkg.NewMongoNoteRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()

	// Background queue. With the worker disabled the queue client stays
	// nil and calendar/email work happens on the request path.
	var queue *asynq.Client
	emailSender := email.NewSendgridSender(
		config.AppConfig.SendgridKey,
		config.AppConfig.EmailName,
		config.AppConfig.EmailFrom,
	)
	if !config.AppConfig.DisableWorker {
		queue = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		defer queue.Close()

		worker := &cron.Worker{
			Bookings: bookingRepo,
			Mentors:  mentorRepo,
			Users:    userRepo,
			Calendar: calendarClient,
			Email:    emailSender,
		}
		worker.Start()
	}

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	mentorService := &mentor.DefaultMentorService{
		MentorRepo:  mentorRepo,
		ProjectRepo: projectRepo,
	}
	schedulingEngine := &booking.DefaultSchedulingEngine{
		BookingRepo: bookingRepo,
		MentorRepo:  mentorRepo,
		ProjectRepo: projectRepo,
		Calendar:    calendarClient,
		Queue:       queue,
		Cache:       utils.GetCacheClient(),
	}
	paymentHandler := payment.NewStripePaymentHandler(logger)
	cartService := &cart.DefaultCartService{
		CartRepo: cartRepo,
		Payments: paymentHandler,
		Engine:   schedulingEngine,
	}
	noteService := &notes.DefaultNoteService{
		NoteRepo: noteRepo,
		UserRepo: userRepo,
		Queue:    queue,
	}
	chatService := &chat.DefaultChatService{
		Repo:  chatRepo,
		Redis: utils.GetChatCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:    handlers.NewAuthHandler(userService),
		User:    handlers.NewUserHandler(userService),
		Mentor:  handlers.NewMentorHandler(mentorService),
		Booking: handlers.NewBookingHandler(schedulingEngine),
		Cart:    handlers.NewCartHandler(cartService),
		Notes:   handlers.NewNoteHandler(noteService),
		Chat:    handlers.NewChatHandler(chatService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
