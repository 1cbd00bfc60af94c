package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medialert/internal/application/alert"
	appService "medialert/internal/application/service"
	"medialert/internal/config"
	"medialert/internal/infrastructure/auth"
	"medialert/internal/infrastructure/database/gormdb"
	lineClient "medialert/internal/infrastructure/line"
	"medialert/internal/infrastructure/openai"
	"medialert/internal/infrastructure/scheduler"
	"medialert/internal/infrastructure/tone"
	"medialert/internal/infrastructure/twilio"
	"medialert/internal/interfaces/api/handler"
	"medialert/internal/interfaces/api/router"
	"medialert/internal/pkg/metrics"
	"medialert/internal/pkg/validation"
)

func serve(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Initialization ---
	appLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer appLog.Sync()

	loc, err := cfg.Alert.Location()
	if err != nil {
		return err
	}

	// --- Infrastructure ---
	db, err := gormdb.Open(gormdb.Config{URL: cfg.Database.URL, Path: cfg.Database.Path, Verbose: cfg.Database.Verbose})
	if err != nil {
		return err
	}
	appLog.Info(fmt.Sprintf("Database initialized (%s).", gormdb.Backend(db)))

	userRepo := gormdb.NewUserRepository(db)
	reminderRepo := gormdb.NewReminderRepository(db)
	refillRepo := gormdb.NewRefillRepository(db)
	dosageRepo := gormdb.NewDosageRepository(db)
	feedbackRepo := gormdb.NewFeedbackRepository(db)

	m := metrics.New()

	tokens, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	var announcers []alert.Announcer
	var lineHandler *handler.LineHandler
	if cfg.Line.Enabled() {
		line, err := lineClient.NewClient(cfg.Line.ChannelSecret, cfg.Line.ChannelToken, cfg.Line.NotifyUser, appLog)
		if err != nil {
			return err
		}
		lineHandler = handler.NewLineHandler(line, appLog)
		if cfg.Line.NotifyUser != "" {
			announcers = append(announcers, line)
		} else {
			appLog.Warn("LINE notify user not set; send \"id\" to the bot to discover it")
		}
	}
	if cfg.Twilio.Enabled() {
		announcers = append(announcers, twilio.New(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.From, cfg.Twilio.To, appLog))
	}
	for _, a := range announcers {
		appLog.Info(fmt.Sprintf("Announcer enabled: %s", a.Name()))
	}

	players := tone.Multi{tone.NewCounter(m.TonesTotal)}
	if !cfg.Alert.Quiet {
		players = append(players, tone.NewBell(os.Stdout))
	}

	// --- Alerting ---
	hub := alert.NewHub(ctx, alert.HubConfig{
		Reminders:  reminderRepo,
		Dismisser:  alert.NewDismisser(reminderRepo, refillRepo, appLog, m),
		Notifier:   alert.NewNotifier(players, cfg.Alert.ToneInterval),
		Announcers: announcers,
		Location:   loc,
		Log:        appLog,
		Metrics:    m,
	})

	cronScheduler := scheduler.NewScheduler(appLog, loc)
	schedulerSvc := appService.NewSchedulerService(cronScheduler, hub, cfg.Alert.PollSpec, appLog)

	// --- Application Services ---
	userSvc := appService.NewUserService(userRepo, tokens, appLog)
	reminderSvc := appService.NewReminderService(reminderRepo, hub, appLog)
	alertSvc := appService.NewAlertService(hub, appLog)
	refillSvc := appService.NewRefillService(refillRepo, appLog)
	dosageSvc := appService.NewDosageService(dosageRepo, appLog)
	feedbackSvc := appService.NewFeedbackService(feedbackRepo, userSvc, appLog)
	suggestionSvc := appService.NewSuggestionService(openai.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model), cfg.OpenAI.RatePerMinute, appLog, m)
	appLog.Info("Application services initialized.")

	// --- Router ---
	echoRouter := router.NewRouter(&router.Config{
		AuthHandler:       handler.NewAuthHandler(userSvc, appLog),
		ReminderHandler:   handler.NewReminderHandler(reminderSvc, alertSvc, appLog),
		RefillHandler:     handler.NewRefillHandler(refillSvc, appLog),
		DosageHandler:     handler.NewDosageHandler(dosageSvc, appLog),
		FeedbackHandler:   handler.NewFeedbackHandler(feedbackSvc, appLog),
		SuggestionHandler: handler.NewSuggestionHandler(suggestionSvc, appLog),
		HealthHandler:     handler.NewHealthHandler(gormdb.Pinger(db), appLog),
		LineHandler:       lineHandler,
		Tokens:            tokens,
		Validator:         validation.New(),
		Metrics:           m,
		Logger:            appLog,
	})

	apiServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	if err := schedulerSvc.Start(ctx); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		appLog.Info(fmt.Sprintf("Server starting on port %s", cfg.Server.Port))
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Listen for the interrupt signal.
	var runErr error
	select {
	case <-ctx.Done():
		appLog.Info("Shutting down gracefully, press Ctrl+C again to force")
	case err := <-serverErr:
		if err != nil {
			appLog.Error("HTTP server ListenAndServe error", err)
			runErr = fmt.Errorf("http server: %w", err)
		}
	}
	stop()

	// Stop the scheduler first so no poll races the hub shutdown.
	appLog.Info("Stopping scheduler...")
	schedulerSvc.Stop()
	hub.Close()

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Server forced to shutdown with error", err)
	}

	appLog.Info("Closing database connection...")
	if err := gormdb.Close(db); err != nil {
		appLog.Error("Error closing database", err)
	}

	if runErr != nil {
		return runErr
	}
	appLog.Info("Graceful shutdown complete.")
	return nil
}
