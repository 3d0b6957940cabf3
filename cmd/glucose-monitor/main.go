package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"glucose-monitor/internal/charts"
	"glucose-monitor/internal/config"
	"glucose-monitor/internal/controllers"
	"glucose-monitor/internal/logger"
	"glucose-monitor/internal/models"
	"glucose-monitor/internal/views"
)

const (
	AppName    = "Blood Glucose Monitor"
	AppID      = "com.glucosemonitor.app"
	AppVersion = "1.0.0"
)

// Application wires the MVC components together.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	cfg     *config.Config

	controller *controllers.MainController
	view       *views.MainView

	ctx    context.Context
	cancel context.CancelFunc
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := NewApplication(ctx)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	setupGracefulShutdown(application, cancel)

	application.Run(ctx)

	log.Println("Application terminated")
}

// NewApplication creates and initializes the application using dependency
// injection.
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv())

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Appearance.WindowWidth, cfg.Appearance.WindowHeight))
	window.CenterOnScreen()

	appCtx, appCancel := context.WithCancel(ctx)

	appLogger.Info("Application starting", map[string]interface{}{
		"version":        AppVersion,
		"user_data_file": cfg.General.UserDataFile,
	})

	userRepo := models.NewUserRepository(userDataPath(cfg), appLogger)
	session := models.NewSessionState()
	renderer := charts.NewRenderer(appLogger)

	mainController := controllers.NewMainController(
		fyneApp, &cfg, appLogger, userRepo, session, renderer,
	)
	mainView := views.NewMainView(window)
	mainController.SetMainView(mainView)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		cfg:        &cfg,
		controller: mainController,
		view:       mainView,
		ctx:        appCtx,
		cancel:     appCancel,
	}

	window.SetOnClosed(func() {
		appLogger.Info("Window closed", nil)
		appCancel()
	})

	return application, nil
}

// Run shows the main window and blocks in the Fyne event loop.
func (a *Application) Run(ctx context.Context) {
	a.view.Show()

	go func() {
		<-a.ctx.Done()
		a.controller.Shutdown()
		fyne.Do(func() {
			a.fyneApp.Quit()
		})
	}()

	a.fyneApp.Run()
}

// setupGracefulShutdown configures signal handling for graceful shutdown.
func setupGracefulShutdown(application *Application, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		application.logger.Info("System signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		cancel()
	}()
}

// userDataPath resolves the user record file next to the configuration
// unless the configured name is already absolute.
func userDataPath(cfg config.Config) string {
	if filepath.IsAbs(cfg.General.UserDataFile) {
		return cfg.General.UserDataFile
	}
	return filepath.Join(config.ConfigDir(), cfg.General.UserDataFile)
}
