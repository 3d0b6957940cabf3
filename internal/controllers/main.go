package controllers

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"glucose-monitor/internal/analysis"
	"glucose-monitor/internal/charts"
	"glucose-monitor/internal/config"
	"glucose-monitor/internal/logger"
	"glucose-monitor/internal/models"
	"glucose-monitor/internal/views"
	"glucose-monitor/internal/views/components"
)

// MainController orchestrates the application using MVC pattern.
type MainController struct {
	app      fyne.App
	cfg      *config.Config
	log      logger.Logger
	userRepo *models.UserRepository
	session  *models.SessionState
	renderer *charts.Renderer

	mainView *views.MainView

	mu          sync.Mutex
	editingUser string
}

// NewMainController creates the main controller.
func NewMainController(
	app fyne.App,
	cfg *config.Config,
	log logger.Logger,
	userRepo *models.UserRepository,
	session *models.SessionState,
	renderer *charts.Renderer,
) *MainController {
	return &MainController{
		app:      app,
		cfg:      cfg,
		log:      log,
		userRepo: userRepo,
		session:  session,
		renderer: renderer,
	}
}

// SetMainView associates the main view with this controller and wires all
// frame handlers.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

func (mc *MainController) setupViewEventHandlers() {
	welcome := mc.mainView.Welcome()
	welcome.SetCreateUserHandler(mc.CreateUser)
	welcome.SetLoadUsersHandler(mc.LoadUsers)
	welcome.SetSelectUserHandler(mc.SelectUser)
	welcome.SetAllUsersHandler(func() {
		mc.mainView.ShowFrame(views.FrameAllUsers)
		mc.mainView.UpdateStatus("All users analysis")
	})

	profile := mc.mainView.Profile()
	profile.SetSaveHandler(mc.SaveProfile)
	profile.SetBackHandler(mc.LeaveProfile)

	menu := mc.mainView.MainMenu()
	menu.SetChooseDatasetHandler(mc.ChooseDataset)
	menu.SetEditProfileHandler(mc.EditProfile)
	menu.SetBackHandler(func() {
		mc.mainView.Welcome().Reset()
		mc.mainView.ShowFrame(views.FrameWelcome)
		mc.mainView.UpdateStatus("Ready")
	})
	menu.SetLevelsChartHandler(func() {
		mc.withDatasetAndThresholds(mc.showLevelsChart)
	})
	menu.SetMealChartHandler(mc.showMealChart)
	menu.SetInsightsHandler(func() {
		mc.withDatasetAndThresholds(mc.showInsights)
	})

	allUsers := mc.mainView.AllUsers()
	allUsers.SetBMIAllHandler(func() { mc.showUsersChart(mc.renderer.BMIAllUsers) })
	allUsers.SetAvgBMIHandler(func() { mc.showUsersChart(mc.renderer.AvgBMIByType) })
	allUsers.SetAgeDistHandler(func() { mc.showUsersChart(mc.renderer.AgeDistributionByType) })
	allUsers.SetGenderHandler(func() { mc.showUsersChart(mc.renderer.GenderDistributionByType) })
	allUsers.SetBackHandler(func() {
		mc.mainView.Welcome().Reset()
		mc.mainView.ShowFrame(views.FrameWelcome)
		mc.mainView.UpdateStatus("Ready")
	})
}

// CreateUser opens an empty profile form.
func (mc *MainController) CreateUser() {
	mc.setEditingUser("")
	mc.mainView.Profile().Clear()
	mc.mainView.ShowFrame(views.FrameProfile)
	mc.mainView.UpdateStatus("Creating a new user")
}

// LoadUsers reveals the user picker on the welcome frame.
func (mc *MainController) LoadUsers() {
	names := mc.userRepo.Names()
	if len(names) == 0 {
		mc.mainView.ShowInfo("No Users",
			"No registered users found. Create a new user first.")
		return
	}
	mc.mainView.Welcome().ShowUserPicker(names)
}

// SelectUser makes the named user active and opens the main menu.
func (mc *MainController) SelectUser(name string) {
	if _, ok := mc.userRepo.Load(name); !ok {
		mc.handleError("User selection failed",
			fmt.Errorf("user %q not found", name))
		return
	}

	mc.session.SetSelectedUser(name)
	mc.mainView.MainMenu().SetUser(name)
	mc.mainView.UpdateUserInfo(name)
	mc.mainView.ShowFrame(views.FrameMainMenu)
	mc.mainView.UpdateStatus("Ready")

	mc.log.Info("User selected", map[string]interface{}{"user": name})
}

// SaveProfile validates the form input, persists the profile and returns to
// the main menu.
func (mc *MainController) SaveProfile(name, gender, dob string, weightKg, heightCm float64, diabetesType string) {
	if name == "" {
		mc.handleError("Save failed", fmt.Errorf("name must not be empty"))
		return
	}

	profile, err := models.NewUserProfile(gender, dob, weightKg, heightCm, diabetesType, time.Now())
	if err != nil {
		mc.handleError("Save failed", err)
		return
	}

	if err := mc.userRepo.Save(name, profile); err != nil {
		mc.handleError("Save failed", err)
		return
	}

	mc.log.Info("Profile saved", map[string]interface{}{
		"user": name,
		"bmi":  profile.BMI,
	})

	mc.mainView.ShowInfo("Saved", fmt.Sprintf("Profile for %s saved (BMI %.2f).", name, profile.BMI))
	mc.SelectUser(name)
}

// EditProfile opens the profile form populated with the active user's data.
func (mc *MainController) EditProfile() {
	name := mc.session.SelectedUser()
	profile, ok := mc.userRepo.Load(name)
	if !ok {
		mc.handleError("Edit failed", fmt.Errorf("user %q not found", name))
		return
	}

	mc.setEditingUser(name)
	mc.mainView.Profile().Populate(name, profile)
	mc.mainView.ShowFrame(views.FrameProfile)
	mc.mainView.UpdateStatus("Editing profile")
}

// LeaveProfile returns from the profile form without saving.
func (mc *MainController) LeaveProfile() {
	if mc.getEditingUser() != "" {
		mc.mainView.ShowFrame(views.FrameMainMenu)
	} else {
		mc.mainView.ShowFrame(views.FrameWelcome)
	}
	mc.mainView.UpdateStatus("Ready")
}

// ChooseDataset lets the user pick a glucose CSV file. The file is loaded
// immediately to validate its columns.
func (mc *MainController) ChooseDataset() {
	mc.mainView.ShowOpenCSVDialog(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mc.handleError("File selection error", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		go mc.loadDataset(path)
	})
}

func (mc *MainController) loadDataset(path string) {
	ds, err := models.LoadDataset(path)
	if err != nil {
		mc.handleError("Dataset load failed", err)
		return
	}

	mc.session.SetDatasetPath(path)
	mc.mainView.UpdateDatasetInfo(path)
	mc.mainView.UpdateStatus(fmt.Sprintf("Dataset loaded: %d readings", len(ds.Readings)))

	mc.log.Info("Dataset loaded", map[string]interface{}{
		"path":     path,
		"readings": len(ds.Readings),
	})
}

// withDatasetAndThresholds runs action once a dataset is selected and the
// low/high thresholds are known. Session thresholds win; otherwise the
// configured defaults seed the dialog.
func (mc *MainController) withDatasetAndThresholds(action func(path string, low, high int)) {
	path := mc.session.DatasetPath()
	if path == "" {
		mc.handleError("No dataset", fmt.Errorf("choose a dataset first"))
		return
	}

	if low, high, ok := mc.session.Thresholds(); ok {
		action(path, low, high)
		return
	}

	mc.mainView.ShowThresholdDialog(mc.cfg.Thresholds.Low, mc.cfg.Thresholds.High,
		func(low, high int) {
			mc.session.SetThresholds(low, high)
			action(path, low, high)
		})
}

func (mc *MainController) showLevelsChart(path string, low, high int) {
	mc.mainView.UpdateStatus("Rendering chart...")

	go func() {
		ds, err := models.LoadDataset(path)
		if err != nil {
			mc.handleError("Chart failed", err)
			return
		}

		chart, err := mc.renderer.LevelsOverTime(ds, low, high)
		if err != nil {
			mc.handleError("Chart failed", err)
			return
		}

		mc.presentChart(chart)
	}()
}

func (mc *MainController) showMealChart() {
	path := mc.session.DatasetPath()
	if path == "" {
		mc.handleError("No dataset", fmt.Errorf("choose a dataset first"))
		return
	}

	mc.mainView.UpdateStatus("Rendering chart...")

	go func() {
		ds, err := models.LoadDataset(path)
		if err != nil {
			mc.handleError("Chart failed", err)
			return
		}

		chart, err := mc.renderer.LevelsByMeal(ds)
		if err != nil {
			mc.handleError("Chart failed", err)
			return
		}

		mc.presentChart(chart)
	}()
}

// showUsersChart renders one of the cross-user charts in the background.
func (mc *MainController) showUsersChart(render func(map[string]models.UserProfile) (*charts.Chart, error)) {
	go func() {
		users := mc.userRepo.LoadAll()
		if len(users) == 0 {
			mc.handleError("Chart failed", fmt.Errorf("no registered users"))
			return
		}

		chart, err := render(users)
		if err != nil {
			mc.handleError("Chart failed", err)
			return
		}

		mc.presentChart(chart)
	}()
}

func (mc *MainController) presentChart(chart *charts.Chart) {
	fyne.Do(func() {
		components.ShowChartWindow(mc.app, chart, mc.saveChart)
		mc.mainView.UpdateStatus("Ready")
	})
}

// saveChart asks for a destination and writes the chart as a PDF.
func (mc *MainController) saveChart(chart *charts.Chart) {
	mc.mainView.ShowSaveDialog("graph.pdf", func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mc.handleError("Save failed", err)
			return
		}
		if writer == nil {
			return
		}

		go func() {
			defer writer.Close()
			if err := chart.WritePDF(writer); err != nil {
				mc.handleError("Save failed", err)
				return
			}
			mc.mainView.ShowInfo("Saved", "Graph saved as PDF.")
		}()
	})
}

func (mc *MainController) showInsights(path string, low, high int) {
	mc.mainView.UpdateStatus("Generating insights...")

	go func() {
		ds, err := models.LoadDataset(path)
		if err != nil {
			mc.handleError("Insights failed", err)
			return
		}

		insights, err := analysis.GenerateInsights(ds, low, high)
		if err != nil {
			mc.handleError("Insights failed", err)
			return
		}

		fyne.Do(func() {
			views.ShowInsightsWindow(mc.app, insights, func() {
				mc.exportInsights(insights)
			})
			mc.mainView.UpdateStatus("Ready")
		})
	}()
}

// exportInsights asks for a destination and writes the CSV report.
func (mc *MainController) exportInsights(insights *analysis.Insights) {
	mc.mainView.ShowSaveDialog("glucose_insights.csv", func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mc.handleError("Export failed", err)
			return
		}
		if writer == nil {
			return
		}

		go func() {
			defer writer.Close()
			if err := insights.WriteCSV(writer); err != nil {
				mc.handleError("Export failed", err)
				return
			}
			mc.mainView.ShowInfo("Exported", "Insights report saved.")

			mc.log.Info("Insights exported", map[string]interface{}{
				"path": writer.URI().Path(),
			})
		}()
	})
}

func (mc *MainController) setEditingUser(name string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.editingUser = name
}

func (mc *MainController) getEditingUser() string {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.editingUser
}

func (mc *MainController) handleError(title string, err error) {
	mc.log.Error(title, err, nil)
	mc.mainView.ShowError(err)
	mc.mainView.UpdateStatus(title)
}

// Shutdown flushes state before the application exits.
func (mc *MainController) Shutdown() {
	mc.log.Info("Controller shutting down", map[string]interface{}{
		"selected_user": mc.session.SelectedUser(),
	})
}
