package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"

	insightsinadapter "breathe5/internal/modules/insights/adapter/in"
	insightsusecase "breathe5/internal/modules/insights/usecase"
	sessioninadapter "breathe5/internal/modules/session/adapter/in"
	sessionoutadapter "breathe5/internal/modules/session/adapter/out"
	sessionservice "breathe5/internal/modules/session/service"
	sessionusecase "breathe5/internal/modules/session/usecase"
	settingsinadapter "breathe5/internal/modules/settings/adapter/in"
	settingsoutadapter "breathe5/internal/modules/settings/adapter/out"
	settingsusecase "breathe5/internal/modules/settings/usecase"
	"breathe5/internal/platform/clock"
	"breathe5/internal/platform/config"
	uiapp "breathe5/internal/ui/app"
)

type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	InsightsCLI insightsinadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk),
		sessionoutadapter.NewFileHistoryStore(cfg.HistoryPath),
		sessionoutadapter.NewFileActiveSessionStore(cfg.ActivePath),
	)
	insightsUC := insightsusecase.NewInteractor(sessionUC, clk)
	settingsUC := settingsusecase.NewInteractor(
		settingsoutadapter.NewFileSettingsStore(cfg.SettingsPath),
	)

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		InsightsCLI: insightsinadapter.NewCLIHandler(insightsUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.InsightsCLI, app.SettingsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
