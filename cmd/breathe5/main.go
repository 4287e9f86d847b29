package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"breathe5/internal/bootstrap"
	"breathe5/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "breathe5",
		Short:         "Five-minute meditation timer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default ~/.breathe5)")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newSessionCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newInsightsCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the breathe5 terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newSessionCmd(dataDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Meditation session lifecycle"}

	var username string
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a five-minute session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Start(context.Background(), username)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session started for %s at %s\n", out.Username, out.StartedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
	start.Flags().StringVar(&username, "name", "", "display name (defaults to Guest)")

	var early bool
	stop := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running session and record it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Stop(context.Background(), early)
			if err != nil {
				return err
			}
			status := "incomplete"
			if out.Completed {
				status = "completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s meditation for %s (%s)\n", out.Duration, out.Username, status)
			return nil
		},
	}
	stop.Flags().BoolVar(&early, "early", false, "stop before the countdown expires")

	session.AddCommand(start, stop, &cobra.Command{
		Use:   "status",
		Short: "Show the running session, if any",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Active(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s meditating since %s, %ds remaining\n", out.Username, out.StartedAt.Format("15:04:05"), out.Remaining)
			return nil
		},
	})
	return session
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Recorded meditation history"}

	history.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.History(context.Background())
			if err != nil {
				return err
			}
			if out.Degraded {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: history could not be read, showing empty")
			}
			if len(out.Sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions recorded")
				return nil
			}
			for _, s := range out.Sessions {
				status := "incomplete"
				if s.Completed {
					status = "completed"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", s.Date, s.Username, s.Duration, status)
			}
			return nil
		},
	})

	history.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.ClearHistory(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return nil
		},
	})

	var exportDir, exportName string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the history as a markdown journal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			path, err := app.SessionCLI.ExportJournal(context.Background(), exportDir, exportName)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "journal written to %s\n", path)
			return nil
		},
	}
	export.Flags().StringVar(&exportDir, "dir", "", "output directory (default current)")
	export.Flags().StringVar(&exportName, "name", "", "name used in the journal filename")
	history.AddCommand(export)

	return history
}

func newInsightsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show progress stats and achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.InsightsCLI.Compute(context.Background())
			if err != nil {
				return err
			}
			if out.Degraded {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: history could not be read, stats computed over empty history")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sessions=%d total_minutes=%d longest=%dmin streak=%d\n",
				out.CompletedSessions, out.TotalMinutes, out.LongestSession, out.CurrentStreak)
			for _, a := range out.Achievements {
				marker := " "
				if a.Unlocked {
					marker = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s %s\n", marker, a.Icon, a.Name)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Recommendation)
			return nil
		},
	}
}

func newSettingsCmd(dataDir *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "App settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SettingsCLI.Get(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "username=%s dark_mode=%t sounds=%t vibration=%t reminders=%t\n",
				out.Username, out.DarkMode, out.NotificationSounds, out.Vibration, out.DailyReminders)
			return nil
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "name <username>",
		Short: "Set the display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SettingsCLI.SetUsername(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "username set to %s\n", out.Username)
			return nil
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "dark-mode",
		Short: "Toggle the dark theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SettingsCLI.ToggleDarkMode(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dark_mode=%t\n", out.DarkMode)
			return nil
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "set <sounds|vibration|reminders> <on|off>",
		Short: "Turn a notification setting on or off",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var on bool
			switch strings.ToLower(args[1]) {
			case "on", "true":
				on = true
			case "off", "false":
				on = false
			default:
				return fmt.Errorf("value must be on or off, got %q", args[1])
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SettingsCLI.Set(context.Background(), args[0], on)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sounds=%t vibration=%t reminders=%t\n",
				out.NotificationSounds, out.Vibration, out.DailyReminders)
			return nil
		},
	})

	return settings
}
