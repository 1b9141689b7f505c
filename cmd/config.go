package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nihzaa/focusflow/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit timer durations and notification settings",
	Long:  `Interactively configure work and break durations, the long-break cadence, auto-start behavior, and notifications.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)
		cfg := app.cfg

		fmt.Println()
		fmt.Println("  Current configuration:")
		fmt.Println()
		fmt.Printf("    Work duration:         %s\n", formatMinutes(time.Duration(cfg.Timer.WorkDuration)))
		fmt.Printf("    Short break:           %s\n", formatMinutes(time.Duration(cfg.Timer.ShortBreak)))
		fmt.Printf("    Long break:            %s\n", formatMinutes(time.Duration(cfg.Timer.LongBreak)))
		fmt.Printf("    Sessions before long:  %d\n", cfg.Timer.SessionsBeforeLong)
		fmt.Printf("    Auto-start breaks:     %v\n", cfg.Timer.AutoStartBreaks)
		fmt.Printf("    Auto-start work:       %v\n", cfg.Timer.AutoStartWork)
		notifStatus := "off"
		if cfg.Notifications.Enabled {
			notifStatus = "on"
			if cfg.Notifications.Sound {
				notifStatus = "on (with sound)"
			}
		}
		fmt.Printf("    Notifications:         %s\n", notifStatus)
		fmt.Println()
		fmt.Println("  What would you like to change?")
		fmt.Println("    [d] Edit durations")
		fmt.Println("    [a] Toggle auto-start")
		fmt.Println("    [n] Toggle notifications")
		fmt.Println("    [q] Quit without saving")
		fmt.Print("  Choose: ")

		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))

		switch choice {
		case "d":
			return editDurations(reader, cfg)
		case "a":
			return editAutoStart(reader, cfg)
		case "n":
			return editNotifications(reader, cfg)
		case "q", "":
			fmt.Println("  No changes made.")
			return nil
		default:
			return fmt.Errorf("invalid choice %q", choice)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func editDurations(reader *bufio.Reader, cfg *config.Config) error {
	work := time.Duration(cfg.Timer.WorkDuration)
	shortBreak := time.Duration(cfg.Timer.ShortBreak)
	longBreak := time.Duration(cfg.Timer.LongBreak)
	sessionsBeforeLong := cfg.Timer.SessionsBeforeLong

	fmt.Println("\n  Editing durations")

	fmt.Printf("  Work duration [%s]: ", formatMinutes(work))
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input != "" {
		parsed, err := time.ParseDuration(input)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", input, err)
		}
		work = parsed
	}

	fmt.Printf("  Short break [%s]: ", formatMinutes(shortBreak))
	input, _ = reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input != "" {
		parsed, err := time.ParseDuration(input)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", input, err)
		}
		shortBreak = parsed
	}

	fmt.Printf("  Long break [%s]: ", formatMinutes(longBreak))
	input, _ = reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input != "" {
		parsed, err := time.ParseDuration(input)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", input, err)
		}
		longBreak = parsed
	}

	fmt.Printf("  Sessions before long break [%d]: ", sessionsBeforeLong)
	input, _ = reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input != "" {
		var n int
		if _, err := fmt.Sscanf(input, "%d", &n); err != nil {
			return fmt.Errorf("invalid number %q: %w", input, err)
		}
		if n < 1 {
			return fmt.Errorf("sessions before long break must be at least 1")
		}
		sessionsBeforeLong = n
	}

	cfg.Timer.WorkDuration = config.Duration(work)
	cfg.Timer.ShortBreak = config.Duration(shortBreak)
	cfg.Timer.LongBreak = config.Duration(longBreak)
	cfg.Timer.SessionsBeforeLong = sessionsBeforeLong

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved: work %s, short break %s, long break %s, long every %d sessions\n",
		formatMinutes(work), formatMinutes(shortBreak), formatMinutes(longBreak), sessionsBeforeLong)
	return nil
}

func editAutoStart(reader *bufio.Reader, cfg *config.Config) error {
	fmt.Printf("\n  Auto-start breaks: %v, auto-start work: %v\n\n", cfg.Timer.AutoStartBreaks, cfg.Timer.AutoStartWork)
	fmt.Println("    [1] Neither")
	fmt.Println("    [2] Breaks only")
	fmt.Println("    [3] Breaks and work")
	fmt.Print("  Choose: ")

	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)

	switch choice {
	case "1":
		cfg.Timer.AutoStartBreaks = false
		cfg.Timer.AutoStartWork = false
	case "2":
		cfg.Timer.AutoStartBreaks = true
		cfg.Timer.AutoStartWork = false
	case "3":
		cfg.Timer.AutoStartBreaks = true
		cfg.Timer.AutoStartWork = true
	default:
		fmt.Println("  No changes made.")
		return nil
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: auto-start breaks %v, auto-start work %v\n", cfg.Timer.AutoStartBreaks, cfg.Timer.AutoStartWork)
	return nil
}

func editNotifications(reader *bufio.Reader, cfg *config.Config) error {
	current := "off"
	if cfg.Notifications.Enabled {
		current = "on"
		if cfg.Notifications.Sound {
			current = "on (with sound)"
		}
	}

	fmt.Printf("\n  Current notifications: %s\n\n", current)
	fmt.Println("    [1] Off")
	fmt.Println("    [2] On (visual only)")
	fmt.Println("    [3] On (with sound)")
	fmt.Print("  Choose: ")

	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)

	switch choice {
	case "1":
		cfg.Notifications.Enabled = false
		cfg.Notifications.Sound = false
	case "2":
		cfg.Notifications.Enabled = true
		cfg.Notifications.Sound = false
	case "3":
		cfg.Notifications.Enabled = true
		cfg.Notifications.Sound = true
	default:
		fmt.Println("  No changes made.")
		return nil
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	status := "off"
	if cfg.Notifications.Enabled {
		status = "on"
		if cfg.Notifications.Sound {
			status = "on (with sound)"
		}
	}
	fmt.Printf("\n  Saved: notifications %s\n", status)
	return nil
}

// formatMinutes renders a duration as a compact "25m" or "1h30m" string.
func formatMinutes(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
