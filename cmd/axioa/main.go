package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kharthicsj/Axioa-sub005/internal/config"
	"github.com/Kharthicsj/Axioa-sub005/internal/tui"
	"github.com/Kharthicsj/Axioa-sub005/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "axioa",
	Short: "Axioa - request student freelance services from your terminal",
	Long: `Axioa is the terminal client for the Axioa student-freelance
marketplace. Browse available students, submit project requests, and track
assigned works without leaving your shell.

Run without arguments to open the interactive UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("axioa " + version)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [token]",
	Short: "Store your API token",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear your session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ClearToken(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd, loginCmd, logoutCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	token := cfg.ReadToken()
	if token == "" {
		fmt.Println("no token found. run: axioa login")
		return nil
	}

	// The TUI owns stdout; structured logs go to the config file.
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	c := client.New(cfg.API.BaseURL, token)
	// Only force re-login on actual auth failures (401), not transient errors.
	if _, err := c.GetProfile(context.Background()); err != nil {
		if client.IsStatus(err, 401) {
			fmt.Println("session expired. run: axioa login")
			return nil
		}
		logger.Warn("profile check failed, starting anyway", zap.Error(err))
	}

	logger.Info("starting axioa", zap.String("version", version), zap.String("api", cfg.API.BaseURL))

	p := tea.NewProgram(tui.NewApp(c), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var token string
	if len(args) == 1 {
		token = strings.TrimSpace(args[0])
	} else {
		fmt.Print("paste your API token: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		token = strings.TrimSpace(line)
	}
	if token == "" {
		return fmt.Errorf("empty token")
	}

	// Verify before saving so a typo doesn't wedge the session.
	c := client.New(cfg.API.BaseURL, token)
	profile, err := c.GetProfile(context.Background())
	if err != nil {
		if client.IsStatus(err, 401) {
			return fmt.Errorf("token rejected by %s", cfg.API.BaseURL)
		}
		return fmt.Errorf("verify token: %w", err)
	}

	if err := config.SaveToken(token); err != nil {
		return err
	}
	fmt.Printf("logged in as %s (@%s)\n", profile.Name, profile.Username)
	return nil
}
