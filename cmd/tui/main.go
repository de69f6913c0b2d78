package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/connect4-hotseat/internal/config"
	"github.com/iamasit07/connect4-hotseat/internal/transport/tui"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	boardWidth  int
	boardHeight int
)

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Two-player Connect Four in the terminal",
	Long: `Play Connect Four with two players sharing one keyboard.

Move the cursor with ←/→ (or h/l), drop with enter, restart with r, quit with q.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if boardWidth <= 0 || boardHeight <= 0 {
			return fmt.Errorf("board size must be positive, got %dx%d", boardWidth, boardHeight)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := tea.NewProgram(tui.New(boardWidth, boardHeight), tea.WithAltScreen()).Run()
		return err
	},
	SilenceUsage: true,
}

// initLogging sends logs to LOG_FILE only; the terminal belongs to the UI.
func initLogging(cfg *config.Config, envErr error) (io.Closer, error) {
	closer, err := config.InitFileLogger(cfg)
	if err != nil {
		return nil, err
	}
	if envErr != nil {
		log.Debug().Err(envErr).Msg("No .env file found")
	}
	return closer, nil
}

func main() {
	envErr := godotenv.Load()
	cfg := config.LoadConfig()

	closer, err := initLogging(cfg, envErr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	rootCmd.Flags().IntVar(&boardWidth, "width", cfg.BoardWidth, "number of columns")
	rootCmd.Flags().IntVar(&boardHeight, "height", cfg.BoardHeight, "number of rows")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
