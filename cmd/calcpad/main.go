package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/calcpad/internal/config"
	"github.com/csheth/calcpad/internal/tui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to the TOML config file")
	scientific := flag.Bool("scientific", false, "start with the scientific panel open")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	noMouse := flag.Bool("no-mouse", false, "disable click-to-press")
	logFile := flag.String("log-file", "", "write the debug log to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("failed to load config:", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scientific":
			cfg.Scientific = *scientific
		case "no-alt-screen":
			cfg.AltScreen = !*noAltScreen
		case "no-mouse":
			cfg.Mouse = !*noMouse
		case "log-file":
			cfg.LogFile = *logFile
		}
	})

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "calcpad")
		if err != nil {
			fmt.Println("failed to open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("[main] starting (scientific=%v alt-screen=%v mouse=%v)", cfg.Scientific, cfg.AltScreen, cfg.Mouse)

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
		// Cell coordinates only line up with the grid on the alternate screen.
		if cfg.Mouse {
			opts = append(opts, tea.WithMouseCellMotion())
		}
	}
	program := tea.NewProgram(tui.New(tui.Config{Scientific: cfg.Scientific}), opts...)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
