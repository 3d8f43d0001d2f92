package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akyairhashvil/zannat/internal/config"
	"github.com/akyairhashvil/zannat/internal/models"
	"github.com/akyairhashvil/zannat/internal/tui"
	"github.com/akyairhashvil/zannat/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	if err := run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Settings and logging
	settings, err := config.Load()
	if err != nil {
		return err
	}
	logs, err := util.ConfigureLogging(settings.LogFile, config.LogPrefix)
	if err != nil {
		return err
	}
	defer func() { util.LogError("close log file", logs.Close()) }()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	// 2. Mount the page. Close runs on every exit path, panics included.
	model := tui.NewMainModel(settings, models.DefaultContent())
	defer model.Close()

	// 3. Mouse motion drives the marker, so every motion event is wanted.
	p := tea.NewProgram(model, programOptions(settings, os.Stdin, os.Stdout)...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func programOptions(settings config.Settings, in io.Reader, out io.Writer) []tea.ProgramOption {
	opts := []tea.ProgramOption{
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithMouseAllMotion(),
	}
	if settings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}
