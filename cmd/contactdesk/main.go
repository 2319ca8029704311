package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/contactdeskhq/contactdesk/internal/client"
	"github.com/contactdeskhq/contactdesk/internal/tui"
)

var version = "dev"

// CLI is the command-line surface of the terminal client.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	API     string           `help:"Base URL of the contactdesk API." default:"http://localhost:8080" env:"CONTACTDESK_API"`
	Timeout int              `help:"Request timeout in seconds." default:"10"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("contactdesk"),
		kong.Description("Interactive terminal client for the contactdesk contact-management API."),
		kong.Vars{"version": version},
	)

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "contactdesk: requires an interactive terminal")
		os.Exit(1)
	}

	api := client.New(cli.API, time.Duration(cli.Timeout)*time.Second)
	p := tea.NewProgram(tui.NewModel(api), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "contactdesk: %v\n", err)
		os.Exit(1)
	}
}
