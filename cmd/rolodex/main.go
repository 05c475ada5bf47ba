package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanpaul/rolodex/internal/config"
	"github.com/jeanpaul/rolodex/internal/phonebook"
	"github.com/jeanpaul/rolodex/internal/plain"
	"github.com/jeanpaul/rolodex/internal/tui"
	"github.com/jeanpaul/rolodex/pkg/version"
)

func main() {
	fileFlag := flag.String("file", "", "Phonebook file path (overrides config)")
	pageSizeFlag := flag.Int("page-size", 0, "Records per page (overrides config)")
	plainFlag := flag.Bool("plain", false, "Use the line-mode menu instead of the TUI")
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("rolodex %s (%s)\n", version.Version, version.Commit)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("config error: %s", err)
	}
	if *fileFlag != "" {
		cfg.Phonebook = *fileFlag
	}
	if *pageSizeFlag > 0 {
		cfg.PageSize = *pageSizeFlag
	}

	store, err := phonebook.NewStore(phonebook.NewStorage(cfg.Phonebook))
	if err != nil {
		fatal("cannot open phonebook %s: %s", cfg.Phonebook, err)
	}

	// Handle subcommands (scripting interface, no menu)
	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "list":
			cmdList(store, cfg.PageSize, args[1:])
			return
		case "search":
			cmdSearch(store, strings.Join(args[1:], " "))
			return
		case "add":
			cmdAdd(store, args[1:])
			return
		case "help":
			showHelp()
			return
		default:
			fatal("unknown command %q (try: rolodex help)", args[0])
		}
	}

	if *plainFlag || cfg.Plain || !isTerminal() {
		app := plain.New(store, cfg.PageSize, os.Stdin, os.Stdout)
		if err := app.Run(); err != nil {
			fatal("%s", err)
		}
		return
	}

	launchTUI(store, cfg.PageSize)
}

func launchTUI(store *phonebook.Store, pageSize int) {
	m := tui.NewModel(store, pageSize)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal("TUI error: %s", err)
	}
}

func cmdList(store *phonebook.Store, pageSize int, args []string) {
	page := 1
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("bad page number %q", args[0])
		}
		page = p
	}

	recs, err := store.Page(page, pageSize)
	switch {
	case errors.Is(err, phonebook.ErrEmpty):
		fmt.Println("Phonebook is empty!")
	case err != nil:
		fatal("%s", err)
	case len(recs) == 0:
		fmt.Println("No records on this page.")
	default:
		offset := (page - 1) * pageSize
		for i, r := range recs {
			fmt.Printf("%d. %s\n", offset+i+1, r.Render())
		}
	}
}

func cmdSearch(store *phonebook.Store, term string) {
	found := store.Search(term)
	if len(found) == 0 {
		fmt.Println("No records found.")
		return
	}
	for i, r := range found {
		fmt.Printf("%d. %s\n", i+1, r.Render())
	}
}

func cmdAdd(store *phonebook.Store, args []string) {
	if len(args) != 6 {
		fatal("usage: rolodex add <last> <first> <middle> <organization> <work-phone> <personal-phone>")
	}
	pos, err := store.Add(phonebook.Record{
		LastName:      args[0],
		FirstName:     args[1],
		MiddleName:    args[2],
		Organization:  args[3],
		WorkPhone:     args[4],
		PersonalPhone: args[5],
	})
	if err != nil {
		fatal("record not saved: %s", err)
	}
	fmt.Printf("Record added at position %d\n", pos)
}

// isTerminal checks if stdin is a terminal
func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("error: "+msg))
	os.Exit(1)
}

func showHelp() {
	help := `
` + tui.BannerStyle.Render("Rolodex") + ` - phonebook for your terminal

` + tui.TitleStyle.Render("USAGE:") + `
  rolodex [flags]             Start the interactive phonebook
  rolodex <command> [args]    Run a command and exit

` + tui.TitleStyle.Render("COMMANDS:") + `
  list [page]                 Print one page of records
  search <term>               Print records matching a substring
  add <6 fields>              Add a record (last first middle org work personal)
  help                        Show this help

` + tui.TitleStyle.Render("FLAGS:") + `
  --file <path>               Phonebook file (default ~/.local/share/rolodex/phonebook.json)
  --page-size <n>             Records per page (default 5)
  --plain                     Line-mode menu, no screen control
  --version                   Show version
  --help, -h                  Show this help

` + tui.TitleStyle.Render("EXAMPLES:") + `
  rolodex                     Open the TUI
  rolodex --plain             Menu over plain stdin/stdout (also used when piped)
  rolodex list 2              Print the second page
  rolodex search ivanov       Find records containing "ivanov"
`
	fmt.Println(help)
}
