// ABOUTME: Entry point for the leadgen MCP server, CLI, and TUI
// ABOUTME: Routes to subcommands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/harperreed/leadgen/cli"
	"github.com/harperreed/leadgen/store"
)

const version = "0.1.0"

func main() {
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dataPath := flag.String("data-path", "", "Data directory (default: ~/.local/share/leadgen)")
	user := flag.String("user", "", "Account whose leads to operate on (default: guest)")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("leadgen version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "mcp":
		s, closeFn := openStore(*dataPath, *user)
		defer closeFn()

		if err := cli.MCPCommand(s); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "leads":
		s, closeFn := openStore(*dataPath, *user)
		defer closeFn()

		if len(commandArgs) == 0 {
			fmt.Println("Error: leads requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		leadsCommand := commandArgs[0]
		leadsArgs := commandArgs[1:]

		switch leadsCommand {
		case "add":
			runCommand(cli.AddLeadCommand, s, leadsArgs)
		case "list":
			runCommand(cli.ListLeadsCommand, s, leadsArgs)
		case "update":
			runCommand(cli.UpdateLeadCommand, s, leadsArgs)
		case "delete":
			runCommand(cli.DeleteLeadCommand, s, leadsArgs)
		case "status":
			runCommand(cli.ChangeStatusCommand, s, leadsArgs)
		case "bulk-status":
			runCommand(cli.BulkStatusCommand, s, leadsArgs)
		case "bulk-delete":
			runCommand(cli.BulkDeleteCommand, s, leadsArgs)
		case "add-note":
			runCommand(cli.AddNoteCommand, s, leadsArgs)
		case "add-task":
			runCommand(cli.AddTaskCommand, s, leadsArgs)
		case "toggle-task":
			runCommand(cli.ToggleTaskCommand, s, leadsArgs)
		case "duplicates":
			runCommand(cli.DuplicatesCommand, s, leadsArgs)
		case "export":
			runCommand(cli.ExportCommand, s, leadsArgs)
		case "import":
			runCommand(cli.ImportCommand, s, leadsArgs)
		default:
			fmt.Printf("Unknown leads command: %s\n\n", leadsCommand)
			printUsage()
			os.Exit(1)
		}

	case "analytics":
		s, closeFn := openStore(*dataPath, *user)
		defer closeFn()

		runCommand(cli.AnalyticsCommand, s, commandArgs)

	case "tui":
		s, closeFn := openStore(*dataPath, *user)
		defer closeFn()

		if err := cli.TUICommand(s); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	case "viz":
		s, closeFn := openStore(*dataPath, *user)
		defer closeFn()

		if len(commandArgs) == 0 {
			fmt.Println("Error: viz requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		vizCommand := commandArgs[0]
		vizArgs := commandArgs[1:]

		switch vizCommand {
		case "graph":
			if len(vizArgs) == 0 {
				fmt.Println("Error: viz graph requires a type (pipeline or duplicates)")
				printUsage()
				os.Exit(1)
			}

			graphType := vizArgs[0]
			graphArgs := vizArgs[1:]

			switch graphType {
			case "pipeline":
				runCommand(cli.VizGraphPipelineCommand, s, graphArgs)
			case "duplicates":
				runCommand(cli.VizGraphDuplicatesCommand, s, graphArgs)
			default:
				fmt.Printf("Unknown graph type: %s\n\n", graphType)
				printUsage()
				os.Exit(1)
			}

		default:
			fmt.Printf("Unknown viz command: %s\n\n", vizCommand)
			printUsage()
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runCommand(cmd func(*store.Store, []string) error, s *store.Store, args []string) {
	if err := cmd(s, args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// openStore opens the badger database and binds it to the active
// account. Flag values win over environment variables.
func openStore(dataPath, user string) (*store.Store, func()) {
	if dataPath == "" {
		dataPath = os.Getenv("LEADGEN_DATA_PATH")
	}
	if dataPath == "" {
		dataPath = filepath.Join(xdg.DataHome, "leadgen")
	}
	if user == "" {
		user = os.Getenv("LEADGEN_USER")
	}

	kv, err := store.OpenDatabase(dataPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	return store.New(kv, user), func() { _ = kv.Close() }
}

func printUsage() {
	fmt.Printf(`leadgen v%s - Lead pipeline tracker

USAGE:
  leadgen [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --data-path <dir>      Data directory (default: ~/.local/share/leadgen)
  --user <account>       Account whose leads to operate on (default: guest)

COMMANDS:
  mcp                    Start MCP server for Claude Desktop
  leads                  Lead management commands
  analytics              Pipeline dashboard
  tui                    Interactive terminal interface
  viz                    Graphviz visualizations

LEAD COMMANDS:
  leadgen leads add         Add a new lead
    --name <name>             Lead name (required)
    --email <email>           Email address (required)
    --phone <phone>           Phone number
    --company <company>       Company name
    --source <source>         Source (website, referral, social, email, phone, other)
    --status <status>         Status (new, contacted, converted, lost)

  leadgen leads list        List leads with scores
    --status <status>         Filter by status
    --source <source>         Filter by source

  leadgen leads update [flags] <id>  Update a lead
    --name, --email, --phone, --company, --source, --status
    Note: flags must come before the lead ID

  leadgen leads delete <id>          Delete a lead
  leadgen leads status --to <status> <id>
  leadgen leads bulk-status --to <status> <id>...
  leadgen leads bulk-delete <id>...

  leadgen leads add-note --content <text> <id>
  leadgen leads add-task --title <text> [--type <type>] [--due YYYY-MM-DD] <id>
  leadgen leads toggle-task <lead-id> <task-id>

  leadgen leads duplicates  List leads sharing an email address
  leadgen leads export      Export leads as CSV
    --output <file>           Output file (default: stdout)
  leadgen leads import <file.csv>    Import leads from CSV

ANALYTICS:
  leadgen analytics         Summary metrics, breakdowns, 30-day trend

VIZ COMMANDS:
  leadgen viz graph pipeline    Pipeline graph grouped by status
    --output <file>               Output file (default: stdout)
  leadgen viz graph duplicates  Duplicate email clusters
    --output <file>               Output file (default: stdout)

EXAMPLES:
  # Start MCP server for Claude Desktop
  leadgen mcp

  # Add a lead
  leadgen leads add --name "John Smith" --email "john@acme.com" --company "Acme Corp" --source referral

  # Move a lead through the pipeline
  leadgen leads status --to contacted 3f8a...

  # Show the dashboard
  leadgen analytics

`, version)
}
