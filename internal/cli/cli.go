// Package cli is the interactive journal shell. The logged in owner lives
// only in the shell and is passed into every service call.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/limbo/mindful/internal/service"
)

var (
	ErrExit        = errors.New("exit requested")
	ErrNotLoggedIn = errors.New("not logged in, use 'login <name> <password>'")
)

const basePrompt = "mindful"

type CLI struct {
	users     service.UserServiceI
	journal   service.JournalServiceI
	assistant service.AssistantServiceI
	out       io.Writer
	owner     string
}

// New builds a shell writing to out. assistant may be nil, which disables chat.
func New(users service.UserServiceI, journal service.JournalServiceI, assistant service.AssistantServiceI, out io.Writer) *CLI {
	return &CLI{
		users:     users,
		journal:   journal,
		assistant: assistant,
		out:       out,
	}
}

func (c *CLI) Owner() string {
	return c.owner
}

func (c *CLI) Prompt() string {
	if c.owner == "" {
		return basePrompt + "> "
	}
	return basePrompt + ":" + c.owner + "> "
}

// Run parses and executes one input line.
func (c *CLI) Run(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	return c.ExecuteCommand(ctx, ParseArgs(line))
}

// ParseArgs splits on blanks; double quotes group words into one argument.
func ParseArgs(input string) []string {
	var args []string
	var currentArg strings.Builder
	inQuotes := false
	quoted := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
			quoted = true
		case ' ', '\t':
			if !inQuotes {
				if currentArg.Len() > 0 || quoted {
					args = append(args, currentArg.String())
					currentArg.Reset()
					quoted = false
				}
			} else {
				currentArg.WriteRune(char)
			}
		default:
			currentArg.WriteRune(char)
		}
	}

	if currentArg.Len() > 0 || quoted {
		args = append(args, currentArg.String())
	}

	return args
}

func (c *CLI) ExecuteCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}

	switch strings.ToLower(args[0]) {
	case "register":
		return c.handleRegister(ctx, args[1:])
	case "login":
		return c.handleLogin(ctx, args[1:])
	case "logout":
		return c.handleLogout()
	case "log":
		return c.handleLog(ctx, args[1:])
	case "logs":
		return c.handleLogs(ctx, args[1:])
	case "stats":
		return c.handleStats(ctx, args[1:])
	case "insights":
		return c.handleInsights(ctx, args[1:])
	case "chat":
		return c.handleChat(ctx, args[1:])
	case "help":
		return c.handleHelp(args[1:])
	case "exit", "quit":
		fmt.Fprintln(c.out, "Exiting...")
		return ErrExit
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func (c *CLI) requireOwner() error {
	if c.owner == "" {
		return ErrNotLoggedIn
	}
	return nil
}

func (c *CLI) handleHelp(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Available commands:")
		names := make([]string, 0, len(commandHelp))
		for cmd := range commandHelp {
			names = append(names, cmd)
		}
		sort.Strings(names)
		for _, cmd := range names {
			fmt.Fprintf(c.out, "  %s\n", cmd)
		}
		fmt.Fprintln(c.out, "\nUse 'help <command>' for more information about a specific command.")
		return nil
	}
	help, ok := commandHelp[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	fmt.Fprintln(c.out, help)
	return nil
}

// commandHelp contains help text for each command.
var commandHelp = map[string]string{
	"register": `Syntax: register <name> <password>
Description: Creates a new account. Names are 3-100 letters, digits or underscores; passwords 8-72 characters.
Example: register alice "correct horse"`,

	"login": `Syntax: login <name> <password>
Description: Opens the journal of the given user for this shell.`,

	"logout": `Syntax: logout
Description: Closes the current journal.`,

	"log": `Syntax: log <date> <sleep hours> <sleep quality> <mood> [meals] [activities] [notes]
Description: Records one day. Meals and activities are separated by ';'.
- <sleep quality>: Poor, Fair, Good, "Very Good" or Excellent.
- <mood>: "Very Bad", Bad, Neutral, Good or "Very Good".
Example: log 2024-03-01 7.5 Good Neutral "oatmeal;salad" "Reading;Exercise" "quiet day"`,

	"logs": `Syntax: logs <from> <to>
Description: Lists logs between two dates inclusive, newest first.
Example: logs 2024-03-01 2024-03-31`,

	"stats": `Syntax: stats [week|month|year|all]
Description: Averages, frequencies and the sleep/mood series for the period ending at the latest log.
Example: stats month`,

	"insights": `Syntax: insights [week|month|year|all]
Description: Observations about sleep, mood and activities for the period ending at the latest log.`,

	"chat": `Syntax: chat [message]
Description: Talks to the assistant about the last week. Without a message prints conversation starters.`,

	"help": `Syntax: help [command]
Description: Lists commands or describes one.`,

	"exit": `Syntax: exit
Description: Exits the program.`,
}
