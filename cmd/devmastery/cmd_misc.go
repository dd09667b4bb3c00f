package main

import (
	"context"
	"fmt"
	"strings"

	"devmastery/internal/domain"
	"devmastery/internal/mcp"
)

// cmdPath handles learning path subcommands
func cmdPath(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: devmastery path set <beginner|intermediate|advanced>")
	}

	switch args[0] {
	case "set":
		if len(args) < 2 {
			return fmt.Errorf("usage: devmastery path set <beginner|intermediate|advanced>")
		}
		return cmdPathSet(args[1])
	default:
		return fmt.Errorf("unknown path command: %s (valid: set)", args[0])
	}
}

func cmdPathSet(path string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.service.SetLearningPath(ctx, domain.LearningPath(path)); err != nil {
		return fmt.Errorf("set learning path: %w", err)
	}

	fmt.Printf("Learning path set to %s\n", path)
	return nil
}

// cmdSearch handles search history subcommands
func cmdSearch(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: devmastery search <add|list> ...")
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: devmastery search add <title> [path]")
		}
		path := ""
		if len(args) > 2 {
			path = args[2]
		}
		return cmdSearchAdd(args[1], path)
	case "list":
		return cmdSearchList()
	default:
		return fmt.Errorf("unknown search command: %s (valid: add, list)", args[0])
	}
}

func cmdSearchAdd(title, path string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.service.RecordSearch(ctx, title, path); err != nil {
		return fmt.Errorf("record search: %w", err)
	}

	fmt.Printf("Search recorded: %s\n", title)
	return nil
}

func cmdSearchList() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	history := a.service.SearchHistory()
	if len(history) == 0 {
		fmt.Println("No search history.")
		return nil
	}

	fmt.Println("Recent Searches")
	fmt.Println("===============")
	for _, entry := range history {
		fmt.Printf("%s", entry.Title)
		if entry.Path != "" {
			fmt.Printf("  (%s)", entry.Path)
		}
		fmt.Println()
	}

	return nil
}

// cmdReset discards all progress after explicit confirmation
func cmdReset(args []string) error {
	confirmed := false
	for _, arg := range args {
		if arg == "--confirm" || arg == "-y" {
			confirmed = true
		}
	}
	if !confirmed {
		return fmt.Errorf("reset discards all progress; run 'devmastery reset --confirm' to proceed")
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Reset(ctx)
	fmt.Println("All progress has been reset.")
	return nil
}

// cmdMCP starts the MCP server on stdio
func cmdMCP() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	server := mcp.NewServer(a.service)

	if err := server.ServeStdio(ctx); err != nil && !strings.Contains(err.Error(), "context canceled") {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}
