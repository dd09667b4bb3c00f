package main

import (
	"context"
	"fmt"

	"devmastery/internal/domain"
)

// cmdBookmark handles bookmark subcommands
func cmdBookmark(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: devmastery bookmark <add|list|remove> ...")
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("usage: devmastery bookmark add <id> <title> [url]")
		}
		url := ""
		if len(args) > 3 {
			url = args[3]
		}
		return cmdBookmarkAdd(args[1], args[2], url)
	case "list":
		return cmdBookmarkList()
	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: devmastery bookmark remove <id>")
		}
		return cmdBookmarkRemove(args[1])
	default:
		return fmt.Errorf("unknown bookmark command: %s (valid: add, list, remove)", args[0])
	}
}

func cmdBookmarkAdd(id, title, url string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.service.AddBookmark(ctx, domain.Bookmark{
		ID:    id,
		Type:  "manual",
		Title: title,
		URL:   url,
	}); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}

	fmt.Printf("Bookmarked: %s\n", title)
	return nil
}

func cmdBookmarkList() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	bookmarks := a.service.Bookmarks()
	if len(bookmarks) == 0 {
		fmt.Println("No bookmarks yet.")
		return nil
	}

	fmt.Println("Bookmarks")
	fmt.Println("=========")
	for _, b := range bookmarks {
		fmt.Printf("%-20s %s", b.ID, b.Title)
		if b.URL != "" {
			fmt.Printf("  <%s>", b.URL)
		}
		fmt.Println()
	}

	return nil
}

func cmdBookmarkRemove(id string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.service.RemoveBookmark(ctx, id); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}

	fmt.Printf("Bookmark removed: %s\n", id)
	return nil
}
