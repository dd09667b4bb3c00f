package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// cmdNote handles note subcommands
func cmdNote(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: devmastery note <add|list|delete> ...")
	}

	switch args[0] {
	case "add":
		if len(args) < 4 {
			return fmt.Errorf("usage: devmastery note add <skill> <concept> <text>")
		}
		return cmdNoteAdd(args[1], args[2], strings.Join(args[3:], " "))
	case "list":
		return cmdNoteList()
	case "delete":
		if len(args) < 3 {
			return fmt.Errorf("usage: devmastery note delete <skill> <concept>")
		}
		return cmdNoteDelete(args[1], args[2])
	default:
		return fmt.Errorf("unknown note command: %s (valid: add, list, delete)", args[0])
	}
}

func cmdNoteAdd(skillID, conceptID, content string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.service.SaveNote(ctx, skillID, conceptID, content); err != nil {
		return fmt.Errorf("save note: %w", err)
	}

	fmt.Printf("Note saved for %s/%s\n", skillID, conceptID)
	return nil
}

func cmdNoteList() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	notes := a.service.Notes()
	if len(notes) == 0 {
		fmt.Println("No notes yet.")
		return nil
	}

	keys := make([]string, 0, len(notes))
	for k := range notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println("Notes")
	fmt.Println("=====")
	for _, key := range keys {
		note := notes[key]
		fmt.Printf("%-30s %s", key, note.Content)
		if len(note.Tags) > 0 {
			fmt.Printf("  [%s]", strings.Join(note.Tags, ", "))
		}
		fmt.Println()
	}

	return nil
}

func cmdNoteDelete(skillID, conceptID string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.service.DeleteNote(ctx, skillID, conceptID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	fmt.Printf("Note deleted for %s/%s\n", skillID, conceptID)
	return nil
}
