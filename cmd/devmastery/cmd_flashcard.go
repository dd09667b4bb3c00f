package main

import (
	"context"
	"fmt"
	"strconv"

	"devmastery/internal/deck"
	"devmastery/internal/domain"
)

// cmdFlashcard handles flashcard subcommands
func cmdFlashcard(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: devmastery flashcard <add|list|review|import> ...")
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("usage: devmastery flashcard add <question> <answer> [category]")
		}
		category := ""
		if len(args) > 3 {
			category = args[3]
		}
		return cmdFlashcardAdd(args[1], args[2], category)
	case "list":
		return cmdFlashcardList()
	case "review":
		if len(args) < 3 {
			return fmt.Errorf("usage: devmastery flashcard review <id> <confidence 0-100>")
		}
		return cmdFlashcardReview(args[1], args[2])
	case "import":
		if len(args) < 2 {
			return fmt.Errorf("usage: devmastery flashcard import <file.csv|file.xlsx>")
		}
		return cmdFlashcardImport(args[1])
	default:
		return fmt.Errorf("unknown flashcard command: %s (valid: add, list, review, import)", args[0])
	}
}

func cmdFlashcardAdd(question, answer, category string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	card, err := a.service.AddFlashcard(ctx, question, answer, category)
	if err != nil {
		return fmt.Errorf("add flashcard: %w", err)
	}

	fmt.Printf("Card added: %s\n", card.ID)
	return nil
}

func cmdFlashcardList() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	cards := a.service.Flashcards()
	if len(cards) == 0 {
		fmt.Println("No flashcards yet. Add one with 'devmastery flashcard add'.")
		return nil
	}

	stats := a.service.Overview().Flashcards
	fmt.Printf("Flashcards (%d total, %d reviews)\n", stats.Total, stats.TotalReviews)
	fmt.Println("================================")

	for _, bucket := range []domain.ConfidenceBucket{domain.BucketLearning, domain.BucketReviewing, domain.BucketMastered} {
		printed := false
		for _, card := range cards {
			if card.Bucket() != bucket {
				continue
			}
			if !printed {
				fmt.Printf("\n%s\n", bucket)
				printed = true
			}
			fmt.Printf("  [%3d%%] %s  (%s)\n", card.Confidence, card.Question, card.ID)
		}
	}

	return nil
}

func cmdFlashcardReview(id, confidenceArg string) error {
	confidence, err := strconv.Atoi(confidenceArg)
	if err != nil {
		return fmt.Errorf("invalid confidence %q", confidenceArg)
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.service.ReviewFlashcard(ctx, id, confidence); err != nil {
		return fmt.Errorf("review flashcard: %w", err)
	}

	fmt.Printf("Review recorded at %d%% confidence\n", confidence)
	return nil
}

func cmdFlashcardImport(path string) error {
	result, err := deck.ImportFile(path, deck.DefaultImportConfig())
	if err != nil {
		return fmt.Errorf("import deck: %w", err)
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	added, err := a.service.ImportFlashcards(ctx, result.Cards)
	if err != nil {
		return fmt.Errorf("import deck: %w", err)
	}

	fmt.Printf("Imported %d cards (%d skipped)\n", added, result.Skipped+len(result.Cards)-added)
	for _, msg := range result.Errors {
		fmt.Printf("  warning: %s\n", msg)
	}

	return nil
}
