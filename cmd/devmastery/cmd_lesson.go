package main

import (
	"context"
	"fmt"

	"devmastery/internal/domain"
)

// cmdLesson handles lesson subcommands
func cmdLesson(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: devmastery lesson complete <skill>")
	}

	switch args[0] {
	case "complete":
		if len(args) < 2 {
			return fmt.Errorf("usage: devmastery lesson complete <skill>")
		}
		return cmdLessonComplete(args[1])
	default:
		return fmt.Errorf("unknown lesson command: %s (valid: complete)", args[0])
	}
}

func cmdLessonComplete(skillID string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	badges, err := a.service.CompleteLesson(ctx, skillID)
	if err != nil {
		return fmt.Errorf("complete lesson: %w", err)
	}

	overview := a.service.Overview()
	fmt.Printf("Lesson recorded for %s (+%d points)\n", skillID, domain.PointsPerLesson)
	fmt.Printf("Total: %d lessons, %d points, %d-day streak\n",
		overview.TotalLessons, overview.TotalPoints, overview.CurrentStreak)
	printUnlocked(badges)

	return nil
}
