package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// cmdQuiz handles quiz subcommands
func cmdQuiz(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: devmastery quiz record <skill> <correct>/<total>")
	}

	switch args[0] {
	case "record":
		if len(args) < 3 {
			return fmt.Errorf("usage: devmastery quiz record <skill> <correct>/<total>")
		}
		return cmdQuizRecord(args[1], args[2])
	case "scores":
		return cmdQuizScores()
	default:
		return fmt.Errorf("unknown quiz command: %s (valid: record, scores)", args[0])
	}
}

func cmdQuizRecord(skillID, result string) error {
	correct, total, err := parseQuizResult(result)
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	badges, err := a.service.CompleteQuiz(ctx, skillID, correct, total)
	if err != nil {
		return fmt.Errorf("record quiz: %w", err)
	}

	fmt.Printf("Quiz recorded for %s: %d/%d (%d%%)\n", skillID, correct, total, correct*100/total)
	printUnlocked(badges)

	return nil
}

func cmdQuizScores() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	scores := a.service.QuizScores()
	if len(scores) == 0 {
		fmt.Println("No quizzes taken yet.")
		return nil
	}

	fmt.Println("Quiz Scores")
	fmt.Println("===========")
	for skill, score := range scores {
		bar := renderProgressBar(float64(score)/100, 20)
		fmt.Printf("%-20s %s %d%%\n", skill, bar, score)
	}

	return nil
}

// parseQuizResult parses "8/10" style results.
func parseQuizResult(s string) (correct, total int, err error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("result must be <correct>/<total>, e.g. 8/10")
	}
	correct, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid correct count %q", parts[0])
	}
	total, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid total count %q", parts[1])
	}
	return correct, total, nil
}
