package main

import (
	"context"
	"fmt"
	"sort"
)

// cmdStats shows progress statistics
func cmdStats(args []string) error {
	subCmd := "overview"
	if len(args) > 0 {
		subCmd = args[0]
	}

	switch subCmd {
	case "overview", "":
		return cmdStatsOverview()
	case "skills":
		return cmdStatsSkills()
	default:
		return fmt.Errorf("unknown stats command: %s (valid: overview, skills)", subCmd)
	}
}

func cmdStatsOverview() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	overview := a.service.Overview()

	fmt.Println("Learning Statistics")
	fmt.Println("==================")
	fmt.Printf("Total Points:       %d\n", overview.TotalPoints)
	fmt.Printf("Lessons Completed:  %d\n", overview.TotalLessons)
	fmt.Printf("Quizzes Taken:      %d\n", overview.QuizzesTaken)
	fmt.Printf("Current Streak:     %d days\n", overview.CurrentStreak)
	fmt.Printf("Longest Streak:     %d days\n", overview.LongestStreak)
	fmt.Printf("Badges Earned:      %d\n", overview.BadgesEarned)
	fmt.Printf("Skills Completed:   %d\n", overview.CompletedSkills)
	fmt.Printf("Learning Path:      %s\n", overview.LearningPath)

	if overview.Flashcards.Total > 0 {
		fmt.Println("\nFlashcards")
		fmt.Println("----------")
		fmt.Printf("Learning:   %d\n", overview.Flashcards.Learning)
		fmt.Printf("Reviewing:  %d\n", overview.Flashcards.Reviewing)
		fmt.Printf("Mastered:   %d\n", overview.Flashcards.Mastered)
	}

	return nil
}

func cmdStatsSkills() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	progress := a.service.SkillProgress()
	if len(progress) == 0 {
		fmt.Println("No skill progress tracked yet. Start learning!")
		return nil
	}

	skills := make([]string, 0, len(progress))
	for skill := range progress {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	fmt.Println("Skills")
	fmt.Println("======")
	for _, skill := range skills {
		pct := progress[skill]
		bar := renderProgressBar(float64(pct)/100, 20)
		fmt.Printf("%-20s %s %d%%\n", skill, bar, pct)
	}

	return nil
}
