package main

import (
	"context"
	"fmt"
)

// cmdStreak shows streak state
func cmdStreak() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	current, longest, lastActivity := a.service.Streak()

	fmt.Println("Learning Streak")
	fmt.Println("===============")
	fmt.Printf("Current:  %d days\n", current)
	fmt.Printf("Longest:  %d days\n", longest)
	if lastActivity != nil {
		fmt.Printf("Last activity: %s\n", lastActivity.Format("2006-01-02"))
	} else {
		fmt.Println("No activity yet. Complete a lesson to start a streak!")
	}

	return nil
}
