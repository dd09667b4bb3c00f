package main

import (
	"context"
	"fmt"
)

// cmdAchievements lists the catalog with earned state
func cmdAchievements() error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	earned := make(map[string]bool)
	for _, badge := range a.service.Badges() {
		earned[badge.ID] = true
	}

	catalog := a.service.Catalog()

	fmt.Printf("Achievements (%d/%d earned)\n", len(earned), len(catalog))
	fmt.Println("===========================")
	for _, achievement := range catalog {
		mark := " "
		if earned[achievement.ID] {
			mark = "✓"
		}
		fmt.Printf("%s %s %-20s %s (+%d points)\n",
			mark, achievement.Icon, achievement.Title, achievement.Description, achievement.Points)
	}

	return nil
}
