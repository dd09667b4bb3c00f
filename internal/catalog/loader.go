// Package catalog loads the static achievement and skill catalogs from
// YAML. The built-in catalogs ship with the binary; a learner can
// override them by dropping files into the catalogs directory.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"devmastery/internal/domain"
)

// AchievementsFile is the YAML structure for an achievement catalog.
type AchievementsFile struct {
	Achievements []domain.Achievement `yaml:"achievements"`
}

// Skill is one entry of the skill catalog: a learnable topic with its
// concepts in curriculum order.
type Skill struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Category string   `yaml:"category" json:"category"`
	Path     string   `yaml:"path" json:"path"`
	Concepts []string `yaml:"concepts" json:"concepts"`
}

// SkillsFile is the YAML structure for a skill catalog.
type SkillsFile struct {
	Skills []Skill `yaml:"skills"`
}

// LoadAchievements reads an achievement catalog from a YAML file.
// Entries with unknown types are kept; they simply never unlock, so an
// old binary can read a newer catalog without failing.
func LoadAchievements(path string) ([]domain.Achievement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read achievements file: %w", err)
	}

	var file AchievementsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse achievements file: %w", err)
	}

	seen := make(map[string]bool, len(file.Achievements))
	for _, a := range file.Achievements {
		if a.ID == "" {
			return nil, fmt.Errorf("achievement with empty id")
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
	}

	return file.Achievements, nil
}

// LoadSkills reads a skill catalog from a YAML file.
func LoadSkills(path string) ([]Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skills file: %w", err)
	}

	var file SkillsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse skills file: %w", err)
	}

	return file.Skills, nil
}

// LoadAchievementsOrDefault loads the catalog from the given path,
// falling back to the built-in catalog when the file does not exist.
func LoadAchievementsOrDefault(path string) ([]domain.Achievement, error) {
	if path == "" {
		return DefaultAchievements(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultAchievements(), nil
	}
	return LoadAchievements(path)
}

// DefaultAchievements is the built-in achievement catalog.
func DefaultAchievements() []domain.Achievement {
	return []domain.Achievement{
		{
			ID:          "first-lesson",
			Title:       "First Steps",
			Description: "Complete your first lesson",
			Icon:        "🎯",
			Category:    "lessons",
			Type:        domain.AchievementLessons,
			Target:      1,
			Points:      10,
		},
		{
			ID:          "lesson-10",
			Title:       "Getting Serious",
			Description: "Complete 10 lessons",
			Icon:        "📚",
			Category:    "lessons",
			Type:        domain.AchievementLessons,
			Target:      10,
			Points:      50,
		},
		{
			ID:          "lesson-50",
			Title:       "Half Century",
			Description: "Complete 50 lessons",
			Icon:        "🏅",
			Category:    "lessons",
			Type:        domain.AchievementLessons,
			Target:      50,
			Points:      200,
		},
		{
			ID:          "points-1000",
			Title:       "Point Collector",
			Description: "Earn 1000 points",
			Icon:        "💎",
			Category:    "points",
			Type:        domain.AchievementPoints,
			Target:      1000,
			Points:      100,
		},
		{
			ID:          domain.AchievementQuizAce,
			Title:       "Quiz Ace",
			Description: "Score 100% on a quiz",
			Icon:        "🧠",
			Category:    "quizzes",
			Type:        domain.AchievementQuiz,
			Points:      100,
		},
		{
			ID:          domain.AchievementQuizMaster,
			Title:       "Quiz Master",
			Description: "Take quizzes in 5 different skills",
			Icon:        "🎓",
			Category:    "quizzes",
			Type:        domain.AchievementQuiz,
			Target:      5,
			Points:      150,
		},
		{
			ID:          "streak-7",
			Title:       "Week Warrior",
			Description: "Keep a 7-day learning streak",
			Icon:        "🔥",
			Category:    "streaks",
			Type:        domain.AchievementStreak,
			Target:      7,
			Points:      150,
		},
		{
			ID:          "streak-30",
			Title:       "Monthly Master",
			Description: "Keep a 30-day learning streak",
			Icon:        "⚡",
			Category:    "streaks",
			Type:        domain.AchievementStreak,
			Target:      30,
			Points:      300,
		},
		{
			ID:          "docker-master",
			Title:       "Docker Master",
			Description: "Master the Docker skill track",
			Icon:        "🐳",
			Category:    "skills",
			Type:        domain.AchievementSkill,
			Skill:       "docker",
			Points:      200,
		},
		{
			ID:          domain.AchievementEarlyBird,
			Title:       "Early Bird",
			Description: "Learn before 9 in the morning",
			Icon:        "🌅",
			Category:    "special",
			Type:        domain.AchievementSpecial,
			Points:      50,
		},
		{
			ID:          domain.AchievementNightOwl,
			Title:       "Night Owl",
			Description: "Learn after 10 at night",
			Icon:        "🦉",
			Category:    "special",
			Type:        domain.AchievementSpecial,
			Points:      50,
		},
	}
}
