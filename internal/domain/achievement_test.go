package domain

import (
	"testing"
	"time"
)

func testCatalog() []Achievement {
	return []Achievement{
		{ID: "first-lesson", Title: "First Steps", Type: AchievementLessons, Target: 1, Points: 10},
		{ID: "lesson-10", Title: "Learning Momentum", Type: AchievementLessons, Target: 10, Points: 50},
		{ID: "points-1000", Title: "Rising Star", Type: AchievementPoints, Target: 1000, Points: 100},
		{ID: "quiz-ace", Title: "Quiz Ace", Type: AchievementQuiz, Target: 100, Points: 100},
		{ID: "quiz-master", Title: "Quiz Master", Type: AchievementQuiz, Target: 5, Points: 150},
		{ID: "streak-7", Title: "Week Warrior", Type: AchievementStreak, Target: 7, Points: 150},
		{ID: "docker-master", Title: "Docker Master", Type: AchievementSkill, Skill: "docker", Points: 200},
		{ID: "early-bird", Title: "Early Bird", Type: AchievementSpecial, Points: 50},
		{ID: "night-owl", Title: "Night Owl", Type: AchievementSpecial, Points: 50},
	}
}

var noon = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func unlockIDs(list []Achievement) []string {
	ids := make([]string, len(list))
	for i, a := range list {
		ids[i] = a.ID
	}
	return ids
}

func TestEvaluateAchievements_LessonThreshold(t *testing.T) {
	p := NewProgress()
	p.CompletedLessons["docker"] = 6
	p.CompletedLessons["kubernetes"] = 3

	unlocked := EvaluateAchievements(p, testCatalog(), noon)
	if len(unlocked) != 1 || unlocked[0].ID != "first-lesson" {
		t.Fatalf("unlocked = %v; want [first-lesson] at 9 lessons", unlockIDs(unlocked))
	}

	p.CompletedLessons["kubernetes"] = 4
	unlocked = EvaluateAchievements(p, testCatalog(), noon)
	if len(unlocked) != 2 {
		t.Fatalf("unlocked = %v; want both lesson achievements at exactly 10", unlockIDs(unlocked))
	}
	// Catalog order, not priority order
	if unlocked[0].ID != "first-lesson" || unlocked[1].ID != "lesson-10" {
		t.Errorf("unlock order = %v; want catalog order", unlockIDs(unlocked))
	}
}

func TestEvaluateAchievements_SkipsEarned(t *testing.T) {
	p := NewProgress()
	p.CompletedLessons["docker"] = 1
	p.EarnedBadges = []Badge{{ID: "first-lesson", EarnedAt: noon}}

	unlocked := EvaluateAchievements(p, testCatalog(), noon)
	for _, a := range unlocked {
		if a.ID == "first-lesson" {
			t.Error("first-lesson must not unlock again")
		}
	}
}

func TestEvaluateAchievements_Points(t *testing.T) {
	p := NewProgress()
	p.TotalPoints = 999

	unlocked := EvaluateAchievements(p, testCatalog(), noon)
	if len(unlocked) != 0 {
		t.Errorf("unlocked = %v; want none at 999 points", unlockIDs(unlocked))
	}

	p.TotalPoints = 1000
	unlocked = EvaluateAchievements(p, testCatalog(), noon)
	if len(unlocked) != 1 || unlocked[0].ID != "points-1000" {
		t.Errorf("unlocked = %v; want [points-1000]", unlockIDs(unlocked))
	}
}

func TestEvaluateAchievements_QuizAceAndMaster(t *testing.T) {
	p := NewProgress()
	p.QuizScores = map[string]int{"docker": 100}

	unlocked := EvaluateAchievements(p, testCatalog(), noon)
	if len(unlocked) != 1 || unlocked[0].ID != "quiz-ace" {
		t.Fatalf("unlocked = %v; want [quiz-ace] for a perfect score", unlockIDs(unlocked))
	}

	p.QuizScores = map[string]int{"a": 50, "b": 60, "c": 70, "d": 80, "e": 90}
	unlocked = EvaluateAchievements(p, testCatalog(), noon)
	if len(unlocked) != 1 || unlocked[0].ID != "quiz-master" {
		t.Fatalf("unlocked = %v; want [quiz-master] for five distinct skills", unlockIDs(unlocked))
	}
}

func TestEvaluateAchievements_Streak(t *testing.T) {
	p := NewProgress()
	p.CurrentStreak = 7

	unlocked := EvaluateAchievements(p, testCatalog(), noon)
	if len(unlocked) != 1 || unlocked[0].ID != "streak-7" {
		t.Errorf("unlocked = %v; want [streak-7]", unlockIDs(unlocked))
	}
}

func TestEvaluateAchievements_SkillThreshold(t *testing.T) {
	p := NewProgress()
	p.CompletedLessons["docker"] = SkillCompletionLessons - 1
	p.EarnedBadges = []Badge{{ID: "first-lesson"}, {ID: "lesson-10"}}

	unlocked := EvaluateAchievements(p, testCatalog(), noon)
	if len(unlocked) != 0 {
		t.Errorf("unlocked = %v; want none below the skill threshold", unlockIDs(unlocked))
	}

	p.CompletedLessons["docker"] = SkillCompletionLessons
	unlocked = EvaluateAchievements(p, testCatalog(), noon)
	if len(unlocked) != 1 || unlocked[0].ID != "docker-master" {
		t.Errorf("unlocked = %v; want [docker-master]", unlockIDs(unlocked))
	}
}

func TestEvaluateAchievements_TimeOfDay(t *testing.T) {
	p := NewProgress()

	dawn := time.Date(2024, 3, 10, 8, 59, 0, 0, time.UTC)
	unlocked := EvaluateAchievements(p, testCatalog(), dawn)
	if len(unlocked) != 1 || unlocked[0].ID != "early-bird" {
		t.Errorf("unlocked at 08:59 = %v; want [early-bird]", unlockIDs(unlocked))
	}

	nine := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	if got := EvaluateAchievements(p, testCatalog(), nine); len(got) != 0 {
		t.Errorf("unlocked at 09:00 = %v; want none", unlockIDs(got))
	}

	late := time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC)
	unlocked = EvaluateAchievements(p, testCatalog(), late)
	if len(unlocked) != 1 || unlocked[0].ID != "night-owl" {
		t.Errorf("unlocked at 22:00 = %v; want [night-owl]", unlockIDs(unlocked))
	}
}

func TestEvaluateAchievements_UnknownTypeNeverUnlocks(t *testing.T) {
	p := NewProgress()
	p.TotalPoints = 1 << 30
	catalog := []Achievement{{ID: "mystery", Type: "velocity", Target: 0, Points: 10}}

	if got := EvaluateAchievements(p, catalog, noon); len(got) != 0 {
		t.Errorf("unlocked = %v; want none for an unknown type", unlockIDs(got))
	}
}

func TestEvaluateAchievements_Pure(t *testing.T) {
	p := NewProgress()
	p.CompletedLessons["docker"] = 3

	before := p.TotalPoints
	first := EvaluateAchievements(p, testCatalog(), noon)
	second := EvaluateAchievements(p, testCatalog(), noon)

	if len(first) != len(second) {
		t.Errorf("repeated evaluation differs: %v then %v", unlockIDs(first), unlockIDs(second))
	}
	if p.TotalPoints != before || len(p.EarnedBadges) != 0 {
		t.Error("EvaluateAchievements must not mutate progress")
	}
}
