package domain

import "time"

// AchievementType groups achievements by the state they evaluate against.
type AchievementType string

const (
	AchievementLessons AchievementType = "lessons"
	AchievementPoints  AchievementType = "points"
	AchievementQuiz    AchievementType = "quiz"
	AchievementStreak  AchievementType = "streak"
	AchievementSkill   AchievementType = "skill"
	AchievementSpecial AchievementType = "special"
)

// Special achievement IDs with time-of-day predicates.
const (
	AchievementQuizAce    = "quiz-ace"
	AchievementQuizMaster = "quiz-master"
	AchievementEarlyBird  = "early-bird"
	AchievementNightOwl   = "night-owl"
)

// Early-bird unlocks before this local hour, night-owl at or after.
const (
	earlyBirdHour = 9
	nightOwlHour  = 22
)

// Achievement is one entry of the static, read-only catalog. IDs are
// globally unique; once an achievement is in EarnedBadges it is never
// re-evaluated or removed.
type Achievement struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Icon        string          `json:"icon" yaml:"icon"`
	Category    string          `json:"category" yaml:"category"`
	Type        AchievementType `json:"type" yaml:"type"`
	Target      int             `json:"target" yaml:"target"`
	Skill       string          `json:"skill,omitempty" yaml:"skill,omitempty"` // skill-type only
	Points      int             `json:"points" yaml:"points"`
}

// EvaluateAchievements returns catalog entries whose predicate holds for
// the given state and which are not yet earned, in catalog order. It is
// pure: the same state and clock always produce the same result, and it
// never mutates progress. Entries with an unknown type simply never
// unlock.
//
// The clock is the time of the triggering mutation, so time-of-day
// achievements reflect when the learner acted, not when a deferred scan
// happened to run.
func EvaluateAchievements(p *Progress, catalog []Achievement, now time.Time) []Achievement {
	var unlocked []Achievement
	for _, a := range catalog {
		if p.HasBadge(a.ID) {
			continue
		}
		if achieved(p, a, now) {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

func achieved(p *Progress, a Achievement, now time.Time) bool {
	switch a.Type {
	case AchievementLessons:
		return p.TotalLessons() >= a.Target
	case AchievementPoints:
		return p.TotalPoints >= a.Target
	case AchievementQuiz:
		switch a.ID {
		case AchievementQuizAce:
			return p.MaxQuizScore() >= 100
		case AchievementQuizMaster:
			return len(p.QuizScores) >= a.Target
		}
		return false
	case AchievementStreak:
		return p.CurrentStreak >= a.Target
	case AchievementSkill:
		return p.CompletedLessons[a.Skill] >= SkillCompletionLessons
	case AchievementSpecial:
		switch a.ID {
		case AchievementEarlyBird:
			return now.Hour() < earlyBirdHour
		case AchievementNightOwl:
			return now.Hour() >= nightOwlHour
		}
		return false
	}
	return false
}

// NewBadge converts an unlocked catalog entry to its earned form.
func NewBadge(a Achievement, earnedAt time.Time) Badge {
	return Badge{
		ID:       a.ID,
		Title:    a.Title,
		Icon:     a.Icon,
		Points:   a.Points,
		EarnedAt: earnedAt,
	}
}
