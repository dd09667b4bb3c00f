package domain

import (
	"time"

	"github.com/google/uuid"
)

// Points awarded by the built-in mutators.
const (
	PointsPerLesson        = 10
	PointsPerCorrectAnswer = 10
)

// SkillCompletionLessons is the lesson count at which a skill-type
// achievement unlocks. The threshold is fixed regardless of how many
// concepts a skill actually has; skill progress percentages track the
// real concept count separately.
const SkillCompletionLessons = 100

// SearchHistoryLimit caps the search history, most recent first.
const SearchHistoryLimit = 10

// Progress is the aggregate root for all learner state. It is owned by
// the progress service and mutated only through its own methods; it is
// never destroyed, only reset to defaults on explicit user action.
type Progress struct {
	UserID string `json:"user_id"`

	// Lessons and points
	CompletedLessons map[string]int `json:"completed_lessons"` // skill slug -> count
	TotalPoints      int            `json:"total_points"`

	// Quizzes: latest percentage per skill, overwrites previous
	QuizScores map[string]int `json:"quiz_scores"`

	// Streaks
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`

	// Achievements, in unlock order
	EarnedBadges []Badge `json:"earned_badges"`

	// Notes keyed by "skill-concept"
	Notes map[string]Note `json:"notes"`

	Flashcards    []Flashcard   `json:"flashcards"`
	Bookmarks     []Bookmark    `json:"bookmarks"`
	SearchHistory []SearchEntry `json:"search_history"`

	ChallengeScores []ChallengeScore `json:"challenge_scores"`

	// Concept/skill level progress
	CompletedConcepts []string       `json:"completed_concepts"`
	SkillProgress     map[string]int `json:"skill_progress"` // skill slug -> percentage
	CompletedSkills   []string       `json:"completed_skills"`

	// Learning path
	LearningPath LearningPath               `json:"learning_path"`
	PathProgress map[LearningPath]PathState `json:"path_progress"`

	Settings Settings `json:"settings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Badge is an earned achievement.
type Badge struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Icon     string    `json:"icon"`
	Points   int       `json:"points"`
	EarnedAt time.Time `json:"earned_at"`
}

// Note is a learner note attached to a skill/concept pair.
type Note struct {
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Bookmark marks saved content. Type tags the origin, e.g.
// "interview-question".
type Bookmark struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchEntry is one item of the recent-search history.
type SearchEntry struct {
	Title string    `json:"title"`
	Path  string    `json:"path,omitempty"`
	At    time.Time `json:"at"`
}

// ChallengeScore is the best recorded score for a coding challenge.
type ChallengeScore struct {
	ChallengeID string    `json:"challenge_id"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// PathState tracks completion within one learning path.
type PathState struct {
	Completed []string `json:"completed"`
	Current   string   `json:"current,omitempty"`
}

// NewProgress creates fresh default state for a new learner.
func NewProgress() *Progress {
	now := time.Now()
	return &Progress{
		UserID:           uuid.New().String(),
		CompletedLessons: make(map[string]int),
		QuizScores:       make(map[string]int),
		Notes:            make(map[string]Note),
		SkillProgress:    make(map[string]int),
		LearningPath:     PathBeginner,
		PathProgress: map[LearningPath]PathState{
			PathBeginner:     {},
			PathIntermediate: {},
			PathAdvanced:     {},
		},
		Settings:  DefaultSettings(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NoteKey builds the composite key notes are stored under.
func NoteKey(skillID, conceptID string) string {
	return skillID + "-" + conceptID
}

// UpdateStreak applies the once-per-day streak rule. Calling it twice on
// the same calendar day is a no-op; an activity the day after the last
// one extends the streak; anything else (first activity, a gap of two or
// more days, or a last-activity date in the future from clock skew)
// restarts it at 1.
func (p *Progress) UpdateStreak(now time.Time) {
	if p.LastActivityDate != nil && sameDay(*p.LastActivityDate, now) {
		return
	}

	switch {
	case p.LastActivityDate == nil:
		p.CurrentStreak = 1
	case sameDay(*p.LastActivityDate, now.AddDate(0, 0, -1)):
		p.CurrentStreak++
	default:
		p.CurrentStreak = 1
	}

	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}

	activity := now
	p.LastActivityDate = &activity
	p.UpdatedAt = now
}

// MarkLessonComplete records one completed lesson for a skill. Ordering
// matters: streak first, then points, then the lesson counter, so an
// achievement scan run afterwards sees the post-increment state.
func (p *Progress) MarkLessonComplete(skillID string, now time.Time) {
	p.UpdateStreak(now)
	p.TotalPoints += PointsPerLesson
	p.CompletedLessons[skillID]++
	p.UpdatedAt = now
}

// AddPoints adds to the running point total.
func (p *Progress) AddPoints(amount int, now time.Time) error {
	if amount < 0 {
		return ErrNegativePoints
	}
	p.TotalPoints += amount
	p.UpdatedAt = now
	return nil
}

// AddQuizScore stores the latest percentage for a skill, overwriting any
// previous score. It updates the streak but deliberately does not award
// points; point awarding for quizzes is based on the raw correct-answer
// count and belongs to the caller.
func (p *Progress) AddQuizScore(skillID string, percentage int, now time.Time) error {
	if percentage < 0 || percentage > 100 {
		return ErrInvalidScore
	}
	p.UpdateStreak(now)
	p.QuizScores[skillID] = percentage
	p.UpdatedAt = now
	return nil
}

// AddChallengeScore keeps the best score per challenge.
func (p *Progress) AddChallengeScore(challengeID string, score int, now time.Time) {
	for i, cs := range p.ChallengeScores {
		if cs.ChallengeID != challengeID {
			continue
		}
		if score > cs.Score {
			p.ChallengeScores[i] = ChallengeScore{ChallengeID: challengeID, Score: score, CompletedAt: now}
			p.UpdatedAt = now
		}
		return
	}
	p.ChallengeScores = append(p.ChallengeScores, ChallengeScore{ChallengeID: challengeID, Score: score, CompletedAt: now})
	p.UpdatedAt = now
}

// AddCompletedConcept records a concept as done. Idempotent; a repeat
// completion changes nothing.
func (p *Progress) AddCompletedConcept(skillID, conceptID string, now time.Time) {
	key := NoteKey(skillID, conceptID)
	for _, c := range p.CompletedConcepts {
		if c == key {
			return
		}
	}
	p.CompletedConcepts = append(p.CompletedConcepts, key)
	activity := now
	p.LastActivityDate = &activity
	p.UpdatedAt = now
}

// UpdateSkillProgress stores the skill's progress percentage and marks
// the skill completed once it reaches 100%.
func (p *Progress) UpdateSkillProgress(skillID string, percentage int, now time.Time) {
	p.SkillProgress[skillID] = percentage
	if percentage >= 100 && !contains(p.CompletedSkills, skillID) {
		p.CompletedSkills = append(p.CompletedSkills, skillID)
	}
	p.UpdatedAt = now
}

// UpdatePathProgress records path status for a skill: "completed" appends
// to the path's completed list, "current" sets the active skill.
func (p *Progress) UpdatePathProgress(path LearningPath, skillID, status string, now time.Time) error {
	if !path.Valid() {
		return ErrUnknownLearningPath
	}
	state := p.PathProgress[path]
	switch status {
	case "completed":
		if !contains(state.Completed, skillID) {
			state.Completed = append(state.Completed, skillID)
		}
	case "current":
		state.Current = skillID
	default:
		return ErrInvalidInput
	}
	p.PathProgress[path] = state
	p.UpdatedAt = now
	return nil
}

// SetLearningPath switches the active learning path.
func (p *Progress) SetLearningPath(path LearningPath, now time.Time) error {
	if !path.Valid() {
		return ErrUnknownLearningPath
	}
	p.LearningPath = path
	p.UpdatedAt = now
	return nil
}

// AddNote creates a note for a skill/concept pair. An existing note under
// the same key is replaced wholesale.
func (p *Progress) AddNote(skillID, conceptID, content string, now time.Time) {
	p.Notes[NoteKey(skillID, conceptID)] = Note{
		Content:   content,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.UpdatedAt = now
}

// UpdateNote replaces content and tags, refreshes UpdatedAt and preserves
// CreatedAt. Updating a missing note creates it.
func (p *Progress) UpdateNote(skillID, conceptID, content string, tags []string, now time.Time) {
	key := NoteKey(skillID, conceptID)
	created := now
	if existing, ok := p.Notes[key]; ok {
		created = existing.CreatedAt
	}
	if tags == nil {
		tags = []string{}
	}
	p.Notes[key] = Note{
		Content:   content,
		Tags:      tags,
		CreatedAt: created,
		UpdatedAt: now,
	}
	p.UpdatedAt = now
}

// DeleteNote removes a note by its skill/concept pair.
func (p *Progress) DeleteNote(skillID, conceptID string, now time.Time) error {
	key := NoteKey(skillID, conceptID)
	if _, ok := p.Notes[key]; !ok {
		return ErrNoteNotFound
	}
	delete(p.Notes, key)
	p.UpdatedAt = now
	return nil
}

// AddBookmark appends a bookmark, deduplicating by ID.
func (p *Progress) AddBookmark(b Bookmark, now time.Time) {
	for _, existing := range p.Bookmarks {
		if existing.ID == b.ID {
			return
		}
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	p.Bookmarks = append(p.Bookmarks, b)
	p.UpdatedAt = now
}

// RemoveBookmark deletes a bookmark by ID.
func (p *Progress) RemoveBookmark(id string, now time.Time) error {
	for i, b := range p.Bookmarks {
		if b.ID == id {
			p.Bookmarks = append(p.Bookmarks[:i], p.Bookmarks[i+1:]...)
			p.UpdatedAt = now
			return nil
		}
	}
	return ErrBookmarkNotFound
}

// AddSearchEntry prepends a search to the history, deduplicating by title
// and capping the history at SearchHistoryLimit entries.
func (p *Progress) AddSearchEntry(entry SearchEntry, now time.Time) {
	if entry.At.IsZero() {
		entry.At = now
	}
	history := make([]SearchEntry, 0, len(p.SearchHistory)+1)
	history = append(history, entry)
	for _, h := range p.SearchHistory {
		if h.Title != entry.Title {
			history = append(history, h)
		}
	}
	if len(history) > SearchHistoryLimit {
		history = history[:SearchHistoryLimit]
	}
	p.SearchHistory = history
	p.UpdatedAt = now
}

// TotalLessons sums completed lessons across all skills.
func (p *Progress) TotalLessons() int {
	total := 0
	for _, n := range p.CompletedLessons {
		total += n
	}
	return total
}

// MaxQuizScore returns the highest recorded quiz percentage, 0 when no
// quiz has been taken.
func (p *Progress) MaxQuizScore() int {
	best := 0
	for _, s := range p.QuizScores {
		if s > best {
			best = s
		}
	}
	return best
}

// HasBadge reports whether an achievement has already been earned.
func (p *Progress) HasBadge(id string) bool {
	for _, b := range p.EarnedBadges {
		if b.ID == id {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
