package progress

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"devmastery/internal/domain"
)

// Service owns the progress aggregate. All mutations go through it: it
// applies the domain rule, scans the achievement catalog synchronously
// in the same call, persists the result and returns any badges the
// mutation unlocked. Callers therefore always see unlocks immediately
// instead of on some later timer tick.
type Service struct {
	mu       sync.Mutex
	store    SnapshotStore
	catalog  []domain.Achievement
	logger   *slog.Logger
	now      func() time.Time
	state    *domain.Progress
	hydrated bool
	restored bool
}

// Option configures the service.
type Option func(*Service)

// WithClock overrides the service clock. Time-of-day achievements and
// streaks evaluate against this clock at mutation time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger for persistence warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService creates the service and hydrates state from the store. A
// missing snapshot starts fresh; a corrupt or unreadable one is logged
// and also starts fresh, so a damaged file never locks the learner out.
func NewService(ctx context.Context, store SnapshotStore, catalog []domain.Achievement, opts ...Option) *Service {
	s := &Service{
		store:   store,
		catalog: catalog,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	state, found, err := store.Load(ctx)
	switch {
	case err != nil:
		s.logger.Warn("load progress snapshot failed, starting fresh", "error", err)
		s.state = domain.NewProgress()
	case !found:
		s.state = domain.NewProgress()
	default:
		ensureMaps(state)
		s.state = state
		s.restored = true
	}
	s.hydrated = true
	return s
}

// Hydrated reports whether the startup load has completed. It becomes
// true once the constructor finishes and never reverts; a missing or
// unreadable snapshot still counts as a completed load that produced
// defaults, so readers gating on this signal are never stuck waiting.
func (s *Service) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Restored reports whether the startup load recovered a previously
// saved snapshot, as opposed to starting from defaults.
func (s *Service) Restored() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restored
}

// ensureMaps repairs nil maps in snapshots written by older versions.
func ensureMaps(p *domain.Progress) {
	if p.CompletedLessons == nil {
		p.CompletedLessons = make(map[string]int)
	}
	if p.QuizScores == nil {
		p.QuizScores = make(map[string]int)
	}
	if p.Notes == nil {
		p.Notes = make(map[string]domain.Note)
	}
	if p.SkillProgress == nil {
		p.SkillProgress = make(map[string]int)
	}
	if p.PathProgress == nil {
		p.PathProgress = make(map[domain.LearningPath]domain.PathState)
	}
}

// mutate runs one locked mutation, scans for unlocks and persists.
func (s *Service) mutate(ctx context.Context, fn func(now time.Time) error) ([]domain.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if err := fn(now); err != nil {
		return nil, err
	}
	earned := s.scan(now)
	s.persist(ctx)
	return earned, nil
}

// scan awards every achievement whose predicate holds, repeating until
// a pass unlocks nothing. Badge points can push the total over a
// points threshold, so one mutation may cascade into several unlocks;
// the earned check guarantees each achievement is awarded once and the
// loop terminates because the catalog is finite.
func (s *Service) scan(now time.Time) []domain.Badge {
	var earned []domain.Badge
	for {
		unlocked := domain.EvaluateAchievements(s.state, s.catalog, now)
		if len(unlocked) == 0 {
			return earned
		}
		for _, a := range unlocked {
			badge := domain.NewBadge(a, now)
			s.state.EarnedBadges = append(s.state.EarnedBadges, badge)
			s.state.TotalPoints += a.Points
			earned = append(earned, badge)
		}
	}
}

func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.state); err != nil {
		s.logger.Warn("persist progress snapshot failed", "error", err)
	}
}

// CompleteLesson records one finished lesson: streak update, lesson
// points, lesson counter, then the achievement scan.
func (s *Service) CompleteLesson(ctx context.Context, skillID string) ([]domain.Badge, error) {
	return s.mutate(ctx, func(now time.Time) error {
		s.state.MarkLessonComplete(skillID, now)
		return nil
	})
}

// CompleteQuiz records a finished quiz from raw answer counts: points
// for each correct answer plus the percentage score for the skill.
func (s *Service) CompleteQuiz(ctx context.Context, skillID string, correct, total int) ([]domain.Badge, error) {
	if total <= 0 || correct < 0 || correct > total {
		return nil, domain.ErrInvalidScore
	}
	return s.mutate(ctx, func(now time.Time) error {
		if err := s.state.AddPoints(correct*domain.PointsPerCorrectAnswer, now); err != nil {
			return err
		}
		return s.state.AddQuizScore(skillID, correct*100/total, now)
	})
}

// RecordQuizScore stores an externally computed percentage for a skill.
func (s *Service) RecordQuizScore(ctx context.Context, skillID string, percentage int) ([]domain.Badge, error) {
	return s.mutate(ctx, func(now time.Time) error {
		return s.state.AddQuizScore(skillID, percentage, now)
	})
}

// AddPoints adds bonus points outside the built-in awards.
func (s *Service) AddPoints(ctx context.Context, amount int) ([]domain.Badge, error) {
	return s.mutate(ctx, func(now time.Time) error {
		return s.state.AddPoints(amount, now)
	})
}

// RecordChallenge keeps the best score for a coding challenge.
func (s *Service) RecordChallenge(ctx context.Context, challengeID string, score int) ([]domain.Badge, error) {
	return s.mutate(ctx, func(now time.Time) error {
		s.state.AddChallengeScore(challengeID, score, now)
		return nil
	})
}

// CompleteConcept marks a concept as done. Repeat completions change
// nothing.
func (s *Service) CompleteConcept(ctx context.Context, skillID, conceptID string) ([]domain.Badge, error) {
	return s.mutate(ctx, func(now time.Time) error {
		s.state.AddCompletedConcept(skillID, conceptID, now)
		return nil
	})
}

// SetSkillProgress stores a skill's completion percentage and marks the
// skill finished at 100%.
func (s *Service) SetSkillProgress(ctx context.Context, skillID string, percentage int) ([]domain.Badge, error) {
	return s.mutate(ctx, func(now time.Time) error {
		s.state.UpdateSkillProgress(skillID, percentage, now)
		return nil
	})
}

// SetLearningPath switches the active curriculum track.
func (s *Service) SetLearningPath(ctx context.Context, path domain.LearningPath) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		return s.state.SetLearningPath(path, now)
	})
	return err
}

// UpdatePathProgress records a skill's status within a path.
func (s *Service) UpdatePathProgress(ctx context.Context, path domain.LearningPath, skillID, status string) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		return s.state.UpdatePathProgress(path, skillID, status, now)
	})
	return err
}

// AddFlashcard creates a new card in the deck.
func (s *Service) AddFlashcard(ctx context.Context, question, answer, category string) (domain.Flashcard, error) {
	var card domain.Flashcard
	_, err := s.mutate(ctx, func(now time.Time) error {
		created, err := domain.NewFlashcard(question, answer, category, now)
		if err != nil {
			return err
		}
		card = created
		s.state.AddFlashcard(card, now)
		return nil
	})
	return card, err
}

// ImportFlashcards adds cards in bulk, skipping any whose question
// already exists in the deck. It returns the number actually added.
func (s *Service) ImportFlashcards(ctx context.Context, cards []domain.Flashcard) (int, error) {
	added := 0
	_, err := s.mutate(ctx, func(now time.Time) error {
		existing := make(map[string]bool, len(s.state.Flashcards))
		for _, c := range s.state.Flashcards {
			existing[c.Question] = true
		}
		for _, card := range cards {
			if card.Question == "" || existing[card.Question] {
				continue
			}
			if card.ID == "" {
				created, err := domain.NewFlashcard(card.Question, card.Answer, card.Category, now)
				if err != nil {
					return err
				}
				card = created
			}
			s.state.AddFlashcard(card, now)
			existing[card.Question] = true
			added++
		}
		return nil
	})
	return added, err
}

// ReviewFlashcard records a review with the given confidence.
func (s *Service) ReviewFlashcard(ctx context.Context, id string, confidence int) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		return s.state.ReviewFlashcard(id, confidence, now)
	})
	return err
}

// UpdateFlashcard edits a card's content without touching review state.
func (s *Service) UpdateFlashcard(ctx context.Context, id, question, answer, category string) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		return s.state.UpdateFlashcard(id, question, answer, category, now)
	})
	return err
}

// DeleteFlashcard removes a card.
func (s *Service) DeleteFlashcard(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		return s.state.DeleteFlashcard(id, now)
	})
	return err
}

// SaveNote creates or replaces the note for a skill/concept pair.
func (s *Service) SaveNote(ctx context.Context, skillID, conceptID, content string) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		s.state.AddNote(skillID, conceptID, content, now)
		return nil
	})
	return err
}

// UpdateNote edits a note's content and tags, preserving its creation
// time.
func (s *Service) UpdateNote(ctx context.Context, skillID, conceptID, content string, tags []string) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		s.state.UpdateNote(skillID, conceptID, content, tags, now)
		return nil
	})
	return err
}

// DeleteNote removes the note for a skill/concept pair.
func (s *Service) DeleteNote(ctx context.Context, skillID, conceptID string) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		return s.state.DeleteNote(skillID, conceptID, now)
	})
	return err
}

// AddBookmark saves content for later, deduplicating by ID.
func (s *Service) AddBookmark(ctx context.Context, b domain.Bookmark) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		s.state.AddBookmark(b, now)
		return nil
	})
	return err
}

// RemoveBookmark deletes a bookmark by ID.
func (s *Service) RemoveBookmark(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		return s.state.RemoveBookmark(id, now)
	})
	return err
}

// RecordSearch adds an entry to the recent-search history.
func (s *Service) RecordSearch(ctx context.Context, title, path string) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		s.state.AddSearchEntry(domain.SearchEntry{Title: title, Path: path}, now)
		return nil
	})
	return err
}

// SetTheme switches the color scheme.
func (s *Service) SetTheme(ctx context.Context, theme domain.Theme) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		return s.state.SetTheme(theme, now)
	})
	return err
}

// SetFontSize switches the base font size.
func (s *Service) SetFontSize(ctx context.Context, size string) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		return s.state.SetFontSize(size, now)
	})
	return err
}

// SetBionicReading toggles bionic reading mode.
func (s *Service) SetBionicReading(ctx context.Context, enabled bool) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		s.state.SetBionicReading(enabled, now)
		return nil
	})
	return err
}

// SetHighContrast toggles high-contrast mode.
func (s *Service) SetHighContrast(ctx context.Context, enabled bool) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		s.state.SetHighContrast(enabled, now)
		return nil
	})
	return err
}

// SetDyslexiaFont toggles the dyslexia-friendly font.
func (s *Service) SetDyslexiaFont(ctx context.Context, enabled bool) error {
	_, err := s.mutate(ctx, func(now time.Time) error {
		s.state.SetDyslexiaFont(enabled, now)
		return nil
	})
	return err
}

// Reset discards all progress and starts over with defaults. Like any
// other mutation the fresh state is persisted best-effort.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.NewProgress()
	s.persist(ctx)
}

// Overview is a read-only summary of the aggregate.
type Overview struct {
	UserID          string                `json:"user_id"`
	TotalPoints     int                   `json:"total_points"`
	TotalLessons    int                   `json:"total_lessons"`
	QuizzesTaken    int                   `json:"quizzes_taken"`
	CurrentStreak   int                   `json:"current_streak"`
	LongestStreak   int                   `json:"longest_streak"`
	BadgesEarned    int                   `json:"badges_earned"`
	CompletedSkills int                   `json:"completed_skills"`
	LearningPath    domain.LearningPath   `json:"learning_path"`
	Flashcards      domain.FlashcardStats `json:"flashcards"`
}

// Overview returns summary statistics across the whole aggregate.
func (s *Service) Overview() Overview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Overview{
		UserID:          s.state.UserID,
		TotalPoints:     s.state.TotalPoints,
		TotalLessons:    s.state.TotalLessons(),
		QuizzesTaken:    len(s.state.QuizScores),
		CurrentStreak:   s.state.CurrentStreak,
		LongestStreak:   s.state.LongestStreak,
		BadgesEarned:    len(s.state.EarnedBadges),
		CompletedSkills: len(s.state.CompletedSkills),
		LearningPath:    s.state.LearningPath,
		Flashcards:      s.state.FlashcardStats(),
	}
}

// Badges returns earned achievements in unlock order.
func (s *Service) Badges() []domain.Badge {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Badge, len(s.state.EarnedBadges))
	copy(out, s.state.EarnedBadges)
	return out
}

// Catalog returns the achievement catalog the service scans against.
func (s *Service) Catalog() []domain.Achievement {
	out := make([]domain.Achievement, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Flashcards returns a copy of the deck.
func (s *Service) Flashcards() []domain.Flashcard {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Flashcard, len(s.state.Flashcards))
	copy(out, s.state.Flashcards)
	return out
}

// Bookmarks returns a copy of the saved bookmarks.
func (s *Service) Bookmarks() []domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Bookmark, len(s.state.Bookmarks))
	copy(out, s.state.Bookmarks)
	return out
}

// Notes returns a copy of all notes keyed by "skill-concept".
func (s *Service) Notes() map[string]domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.Note, len(s.state.Notes))
	for k, v := range s.state.Notes {
		out[k] = v
	}
	return out
}

// Note returns the note for a skill/concept pair if present.
func (s *Service) Note(skillID, conceptID string) (domain.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	note, ok := s.state.Notes[domain.NoteKey(skillID, conceptID)]
	return note, ok
}

// QuizScores returns a copy of the latest percentage per skill.
func (s *Service) QuizScores() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.state.QuizScores))
	for k, v := range s.state.QuizScores {
		out[k] = v
	}
	return out
}

// SkillProgress returns a copy of per-skill completion percentages.
func (s *Service) SkillProgress() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.state.SkillProgress))
	for k, v := range s.state.SkillProgress {
		out[k] = v
	}
	return out
}

// SearchHistory returns the recent searches, most recent first.
func (s *Service) SearchHistory() []domain.SearchEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SearchEntry, len(s.state.SearchHistory))
	copy(out, s.state.SearchHistory)
	return out
}

// Settings returns the current presentation settings.
func (s *Service) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// Streak returns the current and longest streak with the last activity
// date, nil when there has been no activity.
func (s *Service) Streak() (current, longest int, lastActivity *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.LastActivityDate != nil {
		t := *s.state.LastActivityDate
		lastActivity = &t
	}
	return s.state.CurrentStreak, s.state.LongestStreak, lastActivity
}
