package domain

import (
	"testing"
	"time"
)

var day = 24 * time.Hour

func TestNewProgress(t *testing.T) {
	p := NewProgress()

	if p.UserID == "" {
		t.Error("NewProgress() should generate a user ID")
	}
	if p.TotalPoints != 0 {
		t.Errorf("TotalPoints = %d; want 0", p.TotalPoints)
	}
	if p.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d; want 0", p.CurrentStreak)
	}
	if p.LastActivityDate != nil {
		t.Error("LastActivityDate should be nil before any activity")
	}
	if p.LearningPath != PathBeginner {
		t.Errorf("LearningPath = %q; want %q", p.LearningPath, PathBeginner)
	}
	if p.Settings.Theme != ThemeDark {
		t.Errorf("Settings.Theme = %q; want %q", p.Settings.Theme, ThemeDark)
	}
}

func TestProgress_UpdateStreak_FirstActivity(t *testing.T) {
	p := NewProgress()
	now := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

	p.UpdateStreak(now)

	if p.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d; want 1", p.CurrentStreak)
	}
	if p.LongestStreak != 1 {
		t.Errorf("LongestStreak = %d; want 1", p.LongestStreak)
	}
	if p.LastActivityDate == nil || !p.LastActivityDate.Equal(now) {
		t.Errorf("LastActivityDate = %v; want %v", p.LastActivityDate, now)
	}
}

func TestProgress_UpdateStreak_IdempotentSameDay(t *testing.T) {
	p := NewProgress()
	morning := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 10, 21, 30, 0, 0, time.UTC)

	p.UpdateStreak(morning)
	p.UpdateStreak(evening)
	p.UpdateStreak(evening)

	if p.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d; want 1 (same-day calls must not inflate)", p.CurrentStreak)
	}
	if !p.LastActivityDate.Equal(morning) {
		t.Errorf("LastActivityDate = %v; want unchanged %v", p.LastActivityDate, morning)
	}
}

func TestProgress_UpdateStreak_Continuity(t *testing.T) {
	p := NewProgress()
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	p.UpdateStreak(start)
	p.UpdateStreak(start.Add(day))
	p.UpdateStreak(start.Add(2 * day))

	if p.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d; want 3", p.CurrentStreak)
	}
	if p.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d; want 3", p.LongestStreak)
	}
}

func TestProgress_UpdateStreak_ResetAfterGap(t *testing.T) {
	p := NewProgress()
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		p.UpdateStreak(start.Add(time.Duration(i) * day))
	}

	// Three days of silence
	p.UpdateStreak(start.Add(8 * day))

	if p.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d; want 1 after a gap", p.CurrentStreak)
	}
	if p.LongestStreak != 5 {
		t.Errorf("LongestStreak = %d; want 5 preserved", p.LongestStreak)
	}
}

func TestProgress_UpdateStreak_ClockSkew(t *testing.T) {
	p := NewProgress()
	future := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	p.UpdateStreak(future)
	p.UpdateStreak(future)
	p.CurrentStreak = 4
	p.LongestStreak = 4

	// Last activity is now in the future relative to the clock
	past := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	p.UpdateStreak(past)

	if p.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d; want 1 when last activity is in the future", p.CurrentStreak)
	}
	if p.LongestStreak != 4 {
		t.Errorf("LongestStreak = %d; want 4 preserved", p.LongestStreak)
	}
}

func TestProgress_MarkLessonComplete(t *testing.T) {
	p := NewProgress()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	p.MarkLessonComplete("docker", now)
	p.MarkLessonComplete("docker", now)
	p.MarkLessonComplete("kubernetes", now)

	if p.CompletedLessons["docker"] != 2 {
		t.Errorf("CompletedLessons[docker] = %d; want 2", p.CompletedLessons["docker"])
	}
	if p.TotalLessons() != 3 {
		t.Errorf("TotalLessons() = %d; want 3", p.TotalLessons())
	}
	if p.TotalPoints != 3*PointsPerLesson {
		t.Errorf("TotalPoints = %d; want %d", p.TotalPoints, 3*PointsPerLesson)
	}
	if p.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d; want 1 (all on the same day)", p.CurrentStreak)
	}
}

func TestProgress_AddPoints_RejectsNegative(t *testing.T) {
	p := NewProgress()
	now := time.Now()

	if err := p.AddPoints(-5, now); err != ErrNegativePoints {
		t.Errorf("AddPoints(-5) error = %v; want ErrNegativePoints", err)
	}
	if p.TotalPoints != 0 {
		t.Errorf("TotalPoints = %d; want 0 after rejected mutation", p.TotalPoints)
	}

	if err := p.AddPoints(50, now); err != nil {
		t.Fatalf("AddPoints(50) error = %v", err)
	}
	if p.TotalPoints != 50 {
		t.Errorf("TotalPoints = %d; want 50", p.TotalPoints)
	}
}

func TestProgress_AddQuizScore_Overwrites(t *testing.T) {
	p := NewProgress()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	if err := p.AddQuizScore("docker", 60, now); err != nil {
		t.Fatalf("AddQuizScore() error = %v", err)
	}
	if err := p.AddQuizScore("docker", 90, now); err != nil {
		t.Fatalf("AddQuizScore() error = %v", err)
	}

	if p.QuizScores["docker"] != 90 {
		t.Errorf("QuizScores[docker] = %d; want 90 (latest overwrites)", p.QuizScores["docker"])
	}
	if p.TotalPoints != 0 {
		t.Errorf("TotalPoints = %d; want 0 (AddQuizScore never awards points)", p.TotalPoints)
	}
}

func TestProgress_AddQuizScore_RejectsOutOfRange(t *testing.T) {
	p := NewProgress()
	now := time.Now()

	if err := p.AddQuizScore("docker", 101, now); err != ErrInvalidScore {
		t.Errorf("AddQuizScore(101) error = %v; want ErrInvalidScore", err)
	}
	if err := p.AddQuizScore("docker", -1, now); err != ErrInvalidScore {
		t.Errorf("AddQuizScore(-1) error = %v; want ErrInvalidScore", err)
	}
	if len(p.QuizScores) != 0 {
		t.Errorf("QuizScores len = %d; want 0", len(p.QuizScores))
	}
}

func TestProgress_Notes_UpdatePreservesCreatedAt(t *testing.T) {
	p := NewProgress()
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	updated := created.Add(2 * day)

	p.AddNote("docker", "volumes", "bind mounts vs volumes", created)
	p.UpdateNote("docker", "volumes", "volumes win for portability", []string{"storage"}, updated)

	note, ok := p.Notes[NoteKey("docker", "volumes")]
	if !ok {
		t.Fatal("note not found after update")
	}
	if note.Content != "volumes win for portability" {
		t.Errorf("Content = %q; want updated content", note.Content)
	}
	if !note.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v; want preserved %v", note.CreatedAt, created)
	}
	if !note.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt = %v; want %v", note.UpdatedAt, updated)
	}
	if len(note.Tags) != 1 || note.Tags[0] != "storage" {
		t.Errorf("Tags = %v; want [storage]", note.Tags)
	}
}

func TestProgress_DeleteNote(t *testing.T) {
	p := NewProgress()
	now := time.Now()

	p.AddNote("docker", "images", "layers are immutable", now)

	if err := p.DeleteNote("docker", "images", now); err != nil {
		t.Fatalf("DeleteNote() error = %v", err)
	}
	if err := p.DeleteNote("docker", "images", now); err != ErrNoteNotFound {
		t.Errorf("DeleteNote() twice error = %v; want ErrNoteNotFound", err)
	}
}

func TestProgress_Bookmarks_DedupByID(t *testing.T) {
	p := NewProgress()
	now := time.Now()

	b := Bookmark{ID: "q-42", Type: "interview-question", Title: "What is a cgroup?"}
	p.AddBookmark(b, now)
	p.AddBookmark(b, now)

	if len(p.Bookmarks) != 1 {
		t.Errorf("Bookmarks len = %d; want 1", len(p.Bookmarks))
	}

	if err := p.RemoveBookmark("q-42", now); err != nil {
		t.Fatalf("RemoveBookmark() error = %v", err)
	}
	if err := p.RemoveBookmark("q-42", now); err != ErrBookmarkNotFound {
		t.Errorf("RemoveBookmark() twice error = %v; want ErrBookmarkNotFound", err)
	}
}

func TestProgress_SearchHistory_DedupAndCap(t *testing.T) {
	p := NewProgress()
	now := time.Now()

	for i := 0; i < 12; i++ {
		p.AddSearchEntry(SearchEntry{Title: string(rune('a' + i))}, now)
	}
	p.AddSearchEntry(SearchEntry{Title: "a"}, now)

	if len(p.SearchHistory) != SearchHistoryLimit {
		t.Errorf("SearchHistory len = %d; want %d", len(p.SearchHistory), SearchHistoryLimit)
	}
	if p.SearchHistory[0].Title != "a" {
		t.Errorf("SearchHistory[0].Title = %q; want %q (most recent first)", p.SearchHistory[0].Title, "a")
	}
	// "a" must not appear twice
	count := 0
	for _, h := range p.SearchHistory {
		if h.Title == "a" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("entries titled 'a' = %d; want 1", count)
	}
}

func TestProgress_ChallengeScores_KeepsBest(t *testing.T) {
	p := NewProgress()
	now := time.Now()

	p.AddChallengeScore("two-sum", 80, now)
	p.AddChallengeScore("two-sum", 60, now)
	p.AddChallengeScore("two-sum", 95, now)

	if len(p.ChallengeScores) != 1 {
		t.Fatalf("ChallengeScores len = %d; want 1", len(p.ChallengeScores))
	}
	if p.ChallengeScores[0].Score != 95 {
		t.Errorf("Score = %d; want 95 (best kept)", p.ChallengeScores[0].Score)
	}
}

func TestProgress_AddCompletedConcept_Idempotent(t *testing.T) {
	p := NewProgress()
	now := time.Now()

	p.AddCompletedConcept("docker", "networking", now)
	p.AddCompletedConcept("docker", "networking", now)

	if len(p.CompletedConcepts) != 1 {
		t.Errorf("CompletedConcepts len = %d; want 1", len(p.CompletedConcepts))
	}
	if p.LastActivityDate == nil {
		t.Error("LastActivityDate should be set by concept completion")
	}
}

func TestProgress_UpdateSkillProgress_AutoCompletes(t *testing.T) {
	p := NewProgress()
	now := time.Now()

	p.UpdateSkillProgress("docker", 40, now)
	if len(p.CompletedSkills) != 0 {
		t.Errorf("CompletedSkills len = %d; want 0 at 40%%", len(p.CompletedSkills))
	}

	p.UpdateSkillProgress("docker", 100, now)
	p.UpdateSkillProgress("docker", 100, now)
	if len(p.CompletedSkills) != 1 || p.CompletedSkills[0] != "docker" {
		t.Errorf("CompletedSkills = %v; want [docker]", p.CompletedSkills)
	}
}

func TestProgress_UpdatePathProgress(t *testing.T) {
	p := NewProgress()
	now := time.Now()

	if err := p.UpdatePathProgress(PathBeginner, "docker", "current", now); err != nil {
		t.Fatalf("UpdatePathProgress() error = %v", err)
	}
	if err := p.UpdatePathProgress(PathBeginner, "docker", "completed", now); err != nil {
		t.Fatalf("UpdatePathProgress() error = %v", err)
	}

	state := p.PathProgress[PathBeginner]
	if state.Current != "docker" {
		t.Errorf("Current = %q; want %q", state.Current, "docker")
	}
	if len(state.Completed) != 1 {
		t.Errorf("Completed len = %d; want 1", len(state.Completed))
	}

	if err := p.UpdatePathProgress("expert", "docker", "current", now); err != ErrUnknownLearningPath {
		t.Errorf("unknown path error = %v; want ErrUnknownLearningPath", err)
	}
	if err := p.UpdatePathProgress(PathBeginner, "docker", "paused", now); err != ErrInvalidInput {
		t.Errorf("unknown status error = %v; want ErrInvalidInput", err)
	}
}

func TestProgress_Settings(t *testing.T) {
	p := NewProgress()
	now := time.Now()

	if err := p.SetTheme(ThemeLight, now); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if err := p.SetTheme("solarized", now); err != ErrUnknownTheme {
		t.Errorf("SetTheme(solarized) error = %v; want ErrUnknownTheme", err)
	}
	if p.Settings.Theme != ThemeLight {
		t.Errorf("Theme = %q; want %q after rejected change", p.Settings.Theme, ThemeLight)
	}

	if err := p.SetFontSize("18px", now); err != nil {
		t.Fatalf("SetFontSize() error = %v", err)
	}
	if err := p.SetFontSize("13px", now); err != ErrUnknownFontSize {
		t.Errorf("SetFontSize(13px) error = %v; want ErrUnknownFontSize", err)
	}
}
