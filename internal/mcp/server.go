// Package mcp exposes the progress store as MCP tools so AI pairing
// tools can record learning activity and read the learner's state.
package mcp

import (
	"context"
	"fmt"

	mcp "github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/mcp-go/server"

	"devmastery/internal/domain"
	"devmastery/internal/progress"
)

// Server wraps the MCP server with progress store functionality
type Server struct {
	mcpServer *server.Server
	service   *progress.Service
}

// NewServer creates a new MCP server over the progress service
func NewServer(service *progress.Service) *Server {
	s := &Server{service: service}

	s.mcpServer = server.New(server.Info{
		Name:    "devmastery",
		Version: "0.1.0",
	}, server.WithInstructions(`
DevMastery tracks a learner's progress through DevOps skills:
lessons, quizzes, streaks, points, achievements and flashcards.

Available tools:
- complete_lesson: Record a finished lesson for a skill
- record_quiz: Record a quiz result from answer counts
- review_flashcard: Record a flashcard review with a confidence score
- progress_overview: Summary of points, lessons, streaks and badges
- list_achievements: The achievement catalog with earned state

Points and achievements are awarded automatically; tools that mutate
progress return any badges the action unlocked.
`))

	s.registerTools()

	return s
}

// registerTools registers all progress MCP tools
func (s *Server) registerTools() {
	s.mcpServer.Tool("complete_lesson").
		Description("Record a finished lesson for a skill. Awards points, advances the streak and returns unlocked achievements.").
		Handler(s.handleCompleteLesson)

	s.mcpServer.Tool("record_quiz").
		Description("Record a quiz result from correct and total answer counts. Stores the percentage for the skill and awards answer points.").
		Handler(s.handleRecordQuiz)

	s.mcpServer.Tool("review_flashcard").
		Description("Record a flashcard review with a 0-100 confidence self-assessment.").
		Handler(s.handleReviewFlashcard)

	s.mcpServer.Tool("progress_overview").
		Description("Get a summary of the learner's points, lessons, streaks, badges and flashcard stats.").
		Handler(s.handleOverview)

	s.mcpServer.Tool("list_achievements").
		Description("List the achievement catalog with earned state.").
		Handler(s.handleListAchievements)
}

// Input/Output types for tools

type CompleteLessonInput struct {
	SkillID string `json:"skill_id" jsonschema:"description=Skill the lesson belongs to"`
}

type RecordQuizInput struct {
	SkillID string `json:"skill_id" jsonschema:"description=Skill the quiz belongs to"`
	Correct int    `json:"correct" jsonschema:"description=Number of correct answers"`
	Total   int    `json:"total" jsonschema:"description=Total number of questions"`
}

type ReviewFlashcardInput struct {
	CardID     string `json:"card_id" jsonschema:"description=Flashcard ID"`
	Confidence int    `json:"confidence" jsonschema:"description=Self-assessed confidence from 0 to 100"`
}

type MutationOutput struct {
	Unlocked []domain.Badge `json:"unlocked"`
	Message  string         `json:"message"`
}

type ReviewOutput struct {
	Message string `json:"message"`
}

type OverviewInput struct{}

type AchievementsInput struct{}

type AchievementEntry struct {
	domain.Achievement
	Earned bool `json:"earned"`
}

type AchievementsOutput struct {
	Achievements []AchievementEntry `json:"achievements"`
}

// Tool handlers

func (s *Server) handleCompleteLesson(ctx context.Context, input CompleteLessonInput) (MutationOutput, error) {
	if input.SkillID == "" {
		return MutationOutput{}, fmt.Errorf("skill_id is required")
	}

	badges, err := s.service.CompleteLesson(ctx, input.SkillID)
	if err != nil {
		return MutationOutput{}, fmt.Errorf("complete lesson: %w", err)
	}

	return MutationOutput{
		Unlocked: badges,
		Message:  mutationMessage("Lesson recorded", badges),
	}, nil
}

func (s *Server) handleRecordQuiz(ctx context.Context, input RecordQuizInput) (MutationOutput, error) {
	if input.SkillID == "" {
		return MutationOutput{}, fmt.Errorf("skill_id is required")
	}

	badges, err := s.service.CompleteQuiz(ctx, input.SkillID, input.Correct, input.Total)
	if err != nil {
		return MutationOutput{}, fmt.Errorf("record quiz: %w", err)
	}

	return MutationOutput{
		Unlocked: badges,
		Message:  mutationMessage(fmt.Sprintf("Quiz recorded: %d/%d", input.Correct, input.Total), badges),
	}, nil
}

func (s *Server) handleReviewFlashcard(ctx context.Context, input ReviewFlashcardInput) (ReviewOutput, error) {
	if err := s.service.ReviewFlashcard(ctx, input.CardID, input.Confidence); err != nil {
		return ReviewOutput{}, fmt.Errorf("review flashcard: %w", err)
	}
	return ReviewOutput{Message: "Review recorded"}, nil
}

func (s *Server) handleOverview(_ context.Context, _ OverviewInput) (progress.Overview, error) {
	return s.service.Overview(), nil
}

func (s *Server) handleListAchievements(_ context.Context, _ AchievementsInput) (AchievementsOutput, error) {
	earned := make(map[string]bool)
	for _, badge := range s.service.Badges() {
		earned[badge.ID] = true
	}

	catalog := s.service.Catalog()
	entries := make([]AchievementEntry, len(catalog))
	for i, a := range catalog {
		entries[i] = AchievementEntry{Achievement: a, Earned: earned[a.ID]}
	}

	return AchievementsOutput{Achievements: entries}, nil
}

func mutationMessage(base string, badges []domain.Badge) string {
	if len(badges) == 0 {
		return base
	}
	msg := base + ". Unlocked:"
	for _, b := range badges {
		msg += " " + b.Title
	}
	return msg
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

// ServeHTTP starts the MCP server on HTTP (alternative transport)
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr)
}
