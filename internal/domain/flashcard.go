package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConfidenceBucket groups flashcards by self-assessed mastery for
// display. The boundaries are a presentation convention but are part of
// the contract: <30 Learning, 30-69 Reviewing, >=70 Mastered.
type ConfidenceBucket string

const (
	BucketLearning  ConfidenceBucket = "Learning"
	BucketReviewing ConfidenceBucket = "Reviewing"
	BucketMastered  ConfidenceBucket = "Mastered"
)

const (
	reviewingThreshold = 30
	masteredThreshold  = 70
)

// Flashcard is a spaced-repetition card. Confidence is a 0-100
// self-assessment overwritten on every review, not averaged.
type Flashcard struct {
	ID           string     `json:"id"`
	Question     string     `json:"question"`
	Answer       string     `json:"answer"`
	Category     string     `json:"category,omitempty"`
	Confidence   int        `json:"confidence"`
	ReviewCount  int        `json:"review_count"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewFlashcard creates a card with review state zeroed.
func NewFlashcard(question, answer, category string, now time.Time) (Flashcard, error) {
	if question == "" {
		return Flashcard{}, ErrEmptyQuestion
	}
	return Flashcard{
		ID:        uuid.New().String(),
		Question:  question,
		Answer:    answer,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Bucket returns the display bucket for the card's confidence.
func (f Flashcard) Bucket() ConfidenceBucket {
	switch {
	case f.Confidence < reviewingThreshold:
		return BucketLearning
	case f.Confidence < masteredThreshold:
		return BucketReviewing
	default:
		return BucketMastered
	}
}

// FlashcardStats aggregates cards per bucket.
type FlashcardStats struct {
	Total        int `json:"total"`
	TotalReviews int `json:"total_reviews"`
	Learning     int `json:"learning"`
	Reviewing    int `json:"reviewing"`
	Mastered     int `json:"mastered"`
}

// AddFlashcard appends a card to the deck, deduplicating by ID.
func (p *Progress) AddFlashcard(card Flashcard, now time.Time) {
	for _, existing := range p.Flashcards {
		if existing.ID == card.ID {
			return
		}
	}
	p.Flashcards = append(p.Flashcards, card)
	p.UpdatedAt = now
}

// ReviewFlashcard records a review: the given confidence overwrites the
// card's previous value, the review counter advances and LastReviewed is
// set to now.
func (p *Progress) ReviewFlashcard(id string, confidence int, now time.Time) error {
	if confidence < 0 || confidence > 100 {
		return ErrInvalidConfidence
	}
	for i := range p.Flashcards {
		if p.Flashcards[i].ID != id {
			continue
		}
		reviewed := now
		p.Flashcards[i].Confidence = confidence
		p.Flashcards[i].ReviewCount++
		p.Flashcards[i].LastReviewed = &reviewed
		p.Flashcards[i].UpdatedAt = now
		p.UpdatedAt = now
		return nil
	}
	return ErrFlashcardNotFound
}

// UpdateFlashcard replaces question/answer/category, leaving review state
// untouched.
func (p *Progress) UpdateFlashcard(id, question, answer, category string, now time.Time) error {
	if question == "" {
		return ErrEmptyQuestion
	}
	for i := range p.Flashcards {
		if p.Flashcards[i].ID != id {
			continue
		}
		p.Flashcards[i].Question = question
		p.Flashcards[i].Answer = answer
		p.Flashcards[i].Category = category
		p.Flashcards[i].UpdatedAt = now
		p.UpdatedAt = now
		return nil
	}
	return ErrFlashcardNotFound
}

// DeleteFlashcard removes a card by ID.
func (p *Progress) DeleteFlashcard(id string, now time.Time) error {
	for i, card := range p.Flashcards {
		if card.ID == id {
			p.Flashcards = append(p.Flashcards[:i], p.Flashcards[i+1:]...)
			p.UpdatedAt = now
			return nil
		}
	}
	return ErrFlashcardNotFound
}

// FlashcardStats computes per-bucket counts across the deck.
func (p *Progress) FlashcardStats() FlashcardStats {
	stats := FlashcardStats{Total: len(p.Flashcards)}
	for _, card := range p.Flashcards {
		stats.TotalReviews += card.ReviewCount
		switch card.Bucket() {
		case BucketLearning:
			stats.Learning++
		case BucketReviewing:
			stats.Reviewing++
		case BucketMastered:
			stats.Mastered++
		}
	}
	return stats
}
