package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Quiz-specific validation errors
var (
	// ErrQuizIDEmpty is returned when a quiz record ID is empty or nil.
	ErrQuizIDEmpty = errors.New("quiz record ID cannot be empty")

	// ErrQuizNoResponses is returned when a quiz record has no responses.
	ErrQuizNoResponses = errors.New("quiz record must have at least one response")

	// ErrMoodScoreRange is returned when a mood score is outside [0,100].
	ErrMoodScoreRange = errors.New("mood score must be between 0 and 100")
)

// QuizOption is a single selectable answer. Value is the token persisted
// in response maps. Weights carries the per-companion scoring used by the
// onboarding matching quiz; daily check-in options carry uniform weights
// that the matcher never consults.
type QuizOption struct {
	Text    LocalizedText         `json:"text"`
	Value   string                `json:"value"`
	Weights map[CompanionType]int `json:"weights"`
}

// QuizQuestion is a bilingual question with an ordered option list.
type QuizQuestion struct {
	ID      string        `json:"id"`
	Text    LocalizedText `json:"text"`
	Options []QuizOption  `json:"options"`
}

// DailyQuizRecord is one completed daily check-in. At most one record
// exists per calendar date key; the store enforces this with keyed
// upserts.
type DailyQuizRecord struct {
	ID        uuid.UUID         `json:"id"`
	Date      string            `json:"date"`
	Questions []QuizQuestion    `json:"questions"`
	Responses map[string]string `json:"responses"`
	MoodScore int               `json:"moodScore"`
}

// NewDailyQuizRecord creates a record for today's check-in with the
// question snapshot that produced it. Returns an error if validation
// fails.
func NewDailyQuizRecord(now time.Time, questions []QuizQuestion, responses map[string]string, moodScore int) (*DailyQuizRecord, error) {
	rec := &DailyQuizRecord{
		ID:        uuid.New(),
		Date:      DateKey(now),
		Questions: questions,
		Responses: responses,
		MoodScore: moodScore,
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return rec, nil
}

// Validate checks if the DailyQuizRecord has valid data.
func (r *DailyQuizRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrQuizIDEmpty
	}

	if !ValidDateKey(r.Date) {
		return ErrInvalidDateKey
	}

	if len(r.Responses) == 0 {
		return ErrQuizNoResponses
	}

	if r.MoodScore < 0 || r.MoodScore > 100 {
		return ErrMoodScoreRange
	}

	return nil
}
