package dto

import (
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/session"
)

func ToQuestionView(q model.Question) QuestionView {
	options := make([]model.Option, len(q.Options))
	copy(options, q.Options)
	return QuestionView{ID: q.ID, Text: q.Text, Options: options}
}

func ToQuestionViews(questions []model.Question) []QuestionView {
	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = ToQuestionView(q)
	}
	return views
}

func ToSessionDTO(snap session.Snapshot) SessionDTO {
	out := SessionDTO{
		ID:               snap.ID,
		Kind:             snap.Kind,
		SourceID:         snap.SourceID,
		Title:            snap.Title,
		State:            snap.State,
		CurrentIndex:     snap.CurrentIndex,
		QuestionCount:    snap.QuestionCount,
		Selections:       snap.Selections,
		AnsweredCount:    snap.AnsweredCount,
		RemainingSeconds: snap.RemainingSeconds,
		Expired:          snap.Expired,
		Warnings:         snap.Warnings,
		Outcome:          snap.Outcome,
		LastError:        snap.LastError,
		StartedAt:        snap.StartedAt,
	}
	if snap.Current != nil {
		view := ToQuestionView(*snap.Current)
		out.CurrentQuestion = &view
	}
	return out
}
