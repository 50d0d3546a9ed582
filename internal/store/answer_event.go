package store

import (
	"context"
	"fmt"

	"github.com/meghna/questly/ent"
	"github.com/meghna/questly/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestName(data.QuestName).
		SetQuestionIndex(data.QuestionIndex).
		SetAttempt(data.Attempt).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetPointsDelta(data.PointsDelta).
		SetScore(data.Score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, session string, opts QueryOpts) ([]AnswerEventRecord, error) {
	query := r.client.AnswerEvent.Query().
		Where(answerevent.SessionID(session)).
		Order(ent.Asc(answerevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(answerevent.SequenceGT(opts.After))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	records := make([]AnswerEventRecord, len(events))
	for i, e := range events {
		records[i] = AnswerEventRecord{
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
			SessionID:     e.SessionID,
			QuestName:     e.QuestName,
			QuestionIndex: e.QuestionIndex,
			Attempt:       e.Attempt,
			LearnerAnswer: e.LearnerAnswer,
			Correct:       e.Correct,
			PointsDelta:   e.PointsDelta,
			Score:         e.Score,
		}
	}
	return records, nil
}
