package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/meghna/questly/ent"
	"github.com/meghna/questly/ent/sessionartifact"
	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/persona"
)

// artifactRepo implements ArtifactRepo backed by ent.
type artifactRepo struct {
	client *ent.Client
}

func (r *artifactRepo) PutChapters(ctx context.Context, session string, set *content.ChapterSet) error {
	return r.put(ctx, session, FieldChapters, set)
}

func (r *artifactRepo) Chapters(ctx context.Context, session string) (*content.ChapterSet, error) {
	var set content.ChapterSet
	if err := r.get(ctx, session, FieldChapters, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *artifactRepo) PutPersonas(ctx context.Context, session string, set *persona.Set) error {
	return r.put(ctx, session, FieldPersonas, set)
}

func (r *artifactRepo) Personas(ctx context.Context, session string) (*persona.Set, error) {
	var set persona.Set
	if err := r.get(ctx, session, FieldPersonas, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *artifactRepo) PutQuest(ctx context.Context, session string, quest *content.Quest) error {
	return r.put(ctx, session, FieldQuest, quest)
}

func (r *artifactRepo) Quest(ctx context.Context, session string) (*content.Quest, error) {
	var quest content.Quest
	if err := r.get(ctx, session, FieldQuest, &quest); err != nil {
		return nil, err
	}
	return &quest, nil
}

func (r *artifactRepo) Transcript(ctx context.Context, session string) ([]chat.Turn, error) {
	var turns []chat.Turn
	err := r.get(ctx, session, FieldTranscript, &turns)
	if err != nil {
		var notReady *StageNotReadyError
		if errors.As(err, &notReady) {
			return []chat.Turn{}, nil
		}
		return nil, err
	}
	return turns, nil
}

func (r *artifactRepo) AppendTranscript(ctx context.Context, session string, turns ...chat.Turn) error {
	if len(turns) == 0 {
		return nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	err = func() error {
		row, err := tx.SessionArtifact.Query().
			Where(
				sessionartifact.SessionID(session),
				sessionartifact.Field(FieldTranscript),
			).
			Only(ctx)

		var existing []chat.Turn
		switch {
		case err == nil:
			if err := json.Unmarshal(row.Payload, &existing); err != nil {
				return fmt.Errorf("decode transcript: %w", err)
			}
		case ent.IsNotFound(err):
			// First append creates the transcript.
		default:
			return fmt.Errorf("load transcript: %w", err)
		}

		payload, err := json.Marshal(append(existing, turns...))
		if err != nil {
			return fmt.Errorf("encode transcript: %w", err)
		}

		if row != nil {
			_, err = row.Update().SetPayload(payload).Save(ctx)
		} else {
			_, err = tx.SessionArtifact.Create().
				SetSessionID(session).
				SetField(FieldTranscript).
				SetPayload(payload).
				Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("save transcript: %w", err)
		}
		return nil
	}()
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transcript append: %w", err)
	}
	return nil
}

// put overwrites the artifact for (session, field) with the JSON form of v.
func (r *artifactRepo) put(ctx context.Context, session, field string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", field, err)
	}

	row, err := r.client.SessionArtifact.Query().
		Where(
			sessionartifact.SessionID(session),
			sessionartifact.Field(field),
		).
		Only(ctx)

	switch {
	case err == nil:
		_, err = row.Update().SetPayload(payload).Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.SessionArtifact.Create().
			SetSessionID(session).
			SetField(field).
			SetPayload(payload).
			Save(ctx)
	default:
		return fmt.Errorf("lookup %s: %w", field, err)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", field, err)
	}
	return nil
}

// get decodes the artifact for (session, field) into out. An absent row
// means the stage has not run for this session.
func (r *artifactRepo) get(ctx context.Context, session, field string, out any) error {
	row, err := r.client.SessionArtifact.Query().
		Where(
			sessionartifact.SessionID(session),
			sessionartifact.Field(field),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &StageNotReadyError{Field: field}
		}
		return fmt.Errorf("load %s: %w", field, err)
	}

	if err := json.Unmarshal(row.Payload, out); err != nil {
		return fmt.Errorf("decode %s: %w", field, err)
	}
	return nil
}
