package repositories

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

type MessageRepository interface {
	// FilterNew records the given mail ids and returns the subset that had not
	// been seen before. Already-known ids are silently skipped.
	FilterNew(ctx context.Context, externalIDs []int64) ([]int64, error)
}

type messageRepository struct {
	db *bun.DB
}

func NewMessageRepository(db *bun.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) FilterNew(ctx context.Context, externalIDs []int64) ([]int64, error) {
	if len(externalIDs) == 0 {
		return nil, nil
	}

	var known []int64
	err := r.db.NewSelect().
		Model((*models.Message)(nil)).
		Column("external_id").
		Where("external_id IN (?)", bun.In(externalIDs)).
		Scan(ctx, &known)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(known))
	for _, id := range known {
		seen[id] = struct{}{}
	}

	fresh := make([]int64, 0, len(externalIDs))
	rows := make([]*models.Message, 0, len(externalIDs))
	for _, id := range externalIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		fresh = append(fresh, id)
		rows = append(rows, &models.Message{ExternalID: id})
	}
	if len(rows) == 0 {
		return fresh, nil
	}

	_, err = r.db.NewInsert().
		Model(&rows).
		On("CONFLICT (external_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return fresh, nil
}
