package db

import (
	"context"

	dbmodels "github.com/gartstein/orgchart/internal/org/db/models"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/google/uuid"
)

const defaultActivityLimit = 100

func (r *Repository) RecordActivity(ctx context.Context, activity *models.Activity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	row := &dbmodels.ActivityLog{
		ID:          activity.ID,
		SubjectID:   activity.SubjectID,
		Actor:       activity.Actor,
		Action:      activity.Action,
		Entity:      activity.Entity,
		Description: activity.Description,
		CreatedAt:   activity.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateError(err)
	}
	activity.CreatedAt = row.CreatedAt
	return nil
}

// ListActivity returns the newest entries first, optionally for one subject.
func (r *Repository) ListActivity(ctx context.Context, subjectID *uuid.UUID, limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if subjectID != nil {
		query = query.Where("subject_id = ?", *subjectID)
	}

	var rows []dbmodels.ActivityLog
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*models.Activity, 0, len(rows))
	for i := range rows {
		out = append(out, activityFromRow(&rows[i]))
	}
	return out, nil
}
