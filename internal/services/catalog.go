package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mergington/activities/internal/models"
)

// ActivityView is the public shape of an activity and its participants.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants *int     `json:"max_participants"`
	Participants    []string `json:"participants"`
	Category        *string  `json:"category"`
}

// Catalog reads activities and handles their administration.
type Catalog struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// NewCatalog builds a Catalog over db.
func NewCatalog(db *gorm.DB, log logrus.FieldLogger) *Catalog {
	return &Catalog{db: db, log: log}
}

// ListActivities returns every activity keyed by name. A non-empty category
// keeps only exact matches; uncategorized activities never match it.
func (c *Catalog) ListActivities(ctx context.Context, category string) (map[string]ActivityView, error) {
	q := c.db.WithContext(ctx).
		Preload("Participants", func(tx *gorm.DB) *gorm.DB { return tx.Order("id asc") }).
		Order("id asc")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var acts []models.Activity
	if err := q.Find(&acts).Error; err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	out := make(map[string]ActivityView, len(acts))
	for _, a := range acts {
		out[a.Name] = toView(a)
	}
	return out, nil
}

// GetActivity returns a single activity by exact name.
func (c *Catalog) GetActivity(ctx context.Context, name string) (ActivityView, error) {
	act, err := findActivity(c.db.WithContext(ctx), name)
	if err != nil {
		return ActivityView{}, err
	}
	var parts []models.Participant
	if err := c.db.WithContext(ctx).Where("activity_id = ?", act.ID).Order("id asc").Find(&parts).Error; err != nil {
		return ActivityView{}, fmt.Errorf("load participants: %w", err)
	}
	act.Participants = parts
	return toView(act), nil
}

func toView(a models.Activity) ActivityView {
	emails := make([]string, 0, len(a.Participants))
	for _, p := range a.Participants {
		emails = append(emails, p.Email)
	}
	return ActivityView{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    emails,
		Category:        a.Category,
	}
}

// findActivity looks an activity up by exact name. Find+Limit avoids gorm
// logging every miss as an error.
func findActivity(tx *gorm.DB, name string) (models.Activity, error) {
	var act models.Activity
	res := tx.Where("name = ?", name).Limit(1).Find(&act)
	if res.Error != nil {
		return act, fmt.Errorf("find activity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return act, ErrActivityNotFound
	}
	return act, nil
}
