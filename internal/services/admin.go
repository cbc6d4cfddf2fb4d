package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mergington/activities/internal/models"
)

// NewActivity is the input for creating an activity administratively.
type NewActivity struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Schedule        string  `json:"schedule"`
	MaxParticipants *int    `json:"max_participants"`
	Category        *string `json:"category"`
}

// RosterRow is one enrollment in an activity's roster.
type RosterRow struct {
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	SignedUpAt time.Time `json:"signed_up_at"`
}

// CapacityRow summarizes enrollment against capacity. Available and
// FillPercent are nil for unlimited activities.
type CapacityRow struct {
	Activity        string  `json:"activity"`
	Category        *string `json:"category"`
	MaxParticipants *int    `json:"max_participants"`
	Enrolled        int64   `json:"enrolled"`
	Available       *int    `json:"available"`
	FillPercent     *int    `json:"fill_percent"`
}

// CreateActivity adds a new activity. Names are trimmed and must be unique; a
// blank category is stored as uncategorized.
func (c *Catalog) CreateActivity(ctx context.Context, in NewActivity) (ActivityView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ActivityView{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.MaxParticipants != nil && *in.MaxParticipants <= 0 {
		return ActivityView{}, fmt.Errorf("%w: max_participants must be positive", ErrInvalidInput)
	}
	category := in.Category
	if category != nil && strings.TrimSpace(*category) == "" {
		category = nil
	}

	act := models.Activity{
		Name:            name,
		Description:     in.Description,
		Schedule:        in.Schedule,
		MaxParticipants: in.MaxParticipants,
		Category:        category,
	}
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findActivity(tx, name); err == nil {
			return ErrActivityExists
		} else if !errors.Is(err, ErrActivityNotFound) {
			return err
		}
		if err := tx.Create(&act).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrActivityExists
			}
			return fmt.Errorf("create activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return ActivityView{}, err
	}

	c.log.WithField("activity", name).Info("activity created")
	return toView(act), nil
}

// DeleteActivity removes the activity together with all of its enrollments.
func (c *Catalog) DeleteActivity(ctx context.Context, name string) (Confirmation, error) {
	var removed int64
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		act, err := findActivity(tx, name)
		if err != nil {
			return err
		}
		res := tx.Where("activity_id = ?", act.ID).Delete(&models.Participant{})
		if res.Error != nil {
			return fmt.Errorf("delete enrollments: %w", res.Error)
		}
		removed = res.RowsAffected
		if err := tx.Delete(&act).Error; err != nil {
			return fmt.Errorf("delete activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return Confirmation{}, err
	}

	c.log.WithField("activity", name).WithField("enrollments", removed).Info("activity deleted")
	return Confirmation{Message: fmt.Sprintf("Deleted %s and %d enrollments", name, removed)}, nil
}

// Roster lists an activity's enrollments, oldest first.
func (c *Catalog) Roster(ctx context.Context, name string) ([]RosterRow, error) {
	db := c.db.WithContext(ctx)
	act, err := findActivity(db, name)
	if err != nil {
		return nil, err
	}
	var parts []models.Participant
	if err := db.Where("activity_id = ?", act.ID).Order("id asc").Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	rows := make([]RosterRow, 0, len(parts))
	for _, p := range parts {
		rows = append(rows, RosterRow{Activity: act.Name, Email: p.Email, SignedUpAt: p.CreatedAt})
	}
	return rows, nil
}

// Capacity reports enrollment per activity, sorted by activity name.
func (c *Catalog) Capacity(ctx context.Context) ([]CapacityRow, error) {
	db := c.db.WithContext(ctx)

	var acts []models.Activity
	if err := db.Order("name asc").Find(&acts).Error; err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}

	// Single aggregation query instead of one COUNT per activity.
	type capAgg struct {
		ActivityID uint
		Enrolled   int64
	}
	var aggs []capAgg
	if err := db.Table("participants").
		Select("activity_id, COUNT(*) AS enrolled").
		Group("activity_id").
		Scan(&aggs).Error; err != nil {
		return nil, fmt.Errorf("aggregate enrollments: %w", err)
	}
	aggMap := make(map[uint]int64, len(aggs))
	for _, a := range aggs {
		aggMap[a.ActivityID] = a.Enrolled
	}

	rows := make([]CapacityRow, 0, len(acts))
	for _, a := range acts {
		row := CapacityRow{
			Activity:        a.Name,
			Category:        a.Category,
			MaxParticipants: a.MaxParticipants,
			Enrolled:        aggMap[a.ID],
		}
		if a.MaxParticipants != nil && *a.MaxParticipants > 0 {
			limit := *a.MaxParticipants
			avail := limit - int(row.Enrolled)
			if avail < 0 {
				avail = 0
			}
			fill := int(row.Enrolled * 100 / int64(limit))
			row.Available = &avail
			row.FillPercent = &fill
		}
		rows = append(rows, row)
	}
	return rows, nil
}
