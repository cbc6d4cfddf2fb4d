package db

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mergington/activities/internal/models"
)

// Seed loads catalog into conn when the activities table is empty. Existing
// data is never merged or updated. It reports whether anything was inserted.
func Seed(ctx context.Context, conn *gorm.DB, catalog []SeedActivity, log logrus.FieldLogger) (bool, error) {
	seeded := false
	err := conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Activity{}).Count(&n).Error; err != nil {
			return fmt.Errorf("count activities: %w", err)
		}
		if n > 0 {
			return nil
		}

		for _, s := range catalog {
			act := models.Activity{
				Name:            s.Name,
				Description:     s.Description,
				Schedule:        s.Schedule,
				MaxParticipants: s.MaxParticipants,
				Category:        s.Category,
			}
			if err := tx.Create(&act).Error; err != nil {
				return fmt.Errorf("seed activity %q: %w", s.Name, err)
			}
			for _, email := range s.Participants {
				p := models.Participant{Email: email, ActivityID: act.ID}
				if err := tx.Create(&p).Error; err != nil {
					return fmt.Errorf("seed participant %q in %q: %w", email, s.Name, err)
				}
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		log.WithField("activities", len(catalog)).Info("seeded activity catalog")
	} else {
		log.Debug("activities present, seeding skipped")
	}
	return seeded, nil
}
