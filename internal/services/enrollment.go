package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mergington/activities/internal/events"
	"github.com/mergington/activities/internal/models"
)

// Confirmation is returned by successful mutations.
type Confirmation struct {
	Message string `json:"message"`
}

// Ledger signs students up for activities and removes them again.
type Ledger struct {
	db  *gorm.DB
	log logrus.FieldLogger
	bus *events.Bus
}

// NewLedger builds a Ledger. bus may be nil.
func NewLedger(db *gorm.DB, log logrus.FieldLogger, bus *events.Bus) *Ledger {
	return &Ledger{db: db, log: log, bus: bus}
}

// Signup enrolls email in the named activity. The duplicate check runs before
// the capacity check. Everything happens in one transaction; the unique index
// and a post-insert recount guard against racing writers.
func (l *Ledger) Signup(ctx context.Context, activityName, email string) (Confirmation, error) {
	email, ok := NormEmail(email)
	if !ok {
		return Confirmation{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	log := l.log.WithFields(logrus.Fields{"activity": activityName, "email": email})

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		act, err := findActivity(tx, activityName)
		if err != nil {
			return err
		}

		var dup int64
		if err := tx.Model(&models.Participant{}).
			Where("activity_id = ? AND email = ?", act.ID, email).
			Count(&dup).Error; err != nil {
			return fmt.Errorf("check enrollment: %w", err)
		}
		if dup > 0 {
			return ErrAlreadySignedUp
		}

		if act.MaxParticipants != nil {
			n, err := countParticipants(tx, act.ID)
			if err != nil {
				return err
			}
			if n >= int64(*act.MaxParticipants) {
				return ErrActivityFull
			}
		}

		p := models.Participant{Email: email, ActivityID: act.ID}
		if err := tx.Create(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadySignedUp
			}
			return fmt.Errorf("create enrollment: %w", err)
		}

		if act.MaxParticipants != nil {
			n, err := countParticipants(tx, act.ID)
			if err != nil {
				return err
			}
			if n > int64(*act.MaxParticipants) {
				return ErrActivityFull
			}
		}
		return nil
	})
	if err != nil {
		l.logFailure(log, "signup", err)
		return Confirmation{}, err
	}

	log.Info("signed up")
	l.publish(events.Change{Kind: events.KindSignup, Activity: activityName, Email: email})
	return Confirmation{Message: fmt.Sprintf("Signed up %s for %s", email, activityName)}, nil
}

// Unregister removes email from the named activity.
func (l *Ledger) Unregister(ctx context.Context, activityName, email string) (Confirmation, error) {
	email, ok := NormEmail(email)
	if !ok {
		return Confirmation{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	log := l.log.WithFields(logrus.Fields{"activity": activityName, "email": email})

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		act, err := findActivity(tx, activityName)
		if err != nil {
			return err
		}

		var p models.Participant
		res := tx.Where("activity_id = ? AND email = ?", act.ID, email).Limit(1).Find(&p)
		if res.Error != nil {
			return fmt.Errorf("find enrollment: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotSignedUp
		}

		if err := tx.Delete(&p).Error; err != nil {
			return fmt.Errorf("delete enrollment: %w", err)
		}
		return nil
	})
	if err != nil {
		l.logFailure(log, "unregister", err)
		return Confirmation{}, err
	}

	log.Info("unregistered")
	l.publish(events.Change{Kind: events.KindUnregister, Activity: activityName, Email: email})
	return Confirmation{Message: fmt.Sprintf("Unregistered %s from %s", email, activityName)}, nil
}

func (l *Ledger) publish(c events.Change) {
	if l.bus != nil {
		l.bus.Publish(c)
	}
}

func (l *Ledger) logFailure(log logrus.FieldLogger, op string, err error) {
	if KindOf(err) == KindInternal {
		log.WithError(err).Error(op + " failed")
		return
	}
	log.WithError(err).Debug(op + " rejected")
}

func countParticipants(tx *gorm.DB, activityID uint) (int64, error) {
	var n int64
	if err := tx.Model(&models.Participant{}).Where("activity_id = ?", activityID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return n, nil
}
