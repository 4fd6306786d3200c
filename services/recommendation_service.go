package services

import (
	"context"
	"errors"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/logger"
	"github.com/alinaharnat/healthy-eating-tracking-system/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Advisory texts emitted by the rule engine.
const (
	MsgOvereatingStreak = "You have been exceeding your daily calorie goal for several days in a row. Consider reducing portion sizes, especially in the evening."
	MsgLowProtein       = "Your protein intake is insufficient. Add more protein-rich foods to your diet."
	MsgLowActivity      = "Your physical activity level is low. Try to move more and increase your daily step count."
)

const (
	overeatingStreakDays   = 3
	proteinCalorieShare    = 0.30 // share of the calorie goal expected from protein
	caloriesPerProteinGram = 4.0
	lowProteinRatio        = 0.5
	lowActivityStepFloor   = 5000.0 // average steps per measurement
)

var ErrRecommendationNotFound = errors.New("recommendation not found")

type RecommendationService struct {
	meals        MealSource
	measurements MeasurementSource
	goals        GoalSource
	recs         RecommendationStore
}

func NewRecommendationService(
	meals MealSource,
	measurements MeasurementSource,
	goals GoalSource,
	recs RecommendationStore,
) *RecommendationService {
	return &RecommendationService{
		meals:        meals,
		measurements: measurements,
		goals:        goals,
		recs:         recs,
	}
}

// GenerateAuto evaluates the last 7 days of nutrition and activity data
// against the rule thresholds, persists each fired message as a
// system-generated recommendation and returns the created records.
//
// The streak rule emits once per qualifying day, not once per streak, so a
// long streak produces duplicate messages. Known historical behavior; do
// not deduplicate without a product decision.
func (s *RecommendationService) GenerateAuto(ctx context.Context, userID uint) ([]models.Recommendation, error) {
	goal, err := s.goals.DailyCalorieGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	start := dayStartUTC(now).AddDate(0, 0, -6)
	end := dayStartUTC(now).AddDate(0, 0, 1)

	meals, err := s.meals.MealsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	days := groupMealsByDay(meals) // chronological

	var messages []string

	// Rule 1: three or more consecutive days over the calorie goal.
	if goal > 0 && len(days) >= overeatingStreakDays {
		streak := 0
		for _, d := range days {
			if d.Calories > goal {
				streak++
				if streak >= overeatingStreakDays {
					messages = append(messages, MsgOvereatingStreak)
				}
			} else {
				streak = 0
			}
		}
	}

	// Rule 2: average daily protein below half the ideal share.
	if goal > 0 && len(days) > 0 {
		idealProteinGrams := goal * proteinCalorieShare / caloriesPerProteinGram
		var sum float64
		for _, d := range days {
			sum += d.Proteins
		}
		if sum/float64(len(days)) < idealProteinGrams*lowProteinRatio {
			messages = append(messages, MsgLowProtein)
		}
	}

	// Rule 3: low average step count per measurement.
	measurements, err := s.measurements.MeasurementsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	totalSteps := 0
	for _, m := range measurements {
		totalSteps += m.StepCount()
	}
	avgSteps := 0.0
	if len(measurements) > 0 {
		avgSteps = float64(totalSteps) / float64(len(measurements))
	}
	if avgSteps < lowActivityStepFloor {
		messages = append(messages, MsgLowActivity)
	}

	// Persist sequentially; a failure keeps what was already created.
	created := make([]models.Recommendation, 0, len(messages))
	for _, msg := range messages {
		rec := models.Recommendation{UserID: userID, Message: msg}
		if err := s.recs.Create(ctx, &rec); err != nil {
			logger.Error("failed to persist recommendation",
				zap.Uint("user_id", userID), zap.Error(err))
			return created, err
		}
		created = append(created, rec)
	}
	logger.Info("recommendations generated",
		zap.Uint("user_id", userID), zap.Int("count", len(created)))
	return created, nil
}

func (s *RecommendationService) ListForUser(ctx context.Context, userID uint) ([]models.Recommendation, error) {
	return s.recs.ListByUser(ctx, userID)
}

// CreateByDietitian records a dietitian-authored advisory for a user.
func (s *RecommendationService) CreateByDietitian(ctx context.Context, dietitianID, userID uint, message string) (*models.Recommendation, error) {
	rec := models.Recommendation{
		UserID:      userID,
		DietitianID: &dietitianID,
		Message:     message,
	}
	if err := s.recs.Create(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RecommendationService) Delete(ctx context.Context, id uint) error {
	rows, err := s.recs.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecommendationNotFound
		}
		return err
	}
	if rows == 0 {
		return ErrRecommendationNotFound
	}
	return nil
}
