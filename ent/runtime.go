// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rkoval/brightpath/ent/attemptevent"
	"github.com/rkoval/brightpath/ent/difficultyrecord"
	"github.com/rkoval/brightpath/ent/item"
	"github.com/rkoval/brightpath/ent/reviewstate"
	"github.com/rkoval/brightpath/ent/schema"
	"github.com/rkoval/brightpath/ent/streakstate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[0].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[1].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	difficultyrecordFields := schema.DifficultyRecord{}.Fields()
	_ = difficultyrecordFields
	// difficultyrecordDescItemID is the schema descriptor for item_id field.
	difficultyrecordDescItemID := difficultyrecordFields[0].Descriptor()
	// difficultyrecord.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	difficultyrecord.ItemIDValidator = difficultyrecordDescItemID.Validators[0].(func(string) error)
	// difficultyrecordDescDifficulty is the schema descriptor for difficulty field.
	difficultyrecordDescDifficulty := difficultyrecordFields[1].Descriptor()
	// difficultyrecord.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	difficultyrecord.DifficultyValidator = func() func(float64) error {
		validators := difficultyrecordDescDifficulty.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(difficulty float64) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// difficultyrecordDescTotalAttempts is the schema descriptor for total_attempts field.
	difficultyrecordDescTotalAttempts := difficultyrecordFields[2].Descriptor()
	// difficultyrecord.TotalAttemptsValidator is a validator for the "total_attempts" field. It is called by the builders before save.
	difficultyrecord.TotalAttemptsValidator = difficultyrecordDescTotalAttempts.Validators[0].(func(int) error)
	// difficultyrecordDescSuccessRate is the schema descriptor for success_rate field.
	difficultyrecordDescSuccessRate := difficultyrecordFields[3].Descriptor()
	// difficultyrecord.SuccessRateValidator is a validator for the "success_rate" field. It is called by the builders before save.
	difficultyrecord.SuccessRateValidator = func() func(int) error {
		validators := difficultyrecordDescSuccessRate.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(success_rate int) error {
			for _, fn := range fns {
				if err := fn(success_rate); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescItemID is the schema descriptor for item_id field.
	itemDescItemID := itemFields[0].Descriptor()
	// item.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	item.ItemIDValidator = itemDescItemID.Validators[0].(func(string) error)
	// itemDescPrompt is the schema descriptor for prompt field.
	itemDescPrompt := itemFields[1].Descriptor()
	// item.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	item.PromptValidator = itemDescPrompt.Validators[0].(func(string) error)
	// itemDescLevelID is the schema descriptor for level_id field.
	itemDescLevelID := itemFields[3].Descriptor()
	// item.LevelIDValidator is a validator for the "level_id" field. It is called by the builders before save.
	item.LevelIDValidator = itemDescLevelID.Validators[0].(func(string) error)
	reviewstateFields := schema.ReviewState{}.Fields()
	_ = reviewstateFields
	// reviewstateDescLearnerID is the schema descriptor for learner_id field.
	reviewstateDescLearnerID := reviewstateFields[0].Descriptor()
	// reviewstate.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewstate.LearnerIDValidator = reviewstateDescLearnerID.Validators[0].(func(string) error)
	// reviewstateDescItemID is the schema descriptor for item_id field.
	reviewstateDescItemID := reviewstateFields[1].Descriptor()
	// reviewstate.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewstate.ItemIDValidator = reviewstateDescItemID.Validators[0].(func(string) error)
	// reviewstateDescIntervalDays is the schema descriptor for interval_days field.
	reviewstateDescIntervalDays := reviewstateFields[2].Descriptor()
	// reviewstate.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewstate.DefaultIntervalDays = reviewstateDescIntervalDays.Default.(int)
	// reviewstate.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	reviewstate.IntervalDaysValidator = reviewstateDescIntervalDays.Validators[0].(func(int) error)
	// reviewstateDescEaseFactor is the schema descriptor for ease_factor field.
	reviewstateDescEaseFactor := reviewstateFields[3].Descriptor()
	// reviewstate.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	reviewstate.DefaultEaseFactor = reviewstateDescEaseFactor.Default.(float64)
	// reviewstate.EaseFactorValidator is a validator for the "ease_factor" field. It is called by the builders before save.
	reviewstate.EaseFactorValidator = reviewstateDescEaseFactor.Validators[0].(func(float64) error)
	// reviewstateDescRepetitions is the schema descriptor for repetitions field.
	reviewstateDescRepetitions := reviewstateFields[4].Descriptor()
	// reviewstate.DefaultRepetitions holds the default value on creation for the repetitions field.
	reviewstate.DefaultRepetitions = reviewstateDescRepetitions.Default.(int)
	// reviewstate.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	reviewstate.RepetitionsValidator = reviewstateDescRepetitions.Validators[0].(func(int) error)
	streakstateFields := schema.StreakState{}.Fields()
	_ = streakstateFields
	// streakstateDescLearnerID is the schema descriptor for learner_id field.
	streakstateDescLearnerID := streakstateFields[0].Descriptor()
	// streakstate.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	streakstate.LearnerIDValidator = streakstateDescLearnerID.Validators[0].(func(string) error)
	// streakstateDescCurrentStreak is the schema descriptor for current_streak field.
	streakstateDescCurrentStreak := streakstateFields[1].Descriptor()
	// streakstate.CurrentStreakValidator is a validator for the "current_streak" field. It is called by the builders before save.
	streakstate.CurrentStreakValidator = streakstateDescCurrentStreak.Validators[0].(func(int) error)
	// streakstateDescLongestStreak is the schema descriptor for longest_streak field.
	streakstateDescLongestStreak := streakstateFields[2].Descriptor()
	// streakstate.LongestStreakValidator is a validator for the "longest_streak" field. It is called by the builders before save.
	streakstate.LongestStreakValidator = streakstateDescLongestStreak.Validators[0].(func(int) error)
}
