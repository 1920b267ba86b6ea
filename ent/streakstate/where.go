// Code generated by ent, DO NOT EDIT.

package streakstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rkoval/brightpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StreakState {
	return predicate.StreakState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StreakState {
	return predicate.StreakState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StreakState {
	return predicate.StreakState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StreakState {
	return predicate.StreakState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StreakState {
	return predicate.StreakState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StreakState {
	return predicate.StreakState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StreakState {
	return predicate.StreakState(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldLearnerID, v))
}

// CurrentStreak applies equality check predicate on the "current_streak" field. It's identical to CurrentStreakEQ.
func CurrentStreak(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldCurrentStreak, v))
}

// LongestStreak applies equality check predicate on the "longest_streak" field. It's identical to LongestStreakEQ.
func LongestStreak(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldLongestStreak, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldLastActivityAt, v))
}

// StreakStartedAt applies equality check predicate on the "streak_started_at" field. It's identical to StreakStartedAtEQ.
func StreakStartedAt(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldStreakStartedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.StreakState {
	return predicate.StreakState(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.StreakState {
	return predicate.StreakState(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.StreakState {
	return predicate.StreakState(sql.FieldContainsFold(FieldLearnerID, v))
}

// CurrentStreakEQ applies the EQ predicate on the "current_streak" field.
func CurrentStreakEQ(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldCurrentStreak, v))
}

// CurrentStreakNEQ applies the NEQ predicate on the "current_streak" field.
func CurrentStreakNEQ(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldNEQ(FieldCurrentStreak, v))
}

// CurrentStreakIn applies the In predicate on the "current_streak" field.
func CurrentStreakIn(vs ...int) predicate.StreakState {
	return predicate.StreakState(sql.FieldIn(FieldCurrentStreak, vs...))
}

// CurrentStreakNotIn applies the NotIn predicate on the "current_streak" field.
func CurrentStreakNotIn(vs ...int) predicate.StreakState {
	return predicate.StreakState(sql.FieldNotIn(FieldCurrentStreak, vs...))
}

// CurrentStreakGT applies the GT predicate on the "current_streak" field.
func CurrentStreakGT(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldGT(FieldCurrentStreak, v))
}

// CurrentStreakGTE applies the GTE predicate on the "current_streak" field.
func CurrentStreakGTE(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldGTE(FieldCurrentStreak, v))
}

// CurrentStreakLT applies the LT predicate on the "current_streak" field.
func CurrentStreakLT(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldLT(FieldCurrentStreak, v))
}

// CurrentStreakLTE applies the LTE predicate on the "current_streak" field.
func CurrentStreakLTE(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldLTE(FieldCurrentStreak, v))
}

// LongestStreakEQ applies the EQ predicate on the "longest_streak" field.
func LongestStreakEQ(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldLongestStreak, v))
}

// LongestStreakNEQ applies the NEQ predicate on the "longest_streak" field.
func LongestStreakNEQ(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldNEQ(FieldLongestStreak, v))
}

// LongestStreakIn applies the In predicate on the "longest_streak" field.
func LongestStreakIn(vs ...int) predicate.StreakState {
	return predicate.StreakState(sql.FieldIn(FieldLongestStreak, vs...))
}

// LongestStreakNotIn applies the NotIn predicate on the "longest_streak" field.
func LongestStreakNotIn(vs ...int) predicate.StreakState {
	return predicate.StreakState(sql.FieldNotIn(FieldLongestStreak, vs...))
}

// LongestStreakGT applies the GT predicate on the "longest_streak" field.
func LongestStreakGT(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldGT(FieldLongestStreak, v))
}

// LongestStreakGTE applies the GTE predicate on the "longest_streak" field.
func LongestStreakGTE(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldGTE(FieldLongestStreak, v))
}

// LongestStreakLT applies the LT predicate on the "longest_streak" field.
func LongestStreakLT(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldLT(FieldLongestStreak, v))
}

// LongestStreakLTE applies the LTE predicate on the "longest_streak" field.
func LongestStreakLTE(v int) predicate.StreakState {
	return predicate.StreakState(sql.FieldLTE(FieldLongestStreak, v))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldLTE(FieldLastActivityAt, v))
}

// StreakStartedAtEQ applies the EQ predicate on the "streak_started_at" field.
func StreakStartedAtEQ(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldEQ(FieldStreakStartedAt, v))
}

// StreakStartedAtNEQ applies the NEQ predicate on the "streak_started_at" field.
func StreakStartedAtNEQ(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldNEQ(FieldStreakStartedAt, v))
}

// StreakStartedAtIn applies the In predicate on the "streak_started_at" field.
func StreakStartedAtIn(vs ...time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldIn(FieldStreakStartedAt, vs...))
}

// StreakStartedAtNotIn applies the NotIn predicate on the "streak_started_at" field.
func StreakStartedAtNotIn(vs ...time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldNotIn(FieldStreakStartedAt, vs...))
}

// StreakStartedAtGT applies the GT predicate on the "streak_started_at" field.
func StreakStartedAtGT(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldGT(FieldStreakStartedAt, v))
}

// StreakStartedAtGTE applies the GTE predicate on the "streak_started_at" field.
func StreakStartedAtGTE(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldGTE(FieldStreakStartedAt, v))
}

// StreakStartedAtLT applies the LT predicate on the "streak_started_at" field.
func StreakStartedAtLT(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldLT(FieldStreakStartedAt, v))
}

// StreakStartedAtLTE applies the LTE predicate on the "streak_started_at" field.
func StreakStartedAtLTE(v time.Time) predicate.StreakState {
	return predicate.StreakState(sql.FieldLTE(FieldStreakStartedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StreakState) predicate.StreakState {
	return predicate.StreakState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StreakState) predicate.StreakState {
	return predicate.StreakState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StreakState) predicate.StreakState {
	return predicate.StreakState(sql.NotPredicates(p))
}
