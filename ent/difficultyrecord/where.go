// Code generated by ent, DO NOT EDIT.

package difficultyrecord

import (
	"entgo.io/ent/dialect/sql"
	"github.com/rkoval/brightpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldEQ(FieldItemID, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldEQ(FieldDifficulty, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldEQ(FieldTotalAttempts, v))
}

// SuccessRate applies equality check predicate on the "success_rate" field. It's identical to SuccessRateEQ.
func SuccessRate(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldEQ(FieldSuccessRate, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldContainsFold(FieldItemID, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldLTE(FieldDifficulty, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldLTE(FieldTotalAttempts, v))
}

// SuccessRateEQ applies the EQ predicate on the "success_rate" field.
func SuccessRateEQ(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldEQ(FieldSuccessRate, v))
}

// SuccessRateNEQ applies the NEQ predicate on the "success_rate" field.
func SuccessRateNEQ(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldNEQ(FieldSuccessRate, v))
}

// SuccessRateIn applies the In predicate on the "success_rate" field.
func SuccessRateIn(vs ...int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldIn(FieldSuccessRate, vs...))
}

// SuccessRateNotIn applies the NotIn predicate on the "success_rate" field.
func SuccessRateNotIn(vs ...int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldNotIn(FieldSuccessRate, vs...))
}

// SuccessRateGT applies the GT predicate on the "success_rate" field.
func SuccessRateGT(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldGT(FieldSuccessRate, v))
}

// SuccessRateGTE applies the GTE predicate on the "success_rate" field.
func SuccessRateGTE(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldGTE(FieldSuccessRate, v))
}

// SuccessRateLT applies the LT predicate on the "success_rate" field.
func SuccessRateLT(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldLT(FieldSuccessRate, v))
}

// SuccessRateLTE applies the LTE predicate on the "success_rate" field.
func SuccessRateLTE(v int) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.FieldLTE(FieldSuccessRate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DifficultyRecord) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DifficultyRecord) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DifficultyRecord) predicate.DifficultyRecord {
	return predicate.DifficultyRecord(sql.NotPredicates(p))
}
