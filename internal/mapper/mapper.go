package mapper

import (
	"strings"

	"company-profile-be/internal/model"

	"gorm.io/datatypes"
)

// ResourceMapper converts request DTOs into models and partial updates.
// Update maps are keyed by column and only carry fields present in the request.
type ResourceMapper[M, C, U any] interface {
	FromCreate(req *C) *M
	ToUpdates(req *U) map[string]interface{}
}

type updates map[string]interface{}

func set[T any](u updates, column string, v *T) {
	if v != nil {
		u[column] = *v
	}
}

func setTrimmed(u updates, column string, v *string) {
	if v != nil {
		u[column] = strings.TrimSpace(*v)
	}
}

func setStrings(u updates, column string, v *[]string) {
	if v != nil {
		u[column] = stringList(*v)
	}
}

func setPairs(u updates, column string, v *[]model.KeyValue) {
	if v != nil {
		u[column] = pairList(*v)
	}
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// stringList trims entries and never returns nil, so the column stores [] not null.
func stringList(in []string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func pairList(in []model.KeyValue) datatypes.JSONSlice[model.KeyValue] {
	out := make(datatypes.JSONSlice[model.KeyValue], 0, len(in))
	for _, kv := range in {
		out = append(out, model.KeyValue{Key: strings.TrimSpace(kv.Key), Value: strings.TrimSpace(kv.Value)})
	}
	return out
}
