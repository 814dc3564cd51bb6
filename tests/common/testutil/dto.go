//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits the JSON object form of a request body.
type Mutation func(map[string]any)

// DtoMap turns a request DTO into its JSON object form so tests can send
// payloads the typed DTO cannot express (blank, missing or mistyped fields).
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	obj := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &obj))

	for _, mut := range muts {
		mut(obj)
	}
	return obj
}

// Field sets key to value. A nil value removes the key, same as Omit.
func Field(key string, value any) Mutation {
	if value == nil {
		return Omit(key)
	}
	return func(obj map[string]any) { obj[key] = value }
}

func Omit(keys ...string) Mutation {
	return func(obj map[string]any) {
		for _, k := range keys {
			delete(obj, k)
		}
	}
}
