//go:build unit || e2e

package testutil

// Field overrides (or, with a nil value, removes) one key of a request map.
// Used with DtoMap to build invalid-payload variations from a valid base.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
