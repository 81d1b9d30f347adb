package utils

// KV is a single key/value pair of an ordered mapping.
type KV struct {
	Key   string
	Value string
}

// GetKey returns the key of the first pair whose value equals value, or ""
// when no pair matches. Pairs are scanned in order, first match wins.
func GetKey(value string, pairs []KV) string {
	for _, pair := range pairs {
		if pair.Value == value {
			return pair.Key
		}
	}
	return ""
}

// GetKeyFromMap is GetKey over a plain map. When several keys share the same
// value the returned key follows Go's map iteration order and is therefore
// unspecified; use GetKey with ordered pairs when that matters.
func GetKeyFromMap(value string, mapping map[string]string) string {
	for key, v := range mapping {
		if v == value {
			return key
		}
	}
	return ""
}
