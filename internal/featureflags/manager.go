// Package featureflags evaluates operational kill switches and rollouts
// configured as a comma-separated key=value list, e.g.
// "signup_disabled=on,top_sort=50%".
package featureflags

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Manager answers flag queries for the configured flag set.
type Manager struct {
	flags map[string]string
}

// NewManager parses a comma-separated flag list. Malformed pairs are
// skipped.
func NewManager(raw string) *Manager {
	flags := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key = normalize(key)
		value = normalize(value)
		if key == "" || value == "" {
			continue
		}
		flags[key] = value
	}
	return &Manager{flags: flags}
}

// Enabled reports whether the named flag is on for the given user. Values
// "on"/"true"/"1" and "off"/"false"/"0" are absolute; "N%" enables the flag
// for a deterministic N percent of user ids. Unknown flags are off.
func (m *Manager) Enabled(name string, userID uint) bool {
	if m == nil {
		return false
	}
	value, ok := m.flags[normalize(name)]
	if !ok {
		return false
	}

	switch value {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}

	pctRaw, ok := strings.CutSuffix(value, "%")
	if !ok {
		return false
	}
	pct, err := strconv.Atoi(pctRaw)
	if err != nil || pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	if userID == 0 {
		return false
	}

	h := fnv.New32a()
	h.Write([]byte(normalize(name)))
	h.Write([]byte(strconv.FormatUint(uint64(userID), 10)))
	return int(h.Sum32()%100) < pct
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
