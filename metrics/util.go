package metrics

import (
	"errors"
	"sort"
	"strings"
)

type metricType string
type Tags map[string]string

const (
	metricTypeCounter = metricType("ct")
	metricTypeStat    = metricType("h")
	metricTypeGauge   = metricType("g")
)

func formatName(prefix string, name string) string {
	formatted := prefix
	if len(name) > 0 && len(prefix) > 0 {
		formatted += "."
	}
	return formatted + name
}

// FormatTags converts a map of tags into a stable string usable as a
// map key.
func FormatTags(tags Tags) string {
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	formatted := ""
	for _, key := range keys {
		formatted += key + ":" + tags[key] + ","
	}
	return formatted
}

// ParseTags converts a string produced by FormatTags back into a map.
func ParseTags(tagString string) (Tags, error) {
	split := strings.Split(tagString, ",")
	tags := make(Tags, len(split))

	for _, pair := range split {
		if len(pair) > 0 {
			entry := strings.Split(pair, ":")
			if len(entry) != 2 {
				return nil, errors.New("incorrectly formatted tag: " + pair)
			}
			tags[entry[0]] = entry[1]
		}
	}
	return tags, nil
}
