package selection

import (
	"encoding/json"
	"net/url"
)

// videosField is the repeated form field the player server reads as the
// ordered playlist.
const videosField = "videos"

// ParseInitialOrder decodes a server-supplied initial order: a JSON array
// of catalog paths. Malformed or non-array input degrades to nil, meaning
// encounter order applies.
func ParseInitialOrder(raw string) []string {
	if raw == "" {
		return nil
	}
	var order []string
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil
	}
	return order
}

// FormValues serializes a playlist submission: one videos field per
// selected path in final order, plus name and loop_video. The value set is
// rebuilt from scratch on every call so a stale order can never linger.
func FormValues(name, loopVideo string, order []string) url.Values {
	values := url.Values{}
	values.Set("name", name)
	values.Set("loop_video", loopVideo)
	for _, path := range order {
		values.Add(videosField, path)
	}
	return values
}
