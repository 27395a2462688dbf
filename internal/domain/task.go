package domain

import (
	"encoding/json"
	"fmt"
)

// Track tags a catalog task with the track it belongs to. The zero
// value means the task applies to every selected track; persisted
// records encode it as the string "all" and specific tracks as their
// numeric id, matching the stored schema.
type Track int

const TrackAll Track = 0

func (t Track) Matches(selected []int) bool {
	if t == TrackAll {
		return true
	}
	for _, id := range selected {
		if Track(id) == t {
			return true
		}
	}
	return false
}

func (t Track) MarshalJSON() ([]byte, error) {
	if t == TrackAll {
		return []byte(`"all"`), nil
	}
	return json.Marshal(int(t))
}

func (t *Track) UnmarshalJSON(data []byte) error {
	if string(data) == `"all"` {
		*t = TrackAll
		return nil
	}
	var id int
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("track tag: %w", err)
	}
	*t = Track(id)
	return nil
}

// Task is one actionable item within a day.
type Task struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Track     Track  `json:"track"`
}

// Suggestion is a coaching prompt. It is ephemeral and never persisted.
type Suggestion struct {
	Task       string `json:"task"`
	Motivation string `json:"motivation"`
	TrackID    int    `json:"trackId"`
}
