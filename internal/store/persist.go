package store

import (
	"encoding/json"
	"fmt"

	"github.com/perihassanzadeh/improve365/internal/model"
)

// StateKey is the single key the whole state blob lives under.
const StateKey = "improve365-data"

func EncodeState(s model.State) ([]byte, error) {
	raw, err := json.Marshal(normalize(s))
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return raw, nil
}

// DecodeState parses a saved blob. Keys missing from the blob keep their
// default values.
func DecodeState(raw []byte) (model.State, error) {
	s := model.DefaultState()
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.State{}, fmt.Errorf("decode state: %w", err)
	}
	return normalize(s), nil
}

func maxEntryID(s model.State) int64 {
	var max int64
	for _, e := range s.NutritionEntries {
		if e.ID > max {
			max = e.ID
		}
	}
	for _, e := range s.WorkoutEntries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}
