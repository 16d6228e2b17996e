package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"frontierbrief/internal/model"
)

// observationFields are the exact fields an observation record must carry
var observationFields = []string{"topic", "company", "source", "url", "summary"}

// LoadObservations reads a JSON array of observations from a file.
// Validation is strict and fail-fast: a missing, mistyped, or unknown field
// in any record aborts the load with an error naming the record and field,
// before any assessment runs. An empty array is valid.
func LoadObservations(path string) ([]model.Observation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read observations: %w", err)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse observations: expected a JSON array of objects: %w", err)
	}

	observations := make([]model.Observation, 0, len(raw))
	for i, record := range raw {
		obs, err := decodeObservation(record)
		if err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
		observations = append(observations, obs)
	}

	return observations, nil
}

// decodeObservation validates one record field by field
func decodeObservation(record map[string]json.RawMessage) (model.Observation, error) {
	values := make(map[string]string, len(observationFields))

	for _, field := range observationFields {
		raw, ok := record[field]
		if !ok {
			return model.Observation{}, fmt.Errorf("missing field %q", field)
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return model.Observation{}, fmt.Errorf("field %q: expected a string", field)
		}
		values[field] = value
	}

	if len(record) > len(observationFields) {
		for key := range record {
			if !isObservationField(key) {
				return model.Observation{}, fmt.Errorf("unknown field %q", key)
			}
		}
	}

	return model.Observation{
		Topic:   values["topic"],
		Company: values["company"],
		Source:  values["source"],
		URL:     values["url"],
		Summary: values["summary"],
	}, nil
}

func isObservationField(name string) bool {
	for _, field := range observationFields {
		if name == field {
			return true
		}
	}
	return false
}
