package utils

import (
	"encoding/json"
	"log/slog"
)

// SerializeToJSON encodes a review payload for the wire. Everything the
// pipeline publishes (raw reviews, analyzed batches, reply requests) goes
// through here.
func SerializeToJSON(value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("[ReviewPipeline] Failed to serialize payload",
			slog.String("error", err.Error()))
		return nil, err
	}
	return data, nil
}

func DeserializeFromJSON(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("[ReviewPipeline] Failed to deserialize payload",
			slog.String("error", err.Error()))
		return err
	}
	return nil
}

// HandleConsumerError logs a consumer loop error. Malformed messages and
// transient read failures are logged and skipped, never fatal.
func HandleConsumerError(err error) {
	if err == nil {
		return
	}
	slog.Error("[ReviewPipeline] Consumer error",
		slog.String("error", err.Error()))
}
