package amqp

import (
	"encoding/json"
	"time"
)

// DatasetSyncMessage announces a completed results import. The worker
// fetches the rows from the database, so the message stays lightweight.
type DatasetSyncMessage struct {
	ImportID  string    `json:"import_id"`
	Rows      int       `json:"rows"`
	Timestamp time.Time `json:"timestamp"`
}

// NewDatasetSyncMessage creates a sync message for a finished import.
func NewDatasetSyncMessage(importID string, rows int) *DatasetSyncMessage {
	return &DatasetSyncMessage{
		ImportID:  importID,
		Rows:      rows,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *DatasetSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// FromJSON creates a message from JSON bytes
func DatasetSyncMessageFromJSON(data []byte) (*DatasetSyncMessage, error) {
	var msg DatasetSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
