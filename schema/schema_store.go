package schema

import "time"

// HistoryRecord is a single persisted prediction, regardless of which path
// produced it. For oracle records Prompt holds the filled template and
// Result the model completion; forecast and cast records store their
// structured result as JSON in Result.
type HistoryRecord struct {
	ID        int64             `json:"id,omitempty"`
	Kind      RecordKind        `json:"kind"`
	Template  string            `json:"template,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
	Prompt    string            `json:"prompt,omitempty"`
	Result    string            `json:"result"`
	CreatedAt time.Time         `json:"created_at"`
}

// StoreStatus describes the state of the configured history backend.
type StoreStatus struct {
	Backend      DatabaseBackend    `json:"backend"`
	Location     string             `json:"location,omitempty"`
	TotalRecords int64              `json:"total_records"`
	KindCounts   map[RecordKind]int `json:"kind_counts,omitempty"`
}
