package entity

// PineconeQueryRequest is the body of a Pinecone index query.
type PineconeQueryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
	Namespace       string    `json:"namespace,omitempty"`
}

type PineconeMatch struct {
	ID       string         `json:"id"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Text returns metadata.text, or "" when the match carries none.
func (m *PineconeMatch) Text() string {
	if m.Metadata == nil {
		return ""
	}
	text, _ := m.Metadata["text"].(string)
	return text
}

type PineconeQueryResponse struct {
	Matches   []PineconeMatch `json:"matches"`
	Namespace string          `json:"namespace"`
}

type PineconeVector struct {
	ID       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type PineconeUpsertRequest struct {
	Vectors   []PineconeVector `json:"vectors"`
	Namespace string           `json:"namespace,omitempty"`
}

type PineconeUpsertResponse struct {
	UpsertedCount int `json:"upsertedCount"`
}
