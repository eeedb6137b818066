package model

import "time"

// Run records one stored prediction: what was asked and what came back.
type Run struct {
	ID        string            `json:"id"`
	Request   PredictRequest    `json:"request"`
	Result    *PredictionResult `json:"result,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
