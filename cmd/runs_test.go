package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agrisense/crop-advisor/internal/dataset"
	"github.com/agrisense/crop-advisor/internal/model"
)

func TestFormatRunsList(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID: "run-1",
			Request: model.PredictRequest{
				State:    "bihar",
				District: "nalanda",
				Mode:     model.RankProfit,
			},
			Result: &model.PredictionResult{
				Recommendations: []model.Recommendation{{Rank: 1, Crop: "rice"}},
			},
			CreatedAt: created,
		},
		{
			ID:        "run-2",
			Request:   model.PredictRequest{Mode: model.RankBalanced},
			CreatedAt: created,
		},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)
	out := buf.String()

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "bihar")
	assert.Contains(t, out, "rice")
	assert.Contains(t, out, "2026-03-14 09:30")
	// missing state, district and result render as dashes
	assert.Contains(t, out, "run-2")
	assert.Contains(t, out, "-")
}

func TestFormatDatasetStatus(t *testing.T) {
	statuses := []dataset.Status{
		{Name: "yield", Path: "/data/yield.csv", Rows: 120, Crops: 18},
		{Name: "price", Path: "/data/price.csv", Error: "open /data/price.csv: no such file or directory"},
	}

	var buf bytes.Buffer
	formatDatasetStatus(&buf, statuses)
	out := buf.String()

	assert.Contains(t, out, "yield")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "no such file or directory")
}
