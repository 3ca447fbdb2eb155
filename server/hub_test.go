package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatcalc/calculator"
	"heatcalc/curve"
	"heatcalc/model"
)

func testHub() *Hub {
	engine := calculator.NewEngine(curve.NewDefaultStore(), model.ProjectSettings{
		AmbientC: 35,
		IPRating: 2,
	}, model.LouvreDefinition{}, nil)
	return NewHub(engine)
}

func TestEvaluateLayoutMessage(t *testing.T) {
	h := testHub()

	req := LayoutRequest{Sections: []model.EnclosureSection{
		{Name: "a", Rect: model.Rect{W: 600, H: 1200}, DepthMM: 400, HeatW: 200},
		{Name: "b", Rect: model.Rect{X: 600, W: 600, H: 1200}, DepthMM: 400, HeatW: 350},
	}}
	content, err := json.Marshal(req)
	require.NoError(t, err)

	reply := h.evaluateLayout(string(content))
	require.Equal(t, "results", reply.Type)

	var results []model.ThermalResult
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Tag)
	assert.Equal(t, "b", results[1].Tag)
	// the pair shares a wall, so both lose cooling surface
	assert.Less(t, results[0].AeM2, 2.496)
}

func TestEvaluateLayoutBadRequest(t *testing.T) {
	h := testHub()

	reply := h.evaluateLayout("{not json")
	assert.Equal(t, "error", reply.Type)
	assert.NotEmpty(t, reply.Content)
}

func TestWhatIfVentMessage(t *testing.T) {
	h := testHub()

	// 300 W in a sealed 0.6x1.2x0.4 m column fails but a 300 cm2 opening
	// would rescue it; with no candidate area the recommendation stays off
	sec := model.EnclosureSection{Name: "a", Rect: model.Rect{W: 600, H: 1200}, DepthMM: 400, HeatW: 300}

	run := func(ventCm2 float64) model.ThermalResult {
		content, err := json.Marshal(WhatIfVentRequest{
			Sections:    []model.EnclosureSection{sec},
			VentAreaCm2: ventCm2,
		})
		require.NoError(t, err)
		reply := h.whatIfVent(string(content))
		require.Equal(t, "what_if_vent_results", reply.Type)
		var results []model.ThermalResult
		require.NoError(t, json.Unmarshal([]byte(reply.Content), &results))
		require.Len(t, results, 1)
		return results[0]
	}

	assert.True(t, run(300).VentRecommended)
	assert.False(t, run(0).VentRecommended)
}

func TestWhatIfVentBadRequest(t *testing.T) {
	h := testHub()

	reply := h.whatIfVent("nope")
	assert.Equal(t, "error", reply.Type)
}

func TestEvaluateLayoutEmpty(t *testing.T) {
	h := testHub()

	content, err := json.Marshal(LayoutRequest{})
	require.NoError(t, err)

	reply := h.evaluateLayout(string(content))
	require.Equal(t, "results", reply.Type)

	var results []model.ThermalResult
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &results))
	assert.Empty(t, results)
}
