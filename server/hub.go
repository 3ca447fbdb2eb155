package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"heatcalc/calculator"
	"heatcalc/model"
)

// LayoutRequest is the "layout" message payload: the full section list of one
// switchboard layout. The engine's project settings apply as configured at
// startup.
type LayoutRequest struct {
	Sections []model.EnclosureSection `json:"sections"`
}

// WhatIfVentRequest is the "what_if_vent" payload: same layout, but the
// ventilation recommendation diagnostic runs against the given candidate
// opening area instead of the configured one.
type WhatIfVentRequest struct {
	Sections    []model.EnclosureSection `json:"sections"`
	VentAreaCm2 float64                  `json:"vent_area_cm2"`
}

// Hub couples one websocket peer to the engine: requests come in on msg,
// replies go out on out. One hub per connection.
type Hub struct {
	engine *calculator.Engine
	conn   *websocket.Conn

	msg chan model.Msg
	out chan model.Msg
}

func NewHub(engine *calculator.Engine) *Hub {
	return &Hub{
		engine: engine,
		msg:    make(chan model.Msg, 10),
		out:    make(chan model.Msg, 10),
	}
}

func (h *Hub) handleResponse() {
	for reply := range h.out {
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.Error("write: ", err)
			return
		}
	}
}

func (h *Hub) handleRequest() {
	defer close(h.out)
	for msg := range h.msg {
		switch msg.Type {
		case "layout":
			h.out <- h.evaluateLayout(msg.Content)
		case "what_if_vent":
			h.out <- h.whatIfVent(msg.Content)
		default:
			log.Warn("no such message type: ", msg.Type)
		}
	}
}

// evaluateLayout runs the engine over the request's sections and packs one
// ThermalResult per section into the reply.
func (h *Hub) evaluateLayout(content string) model.Msg {
	var req LayoutRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		log.Error("bad layout request: ", err)
		return model.Msg{Type: "error", Content: err.Error()}
	}

	results := h.engine.EvaluateLayout(req.Sections)
	data, err := json.Marshal(results)
	if err != nil {
		log.Error("marshal results: ", err)
		return model.Msg{Type: "error", Content: err.Error()}
	}
	return model.Msg{Type: "results", Content: string(data)}
}

// whatIfVent re-evaluates the layout with a candidate vent opening, so the UI
// can answer "would this louvre kit fix it?" without touching the project
// settings.
func (h *Hub) whatIfVent(content string) model.Msg {
	var req WhatIfVentRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		log.Error("bad what_if_vent request: ", err)
		return model.Msg{Type: "error", Content: err.Error()}
	}

	results := h.engine.WithTestVentArea(req.VentAreaCm2).EvaluateLayout(req.Sections)
	data, err := json.Marshal(results)
	if err != nil {
		log.Error("marshal results: ", err)
		return model.Msg{Type: "error", Content: err.Error()}
	}
	return model.Msg{Type: "what_if_vent_results", Content: string(data)}
}
