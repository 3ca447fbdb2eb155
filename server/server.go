// Package server exposes the thermal engine to the layout UI over a
// websocket: the UI sends layout snapshots, the server answers with one
// ThermalResult per section, enough to render the live compliance overlay.
package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"heatcalc/calculator"
	"heatcalc/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	engine   *calculator.Engine
}

func NewServer(addr string, upgrader websocket.Upgrader, engine *calculator.Engine) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		engine:   engine,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer conn.Close()

	hub := NewHub(s.engine)
	hub.conn = conn
	defer close(hub.msg)

	go hub.handleRequest()
	go hub.handleResponse()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.Error("read: ", err)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.Info("listening on ", s.addr)
	if err := http.ListenAndServe(s.addr, nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
