package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"heatcalc/calculator"
	"heatcalc/curve"
	"heatcalc/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	configPath := flag.String("config", "conf/config.ini", "path to config file")
	flag.Parse()

	cfg, err := calculator.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	store := curve.NewDefaultStore()
	if cfg.CurveDataDir != "" {
		store, err = curve.LoadStoreDir(cfg.CurveDataDir)
		if err != nil {
			log.Fatal(err)
		}
		log.Info("digitized curves loaded from ", cfg.CurveDataDir)
	}

	engine := calculator.NewEngine(store, cfg.Project, cfg.Louvre, log.StandardLogger())

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(cfg.ServerAddr, upgrader, engine)
	s.Serve()
}
