package main

import (
	"encoding/json"
	"net"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// sameHostOrigin accepts requests whose Origin matches the Host header.
// Non-browser clients send no Origin and are let through.
func sameHostOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     sameHostOrigin,
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// SetupRoutes builds the HTTP mux: the static renderer bundle at /,
// live stats at /stats, and the websocket endpoint at /ws.
func SetupRoutes(hub *Hub, clientDir string, log *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", noCacheStatic(clientDir))
	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(hub.metrics.Snapshot())
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, log, w, r)
	})
	return mux
}

// noCacheStatic serves the client directory with Cache-Control: no-cache
// so a redeployed bundle is picked up on the next reload.
func noCacheStatic(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		if r.URL.Path == "/" {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		files.ServeHTTP(w, r)
	})
}

func serveWS(hub *Hub, log *zap.Logger, w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if !hub.CanAccept(ip) {
		http.Error(w, "too many connections", http.StatusServiceUnavailable)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("upgrade error", zap.Error(err))
		return
	}
	hub.TrackConnect(ip)
	client := NewClient(hub, conn, ip)
	hub.register <- client
	go client.WritePump()
	go client.ReadPump()
}
