package ws

//bertanggung jawab untuk:

// Menyimpan koneksi client form.

// Menerima notifikasi perubahan record dari controller.

// Melakukan broadcast ke seluruh client yang terhubung supaya sesi form lain
// bisa memuat ulang daftar pasien dan ketersediaan bed.

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/sanjivni/hospital-backend/internal/metrics"
)

var HubInstance = NewHub()

func init() {
	go HubInstance.Run()
}

// Client mewakili koneksi WebSocket
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mengelola semua koneksi client
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// RecordEvent adalah payload notifikasi perubahan satu record pasien.
type RecordEvent struct {
	Event     string `json:"event"`
	PatientID int    `json:"patient_id"`
}

// NotifyRecordChanged menyiarkan event perubahan record ke semua client.
func (h *Hub) NotifyRecordChanged(event string, patientID int) {
	msg, err := json.Marshal(RecordEvent{Event: event, PatientID: patientID})
	if err != nil {
		return
	}
	h.Broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
			metrics.WSClientsConnected.Inc()
			log.Debug().Int("clients", len(h.Clients)).Msg("WS client registered")
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				metrics.WSClientsConnected.Dec()
				log.Debug().Int("clients", len(h.Clients)).Msg("WS client unregistered")
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.Clients, client)
					metrics.WSClientsConnected.Dec()
				}
			}
		}
	}
}
