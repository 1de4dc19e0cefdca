package nodebridge

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
)

const reconnectDelay = 5 * time.Second

// notifyManager maintains the websocket subscription to the node push-event
// stream and forwards decoded events to a single channel.
type notifyManager struct {
	wsURL  string
	events chan domain.NodeEvent

	mtx    sync.Mutex
	conn   *websocket.Conn
	closed bool
}

func newNotifyManager(wsURL string) (*notifyManager, error) {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return nil, err
	}
	m := &notifyManager{
		wsURL:  wsURL,
		events: make(chan domain.NodeEvent, 32),
		conn:   conn,
	}
	go m.readLoop()
	return m, nil
}

func (m *notifyManager) GetNodeEvents() chan domain.NodeEvent {
	return m.events
}

func (m *notifyManager) readLoop() {
	defer close(m.events)

	for {
		conn := m.currentConn()
		if conn == nil {
			return
		}

		_, message, err := conn.ReadMessage()
		if err != nil {
			if m.isClosed() {
				return
			}
			log.WithError(err).Warn("node events: connection lost, reconnecting")
			if !m.reconnect() {
				return
			}
			continue
		}

		var ev event
		if err := json.Unmarshal(message, &ev); err != nil {
			log.WithError(err).Debug("node events: skipping undecodable event")
			continue
		}
		m.events <- ev.toDomain()
	}
}

func (m *notifyManager) reconnect() bool {
	for !m.isClosed() {
		time.Sleep(reconnectDelay)
		conn, _, err := websocket.DefaultDialer.Dial(m.wsURL, nil)
		if err != nil {
			log.WithError(err).Warn("node events: reconnect failed")
			continue
		}
		m.mtx.Lock()
		if m.closed {
			m.mtx.Unlock()
			conn.Close()
			return false
		}
		m.conn = conn
		m.mtx.Unlock()
		return true
	}
	return false
}

func (m *notifyManager) currentConn() *websocket.Conn {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.closed {
		return nil
	}
	return m.conn
}

func (m *notifyManager) isClosed() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.closed
}

func (m *notifyManager) close() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	if m.conn != nil {
		m.conn.Close()
	}
}
