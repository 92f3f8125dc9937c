package gemini

import (
	"fmt"
	"log/slog"
	"sync"
)

// ClientSelector manages round-robin selection and failover across multiple
// Gemini clients backed by different API keys.
type ClientSelector struct {
	clients      []*Client
	currentIndex int
	mutex        sync.Mutex
}

func NewClientSelector(clients []*Client) *ClientSelector {
	return &ClientSelector{clients: clients}
}

// NextClient returns the next client in round-robin order.
func (s *ClientSelector) NextClient() (*Client, int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.clients) == 0 {
		return nil, -1
	}

	client := s.clients[s.currentIndex]
	index := s.currentIndex
	s.currentIndex = (s.currentIndex + 1) % len(s.clients)

	return client, index
}

func (s *ClientSelector) ClientCount() int {
	return len(s.clients)
}

// TryAllClients attempts the operation with each client until one succeeds.
func (s *ClientSelector) TryAllClients(operation func(*Client, int) error) error {
	clientCount := s.ClientCount()
	if clientCount == 0 {
		return fmt.Errorf("no Gemini clients available")
	}

	var lastErr error
	for attempt := 0; attempt < clientCount; attempt++ {
		client, clientIdx := s.NextClient()

		err := operation(client, clientIdx)
		if err == nil {
			return nil
		}

		lastErr = err
		slog.Warn("Gemini request failed, trying next client",
			"client_index", clientIdx,
			"attempt", attempt+1,
			"error", err)
	}

	slog.Error("All Gemini clients exhausted", "total_attempts", clientCount)
	return fmt.Errorf("all %d Gemini clients failed, last error: %w", clientCount, lastErr)
}
