package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/config"
	"github.com/prithu-10/criminal-dbms-project/pkg/logger"
)

// ErrSessionNotFound is returned for expired or unknown session ids.
var ErrSessionNotFound = errors.New("session not found")

// Flash is a one-shot notification drained into the next rendered view.
type Flash struct {
	Level   string `json:"level"` // "success", "error", "warning", "info"
	Message string `json:"message"`
}

// SessionData is everything stored server-side for one client session.
// OfficerID zero means the session exists but nobody is logged in yet.
type SessionData struct {
	OfficerID   uint    `json:"officer_id,omitempty"`
	Username    string  `json:"username,omitempty"`
	OfficerName string  `json:"officer_name,omitempty"`
	Flashes     []Flash `json:"flashes,omitempty"`
}

// InterfaceSessionService defines the session store interface
type InterfaceSessionService interface {
	Create(ctx context.Context, data *SessionData) (string, error)
	Get(ctx context.Context, sessionID string) (*SessionData, error)
	Save(ctx context.Context, sessionID string, data *SessionData) error
	Destroy(ctx context.Context, sessionID string) error
	AddFlash(ctx context.Context, sessionID, level, message string) error
	PopFlashes(ctx context.Context, sessionID string) ([]Flash, error)
	Ping(ctx context.Context) error
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// SessionService keeps sessions in Redis under session:<uuid> with a TTL.
// When Redis is unreachable at startup it degrades to an in-process map so
// the login flow keeps working on a single instance.
type SessionService struct {
	Client *redis.Client
	TTL    time.Duration

	mu     sync.RWMutex
	memory map[string]memoryEntry
}

// NewSessionService creates a session service over the given Redis client.
// A nil client selects the in-memory fallback.
func NewSessionService(cfg *config.Config, client *redis.Client) InterfaceSessionService {
	s := &SessionService{
		Client: client,
		TTL:    time.Duration(cfg.SessionTTLHours) * time.Hour,
	}
	if client == nil {
		logger.Warning("redis unavailable, sessions held in process memory")
		s.memory = make(map[string]memoryEntry)
	}
	return s
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Create stores a new session and returns its id.
func (s *SessionService) Create(ctx context.Context, data *SessionData) (string, error) {
	sessionID := uuid.NewString()
	if data == nil {
		data = &SessionData{}
	}
	if err := s.Save(ctx, sessionID, data); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Get loads a session by id.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*SessionData, error) {
	var raw []byte

	if s.Client != nil {
		val, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		if err != nil {
			return nil, err
		}
		raw = []byte(val)
	} else {
		s.mu.RLock()
		entry, ok := s.memory[sessionID]
		s.mu.RUnlock()
		if !ok || time.Now().After(entry.expiresAt) {
			return nil, ErrSessionNotFound
		}
		raw = entry.data
	}

	var data SessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Save writes a session back, refreshing its TTL.
func (s *SessionService) Save(ctx context.Context, sessionID string, data *SessionData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if s.Client != nil {
		return s.Client.Set(ctx, sessionKey(sessionID), raw, s.TTL).Err()
	}

	s.mu.Lock()
	s.memory[sessionID] = memoryEntry{data: raw, expiresAt: time.Now().Add(s.TTL)}
	s.mu.Unlock()
	return nil
}

// Destroy removes a session entirely.
func (s *SessionService) Destroy(ctx context.Context, sessionID string) error {
	if s.Client != nil {
		return s.Client.Del(ctx, sessionKey(sessionID)).Err()
	}

	s.mu.Lock()
	delete(s.memory, sessionID)
	s.mu.Unlock()
	return nil
}

// AddFlash queues a one-shot notification on the session.
func (s *SessionService) AddFlash(ctx context.Context, sessionID, level, message string) error {
	data, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	data.Flashes = append(data.Flashes, Flash{Level: level, Message: message})
	return s.Save(ctx, sessionID, data)
}

// PopFlashes drains and returns the pending notifications.
func (s *SessionService) PopFlashes(ctx context.Context, sessionID string) ([]Flash, error) {
	data, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	flashes := data.Flashes
	if len(flashes) == 0 {
		return nil, nil
	}
	data.Flashes = nil
	if err := s.Save(ctx, sessionID, data); err != nil {
		return nil, err
	}
	return flashes, nil
}

// Ping reports session-store reachability for the health endpoint.
func (s *SessionService) Ping(ctx context.Context) error {
	if s.Client != nil {
		return s.Client.Ping(ctx).Err()
	}
	return nil
}
