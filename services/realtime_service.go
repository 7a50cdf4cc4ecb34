package services

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"
	"github.com/redis/go-redis/v9"
)

const (
	EventNewNotification = "newNotification"
	EventAuthenticate    = "authenticate"
	EventAuthenticated   = "authenticated"
	EventUnauthorized    = "unauthorized"
)

// Pusher delivers realtime events to signed-in users.
type Pusher interface {
	PushToUser(userID uuid.UUID, event string, payload interface{}) bool
}

// UserRoom is the socket.io room every connection of a user joins.
func UserRoom(userID uuid.UUID) string {
	return "user:" + userID.String()
}

// SocketHub wraps the socket.io server used for notification delivery.
type SocketHub struct {
	server *socketio.Server
}

// NewSocketHub builds the server. Connections authenticate by emitting
// `authenticate` with their JWT, or by passing ?token= when connecting.
func NewSocketHub(allowedOrigins []string) *SocketHub {
	checkOrigin := func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	server := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&polling.Transport{Client: polling.Default.Client, CheckOrigin: checkOrigin},
			&websocket.Transport{CheckOrigin: checkOrigin},
		},
	})
	hub := &SocketHub{server: server}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		if token := HandshakeToken(s.URL()); token != "" {
			hub.authenticate(s, token)
		}
		return nil
	})

	server.OnEvent("/", EventAuthenticate, func(s socketio.Conn, token string) {
		hub.authenticate(s, token)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Printf("[socket] error: %v", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		if userID, ok := s.Context().(string); ok && userID != "" {
			log.Printf("[socket] user %s disconnected: %s", userID, reason)
		}
	})

	return hub
}

// HandshakeToken reads the optional ?token= query of the socket.io handshake URL.
func HandshakeToken(u url.URL) string {
	q := u.Query()
	return strings.TrimSpace(strings.TrimPrefix(q.Get("token"), "Bearer "))
}

func (h *SocketHub) authenticate(s socketio.Conn, token string) {
	claims, err := VerifyStaffJWT(strings.TrimPrefix(token, "Bearer "))
	if err != nil {
		s.Emit(EventUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	userID, err := uuid.Parse(claims.StaffID)
	if err != nil {
		s.Emit(EventUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	s.SetContext(userID.String())
	s.Join(UserRoom(userID))
	s.Emit(EventAuthenticated, map[string]string{"user_id": userID.String()})
	log.Printf("[socket] user %s authenticated on %s", userID, s.ID())
}

// UseRedis fans broadcasts out through redis so every instance reaches its own sockets.
func (h *SocketHub) UseRedis(redisURL string) error {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return err
	}
	_, err = h.server.Adapter(&socketio.RedisAdapterOptions{
		Addr:     opt.Addr,
		Network:  opt.Network,
		Password: opt.Password,
		DB:       opt.DB,
		Prefix:   "best-wishes-socket",
	})
	return err
}

func (h *SocketHub) Handler() http.Handler {
	return h.server
}

// Serve runs the socket.io event loop; call it in a goroutine.
func (h *SocketHub) Serve() {
	if err := h.server.Serve(); err != nil {
		log.Printf("[socket] serve stopped: %v", err)
	}
}

func (h *SocketHub) Close() error {
	return h.server.Close()
}

func (h *SocketHub) PushToUser(userID uuid.UUID, event string, payload interface{}) bool {
	return h.server.BroadcastToRoom("/", UserRoom(userID), event, payload)
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var (
	pusherMu sync.RWMutex
	pusher   Pusher
)

func SetPusher(p Pusher) {
	pusherMu.Lock()
	defer pusherMu.Unlock()
	pusher = p
}

func GetPusher() Pusher {
	pusherMu.RLock()
	defer pusherMu.RUnlock()
	return pusher
}
