package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/san-kum/combviz/internal/i18n"
	"github.com/san-kum/combviz/internal/player"
	"github.com/san-kum/combviz/internal/trace"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 64,
	CheckOrigin: func(r *http.Request) bool {
		return true // local player; the server binds to loopback by default
	},
}

// WebSocket message types from client.
const (
	wsMsgPlay         = "play"
	wsMsgPause        = "pause"
	wsMsgStepForward  = "step_forward"
	wsMsgStepBackward = "step_backward"
	wsMsgReset        = "reset"
	wsMsgSpeed        = "speed"
	wsMsgSeek         = "seek"
)

// WebSocket message types to client.
const (
	wsMsgFrame = "frame"
	wsMsgError = "error"
)

// wsMessage is the envelope for WebSocket messages in both directions.
type wsMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// wsReset is the optional payload for "reset". An empty payload draws the
// next input from the server's preset.
type wsReset struct {
	Input []float64 `json:"input,omitempty"`
}

type wsSpeed struct {
	Speed int `json:"speed"`
}

type wsSeek struct {
	Index int `json:"index"`
}

// wsFrame is sent after every change of the player's position or state.
type wsFrame struct {
	Session string     `json:"session"`
	Index   int        `json:"index"`
	Total   int        `json:"total"`
	Playing bool       `json:"playing"`
	Speed   int        `json:"speed"`
	Step    trace.Step `json:"step"`
}

// session is one websocket connection and the Player it drives.
type session struct {
	id     string
	conn   *websocket.Conn
	player *player.Player
	log    *slog.Logger

	wmu sync.Mutex // one writer at a time

	// next is the input for the coming Reset, when the client sent one.
	nmu  sync.Mutex
	next []float64

	ctx context.Context

	// set while timed playback runs
	runCancel context.CancelFunc
	done      chan struct{}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	tag := i18n.Parse(r.URL.Query().Get("locale"))
	gen := func(in []float64) (trace.Trace, error) {
		if err := checkInputLen(len(in)); err != nil {
			return nil, err
		}
		return trace.GenerateWith(in, trace.WithAnnotator(i18n.NewAnnotator(tag)))
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxBodyBytes)

	sess := &session{id: uuid.NewString(), conn: conn}
	sess.log = s.log.With("session", sess.id)
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	sess.ctx = ctx

	cfgSource := s.cfg.Source()
	src := func() []float64 {
		sess.nmu.Lock()
		defer sess.nmu.Unlock()
		if sess.next != nil {
			in := sess.next
			sess.next = nil
			return in
		}
		return cfgSource()
	}

	p, err := player.New(gen, src, player.WithSpeed(s.cfg.Speed), player.WithLogger(sess.log))
	if err != nil {
		sess.sendError("start session: " + err.Error())
		return
	}
	sess.player = p
	defer sess.stop()

	sess.log.Info("session opened", "locale", tag.String(), "steps", p.Len())
	sess.sendFrame()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.log.Warn("websocket read", "err", err)
			}
			sess.log.Info("session closed")
			return
		}

		var msg wsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			sess.sendError("invalid message format")
			continue
		}
		sess.handle(msg)
	}
}

func (sess *session) handle(msg wsMessage) {
	p := sess.player

	switch msg.Type {
	case wsMsgPlay:
		sess.start()
	case wsMsgPause:
		sess.stop()
		p.Pause()
	case wsMsgStepForward:
		p.StepForward()
	case wsMsgStepBackward:
		p.StepBackward()
	case wsMsgReset:
		var req wsReset
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &req); err != nil {
				sess.sendError("invalid reset data")
				return
			}
		}
		sess.stop()
		if req.Input != nil {
			sess.nmu.Lock()
			sess.next = append([]float64(nil), req.Input...)
			sess.nmu.Unlock()
		}
		if err := p.Reset(); err != nil {
			sess.sendError(err.Error())
			return
		}
	case wsMsgSpeed:
		var req wsSpeed
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			sess.sendError("invalid speed data")
			return
		}
		p.SetSpeed(req.Speed)
	case wsMsgSeek:
		var req wsSeek
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			sess.sendError("invalid seek data")
			return
		}
		p.Seek(req.Index)
	default:
		sess.sendError("unknown message type: " + msg.Type)
		return
	}
	sess.sendFrame()
}

// start launches timed playback in its own goroutine. A running playback
// is stopped first so at most one timer drives the player.
func (sess *session) start() {
	sess.stop()

	ctx, cancel := context.WithCancel(sess.ctx)
	done := make(chan struct{})
	sess.runCancel, sess.done = cancel, done

	sess.player.Play()
	go func() {
		defer close(done)
		err := sess.player.Run(ctx, func(int, trace.Step) { sess.sendFrame() })
		if err == nil {
			// paused or finished on its own
			sess.sendFrame()
		}
	}()
}

// stop cancels running playback and waits for its goroutine to exit.
func (sess *session) stop() {
	if sess.done == nil {
		return
	}
	sess.runCancel()
	<-sess.done
	sess.done = nil
}

func (sess *session) sendFrame() {
	p := sess.player
	sess.send(wsMsgFrame, wsFrame{
		Session: sess.id,
		Index:   p.Index(),
		Total:   p.Len(),
		Playing: p.Playing(),
		Speed:   p.Speed(),
		Step:    p.Current(),
	})
}

func (sess *session) send(msgType string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		sess.log.Warn("ws marshal", "err", err)
		return
	}
	sess.wmu.Lock()
	defer sess.wmu.Unlock()
	if err := sess.conn.WriteJSON(wsMessage{Type: msgType, Data: raw}); err != nil {
		sess.log.Debug("ws write", "err", err)
	}
}

func (sess *session) sendError(errMsg string) {
	sess.send(wsMsgError, map[string]string{"message": errMsg})
}
