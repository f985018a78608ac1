package perception

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"git.lost.host/meutraa/sabre/internal/game"
	"github.com/gorilla/websocket"
)

// staleAfter is how long a palm may go unreported before the hand is
// considered absent for the tick.
const staleAfter = 150 * time.Millisecond

var upgrader = websocket.Upgrader{
	// The tracker sidecar runs on the same machine
	CheckOrigin: func(r *http.Request) bool { return true },
}

// palmUpdate is one message from the hand-tracking sidecar, palm
// positions in metres in the play space.
type palmUpdate struct {
	Hand string  `json:"hand"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

type palmState struct {
	position game.Vec3
	velocity game.Vec3
	at       time.Time
	seen     bool
}

func (p *palmState) update(position game.Vec3, at time.Time) {
	if p.seen {
		dt := at.Sub(p.at).Seconds()
		// A repeated timestamp must not blow up the velocity, keep the
		// previous estimate instead
		if dt > 0 {
			p.velocity = position.Sub(p.position).Scale(1 / dt)
		}
	}
	p.position = position
	p.at = at
	p.seen = true
}

func (p *palmState) frame(now time.Time) game.HandFrame {
	if !p.seen || now.Sub(p.at) > staleAfter {
		return game.HandFrame{}
	}
	return game.HandFrame{Position: p.position, Velocity: p.velocity, Present: true}
}

// DefaultTracker accepts palm updates from an external hand-tracking
// process over a websocket and exposes the latest pair, sampled once per
// tick. The simulation never blocks on the socket.
type DefaultTracker struct {
	mu    sync.Mutex
	left  palmState
	right palmState
}

// Listen serves the tracker endpoint until the listener fails.
func (t *DefaultTracker) Listen(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/hands", t.handle)
	log.Println("tracker listening on", addr)
	return http.ListenAndServe(addr, mux)
}

func (t *DefaultTracker) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if nil != err {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(1 << 16)
	for {
		_, msg, err := conn.ReadMessage()
		if nil != err {
			log.Println("tracker read:", err)
			return
		}
		var update palmUpdate
		if err := json.Unmarshal(msg, &update); nil != err {
			log.Println("tracker decode:", err)
			continue
		}
		t.apply(&update, time.Now())
	}
}

func (t *DefaultTracker) apply(update *palmUpdate, at time.Time) {
	position := game.Vec3{X: update.X, Y: update.Y, Z: update.Z}
	t.mu.Lock()
	switch update.Hand {
	case "left":
		t.left.update(position, at)
	case "right":
		t.right.update(position, at)
	}
	t.mu.Unlock()
}

func (t *DefaultTracker) Ready() bool {
	now := time.Now()
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.left.frame(now).Present || t.right.frame(now).Present
}

func (t *DefaultTracker) Sample() game.Hands {
	now := time.Now()
	t.mu.Lock()
	defer t.mu.Unlock()
	return game.Hands{
		Left:  t.left.frame(now),
		Right: t.right.frame(now),
	}
}
