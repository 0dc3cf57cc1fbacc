package jumpboy

import (
	"encoding/json"
	"time"

	"github.com/vovakirdan/jumpboy/internal/clock"
	"github.com/vovakirdan/jumpboy/internal/config"
	"github.com/vovakirdan/jumpboy/internal/core"
	"github.com/vovakirdan/jumpboy/internal/sequence"
)

// Scene is one state of the game flow. Update runs one frame and returns
// either the receiver or its successor.
type Scene interface {
	Name() string
	Update(in core.InputFrame) Scene
}

// session is shared by every scene of a run. Scenes come and go; the
// session and its snapshot stay.
type session struct {
	cfg    config.JumpBoyConfig
	design *Design
	sw     *clock.Stopwatch
	snap   *Snapshot
	audio  Audio
	store  Persister
	now    func() time.Time

	// finished is the last recorded run, collected by the game once.
	finished *core.RunResult
}

// frame runs the work shared by all scenes: tick the clock, advance the
// sequence and, if it did not hand over to another scene, update the
// entities.
func (s *session) frame(seq *sequence.Sequence[Scene], in core.InputFrame, entities bool) Scene {
	s.sw.Update()
	if seq != nil {
		if next, ok := seq.Update(); ok {
			logger.Debug("scene", "next", next.Name())
			return next
		}
	}
	if entities {
		s.updateEntities(in)
	}
	return nil
}

// updateEntities moves balls before the jumper.
func (s *session) updateEntities(in core.InputFrame) {
	for _, b := range s.snap.Balls {
		b.Update(s.snap.Field, s.audio)
	}
	s.snap.Jumper.Update(s.snap.Field, in, s.audio)
}

// initialSprites rebuilds the field and jumper for the current level and
// drops every ball. Unless reset, the jumper keeps its life.
func (s *session) initialSprites(reset bool) {
	s.snap.Field = s.design.Field(s.snap.Level)
	s.snap.Balls = nil

	old := s.snap.Jumper
	s.snap.Jumper = s.design.Jumper(s.snap.Level, s.sw)
	if !reset && old != nil {
		s.snap.Jumper.SetLife(old.Life())
	}
	s.snap.Jumper.Origin = s.jumperReadyOrigin()
}

// jumperReadyOrigin is just past the right edge, standing on the ground.
func (s *session) jumperReadyOrigin() core.Vec {
	f, j := s.snap.Field, s.snap.Jumper
	return core.Vec{X: f.Right(), Y: f.Bottom() - j.Size.H}
}

// ballReadyOrigin is just past the left edge, resting on the ground.
func (s *session) ballReadyOrigin(b *Ball) core.Vec {
	f := s.snap.Field
	return core.Vec{X: f.Left() - b.Size.W, Y: f.Bottom() - b.Size.H}
}

// record appends the run to the score board and queues it for the platform.
func (s *session) record(point int) {
	s.snap.ScoreBoard.Record(Score{CreatedAt: s.now(), Level: s.snap.Level, Point: point})
	s.finished = &core.RunResult{Mode: s.snap.Level.Mode, Stage: s.snap.Level.Stage, Point: point}
	logger.Debug("score record", "level", s.snap.Level, "point", point)
}

// save persists the snapshot. Failures are logged and otherwise ignored.
func (s *session) save() {
	if s.store == nil {
		return
	}
	data, err := json.Marshal(s.snap)
	if err != nil {
		logger.Warn("snapshot encode failed", "err", err)
		return
	}
	if err := s.store.Save(data); err != nil {
		logger.Warn("snapshot save failed", "err", err)
	}
}

// load restores the score board and mode from the store, if any.
func (s *session) load() {
	if s.store == nil {
		return
	}
	data, err := s.store.Load()
	if err != nil {
		logger.Warn("snapshot load failed", "err", err)
		return
	}
	if data == nil {
		return
	}
	if err := json.Unmarshal(data, s.snap); err != nil {
		logger.Warn("snapshot decode failed", "err", err)
		return
	}
	if !s.design.Valid(s.snap.Level) {
		logger.Warn("snapshot level not configured, starting over", "level", s.snap.Level)
		s.snap.Level = s.design.FirstLevel()
	}
}

// stage carries the running score and play timer between stage scenes.
type stage struct {
	*session
	point     int
	playTimer *clock.Timer
}

// Point returns the score of the current run.
func (st *stage) Point() int { return st.point }

// slide moves a banner toward its target at a fixed speed per frame.
type slide struct {
	pos    float64
	target float64
	speed  float64
}

func (s *slide) start(from, to, speed float64) {
	s.pos, s.target, s.speed = from, to, speed
}

func (s *slide) moving() bool { return s.pos != s.target }

func (s *slide) update() {
	if !s.moving() {
		return
	}
	s.pos += core.ClampF(s.target-s.pos, -s.speed, s.speed)
}
