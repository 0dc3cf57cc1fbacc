package jumpboy

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"
)

// Score is one recorded result.
type Score struct {
	CreatedAt time.Time
	Level     Level
	Point     int
}

// ScoreBoard is an append-only list of scores.
type ScoreBoard struct {
	Scores []Score
}

// Record appends a score.
func (sb *ScoreBoard) Record(s Score) {
	sb.Scores = append(sb.Scores, s)
}

// Ranking returns the best n scores by point, newest first on ties.
func (sb *ScoreBoard) Ranking(n int) []Score {
	ranked := make([]Score, len(sb.Scores))
	copy(ranked, sb.Scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Point != ranked[j].Point {
			return ranked[i].Point > ranked[j].Point
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Snapshot is the single mutable aggregate threaded through scenes. Scenes
// may swap its field, jumper and balls; the score board lives for the whole
// session.
type Snapshot struct {
	Level      Level
	Field      *Field
	Jumper     *Jumper
	Balls      []*Ball
	ScoreBoard *ScoreBoard
}

// Persister stores the serialized snapshot.
// Load returns nil data and no error when nothing was saved yet.
type Persister interface {
	Save(data []byte) error
	Load() ([]byte, error)
}

type scoreJSON struct {
	CreatedAt float64 `json:"created_at"`
	Mode      int     `json:"level"`
	Stage     int     `json:"stage"`
	Point     int     `json:"point"`
}

type snapshotJSON struct {
	ScoreBoard []scoreJSON `json:"score_board"`
	Level      *int        `json:"level,omitempty"`
}

// MarshalJSON encodes the persisted part of the snapshot: the score board
// and the current mode.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	mode := s.Level.Mode
	out := snapshotJSON{ScoreBoard: []scoreJSON{}, Level: &mode}
	for _, sc := range s.ScoreBoard.Scores {
		out.ScoreBoard = append(out.ScoreBoard, scoreJSON{
			CreatedAt: float64(sc.CreatedAt.UnixNano()) / float64(time.Second),
			Mode:      sc.Level.Mode,
			Stage:     sc.Level.Stage,
			Point:     sc.Point,
		})
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the score board and mode. Missing keys leave the
// current values alone.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var in struct {
		ScoreBoard *[]scoreJSON `json:"score_board"`
		Level      *int         `json:"level"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("jumpboy: decode snapshot: %w", err)
	}
	if in.ScoreBoard != nil {
		scores := make([]Score, 0, len(*in.ScoreBoard))
		for _, sc := range *in.ScoreBoard {
			sec, frac := math.Modf(sc.CreatedAt)
			scores = append(scores, Score{
				CreatedAt: time.Unix(int64(sec), int64(frac*float64(time.Second))),
				Level:     Level{Mode: sc.Mode, Stage: sc.Stage},
				Point:     sc.Point,
			})
		}
		if s.ScoreBoard == nil {
			s.ScoreBoard = &ScoreBoard{}
		}
		s.ScoreBoard.Scores = scores
	}
	if in.Level != nil {
		s.Level = Level{Mode: *in.Level, Stage: s.Level.Stage}
	}
	return nil
}
