// Package snapshot records what the track painter draws for every tile of a
// style and compares recordings against a golden YAML file.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/ride/multidim"
	"coasterpaint/internal/threading/core"
	"coasterpaint/internal/track"
)

var ErrMismatch = errors.New("snapshot mismatch")

// Case is one painted tile: the piece, its placement flags and every call
// the painter made for it.
type Case struct {
	Piece       string          `yaml:"piece"`
	Sequence    uint8           `yaml:"sequence"`
	Direction   paint.Direction `yaml:"direction"`
	Inverted    bool            `yaml:"inverted,omitempty"`
	Chain       bool            `yaml:"chain,omitempty"`
	BrakeClosed bool            `yaml:"brake_closed,omitempty"`
	TakingPhoto bool            `yaml:"taking_photo,omitempty"`
	Calls       []paint.Call    `yaml:"calls"`
}

// Key identifies a case independently of what was drawn.
func (c *Case) Key() string {
	key := fmt.Sprintf("%s/%d/%d", c.Piece, c.Sequence, c.Direction)
	if c.Inverted {
		key += "/inverted"
	}
	if c.Chain {
		key += "/chain"
	}
	if c.BrakeClosed {
		key += "/closed"
	}
	if c.TakingPhoto {
		key += "/photo"
	}
	return key
}

// Element builds the track element the case is painted from.
func (c *Case) Element() (*track.Element, error) {
	t, ok := track.ParseElemType(c.Piece)
	if !ok {
		return nil, fmt.Errorf("unknown piece %q", c.Piece)
	}
	el := track.NewElement(t)
	el.SetSequenceIndex(c.Sequence)
	el.SetInverted(c.Inverted)
	el.SetHasChain(c.Chain)
	el.SetBlockBrakeClosed(c.BrakeClosed)
	el.SetTakingPhoto(c.TakingPhoto)
	return el, nil
}

// File is a complete recording of one style.
type File struct {
	Style    string         `yaml:"style"`
	Height   int32          `yaml:"height"`
	Position paint.CoordsXY `yaml:"position,flow"`
	Cases    []Case         `yaml:"cases"`
}

// Options controls where the tiles are painted and how many workers paint
// them.
type Options struct {
	Workers  int
	Height   int32
	Position paint.CoordsXY
}

// Variants lists the flag combinations that draw a piece differently.
func Variants(reg *track.StyleRegistry, t track.ElemType) []Case {
	variants := []Case{{}}
	if reg.HasChainVariant(t) {
		variants = append(variants, Case{Chain: true})
	}
	if reg.IsInvertible(t) {
		variants = append(variants, Case{Inverted: true})
	}
	if t == track.EndStation || t == track.BlockBrakes {
		variants = append(variants, Case{BrakeClosed: true})
	}
	if t == track.OnRidePhoto {
		variants = append(variants, Case{TakingPhoto: true})
	}
	return variants
}

// Cases lists every (piece, sequence, direction, flags) tuple of a style in
// registry order, without calls.
func Cases(reg *track.StyleRegistry) []Case {
	var cases []Case
	for _, t := range reg.Pieces() {
		variants := Variants(reg, t)
		for seq := uint8(0); seq < track.SequenceCount(t); seq++ {
			for dir := paint.Direction(0); dir < paint.NumOrthogonalDirections; dir++ {
				for _, v := range variants {
					v.Piece, v.Sequence, v.Direction = t.String(), seq, dir
					cases = append(cases, v)
				}
			}
		}
	}
	return cases
}

// Generate paints every case of the style, one session per case, spread
// over a worker pool. The cases keep registry order.
func Generate(ctx context.Context, reg *track.StyleRegistry, r *ride.Ride, opts Options) (*File, error) {
	cases := Cases(reg)

	pool := core.NewWorkerPool(opts.Workers)
	pool.Start()
	defer pool.Stop()

	calls := core.NewSafeCounter()
	var (
		errMu    sync.Mutex
		firstErr error
	)
	pool.ParallelForWithContext(ctx, 0, len(cases), func(i int) {
		c := &cases[i]
		s := paint.NewSession(opts.Position)
		r.ApplyColours(s)
		err := paintCase(s, r, c, opts.Height)
		if err != nil {
			errMu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", c.Key(), err)
			}
			errMu.Unlock()
			return
		}
		c.Calls = s.Calls
		calls.Add(int64(len(s.Calls)))
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	log.Printf("snapshot: painted %d tiles of %s with %d calls", len(cases), reg.Key(), calls.Get())
	return &File{
		Style:    reg.Key(),
		Height:   opts.Height,
		Position: opts.Position,
		Cases:    cases,
	}, nil
}

func paintCase(s *paint.Session, r *ride.Ride, c *Case, height int32) error {
	el, err := c.Element()
	if err != nil {
		return err
	}
	return multidim.Paint(s, r, el, c.Sequence, c.Direction, height)
}
