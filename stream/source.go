// Package stream applies path projections, per-record transforms, and
// grouping to record streams.
//
// A record stream is an iter.Seq[*ir.Node]. Synchronous and
// asynchronous producers share that one abstraction: FromChannel
// adapts a channel-fed producer into a stream, and ToChannel drives a
// stream into a channel. Path evaluation for a record always runs to
// completion; cancellation is only observed between records.
package stream

import (
	"context"
	"iter"

	"github.com/pdum/plumb/ir"
	"github.com/pdum/plumb/path"
)

// Of returns a stream over the given records.
func Of(records ...*ir.Node) iter.Seq[*ir.Node] {
	return func(yield func(*ir.Node) bool) {
		for _, rec := range records {
			if !yield(rec) {
				return
			}
		}
	}
}

// FromChannel adapts a channel producer into a record stream. The
// stream ends when ch is closed or ctx is cancelled; a record already
// received is always delivered whole.
func FromChannel(ctx context.Context, ch <-chan *ir.Node) iter.Seq[*ir.Node] {
	return func(yield func(*ir.Node) bool) {
		for {
			// cancellation wins over a ready record
			select {
			case <-ctx.Done():
				return
			default:
			}
			select {
			case <-ctx.Done():
				return
			case rec, ok := <-ch:
				if !ok {
					return
				}
				if !yield(rec) {
					return
				}
			}
		}
	}
}

// ToChannel sends every record of the stream to ch, stopping early
// with ctx.Err() when ctx is cancelled. It does not close ch.
func ToChannel(ctx context.Context, records iter.Seq[*ir.Node], ch chan<- *ir.Node) error {
	for rec := range records {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ch <- rec:
		}
	}
	return ctx.Err()
}

// Where filters a stream by a predicate.
func Where(records iter.Seq[*ir.Node], pred func(*ir.Node) bool) iter.Seq[*ir.Node] {
	return func(yield func(*ir.Node) bool) {
		for rec := range records {
			if !pred(rec) {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// MapEach builds a stream operator applying the transform once per
// record. The expression is parsed once; a mapper failure surfaces on
// the record that caused it and ends the stream.
func MapEach(pathText string, f path.MapFunc) (func(iter.Seq[*ir.Node]) iter.Seq2[*ir.Node, error], error) {
	m, err := Map(pathText, f)
	if err != nil {
		return nil, err
	}
	return func(records iter.Seq[*ir.Node]) iter.Seq2[*ir.Node, error] {
		return func(yield func(*ir.Node, error) bool) {
			for rec := range records {
				out, err := m(rec)
				if !yield(out, err) || err != nil {
					return
				}
			}
		}
	}, nil
}
