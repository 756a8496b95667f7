package stream

import (
	"iter"

	"github.com/pdum/plumb/debug"
	"github.com/pdum/plumb/ir"
)

// Key identifies one bucket of a grouping. Records the path did not
// match are collected under the distinguished missing key rather than
// dropped.
type Key struct {
	Value   string
	Missing bool
}

func (k Key) String() string {
	if k.Missing {
		return "<missing>"
	}
	return k.Value
}

// Groups holds grouped records: first-seen key order, original record
// order within each bucket.
type Groups struct {
	keys    []Key
	buckets map[Key][]*ir.Node
}

func (g *Groups) Len() int {
	return len(g.keys)
}

// Keys returns bucket keys in first-seen order.
func (g *Groups) Keys() []Key {
	return g.keys
}

func (g *Groups) Bucket(k Key) []*ir.Node {
	return g.buckets[k]
}

func (g *Groups) add(k Key, rec *ir.Node) {
	if _, ok := g.buckets[k]; !ok {
		g.keys = append(g.keys, k)
	}
	g.buckets[k] = append(g.buckets[k], rec)
}

// GroupBy builds a reusable grouping operator: records are bucketed by
// the canonical key of the value the path extracts from each one.
func GroupBy(pathText string) (func(iter.Seq[*ir.Node]) *Groups, error) {
	proj, err := Field(pathText)
	if err != nil {
		return nil, err
	}
	return func(records iter.Seq[*ir.Node]) *Groups {
		g := &Groups{buckets: map[Key][]*ir.Node{}}
		for rec := range records {
			k := Key{Missing: true}
			if v := proj(rec); v != nil {
				k = Key{Value: v.Key()}
			}
			if debug.Group() {
				debug.Logf("group %s\n", k)
			}
			g.add(k, rec)
		}
		return g
	}, nil
}
