package stream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdum/plumb/ir"
)

func user(id int64) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "user", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "id", Val: ir.FromInt(id)},
		})},
	})
}

func TestGroupBy(t *testing.T) {
	group, err := GroupBy("user.id")
	require.NoError(t, err)

	r1, r2, r3 := user(1), user(2), user(1)
	g := group(Of(r1, r2, r3))

	require.Equal(t, []Key{{Value: "1"}, {Value: "2"}}, g.Keys())
	require.Equal(t, []*ir.Node{r1, r3}, g.Bucket(Key{Value: "1"}))
	require.Equal(t, []*ir.Node{r2}, g.Bucket(Key{Value: "2"}))
	require.Equal(t, 2, g.Len())
}

func TestGroupByMissing(t *testing.T) {
	group, err := GroupBy("user.id")
	require.NoError(t, err)

	anon := ir.FromKeyVals([]ir.KeyVal{{Key: "name", Val: ir.FromString("n.n.")}})
	r1 := user(7)
	g := group(Of(anon, r1, anon))

	require.Equal(t, []Key{{Missing: true}, {Value: "7"}}, g.Keys())
	require.Equal(t, []*ir.Node{anon, anon}, g.Bucket(Key{Missing: true}))
	require.Equal(t, "<missing>", Key{Missing: true}.String())
}

func TestGroupByKeyKinds(t *testing.T) {
	group, err := GroupBy("k")
	require.NoError(t, err)

	rec := func(k *ir.Node) *ir.Node {
		return ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: k}})
	}
	g := group(Of(
		rec(ir.FromBool(true)),
		rec(ir.Null()),
		rec(ir.FromFloat(2.5)),
		rec(ir.FromString("x")),
	))
	require.Equal(t, []Key{
		{Value: "true"},
		{Value: "null"},
		{Value: "2.5"},
		{Value: "x"},
	}, g.Keys())
}

func TestGroupByBadPath(t *testing.T) {
	_, err := GroupBy("a[")
	require.Error(t, err)
}
