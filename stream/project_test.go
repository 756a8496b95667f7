package stream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdum/plumb/ir"
)

func adaRoot() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "user", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "name", Val: ir.FromString("Ada")},
			{Key: "scores", Val: ir.FromSlice([]*ir.Node{
				ir.FromInt(10), ir.FromInt(15),
			})},
		})},
	})
}

func TestField(t *testing.T) {
	proj, err := Field("user.name")
	require.NoError(t, err)

	root := adaRoot()
	got := proj(root)
	require.NotNil(t, got)
	require.Equal(t, "Ada", got.String)
	// the projection is the record's own subtree
	require.Same(t, ir.Get(ir.Get(root, "user"), "name"), got)

	require.Nil(t, proj(ir.Null()))
}

func TestFieldTakesFirst(t *testing.T) {
	proj, err := Field("user.scores[*]")
	require.NoError(t, err)

	got := proj(adaRoot())
	require.NotNil(t, got)
	require.True(t, ir.Equal(ir.FromInt(10), got))
}

func TestMap(t *testing.T) {
	double, err := Map("user.scores[*]", func(y *ir.Node) (*ir.Node, error) {
		return ir.FromInt(*y.Int64 * 2), nil
	})
	require.NoError(t, err)

	root := adaRoot()
	out, err := double(root)
	require.NoError(t, err)
	scores := ir.Get(ir.Get(out, "user"), "scores")
	require.True(t, ir.Equal(ir.FromSlice([]*ir.Node{
		ir.FromInt(20), ir.FromInt(30),
	}), scores))
	// untouched sibling is shared with the input record
	require.Same(t, ir.Get(ir.Get(root, "user"), "name"),
		ir.Get(ir.Get(out, "user"), "name"))

	// a record the path does not match is returned as-is
	other := ir.Null()
	out, err = double(other)
	require.NoError(t, err)
	require.Same(t, other, out)
}

func TestFieldOne(t *testing.T) {
	one, err := FieldOne("user.scores[*]")
	require.NoError(t, err)

	_, err = one(adaRoot())
	require.ErrorIs(t, err, ErrAmbiguous)

	one, err = FieldOne("user.name")
	require.NoError(t, err)
	got, err := one(adaRoot())
	require.NoError(t, err)
	require.Equal(t, "Ada", got.String)

	got, err = one(ir.Null())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestFieldBadPath(t *testing.T) {
	_, err := Field("")
	require.Error(t, err)
}
