package service

import (
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
)

var adaDoc = json.RawMessage(`{"user": {"name": "Ada", "scores": [10, 15]}}`)

func TestGet(t *testing.T) {
	s := New(nil)
	res, err := s.Get(&GetRequest{Path: "user.name", Doc: adaDoc})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, "user.name", res.Path)
	require.JSONEq(t, `"Ada"`, string(res.Value))

	res, err = s.Get(&GetRequest{Path: "user.nope", Doc: adaDoc})
	require.NoError(t, err)
	require.False(t, res.Found)

	_, err = s.Get(&GetRequest{Path: "user[", Doc: adaDoc})
	require.Error(t, err)
}

func TestList(t *testing.T) {
	s := New(nil)
	res, err := s.List(&ListRequest{Path: "user.scores[*]", Doc: adaDoc})
	require.NoError(t, err)
	require.Len(t, res.Matches, 2)
	require.Equal(t, "user.scores[0]", res.Matches[0].Path)
	require.JSONEq(t, `10`, string(res.Matches[0].Value))
	require.Equal(t, "user.scores[1]", res.Matches[1].Path)
	require.JSONEq(t, `15`, string(res.Matches[1].Value))
}

func TestTransform(t *testing.T) {
	s := New(nil)
	res, err := s.Transform(&TransformRequest{
		Path:   "user.scores[*]",
		Mapper: "value * 1.5",
		Doc:    adaDoc,
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"user": {"name": "Ada", "scores": [15.0, 22.5]}}`, string(res.Doc))
}

func TestGroup(t *testing.T) {
	s := New(nil)
	res, err := s.Group(&GroupRequest{
		Path: "user.id",
		Records: []json.RawMessage{
			json.RawMessage(`{"user":{"id":1},"n":"a"}`),
			json.RawMessage(`{"user":{"id":2},"n":"b"}`),
			json.RawMessage(`{"user":{"id":1},"n":"c"}`),
			json.RawMessage(`{"n":"d"}`),
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Buckets, 3)
	require.Equal(t, "1", res.Buckets[0].Key)
	require.Len(t, res.Buckets[0].Records, 2)
	require.JSONEq(t, `{"user":{"id":1},"n":"a"}`, string(res.Buckets[0].Records[0]))
	require.JSONEq(t, `{"user":{"id":1},"n":"c"}`, string(res.Buckets[0].Records[1]))
	require.Equal(t, "2", res.Buckets[1].Key)
	require.True(t, res.Buckets[2].Missing)
	require.Len(t, res.Buckets[2].Records, 1)
}

func TestServeStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverSide, clientSide := net.Pipe()
	s := New(nil)
	go s.ServeStream(ctx, serverSide)

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(clientSide))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	defer conn.Close()

	var res GetResponse
	_, err := conn.Call(ctx, MethodGet, &GetRequest{Path: "user.name", Doc: adaDoc}, &res)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.JSONEq(t, `"Ada"`, string(res.Value))

	_, err = conn.Call(ctx, "bogus/method", &GetRequest{}, nil)
	require.Error(t, err)
}
