package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"

	"github.com/pdum/plumb/debug"
	"github.com/pdum/plumb/exprmap"
	"github.com/pdum/plumb/gomap"
	"github.com/pdum/plumb/ir"
	"github.com/pdum/plumb/path"
	"github.com/pdum/plumb/stream"
)

type Server struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{log: log}
}

// ServeStream runs the JSON-RPC loop over one transport (stdio or an
// accepted TCP connection) until the peer closes it or ctx ends.
func (s *Server) ServeStream(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, s.Handler())
	select {
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
		return ctx.Err()
	case <-conn.Done():
		return conn.Err()
	}
}

func (s *Server) Handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.log.Debug("request", zap.String("method", req.Method()))
		if debug.Service() {
			debug.Logf("rpc %s\n", req.Method())
		}
		switch req.Method() {
		case MethodGet:
			var r GetRequest
			if err := json.Unmarshal(req.Params(), &r); err != nil {
				return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
			}
			res, err := s.Get(&r)
			return reply(ctx, res, err)
		case MethodList:
			var r ListRequest
			if err := json.Unmarshal(req.Params(), &r); err != nil {
				return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
			}
			res, err := s.List(&r)
			return reply(ctx, res, err)
		case MethodTransform:
			var r TransformRequest
			if err := json.Unmarshal(req.Params(), &r); err != nil {
				return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
			}
			res, err := s.Transform(&r)
			return reply(ctx, res, err)
		case MethodGroup:
			var r GroupRequest
			if err := json.Unmarshal(req.Params(), &r); err != nil {
				return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
			}
			res, err := s.Group(&r)
			return reply(ctx, res, err)
		default:
			return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
		}
	}
}

func parseQuery(pathText string, doc json.RawMessage) (path.Expr, *ir.Node, error) {
	expr, err := path.Parse(pathText)
	if err != nil {
		return path.Expr{}, nil, err
	}
	root, err := gomap.Load(doc)
	if err != nil {
		return path.Expr{}, nil, fmt.Errorf("loading doc: %w", err)
	}
	return expr, root, nil
}

func (s *Server) Get(r *GetRequest) (*GetResponse, error) {
	expr, root, err := parseQuery(r.Path, r.Doc)
	if err != nil {
		return nil, err
	}
	m, ok := path.First(root, expr)
	if !ok {
		return &GetResponse{}, nil
	}
	d, err := gomap.DumpJSON(m.Value)
	if err != nil {
		return nil, err
	}
	return &GetResponse{Found: true, Path: m.PathString(), Value: d}, nil
}

func (s *Server) List(r *ListRequest) (*ListResponse, error) {
	expr, root, err := parseQuery(r.Path, r.Doc)
	if err != nil {
		return nil, err
	}
	res := &ListResponse{Matches: []MatchResult{}}
	for m := range path.Evaluate(root, expr) {
		d, err := gomap.DumpJSON(m.Value)
		if err != nil {
			return nil, err
		}
		res.Matches = append(res.Matches, MatchResult{
			Path:  m.PathString(),
			Value: d,
		})
	}
	return res, nil
}

func (s *Server) Transform(r *TransformRequest) (*TransformResponse, error) {
	expr, root, err := parseQuery(r.Path, r.Doc)
	if err != nil {
		return nil, err
	}
	f, err := exprmap.Mapper(r.Mapper)
	if err != nil {
		return nil, err
	}
	out, err := path.Transform(root, expr, f)
	if err != nil {
		return nil, err
	}
	d, err := gomap.DumpJSON(out)
	if err != nil {
		return nil, err
	}
	return &TransformResponse{Doc: d}, nil
}

func (s *Server) Group(r *GroupRequest) (*GroupResponse, error) {
	group, err := stream.GroupBy(r.Path)
	if err != nil {
		return nil, err
	}
	// per-record source docs are kept so buckets echo the original raw
	// records back
	byNode := make(map[*ir.Node]json.RawMessage, len(r.Records))
	records := make([]*ir.Node, len(r.Records))
	for i, raw := range r.Records {
		node, err := gomap.Load(raw)
		if err != nil {
			return nil, fmt.Errorf("loading record %d: %w", i, err)
		}
		records[i] = node
		byNode[node] = raw
	}
	g := group(stream.Of(records...))
	res := &GroupResponse{Buckets: []Bucket{}}
	for _, k := range g.Keys() {
		b := Bucket{Key: k.Value, Missing: k.Missing}
		for _, rec := range g.Bucket(k) {
			b.Records = append(b.Records, byNode[rec])
		}
		res.Buckets = append(res.Buckets, b)
	}
	return res, nil
}
