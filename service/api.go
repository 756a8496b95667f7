// Package service exposes the path engine over JSON-RPC: one-shot
// path queries, transforms with expr-lang mappers, and record
// grouping. Documents cross the wire as raw JSON and are materialized
// into nodes at the boundary.
package service

import "encoding/json"

const (
	MethodGet       = "path/get"
	MethodList      = "path/list"
	MethodTransform = "path/transform"
	MethodGroup     = "records/group"
)

type GetRequest struct {
	Path string          `json:"path"`
	Doc  json.RawMessage `json:"doc"`
}

type GetResponse struct {
	Found bool            `json:"found"`
	Path  string          `json:"path,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

type ListRequest struct {
	Path string          `json:"path"`
	Doc  json.RawMessage `json:"doc"`
}

type MatchResult struct {
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value"`
}

type ListResponse struct {
	Matches []MatchResult `json:"matches"`
}

type TransformRequest struct {
	Path   string          `json:"path"`
	Mapper string          `json:"mapper"`
	Doc    json.RawMessage `json:"doc"`
}

type TransformResponse struct {
	Doc json.RawMessage `json:"doc"`
}

type GroupRequest struct {
	Path    string            `json:"path"`
	Records []json.RawMessage `json:"records"`
}

type Bucket struct {
	Key     string            `json:"key,omitempty"`
	Missing bool              `json:"missing,omitempty"`
	Records []json.RawMessage `json:"records"`
}

type GroupResponse struct {
	Buckets []Bucket `json:"buckets"`
}
