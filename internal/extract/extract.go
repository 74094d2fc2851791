// Package extract mines structured action requests out of free-form model
// output.
//
// The model is asked to answer with a short sentence followed by one or more
// JSON objects. Real output is noisier than that: reasoning blocks, several
// objects glued together, prose between them, alternative encodings. The
// Scanner tolerates all of these; nothing in it is fatal.
package extract

import (
	"encoding/json"
	"log/slog"
	"strings"
)

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// Request is an action request as written by the model. It has not been
// validated; Kind may name an action that does not exist.
type Request struct {
	Kind string         `json:"action"`
	Args map[string]any `json:"args"`

	// Raw is the JSON span the request was decoded from.
	Raw string `json:"-"`
}

// Extractor splits model output into narrative text and action requests.
type Extractor interface {
	Extract(raw string) (narrative string, requests []Request)
}

// Scanner is the default Extractor. It scans for brace-balanced JSON objects.
type Scanner struct{}

// New returns a Scanner.
func New() *Scanner { return &Scanner{} }

// Extract implements Extractor.
func (s *Scanner) Extract(raw string) (string, []Request) {
	text := StripThinking(raw)

	spans := Spans(text)
	requests := make([]Request, 0, len(spans))

	var narrative strings.Builder
	prev := 0
	for _, sp := range spans {
		narrative.WriteString(text[prev:sp.Start])
		prev = sp.End

		candidate := text[sp.Start:sp.End]
		req, ok := decode(candidate)
		if !ok {
			continue
		}
		requests = append(requests, req)
	}
	narrative.WriteString(text[prev:])

	return strings.TrimSpace(narrative.String()), requests
}

// StripThinking removes the first <think>...</think> block, delimiters
// included. An unterminated block is left as-is.
func StripThinking(s string) string {
	start := strings.Index(s, thinkOpen)
	if start < 0 {
		return s
	}
	end := strings.Index(s[start+len(thinkOpen):], thinkClose)
	if end < 0 {
		return s
	}
	end += start + len(thinkOpen) + len(thinkClose)
	return s[:start] + s[end:]
}

// Span is a half-open byte range [Start, End) of a balanced brace object.
type Span struct {
	Start, End int
}

// Spans returns every top-level brace-balanced span in s, left to right.
// Braces inside JSON string literals are ignored. A '{' that never balances
// is skipped and scanning resumes at the next byte.
func Spans(s string) []Span {
	var spans []Span
	for i := 0; i < len(s); {
		if s[i] != '{' {
			i++
			continue
		}
		end := matchBrace(s, i)
		if end < 0 {
			i++
			continue
		}
		spans = append(spans, Span{Start: i, End: end})
		i = end
	}
	return spans
}

// matchBrace returns the index just past the brace closing the one at start,
// or -1 if it never closes.
func matchBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// decode parses one candidate and canonicalizes the encodings the model is
// known to produce:
//
//	{"function": "seek", "args": {"position_ms": 1000}}
//	{"function": "seek", "params": {"position_ms": 1000}}
//	{"name": "seek", "position_ms": 1000}
func decode(candidate string) (Request, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		slog.Debug("dropping unparseable action candidate", "error", err, "candidate", truncate(candidate, 200))
		return Request{}, false
	}

	if fn, ok := obj["function"].(string); ok {
		req := Request{Kind: strings.TrimSpace(fn), Raw: candidate}
		switch {
		case obj["args"] != nil:
			req.Args = asObject(obj["args"])
		case obj["params"] != nil:
			req.Args = asObject(obj["params"])
		}
		if req.Args == nil {
			req.Args = map[string]any{}
		}
		return req, true
	}

	if name, ok := obj["name"].(string); ok {
		fields := make(map[string]any, len(obj))
		for k, v := range obj {
			if k != "name" {
				fields[k] = v
			}
		}
		return Request{Kind: strings.TrimSpace(name), Args: fields, Raw: candidate}, true
	}

	slog.Debug("dropping JSON object without function or name", "candidate", truncate(candidate, 200))
	return Request{}, false
}

func asObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
