package output

import (
	"errors"
	"maps"
)

// messager matches zerr errors, which report their own message without the chain.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// ErrorChain flattens err into one entry per message.
// Joined errors contribute every branch in order. Metadata attached to a
// wrapper without a message moves to the next entry.
func ErrorChain(err error) []ErrorEntry {
	var (
		entries []ErrorEntry
		pending map[string]any
	)

	var walk func(error)
	walk = func(err error) {
		for err != nil {
			switch e := err.(type) {
			case messager:
				var md map[string]any
				if m, ok := err.(metadataer); ok {
					md = m.Metadata()
				}
				if e.Message() == "" {
					pending = mergeMetadata(pending, md)
				} else {
					entries = append(entries, ErrorEntry{Message: e.Message(), Metadata: mergeMetadata(pending, md)})
					pending = nil
				}
				err = errors.Unwrap(err)
			case interface{ Unwrap() []error }:
				for _, child := range e.Unwrap() {
					walk(child)
				}
				return
			default:
				entries = append(entries, ErrorEntry{Message: err.Error(), Metadata: pending})
				pending = nil
				return
			}
		}
	}
	walk(err)

	return entries
}

func mergeMetadata(pending, md map[string]any) map[string]any {
	if len(pending) == 0 {
		return md
	}
	out := maps.Clone(pending)
	maps.Copy(out, md)
	return out
}
