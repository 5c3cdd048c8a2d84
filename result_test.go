package readback

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/readback/renderthread"
)

// TestCopyResultValuesPinned guards the numeric contract shared with
// consumer-side pixel-copy APIs. These values must never change.
func TestCopyResultValuesPinned(t *testing.T) {
	pinned := []struct {
		result CopyResult
		value  int32
	}{
		{CopyResultSuccess, 0},
		{CopyResultUnknownError, 1},
		{CopyResultTimeout, 2},
		{CopyResultSourceEmpty, 3},
		{CopyResultSourceInvalid, 4},
		{CopyResultDestinationInvalid, 5},
	}
	for _, p := range pinned {
		if int32(p.result) != p.value {
			t.Errorf("%v = %d, want %d", p.result, int32(p.result), p.value)
		}
	}
}

func TestCopyResultString(t *testing.T) {
	tests := []struct {
		result CopyResult
		want   string
	}{
		{CopyResultSuccess, "Success"},
		{CopyResultUnknownError, "UnknownError"},
		{CopyResultTimeout, "Timeout"},
		{CopyResultSourceEmpty, "SourceEmpty"},
		{CopyResultSourceInvalid, "SourceInvalid"},
		{CopyResultDestinationInvalid, "DestinationInvalid"},
		{CopyResult(42), "CopyResult(42)"},
	}
	for _, tt := range tests {
		if got := tt.result.String(); got != tt.want {
			t.Errorf("CopyResult(%d).String() = %q, want %q", int32(tt.result), got, tt.want)
		}
	}
}

func TestResultFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want CopyResult
	}{
		{"nil", nil, CopyResultSuccess},
		{"source empty", ErrSourceEmpty, CopyResultSourceEmpty},
		{"source invalid", ErrSourceInvalid, CopyResultSourceInvalid},
		{"destination invalid", ErrDestinationInvalid, CopyResultDestinationInvalid},
		{"timeout", renderthread.ErrTimeout, CopyResultTimeout},
		{"wrapped", fmt.Errorf("outer: %w", ErrSourceEmpty), CopyResultSourceEmpty},
		{"unknown", errors.New("driver exploded"), CopyResultUnknownError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resultFromError(tt.err); got != tt.want {
				t.Errorf("resultFromError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
