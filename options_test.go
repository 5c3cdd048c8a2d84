package readback

import (
	"testing"
	"time"
)

func TestDefaultCopyOptions(t *testing.T) {
	o := defaultCopyOptions()
	if o.timeout != DefaultCopyTimeout {
		t.Errorf("timeout = %v, want %v", o.timeout, DefaultCopyTimeout)
	}
	if o.filter != FilterNearest {
		t.Errorf("filter = %v, want FilterNearest", o.filter)
	}
}

func TestWithTimeout(t *testing.T) {
	o := defaultCopyOptions()
	WithTimeout(250 * time.Millisecond)(&o)
	if o.timeout != 250*time.Millisecond {
		t.Errorf("timeout = %v", o.timeout)
	}
}

func TestWithFilter(t *testing.T) {
	o := defaultCopyOptions()
	WithFilter(FilterBilinear)(&o)
	if o.filter != FilterBilinear {
		t.Errorf("filter = %v, want FilterBilinear", o.filter)
	}
}
