package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{Usagef("bad flag"), ExitUser},
		{Validationf("out of range"), ExitUser},
		{Resolutionf("not found"), ExitUser},
		{Networkf(errors.New("refused"), "request failed"), ExitService},
		{Upstreamf("status 500"), ExitService},
		{errors.New("plain"), ExitUser},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestExitCodeWrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", Upstreamf("status 429"))
	if ExitCode(err) != ExitService {
		t.Errorf("wrapped upstream error must still exit %d", ExitService)
	}
	if !IsKind(err, KindUpstream) {
		t.Error("IsKind must see through wrapping")
	}
}

func TestValidationBatch(t *testing.T) {
	err := Validation([]string{"first problem", "second problem"})
	want := "first problem\nsecond problem"
	if err.Error() != want {
		t.Errorf("batched message = %q, want %q", err.Error(), want)
	}
	if !IsKind(err, KindValidation) {
		t.Error("kind lost in batching")
	}
}

func TestNetworkfCarriesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Networkf(cause, "request failed")
	if err.Error() != "request failed: connection refused" {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause must survive unwrapping")
	}
}
