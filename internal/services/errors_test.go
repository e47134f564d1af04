package services

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapPreservesMarkerAndCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrMove, "moving", "rename file", "destination unwritable", cause)

	if !errors.Is(err, ErrMove) {
		t.Fatalf("expected ErrMove marker in %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause preserved in %v", err)
	}
	want := "move error: moving: rename file: destination unwritable: permission denied"
	if err.Error() != want {
		t.Fatalf("unexpected message: got %q, want %q", err.Error(), want)
	}
}

func TestWrapNilMarkerDefaults(t *testing.T) {
	err := Wrap(nil, "moving", "", "", nil)
	if !errors.Is(err, ErrMove) {
		t.Fatalf("expected default marker, got %v", err)
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := Wrap(ErrBackup, "", "", "", nil)
	if err.Error() != "backup error: stage failure" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"classifier", Wrap(ErrClassifier, "startup", "load registry", "", nil), true},
		{"backup", Wrap(ErrBackup, "backup", "copy", "", errors.New("disk full")), true},
		{"configuration", Wrap(ErrConfiguration, "startup", "", "", nil), true},
		{"move", Wrap(ErrMove, "moving", "", "", nil), false},
		{"read", Wrap(ErrRead, "triage", "", "", nil), false},
		{"rewrite", Wrap(ErrRewrite, "rewrite", "", "", nil), false},
		{"plain", fmt.Errorf("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
