package gdrive_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	gdrive "github.com/UrayMR/googledrive-ext"
	"github.com/UrayMR/googledrive-ext/memstore"
)

func TestErrVars_IsAndMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrNotFound", gdrive.ErrNotFound, "not found"},
		{"ErrUnsupported", gdrive.ErrUnsupported, "unsupported operation"},
		{"ErrInvalidInput", gdrive.ErrInvalidInput, "invalid input"},
		{"ErrNotReadable", gdrive.ErrNotReadable, "not readable"},
		{"ErrDriveError", gdrive.ErrDriveError, "drive error"},
		{"ErrIOError", gdrive.ErrIOError, "io error"},
	}

	for _, c := range cases {
		t.Run(c.name+"/IsWrapped", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			if !errors.Is(wrapped, c.err) {
				t.Fatalf("errors.Is(wrapped, %s) = false, want true", c.name)
			}
		})

		t.Run(c.name+"/Message", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			if !strings.Contains(wrapped.Error(), c.msg) {
				t.Fatalf("%s.Error() = %q does not contain %q", c.name, wrapped.Error(), c.msg)
			}
		})
	}
}

// Operation failures must name the operation and the path while keeping the
// cause reachable through errors.Is.
func TestOperationErrorsCarryOpAndPath(t *testing.T) {
	adapter := gdrive.New(memstore.New(), gdrive.WithRootFolder(memstore.RootID))

	_, err := adapter.Read(context.Background(), "a/missing.txt")
	if err == nil {
		t.Fatal("Read of a missing path succeeded")
	}
	if !errors.Is(err, gdrive.ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = false: %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "read") {
		t.Errorf("error %q does not name the operation", msg)
	}
	if !strings.Contains(msg, "a/missing.txt") {
		t.Errorf("error %q does not name the path", msg)
	}
}

func TestMoveErrorNamesBothPaths(t *testing.T) {
	adapter := gdrive.New(memstore.New(), gdrive.WithRootFolder(memstore.RootID))

	err := adapter.Move(context.Background(), "src.txt", "dst.txt")
	if err == nil {
		t.Fatal("Move of a missing source succeeded")
	}
	msg := err.Error()
	if !strings.Contains(msg, "src.txt") || !strings.Contains(msg, "dst.txt") {
		t.Errorf("error %q does not name both paths", msg)
	}
}
