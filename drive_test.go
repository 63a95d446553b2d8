package gdrive

import (
	"errors"
	"testing"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

func TestEscapeQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"it's", `it\'s`},
		{`back\slash`, `back\\slash`},
		{`both\'`, `both\\\'`},
	}
	for _, c := range cases {
		if got := escapeQuery(c.in); got != c.want {
			t.Errorf("escapeQuery(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewObject(t *testing.T) {
	f := &drive.File{
		Id:           "id-1",
		Name:         "report.txt",
		MimeType:     "text/plain",
		Size:         42,
		ModifiedTime: "2024-05-01T10:30:00Z",
		Parents:      []string{"parent-1"},
	}
	obj, err := newObject(f)
	if err != nil {
		t.Fatal(err)
	}

	if obj.ID != "id-1" || obj.Name != "report.txt" || obj.Size != 42 {
		t.Errorf("newObject() = %+v", obj)
	}
	want := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	if !obj.ModTime.Equal(want) {
		t.Errorf("ModTime = %v, want %v", obj.ModTime, want)
	}
	if obj.IsFolder() {
		t.Error("IsFolder() = true for a text file")
	}
}

func TestNewObjectModifiedTime(t *testing.T) {
	// An absent modifiedTime is legal and yields the zero time.
	obj, err := newObject(&drive.File{Id: "id-2"})
	if err != nil {
		t.Fatal(err)
	}
	if !obj.ModTime.IsZero() {
		t.Errorf("ModTime = %v, want zero", obj.ModTime)
	}

	// A malformed one is a drive error, not a silent zero.
	_, err = newObject(&drive.File{Id: "id-3", ModifiedTime: "yesterday"})
	if err == nil {
		t.Fatal("newObject accepted a malformed modifiedTime")
	}
	if !errors.Is(err, ErrDriveError) {
		t.Errorf("err = %v, want ErrDriveError", err)
	}
}

func TestObjectKinds(t *testing.T) {
	folder := &Object{MimeType: MimeTypeFolder}
	if !folder.IsFolder() {
		t.Error("IsFolder() = false for a folder")
	}
	doc := &Object{MimeType: "application/vnd.google-apps.document"}
	if !doc.IsAppFile() {
		t.Error("IsAppFile() = false for a Workspace document")
	}
	if folder.IsAppFile() != true {
		// Folders carry the google-apps prefix as well.
		t.Error("IsAppFile() = false for a folder")
	}
}

func TestMapDriveError(t *testing.T) {
	notFound := &googleapi.Error{Code: 404, Message: "File not found"}
	err := mapDriveError("failed to get file", notFound)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("mapDriveError(404) is not ErrNotFound: %v", err)
	}

	rateLimited := &googleapi.Error{Code: 403, Message: "Rate limit exceeded"}
	err = mapDriveError("failed to get file", rateLimited)
	if errors.Is(err, ErrNotFound) {
		t.Errorf("mapDriveError(403) reported ErrNotFound: %v", err)
	}
	if !errors.Is(err, ErrDriveError) {
		t.Errorf("mapDriveError(403) is not ErrDriveError: %v", err)
	}
}
