package repository

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lshigami/atcprep/internal/document"
	"github.com/lshigami/atcprep/internal/model"
)

func ptr[T any](v T) *T {
	return &v
}

func courseWithPayload(chars int) *model.Course {
	data := "data:application/pdf;base64," + strings.Repeat("QUJD", chars/4)
	return &model.Course{ID: "c1", Title: "Tower basics", Category: model.ContentAerodrome, FileData: &data}
}

func TestApplyAttachmentBudget(t *testing.T) {
	t.Run("600k payload is truncated and flagged", func(t *testing.T) {
		course := courseWithPayload(600000)
		applyAttachmentBudget(course, DefaultCourseFileBudget)

		if !course.FileStorageError {
			t.Fatalf("expected FileStorageError to be set")
		}
		uri, ok := document.ParseDataURI(*course.FileData)
		if !ok {
			t.Fatalf("stored value is not a data URI")
		}
		if len(uri.Payload) != DefaultCourseFileBudget {
			t.Errorf("expected payload length %d, got %d", DefaultCourseFileBudget, len(uri.Payload))
		}
	})

	t.Run("400k payload is stored unchanged", func(t *testing.T) {
		course := courseWithPayload(400000)
		original := *course.FileData
		applyAttachmentBudget(course, DefaultCourseFileBudget)

		if course.FileStorageError {
			t.Errorf("expected FileStorageError to stay false")
		}
		if *course.FileData != original {
			t.Errorf("expected payload unchanged")
		}
	})

	t.Run("malformed attachment is dropped", func(t *testing.T) {
		course := &model.Course{ID: "c2", FileData: ptr("hello world")}
		applyAttachmentBudget(course, DefaultCourseFileBudget)

		if course.FileData != nil || !course.FileStorageError {
			t.Errorf("expected attachment dropped and flagged, got %v %v", course.FileData, course.FileStorageError)
		}
	})

	t.Run("empty attachment is normalised", func(t *testing.T) {
		course := &model.Course{ID: "c3", FileData: ptr("")}
		applyAttachmentBudget(course, DefaultCourseFileBudget)

		if course.FileData != nil || course.FileStorageError {
			t.Errorf("expected nil attachment without error flag")
		}
	})

	t.Run("no attachment", func(t *testing.T) {
		course := &model.Course{ID: "c4"}
		applyAttachmentBudget(course, DefaultCourseFileBudget)
		if course.FileStorageError {
			t.Errorf("expected no error flag")
		}
	})
}

func TestRevalidateAttachment(t *testing.T) {
	valid := courseWithPayload(8)
	if revalidateAttachment(valid) || valid.FileData == nil || valid.FileStorageError {
		t.Errorf("expected valid attachment to be left alone")
	}

	corrupted := &model.Course{ID: "c5", FileData: ptr("data:application/pdf;base64,%%%")}
	if !revalidateAttachment(corrupted) {
		t.Fatalf("expected corrupted attachment to be discarded")
	}
	if corrupted.FileData != nil || !corrupted.FileStorageError {
		t.Errorf("expected attachment cleared and flagged")
	}
}

func TestStorageError(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		exhausted bool
	}{
		{"disk full", &pgconn.PgError{Code: "53100", Message: "could not extend file"}, true},
		{"out of memory", &pgconn.PgError{Code: "53200"}, true},
		{"row too big", &pgconn.PgError{Code: "54000"}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"other", errors.New("connection reset"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := storageError("create course", tc.err)
			if got := errors.Is(err, ErrStorageExhausted); got != tc.exhausted {
				t.Errorf("expected exhausted=%v, got %v (%v)", tc.exhausted, got, err)
			}
		})
	}

	if storageError("noop", nil) != nil {
		t.Errorf("expected nil for nil error")
	}
}
