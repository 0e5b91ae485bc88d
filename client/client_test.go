package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resources/notes", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("dept"))
		assert.Equal(t, "graphs", r.URL.Query().Get("q"))
		assert.Equal(t, "n2", r.URL.Query().Get("shared"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"records":[
			{"kind":"note","id":"n2","title":"Graphs","department_id":"1","course_code":"CS201","uploader_name":"asha","created_at":"2024-01-02T00:00:00Z"},
			{"kind":"note","id":"n1","title":"Trees","department_id":"1","course_code":"CS201","uploader_name":"ravi","created_at":"2024-01-01T00:00:00Z"}
		],"total":2,"visible":10,"notices":[]},"meta":{"request_id":"r"}}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).Search(context.Background(), SearchParams{
		Kind: entity.KindNote, DepartmentID: "1", Term: "graphs", SharedID: "n2",
	})
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, "n2", res.Records[0].ResourceID())
	note, ok := res.Records[0].(*entity.Note)
	require.True(t, ok)
	assert.Equal(t, "asha", note.UploaderName)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 10, res.Visible)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"FILE_NOT_FOUND","message":"No file found","details":"No pyq.zip found for this course."},"meta":{"request_id":"r"}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).PyqLink(context.Background(), "CS999")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "FILE_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "No pyq.zip found for this course.", apiErr.Details)
}

func TestClient_NotesLinkAndShare(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/files/notes":
			assert.Equal(t, "CS101", r.URL.Query().Get("course_code"))
			assert.Equal(t, "asha", r.URL.Query().Get("uploader"))
			_, _ = w.Write([]byte(`{"data":{"url":"https://drive.google.com/file/d/x/view"}}`))
		case "/share/pyqs/p1":
			assert.Equal(t, "2", r.URL.Query().Get("dept"))
			_, _ = w.Write([]byte(`{"data":{"url":"https://portal.example.edu/pyqs?dept=2&shared=p1"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":"HTTP_ERROR","message":"Not Found"}}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL + "/")

	link, err := c.NotesLink(context.Background(), "CS101", "asha")
	require.NoError(t, err)
	assert.Equal(t, "https://drive.google.com/file/d/x/view", link)

	share, err := c.ShareLink(context.Background(), entity.KindPastQuestion, "2", "p1")
	require.NoError(t, err)
	assert.Equal(t, "https://portal.example.edu/pyqs?dept=2&shared=p1", share)
}

func TestClient_Departments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"1","short_name":"CSE","name":"Computer Science and Engineering"}]}`))
	}))
	defer srv.Close()

	deps, err := New(srv.URL).Departments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.Department{{ID: "1", ShortName: "CSE", Name: "Computer Science and Engineering"}}, deps)
}
