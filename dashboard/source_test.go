package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsinelofficial/metamask-dashboard/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxySource_Fetch(t *testing.T) {
	var gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.URL.Query().Get("userName")
		w.Write([]byte(`{"tweets":[{"id":"1","text":"gm","createdAt":"Tue Dec 10 07:00:30 +0000 2024","likeCount":4}]}`))
	}))
	defer srv.Close()

	src := NewProxySource(srv.URL+"/api/tweets", nil)
	posts, err := src.Fetch(context.Background(), model.Competitor{Name: "Phantom", Handle: "phantom"})
	require.NoError(t, err)

	assert.Equal(t, "phantom", gotUser)
	require.Len(t, posts, 1)
	assert.Equal(t, 4, posts[0].LikeCount)
	assert.Equal(t, "live", src.Name())
}

func TestProxySource_BadTimestampKeepsCompetitor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tweets":[` +
			`{"id":"1","text":"gm","createdAt":"Tue Dec 10 07:00:30 +0000 2024"},` +
			`{"id":"2","text":"gn","createdAt":"yesterday"}]}`))
	}))
	defer srv.Close()

	posts, err := NewProxySource(srv.URL, nil).Fetch(context.Background(), model.Competitor{Name: "Phantom", Handle: "phantom"})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.False(t, posts[0].CreatedAt.IsZero())
	assert.True(t, posts[1].CreatedAt.IsZero())
}

func TestProxySource_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"API key not configured"}`))
	}))
	defer srv.Close()

	_, err := NewProxySource(srv.URL, nil).Fetch(context.Background(), model.Competitor{Handle: "phantom"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProxyStatus))
	assert.Contains(t, err.Error(), "API key not configured")
}

func TestStaticSource_Unknown(t *testing.T) {
	src, err := NewStaticSource(time.Now())
	require.NoError(t, err)

	posts, err := src.Fetch(context.Background(), model.Competitor{Name: "Zerion"})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestParseStaticSource(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	data := []byte("Rabby:\n  - id: a\n    text: hi\n    age: 90m\n    likes: 3\n")

	src, err := ParseStaticSource(data, now)
	require.NoError(t, err)

	posts, err := src.Fetch(context.Background(), model.Competitor{Name: "Rabby"})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, now.Add(-90*time.Minute), posts[0].CreatedAt)
	assert.Equal(t, 3, posts[0].LikeCount)

	_, err = ParseStaticSource([]byte("Rabby:\n  - id: a\n    age: soon\n"), now)
	assert.Error(t, err)
}
