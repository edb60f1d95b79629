package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"videolocale-go/internal/config"
	"videolocale-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu       sync.Mutex
	searches []url.Values
	videos   []url.Values
	items    map[string]map[string]any
	status   int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
		return
	}

	q := r.URL.Query()
	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.HasSuffix(r.URL.Path, "/search"):
		f.searches = append(f.searches, q)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []any{
				map[string]any{"id": map[string]any{"kind": "youtube#video", "videoId": "abc"}},
				map[string]any{"id": map[string]any{"kind": "youtube#channel", "channelId": "UC1"}},
				map[string]any{"id": map[string]any{"kind": "youtube#video", "videoId": "def"}},
			},
		})
	case strings.HasSuffix(r.URL.Path, "/videos"):
		f.videos = append(f.videos, q)
		var items []any
		for _, raw := range q["id"] {
			for _, id := range strings.Split(raw, ",") {
				if item, ok := f.items[id]; ok {
					items = append(items, item)
				}
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": items})
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client, err := New(context.Background(), &config.YouTubeConfig{
		APIKey:   "test-key",
		Endpoint: srv.URL + "/",
	})
	require.NoError(t, err)
	return client
}

func TestClient_SearchTranslatesParameters(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api)

	req := model.NewQueryRequest()
	req.Query = "cats"
	req.MaxResults = 10
	req.Location = &model.Location{Latitude: 47.6097, Longitude: -122.3331}
	req.LocationRadius = "5000m"
	req.EventType = "live"
	req.Order = "date"
	req.SafeSearch = "strict"
	req.Caption = "closedCaption"
	req.CategoryID = "15"
	req.Definition = "high"
	req.Dimension = "2d"
	req.Duration = "short"
	req.PublishedAfter = "2016-01-02T13:05:00Z"
	req.PublishedBefore = "2016-12-31T23:59:00Z"

	ids, err := client.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "def"}, ids)

	require.Len(t, api.searches, 1)
	q := api.searches[0]
	assert.Equal(t, "test-key", q.Get("key"))
	assert.Equal(t, "id", q.Get("part"))
	assert.Equal(t, "video", q.Get("type"))
	assert.Equal(t, "cats", q.Get("q"))
	assert.Equal(t, "10", q.Get("maxResults"))
	assert.Equal(t, "47.6097,-122.3331", q.Get("location"))
	assert.Equal(t, "5000m", q.Get("locationRadius"))
	assert.Equal(t, "live", q.Get("eventType"))
	assert.Equal(t, "date", q.Get("order"))
	assert.Equal(t, "strict", q.Get("safeSearch"))
	assert.Equal(t, "closedCaption", q.Get("videoCaption"))
	assert.Equal(t, "15", q.Get("videoCategoryId"))
	assert.Equal(t, "high", q.Get("videoDefinition"))
	assert.Equal(t, "2d", q.Get("videoDimension"))
	assert.Equal(t, "short", q.Get("videoDuration"))
	assert.Equal(t, "2016-01-02T13:05:00Z", q.Get("publishedAfter"))
	assert.Equal(t, "2016-12-31T23:59:00Z", q.Get("publishedBefore"))
}

func TestClient_SearchOmitsUnsetFields(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api)

	_, err := client.Search(context.Background(), model.NewQueryRequest())
	require.NoError(t, err)

	require.Len(t, api.searches, 1)
	q := api.searches[0]
	for _, name := range []string{"q", "location", "locationRadius", "eventType", "order", "publishedAfter"} {
		_, present := q[name]
		assert.False(t, present, name)
	}
	assert.Equal(t, "25", q.Get("maxResults"))
}

func TestClient_SearchError(t *testing.T) {
	api := &fakeAPI{status: http.StatusForbidden}
	client := newTestClient(t, api)

	_, err := client.Search(context.Background(), model.NewQueryRequest())
	assert.Error(t, err)
}

func TestClient_VideosKeepsInputOrder(t *testing.T) {
	api := &fakeAPI{items: map[string]map[string]any{
		"abc": {
			"id": "abc",
			"snippet": map[string]any{
				"title":        "Cat video",
				"channelTitle": "Cats",
				"publishedAt":  "2016-01-02T13:05:00Z",
				"thumbnails":   map[string]any{"medium": map[string]any{"url": "https://i.ytimg.com/abc.jpg"}},
			},
			"contentDetails":   map[string]any{"duration": "PT4M13S"},
			"statistics":       map[string]any{"viewCount": "1234"},
			"recordingDetails": map[string]any{"location": map[string]any{"latitude": 47.6, "longitude": -122.3}},
		},
		"def": {"id": "def", "snippet": map[string]any{"title": "Dog video"}},
	}}
	client := newTestClient(t, api)

	videos, err := client.Videos(context.Background(), []string{"def", "", "missing", "abc"})
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "def", videos[0].ID)
	assert.Equal(t, "Dog video", videos[0].Title)
	assert.False(t, videos[0].HasLocation())

	abc := videos[1]
	assert.Equal(t, "abc", abc.ID)
	assert.Equal(t, "Cat video", abc.Title)
	assert.Equal(t, "Cats", abc.ChannelTitle)
	assert.Equal(t, "https://i.ytimg.com/abc.jpg", abc.ThumbnailURL)
	assert.Equal(t, "PT4M13S", abc.Duration)
	assert.Equal(t, uint64(1234), abc.ViewCount)
	require.True(t, abc.HasLocation())
	assert.InDelta(t, 47.6, *abc.Latitude, 1e-9)

	require.Len(t, api.videos, 1)
	assert.Equal(t, "def,missing,abc", strings.Join(api.videos[0]["id"], ","))
}

func TestClient_VideosBatches(t *testing.T) {
	api := &fakeAPI{items: map[string]map[string]any{}}
	client := newTestClient(t, api)

	ids := make([]string, 0, 120)
	for i := 0; i < 120; i++ {
		ids = append(ids, "v"+strings.Repeat("x", i%5)+string(rune('a'+i%26)))
	}

	_, err := client.Videos(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, api.videos, 3)
}

func TestClient_VideosEmptyInput(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api)

	videos, err := client.Videos(context.Background(), []string{"", " "})
	require.NoError(t, err)
	assert.Empty(t, videos)
	assert.Empty(t, api.videos)
}
