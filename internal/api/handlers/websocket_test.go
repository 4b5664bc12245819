package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tayo/teamwork-backend/internal/testutil"
	"github.com/tayo/teamwork-backend/internal/websocket"
)

func TestWebSocket_RequiresToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, resp, err := ws.DefaultDialer.Dial(ts.WebSocketURL(""), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, resp, err = ws.DefaultDialer.Dial(ts.WebSocketURL("not-a-token"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebSocket_ReceivesActivityEvents(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndSignIn(t, ts)

	conn, resp, err := ws.DefaultDialer.Dial(ts.WebSocketURL(token), nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	// Give the server a moment to register the client with the hub.
	time.Sleep(100 * time.Millisecond)

	createResp := postJSON(t, ts.APIURL("/articles/"), token, map[string]string{
		"title":   "broadcast me",
		"article": "this should reach the feed",
	})
	createResp.Body.Close()
	require.Equal(t, http.StatusCreated, createResp.StatusCode)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var event websocket.Event
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(message, &event))

	assert.Equal(t, websocket.EventArticleCreated, event.Type)

	payload, err := json.Marshal(event.Data)
	require.NoError(t, err)
	var article struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(payload, &article))
	assert.Equal(t, "broadcast me", article.Title)
}
