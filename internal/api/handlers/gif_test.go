package handlers_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tayo/teamwork-backend/internal/domain"
	"github.com/tayo/teamwork-backend/internal/testutil"
)

func postGif(t *testing.T, url, token, title, filename string, content []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader(content))
	require.NoError(t, err)

	require.NoError(t, writer.WriteField("title", title))
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("teamworkToken", token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestGifHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndSignIn(t, ts)

	t.Run("successful post", func(t *testing.T) {
		resp := postGif(t, ts.APIURL("/gifs/"), token, "funny cat", "cat.gif", []byte("gif-bytes"))
		defer resp.Body.Close()

		var result struct {
			GifID    uint   `json:"gifId"`
			Message  string `json:"message"`
			Title    string `json:"title"`
			ImageURL string `json:"imageUrl"`
		}
		testutil.AssertSuccessData(t, resp, http.StatusCreated, &result)
		assert.Equal(t, "GIF image successfully posted", result.Message)
		assert.NotZero(t, result.GifID)
		assert.Equal(t, "funny cat", result.Title)
		assert.NotEmpty(t, result.ImageURL)
		assert.Equal(t, 1, ts.Uploader.Count())
	})

	t.Run("rejects non-gif file", func(t *testing.T) {
		resp := postGif(t, ts.APIURL("/gifs/"), token, "not a gif", "photo.png", []byte("png-bytes"))
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "must select a gif image to upload")
	})

	t.Run("no token", func(t *testing.T) {
		resp := postGif(t, ts.APIURL("/gifs/"), "", "cat", "cat.gif", []byte("gif-bytes"))
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "No token provided")
	})

	t.Run("missing file", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/gifs/"), token, map[string]string{"title": "no file"})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "must select a gif image to upload")
	})
}

func TestGifHandler_FeedAndGet(t *testing.T) {
	ts := testutil.NewTestServer(t)

	older := testutil.NewGifBuilder().WithTitle("older").Build(t, ts.DB.DB)
	newer := testutil.NewGifBuilder().WithTitle("newer").Build(t, ts.DB.DB)

	resp := doRequest(t, http.MethodGet, ts.APIURL("/gifs/feed"), "")
	defer resp.Body.Close()

	var feed []domain.Gif
	testutil.AssertSuccessData(t, resp, http.StatusOK, &feed)
	require.Len(t, feed, 2)
	assert.Equal(t, newer.ID, feed[0].ID)
	assert.Equal(t, older.ID, feed[1].ID)

	getResp := doRequest(t, http.MethodGet, ts.APIURL(fmt.Sprintf("/gifs/%d", older.ID)), "")
	defer getResp.Body.Close()

	var got domain.Gif
	testutil.AssertSuccessData(t, getResp, http.StatusOK, &got)
	assert.Equal(t, "older", got.Title)

	missingResp := doRequest(t, http.MethodGet, ts.APIURL("/gifs/99999"), "")
	defer missingResp.Body.Close()
	testutil.AssertErrorResponse(t, missingResp, http.StatusUnauthorized, "Gif with the given id not found")
}

func TestGifHandler_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndSignIn(t, ts)

	createResp := postGif(t, ts.APIURL("/gifs/"), token, "doomed", "doomed.gif", []byte("gif-bytes"))
	var created struct {
		GifID uint `json:"gifId"`
	}
	testutil.AssertSuccessData(t, createResp, http.StatusCreated, &created)
	createResp.Body.Close()

	resp := doRequest(t, http.MethodDelete, ts.APIURL(fmt.Sprintf("/gifs/%d", created.GifID)), token)
	defer resp.Body.Close()

	testutil.AssertSuccessData(t, resp, http.StatusOK, nil)

	// The stored image went away with the row.
	assert.Equal(t, 0, ts.Uploader.Count())

	missingResp := doRequest(t, http.MethodDelete, ts.APIURL(fmt.Sprintf("/gifs/%d", created.GifID)), token)
	defer missingResp.Body.Close()
	testutil.AssertErrorResponse(t, missingResp, http.StatusUnauthorized, "Gif with the given id not found")
}

func TestGifHandler_AddComment(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndSignIn(t, ts)
	gif := testutil.NewGifBuilder().WithTitle("commented").Build(t, ts.DB.DB)

	resp := postJSON(t, ts.APIURL(fmt.Sprintf("/gifs/%d/comment", gif.ID)), token, map[string]string{
		"comment": "hilarious",
	})
	defer resp.Body.Close()

	var result struct {
		Message  string         `json:"message"`
		GifTitle string         `json:"gifTitle"`
		Comment  domain.Comment `json:"comment"`
	}
	testutil.AssertSuccessData(t, resp, http.StatusCreated, &result)
	assert.Equal(t, "Comment successfully created", result.Message)
	assert.Equal(t, "commented", result.GifTitle)
	assert.Equal(t, "hilarious", result.Comment.Comment)
	assert.Contains(t, result.Comment.CommentID, fmt.Sprintf("%dgif", gif.ID))
}
