package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tayo/teamwork-backend/internal/api/respond"
	"github.com/tayo/teamwork-backend/internal/domain"
	"github.com/tayo/teamwork-backend/internal/service"
	"github.com/tayo/teamwork-backend/internal/websocket"
)

// Multipart uploads are capped well above any reasonable gif.
const maxUploadSize = 32 << 20

type GifHandler struct {
	gifService *service.GifService
	hub        *websocket.Hub
}

func NewGifHandler(gifService *service.GifService, hub *websocket.Hub) *GifHandler {
	return &GifHandler{gifService: gifService, hub: hub}
}

func (h *GifHandler) Feed(w http.ResponseWriter, r *http.Request) {
	gifs, err := h.gifService.Feed(r.Context())
	if err != nil {
		log.Printf("ERROR [handlers.GifHandler.Feed] %v", err)
		respond.Error(w, http.StatusInternalServerError, "Something failed")
		return
	}

	respond.Success(w, http.StatusOK, gifs)
}

func (h *GifHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Gif with the given id not found")
	if !ok {
		return
	}

	gif, err := h.gifService.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, gif)
}

// Create accepts a multipart form with an "image" file and a "title" field.
func (h *GifHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Error(w, http.StatusBadRequest, "must select a gif image to upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "must select a gif image to upload")
		return
	}
	defer file.Close()

	gif, err := h.gifService.Create(r.Context(), r.FormValue("title"), header.Filename, file)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.hub.Broadcast(websocket.EventGifCreated, gif)

	respond.Success(w, http.StatusCreated, map[string]interface{}{
		"gifId":     gif.ID,
		"message":   "GIF image successfully posted",
		"createdOn": gif.CreatedOn,
		"title":     gif.Title,
		"imageUrl":  gif.ImageURL,
	})
}

func (h *GifHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Gif with the given id not found")
	if !ok {
		return
	}

	if err := h.gifService.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"message": "Gif successfully deleted",
	})
}

func (h *GifHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Gif with the given id not found")
	if !ok {
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	gif, comment, err := h.gifService.AddComment(r.Context(), id, req.Comment, r.Host)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.hub.Broadcast(websocket.EventCommentCreated, comment)

	respond.Success(w, http.StatusCreated, map[string]interface{}{
		"message":   "Comment successfully created",
		"createdOn": gif.CreatedOn,
		"gifTitle":  gif.Title,
		"comment":   comment,
	})
}

func (h *GifHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrGifNotFound):
		respond.Error(w, http.StatusUnauthorized, "Gif with the given id not found")
	case errors.Is(err, service.ErrNotGif):
		respond.Error(w, http.StatusBadRequest, service.ErrNotGif.Error())
	case errors.Is(err, domain.ErrMissingField):
		respond.Error(w, http.StatusBadRequest, "title is required")
	default:
		log.Printf("ERROR [handlers.GifHandler] %v", err)
		respond.Error(w, http.StatusInternalServerError, "Bad request or Something failed")
	}
}
