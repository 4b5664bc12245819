package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tayo/teamwork-backend/internal/api/respond"
	"github.com/tayo/teamwork-backend/internal/domain"
	"github.com/tayo/teamwork-backend/internal/service"
	"github.com/tayo/teamwork-backend/internal/websocket"
)

type ArticleHandler struct {
	articleService *service.ArticleService
	hub            *websocket.Hub
}

func NewArticleHandler(articleService *service.ArticleService, hub *websocket.Hub) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, hub: hub}
}

type ArticleRequest struct {
	Title   string `json:"title"`
	Article string `json:"article"`
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

func (h *ArticleHandler) Feed(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.Feed(r.Context())
	if err != nil {
		log.Printf("ERROR [handlers.ArticleHandler.Feed] %v", err)
		respond.Error(w, http.StatusInternalServerError, "Something failed")
		return
	}

	respond.Success(w, http.StatusOK, articles)
}

func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Article with the given id not found")
	if !ok {
		return
	}

	article, err := h.articleService.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, article)
}

func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	article, err := h.articleService.Create(r.Context(), req.Title, req.Article)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.hub.Broadcast(websocket.EventArticleCreated, article)

	respond.Success(w, http.StatusCreated, map[string]interface{}{
		"message":   "Article successfully posted",
		"articleId": article.ID,
		"createdOn": article.CreatedOn,
		"title":     article.Title,
	})
}

func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Article with the given id not found")
	if !ok {
		return
	}

	var req ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	article, err := h.articleService.Update(r.Context(), id, req.Title, req.Article)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"message": "Article successfully updated",
		"title":   article.Title,
		"article": article.Body,
	})
}

func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Article with the given id not found")
	if !ok {
		return
	}

	if err := h.articleService.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"message": "Article successfully deleted",
	})
}

func (h *ArticleHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Article with the given id not found")
	if !ok {
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	article, comment, err := h.articleService.AddComment(r.Context(), id, req.Comment, r.Host)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.hub.Broadcast(websocket.EventCommentCreated, comment)

	respond.Success(w, http.StatusCreated, map[string]interface{}{
		"message":      "Comment successfully created",
		"createdOn":    article.CreatedOn,
		"articleTitle": article.Title,
		"article":      article.Body,
		"comment":      comment,
	})
}

func (h *ArticleHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		// 401 for a missing resource id mirrors the API this service
		// replaces; see DESIGN.md.
		respond.Error(w, http.StatusUnauthorized, "Article with the given id not found")
	case errors.Is(err, domain.ErrMissingField):
		respond.Error(w, http.StatusBadRequest, "title and article are required")
	default:
		log.Printf("ERROR [handlers.ArticleHandler] %v", err)
		respond.Error(w, http.StatusInternalServerError, "Something failed")
	}
}

// parseID reads the {id} route parameter. A non-numeric id is reported the
// same way as a missing resource.
func parseID(w http.ResponseWriter, r *http.Request, notFoundMsg string) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respond.Error(w, http.StatusUnauthorized, notFoundMsg)
		return 0, false
	}
	return uint(id), true
}
