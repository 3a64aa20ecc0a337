package chatbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/moodbot/backend/internal/model/chatbot"
	"github.com/zhouzirui/moodbot/backend/pkg/utils"
)

const maxBodyBytes = 1 << 20

var ErrNotObject = errors.New("request body is not a JSON object")

// Responder 生成单次回复
type Responder interface {
	Reply(ctx context.Context, req chatbot.Request) (chatbot.Response, error)
}

// Handler 聊天机器人的HTTP处理器
type Handler struct {
	responder Responder
}

// New 创建聊天机器人处理器
func New(responder Responder) *Handler {
	return &Handler{responder: responder}
}

// RegisterRoutes 注册聊天机器人路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chatbot", h.handleChatbot)
}

// handleChatbot 处理一次对话请求，任何失败都以固定文案返回500
func (h *Handler) handleChatbot(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.fail(w, r, fmt.Errorf("panic: %v", rec))
		}
	}()

	req, err := decodeRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.responder.Reply(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("[chatbot] request %s failed: %v", middleware.GetReqID(r.Context()), err)
	utils.RespondReply(w, http.StatusInternalServerError, chatbot.FallbackReply)
}

// decodeRequest accepts any JSON object. Fields of the wrong type are treated
// as absent.
func decodeRequest(body io.Reader) (chatbot.Request, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return chatbot.Request{}, fmt.Errorf("read body: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return chatbot.Request{}, fmt.Errorf("decode body: %w", err)
	}
	if fields == nil {
		return chatbot.Request{}, ErrNotObject
	}

	return chatbot.Request{
		Emotion: stringField(fields, "emotion"),
		Message: stringField(fields, "message"),
	}, nil
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
