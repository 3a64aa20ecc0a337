package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/zhouzirui/moodbot/backend/internal/analysis/tokenize"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server  ServerConfig
	Chatbot ChatbotConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	chatbot, err := loadChatbotConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Chatbot: chatbot}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr  string
	Debug bool
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	debug, err := parseBoolEnv("CHATBOT_DEBUG", false)
	if err != nil {
		return ServerConfig{}, err
	}

	host := getEnvOrDefault("CHATBOT_HOST", "127.0.0.1")
	port := getEnvOrDefault("PORT", "5000")

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":5000" 或 "0.0.0.0:5000"。
		if _, _, err := net.SplitHostPort(port); err != nil {
			return ServerConfig{}, fmt.Errorf("invalid PORT value %q: %w", port, err)
		}
		return ServerConfig{Addr: port, Debug: debug}, nil
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: net.JoinHostPort(host, port), Debug: debug}, nil
}

// ChatbotConfig 描述意图识别相关配置。
type ChatbotConfig struct {
	Tokenizer   string
	PhraseMatch bool
}

func loadChatbotConfig() (ChatbotConfig, error) {
	phrase, err := parseBoolEnv("CHATBOT_PHRASE_MATCH", false)
	if err != nil {
		return ChatbotConfig{}, err
	}

	kind := strings.ToLower(getEnvOrDefault("CHATBOT_TOKENIZER", tokenize.KindSimple))
	if _, err := tokenize.New(kind); err != nil {
		return ChatbotConfig{}, fmt.Errorf("invalid CHATBOT_TOKENIZER value: %w", err)
	}

	return ChatbotConfig{Tokenizer: kind, PhraseMatch: phrase}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}
