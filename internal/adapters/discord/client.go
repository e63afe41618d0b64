package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"discord-archive/internal/domain"
	"discord-archive/internal/infra/metrics"
)

const avatarCDN = "https://cdn.discordapp.com/avatars"

// Config описывает подключение к Discord API.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client ходит в Discord API с пользовательским токеном. Токен передаётся в
// Authorization как есть, без префиксов.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

var _ domain.RemoteMessenger = (*Client)(nil)

// NewClient создаёт клиента.
func NewClient(cfg Config) *Client {
	client := &Client{cfg: cfg}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = "https://discord.com/api/v9"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client.httpClient = &http.Client{Timeout: timeout}
	return client
}

// SetHTTPClient подменяет транспорт (для тестов).
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	if httpClient != nil {
		c.httpClient = httpClient
	}
}

// DeleteMessage выполняет DELETE /channels/{channel}/messages/{message} и
// возвращает код ответа без интерпретации.
func (c *Client) DeleteMessage(ctx context.Context, token string, channelID, messageID domain.ID) (int, error) {
	url := fmt.Sprintf("%s/channels/%s/messages/%s", c.cfg.BaseURL, channelID, messageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return 0, fmt.Errorf("создание запроса: %w", err)
	}
	req.Header.Set("Authorization", token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveNetworkRequest("discord", "delete_message", c.cfg.BaseURL, "error", time.Since(start))
		return 0, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()
	metrics.ObserveNetworkRequest("discord", "delete_message", c.cfg.BaseURL, strconv.Itoa(resp.StatusCode), time.Since(start))
	return resp.StatusCode, nil
}

// CurrentUser возвращает профиль владельца токена через /users/@me вместе с
// кодом ответа. Не-200 — не ошибка: вызывающий сам решает, что показать.
func (c *Client) CurrentUser(ctx context.Context, token string) (domain.RemoteUser, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/users/@me", nil)
	if err != nil {
		return domain.RemoteUser{}, 0, fmt.Errorf("создание запроса: %w", err)
	}
	req.Header.Set("Authorization", token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveNetworkRequest("discord", "current_user", c.cfg.BaseURL, "error", time.Since(start))
		return domain.RemoteUser{}, 0, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()
	metrics.ObserveNetworkRequest("discord", "current_user", c.cfg.BaseURL, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return domain.RemoteUser{}, resp.StatusCode, nil
	}
	var payload struct {
		ID       domain.ID `json:"id"`
		Username string    `json:"username"`
		Avatar   string    `json:"avatar"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.RemoteUser{}, resp.StatusCode, fmt.Errorf("разбор профиля: %w", err)
	}
	user := domain.RemoteUser{Username: payload.Username}
	if payload.Avatar != "" {
		user.AvatarURL = fmt.Sprintf("%s/%s/%s.png", avatarCDN, payload.ID, payload.Avatar)
	}
	return user, resp.StatusCode, nil
}
