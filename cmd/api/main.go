package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"discord-archive/internal/adapters/discord"
	"discord-archive/internal/adapters/export"
	"discord-archive/internal/adapters/ledger"
	"discord-archive/internal/domain"
	"discord-archive/internal/infra/config"
	httpinfra "discord-archive/internal/infra/http"
	infralog "discord-archive/internal/infra/log"
	"discord-archive/internal/infra/metrics"
	archiveusecase "discord-archive/internal/usecase/archive"
	deletionusecase "discord-archive/internal/usecase/deletion"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := infralog.NewLogger(cfg.AppEnv)
	log.Logger = logger

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fileLedger := ledger.NewFileLedger(cfg.DataDir)
	discordClient := discord.NewClient(discord.Config{
		BaseURL: cfg.Discord.BaseURL,
		Timeout: cfg.Discord.Timeout,
	})
	archiveService := archiveusecase.NewService(export.NewReader(), fileLedger)
	deletionService := deletionusecase.NewService(discordClient, fileLedger, logger.With().Str("component", "deletion").Logger())

	srv := httpinfra.NewServer(logger.With().Str("component", "http").Logger())

	srv.Router.Post("/api/v1/archive", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req buildRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "невалидное тело запроса")
			return
		}
		if req.Directory == "" {
			writeError(w, http.StatusBadRequest, "directory обязателен")
			return
		}
		arch, err := archiveService.Build(r.Context(), req.Directory)
		if err != nil {
			writeBuildError(w, err)
			return
		}
		writeJSON(w, arch)
	})

	srv.Router.Post("/api/v1/archive/search", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "невалидное тело запроса")
			return
		}
		if req.Directory == "" {
			writeError(w, http.StatusBadRequest, "directory обязателен")
			return
		}
		arch, err := archiveService.Build(r.Context(), req.Directory)
		if err != nil {
			writeBuildError(w, err)
			return
		}
		includeDMs := req.DMs == nil || *req.DMs
		includeGuilds := req.Guilds == nil || *req.Guilds
		hits := archiveusecase.Search(arch, req.Query, includeDMs, includeGuilds)
		if hits == nil {
			hits = []archiveusecase.Hit{}
		}
		writeJSON(w, map[string]any{"hits": hits, "total": len(hits)})
	})

	srv.Router.Delete("/api/v1/channels/{channelID}/messages/{messageID}", func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			writeError(w, http.StatusUnauthorized, "нет токена в Authorization")
			return
		}
		channelID, err := domain.ParseID(chi.URLParam(r, "channelID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "невалидный channel_id")
			return
		}
		messageID, err := domain.ParseID(chi.URLParam(r, "messageID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "невалидный message_id")
			return
		}
		status, err := deletionService.Delete(r.Context(), token, channelID, messageID)
		if err != nil {
			if errors.Is(err, domain.ErrRemoteUnavailable) {
				writeError(w, http.StatusBadGateway, "discord недоступен")
				return
			}
			log.Error().Err(err).Msg("api: удаление сообщения")
			writeError(w, http.StatusInternalServerError, "не удалось зафиксировать удаление")
			return
		}
		writeJSON(w, map[string]int{"status_code": status})
	})

	srv.Router.Get("/api/v1/me", func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			writeError(w, http.StatusUnauthorized, "нет токена в Authorization")
			return
		}
		user, status, err := discordClient.CurrentUser(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusBadGateway, "discord недоступен")
			return
		}
		if status != http.StatusOK {
			writeError(w, status, "discord вернул "+strconv.Itoa(status))
			return
		}
		writeJSON(w, user)
	})

	metrics.StartServer(ctx, logger.With().Str("component", "metrics").Logger(), cfg.MetricsAddr)
	go func() {
		if err := srv.Start(":" + strconv.Itoa(cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("api: сервер остановлен")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("api: остановка")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

type buildRequest struct {
	Directory string `json:"directory"`
}

type searchRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
	DMs       *bool  `json:"dms"`
	Guilds    *bool  `json:"guilds"`
}

func writeBuildError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "путь не является директорией")
	case errors.Is(err, domain.ErrMalformedExport):
		writeError(w, http.StatusUnprocessableEntity, "выгрузка повреждена: "+err.Error())
	case errors.Is(err, domain.ErrLedgerCorrupt):
		log.Error().Err(err).Msg("api: журнал удалений повреждён")
		writeError(w, http.StatusInternalServerError, "журнал удалений повреждён")
	default:
		log.Error().Err(err).Msg("api: сборка архива")
		writeError(w, http.StatusInternalServerError, "не удалось собрать архив")
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": msg})
}
