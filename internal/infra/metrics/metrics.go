package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	ArchiveBuildSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "archive_build_seconds",
		Help:    "Время сборки архива из выгрузки",
		Buckets: prometheus.DefBuckets,
	})
	ArchiveChannelsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "archive_channels_total",
		Help: "Каналы, обработанные при сборке архива, по типу",
	}, []string{"kind"})
	ArchiveMessagesFiltered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "archive_messages_filtered_total",
		Help: "Сообщения, вычеркнутые по журналу удалений",
	})
	DeleteRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delete_requests_total",
		Help: "Запросы на удаление сообщений по коду ответа",
	}, []string{"status"})

	NetworkRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "network_request_duration_seconds",
		Help:    "Длительность сетевых запросов",
		Buckets: prometheus.DefBuckets,
	}, []string{"component", "operation", "target", "status"})

	NetworkRequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "network_request_total",
		Help: "Количество сетевых запросов",
	}, []string{"component", "operation", "target", "status"})
)

// MustRegister регистрирует метрики.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		ArchiveBuildSeconds,
		ArchiveChannelsTotal,
		ArchiveMessagesFiltered,
		DeleteRequestsTotal,
		NetworkRequestDuration,
		NetworkRequestTotal,
	)
}

// ObserveNetworkRequest записывает длительность и счётчик сетевого запроса.
func ObserveNetworkRequest(component, operation, target, status string, duration time.Duration) {
	if status == "" {
		status = "unknown"
	}
	NetworkRequestDuration.WithLabelValues(component, operation, target, status).Observe(duration.Seconds())
	NetworkRequestTotal.WithLabelValues(component, operation, target, status).Inc()
}

// StartServer запускает HTTP сервер с эндпоинтом /metrics и гасит его по
// отмене контекста.
func StartServer(ctx context.Context, logger zerolog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("metrics: старт")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics: сервер остановлен")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}
