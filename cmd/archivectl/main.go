package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"discord-archive/internal/infra/metrics"
)

var rootCmd = &cobra.Command{
	Use:   "archivectl",
	Short: "Архив переписки Discord: сборка из выгрузки и удаление сообщений",
	Long: `archivectl собирает читаемый архив из директории выгрузки Discord,
вычитая сообщения, уже удалённые через журнал, и умеет удалять сообщения
на сервере с фиксацией в том же журнале.`,
}

func main() {
	_ = godotenv.Load()
	metrics.MustRegister(prometheus.DefaultRegisterer)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
