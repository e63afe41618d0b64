package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"discord-archive/internal/adapters/discord"
	"discord-archive/internal/adapters/export"
	"discord-archive/internal/adapters/ledger"
	"discord-archive/internal/domain"
	"discord-archive/internal/infra/config"
	infralog "discord-archive/internal/infra/log"
	archiveusecase "discord-archive/internal/usecase/archive"
	deletionusecase "discord-archive/internal/usecase/deletion"
)

var (
	buildQuery  string
	buildDMs    bool
	buildGuilds bool
	tokenFlag   string
)

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(whoamiCmd)

	buildCmd.Flags().StringVar(&buildQuery, "query", "", "оставить только сообщения с подстрокой")
	buildCmd.Flags().BoolVar(&buildDMs, "dms", true, "включать личные переписки")
	buildCmd.Flags().BoolVar(&buildGuilds, "guilds", true, "включать серверные каналы")

	deleteCmd.Flags().StringVar(&tokenFlag, "token", "", "токен Discord (или переменная DISCORD_TOKEN)")
	whoamiCmd.Flags().StringVar(&tokenFlag, "token", "", "токен Discord (или переменная DISCORD_TOKEN)")
}

var buildCmd = &cobra.Command{
	Use:   "build <директория-выгрузки>",
	Short: "Собрать архив из выгрузки с учётом журнала удалений",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		service := archiveusecase.NewService(export.NewReader(), ledger.NewFileLedger(cfg.DataDir))

		arch, err := service.Build(context.Background(), args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("query") || !buildDMs || !buildGuilds {
			hits := archiveusecase.Search(arch, buildQuery, buildDMs, buildGuilds)
			return printJSON(map[string]any{"hits": hits, "total": len(hits)})
		}
		return printJSON(arch)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <channel_id> <message_id>",
	Short: "Удалить сообщение в Discord и записать его в журнал",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := resolveToken()
		if err != nil {
			return err
		}
		channelID, err := domain.ParseID(args[0])
		if err != nil {
			return err
		}
		messageID, err := domain.ParseID(args[1])
		if err != nil {
			return err
		}

		cfg := config.Load()
		client := discord.NewClient(discord.Config{BaseURL: cfg.Discord.BaseURL, Timeout: cfg.Discord.Timeout})
		logger := infralog.NewLogger(cfg.AppEnv).With().Str("component", "archivectl").Logger()
		service := deletionusecase.NewService(client, ledger.NewFileLedger(cfg.DataDir), logger)

		status, err := service.Delete(context.Background(), token, channelID, messageID)
		if err != nil {
			return err
		}
		return printJSON(map[string]int{"status_code": status})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Проверить токен и показать владельца",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := resolveToken()
		if err != nil {
			return err
		}
		cfg := config.Load()
		client := discord.NewClient(discord.Config{BaseURL: cfg.Discord.BaseURL, Timeout: cfg.Discord.Timeout})

		user, status, err := client.CurrentUser(context.Background(), token)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("discord вернул %d", status)
		}
		return printJSON(user)
	},
}

func resolveToken() (string, error) {
	if tokenFlag != "" {
		return tokenFlag, nil
	}
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("нужен токен: --token или DISCORD_TOKEN")
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
