package main

import (
	"context"
	"csrfdemo/utils"
	"fmt"

	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		redisURL string
		channel  string
		count    int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow a running server's state feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := utils.LoadConfig()
			if err != nil {
				return err
			}
			if redisURL == "" {
				redisURL = cfg.RedisURL
			}
			if channel == "" {
				channel = cfg.RedisChannel
			}
			if redisURL == "" {
				return fmt.Errorf("no redis url: pass --redis-url or set REDIS_URL")
			}

			client, err := utils.OpenRedisPool(redisURL)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			states, err := utils.SubscribeStates(ctx, client, channel)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			infoColor.Fprintf(w, "watching %s\n", channel)
			seen := 0
			for state := range states {
				printState(w, state)
				if n := len(state.Log); n > 0 {
					printEntries(w, state.Log[n-1:])
				}
				seen++
				if count > 0 && seen >= count {
					return nil
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL (defaults to REDIS_URL)")
	cmd.Flags().StringVar(&channel, "channel", "", "State channel (defaults to REDIS_CHANNEL)")
	cmd.Flags().IntVar(&count, "count", 0, "Exit after this many updates, 0 to follow forever")
	return cmd
}
