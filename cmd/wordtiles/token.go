package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wordtiles/internal/security"
)

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().Duration("ttl", 0, "token lifetime (default TOKEN_TTL)")
}

var tokenCmd = &cobra.Command{
	Use:   "token <subject>",
	Short: "issue an API bearer token signed with TOKEN_SECRET",
	Args:  cobra.ExactArgs(1),
	RunE:  runToken,
}

func runToken(cmd *cobra.Command, args []string) error {
	if appConfig.TokenSecret == "" {
		return errors.New("TOKEN_SECRET is not set")
	}

	ttl := mustGetDurationFlag(cmd, "ttl")
	if ttl <= 0 {
		ttl = appConfig.TokenTTL
	}

	token, expiresAt, err := security.NewTokenManager(appConfig.TokenSecret, ttl).Issue(args[0])
	if err != nil {
		return err
	}
	fmt.Println(token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.Format(time.RFC3339))
	return nil
}
