package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/sebuszqo/FoodManager/internal/auth"
	"github.com/sebuszqo/FoodManager/internal/user"
)

var (
	createUserOpts struct {
		username string
		email    string
		password string
		staff    bool
	}
	tokenOpts struct {
		username string
		ttl      time.Duration
	}
)

var createUserCmd = &cobra.Command{
	Use:   "createuser",
	Short: "Create a user; --staff grants write access to shared data",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, dbService, err := openDB()
		if err != nil {
			return err
		}
		defer dbService.Close()

		users := user.NewUserService(user.NewUserRepository(dbService.DB))
		return runCreateUser(cmd.Context(), users, cmd.OutOrStdout())
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an access token for an existing user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, dbService, err := openDB()
		if err != nil {
			return err
		}
		defer dbService.Close()

		jwtManager, err := auth.NewJWTManager(cfg.JWT.Secret)
		if err != nil {
			return err
		}
		users := user.NewUserService(user.NewUserRepository(dbService.DB))
		return runToken(cmd.Context(), users, jwtManager, cmd.OutOrStdout())
	},
}

func runCreateUser(ctx context.Context, users user.Service, out io.Writer) error {
	u, err := users.CreateUser(ctx, createUserOpts.username, createUserOpts.email, createUserOpts.password, createUserOpts.staff)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	role := "user"
	if u.IsStaff {
		role = "staff user"
	}
	fmt.Fprintf(out, "Created %s %s (%s)\n", role, u.Username, u.ID)
	return nil
}

func runToken(ctx context.Context, users user.Service, jwtManager auth.JWTManagerInterface, out io.Writer) error {
	u, err := users.GetUserByUsername(ctx, tokenOpts.username)
	if err != nil {
		return fmt.Errorf("find user %q: %w", tokenOpts.username, err)
	}
	if !u.IsActive {
		return fmt.Errorf("user %q is disabled", u.Username)
	}
	token, err := jwtManager.GenerateAccessJWT(u.ID, tokenOpts.ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}

func init() {
	createUserCmd.Flags().StringVar(&createUserOpts.username, "username", "", "Login name")
	createUserCmd.Flags().StringVar(&createUserOpts.email, "email", "", "Email address (optional)")
	createUserCmd.Flags().StringVar(&createUserOpts.password, "password", "", "Password, at least 8 characters")
	createUserCmd.Flags().BoolVar(&createUserOpts.staff, "staff", false, "Grant staff privileges")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")

	tokenCmd.Flags().StringVar(&tokenOpts.username, "username", "", "User to issue the token for")
	tokenCmd.Flags().DurationVar(&tokenOpts.ttl, "ttl", auth.DefaultAccessTokenDuration, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("username")

	rootCmd.AddCommand(createUserCmd, tokenCmd)
}
