// Command grant-role assigns a catalog role to a user. It is the only
// writer of user_roles and is used to bootstrap the first admin.
//
// Usage:
//
//	grant-role --username=jdoe --role=Admin [--display-name="Jane Doe"] [--email=jdoe@example.com] [--token]
//
// With --token and a configured JWT secret it also prints an access token
// for the user. Role None revokes access while keeping the row.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres/userrole"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/auth"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/config"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/transport/middleware"
)

func main() {
	username := flag.String("username", "", "username, a DOMAIN\\ prefix is stripped")
	roleName := flag.String("role", "", "role to assign: None, Viewer, Editor or Admin")
	displayName := flag.String("display-name", "", "display name (kept if empty)")
	email := flag.String("email", "", "email address (kept if empty)")
	token := flag.Bool("token", false, "also print a bearer token for the user")
	flag.Parse()

	user := middleware.StripDomain(*username)
	role := domain.ParseRole(*roleName)
	if user == "" || (role == domain.RoleNone && !strings.EqualFold(strings.TrimSpace(*roleName), "None")) {
		fmt.Fprintln(os.Stderr, "Usage: grant-role --username=jdoe --role=Viewer|Editor|Admin|None")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	a, err := userrole.New(pool).Upsert(ctx, domain.UserRoleAssignment{
		Username:    user,
		Role:        role,
		DisplayName: optional(*displayName),
		Email:       optional(*email),
	})
	if err != nil {
		log.Fatalf("grant role: %v", err)
	}

	fmt.Printf("User %q now has role %s.\n", a.Username, a.Role)

	if !*token {
		return
	}
	if !cfg.Auth.JWTEnabled() {
		log.Fatal("--token requires auth.jwt_secret to be configured")
	}
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAccessTTL)
	tok, err := jwt.GenerateAccessToken(a.Username)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(tok)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
