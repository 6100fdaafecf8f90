package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harrylevesque/storefront/internal/backend"
	"github.com/harrylevesque/storefront/internal/models"
)

// Default backend base URL; can override with STOREFRONT_API env var or --server flag.
var serverBaseURL = "http://127.0.0.1:5000"

func main() {
	cmd := flag.String("cmd", "login", "Command: login|register")
	serverFlag := flag.String("server", "", "Override backend base URL (e.g. https://api.example.com)")
	email := flag.String("email", "", "Account email")
	password := flag.String("password", "", "Account password")
	name := flag.String("name", "", "Account name (register)")
	image := flag.String("image", "", "Avatar file; only its name is sent (register)")
	role := flag.String("role", string(models.RoleCustomer), "Customer|Seller (register)")
	timeout := flag.Duration("timeout", 10*time.Second, "Request timeout")
	flag.Parse()
	if env := os.Getenv("STOREFRONT_API"); env != "" {
		serverBaseURL = strings.TrimRight(env, "/")
	}
	if *serverFlag != "" {
		serverBaseURL = strings.TrimRight(*serverFlag, "/")
	}

	client := backend.New(serverBaseURL, *timeout)
	ctx := context.Background()

	var err error
	switch *cmd {
	case "login":
		err = loginFlow(ctx, client, *email, *password)
	case "register":
		err = registerFlow(ctx, client, models.RegisterRequest{
			Name:     *name,
			Email:    *email,
			Password: *password,
			Image:    imageName(*image),
			Role:     models.ParseRole(*role),
		})
	default:
		err = fmt.Errorf("unknown command %q", *cmd)
	}
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func imageName(path string) *string {
	if path == "" {
		return nil
	}
	base := filepath.Base(path)
	return &base
}

func loginFlow(ctx context.Context, client *backend.Client, email, password string) error {
	fmt.Println("Logging in to", client.BaseURL())
	res, err := client.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	if res.AuthToken == "" {
		return errors.New("no auth token in response")
	}
	fmt.Println(res.AuthToken)
	return nil
}

func registerFlow(ctx context.Context, client *backend.Client, req models.RegisterRequest) error {
	fmt.Println("Registering", req.Email, "as", req.Role, "at", client.BaseURL())
	res, err := client.Register(ctx, req)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return fmt.Errorf("registration not accepted (status %q)", res.Status)
	}
	fmt.Println("Registered. You can log in now.")
	return nil
}
