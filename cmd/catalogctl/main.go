// Command catalogctl is the operator tool for a running video-catalog server.
//
// Most subcommands talk to the HTTP API through the adapter client and take
// the usual -addr and -token flags. The set-role subcommand is the exception:
// role changes are deliberately not exposed over HTTP, so it connects straight
// to the database using the server's DSN.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kuppisite/video-catalog/internal/adapter"
	"github.com/kuppisite/video-catalog/internal/config"
	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/internal/store"
	"github.com/kuppisite/video-catalog/models"
)

const commandTimeout = 30 * time.Second

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "register":
		err = runRegister(ctx, os.Args[2:])
	case "login":
		err = runLogin(ctx, os.Args[2:])
	case "me":
		err = runMe(ctx, os.Args[2:])
	case "list-videos":
		err = runListVideos(ctx, os.Args[2:])
	case "get-video":
		err = runGetVideo(ctx, os.Args[2:])
	case "add-video":
		err = runAddVideo(ctx, os.Args[2:])
	case "update-video":
		err = runUpdateVideo(ctx, os.Args[2:])
	case "delete-video":
		err = runDeleteVideo(ctx, os.Args[2:])
	case "set-role":
		err = runSetRole(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "catalogctl %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: catalogctl <command> [flags]

commands:
  register      create an account and print the issued token
  login         authenticate and print the issued token
  me            show the account the token belongs to
  list-videos   print the full catalog
  get-video     print a single catalog entry
  add-video     add a catalog entry (admin token required)
  update-video  change fields of a catalog entry (admin token required)
  delete-video  remove a catalog entry (admin token required)
  set-role      change an account role, connecting directly to the database`)
}

// clientFlags registers the flags shared by every HTTP subcommand.
func clientFlags(fs *flag.FlagSet) (addr, token *string) {
	addr = fs.String("addr", "http://localhost:8080", "base URL of the catalog server")
	token = fs.String("token", "", "bearer token for authenticated calls")
	return addr, token
}

func newClient(addr, token string) adapter.CatalogClient {
	client := adapter.NewHTTPCatalogClient(adapter.HTTPClientConfig{BaseURL: addr})
	client.SetToken(token)
	return client
}

func runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	addr, token := clientFlags(fs)
	name := fs.String("name", "", "account name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args) //nolint:errcheck // ExitOnError

	client := newClient(*addr, *token)
	user, err := client.Register(ctx, models.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("registered user %d (%s)\ntoken: %s\n", user.UserID, user.Email, client.Token())
	return nil
}

func runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	addr, token := clientFlags(fs)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args) //nolint:errcheck

	client := newClient(*addr, *token)
	user, err := client.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	fmt.Printf("logged in as user %d (%s, role %s)\ntoken: %s\n", user.UserID, user.Email, user.Role, client.Token())
	return nil
}

func runMe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("me", flag.ExitOnError)
	addr, token := clientFlags(fs)
	fs.Parse(args) //nolint:errcheck

	user, err := newClient(*addr, *token).Me(ctx)
	if err != nil {
		return err
	}

	return printJSON(user)
}

func runListVideos(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list-videos", flag.ExitOnError)
	addr, token := clientFlags(fs)
	fs.Parse(args) //nolint:errcheck

	videos, err := newClient(*addr, *token).ListVideos(ctx)
	if err != nil {
		return err
	}

	return printJSON(videos)
}

func runGetVideo(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get-video", flag.ExitOnError)
	addr, token := clientFlags(fs)
	id := fs.Int64("id", 0, "video id")
	fs.Parse(args) //nolint:errcheck

	video, err := newClient(*addr, *token).GetVideo(ctx, *id)
	if err != nil {
		return err
	}

	return printJSON(video)
}

func runAddVideo(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-video", flag.ExitOnError)
	addr, token := clientFlags(fs)
	title := fs.String("title", "", "video title")
	description := fs.String("description", "", "video description")
	youtubeID := fs.String("youtube-id", "", "YouTube video identifier")
	category := fs.String("category", "", "optional category label")
	fs.Parse(args) //nolint:errcheck

	video, err := newClient(*addr, *token).CreateVideo(ctx, models.Video{
		Title:       *title,
		Description: *description,
		YouTubeID:   *youtubeID,
		Category:    *category,
	})
	if err != nil {
		return err
	}

	return printJSON(video)
}

func runUpdateVideo(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-video", flag.ExitOnError)
	addr, token := clientFlags(fs)
	id := fs.Int64("id", 0, "video id")
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")
	youtubeID := fs.String("youtube-id", "", "new YouTube video identifier")
	category := fs.String("category", "", "new category label")
	fs.Parse(args) //nolint:errcheck

	update := models.VideoUpdate{VideoID: *id}
	fs.Visit(func(f *flag.Flag) {
		// only flags the operator actually passed become part of the update
		switch f.Name {
		case "title":
			update.Title = title
		case "description":
			update.Description = description
		case "youtube-id":
			update.YouTubeID = youtubeID
		case "category":
			update.Category = category
		}
	})

	video, err := newClient(*addr, *token).UpdateVideo(ctx, update)
	if err != nil {
		return err
	}

	return printJSON(video)
}

func runDeleteVideo(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete-video", flag.ExitOnError)
	addr, token := clientFlags(fs)
	id := fs.Int64("id", 0, "video id")
	fs.Parse(args) //nolint:errcheck

	if err := newClient(*addr, *token).DeleteVideo(ctx, *id); err != nil {
		return err
	}

	fmt.Printf("deleted video %d\n", *id)
	return nil
}

func runSetRole(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-role", flag.ExitOnError)
	dsn := fs.String("dsn", os.Getenv("STORAGE_DB_DATABASE_URI"), "database DSN, defaults to $STORAGE_DB_DATABASE_URI")
	email := fs.String("email", "", "email of the account to change")
	role := fs.String("role", "", "new role: user or admin")
	fs.Parse(args) //nolint:errcheck

	if *role != models.RoleUser && *role != models.RoleAdmin {
		return fmt.Errorf("unknown role %q", *role)
	}

	log := logger.NewLogger("catalogctl")
	storages, err := store.NewStorages(ctx, config.Storage{
		DB: config.DB{
			DSN:            *dsn,
			ConnectTimeout: commandTimeout,
			ConnectRetries: 3,
		},
	}, log)
	if err != nil {
		return fmt.Errorf("connect storage: %w", err)
	}
	defer storages.Close() //nolint:errcheck

	user, err := storages.UserRepository.FindUserByEmail(ctx, *email, false)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	if err := storages.UserRepository.UpdateUserRole(ctx, user.UserID, *role); err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	fmt.Printf("user %d (%s) is now %s\n", user.UserID, user.Email, *role)
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
