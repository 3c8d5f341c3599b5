package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"stadium-admin/internal/config"
	"stadium-admin/internal/infrastructure/identity"
	"stadium-admin/internal/infrastructure/objstore"
	"stadium-admin/internal/infrastructure/repo"
	"stadium-admin/internal/infrastructure/selection"
	"stadium-admin/internal/logging"
	"stadium-admin/internal/server"
	"stadium-admin/internal/usecase"
)

func main() {
	_ = godotenv.Load(".env", ".env.local")

	configPath := os.Getenv("STADIUM_CONFIG")
	if configPath == "" {
		configPath = "stadium.yaml"
	}
	cfg, err := config.FromFile(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	// Flags override both env and file values.
	env := flag.String("env", cfg.Env, "")
	port := flag.Int("port", cfg.Port, "")
	assets := flag.String("assets", cfg.AssetsDir, "")
	sessions := flag.String("sessions", cfg.SessionsDir, "")
	jwtSecret := flag.String("jwt-secret", cfg.JWTSecret, "")
	logJSON := flag.Bool("log-json", cfg.LogJSON, "")
	flag.Parse()

	cfg.Env = *env
	cfg.Port = *port
	cfg.AssetsDir = *assets
	cfg.SessionsDir = *sessions
	cfg.JWTSecret = *jwtSecret
	cfg.LogJSON = *logJSON

	ensureDir(cfg.AssetsDir)
	ensureDir(cfg.SessionsDir)

	log := logging.New(cfg.LogJSON, slog.LevelInfo)

	var (
		orderRepo   usecase.OrderRepo
		stadiumRepo usecase.StadiumRepo
		shopRepo    usecase.ShopRepo
		menuRepo    usecase.MenuRepo
		userRepo    usecase.UserRepo
	)
	if cfg.DatabaseDSN != "" {
		pg, err := repo.NewPostgresRepo(cfg.DatabaseDSN)
		if err != nil {
			log.Error("postgres init failed", "err", err)
			os.Exit(1)
		}
		orderRepo, stadiumRepo, shopRepo, menuRepo, userRepo = pg, pg, pg, pg, pg
	} else {
		log.Warn("no database DSN configured, using in-memory stores")
		orderRepo = repo.NewMemoryOrderRepo()
		stadiumRepo = repo.NewMemoryStadiumRepo()
		shopRepo = repo.NewMemoryShopRepo()
		menuRepo = repo.NewMemoryMenuRepo()
		userRepo = repo.NewMemoryUserRepo()
	}

	var gateway usecase.IdentityGateway
	if cfg.IdentityURL != "" {
		gateway = &identity.Client{BaseURL: cfg.IdentityURL, APIKey: cfg.IdentityKey}
	} else {
		log.Warn("no identity provider configured, using local accounts")
		gateway = identity.NewLocal()
	}

	objects := objstore.NewFSStore(cfg.AssetsDir, cfg.PublicBaseURL)

	deps := server.Deps{
		Auth: &usecase.AuthService{
			Repo:             userRepo,
			Identity:         gateway,
			JWTSecret:        cfg.JWTSecret,
			RegistrationCode: cfg.RegistrationCode,
		},
		Orders:   usecase.NewOrderService(orderRepo, shopRepo),
		Stadiums: &usecase.StadiumService{Repo: stadiumRepo},
		Shops: &usecase.ShopService{
			Repo:     shopRepo,
			Stadiums: stadiumRepo,
			Objects:  objects,
		},
		Menu: &usecase.MenuService{Repo: menuRepo, Shops: shopRepo},
		Selection: &usecase.SelectionService{
			Store: selection.NewFSStore(cfg.SessionsDir),
		},
		Objects: objects,
	}

	srv := server.New(cfg, log, deps)
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("listening", "addr", addr, "env", cfg.Env)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func ensureDir(p string) {
	if p == "" {
		return
	}
	if _, err := os.Stat(p); os.IsNotExist(err) {
		_ = os.MkdirAll(p, 0o755)
	}
}
