package app

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/xpekfdls/yacht/core/internal/config"
	http_init "github.com/xpekfdls/yacht/core/internal/delivery/http/init"
	http_match "github.com/xpekfdls/yacht/core/internal/delivery/http/match"
	ws_match "github.com/xpekfdls/yacht/core/internal/delivery/ws/match"
	"github.com/xpekfdls/yacht/core/internal/infra/registry"
	"github.com/xpekfdls/yacht/core/internal/service/dice"
	usecase_match "github.com/xpekfdls/yacht/core/internal/usecase/match"
)

func Go(cfg *config.Config) {
	roller := dice.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	rooms := registry.New()

	hub := ws_match.NewHub(slog.Default())
	go hub.Run()

	matchUC := usecase_match.New(rooms, roller, hub, cfg.Room.CodeLength)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_match.New(matchUC))
	controllerPool.Add(ws_match.NewController(hub, matchUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
