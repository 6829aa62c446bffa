package main

import (
	"github.com/xpekfdls/yacht/core/internal/app"
	"github.com/xpekfdls/yacht/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
