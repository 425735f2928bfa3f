package main

import (
	"context"
	"log"
	"time"

	"github.com/BiniyamTG/Injera-Beyond/config"
	"github.com/BiniyamTG/Injera-Beyond/database"
	"github.com/BiniyamTG/Injera-Beyond/routes"
	"github.com/BiniyamTG/Injera-Beyond/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		db.Close(ctx)
	}()

	uploader, err := utils.NewS3Uploader(cfg)
	if err != nil {
		log.Fatalf("s3: %v", err)
	}
	mailer, err := utils.NewMailer(cfg)
	if err != nil {
		log.Fatalf("ses: %v", err)
	}

	r := routes.SetupRouter(cfg, db, uploader, mailer)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
