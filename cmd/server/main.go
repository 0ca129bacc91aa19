package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/marketadmin/internal/server"
	"github.com/dmitrijs2005/marketadmin/internal/server/auth"
	"github.com/dmitrijs2005/marketadmin/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.PrintToken {
		token, err := auth.GenerateToken("admin", []byte(cfg.JWTSecret), cfg.TokenValidity)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(token)
		return
	}

	app, err := server.NewApp(ctx, cfg, os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
