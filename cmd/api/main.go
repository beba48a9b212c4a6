package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/suyeon1218/invoice-dashboard-backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	a := app.New()
	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
