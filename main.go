// file: main.go
package main

import (
	"SponsorPortal/database"
	"SponsorPortal/routes"
	"SponsorPortal/services"
	"log"
	"os"
)

func main() {
	database.Connect()
	database.InitRedis()
	database.MigrateTables()
	database.EnsureDefaultAdmin()
	services.InitNotifier()
	defer services.CloseNotifier()

	r := routes.SetupRouter()

	addr := os.Getenv("PORTAL_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
