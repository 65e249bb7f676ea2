package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Parse command line flags
	addr := flag.String("addr", cfg.ServerAddress, "Address to serve on")
	scenesDir := flag.String("scenes", cfg.ScenesDir, "Directory of JSON scene files")
	flag.Parse()
	cfg.ServerAddress = *addr
	cfg.ScenesDir = *scenesDir

	logger := log.New(os.Stdout, "", log.LstdFlags)

	var publisher *output.Publisher
	if cfg.S3.Enabled() {
		publisher, err = output.NewS3Publisher(cfg.S3, logger)
		if err != nil {
			log.Fatalf("Failed to create S3 publisher: %v", err)
		}
		log.Printf("Publishing renders to bucket %s", cfg.S3.Bucket)
	}

	// Create and start web server
	webServer := server.NewServer(cfg, publisher, logger)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Try http://localhost%s/api/render?scene=default", cfg.ServerAddress)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
