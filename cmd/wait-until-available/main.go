package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"gitlab.com/dirk.krummacker/contacts-assistant/internal/config"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/logger"
)

// pollInterval is the time between two attempts to reach the service.
const pollInterval = 5 * time.Second

// Usage example on the command line:
// > PORT=8080 go run main.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	url := fmt.Sprintf("http://localhost:%d/contacts", cfg.Port)
	totalWaitTime := 0 * time.Second
	for {
		res, err := http.Get(url)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				log.Info("contacts assistant is available", "url", url, "waited", totalWaitTime)
				break
			}
			log.Warn("contacts assistant not ready", "url", url, "status", res.StatusCode)
		} else {
			log.Warn("contacts assistant not reachable", "url", url, "error", err)
		}
		totalWaitTime += pollInterval
		log.Info("waiting", "total", totalWaitTime)
		time.Sleep(pollInterval)
	}
}
