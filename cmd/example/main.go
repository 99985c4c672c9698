package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/osmike/memofn"
)

// handler formats log messages and writes them to stdout.
type handler struct{}

// HandleLog implements the log.Handler interface.
func (h *handler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	fmt.Fprintf(os.Stdout, "%s %.1s %s\n", timestamp, level, e.Message)
	return nil
}

func main() {
	log.SetHandler(&handler{})
	log.SetLevelFromString("debug")

	hooks := &memofn.Hooks{
		OnHit: func(key string) error {
			log.Debugf("cache hit for %q", key)
			return nil
		},
		OnMiss: func(key string) error {
			log.Debugf("cache miss for %q", key)
			return nil
		},
		OnEvict: func(key string) error {
			log.Debugf("evicted %q", key)
			return nil
		},
		LogError: func(err error) {
			log.Errorf("hook failure: %v", err)
		},
	}

	invoke, memory := memofn.NewMemoizedFunction(heavyComputation, &memofn.Config{
		TTL: time.Minute,
	}, hooks)

	log.Info("starting heavy computation...")
	res, err := invoke("report", 2000*time.Millisecond)
	if err != nil {
		log.Errorf("error: %v", err)
		return
	}
	log.Infof("heavy computation completed, result - %s", res)

	log.Info("starting cached heavy computation...")
	res, err = invoke("report", 2000*time.Millisecond)
	if err != nil {
		log.Errorf("error: %v", err)
		return
	}
	log.Infof("heavy computation completed, result cached - %s", res)

	// Hand the warmed cache to a fresh wrapper.
	invoke2, memory2 := memofn.NewMemoizedFunction(heavyComputation, nil, hooks)
	memory2.Import(memory.Export())

	log.Info("invoking second wrapper with imported memory...")
	res, err = invoke2("report", 2000*time.Millisecond)
	if err != nil {
		log.Errorf("error: %v", err)
		return
	}
	log.Infof("second wrapper answered from imported memory - %s", res)
}

func heavyComputation(t time.Duration) (string, error) {
	time.Sleep(t)
	return "cached value", nil
}
