// Command stubserver runs the in-memory scoring backend on a local port,
// for developing against the CLI without the hosted service.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/verilearn/verilearn/tests/stubapi"
)

func main() {
	var addr string
	flag.StringVar(&addr, "addr", ":10000", "listen address")
	flag.Parse()

	logger := log.New(os.Stdout, "STUB : ", log.LstdFlags|log.Lmicroseconds)
	logger.Printf("serving stub API on %s", addr)

	srv := stubapi.NewServer(&stubapi.Options{Address: addr})
	srv.Start()
}
