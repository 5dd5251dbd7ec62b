// Command descriptor prints the 128 value face descriptor of image files.
//
//	descriptor [-enroll] [-timeout 10s] photo.jpg [photo2.png ...]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"certverify.io/infrastructure/biometric"
	"certverify.io/infrastructure/logger"
)

type result struct {
	File       string    `json:"file"`
	Descriptor []float64 `json:"descriptor,omitempty"`
	Neutral    bool      `json:"neutral"`
	Error      string    `json:"error,omitempty"`
}

func main() {
	enroll := flag.Bool("enroll", false, "refuse captures that produce the neutral descriptor")
	timeout := flag.Duration("timeout", 10*time.Second, "per image capture timeout")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: descriptor [-enroll] [-timeout 10s] image...")
		os.Exit(2)
	}

	logger.InitializeLogger()
	defer logger.Sync()

	capture := biometric.Capture
	if *enroll {
		capture = biometric.CaptureForEnrollment
	}

	failed := false
	encoder := json.NewEncoder(os.Stdout)
	for _, path := range flag.Args() {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		descriptor, err := capture(ctx, biometric.NewFileSource(path))
		cancel()

		out := result{File: path}
		if err != nil {
			failed = true
			out.Error = err.Error()
			logger.Warning("capture failed", logger.LoggerOptions{Key: "file", Data: path}, logger.LoggerOptions{Key: "error", Data: err})
		} else {
			out.Descriptor = descriptor.Vector()
			out.Neutral = biometric.IsNeutral(descriptor)
		}
		if err := encoder.Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if failed {
		os.Exit(1)
	}
}
