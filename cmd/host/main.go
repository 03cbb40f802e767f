package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/junsooki/AirTouch/internal/capture"
	"github.com/junsooki/AirTouch/internal/config"
	"github.com/junsooki/AirTouch/internal/encoder"
	"github.com/junsooki/AirTouch/internal/input"
	"github.com/junsooki/AirTouch/internal/peer"
	"github.com/junsooki/AirTouch/internal/permissions"
	"github.com/junsooki/AirTouch/internal/signaling"
	"github.com/junsooki/AirTouch/internal/transport"
)

func main() {
	cfg := config.ParseHostFlags()

	log.Printf("AirTouch Host starting")
	log.Printf("  Host ID:    %s", cfg.HostID)
	log.Printf("  Signaling:  %s", cfg.SignalingURL)
	log.Printf("  Display:    %d", cfg.DisplayIndex)
	log.Printf("  FPS:        %d", cfg.FPS)
	log.Printf("  Quality:    %d", cfg.Quality)

	if !permissions.HasScreenRecording() {
		log.Println("Screen Recording permission not granted. Requesting...")
		permissions.RequestScreenRecording()
		log.Fatal("Please grant Screen Recording permission in System Settings and restart.")
	}
	if !permissions.HasAccessibility() {
		log.Println("Accessibility permission not granted. Requesting...")
		permissions.RequestAccessibility()
		log.Fatal("Please grant Accessibility permission in System Settings and restart.")
	}

	cap, err := capture.New(cfg.DisplayIndex, cfg.FPS)
	if err != nil {
		log.Fatalf("capture init: %v", err)
	}

	enc := encoder.NewJPEGEncoder(cfg.Quality)

	injector, err := input.NewSystemInjector()
	if err != nil {
		log.Fatalf("injector init: %v", err)
	}

	// Mouse messages arrive normalized to 0-65535 per axis; the dispatcher
	// scales them onto the captured display.
	screenW, screenH := cap.Bounds()
	registry := input.NewDispatcher(injector, screenW, screenH)

	var hostPeer *peer.Host
	var stopStream chan struct{}
	var sig *signaling.Client

	sig = signaling.NewClient(cfg.SignalingURL, cfg.HostID, signaling.RoleHost, signaling.Handler{
		OnRegistered: func() {
			log.Println("Registered with signaling server")
		},
		OnOffer: func(from string, payload json.RawMessage) {
			log.Printf("Received offer from %s", from)
			var err error
			if hostPeer != nil {
				hostPeer.Close()
			}
			// Retire the previous session's frame pump so it stops draining
			// the shared capture channel.
			if stopStream != nil {
				close(stopStream)
				stopStream = nil
			}
			hostPeer, err = peer.NewHost(sig, nil)
			if err != nil {
				log.Printf("create host peer: %v", err)
				return
			}

			hostPeer.Transport().OnControl(func(data []byte) {
				input.HandleControl(registry, data)
			})

			if err := hostPeer.HandleOffer(from, payload); err != nil {
				log.Printf("handle offer: %v", err)
				return
			}

			stopStream = make(chan struct{})
			go streamFrames(stopStream, cap.Frames(), enc, hostPeer.Transport())
		},
		OnICECandidate: func(from string, payload json.RawMessage) {
			if hostPeer != nil {
				if err := hostPeer.HandleICECandidate(payload); err != nil {
					log.Printf("handle ICE candidate: %v", err)
				}
			}
		},
		OnError: func(msg string) {
			log.Printf("signaling error: %s", msg)
		},
	})

	if err := sig.Connect(); err != nil {
		log.Fatalf("signaling connect: %v", err)
	}
	defer sig.Close()

	if err := cap.Start(); err != nil {
		log.Fatalf("capture start: %v", err)
	}
	defer cap.Stop()

	log.Printf("Host ready. Share this ID with controllers: %s", cfg.HostID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	if hostPeer != nil {
		hostPeer.Close()
	}
}

// streamFrames pumps captured frames onto the transport until done closes
// or the capturer shuts down.
func streamFrames(done <-chan struct{}, frames <-chan *capture.Frame, enc *encoder.JPEGEncoder, t *transport.DataChannelTransport) {
	for {
		select {
		case <-done:
			return
		case frame, ok := <-frames:
			if !ok {
				return
			}
			data, err := enc.Encode(frame.Image)
			if err != nil {
				log.Printf("encode frame: %v", err)
				continue
			}
			if err := t.SendFrame(data); err != nil {
				continue
			}
		}
	}
}
