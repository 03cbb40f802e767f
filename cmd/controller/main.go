package main

import (
	"encoding/json"
	"log"

	"github.com/pion/webrtc/v4"

	"github.com/junsooki/AirTouch/internal/config"
	"github.com/junsooki/AirTouch/internal/coords"
	"github.com/junsooki/AirTouch/internal/decoder"
	"github.com/junsooki/AirTouch/internal/display"
	"github.com/junsooki/AirTouch/internal/peer"
	"github.com/junsooki/AirTouch/internal/protocol"
	"github.com/junsooki/AirTouch/internal/signaling"
	"github.com/junsooki/AirTouch/internal/surface"
	"github.com/junsooki/AirTouch/internal/touch"
)

func main() {
	cfg := config.ParseControllerFlags()

	if cfg.HostID == "" {
		log.Fatal("Usage: airtouch-controller -signaling <url> -host <host-id>")
	}

	log.Printf("AirTouch Controller starting")
	log.Printf("  Controller ID: %s", cfg.ControllerID)
	log.Printf("  Signaling:     %s", cfg.SignalingURL)
	log.Printf("  Target host:   %s", cfg.HostID)

	dec := decoder.NewJPEGDecoder()
	viewport := surface.NewViewport()
	quantizer := coords.NewQuantizer(0, 0)
	disp := display.NewEbitenDisplay(viewport, quantizer, cfg.ShowPointer)

	// The peer is created before the signaling goroutines start, so every
	// closure below sees it fully constructed.
	var ctrlPeer *peer.Controller
	var emulator *touch.Emulator

	sig := signaling.NewClient(cfg.SignalingURL, cfg.ControllerID, signaling.RoleController, signaling.Handler{
		OnRegistered: func() {
			log.Println("Registered with signaling server")
			if err := ctrlPeer.Connect(); err != nil {
				log.Printf("controller connect: %v", err)
			}
		},
		OnAnswer: func(from string, payload json.RawMessage) {
			if err := ctrlPeer.HandleAnswer(payload); err != nil {
				log.Printf("handle answer: %v", err)
			}
		},
		OnICECandidate: func(from string, payload json.RawMessage) {
			if err := ctrlPeer.HandleICECandidate(payload); err != nil {
				log.Printf("handle ICE candidate: %v", err)
			}
		},
		OnError: func(msg string) {
			log.Printf("signaling error: %s", msg)
		},
	})

	var err error
	ctrlPeer, err = peer.NewController(sig, cfg.HostID, func(state webrtc.PeerConnectionState) {
		switch state {
		case webrtc.PeerConnectionStateDisconnected,
			webrtc.PeerConnectionStateFailed,
			webrtc.PeerConnectionStateClosed:
			// A finger mid-drag never sees its touch-end reach the host;
			// drop the tracked state so reconnects start clean.
			emulator.Reset()
		}
	})
	if err != nil {
		log.Fatalf("create controller peer: %v", err)
	}

	ctrlPeer.Transport().OnFrame(func(data []byte) {
		img, err := dec.Decode(data)
		if err != nil {
			return
		}
		disp.SetFrame(img)
	})

	// Outbound mouse messages: each name encodes its payload and sends it on
	// the control channel.
	registry := protocol.NewRegistry()
	for _, name := range []string{protocol.MouseDown, protocol.MouseUp, protocol.MouseMove} {
		registry.Register(name, func(args []int32) {
			data, err := protocol.Encode(name, args)
			if err != nil {
				log.Printf("encode %s: %v", name, err)
				return
			}
			if err := ctrlPeer.Transport().SendControl(data); err != nil {
				log.Printf("send %s: %v", name, err)
			}
		})
	}

	emulator = touch.NewEmulator(disp.Source(), viewport, quantizer, registry, surface.Dispatcher{})
	disp.OnBoundsChange(emulator.SetVideoBounds)
	emulator.Start()
	defer emulator.Stop()

	if err := sig.Connect(); err != nil {
		log.Fatalf("signaling connect: %v", err)
	}
	defer sig.Close()

	// Ebitengine RunGame must be on the main goroutine (macOS requirement).
	if err := disp.Run(); err != nil {
		log.Fatalf("display: %v", err)
	}

	ctrlPeer.Close()
}
