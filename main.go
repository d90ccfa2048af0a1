package main

import (
	"context"
	"log/slog"
	"time"

	"ledmode-go/services/config"
	"ledmode-go/services/hal"
	"ledmode-go/services/heartbeat"
	"ledmode-go/services/lighting"
	"ledmode-go/types"
	"ledmode-go/x/timex"
)

// device selects the embedded config; override with
// -ldflags "-X main.device=demo".
var device = "panel"

func main() {
	println("boot", device)

	cfg, err := config.Lookup(device)
	if err != nil {
		printErrForever("config: " + err.Error())
	}

	board, err := hal.Open(cfg)
	if err != nil {
		printErrForever("hal: " + err.Error())
	}

	logger := slog.New(slog.NewTextHandler(board.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	logger.Info("board up", "board", board.Name, "variant", cfg.Variant.String())

	var outs [types.NumChannels]lighting.Output
	for i, o := range board.Outputs {
		outs[i] = o
	}
	sleep := timex.Real{}

	ch := lighting.NewChannels(outs)
	store := lighting.NewStore(board.Store, cfg.StoreAddr, logger)
	modes := lighting.NewMachine(cfg, ch, store, sleep, board.Rand, logger)
	button := lighting.NewButton(board.Button, cfg.ButtonActiveHigh, cfg.Settle, sleep)
	hb := heartbeat.New(cfg.HeartbeatInterval, logger, time.Now)

	loop := lighting.NewLoop(button, modes, hb)
	if err := loop.Run(context.Background()); err != nil {
		logger.Error("main loop stopped", "err", err)
	}
}

// printErrForever prints msg once a second. It never returns, so a serial
// monitor attached late still sees why boot stopped.
func printErrForever(msg string) {
	for {
		println("Error:", msg)
		time.Sleep(time.Second)
	}
}
