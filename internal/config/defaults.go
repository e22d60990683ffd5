package config

import (
	_ "embed"
)

//go:embed defaults/lunafarm.yaml
var defaultYAML []byte

// Default returns the hardcoded fallback configuration, used if even the
// embedded YAML fails to parse.
func Default() Config {
	return Config{
		Sim: SimConfig{
			PickupDistance: 4,
			CropDistance:   2,
			IdleResetMs:    400,
		},
		Npc: NpcConfig{
			MoveWaitMs: 200,
			PauseMs:    2000,
		},
		Messages: DefaultMessages(),
	}
}

// DefaultMessages returns the stock narrative sequence: nine staged messages
// plus the completion banner.
func DefaultMessages() []string {
	return []string{
		"### Welcome to Luna!\nYou've chosen to farm. Feel free to get started.\nYou will find a shovel, watercan, and seed packet nearby.\nPress 'u' again to mark this message as read and proceed.",
		"### Keep up the good work.\nIf you water your crops,\nthey'll grow every day.",
		"New message...\n... > Hey babe! I'll be there soon!\nI can't wait to see your farm. And face. -K",
		"New message...\n... > Hey, I left you something.\nTry planting the seeds. -K",
		"### Unauthorized crops detected.\nCease illegal personal growth immediately,\nor face farming license revocation.",
		"New message...\n... > Aw, babe... you're actually growing them.\nRemember when we designed these crops together? -K",
		"### Crop authorization granted.\nApologies for our mistake, doctor.\nThe AI responsible has been sacked.",
		"New message...\n... > Okay, good news.\nDon't ask how, but... I'll be there tomorrow!\nGrow anything nice yet? -K",
		"Special message intercepted...\n... > Hey, it's June. I hope you liked the demo.\nLove, peace, and pleasant farming to all who play this.\nWhatever you're struggling with, I believe in you.\nKeep up the good fight and we'll get through this together!",
		"### Farming sequence completed. Have fun!",
	}
}
