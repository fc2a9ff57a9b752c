package session

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variants returns the built-in variants with geometry from cfg.
func Variants(cfg config.Config) []Variant {
	return []Variant{
		{
			ID:    "classic",
			Title: "Snake",
			Rules: snake.ClassicRules(cfg.Board.Classic),
			Style: StyleClassic,
		},
		{
			ID:    "pro",
			Title: "Snake Pro",
			Rules: snake.ProRules(cfg.Board.Pro),
			Style: StylePro,
		},
	}
}

// Lookup returns the built-in variant with the given ID.
func Lookup(id string, cfg config.Config) (Variant, bool) {
	for _, v := range Variants(cfg) {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

func init() {
	for _, v := range Variants(config.Default()) {
		id := v.ID
		registry.Register(id, v.Title, func(env registry.Env) registry.Game {
			variant, _ := Lookup(id, env.Config)
			return New(variant, env)
		})
	}
}
