package main

import (
	"image"
	"math/rand/v2"
	"time"

	"social-landing/internal/debug"
	"social-landing/internal/engineconfig"
	"social-landing/internal/env"
	"social-landing/internal/fonts"
	"social-landing/internal/graphics"
	"social-landing/internal/interaction"
	"social-landing/internal/labeltex"
	"social-landing/internal/logger"
	"social-landing/internal/raycast"
	"social-landing/internal/scene"
	"social-landing/internal/socials"

	"golang.org/x/image/font/opentype"
)

func main() {
	log := logger.New(logger.DefaultPath)

	if keys, err := env.Load(env.DefaultPath); err != nil {
		log.Logf("env: %v", err)
	} else if len(keys) > 0 {
		log.Logf("env: loaded %v", keys)
	}
	prefs, err := engineconfig.Load(engineconfig.DefaultPath)
	if err != nil {
		log.Logf("prefs: %v (using defaults)", err)
	}
	if prefs, err = prefs.ApplyEnv(); err != nil {
		log.Logf("prefs: %v", err)
	}
	links, err := socials.Load(prefs.SocialsPath)
	if err != nil {
		log.Logf("socials: %v (using built-in links)", err)
	}

	seed := prefs.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	labelOpts := labeltex.DefaultOptions()
	if prefs.LabelFont != "" {
		labelOpts.Font = loadLabelFont(prefs.LabelFont, log)
	}
	scn := scene.Build(links, scene.BuildOptions{
		StarCount:  prefs.StarCount,
		StarSpread: prefs.StarSpread,
		Rand:       rand.New(rand.NewPCG(seed, seed>>1)),
		Labeler:    func(text string) *image.RGBA { return labeltex.Render(text, labelOpts) },
	})
	log.Logf("scene: %d links, %d stars, seed %d", len(scn.Objects), len(scn.Decorations), seed)

	opts := graphics.Options{
		Title:      "Shenanigans3D",
		Fullscreen: prefs.Fullscreen,
		TargetFPS:  prefs.TargetFPS,
	}
	graphics.Run(opts, func(width, height int) graphics.Handlers {
		cam := scene.NewCamera(width, height)
		renderer := graphics.NewRenderer(width, height)
		ctrl := interaction.New(cam, raycast.New(scn), graphics.Browser{}, graphics.SystemCursor{}, log)
		ctrl.SetSurface(renderer)
		dbg := debug.New(prefs.ShowFPS, prefs.ShowMemAlloc)

		return graphics.Handlers{
			Resize:      ctrl.Resize,
			PointerMove: ctrl.PointerMove,
			Click:       func() { ctrl.Click() },
			Frame: func() {
				scn.Advance()
				renderer.Render(scn, cam)
			},
			Overlay: func() {
				if !dbg.Enabled() {
					return
				}
				st := debug.Stats{}
				st.PixelWidth, st.PixelHeight = renderer.PixelSize()
				if h := ctrl.Hovered(); h != nil {
					st.Hovered = h.Payload.Name
				}
				dbg.Draw(st)
			},
			Hover: ctrl.UpdateHover,
			Close: renderer.Unload,
		}
	})
}

// loadLabelFont resolves name under assets/fonts. Any failure is logged and yields nil (Go Bold).
func loadLabelFont(name string, log *logger.Logger) *opentype.Font {
	path, err := fonts.Find(name)
	if err != nil {
		log.Logf("label font %q: not found under %v", name, fonts.BaseDirs())
		return nil
	}
	f, err := labeltex.LoadFont(path)
	if err != nil {
		log.Logf("label font: %v", err)
		return nil
	}
	log.Logf("label font: %s", path)
	return f
}
