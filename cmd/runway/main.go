package main

import (
	"errors"
	"io/fs"
	"os"

	"runway/internal/commands"
	"runway/internal/env"
	"runway/internal/fonts"
	"runway/internal/graphics"
	"runway/internal/logger"
	"runway/internal/terminal"
	"runway/internal/ui"
	"runway/internal/viewerconfig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// stylesheetPath optionally overrides the built-in overlay styles.
const stylesheetPath = "assets/ui/runway.css"

func main() {
	log := logger.New()
	if err := env.Load(".env"); err != nil {
		log.Log(err.Error())
	}
	prefs, err := viewerconfig.Load()
	if err != nil {
		log.Log(err.Error())
	}
	if err := prefs.ApplyEnv(os.Getenv); err != nil {
		log.Log(err.Error())
	}

	a := newApp(log, prefs)
	reg := commands.NewRegistry()
	commands.RegisterViewer(reg, a, log.Log)
	term := terminal.New(log, reg)

	engine := ui.New()
	if err := engine.LoadCSS(stylesheetPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Log(err.Error())
	}
	titles := ui.NewTitles()
	info := ui.NewInfoPanel()
	var nodes []*ui.Node
	fontsDone := false
	uiHeld := false // left button went down on the overlay

	update := func() {
		term.Update()
		input := !term.IsOpen()
		if input && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			uiHeld = info.HandleClick(rl.GetMousePosition(), &a.scn.Selection)
		}
		if uiHeld {
			input = false
			if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
				uiHeld = false
			}
		}
		a.scn.Update(input)
	}
	draw := func() {
		if !fontsDone {
			fontsDone = true
			if path, ok := fonts.Overlay(); ok {
				if err := engine.LoadFont(path); err == nil {
					term.SetFont(engine.Font())
					a.dbg.SetFont(engine.Font())
				}
			}
		}
		a.scn.Draw()
		nodes = titles.AppendNodes(nodes[:0])
		nodes = info.AppendNodes(nodes, &a.scn.Selection)
		engine.SetNodes(nodes)
		engine.Draw()
		term.Draw()
		a.dbg.Draw()
	}

	win := graphics.DefaultWindow("runway")
	win.Background = a.scn.Background
	graphics.Run(win, update, draw, a.scn.Unload)
}
