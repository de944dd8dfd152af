package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"tifc"
)

// panelConfig is one panel entry of the optional layout file.
type panelConfig struct {
	Title  string `yaml:"title"`
	Align  string `yaml:"align"`
	Method string `yaml:"method"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type layoutConfig struct {
	Panels []panelConfig `yaml:"panels"`
}

var alignNames = map[string]tifc.Align{
	"center":     tifc.AlignCenter,
	"top":        tifc.AlignTop,
	"bottom":     tifc.AlignBot,
	"left":       tifc.AlignLeft,
	"right":      tifc.AlignRight,
	"top-center": tifc.AlignTop | tifc.AlignHCenter,
	"bot-center": tifc.AlignBot | tifc.AlignHCenter,
}

func (pc panelConfig) layout() (tifc.PanelLayout, error) {
	align, ok := alignNames[pc.Align]
	if !ok {
		return tifc.PanelLayout{}, fmt.Errorf("unknown align %q", pc.Align)
	}
	method := tifc.SizeFixed
	if pc.Method == "relative" {
		method = tifc.SizeRelative
	}
	return tifc.PanelLayout{
		Align:  align,
		Method: method,
		Size:   tifc.Position{X: pc.Width, Y: pc.Height},
	}, nil
}

func main() {
	var (
		logFile    string
		layoutFile string
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:          "tifc",
		Short:        "Panel composition demo for the tifc framework",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logFile, layoutFile, debug)
		},
	}
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
	rootCmd.Flags().StringVar(&layoutFile, "layout", "", "panel layout YAML file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(logFile, layoutFile string, debug bool) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("standard input is not a terminal")
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		tifc.SetLogger(logger)
	}

	ui, err := tifc.NewUI()
	if err != nil {
		return err
	}

	if layoutFile != "" {
		if err := buildFromConfig(ui, layoutFile); err != nil {
			return err
		}
	} else {
		buildDefault(ui)
	}

	return ui.Run()
}

// buildDefault assembles the stock demo: a view panel over a string list
// on top, a composite with a text field and two buttons at the bottom.
func buildDefault(ui *tifc.UI) {
	lines := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliett", "kilo", "lima",
		"mike", "november", "oscar", "papa",
	}

	rowStyle := tifc.NewStyle().Fg(7).Done()
	hoverStyle := tifc.NewStyle().Inverse().Done()

	viewRows := make([]tifc.TrackDef, 1)
	viewRows[0] = tifc.TrackDef{Size: 3, Count: 10}
	viewAreas := make([]tifc.AreaDef, 10)
	for i := range viewAreas {
		viewAreas[i] = tifc.AreaDef{
			Column: tifc.Span{Start: 0, End: 0},
			Row:    tifc.Span{Start: i, End: i},
		}
	}

	view := tifc.NewView(tifc.InteriorLayoutOpts{
		Columns:    1,
		Rows:       10,
		ColumnDefs: []tifc.TrackDef{{Size: 100, Method: tifc.SizeRelative}},
		RowDefs:    viewRows,
		Areas:      viewAreas,
		Padding:    tifc.BorderPadding,
	}, tifc.DataSource{
		Data: lines,
		Amount: func(data any) int {
			return len(data.([]string))
		},
		Render: func(d *tifc.Display, area tifc.Area, data any, limit, index int, hovered bool) {
			items := data.([]string)
			if index >= limit {
				return
			}
			style := rowStyle
			if hovered {
				style = hoverStyle
			}
			d.DrawStringAligned(items[index], area, style, tifc.TextAlignLeftMiddle)
		},
	})

	ui.AddPanel(tifc.PanelOpts{
		Title: "log",
		Layout: tifc.PanelLayout{
			Align:  tifc.AlignTop,
			Method: tifc.SizeRelative,
			Size:   tifc.Position{Y: 50},
		},
		Style:    tifc.NewStyle().Fg(6).Done(),
		Border:   tifc.BorderRounded,
		Interior: view,
	})

	buttonStyles := tifc.ButtonStyles{
		Idle:    tifc.NewStyle().Fg(7).Done(),
		Hovered: tifc.NewStyle().Bold().Done(),
		Pressed: tifc.NewStyle().Inverse().Done(),
		Border:  tifc.BorderSquare,
	}

	field := tifc.NewTextInput(tifc.InteriorLayoutOpts{
		Columns:    1,
		Rows:       1,
		ColumnDefs: []tifc.TrackDef{{Size: 100, Method: tifc.SizeRelative}},
		RowDefs:    []tifc.TrackDef{{Size: 100, Method: tifc.SizeRelative}},
		Areas: []tifc.AreaDef{{
			Column: tifc.Span{Start: 0, End: 0},
			Row:    tifc.Span{Start: 0, End: 0},
		}},
	}, tifc.TextInputAction{
		Submit: func(text string, data any) {
			slog.Info("submitted", "text", text)
		},
	}, tifc.DefaultTextInputStyles())

	okButton := tifc.NewButton(singleArea(), "ok", tifc.ButtonAction{
		Trigger: tifc.TriggerOnRelease,
		Do: func(data any) {
			slog.Info("ok pressed")
		},
	}, buttonStyles)

	cancelButton := tifc.NewButton(singleArea(), "cancel", tifc.ButtonAction{
		Trigger: tifc.TriggerOnPress,
		Do: func(data any) {
			slog.Info("cancel pressed")
		},
	}, buttonStyles)

	composite := tifc.NewComposite(tifc.InteriorLayoutOpts{
		Columns: 3,
		Rows:    1,
		ColumnDefs: []tifc.TrackDef{
			{Size: 50, Method: tifc.SizeRelative},
			{Size: 25, Method: tifc.SizeRelative, Count: 2},
		},
		RowDefs: []tifc.TrackDef{{Size: 100, Method: tifc.SizeRelative}},
		Areas: []tifc.AreaDef{
			{Column: tifc.Span{Start: 0, End: 0}, Row: tifc.Span{Start: 0, End: 0}},
			{Column: tifc.Span{Start: 1, End: 1}, Row: tifc.Span{Start: 0, End: 0}},
			{Column: tifc.Span{Start: 2, End: 2}, Row: tifc.Span{Start: 0, End: 0}},
		},
		Padding: tifc.BorderPadding,
	},
		tifc.ComponentDef{AreaIndex: 0, Interior: field},
		tifc.ComponentDef{AreaIndex: 1, Interior: okButton},
		tifc.ComponentDef{AreaIndex: 2, Interior: cancelButton},
	)

	ui.AddPanel(tifc.PanelOpts{
		Title: "controls",
		Layout: tifc.PanelLayout{
			Align:  tifc.AlignBot,
			Method: tifc.SizeRelative,
			Size:   tifc.Position{Y: 100},
		},
		Style:    tifc.NewStyle().Fg(3).Done(),
		Border:   tifc.BorderRounded,
		Interior: composite,
	})
}

// singleArea is a 1x1 grid filling the whole rectangle inside a border.
func singleArea() tifc.InteriorLayoutOpts {
	return tifc.InteriorLayoutOpts{
		Columns:    1,
		Rows:       1,
		ColumnDefs: []tifc.TrackDef{{Size: 100, Method: tifc.SizeRelative}},
		RowDefs:    []tifc.TrackDef{{Size: 100, Method: tifc.SizeRelative}},
		Areas: []tifc.AreaDef{{
			Column: tifc.Span{Start: 0, End: 0},
			Row:    tifc.Span{Start: 0, End: 0},
		}},
		Padding: tifc.BorderPadding,
	}
}

// buildFromConfig assembles empty titled panels from a YAML layout file.
func buildFromConfig(ui *tifc.UI, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read layout: %w", err)
	}
	var cfg layoutConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if len(cfg.Panels) == 0 {
		return fmt.Errorf("layout %s defines no panels", path)
	}

	style := tifc.NewStyle().Fg(7).Done()
	for _, pc := range cfg.Panels {
		layout, err := pc.layout()
		if err != nil {
			return fmt.Errorf("panel %q: %w", pc.Title, err)
		}
		ui.AddPanel(tifc.PanelOpts{
			Title:  pc.Title,
			Layout: layout,
			Style:  style,
			Border: tifc.BorderRounded,
		})
	}
	return nil
}
