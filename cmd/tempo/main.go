package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mytempo/tempo"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("github.com/mytempo/tempo")
}

func main() {
	var (
		themeName       string
		widthFlag       int
		speedFlag       int
		settingsPath    string
		listThemes      bool
		outPath         string
		boring          bool
		keepFrontMatter bool
	)

	flags := pflag.NewFlagSet("tempo", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.IntVarP(&speedFlag, "speed", "s", -1, "Scroll speed 1-5, 0 renders without pacing (default: saved setting)")
	flags.StringVar(&settingsPath, "settings", tempo.DefaultSettingsFile, "Settings file")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVar(&keepFrontMatter, "keep-front-matter", false, "Render front matter instead of stripping it")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: tempo [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		for _, name := range tempo.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	settings, err := tempo.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
	}

	theme, ok := tempo.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		for _, name := range tempo.AvailableThemes() {
			fmt.Fprintln(os.Stderr, name)
		}
		os.Exit(2)
	}
	if boring {
		theme = tempo.NewTheme("boring", tempo.Styles{}, tempo.Fonts{}, tempo.Colors{})
	}

	args := flags.Args()
	content, name, err := readInputs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}

	title := name
	if !keepFrontMatter {
		var meta tempo.DocumentMeta
		meta, content = tempo.StripFrontMatter(content)
		if meta.Title != "" {
			title = meta.Title
		}
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	speed, err := resolveSpeed(speedFlag, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --speed: %v\n", err)
		os.Exit(2)
	}
	if speedFlag >= 1 && settings.SpeedIndex != speedFlag-1 {
		settings.SpeedIndex = speedFlag - 1
		if err := settings.Save(settingsPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	width := resolveWidth(widthFlag)
	paced := speed > 0 && outPath == "" && isTerminal(writer)

	if paced && !boring {
		setTerminalTitle(writer, fmt.Sprintf("Tempo - %s - Speed: %dx", title, speed))
	}

	if paced {
		err = tempo.Prompt(tempo.PromptRequest{
			Content:    content,
			Writer:     writer,
			Width:      width,
			Theme:      theme,
			SpeedIndex: speed - 1,
		})
	} else {
		err = tempo.Render(tempo.RenderRequest{
			Content: content,
			Writer:  writer,
			Width:   width,
			Theme:   theme,
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

// readInputs loads and concatenates the named files, or stdin when none
// are given. The returned name labels the document for the title bar.
func readInputs(args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		content, err := tempo.DecodeDocument(data)
		return content, "stdin", err
	}
	var parts []string
	for _, arg := range args {
		content, err := tempo.ReadDocument(normalizePath(arg))
		if err != nil {
			return "", "", err
		}
		parts = append(parts, content)
	}
	return strings.Join(parts, "\n"), filepath.Base(args[0]), nil
}

// resolveSpeed picks the scroll multiplier: the flag when given (0 means
// unpaced), the saved setting otherwise.
func resolveSpeed(flag int, settings tempo.Settings) (int, error) {
	if flag < 0 {
		return tempo.SpeedMultiplier(settings.SpeedIndex), nil
	}
	if flag == 0 {
		return 0, nil
	}
	if flag > len(tempo.ScrollSpeeds) {
		return 0, fmt.Errorf("expected 0-%d, got %d", len(tempo.ScrollSpeeds), flag)
	}
	return flag, nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := parseColumns(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func parseColumns(value string) (int, error) {
	var n int
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, fmt.Errorf("invalid int")
		}
		n = n*10 + int(value[i]-'0')
	}
	return n, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// setTerminalTitle is the terminal analogue of the desktop viewer's
// title bar: document name and active speed.
func setTerminalTitle(w io.Writer, title string) {
	fmt.Fprintf(w, "\x1b]0;%s\x07", title)
}
