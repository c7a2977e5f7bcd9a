package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/addon/internal/app"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/ui/output"
	"go.trai.ch/addon/internal/ui/style"
)

// printer writes command results as aligned, optionally colored, plain text.
type printer struct {
	w    io.Writer
	name lipgloss.Style
	ok   lipgloss.Style
	fail lipgloss.Style
	warn lipgloss.Style
	dim  lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := output.Renderer(w)
	return &printer{
		w:    w,
		name: r.NewStyle().Bold(true).Foreground(style.Iris),
		ok:   r.NewStyle().Foreground(style.Green),
		fail: r.NewStyle().Foreground(style.Red),
		warn: r.NewStyle().Foreground(style.Yellow),
		dim:  r.NewStyle().Foreground(style.Slate),
	}
}

func (p *printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

// pad left-aligns s in a column of width w before styling, so escape codes
// never count towards the column.
func pad(s string, w int) string {
	return fmt.Sprintf("%-*s", w, s)
}

func (p *printer) list(res *app.ListResult) {
	if !res.Enabled {
		p.printf("%s addon mode is disabled\n", p.warn.Render(style.Disabled))
		return
	}

	for _, root := range res.Roots {
		p.printf("%s %s\n", p.dim.Render("root"), root)
	}
	if len(res.Packages) == 0 {
		p.printf("no addon packages found\n")
		return
	}

	nameW, versionW := 0, 0
	for _, st := range res.Packages {
		nameW = max(nameW, len(st.Name))
		versionW = max(versionW, len(st.Version))
	}

	for _, st := range res.Packages {
		if st.Missing {
			p.printf("%3s  %s  %s\n", p.warn.Render(style.Warning), p.name.Render(pad(st.Name, nameW)), p.warn.Render("not found"))
			continue
		}
		pos := "-"
		if st.Position >= 0 {
			pos = strconv.Itoa(st.Position + 1)
		}
		p.printf("%3s  %s  %s  %s\n", pos, p.name.Render(pad(st.Name, nameW)), pad(st.Version, versionW), p.dim.Render(st.Path))
	}
}

func (p *printer) load(res *app.LoadResult) {
	if res.HostResources > 0 {
		p.printf("%s host  %d resources\n", p.ok.Render(style.Loaded), res.HostResources)
	}

	addons := make(map[string]domain.LoadedAddon, len(res.Addons))
	for _, a := range res.Addons {
		addons[a.Name] = a
	}

	nameW := 0
	for _, name := range res.Loaded {
		nameW = max(nameW, len(name))
	}
	for _, f := range res.Failed {
		nameW = max(nameW, len(f.Name))
	}
	for _, name := range res.Skipped {
		nameW = max(nameW, len(name))
	}

	for _, name := range res.Loaded {
		a := addons[name]
		p.printf("%s %s  %d modules, %d resources\n",
			p.ok.Render(style.Loaded), p.name.Render(pad(name, nameW)), len(a.Data.Modules), len(a.Data.Resources))
	}
	for _, f := range res.Failed {
		p.printf("%s %s  %s\n", p.fail.Render(style.Failed), p.name.Render(pad(f.Name, nameW)), p.fail.Render(f.Kind))
	}
	for _, name := range res.Skipped {
		p.printf("%s %s  %s\n", p.dim.Render(style.Skipped), p.name.Render(pad(name, nameW)), p.dim.Render("not discovered"))
	}

	p.printf("%d loaded, %d failed, %d skipped\n", len(res.Loaded), len(res.Failed), len(res.Skipped))
}

func (p *printer) packed(name string, layers []app.PackedLayer) {
	if len(layers) == 0 {
		p.printf("nothing to pack in %s\n", name)
		return
	}
	for _, l := range layers {
		p.printf("%s %s  %d files -> %s\n", p.ok.Render(style.Check), l.Layer, l.Files, l.Archive)
	}
}
