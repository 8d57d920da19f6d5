package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

//go:embed templates static
var assets embed.FS

const (
	StaticPrefix      = "/static"
	DefaultStylesheet = StaticPrefix + "/styles.css"
	LogoPath          = StaticPrefix + "/logo.svg"
)

type (
	// Screen is a page the navigator can switch to. Register hands every
	// screen the navigator before its first load.
	Screen interface {
		SetNavigator(n *Navigator)
		Load(c *fiber.Ctx) (any, error)
	}

	Options struct {
		Width     int
		Height    int
		Resizable bool
	}

	Navigator struct {
		width      int
		height     int
		resizable  bool
		stylesheet string
		logo       string
		files      fs.FS
		screens    map[string]Screen
	}

	page struct {
		Title       string
		Stylesheets []string
		Logo        string
		Style       template.CSS
		Data        any
	}
)

func NewNavigator(opts Options) *Navigator {
	return newNavigator(opts, assets)
}

func newNavigator(opts Options, files fs.FS) *Navigator {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	return &Navigator{
		width:      opts.Width,
		height:     opts.Height,
		resizable:  opts.Resizable,
		stylesheet: DefaultStylesheet,
		logo:       LogoPath,
		files:      files,
		screens:    make(map[string]Screen),
	}
}

// Register binds screen to viewPath and injects the navigator.
func (n *Navigator) Register(viewPath string, screen Screen) {
	screen.SetNavigator(n)
	n.screens[viewPath] = screen
}

func (n *Navigator) Has(viewPath string) bool {
	_, ok := n.screens[viewPath]
	return ok
}

// Static exposes the embedded stylesheets and images.
func (n *Navigator) Static() fs.FS {
	sub, err := fs.Sub(n.files, "static")
	if err != nil {
		return n.files
	}
	return sub
}

// Switch renders viewPath inside the shared layout: fixed size, default
// stylesheet plus the optional extra ones, and the logo in the top right
// corner. Every failure comes back as a *NavigationError.
func (n *Navigator) Switch(c *fiber.Ctx, viewPath, title string, stylesheets ...string) error {
	tmpl, err := n.parse(viewPath)
	if err != nil {
		return n.fail(viewPath, err)
	}

	var data any
	if screen, ok := n.screens[viewPath]; ok {
		data, err = screen.Load(c)
		if err != nil {
			return n.fail(viewPath, fmt.Errorf("load screen: %w", err))
		}
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "layout", page{
		Title:       title,
		Stylesheets: n.stylesheets(stylesheets),
		Logo:        n.logo,
		Style:       n.style(),
		Data:        data,
	})
	if err != nil {
		return n.fail(viewPath, fmt.Errorf("render: %w", err))
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (n *Navigator) parse(viewPath string) (*template.Template, error) {
	if viewPath == "" || strings.Contains(viewPath, "..") {
		return nil, fmt.Errorf("invalid view path %q", viewPath)
	}
	return template.ParseFS(n.files,
		"templates/layout.html",
		"templates/partials/*.html",
		path.Join("templates", viewPath),
	)
}

func (n *Navigator) stylesheets(extra []string) []string {
	sheets := []string{n.stylesheet}
	for _, s := range extra {
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, "/") && !strings.Contains(s, "://") {
			s = path.Join(StaticPrefix, s)
		}
		sheets = append(sheets, s)
	}
	return sheets
}

func (n *Navigator) style() template.CSS {
	resize := "none"
	if n.resizable {
		resize = "both"
	}
	return template.CSS(fmt.Sprintf("width:%dpx;height:%dpx;resize:%s;overflow:auto", n.width, n.height, resize))
}

func (n *Navigator) fail(viewPath string, err error) error {
	log.Errorw("failed to switch view", "view", viewPath, "error", err)
	return &NavigationError{View: viewPath, Err: err}
}
