package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/git-pranav2004/getdeal/catalog-service/src/chrome"
	"github.com/git-pranav2004/getdeal/catalog-service/src/models"
	"github.com/git-pranav2004/getdeal/common/apirequests"
	"github.com/git-pranav2004/getdeal/common/config"
)

const (
	FallbackMessage = "Unable to load products. Please check products.json"
	EmptyMessage    = "No products yet."

	NothingToCopyMessage = "No JSON data to copy!"
	CopiedNotice         = "📋 JSON copied to clipboard!"

	defaultTitle = "GetDeal"
)

var (
	fragmentTmpl = template.Must(template.New("fragments").Parse(fragmentTemplates))
	pageTmpl     = template.Must(template.Must(template.New("page").Parse(chrome.ScriptTemplates)).Parse(pageTemplate))
	adminTmpl    = template.Must(template.Must(template.New("admin").Parse(chrome.ScriptTemplates)).Parse(adminTemplate))
)

// Options configure a Renderer.
type Options struct {
	Title         string
	SkeletonCount int
	TiltStrength  float64
	Bindings      Bindings
	Chrome        chrome.Settings
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		Title:         defaultTitle,
		SkeletonCount: cfg.SkeletonCount,
		TiltStrength:  cfg.TiltStrength,
		Bindings:      DefaultBindings(),
		Chrome:        chrome.NewSettings(cfg),
	}
}

// PageData is the per-request part of the catalog page.
type PageData struct {
	Theme      chrome.Theme
	Categories []string
}

// AdminData is the per-request part of the admin page.
type AdminData struct {
	Theme     chrome.Theme
	Publisher string
	Output    string
	Notice    string
	Error     string
	Form      apirequests.AddProductRequest
}

type pageView struct {
	PageData
	Title        string
	Skeletons    template.HTML
	TiltStrength float64
	Bindings     Bindings
	Chrome       chrome.Settings
}

type adminView struct {
	AdminData
	Title         string
	NothingToCopy string
	CopiedNotice  string
	Bindings      Bindings
	Chrome        chrome.Settings
}

// Renderer produces the catalog fragments and pages. Interpolated product
// text is escaped by html/template and unsafe URL schemes are neutralised.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	if opts.Title == "" {
		opts.Title = defaultTitle
	}
	if opts.SkeletonCount < 0 {
		opts.SkeletonCount = 0
	}
	return &Renderer{opts: opts}
}

func (r *Renderer) Bindings() Bindings {
	return r.opts.Bindings
}

// Cards renders one card per product in input order, or the empty-state
// message when there are none.
func (r *Renderer) Cards(products []models.Product) (template.HTML, error) {
	if len(products) == 0 {
		return r.Message(EmptyMessage), nil
	}
	return executeFragment("cards", products)
}

// Fallback is the fragment shown when loading fails.
func (r *Renderer) Fallback() template.HTML {
	return r.Message(FallbackMessage)
}

func (r *Renderer) Message(msg string) template.HTML {
	html, err := executeFragment("message", msg)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(msg))
	}
	return html
}

// Skeletons renders count loading placeholders.
func (r *Renderer) Skeletons(count int) (template.HTML, error) {
	if count < 0 {
		count = 0
	}
	return executeFragment("skeletons", make([]struct{}, count))
}

// Page writes the catalog page with the configured number of skeletons in
// the product section.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	skeletons, err := r.Skeletons(r.opts.SkeletonCount)
	if err != nil {
		return err
	}
	return pageTmpl.Execute(w, pageView{
		PageData:     data,
		Title:        r.opts.Title,
		Skeletons:    skeletons,
		TiltStrength: r.opts.TiltStrength,
		Bindings:     r.opts.Bindings,
		Chrome:       r.opts.Chrome,
	})
}

func (r *Renderer) Admin(w io.Writer, data AdminData) error {
	return adminTmpl.Execute(w, adminView{
		AdminData:     data,
		Title:         r.opts.Title,
		NothingToCopy: NothingToCopyMessage,
		CopiedNotice:  CopiedNotice,
		Bindings:      r.opts.Bindings,
		Chrome:        r.opts.Chrome,
	})
}

func executeFragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fragmentTmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
