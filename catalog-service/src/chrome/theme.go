package chrome

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/git-pranav2004/getdeal/common/config"
)

// Theme is the persisted colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const (
	// CookieName keeps the storage key the browser build used.
	CookieName = "gd-theme"
	// ColorSchemeHint is the client hint carrying the OS colour preference.
	ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

	cookieMaxAge = 365 * 24 * time.Hour
)

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	default:
		return "", false
	}
}

// Resolve picks the stored theme, then the client hint, then fallback.
func Resolve(stored, hint string, fallback Theme) Theme {
	if t, ok := ParseTheme(stored); ok {
		return t
	}
	if t, ok := ParseTheme(hint); ok {
		return t
	}
	if t, ok := ParseTheme(string(fallback)); ok {
		return t
	}
	return ThemeLight
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Icon is the toggle indicator: a sun while dark, a moon while light.
func (t Theme) Icon() string {
	if t == ThemeDark {
		return "☀️"
	}
	return "🌙"
}

// BodyClass is the class applied to <body>.
func (t Theme) BodyClass() string {
	if t == ThemeDark {
		return "theme-dark"
	}
	return ""
}

// Settings are the chrome parameters rendered into the page scripts.
type Settings struct {
	DefaultTheme    Theme
	FadeThreshold   float64
	ScrollThreshold int
}

func NewSettings(cfg *config.Config) Settings {
	def, ok := ParseTheme(cfg.DefaultTheme)
	if !ok {
		def = ThemeLight
	}
	return Settings{
		DefaultTheme:    def,
		FadeThreshold:   cfg.FadeThreshold,
		ScrollThreshold: cfg.ScrollThreshold,
	}
}

// Controller reads and persists the theme on the request cookie.
type Controller struct {
	settings Settings
}

func NewController(settings Settings) *Controller {
	return &Controller{settings: settings}
}

func (c *Controller) Settings() Settings {
	return c.settings
}

// Current resolves the theme for the request and advertises the colour scheme hint.
func (c *Controller) Current(ctx *fiber.Ctx) Theme {
	ctx.Set("Accept-CH", ColorSchemeHint)
	ctx.Vary(ColorSchemeHint)
	return Resolve(ctx.Cookies(CookieName), ctx.Get(ColorSchemeHint), c.settings.DefaultTheme)
}

// Toggle flips the current theme and persists the result.
func (c *Controller) Toggle(ctx *fiber.Ctx) Theme {
	next := Resolve(ctx.Cookies(CookieName), ctx.Get(ColorSchemeHint), c.settings.DefaultTheme).Toggle()
	c.Persist(ctx, next)
	return next
}

func (c *Controller) Persist(ctx *fiber.Ctx, t Theme) {
	ctx.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    string(t),
		Path:     "/",
		Expires:  time.Now().Add(cookieMaxAge),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
