package folio

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// pathClass groups request paths that share compression, redirect and
// caching behavior.
type pathClass int

const (
	classPage   pathClass = iota // HTML pages under / and /blog/
	classAsset                   // /public/ files and /img/ thumbnails
	classFeed                    // feed.xml, sitemap.xml, robots.txt
	classAPI                     // /api/ JSON
)

var feedPaths = map[string]bool{
	"/feed.xml":    true,
	"/sitemap.xml": true,
	"/robots.txt":  true,
}

func classify(p string) pathClass {
	switch {
	case p == "/public" || strings.HasPrefix(p, "/public/") || strings.HasPrefix(p, "/img/"):
		return classAsset
	case feedPaths[p]:
		return classFeed
	case strings.HasPrefix(p, "/api/"):
		return classAPI
	}
	return classPage
}

// cachePolicy maps each class to its Cache-Control value. Thumbnails and
// embedded assets never change under a URL; the stats endpoint follows
// the landing page's refresh rhythm.
var cachePolicy = map[pathClass]string{
	classPage:  "public, max-age=3600",
	classAsset: "public, max-age=31536000, immutable",
	classFeed:  "public, max-age=86400",
	classAPI:   "public, max-age=300",
}

// contentSecurityPolicy allows the gradient script from /public and the
// inline styles chroma emits for highlighted code.
const contentSecurityPolicy = "default-src 'self'; script-src 'self'; " +
	"style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; " +
	"font-src 'self'; connect-src 'self'"

func requestClass(c echo.Context) pathClass {
	return classify(c.Request().URL.Path)
}

func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)
	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())

	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogStatus:    true,
			LogURI:       true,
			LogMethod:    true,
			LogLatency:   true,
			LogRequestID: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				c.Logger().Infof("%s %s -> %d (%s) id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
				return nil
			},
		}),
		middleware.Recover(),
		// Images are already compressed.
		middleware.GzipWithConfig(middleware.GzipConfig{
			Level:   5,
			Skipper: func(c echo.Context) bool { return requestClass(c) == classAsset },
		}),
		middleware.SecureWithConfig(middleware.SecureConfig{
			XSSProtection:         "1; mode=block",
			ContentTypeNosniff:    "nosniff",
			XFrameOptions:         "DENY",
			ReferrerPolicy:        "strict-origin-when-cross-origin",
			ContentSecurityPolicy: contentSecurityPolicy,
			HSTSMaxAge:            31536000,
		}),
		// Only pages are canonicalized to a trailing slash.
		middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
			RedirectCode: http.StatusMovedPermanently,
			Skipper:      func(c echo.Context) bool { return requestClass(c) != classPage },
		}),
		cacheControl,
	)
}

func cacheControl(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", cachePolicy[requestClass(c)])
		return next(c)
	}
}
