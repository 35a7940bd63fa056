package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"weddingapi/internal/http/handlers"
	"weddingapi/internal/middleware"
)

// Options configures the router surface.
type Options struct {
	CORSOrigins []string
	Logger      zerolog.Logger
}

// NewRouter assembles the public and admin route tree.
func NewRouter(app *handlers.App, opts Options) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(middleware.I18N("pt"))

	r.Get("/healthz", app.Health)
	r.Method(stdhttp.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Public surface. Creation endpoints are rate limited per client IP.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(30, time.Minute))
			r.Post("/purchase-intents", app.PurchaseIntentCreate)
			r.Post("/payment-webhook", app.PaymentWebhook)
			r.Post("/rsvps", app.RSVPCreate)
			r.Post("/auth/login", app.AuthLogin)
		})
		r.Get("/orders/{id}", app.OrdersGet)
		r.Get("/gifts", app.GiftsList)
		r.Get("/gifts/{id}", app.GiftsGet)
		r.Get("/story", app.StoryList)
		r.Get("/story/{id}", app.StoryGet)
		r.Get("/backgrounds/{id}", app.BackgroundsGet)
		r.Get("/content/{section}", app.ContentGet)
		r.Get("/config/public-key", app.ConfigPublicKey)

		// Listings that reveal more to an authenticated admin.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuthJWT(app.JWTSecret))
			r.Get("/album", app.AlbumList)
			r.Get("/album/gallery/{gallery}", app.AlbumListGallery)
			r.Get("/album/{id}", app.AlbumGet)
			r.Get("/backgrounds", app.BackgroundsList)
			r.Get("/config", app.ConfigGet)
		})

		// Admin surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(app.JWTSecret))

			r.Get("/auth/me", app.AuthMe)

			r.Post("/gifts", app.GiftsCreate)
			r.Put("/gifts/{id}", app.GiftsUpdate)
			r.Delete("/gifts/{id}", app.GiftsDelete)
			r.Post("/gifts/upload", app.GiftsUpload)

			r.Get("/rsvps", app.RSVPList)
			r.Delete("/rsvps/{id}", app.RSVPDelete)
			r.Get("/rsvps/export", app.RSVPExportCSV)

			r.Post("/album", app.AlbumCreate)
			r.Post("/album/batch", app.AlbumCreateBatch)
			r.Put("/album/reorder", app.AlbumReorder)
			r.Post("/album/upload", app.AlbumUpload)
			r.Get("/album/gallery/{gallery}/archive", app.AlbumArchive)
			r.Patch("/album/{id}/active", app.AlbumToggleActive)
			r.Put("/album/{id}", app.AlbumUpdate)
			r.Delete("/album/{id}", app.AlbumDelete)

			r.Post("/story", app.StoryCreate)
			r.Put("/story/{id}", app.StoryUpdate)
			r.Delete("/story/{id}", app.StoryDelete)
			r.Post("/story/upload", app.StoryUpload)

			r.Put("/content/{section}", app.ContentUpdate)

			r.Post("/backgrounds", app.BackgroundsCreate)
			r.Put("/backgrounds/{id}", app.BackgroundsUpdate)
			r.Delete("/backgrounds/{id}", app.BackgroundsDelete)
			r.Post("/backgrounds/upload", app.BackgroundsUpload)

			r.Put("/config", app.ConfigUpdate)
			r.Post("/config/qrcode", app.ConfigUploadQRCode)

			r.Get("/sales", app.SalesList)
			r.Get("/sales/stats", app.SalesStats)
			r.Get("/sales/{id}", app.SalesGet)
			r.Patch("/sales/{id}/status", app.SalesUpdateStatus)
		})
	})

	return r
}
