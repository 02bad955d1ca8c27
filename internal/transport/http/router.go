package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/ManyRagDev/brincar-educando-2/internal/application/activities"
	"github.com/ManyRagDev/brincar-educando-2/internal/application/children"
	"github.com/ManyRagDev/brincar-educando-2/internal/application/diary"
	"github.com/ManyRagDev/brincar-educando-2/internal/application/journey"
	"github.com/ManyRagDev/brincar-educando-2/internal/application/mailer"
	"github.com/ManyRagDev/brincar-educando-2/internal/application/newsletter"
	"github.com/ManyRagDev/brincar-educando-2/internal/config"
	"github.com/ManyRagDev/brincar-educando-2/internal/transport/http/handler"
	appmiddleware "github.com/ManyRagDev/brincar-educando-2/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTVerifier != nil {
		authMw = appmiddleware.Auth(deps.JWTVerifier)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to public write endpoints.
	publicRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	childSvc := children.NewService(deps.ChildRepo)
	activitySvc := activities.NewService(deps.ActivityRepo)
	diarySvc := diary.NewService(deps.DiaryRepo, childSvc)
	journeySvc := journey.NewService(deps.JourneyRepo, childSvc, deps.ActivityRepo)
	newsletterSvc := newsletter.NewService(deps.SubscriberRepo, deps.Publisher)
	mailerSvc := mailer.NewService(mailer.ServiceDeps{
		Mailer:  deps.Mailer,
		MailLog: deps.MailLogRepo,
		AppID:   cfg.MailerAppID,
	})

	healthH := handler.NewHealthHandler()
	hookH := handler.NewHookHandler(mailerSvc)
	childH := handler.NewChildHandler(childSvc)
	activityH := handler.NewActivityHandler(activitySvc, childSvc)
	diaryH := handler.NewDiaryHandler(diarySvc)
	journeyH := handler.NewJourneyHandler(journeySvc)
	newsletterH := handler.NewNewsletterHandler(newsletterSvc)
	mediaH := handler.NewMediaHandler(deps.S3Store)
	mailLogH := handler.NewMailLogHandler(deps.MailLogRepo, cfg.MailerAppID)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)
		r.With(publicRL.Limit).Post("/hooks/send-email", hookH.SendEmail)
		r.With(publicRL.Limit).Post("/newsletter", newsletterH.Subscribe)
		r.Get("/activities", activityH.List)
		r.Get("/activities/{slug}", activityH.GetBySlug)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Post("/children", childH.Create)
			r.Get("/children", childH.List)
			r.Get("/children/{id}", childH.Get)
			r.Put("/children/{id}", childH.Update)
			r.Delete("/children/{id}", childH.Delete)
			r.Get("/children/{id}/suggestions", activityH.Suggestions)

			r.Post("/children/{id}/diary", diaryH.Create)
			r.Get("/children/{id}/diary", diaryH.ListByChild)
			r.Delete("/diary/{entryID}", diaryH.Delete)

			r.Post("/journey/sessions", journeyH.Start)
			r.Put("/journey/sessions/{id}/finish", journeyH.Finish)
			r.Get("/children/{id}/journey", journeyH.Timeline)

			r.Get("/hooks/log", mailLogH.List)

			r.Post("/media/base64", mediaH.UploadBase64)
			r.Get("/media/{key}", mediaH.Presign)
			r.Delete("/media/{key}", mediaH.Delete)
		})
	})

	return r
}
