package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"weddingapi/internal/domain"
	"weddingapi/internal/middleware"
)

type siteConfigDTO struct {
	SiteTitle       string    `json:"siteTitle"`
	WeddingDate     string    `json:"weddingDate"`
	PixKey          string    `json:"pixKey"`
	PixDescription  string    `json:"pixDescription"`
	PixQRCodeImage  string    `json:"pixQrcodeImage"`
	MPPublicKey     string    `json:"mpPublicKey"`
	MPAccessToken   string    `json:"mpAccessToken,omitempty"`
	MPWebhookSecret string    `json:"mpWebhookSecret,omitempty"`
	NotificationURL string    `json:"mpNotificationUrl"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type siteConfigRequest struct {
	SiteTitle       *string `json:"siteTitle"`
	WeddingDate     *string `json:"weddingDate"`
	PixKey          *string `json:"pixKey"`
	PixDescription  *string `json:"pixDescription"`
	MPPublicKey     *string `json:"mpPublicKey"`
	MPAccessToken   *string `json:"mpAccessToken"`
	MPWebhookSecret *string `json:"mpWebhookSecret"`
	NotificationURL *string `json:"mpNotificationUrl"`
}

func toSiteConfigDTO(c domain.SiteConfig) siteConfigDTO {
	return siteConfigDTO{
		SiteTitle:       c.SiteTitle,
		WeddingDate:     c.WeddingDate,
		PixKey:          c.PixKey,
		PixDescription:  c.PixDescription,
		PixQRCodeImage:  c.PixQRCodeImage,
		MPPublicKey:     c.MPPublicKey,
		MPAccessToken:   c.MPAccessToken,
		MPWebhookSecret: c.MPWebhookSecret,
		NotificationURL: c.NotificationURL,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ConfigGet is public. Secrets are redacted unless the request carries a valid
// admin token (the route uses optional authentication).
func (a *App) ConfigGet(w http.ResponseWriter, r *http.Request) {
	cfg, err := a.Config.Get(r.Context())
	if err != nil {
		a.domainError(w, r, err, "get config failed")
		return
	}
	out := *cfg
	if middleware.PrincipalFromContext(r.Context()) == nil {
		out = out.Redacted()
	}
	a.json(w, http.StatusOK, toSiteConfigDTO(out))
}

// ConfigPublicKey exposes only the checkout public key.
func (a *App) ConfigPublicKey(w http.ResponseWriter, r *http.Request) {
	cfg, err := a.Config.Get(r.Context())
	if err != nil {
		a.domainError(w, r, err, "get config failed")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"publicKey": cfg.MPPublicKey})
}

func (a *App) ConfigUpdate(w http.ResponseWriter, r *http.Request) {
	cfg, err := a.Config.Get(r.Context())
	if err != nil {
		a.domainError(w, r, err, "get config failed")
		return
	}
	var req siteConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	if req.SiteTitle != nil {
		cfg.SiteTitle = *req.SiteTitle
	}
	if req.WeddingDate != nil {
		cfg.WeddingDate = *req.WeddingDate
	}
	if req.PixKey != nil {
		cfg.PixKey = *req.PixKey
	}
	if req.PixDescription != nil {
		cfg.PixDescription = *req.PixDescription
	}
	if req.MPPublicKey != nil {
		cfg.MPPublicKey = *req.MPPublicKey
	}
	if req.MPAccessToken != nil {
		cfg.MPAccessToken = *req.MPAccessToken
	}
	if req.MPWebhookSecret != nil {
		cfg.MPWebhookSecret = *req.MPWebhookSecret
	}
	if req.NotificationURL != nil {
		cfg.NotificationURL = *req.NotificationURL
	}
	if err := a.Config.Update(r.Context(), cfg); err != nil {
		a.domainError(w, r, err, "update config failed")
		return
	}
	a.json(w, http.StatusOK, toSiteConfigDTO(*cfg))
}

// ConfigUploadQRCode stores a new PIX QR image and best-effort removes the
// previous one.
func (a *App) ConfigUploadQRCode(w http.ResponseWriter, r *http.Request) {
	cfg, err := a.Config.Get(r.Context())
	if err != nil {
		a.domainError(w, r, err, "get config failed")
		return
	}
	ref, err := a.saveUpload(r, "file", "pix")
	if err != nil {
		a.uploadError(w, r, err)
		return
	}
	previous := cfg.PixQRCodeImage
	cfg.PixQRCodeImage = ref
	if err := a.Config.Update(r.Context(), cfg); err != nil {
		a.domainError(w, r, err, "update config failed")
		return
	}
	if previous != "" && previous != ref {
		a.removeUploadRef(r.Context(), previous)
	}
	a.json(w, http.StatusOK, map[string]string{"pixQrcodeImage": ref})
}
