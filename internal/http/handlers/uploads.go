package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
)

// maxUploadBytes caps individual image uploads at 5MB.
const maxUploadBytes = 5 << 20

const uploadURLPrefix = "/uploads/"

var imageExtByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var (
	errUploadMissing  = errors.New("upload: file field missing")
	errUploadTooLarge = errors.New("upload: file exceeds 5MB limit")
	errUploadNotImage = errors.New("upload: only jpeg, png, gif and webp images are accepted")
)

// saveUpload stores a single multipart file under the given namespace and
// returns its public reference ("/uploads/<namespace>/<uuid>.<ext>").
func (a *App) saveUpload(r *http.Request, field, namespace string) (string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", errUploadTooLarge
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", errUploadMissing
	}
	defer file.Close()
	return a.storeImage(r.Context(), file, header, namespace)
}

// saveUploads stores every file posted under the given multipart field.
func (a *App) saveUploads(r *http.Request, field, namespace string) ([]string, error) {
	if err := r.ParseMultipartForm(4 * maxUploadBytes); err != nil {
		return nil, errUploadTooLarge
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, errUploadMissing
	}
	refs := make([]string, 0, len(r.MultipartForm.File[field]))
	for _, header := range r.MultipartForm.File[field] {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("upload: open part: %w", err)
		}
		ref, err := a.storeImage(r.Context(), file, header, namespace)
		file.Close()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (a *App) storeImage(ctx context.Context, file multipart.File, header *multipart.FileHeader, namespace string) (string, error) {
	if header.Size > maxUploadBytes {
		return "", errUploadTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("upload: read file: %w", err)
	}
	if len(data) > maxUploadBytes {
		return "", errUploadTooLarge
	}
	ext, ok := imageExtByMIME[detectImageMIME(header, data)]
	if !ok {
		return "", errUploadNotImage
	}
	key := path.Join(namespace, uuid.NewString()+ext)
	stored, err := a.Files.Write(ctx, key, data)
	if err != nil {
		return "", err
	}
	return uploadURLPrefix + stored, nil
}

// detectImageMIME prefers sniffed content over the client-declared type.
func detectImageMIME(header *multipart.FileHeader, data []byte) string {
	sniffed := http.DetectContentType(data)
	if _, ok := imageExtByMIME[sniffed]; ok {
		return sniffed
	}
	declared := strings.ToLower(strings.TrimSpace(header.Header.Get("Content-Type")))
	if semi := strings.IndexByte(declared, ';'); semi >= 0 {
		declared = declared[:semi]
	}
	return declared
}

// removeUploadRef deletes a stored file by its public reference. Failures are
// logged and swallowed so entity deletes always proceed.
func (a *App) removeUploadRef(ctx context.Context, ref string) {
	if a.Files == nil {
		return
	}
	if !strings.HasPrefix(ref, uploadURLPrefix) {
		return
	}
	key := strings.TrimPrefix(ref, uploadURLPrefix)
	if key == "" {
		return
	}
	if err := a.Files.Remove(ctx, key); err != nil {
		a.Logger.Warn().Err(err).Str("key", key).Msg("remove upload failed")
	}
}

// uploadError maps upload pipeline failures to responses.
func (a *App) uploadError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errUploadMissing):
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "nenhum arquivo enviado", "no file provided"))
	case errors.Is(err, errUploadTooLarge):
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "arquivo excede o limite de 5MB", "file exceeds the 5MB limit"))
	case errors.Is(err, errUploadNotImage):
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "apenas imagens jpeg, png, gif ou webp", "only jpeg, png, gif or webp images"))
	default:
		a.Logger.Error().Err(err).Msg("store upload failed")
		a.error(w, http.StatusInternalServerError, "internal", a.msg(r, "falha ao salvar arquivo", "failed to store file"))
	}
}
