package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bankim/content-admin/internal/core/domain"
	apperrors "github.com/bankim/content-admin/internal/core/errors"
	"github.com/bankim/content-admin/internal/core/ports"
	"github.com/bankim/content-admin/internal/dropdown"
	"github.com/bankim/content-admin/internal/platform/observability"
)

const maxTranslationBody = 64 << 10

// Path parameters.
const (
	paramContentType = "contentType"
	paramContentKey  = "contentKey"
	paramID          = "id"
	paramLang        = "lang"
)

// Translation save outcomes.
const (
	saveOK       = "ok"
	saveRejected = "rejected"
	saveError    = "error"
)

// ClassifyResult is returned by the classify endpoint.
type ClassifyResult struct {
	ContentKey string                     `json:"content_key"`
	Category   domain.Category            `json:"category"`
	Messages   []domain.ContextualMessage `json:"messages"`
}

// TranslationRequest is the body of a translation update.
type TranslationRequest struct {
	ContentValue *string `json:"content_value"`
}

// TranslationResult is returned after a translation update.
type TranslationResult struct {
	ID           int64  `json:"id"`
	Language     string `json:"language"`
	ContentValue string `json:"content_value"`
}

// Handler serves the admin content API.
type Handler struct {
	service *dropdown.Service
	store   ports.ContentStore
	logger  *zerolog.Logger
}

// NewHandler creates an API handler.
func NewHandler(service *dropdown.Service, store ports.ContentStore, logger *zerolog.Logger) *Handler {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Handler{service: service, store: store, logger: logger}
}

func (h *Handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := strings.TrimSpace(q.Get("key"))
	ru := q.Get("ru")
	he := q.Get("he")

	if key == "" && ru == "" && he == "" {
		writeErr(w, r, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, errMissingKey))
		return
	}

	fallback := h.service.Fallback()
	pair := fallback.FallbackMessages(key, ru, he)

	WriteData(w, r, ClassifyResult{
		ContentKey: key,
		Category:   fallback.Classifier().Classify(key, ru, he),
		Messages:   pair[:],
	})
}

func (h *Handler) handleContentTypes(w http.ResponseWriter, r *http.Request) {
	WriteData(w, r, h.service.ContentTypes())
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Options(r.Context(), r.PathValue(paramContentType), r.PathValue(paramContentKey))
	if err != nil {
		writeErr(w, r, err)
		return
	}

	WriteData(w, r, result)
}

func (h *Handler) handleContainer(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Container(r.Context(), r.PathValue(paramContentType), r.PathValue(paramContentKey))
	if err != nil {
		writeErr(w, r, err)
		return
	}

	WriteData(w, r, result)
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Validate(r.Context(), r.PathValue(paramContentType), r.PathValue(paramContentKey))
	if err != nil {
		writeErr(w, r, err)
		return
	}

	WriteData(w, r, result)
}

func (h *Handler) handleLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.store.ListLanguages(r.Context())
	if err != nil {
		writeErr(w, r, fmt.Errorf("list languages: %w", err))
		return
	}

	if languages == nil {
		languages = []domain.Language{}
	}

	WriteData(w, r, languages)
}

func (h *Handler) handleSaveTranslation(w http.ResponseWriter, r *http.Request) {
	lang := r.PathValue(paramLang)

	id, err := strconv.ParseInt(r.PathValue(paramID), 10, 64)
	if err != nil || id <= 0 {
		observability.TranslationsSaved.WithLabelValues(lang, saveRejected).Inc()
		writeErr(w, r, fmt.Errorf("%w: %s", apperrors.ErrInvalidID, r.PathValue(paramID)))

		return
	}

	if !domain.IsSupportedLanguage(lang) {
		observability.TranslationsSaved.WithLabelValues(lang, saveRejected).Inc()
		writeErr(w, r, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedLanguage, lang))

		return
	}

	var req TranslationRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTranslationBody))
	if err := dec.Decode(&req); err != nil || req.ContentValue == nil {
		observability.TranslationsSaved.WithLabelValues(lang, saveRejected).Inc()
		writeErr(w, r, fmt.Errorf("%w: content_value is required", apperrors.ErrInvalidInput))

		return
	}

	if err := h.store.UpsertTranslation(r.Context(), id, lang, *req.ContentValue); err != nil {
		status := saveError
		if !errors.Is(err, apperrors.ErrContentItemNotFound) {
			h.logger.Error().Err(err).Int64("id", id).Str("language", lang).Msg("save translation failed")
		} else {
			status = saveRejected
		}

		observability.TranslationsSaved.WithLabelValues(lang, status).Inc()
		writeErr(w, r, err)

		return
	}

	observability.TranslationsSaved.WithLabelValues(lang, saveOK).Inc()
	zerolog.Ctx(r.Context()).Info().Int64("id", id).Str("language", lang).Msg("translation saved")

	WriteData(w, r, TranslationResult{ID: id, Language: lang, ContentValue: *req.ContentValue})
}
