package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/wgomg/hunbatz/internal/analyzer"
	"github.com/wgomg/hunbatz/internal/config"
	"github.com/wgomg/hunbatz/internal/utils"
	"github.com/wgomg/hunbatz/internal/utils/httputils"
)

const maxNameLength = 127

type Handler struct {
	logger  *utils.Logger
	service *analyzer.Service
	cfg     *config.Config
}

func NewHandler(logger *utils.Logger, service *analyzer.Service, cfg *config.Config) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		cfg:     cfg,
	}
}

func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := ctx.Value("reqid").(string)

	if _, err := httputils.LogRequestBody(r, h.logger, reqID); err != nil {
		h.logger.Error(&reqID, "Failed to read request body: %v", err)
		httputils.HandleError(w, err)
		return
	}

	if err := httputils.ValidateMethod(r, http.MethodPost); err != nil {
		h.logger.Error(&reqID, "Method validation error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	var payload ComparePayload
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	if len(payload.Candidates) == 0 {
		httputils.HandleError(w, httputils.BadRequest("at least one candidate is required"))
		return
	}

	reference := analyzer.NamedText{
		Name: displayName(payload.Reference.Name, "reference"),
		Text: payload.Reference.Text,
	}

	candidates := make([]analyzer.NamedText, len(payload.Candidates))
	for i, candidate := range payload.Candidates {
		candidates[i] = analyzer.NamedText{
			Name: displayName(candidate.Name, fmt.Sprintf("candidate-%d", i+1)),
			Text: candidate.Text,
		}
	}

	h.logger.Info(&reqID, "Received compare request: reference=%s, candidates=%d",
		reference.Name, len(candidates))

	report, err := h.service.CompareTexts(reference, candidates, reqID)
	if err != nil {
		h.logger.Error(&reqID, "Comparison failed: %v", err)
		h.handleAnalysisError(w, err)
		return
	}

	results := make([]PairResultResponse, len(report.Results))
	for i, result := range report.Results {
		results[i] = PairResultResponse{
			Name:            result.Name,
			Score:           result.Score,
			Bucket:          result.Bucket,
			WordCount:       result.WordCount,
			UniqueWordCount: result.UniqueWordCount,
			CommonWordCount: result.CommonWordCount,
		}
	}

	response := CompareResponse{
		Reference: ReferenceResponse{
			Name:            report.Reference.Name,
			WordCount:       report.Reference.WordCount,
			UniqueWordCount: report.Reference.UniqueWordCount,
		},
		Results: results,
	}

	if err := httputils.SuccessResponse(w, "Comparison completed", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleMatrix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := ctx.Value("reqid").(string)

	if _, err := httputils.LogRequestBody(r, h.logger, reqID); err != nil {
		h.logger.Error(&reqID, "Failed to read request body: %v", err)
		httputils.HandleError(w, err)
		return
	}

	if err := httputils.ValidateMethod(r, http.MethodPost); err != nil {
		h.logger.Error(&reqID, "Method validation error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	var payload MatrixPayload
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	documents := make([]analyzer.NamedText, len(payload.Documents))
	for i, document := range payload.Documents {
		documents[i] = analyzer.NamedText{
			Name: displayName(document.Name, fmt.Sprintf("document-%d", i+1)),
			Text: document.Text,
		}
	}

	h.logger.Info(&reqID, "Received matrix request: documents=%d", len(documents))

	report, err := h.service.MatrixFromTexts(documents, reqID)
	if err != nil {
		h.logger.Error(&reqID, "Matrix build failed: %v", err)
		h.handleAnalysisError(w, err)
		return
	}

	matrix := report.Matrix

	summaries := make([]DocumentSummaryResponse, len(matrix.Documents))
	for i, summary := range matrix.Documents {
		summaries[i] = DocumentSummaryResponse{
			Name:              summary.Name,
			AverageSimilarity: summary.AverageSimilarity,
			Bucket:            summary.Bucket,
			WordCount:         summary.WordCount,
			UniqueWordCount:   summary.UniqueWordCount,
		}
	}

	response := MatrixResponse{
		Names:     matrix.Names,
		Matrix:    matrix.Matrix,
		Documents: summaries,
	}

	if err := httputils.SuccessResponse(w, "Matrix built", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

// handleAnalysisError maps domain errors onto HTTP status codes; anything
// unrecognized falls through as a 500.
func (h *Handler) handleAnalysisError(w http.ResponseWriter, err error) {
	var insufficient *analyzer.InsufficientDocumentsError
	if errors.As(err, &insufficient) {
		httputils.HandleError(w, httputils.BadRequest(insufficient.Error()))
		return
	}

	httputils.HandleError(w, err)
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return utils.Truncate(name, maxNameLength)
}
