package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/Aditya190803/FastWrite-API/internal/llm"
	"github.com/Aditya190803/FastWrite-API/internal/pkg/archive"
	"github.com/Aditya190803/FastWrite-API/internal/pkg/githubzip"
	"github.com/Aditya190803/FastWrite-API/internal/service"
)

type GenerateRequest struct {
	GitHubURL   string `json:"github_url"`
	ZipFile     string `json:"zip_file"`
	LLMProvider string `json:"llm_provider"`
	LLMModel    string `json:"llm_model"`
	APIKey      string `json:"api_key"`
	Prompt      string `json:"prompt"`
}

type GenerateResponse struct {
	Documentation string `json:"documentation"`
	Flowchart     string `json:"flowchart"`
	LLMProvider   string `json:"llm_provider"`
	LLMModel      string `json:"llm_model"`
}

type GenerateHandler struct {
	service *service.GenerateService
}

func NewGenerateHandler(service *service.GenerateService) *GenerateHandler {
	return &GenerateHandler{service: service}
}

func (h *GenerateHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to FastWrite API!"})
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.service.Generate(c.Request.Context(), service.GenerateRequest{
		GitHubURL: req.GitHubURL,
		ZipFile:   req.ZipFile,
		Provider:  req.LLMProvider,
		Model:     req.LLMModel,
		APIKey:    req.APIKey,
		Prompt:    req.Prompt,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Documentation: result.Documentation,
		Flowchart:     result.Flowchart,
		LLMProvider:   result.Provider,
		LLMModel:      result.Model,
	})
}

// writeError maps service errors onto HTTP statuses: validation-class errors
// become 400, fetch and provider-call failures 500, anything unanticipated a
// generic 500.
func writeError(c *gin.Context, err error) {
	var missingErr *service.MissingFieldsError
	switch {
	case errors.As(err, &missingErr),
		errors.Is(err, service.ErrNoInputSource),
		errors.Is(err, service.ErrMissingAPIKey),
		errors.Is(err, service.ErrInvalidBase64),
		errors.Is(err, llm.ErrUnsupportedProvider),
		errors.Is(err, githubzip.ErrInvalidURL),
		errors.Is(err, archive.ErrNoCodeFiles),
		errors.Is(err, archive.ErrUnsafePath):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var fetchErr *githubzip.FetchError
	var callErr *llm.CallError
	if errors.As(err, &fetchErr) || errors.As(err, &callErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	klog.Errorf("unanticipated error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}
