package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"

	"github.com/Aditya190803/FastWrite-API/config"
	"github.com/Aditya190803/FastWrite-API/internal/llm"
	"github.com/Aditya190803/FastWrite-API/internal/pkg/archive"
	"github.com/Aditya190803/FastWrite-API/internal/pkg/workspace"
)

var (
	// ErrNoInputSource indicates neither a repository URL nor an inline
	// archive was provided.
	ErrNoInputSource = errors.New("must provide either github_url or zip_file")

	// ErrMissingAPIKey indicates a recognized provider was requested
	// without an API key.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidBase64 indicates the inline archive could not be decoded.
	ErrInvalidBase64 = errors.New("invalid base64-encoded ZIP file")
)

// MissingFieldsError lists the mandatory request fields that were absent.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// ArchiveFetcher resolves a repository URL to zip archive bytes.
type ArchiveFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FlowSummarizer produces a data-flow description of a source file.
type FlowSummarizer interface {
	Summarize(code string) (string, error)
}

type GenerateRequest struct {
	GitHubURL string
	ZipFile   string
	Provider  string
	Model     string
	APIKey    string
	Prompt    string
}

type GenerateResult struct {
	Documentation string
	Flowchart     string
	Provider      string
	Model         string
}

// GenerateService orchestrates a single documentation-generation request:
// validate, acquire archive bytes, extract, summarize, dispatch.
type GenerateService struct {
	cfg        *config.Config
	fetcher    ArchiveFetcher
	dispatcher llm.Dispatcher
	summarizer FlowSummarizer
}

func NewGenerateService(cfg *config.Config, fetcher ArchiveFetcher, dispatcher llm.Dispatcher, summarizer FlowSummarizer) *GenerateService {
	return &GenerateService{
		cfg:        cfg,
		fetcher:    fetcher,
		dispatcher: dispatcher,
		summarizer: summarizer,
	}
}

func (s *GenerateService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	provider, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	zipData, err := s.acquireArchive(ctx, req)
	if err != nil {
		return nil, err
	}

	ws, err := workspace.New(s.cfg.Workspace.Dir)
	if err != nil {
		return nil, err
	}
	defer ws.Cleanup()

	codeFiles, err := archive.Extract(zipData, ws.Dir())
	if err != nil {
		return nil, err
	}
	klog.V(6).Infof("archive extracted: files=%d, first=%s", len(codeFiles), codeFiles[0])

	content, err := archive.ReadFile(filepath.Join(ws.Dir(), codeFiles[0]))
	if err != nil {
		return nil, err
	}

	// Flow generation is best-effort: a failure degrades to an inline
	// message, never an HTTP error.
	flowchart, err := s.summarizer.Summarize(content)
	if err != nil {
		klog.V(6).Infof("data flow generation failed: %v", err)
		flowchart = fmt.Sprintf("Failed to generate data flow diagram: %v", err)
	}

	client, err := s.dispatcher.New(ctx, provider, req.APIKey, req.Model)
	if err != nil {
		return nil, err
	}

	documentation, err := client.GenerateDocumentation(ctx, content, req.Prompt)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Documentation: documentation,
		Flowchart:     flowchart,
		Provider:      string(provider),
		Model:         req.Model,
	}, nil
}

func (s *GenerateService) validate(req GenerateRequest) (llm.Provider, error) {
	var missing []string
	if strings.TrimSpace(req.Provider) == "" {
		missing = append(missing, "llm_provider")
	}
	if strings.TrimSpace(req.Model) == "" {
		missing = append(missing, "llm_model")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		missing = append(missing, "prompt")
	}
	if len(missing) > 0 {
		return "", &MissingFieldsError{Fields: missing}
	}

	if req.GitHubURL == "" && req.ZipFile == "" {
		return "", ErrNoInputSource
	}

	provider, err := llm.ParseProvider(req.Provider)
	if err != nil {
		return "", err
	}

	if req.APIKey == "" {
		return "", fmt.Errorf("%w for %s", ErrMissingAPIKey, provider)
	}

	return provider, nil
}

func (s *GenerateService) acquireArchive(ctx context.Context, req GenerateRequest) ([]byte, error) {
	if req.GitHubURL != "" {
		return s.fetcher.Fetch(ctx, req.GitHubURL)
	}

	data, err := base64.StdEncoding.DecodeString(req.ZipFile)
	if err != nil {
		return nil, ErrInvalidBase64
	}
	return data, nil
}
