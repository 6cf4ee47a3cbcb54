package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/checkmarkdevtools/system-notes/internal/config"
	"github.com/checkmarkdevtools/system-notes/internal/domain"
	"go.uber.org/zap"
)

// aboutFallback is served when the about file cannot be read.
const aboutFallback = "About content not available."

// ContentService serves the file-backed portfolio content: the project seed
// list, the about page and the system docs tree.
type ContentService struct {
	cfg    config.ContentConfig
	logger *zap.Logger
}

// NewContentService creates a new content service
func NewContentService(cfg config.ContentConfig, logger *zap.Logger) *ContentService {
	return &ContentService{cfg: cfg, logger: logger}
}

// Projects reads the local Algolia seed file and maps it to the public
// project shape. Read or parse failures degrade to an empty list.
func (s *ContentService) Projects() []domain.Project {
	data, err := os.ReadFile(s.cfg.ProjectsFile)
	if err != nil {
		s.logger.Warn("projects file unavailable", zap.String("path", s.cfg.ProjectsFile), zap.Error(err))
		return []domain.Project{}
	}

	var seeds []domain.SeedProject
	if err := json.Unmarshal(data, &seeds); err != nil {
		s.logger.Warn("projects file malformed", zap.String("path", s.cfg.ProjectsFile), zap.Error(err))
		return []domain.Project{}
	}

	projects := make([]domain.Project, 0, len(seeds))
	for _, seed := range seeds {
		projects = append(projects, domain.Project{
			ID:          seed.ObjectID,
			Title:       seed.Name,
			Description: seed.WhatItIs,
			GithubURL:   seed.RepoURL,
		})
	}
	return projects
}

// About returns the about-page markdown, or a fixed placeholder when the
// file cannot be read.
func (s *ContentService) About() domain.AboutResponse {
	data, err := os.ReadFile(s.cfg.AboutFile)
	if err != nil {
		s.logger.Warn("about file unavailable", zap.String("path", s.cfg.AboutFile), zap.Error(err))
		return domain.AboutResponse{Content: aboutFallback}
	}
	return domain.AboutResponse{Content: string(data)}
}

// Doc serves one document from the docs tree. JSON documents are parsed so
// the response embeds structured content; anything else is returned as text.
// Paths escaping the docs directory resolve to ErrNotFound.
func (s *ContentService) Doc(relPath string) (map[string]any, error) {
	full, err := s.safeJoin(relPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	if strings.EqualFold(filepath.Ext(full), ".json") {
		var content any
		if err := json.Unmarshal(data, &content); err != nil {
			return nil, fmt.Errorf("parse doc %s: %w", relPath, err)
		}
		return map[string]any{"content": content}, nil
	}

	return map[string]any{"content": string(data), "format": "text"}, nil
}

// safeJoin resolves relPath under the docs dir, rejecting traversal.
func (s *ContentService) safeJoin(relPath string) (string, error) {
	base, err := filepath.Abs(s.cfg.DocsDir)
	if err != nil {
		return "", fmt.Errorf("resolve docs dir: %w", err)
	}

	full, err := filepath.Abs(filepath.Join(base, relPath))
	if err != nil {
		return "", domain.ErrNotFound
	}
	if full != base && !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", domain.ErrNotFound
	}
	return full, nil
}
