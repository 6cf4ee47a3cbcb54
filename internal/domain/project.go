package domain

// Project is the public shape of one portfolio project.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	GithubURL   string `json:"github_url,omitempty"`
}

// SeedProject is the shape of one record in the local Algolia seed file.
type SeedProject struct {
	ObjectID string `json:"objectID"`
	Name     string `json:"name"`
	WhatItIs string `json:"what_it_is"`
	RepoURL  string `json:"repo_url"`
}

// AboutResponse wraps the about-page markdown.
type AboutResponse struct {
	Content string `json:"content"`
}
